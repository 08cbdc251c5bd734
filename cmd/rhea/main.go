// Command rhea is the CLI entry point of spec.md §6.1.
package main

import (
	"os"

	"github.com/rhea-language/rhea-sub001/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
