package parser

import (
	"strconv"
	"strings"

	"github.com/rhea-language/rhea-sub001/internal/token"
)

// parseNumberLiteral converts a scanned INT/FLOAT token's image into
// its IEEE-754 double value, honoring the 0b/0t/0c/0x base prefixes of
// spec.md §4.1. Lexer already validated the digit run, so errors here
// are not user-facing; a zero fallback is returned instead of
// panicking.
func parseNumberLiteral(tok token.Token) float64 {
	image := tok.Image()
	if tok.Kind == token.INT && len(image) > 1 && image[0] == '0' {
		var base int
		switch image[1] {
		case 'b':
			base = 2
		case 't':
			base = 3
		case 'c':
			base = 8
		case 'x':
			base = 16
		}
		if base != 0 {
			n, err := strconv.ParseInt(image[2:], base, 64)
			if err != nil {
				return 0
			}
			return float64(n)
		}
	}

	if tok.Kind == token.FLOAT || strings.ContainsAny(image, ".eE") {
		f, err := strconv.ParseFloat(image, 64)
		if err != nil {
			return 0
		}
		return f
	}

	n, err := strconv.ParseInt(image, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(image, 64)
		if ferr != nil {
			return 0
		}
		return f
	}
	return float64(n)
}
