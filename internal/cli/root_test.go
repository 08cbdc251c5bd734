package cli

import (
	"os"
	"path/filepath"
	"testing"
)

// Execute drives the package-level rootCmd/exitCode singletons cobra
// itself expects a single root command to own, so each case resets
// them rather than constructing a fresh command tree.
func TestExecuteRunsFileAndReturnsZeroOnSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ok.rhea")
	if err := os.WriteFile(path, []byte(`render 1;`), 0o644); err != nil {
		t.Fatal(err)
	}

	exitCode = 0
	rootCmd.SetArgs([]string{path})
	if got := Execute(); got != 0 {
		t.Errorf("Execute() = %d, want 0", got)
	}
}

func TestExecuteReturnsOneOnUncaughtThrow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.rhea")
	if err := os.WriteFile(path, []byte(`throw "boom";`), 0o644); err != nil {
		t.Fatal(err)
	}

	exitCode = 0
	rootCmd.SetArgs([]string{path})
	if got := Execute(); got != 1 {
		t.Errorf("Execute() = %d, want 1", got)
	}
}

func TestExecuteWithNoArgsPrintsBannerAndSucceeds(t *testing.T) {
	exitCode = 0
	rootCmd.SetArgs([]string{})
	if got := Execute(); got != 0 {
		t.Errorf("Execute() = %d, want 0 (banner-only run)", got)
	}
}

// spec.md §6.1 calls for -h/--help to exit 1, unlike cobra's own
// default of exit 0 after printing help.
func TestExecuteHelpFlagReturnsOne(t *testing.T) {
	exitCode = 0
	rootCmd.SetArgs([]string{"--help"})
	if got := Execute(); got != 1 {
		t.Errorf("Execute() with --help = %d, want 1", got)
	}
}
