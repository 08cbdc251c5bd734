package native

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rhea-language/rhea-sub001/internal/runtime"
)

// Resolve/Symbol need a real plugin.Open-compatible .so, which this test
// suite cannot build (no go toolchain invocations here), so coverage is
// limited to the pure path-resolution logic in findLibraryPath.

func TestFindLibraryPathLocalDirectoryWins(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile("mathx.so", []byte("not a real plugin"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := New(runtime.New(false, false))
	path, err := l.findLibraryPath("mathx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "mathx.so" {
		t.Errorf("path = %q, want a local mathx.so", path)
	}
}

func TestFindLibraryPathScansModulesDir(t *testing.T) {
	root := t.TempDir()
	libDir := filepath.Join(root, "modules", "strutil@1.0.0", "lib")
	if err := os.MkdirAll(libDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(libDir, "strutil.so"), []byte("not a real plugin"), 0o644); err != nil {
		t.Fatal(err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	rt := runtime.New(false, false)
	rt.InstallRoot = root
	l := New(rt)
	path, err := l.findLibraryPath("strutil")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "strutil.so" {
		t.Errorf("path = %q, want strutil.so under the modules dir", path)
	}
}

func TestFindLibraryPathNotFound(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	rt := runtime.New(false, false)
	l := New(rt)
	if _, err := l.findLibraryPath("doesnotexist"); err == nil {
		t.Fatal("want an error when RHEA_PATH is unset and no local file exists")
	}
}
