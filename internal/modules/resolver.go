// Package modules implements the `use <name> from "x.y.z";` module
// resolver of spec.md §4.4/§6.5: validate the version against SemVer,
// locate `<INSTALL_ROOT>/modules/<name>@<version>/src/*.rhea`, and hand
// back the matched file paths for the evaluator to lex/parse/evaluate
// into the requesting scope.
//
// Version validation uses golang.org/x/mod/semver rather than the
// hand-rolled regex the original implementation used
// (original_source/src/rhea/core/ModuleResolver.cpp matches
// `^(\d+)\.(\d+)\.(\d+)(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?$` by
// hand): the module corpus already depends on x/mod for its own
// version comparisons, so reusing it here keeps the dependency earning
// its place instead of adding a parallel hand-rolled validator.
package modules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
)

// Resolver locates installed modules under root (RHEA_PATH/N8_PATH).
type Resolver struct {
	Root string
}

// New builds a Resolver rooted at installRoot.
func New(installRoot string) *Resolver { return &Resolver{Root: installRoot} }

// ValidateVersion reports whether version (without a leading "v") is a
// well-formed SemVer string, per spec.md §4.4's exact grammar.
func ValidateVersion(version string) bool {
	// semver.IsValid also accepts the "v1" and "v1.2" shorthands, so the
	// three-part major.minor.patch core is checked separately.
	core := version
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core = core[:i]
	}
	return strings.Count(core, ".") == 2 && semver.IsValid("v"+version)
}

// SourceFiles returns every `*.rhea` file under
// <root>/modules/<name>@<version>/src/, sorted, or an error if the
// module directory doesn't exist.
func (r *Resolver) SourceFiles(name, version string) ([]string, error) {
	if !ValidateVersion(version) {
		return nil, fmt.Errorf("invalid module version %q for %q", version, name)
	}
	dir := filepath.Join(r.Root, "modules", name+"@"+version, "src")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("module %q@%q not found under %s: %w", name, version, r.Root, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".rhea" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

// LibraryPath returns the expected path to the module's native shared
// library for the current platform's extension (spec.md §6.5
// `lib/name.{so|dll|dylib}`), without checking that it exists; the
// native loader (internal/native) does its own resolution and caching.
func (r *Resolver) LibraryPath(name, version, libExt string) string {
	return filepath.Join(r.Root, "modules", name+"@"+version, "lib", name+"."+libExt)
}
