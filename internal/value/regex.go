package value

import (
	"regexp"
	"sync"
)

// Regex wraps a compiled pattern plus its original source image.
// Compilation is lazy and memoized (spec.md §4.3: "Regex literals
// compile the pattern on first evaluation").
//
// Go's standard regexp package (RE2 syntax) is used rather than a
// third-party engine: no PCRE-compatible or back-reference-capable
// regex library appears anywhere in the example corpus, and regexp is
// the only implementation that ships with the toolchain's own
// guarantee of linear-time matching — a reasonable default for a
// language runtime that cannot audit untrusted patterns.
type Regex struct {
	Source string

	once     sync.Once
	compiled *regexp.Regexp
	compErr  error
}

// NewRegex wraps source without compiling it yet.
func NewRegex(source string) *Regex { return &Regex{Source: source} }

func (*Regex) Type() string    { return "regex" }
func (r *Regex) String() string { return r.Source }

// Len returns the pattern source's length, used by `size` (spec.md §4.3).
func (r *Regex) Len() int { return len(r.Source) }

// compile lazily builds the regexp.Regexp, memoizing success or failure.
func (r *Regex) compile() (*regexp.Regexp, error) {
	r.once.Do(func() {
		r.compiled, r.compErr = regexp.Compile(r.Source)
	})
	return r.compiled, r.compErr
}

// MatchString reports whether s matches r's pattern, per the `::`/`!:`
// operators (spec.md §3.2). A compile error is surfaced to the caller
// so the evaluator can turn it into a Throw signal.
func (r *Regex) MatchString(s string) (bool, error) {
	re, err := r.compile()
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// ReplaceAll substitutes every match of r's pattern in s with repl,
// backing the `String - String` regex-replace operator (spec.md §3.2).
func (r *Regex) ReplaceAll(s, repl string) (string, error) {
	re, err := r.compile()
	if err != nil {
		return "", err
	}
	return re.ReplaceAllString(s, repl), nil
}
