// Package token defines the lexeme and position types shared by the
// lexer, parser and evaluator.
package token

import "fmt"

// Category classifies a token the way the source grammar distinguishes
// them: by what kind of lexeme it is, not by its specific operator or
// keyword spelling. Operators and keywords are further discriminated by
// Kind (see kind.go); Category is what the AST uses as a map-key
// discriminator per spec.md §3.1.
type Category int

const (
	// Digit covers integer and floating point literals.
	Digit Category = iota
	// String covers double-quoted, escape-processed string literals.
	String
	// Regex covers backtick-delimited regular expression literals.
	Regex
	// Keyword covers reserved words (see Kind's keyword range).
	Keyword
	// Identifier covers ordinary names.
	Identifier
	// Operator covers punctuation and operator lexemes.
	Operator
)

// String renders the category name.
func (c Category) String() string {
	switch c {
	case Digit:
		return "digit"
	case String:
		return "string"
	case Regex:
		return "regex"
	case Keyword:
		return "keyword"
	case Identifier:
		return "identifier"
	case Operator:
		return "operator"
	default:
		return "unknown"
	}
}

// Position is an immutable record carrying a lexeme's image together
// with the file/line/column it was scanned from and its Category.
//
// Positions compare and order by category and image only: Less orders
// first by Category, then by Image, matching
// spec.md §3.1 ("totally ordered by (category, image)").
type Position struct {
	Image    string
	File     string
	Line     int
	Column   int
	Category Category
}

// Less implements the total order spec.md requires for Position when
// used as a map key: (category, image) lexicographic.
func (p Position) Less(other Position) bool {
	if p.Category != other.Category {
		return p.Category < other.Category
	}
	return p.Image < other.Image
}

// Equal reports whether two positions carry the same category and
// image; line/column/file are explicitly excluded from equality so
// that two occurrences of the same lexeme at different source
// locations still compare equal as map keys.
func (p Position) Equal(other Position) bool {
	return p.Category == other.Category && p.Image == other.Image
}

// String renders "file:line:column: image" for diagnostics.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d: %s", p.Line, p.Column, p.Image)
	}
	return fmt.Sprintf("%s:%d:%d: %s", p.File, p.Line, p.Column, p.Image)
}

// grow appends a rune to Image in place. Mirrors the "append" helper
// spec.md §3.1 names explicitly; the lexer builds images with a
// strings.Builder and does not call it.
func (p *Position) grow(r rune) {
	p.Image += string(r)
}

// modify overwrites Image wholesale. The lexer does not call it.
func (p *Position) modify(image string) {
	p.Image = image
}
