// Package dialect holds the per-style surface syntax rules used by the
// layout engine: list delimiters and the escaped form of every leaf kind.
//
// Every function is pure and keyed by Style. The escaped forms round-trip:
// UnescapeAtom and UnescapeString recover the original text exactly.
package dialect

import (
	"errors"
	"fmt"
	"strings"

	"pkt.systems/sexpr/value"
)

// Style selects a target S-expression syntax.
type Style int

const (
	Racket Style = iota
	TreeSitter
	CommonLisp
	Scheme // R7RS
	EmacsLisp
)

var (
	// ErrUnknownStyle is returned by ParseStyle for names it does not know.
	ErrUnknownStyle = errors.New("dialect: unknown style")
	// ErrMalformed is returned when a token is not a valid escaped form.
	ErrMalformed = errors.New("dialect: malformed token")
)

var styleNames = [...]string{
	Racket:     "racket",
	TreeSitter: "tree-sitter",
	CommonLisp: "common-lisp",
	Scheme:     "scheme",
	EmacsLisp:  "emacs-lisp",
}

var styleAliases = map[string]Style{
	"racket":      Racket,
	"tree-sitter": TreeSitter,
	"treesitter":  TreeSitter,
	"ts":          TreeSitter,
	"common-lisp": CommonLisp,
	"commonlisp":  CommonLisp,
	"cl":          CommonLisp,
	"lisp":        CommonLisp,
	"scheme":      Scheme,
	"r7rs":        Scheme,
	"emacs-lisp":  EmacsLisp,
	"emacslisp":   EmacsLisp,
	"elisp":       EmacsLisp,
}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// Styles returns every supported style in declaration order.
func Styles() []Style {
	return []Style{Racket, TreeSitter, CommonLisp, Scheme, EmacsLisp}
}

// ParseStyle maps a case-insensitive style name or alias to a Style.
func ParseStyle(name string) (Style, error) {
	s, ok := styleAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Racket, fmt.Errorf("%w %q (use one of: %s)", ErrUnknownStyle, name, strings.Join(styleNames[:], ", "))
	}
	return s, nil
}

// Delimiters returns the opening and closing list delimiters.
func Delimiters(Style) (open, close string) {
	return "(", ")"
}

// Leaf returns the escaped text of a non-list value. Lists yield "".
func Leaf(s Style, v value.Value) string {
	switch v.Kind() {
	case value.KindAtom:
		return Atom(s, v.Text())
	case value.KindString:
		return String(s, v.Text())
	case value.KindKeyword:
		return Keyword(s, v.Text())
	case value.KindBool:
		return Bool(s, v.BoolValue())
	case value.KindInt:
		return Int(s, v.IntValue())
	case value.KindFloat:
		return Float(s, v.FloatValue())
	case value.KindChar:
		return Char(s, v.CharValue())
	}
	return ""
}

// nonPrintable reports runes that are always written in escaped form.
// Tab and newline are handled by each caller.
func nonPrintable(r rune) bool {
	switch {
	case r <= 0x08,
		r >= 0x0B && r <= 0x1F,
		r >= 0x7F && r <= 0x9F,
		r >= 0x2000 && r <= 0x200F,
		r >= 0x2028 && r <= 0x202F,
		r >= 0x205F && r <= 0x206F,
		r == 0x3000,
		r == 0xFEFF,
		r >= 0xE0100 && r <= 0xE01EF:
		return true
	}
	return false
}
