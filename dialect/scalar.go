package dialect

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Keyword returns name with the style's keyword marker.
func Keyword(s Style, name string) string {
	inner := Atom(s, name)
	switch s {
	case Racket:
		return "#:" + inner
	case TreeSitter:
		return inner + ":"
	default:
		return ":" + inner
	}
}

func Bool(s Style, b bool) string {
	switch s {
	case Racket, Scheme:
		if b {
			return "#t"
		}
		return "#f"
	case TreeSitter:
		return strconv.FormatBool(b)
	default:
		if b {
			return "t"
		}
		return "nil"
	}
}

func Int(_ Style, i int64) string {
	return strconv.FormatInt(i, 10)
}

// Float returns f so that it reads back as a float: finite values always
// carry a decimal point or an exponent.
func Float(s Style, f float64) string {
	switch {
	case math.IsNaN(f):
		if s == EmacsLisp {
			return "0.0e+NaN"
		}
		return "+nan.0"
	case math.IsInf(f, 1):
		if s == EmacsLisp {
			return "1.0e+INF"
		}
		return "+inf.0"
	case math.IsInf(f, -1):
		if s == EmacsLisp {
			return "-1.0e+INF"
		}
		return "-inf.0"
	}
	out := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(out, ".e") {
		out += ".0"
	}
	return out
}

var (
	racketCharNames = map[rune]string{
		0x00: "null", 0x08: "backspace", 0x09: "tab", 0x0A: "newline", 0x0B: "vtab",
		0x0C: "page", 0x0D: "return", 0x20: "space", 0x7F: "rubout",
	}
	commonLispCharNames = map[rune]string{
		0x08: "Backspace", 0x09: "Tab", 0x0A: "Newline", 0x0C: "Page",
		0x0D: "Return", 0x20: "Space", 0x7F: "Rubout",
	}
	schemeCharNames = map[rune]string{
		0x00: "null", 0x07: "alarm", 0x08: "backspace", 0x09: "tab", 0x0A: "newline",
		0x0D: "return", 0x1B: "escape", 0x20: "space", 0x7F: "delete",
	}
	emacsLispCharEscapes = map[rune]string{
		0x00: `^@`, 0x07: `a`, 0x08: `b`, 0x09: `t`, 0x0A: `n`, 0x0B: `v`, 0x0C: `f`,
		0x0D: `r`, 0x1B: `e`, 0x20: `s`, 0x7F: `d`,
	}
)

// Char returns r as a character literal.
func Char(s Style, r rune) string {
	switch s {
	case Racket:
		if name, ok := racketCharNames[r]; ok {
			return `#\` + name
		}
		return charEscape(r, `#\`, `#\u%04X`, `#\U%06X`)
	case CommonLisp:
		if name, ok := commonLispCharNames[r]; ok {
			return `#\` + name
		}
		return charEscape(r, `#\`, `#\U%04X`, `#\U%06X`)
	case Scheme:
		if name, ok := schemeCharNames[r]; ok {
			return `#\` + name
		}
		return charEscape(r, `#\`, `#\x%04X`, `#\x%06X`)
	case EmacsLisp:
		if esc, ok := emacsLispCharEscapes[r]; ok {
			return `?\` + esc
		}
		switch r {
		case '(', ')', '[', ']', '\\', ';', '|', '\'', '`', '#', '.', ',', '‘', '"':
			return `?\` + string(r)
		}
		return charEscape(r, `?`, `?\u%04X`, `?\U%08X`)
	default:
		return treeSitterChar(r)
	}
}

func charEscape(r rune, plain, short, long string) string {
	if !nonPrintable(r) {
		return plain + string(r)
	}
	if r > 0xFFFF {
		return fmt.Sprintf(long, r)
	}
	return fmt.Sprintf(short, r)
}

func treeSitterChar(r rune) string {
	switch r {
	case '\t':
		return `'\t'`
	case '\n':
		return `'\n'`
	case '\r':
		return `'\r'`
	case 0:
		return `'\0'`
	case '\'':
		return `'\''`
	case '\\':
		return `'\\'`
	}
	if nonPrintable(r) {
		return fmt.Sprintf(`'\u{%x}'`, r)
	}
	return "'" + string(r) + "'"
}
