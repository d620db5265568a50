package dialect

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Single-character string escapes per style, keyed by the rune they encode.
var (
	lispEscapes = map[rune]byte{
		'\a': 'a', '\b': 'b', '\t': 't', '\n': 'n', '\v': 'v', '\f': 'f', '\r': 'r', 0x1B: 'e',
	}
	schemeEscapes = map[rune]byte{
		'\a': 'a', '\b': 'b', '\t': 't', '\n': 'n', '\r': 'r',
	}
	treeSitterEscapes = map[rune]byte{
		'\t': 't', '\n': 'n', '\r': 'r', 0: '0',
	}
)

func stringEscapes(s Style) map[rune]byte {
	switch s {
	case Racket, EmacsLisp:
		return lispEscapes
	case Scheme:
		return schemeEscapes
	case TreeSitter:
		return treeSitterEscapes
	}
	return nil
}

// String returns text as a double-quoted string literal.
func String(s Style, text string) string {
	var sb strings.Builder
	sb.Grow(len(text) + 2)
	sb.WriteByte('"')
	escapes := stringEscapes(s)
	for _, r := range text {
		if r == '"' || r == '\\' {
			sb.WriteByte('\\')
			sb.WriteRune(r)
			continue
		}
		if s == CommonLisp {
			sb.WriteRune(r)
			continue
		}
		if c, ok := escapes[r]; ok {
			sb.WriteByte('\\')
			sb.WriteByte(c)
			continue
		}
		if r >= 0x20 && r != 0x7F && !nonPrintable(r) {
			sb.WriteRune(r)
			continue
		}
		switch s {
		case Scheme:
			fmt.Fprintf(&sb, `\x%x;`, r)
		case TreeSitter:
			fmt.Fprintf(&sb, `\u{%x}`, r)
		default:
			if r <= 0xFFFF {
				fmt.Fprintf(&sb, `\u%04X`, r)
			} else {
				fmt.Fprintf(&sb, `\U%08X`, r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// UnescapeString returns the text encoded by a string literal token, the
// inverse of String.
func UnescapeString(s Style, token string) (string, error) {
	if len(token) < 2 || token[0] != '"' || token[len(token)-1] != '"' {
		return "", fmt.Errorf("%w: string literal %q is not quoted", ErrMalformed, token)
	}
	body := token[1 : len(token)-1]
	decode := make(map[byte]rune)
	for r, c := range stringEscapes(s) {
		decode[c] = r
	}

	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); {
		r, n := utf8.DecodeRuneInString(body[i:])
		i += n
		if r == '"' {
			return "", fmt.Errorf("%w: unescaped quote in %q", ErrMalformed, token)
		}
		if r != '\\' {
			sb.WriteRune(r)
			continue
		}
		if i >= len(body) {
			return "", fmt.Errorf("%w: trailing backslash in %q", ErrMalformed, token)
		}
		c := body[i]
		i++
		if c == '"' || c == '\\' {
			sb.WriteByte(c)
			continue
		}
		if s == CommonLisp {
			r, n = utf8.DecodeRuneInString(body[i-1:])
			i += n - 1
			sb.WriteRune(r)
			continue
		}
		if r, ok := decode[c]; ok {
			sb.WriteRune(r)
			continue
		}
		cp, used, err := hexEscape(s, c, body[i:])
		if err != nil {
			return "", fmt.Errorf("%w: %v in %q", ErrMalformed, err, token)
		}
		i += used
		sb.WriteRune(cp)
	}
	return sb.String(), nil
}

// hexEscape decodes the numeric escape introduced by c, returning the rune
// and the number of bytes of rest it consumed.
func hexEscape(s Style, c byte, rest string) (rune, int, error) {
	var digits string
	var used int
	switch {
	case s == Scheme && c == 'x':
		hex, _, ok := strings.Cut(rest, ";")
		if !ok {
			return 0, 0, fmt.Errorf(`unterminated \x escape`)
		}
		digits, used = hex, len(hex)+1
	case s == TreeSitter && c == 'u':
		if !strings.HasPrefix(rest, "{") {
			return 0, 0, fmt.Errorf(`bad \u escape`)
		}
		hex, _, ok := strings.Cut(rest[1:], "}")
		if !ok {
			return 0, 0, fmt.Errorf(`unterminated \u escape`)
		}
		digits, used = hex, len(hex)+2
	case (s == Racket || s == EmacsLisp) && (c == 'u' || c == 'U'):
		used = 4
		if c == 'U' {
			used = 8
		}
		if len(rest) < used {
			return 0, 0, fmt.Errorf(`short \%c escape`, c)
		}
		digits = rest[:used]
	default:
		return 0, 0, fmt.Errorf(`unknown escape \%c`, c)
	}
	cp, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || digits == "" {
		return 0, 0, fmt.Errorf("bad hex digits %q", digits)
	}
	return rune(cp), used, nil
}
