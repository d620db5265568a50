package dialect

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// emptyAtom is the escaped empty symbol for the backslash-quoting styles.
const emptyAtom = "##"

// Atom returns text as a symbol token, quoted only when the style's reader
// would otherwise read something else.
func Atom(s Style, text string) string {
	if !atomNeedsQuote(s, text) {
		return text
	}
	switch s {
	case Racket:
		return "|" + strings.ReplaceAll(text, "|", `|\||`) + "|"
	case CommonLisp:
		return pipeQuote(text, func(sb *strings.Builder, r rune) bool { return false })
	case Scheme:
		return pipeQuote(text, func(sb *strings.Builder, r rune) bool {
			if r < 0x20 || nonPrintable(r) {
				fmt.Fprintf(sb, `\x%x;`, r)
				return true
			}
			return false
		})
	default:
		return backslashQuote(s, text)
	}
}

func pipeQuote(text string, special func(*strings.Builder, rune) bool) string {
	var sb strings.Builder
	sb.Grow(len(text) + 2)
	sb.WriteByte('|')
	for _, r := range text {
		switch {
		case r == '|' || r == '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case special(&sb, r):
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('|')
	return sb.String()
}

func backslashQuote(s Style, text string) string {
	if text == "" {
		return emptyAtom
	}
	numeric := looksNumeric(text) || text == "." || literalToken(s, text)
	var sb strings.Builder
	sb.Grow(len(text) + 4)
	last := len(text) - 1
	for i, r := range text {
		switch {
		case i == 0 && (numeric || leadReserved(s, r)),
			reservedRune(r),
			s == TreeSitter && i+utf8.RuneLen(r)-1 == last && r == ':':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func atomNeedsQuote(s Style, text string) bool {
	if text == "" || text == "." || looksNumeric(text) || literalToken(s, text) {
		return true
	}
	if (s == Racket || s == Scheme) && (schemeSpecialFloat(text) || looksComplex(text)) {
		return true
	}
	if s == CommonLisp && strings.ContainsRune(text, ':') {
		return true
	}
	if strings.HasPrefix(text, "#") && !(s == Racket && strings.HasPrefix(text, "#%")) {
		return true
	}
	first, _ := utf8.DecodeRuneInString(text)
	if first != '#' && leadReserved(s, first) {
		return true
	}
	if s == TreeSitter && strings.HasSuffix(text, ":") {
		return true
	}
	for _, r := range text {
		if reservedRune(r) {
			return true
		}
	}
	return false
}

// reservedRune reports runes that can never appear bare in a symbol.
func reservedRune(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}', '"', ',', '\'', '`', ';', '|', '\\':
		return true
	}
	return r == utf8.RuneError || unicode.IsSpace(r) || nonPrintable(r)
}

// leadReserved reports runes that change the meaning of a token when they
// start it.
func leadReserved(s Style, r rune) bool {
	switch r {
	case '#':
		return true
	case ':':
		return s == CommonLisp || s == Scheme || s == EmacsLisp
	case '?':
		return s == EmacsLisp
	}
	return false
}

// looksNumeric reports text a Lisp reader would take for a number.
func looksNumeric(text string) bool {
	if _, err := strconv.ParseFloat(text, 64); err == nil || isRangeErr(err) {
		return true
	}
	num, den, ok := strings.Cut(text, "/")
	if !ok {
		return false
	}
	if _, err := strconv.ParseInt(num, 10, 64); err != nil && !isRangeErr(err) {
		return false
	}
	_, err := strconv.ParseUint(den, 10, 64)
	return err == nil || isRangeErr(err)
}

// literalToken reports text the style prints for a boolean or a non-finite
// float.
func literalToken(s Style, text string) bool {
	switch text {
	case Bool(s, true), Bool(s, false), Float(s, math.Inf(1)), Float(s, math.Inf(-1)), Float(s, math.NaN()):
		return true
	}
	return false
}

// schemeSpecialFloat matches the infinity and NaN spellings of the Racket
// and R7RS readers, which ignore case.
func schemeSpecialFloat(text string) bool {
	if len(text) != 6 || (text[0] != '+' && text[0] != '-') {
		return false
	}
	switch strings.ToLower(text[1:]) {
	case "inf.0", "nan.0", "inf.f", "nan.f", "inf.t", "nan.t":
		return true
	}
	return false
}

// looksComplex reports rectangular (1+2i, -i) and polar (1@2) numbers.
func looksComplex(text string) bool {
	if re, im, ok := strings.Cut(text, "@"); ok {
		return realNumber(re) && realNumber(im)
	}
	body, ok := strings.CutSuffix(text, "i")
	if !ok || body == "" {
		return false
	}
	if body == "+" || body == "-" {
		return true
	}
	k := strings.LastIndexAny(body, "+-")
	for k > 0 && (body[k-1] == 'e' || body[k-1] == 'E') {
		k = strings.LastIndexAny(body[:k], "+-")
	}
	if k < 0 {
		return false
	}
	im := body[k:]
	if im != "+" && im != "-" && !realNumber(im) {
		return false
	}
	return k == 0 || realNumber(body[:k])
}

func realNumber(text string) bool {
	return looksNumeric(text) || schemeSpecialFloat(text)
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// UnescapeAtom returns the symbol text encoded by token, the inverse of Atom.
func UnescapeAtom(s Style, token string) (string, error) {
	switch s {
	case Racket:
		return unescapeRacketAtom(token)
	case CommonLisp, Scheme:
		return unescapePipeAtom(s, token)
	default:
		if token == emptyAtom {
			return "", nil
		}
		return unescapeBackslashAtom(token)
	}
}

// unescapeRacketAtom decodes Racket symbols: a backslash quotes the next
// rune outside pipes, and everything between pipes is literal.
func unescapeRacketAtom(token string) (string, error) {
	var sb strings.Builder
	inPipe := false
	for i := 0; i < len(token); {
		r, n := utf8.DecodeRuneInString(token[i:])
		i += n
		switch {
		case r == '|':
			inPipe = !inPipe
		case r == '\\' && !inPipe:
			if i >= len(token) {
				return "", fmt.Errorf("%w: trailing backslash in %q", ErrMalformed, token)
			}
			r, n = utf8.DecodeRuneInString(token[i:])
			i += n
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	if inPipe {
		return "", fmt.Errorf("%w: unterminated | in %q", ErrMalformed, token)
	}
	return sb.String(), nil
}

func unescapePipeAtom(s Style, token string) (string, error) {
	var sb strings.Builder
	inPipe := false
	for i := 0; i < len(token); {
		r, n := utf8.DecodeRuneInString(token[i:])
		i += n
		switch r {
		case '|':
			inPipe = !inPipe
		case '\\':
			if i >= len(token) {
				return "", fmt.Errorf("%w: trailing backslash in %q", ErrMalformed, token)
			}
			if s == Scheme && inPipe && token[i] == 'x' {
				hex, rest, ok := strings.Cut(token[i+1:], ";")
				if !ok {
					return "", fmt.Errorf("%w: unterminated \\x escape in %q", ErrMalformed, token)
				}
				cp, err := strconv.ParseUint(hex, 16, 32)
				if err != nil {
					return "", fmt.Errorf("%w: bad \\x escape in %q", ErrMalformed, token)
				}
				sb.WriteRune(rune(cp))
				i = len(token) - len(rest)
				continue
			}
			r, n = utf8.DecodeRuneInString(token[i:])
			i += n
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	if inPipe {
		return "", fmt.Errorf("%w: unterminated | in %q", ErrMalformed, token)
	}
	return sb.String(), nil
}

func unescapeBackslashAtom(token string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(token); {
		r, n := utf8.DecodeRuneInString(token[i:])
		i += n
		if r != '\\' {
			sb.WriteRune(r)
			continue
		}
		if i >= len(token) {
			return "", fmt.Errorf("%w: trailing backslash in %q", ErrMalformed, token)
		}
		r, n = utf8.DecodeRuneInString(token[i:])
		i += n
		sb.WriteRune(r)
	}
	return sb.String(), nil
}
