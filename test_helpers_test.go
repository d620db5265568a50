package sexpr

import (
	"bytes"
	"errors"
	"fmt"

	"pkt.systems/sexpr/dialect"
	"pkt.systems/sexpr/value"
)

type noStringWriter struct {
	buf bytes.Buffer
}

func (w *noStringWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *noStringWriter) String() string {
	return w.buf.String()
}

type byteWriter struct {
	buf bytes.Buffer
}

func (w *byteWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *byteWriter) WriteByte(b byte) error {
	return w.buf.WriteByte(b)
}

func (w *byteWriter) String() string {
	return w.buf.String()
}

var errWrite = errors.New("write err")

type errWriter struct{}

func (errWriter) Write(_ []byte) (int, error) {
	return 0, errWrite
}

type newlineFailWriter struct {
	buf bytes.Buffer
}

func (w *newlineFailWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *newlineFailWriter) WriteByte(_ byte) error {
	return errWrite
}

type discardStringByteWriter struct{}

func (discardStringByteWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func (discardStringByteWriter) WriteString(s string) (int, error) {
	return len(s), nil
}

func (discardStringByteWriter) WriteByte(_ byte) error {
	return nil
}

// readBack parses writer output made of lists, atoms and strings, using the
// dialect's unescape functions for the leaves.
func readBack(s dialect.Style, src string) (value.Value, error) {
	r := &reader{style: s, src: src}
	v, err := r.read()
	if err != nil {
		return value.Value{}, err
	}
	r.skipSpace()
	if r.pos != len(r.src) {
		return value.Value{}, fmt.Errorf("trailing input at %d: %q", r.pos, r.src[r.pos:])
	}
	return v, nil
}

type reader struct {
	style dialect.Style
	src   string
	pos   int
}

func (r *reader) skipSpace() {
	for r.pos < len(r.src) && (r.src[r.pos] == ' ' || r.src[r.pos] == '\n') {
		r.pos++
	}
}

func (r *reader) read() (value.Value, error) {
	r.skipSpace()
	if r.pos >= len(r.src) {
		return value.Value{}, errors.New("unexpected end of input")
	}
	switch r.src[r.pos] {
	case '(':
		r.pos++
		var items []value.Value
		for {
			r.skipSpace()
			if r.pos >= len(r.src) {
				return value.Value{}, errors.New("unterminated list")
			}
			if r.src[r.pos] == ')' {
				r.pos++
				return value.List(items...), nil
			}
			v, err := r.read()
			if err != nil {
				return value.Value{}, err
			}
			items = append(items, v)
		}
	case ')':
		return value.Value{}, fmt.Errorf("unexpected ) at %d", r.pos)
	case '"':
		start := r.pos
		r.pos++
		for r.pos < len(r.src) && r.src[r.pos] != '"' {
			if r.src[r.pos] == '\\' {
				r.pos++
			}
			r.pos++
		}
		if r.pos >= len(r.src) {
			return value.Value{}, errors.New("unterminated string")
		}
		r.pos++
		text, err := dialect.UnescapeString(r.style, r.src[start:r.pos])
		if err != nil {
			return value.Value{}, err
		}
		return value.String(text), nil
	}
	start := r.pos
	inPipe := false
	pipes := r.style == dialect.Racket || r.style == dialect.CommonLisp || r.style == dialect.Scheme
	for r.pos < len(r.src) {
		c := r.src[r.pos]
		if !inPipe && (c == ' ' || c == '\n' || c == '(' || c == ')') {
			break
		}
		switch {
		case c == '|' && pipes:
			inPipe = !inPipe
		case c == '\\' && (!inPipe || r.style != dialect.Racket):
			r.pos++
		}
		r.pos++
	}
	r.pos = min(r.pos, len(r.src))
	text, err := dialect.UnescapeAtom(r.style, r.src[start:r.pos])
	if err != nil {
		return value.Value{}, err
	}
	return value.Atom(text), nil
}
