package layout

import (
	"bytes"
	"errors"
)

var errSink = errors.New("sink closed")

type plainWriter struct {
	buf bytes.Buffer
}

func (w *plainWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *plainWriter) String() string {
	return w.buf.String()
}

type strWriter struct {
	buf bytes.Buffer
}

func (w *strWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *strWriter) WriteString(s string) (int, error) {
	return w.buf.WriteString(s)
}

func (w *strWriter) String() string {
	return w.buf.String()
}

type byteOnlyWriter struct {
	buf bytes.Buffer
}

func (w *byteOnlyWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *byteOnlyWriter) WriteByte(b byte) error {
	return w.buf.WriteByte(b)
}

func (w *byteOnlyWriter) String() string {
	return w.buf.String()
}

// failAfterWriter accepts fail writes and rejects every later one.
type failAfterWriter struct {
	calls int
	fail  int
}

func (w *failAfterWriter) Write(p []byte) (int, error) {
	w.calls++
	if w.calls > w.fail {
		return 0, errSink
	}
	return len(p), nil
}

type discard struct{}

func (discard) Write(p []byte) (int, error) {
	return len(p), nil
}

func (discard) WriteString(s string) (int, error) {
	return len(s), nil
}

func (discard) WriteByte(byte) error {
	return nil
}
