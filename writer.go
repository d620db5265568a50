package sexpr

import (
	"bytes"
	"io"
	"strings"

	"pkt.systems/sexpr/layout"
	"pkt.systems/sexpr/value"
)

// Writer renders values with a fixed set of Options. A Writer holds no
// state besides its options and is safe for concurrent use; concurrent
// calls must not share a sink.
type Writer struct {
	opts Options
}

// NewWriter returns a Writer using opts.
func NewWriter(opts Options) *Writer {
	return &Writer{opts: opts}
}

func (w *Writer) Options() Options {
	return w.opts
}

// WithOptions returns a Writer using opts.
func (w *Writer) WithOptions(opts Options) *Writer {
	return &Writer{opts: opts}
}

// PrettyPrinted returns a Writer with pretty-printing set to flag.
func (w *Writer) PrettyPrinted(flag bool) *Writer {
	return &Writer{opts: w.opts.WithPrettyPrinted(flag)}
}

// Write renders v into dst. Pretty output ends with a newline; compact
// output does not.
//
// An unknown palette is reported before anything is written. Any other
// error is the one dst returned, unchanged; output written before the
// failure stays in dst.
func (w *Writer) Write(dst io.Writer, v value.Value) error {
	pal, err := resolvePalette(w.opts, ShouldColor(dst, w.opts))
	if err != nil {
		return err
	}
	cfg := layout.Config{
		Pretty:  w.opts.prettyPrinted,
		Width:   w.opts.lineWidth,
		Style:   w.opts.style,
		Breaks:  w.opts.breaks,
		Palette: pal,
	}
	if _, err := layout.Fprint(dst, v, cfg, 0); err != nil {
		return err
	}
	if w.opts.prettyPrinted {
		return writeNewline(dst)
	}
	return nil
}

// WriteString renders v into a string. It only fails for an unknown
// palette.
func (w *Writer) WriteString(v value.Value) (string, error) {
	var sb strings.Builder
	if err := w.Write(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// AppendTo appends the rendering of v to dst.
func (w *Writer) AppendTo(dst []byte, v value.Value) ([]byte, error) {
	buf := bytes.NewBuffer(dst)
	if err := w.Write(buf, v); err != nil {
		return dst, err
	}
	return buf.Bytes(), nil
}

var newlineBytes = []byte{'\n'}

func writeNewline(w io.Writer) error {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw.WriteByte('\n')
	}
	_, err := w.Write(newlineBytes)
	return err
}
