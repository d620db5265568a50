package layout

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"pkt.systems/sexpr/internal/ansi"
)

// widthCond measures display columns independently of the caller's locale.
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// maxWidth saturates width arithmetic. Multi-line leaves measure as
// maxWidth so that no list holding one is ever rendered flat.
const maxWidth = 1 << 29

func satAdd(a, b int) int {
	if s := a + b; s < maxWidth {
		return s
	}
	return maxWidth
}

// textWidth returns the flat width of s and the column reached after
// writing it from column 0 when s spans several lines.
func textWidth(s string) (width, tail int, multiline bool) {
	i := strings.LastIndexByte(s, '\n')
	if i < 0 {
		return widthCond.StringWidth(s), 0, false
	}
	return maxWidth, widthCond.StringWidth(s[i+1:]), true
}

const spaces = "                                                                "

// formatter wraps the sink and tracks the current column exactly. ANSI
// sequences never move the column.
type formatter struct {
	w       io.Writer
	bw      io.ByteWriter
	sw      io.StringWriter
	col     int
	byteBuf [1]byte
}

func (f *formatter) reset(w io.Writer, col int) {
	f.w = w
	f.col = col
	f.bw, f.sw = nil, nil
	if w == nil {
		return
	}
	if bw, ok := w.(io.ByteWriter); ok {
		f.bw = bw
	}
	if sw, ok := w.(io.StringWriter); ok {
		f.sw = sw
	}
}

func (f *formatter) clear() {
	f.w = nil
	f.bw = nil
	f.sw = nil
	f.col = 0
}

func (f *formatter) writeRaw(s string) error {
	if s == "" {
		return nil
	}
	var err error
	if f.sw != nil {
		_, err = f.sw.WriteString(s)
	} else {
		_, err = io.WriteString(f.w, s)
	}
	return err
}

func (f *formatter) writeByte(b byte) error {
	if f.bw != nil {
		if err := f.bw.WriteByte(b); err != nil {
			return err
		}
	} else {
		f.byteBuf[0] = b
		if _, err := f.w.Write(f.byteBuf[:]); err != nil {
			return err
		}
	}
	f.col++
	return nil
}

// writeToken writes a measured token, wrapped in style when style is set.
func (f *formatter) writeToken(style, s string, width, tail int, multiline bool) error {
	if err := f.writeRaw(style); err != nil {
		return err
	}
	if err := f.writeRaw(s); err != nil {
		return err
	}
	if multiline {
		f.col = tail
	} else {
		f.col += width
	}
	if style != "" {
		return f.writeRaw(ansi.Reset)
	}
	return nil
}

func (f *formatter) writeText(style, s string) error {
	w, tail, multi := textWidth(s)
	return f.writeToken(style, s, w, tail, multi)
}

func (f *formatter) newline(indent int) error {
	if err := f.writeByte('\n'); err != nil {
		return err
	}
	f.col = 0
	for indent > 0 {
		n := min(indent, len(spaces))
		if err := f.writeRaw(spaces[:n]); err != nil {
			return err
		}
		f.col += n
		indent -= n
	}
	return nil
}
