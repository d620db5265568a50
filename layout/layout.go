// Package layout decides where line breaks go when a value tree is
// rendered.
//
// A list is written flat when it fits in the remaining columns, counting the
// closing delimiters that must follow it on the same line. Otherwise it
// breaks: the first child stays next to the opening delimiter and every
// later child is aligned under it (a hanging indent). Children repeat the
// decision at their own column, so only as much of the tree breaks as
// needed.
//
//	("hello" "this" "is"
//	 "a" "lisp" "list")
package layout

import (
	"fmt"
	"io"
	"strings"

	"pkt.systems/sexpr/dialect"
	"pkt.systems/sexpr/value"
)

// BreakStyle controls where the later children of a broken list go.
type BreakStyle int

const (
	// BreakFill keeps a child on the current line when it fits there flat.
	BreakFill BreakStyle = iota
	// BreakEach starts every child after the first on its own line.
	BreakEach
)

func (b BreakStyle) String() string {
	switch b {
	case BreakFill:
		return "fill"
	case BreakEach:
		return "each"
	}
	return fmt.Sprintf("BreakStyle(%d)", int(b))
}

// Palette holds the ANSI sequences written before each token class. An
// empty field leaves that class unstyled.
type Palette struct {
	Atom      string
	String    string
	Keyword   string
	Number    string
	Bool      string
	Char      string
	Delimiter string
}

func (p Palette) forKind(k value.Kind) string {
	switch k {
	case value.KindAtom:
		return p.Atom
	case value.KindString:
		return p.String
	case value.KindKeyword:
		return p.Keyword
	case value.KindInt, value.KindFloat:
		return p.Number
	case value.KindBool:
		return p.Bool
	case value.KindChar:
		return p.Char
	}
	return p.Delimiter
}

// Config is the immutable input of one render.
type Config struct {
	Pretty  bool
	Width   int
	Style   dialect.Style
	Breaks  BreakStyle
	Palette Palette
}

// Render returns v rendered from startColumn and the column the output ends
// at.
func Render(v value.Value, cfg Config, startColumn int) (string, int) {
	var sb strings.Builder
	end, _ := Fprint(&sb, v, cfg, startColumn)
	return sb.String(), end
}

// Fprint writes v to w as if the cursor were at startColumn and returns the
// final column. The only possible error is one returned by w.
func Fprint(w io.Writer, v value.Value, cfg Config, startColumn int) (int, error) {
	p := acquirePrinter()
	defer releasePrinter(p)
	p.reset(w, cfg, startColumn)
	err := p.print(v)
	return p.out.col, err
}

// FlatWidth returns the number of columns v occupies on a single line.
func FlatWidth(v value.Value, s dialect.Style) int {
	if !v.IsList() {
		w, _, _ := textWidth(dialect.Leaf(s, v))
		return w
	}
	open, close := dialect.Delimiters(s)
	width := widthCond.StringWidth(open) + widthCond.StringWidth(close)
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			width = satAdd(width, 1)
		}
		width = satAdd(width, FlatWidth(v.At(i), s))
	}
	return width
}

// box is the measured form of one node. Children of a list occupy
// boxes[first : first+n].
type box struct {
	kind      value.Kind
	text      string
	width     int
	tail      int
	multiline bool
	first, n  int
}

type printer struct {
	out   formatter
	cfg   Config
	boxes []box

	open, close           string
	openWidth, closeWidth int
}

func (p *printer) reset(w io.Writer, cfg Config, col int) {
	p.out.reset(w, col)
	p.cfg = cfg
	p.boxes = p.boxes[:0]
	p.open, p.close = dialect.Delimiters(cfg.Style)
	p.openWidth = widthCond.StringWidth(p.open)
	p.closeWidth = widthCond.StringWidth(p.close)
}

func (p *printer) print(v value.Value) error {
	if !p.cfg.Pretty {
		return p.printCompact(v)
	}
	p.boxes = append(p.boxes, box{})
	p.measure(0, v)
	return p.printBox(0, 0)
}

// printCompact writes v on one line without measuring it first.
func (p *printer) printCompact(v value.Value) error {
	if !v.IsList() {
		return p.out.writeText(p.cfg.Palette.forKind(v.Kind()), dialect.Leaf(p.cfg.Style, v))
	}
	if err := p.writeDelim(p.open, p.openWidth); err != nil {
		return err
	}
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			if err := p.out.writeByte(' '); err != nil {
				return err
			}
		}
		if err := p.printCompact(v.At(i)); err != nil {
			return err
		}
	}
	return p.writeDelim(p.close, p.closeWidth)
}

// measure fills boxes[idx] from v, reserving contiguous slots for the
// children of lists.
func (p *printer) measure(idx int, v value.Value) {
	if !v.IsList() {
		text := dialect.Leaf(p.cfg.Style, v)
		w, tail, multi := textWidth(text)
		p.boxes[idx] = box{kind: v.Kind(), text: text, width: w, tail: tail, multiline: multi}
		return
	}
	n := v.Len()
	first := len(p.boxes)
	p.boxes = append(p.boxes, make([]box, n)...)
	width := p.openWidth + p.closeWidth
	for i := 0; i < n; i++ {
		p.measure(first+i, v.At(i))
		if i > 0 {
			width = satAdd(width, 1)
		}
		width = satAdd(width, p.boxes[first+i].width)
	}
	p.boxes[idx] = box{kind: value.KindList, width: width, first: first, n: n}
}

func (p *printer) fits(width int) bool {
	return satAdd(p.out.col, width) <= p.cfg.Width
}

// printBox writes boxes[idx]; trail is the width of the closing delimiters
// that will follow it on the same line.
func (p *printer) printBox(idx, trail int) error {
	b := p.boxes[idx]
	if b.kind != value.KindList {
		return p.out.writeToken(p.cfg.Palette.forKind(b.kind), b.text, b.width, b.tail, b.multiline)
	}
	if b.n == 0 || p.fits(satAdd(b.width, trail)) {
		return p.printFlat(idx)
	}
	if err := p.writeDelim(p.open, p.openWidth); err != nil {
		return err
	}
	indent := p.out.col
	for i := 0; i < b.n; i++ {
		child := b.first + i
		childTrail := 0
		if i == b.n-1 {
			childTrail = satAdd(trail, p.closeWidth)
		}
		if i > 0 {
			var err error
			if p.cfg.Breaks == BreakFill && p.fits(satAdd(1+p.boxes[child].width, childTrail)) {
				err = p.out.writeByte(' ')
			} else {
				err = p.out.newline(indent)
			}
			if err != nil {
				return err
			}
		}
		if err := p.printBox(child, childTrail); err != nil {
			return err
		}
	}
	return p.writeDelim(p.close, p.closeWidth)
}

func (p *printer) printFlat(idx int) error {
	b := p.boxes[idx]
	if b.kind != value.KindList {
		return p.out.writeToken(p.cfg.Palette.forKind(b.kind), b.text, b.width, b.tail, b.multiline)
	}
	if err := p.writeDelim(p.open, p.openWidth); err != nil {
		return err
	}
	for i := 0; i < b.n; i++ {
		if i > 0 {
			if err := p.out.writeByte(' '); err != nil {
				return err
			}
		}
		if err := p.printFlat(b.first + i); err != nil {
			return err
		}
	}
	return p.writeDelim(p.close, p.closeWidth)
}

func (p *printer) writeDelim(d string, width int) error {
	return p.out.writeToken(p.cfg.Palette.Delimiter, d, width, 0, false)
}
