package sexpr

import (
	"pkt.systems/sexpr/dialect"
	"pkt.systems/sexpr/layout"
)

// DefaultLineWidth is the column budget of DefaultOptions.
const DefaultLineWidth = 80

// Options configures a Writer. It is an immutable value: every With method
// returns a modified copy.
//
// The zero Options renders compactly in the Racket style; its line width is
// 0, so pretty-printing with it breaks every list. Start from DefaultOptions
// instead.
type Options struct {
	prettyPrinted bool
	lineWidth     int
	style         dialect.Style
	breaks        layout.BreakStyle
	palette       string
	forceColor    bool
}

// DefaultOptions returns compact Racket output with an 80 column budget and
// no colour.
func DefaultOptions() Options {
	return Options{
		lineWidth: DefaultLineWidth,
		style:     dialect.Racket,
		breaks:    layout.BreakFill,
		palette:   paletteNoneName,
	}
}

// WithPrettyPrinted enables or disables width-aware line breaking.
func (o Options) WithPrettyPrinted(flag bool) Options {
	o.prettyPrinted = flag
	return o
}

// WithLineWidth sets the column budget used when pretty-printing. Widths of
// zero or less break every list.
func (o Options) WithLineWidth(width int) Options {
	o.lineWidth = width
	return o
}

// WithStyle selects the dialect used for delimiters and leaf tokens.
func (o Options) WithStyle(style dialect.Style) Options {
	o.style = style
	return o
}

// WithBreakStyle selects how the children of a broken list are placed.
func (o Options) WithBreakStyle(breaks layout.BreakStyle) Options {
	o.breaks = breaks
	return o
}

// WithPalette selects a colour palette by name (see PaletteNames). Colour is
// only written to terminals unless WithForceColor is set.
func (o Options) WithPalette(name string) Options {
	o.palette = name
	return o
}

// WithForceColor writes colour even when the sink is not a terminal.
func (o Options) WithForceColor(flag bool) Options {
	o.forceColor = flag
	return o
}

// PrettyPrinted reports whether width-aware line breaking is enabled.
func (o Options) PrettyPrinted() bool { return o.prettyPrinted }

// LineWidth returns the column budget.
func (o Options) LineWidth() int { return o.lineWidth }

// Style returns the output dialect.
func (o Options) Style() dialect.Style { return o.style }

// BreakStyle returns how broken lists place their children.
func (o Options) BreakStyle() layout.BreakStyle { return o.breaks }

// Palette returns the palette name as given to WithPalette.
func (o Options) Palette() string { return o.palette }

// ForceColor reports whether colour is written to non-terminal sinks.
func (o Options) ForceColor() bool { return o.forceColor }
