package sexpr

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"

	"pkt.systems/sexpr/internal/ansi"
	"pkt.systems/sexpr/layout"
)

const (
	paletteDefaultName = "default"
	paletteNoneName    = "none"
)

// ErrUnknownPalette is returned when Options names a palette that does not
// exist.
var ErrUnknownPalette = errors.New("sexpr: unknown palette")

var paletteRegistry = map[string]ansi.Palette{
	paletteDefaultName: ansi.PaletteDefault,
	"classic":          ansi.PaletteDefault,
	"racket":           ansi.PaletteRacket,
	"drracket":         ansi.PaletteRacket,
	"doom-dracula":     ansi.PaletteDoomDracula,
	"doom-nord":        ansi.PaletteDoomNord,
	"doom-gruvbox":     ansi.PaletteDoomGruvbox,
	"catppuccin-mocha": ansi.PaletteCatppuccinMocha,
	"synthwave84":      ansi.PaletteSynthwave84,
}

// PaletteNames returns the sorted list of palette names, including "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// ValidatePalette reports whether name selects a palette, using the same
// normalisation as rendering: case and surrounding space are ignored and an
// empty name means "none".
func ValidatePalette(name string) error {
	key := paletteKey(name)
	if key == "" || key == paletteNoneName {
		return nil
	}
	if _, ok := paletteRegistry[key]; !ok {
		return fmt.Errorf("%w %q (use one of: %s)", ErrUnknownPalette, name, strings.Join(PaletteNames(), ", "))
	}
	return nil
}

func paletteKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// resolvePalette returns the layout palette for opts. An empty name means
// "none". Unknown names fail even when colour is disabled, so a bad
// configuration is reported regardless of where output goes.
func resolvePalette(opts Options, enableColor bool) (layout.Palette, error) {
	if err := ValidatePalette(opts.palette); err != nil {
		return layout.Palette{}, err
	}
	name := paletteKey(opts.palette)
	if name == "" || name == paletteNoneName {
		return layout.Palette{}, nil
	}
	ap := paletteRegistry[name]
	if !enableColor {
		return layout.Palette{}, nil
	}
	return layoutPalette(ap), nil
}

func layoutPalette(ap ansi.Palette) layout.Palette {
	delim := ap.Delimiter
	if delim == "" {
		delim = ansi.Faint
	}
	return layout.Palette{
		Atom:      ap.Atom,
		String:    ap.String,
		Keyword:   ap.Keyword,
		Number:    ap.Number,
		Bool:      ap.Bool,
		Char:      ap.Char,
		Delimiter: delim,
	}
}

type fdWriter interface {
	Fd() uintptr
}

// ShouldColor reports whether a Writer using opts colours output written to
// w: the palette must not be "none", and w must be a terminal unless
// ForceColor is set.
func ShouldColor(w io.Writer, opts Options) bool {
	name := paletteKey(opts.palette)
	if name == "" || name == paletteNoneName {
		return false
	}
	if opts.forceColor {
		return true
	}
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
