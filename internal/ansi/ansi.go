// Package ansi provides ANSI escape sequences and the palette presets used
// to colour S-expression tokens.
package ansi

// Base ANSI escape codes.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Faint         = "\x1b[90m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	Gray          = "\x1b[37m"
	BrightBlue    = "\x1b[1;34m"
	BrightMagenta = "\x1b[1;35m"
	BrightCyan    = "\x1b[1;36m"
)

// Palette assigns one sequence to each token class.
type Palette struct {
	Atom      string
	String    string
	Keyword   string
	Number    string
	Bool      string
	Char      string
	Delimiter string
}

// PaletteDefault is 16-colour friendly.
var PaletteDefault = Palette{
	Atom:      Cyan,
	String:    Green,
	Keyword:   BrightMagenta,
	Number:    Magenta,
	Bool:      Yellow,
	Char:      Yellow,
	Delimiter: Faint,
}

// PaletteRacket follows DrRacket's default highlighting.
var PaletteRacket = Palette{
	Atom:      "\x1b[38;5;25m",
	String:    "\x1b[38;5;28m",
	Keyword:   "\x1b[38;5;94m",
	Number:    "\x1b[38;5;28m",
	Bool:      "\x1b[38;5;28m",
	Char:      "\x1b[38;5;28m",
	Delimiter: "\x1b[38;5;130m",
}

// PaletteDoomDracula mirrors doom-dracula with pink, purple, and cyan accents.
var PaletteDoomDracula = Palette{
	Atom:      "\x1b[38;5;219m",
	String:    "\x1b[38;5;141m",
	Keyword:   "\x1b[38;5;147m",
	Number:    "\x1b[38;5;111m",
	Bool:      "\x1b[38;5;81m",
	Char:      "\x1b[38;5;117m",
	Delimiter: "\x1b[38;5;95m",
}

// PaletteDoomNord channels doom-nord with cool glacier blues.
var PaletteDoomNord = Palette{
	Atom:      "\x1b[38;5;153m",
	String:    "\x1b[38;5;152m",
	Keyword:   "\x1b[38;5;110m",
	Number:    "\x1b[38;5;109m",
	Bool:      "\x1b[38;5;115m",
	Char:      "\x1b[38;5;151m",
	Delimiter: "\x1b[38;5;245m",
}

// PaletteDoomGruvbox echoes doom-gruvbox colours with earthy reds and ambers.
var PaletteDoomGruvbox = Palette{
	Atom:      "\x1b[38;5;214m",
	String:    "\x1b[38;5;178m",
	Keyword:   "\x1b[38;5;172m",
	Number:    "\x1b[38;5;108m",
	Bool:      "\x1b[38;5;142m",
	Char:      "\x1b[38;5;107m",
	Delimiter: "\x1b[38;5;101m",
}

// PaletteCatppuccinMocha recreates Catppuccin Mocha with soft pastels.
var PaletteCatppuccinMocha = Palette{
	Atom:      "\x1b[38;5;217m",
	String:    "\x1b[38;5;183m",
	Keyword:   "\x1b[38;5;182m",
	Number:    "\x1b[38;5;147m",
	Bool:      "\x1b[38;5;152m",
	Char:      "\x1b[38;5;223m",
	Delimiter: "\x1b[38;5;244m",
}

// PaletteSynthwave84 channels synthwave magentas, cyans, and gold accents.
var PaletteSynthwave84 = Palette{
	Atom:      "\x1b[38;5;198m",
	String:    "\x1b[38;5;51m",
	Keyword:   "\x1b[38;5;45m",
	Number:    "\x1b[38;5;207m",
	Bool:      "\x1b[38;5;219m",
	Char:      "\x1b[38;5;221m",
	Delimiter: "\x1b[38;5;102m",
}
