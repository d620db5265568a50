package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"pkt.systems/sexpr"
	"pkt.systems/sexpr/dialect"
	"pkt.systems/sexpr/layout"
)

const (
	envStyle = "SEXPR_STYLE"
	envWidth = "SEXPR_WIDTH"
)

// cliOptions holds the parsed command line.
type cliOptions struct {
	Pretty     bool
	Width      int
	Style      dialect.Style
	Each       bool
	Input      string
	Palette    string
	Color      bool
	NoColor    bool
	Verbose    bool
	ListStyles bool
	Files      []string
}

func newFlagSet(name string, out io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(out, `%s: render JSON or YAML documents as S-expressions

Usage: %s [flags] [file...]

Reads stdin when no file (or "-") is given.
Environment: %s and %s set the default style and width.

`, name, name, envStyle, envWidth)
		fs.PrintDefaults()
	}
	return fs
}

// parseArgs registers the flags on fs and parses argv. getenv supplies the
// environment defaults.
func parseArgs(fs *pflag.FlagSet, argv []string, getenv func(string) string) (cliOptions, error) {
	var opt cliOptions

	defWidth := sexpr.DefaultLineWidth
	if env := strings.TrimSpace(getenv(envWidth)); env != "" {
		n, err := strconv.Atoi(env)
		if err != nil {
			return opt, fmt.Errorf("%s: invalid width %q", envWidth, env)
		}
		defWidth = n
	}
	defStyle := dialect.Racket.String()
	if env := strings.TrimSpace(getenv(envStyle)); env != "" {
		defStyle = env
	}

	var style string
	fs.BoolVarP(&opt.Pretty, "pretty", "p", false, "break lists that do not fit the line width")
	fs.IntVarP(&opt.Width, "width", "w", defWidth, "line width used with --pretty")
	fs.StringVarP(&style, "style", "s", defStyle, "dialect: "+styleList())
	fs.BoolVar(&opt.Each, "each", false, "put every child of a broken list on its own line")
	fs.StringVarP(&opt.Input, "input", "i", "auto", "input format: auto | json | yaml")
	fs.StringVar(&opt.Palette, "palette", "default", "colour palette: "+strings.Join(sexpr.PaletteNames(), ", "))
	fs.BoolVar(&opt.Color, "color", false, "colour output even when stdout is not a terminal")
	fs.BoolVar(&opt.NoColor, "no-color", false, "never colour output")
	fs.BoolVarP(&opt.Verbose, "verbose", "v", false, "log progress to stderr")
	fs.BoolVar(&opt.ListStyles, "list-styles", false, "print the supported styles and exit")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	opt.Files = fs.Args()

	s, err := dialect.ParseStyle(style)
	if err != nil {
		return opt, err
	}
	opt.Style = s
	if opt.Color && opt.NoColor {
		return opt, errors.New("--color conflicts with --no-color")
	}
	if err := sexpr.ValidatePalette(opt.Palette); err != nil {
		return opt, err
	}
	if _, err := parseFormat(opt.Input, ""); err != nil {
		return opt, err
	}
	return opt, nil
}

func styleList() string {
	names := make([]string, 0, 5)
	for _, s := range dialect.Styles() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}

// writerOptions maps the flags onto writer options. tty reports whether
// stdout is a terminal.
func (o cliOptions) writerOptions(tty bool) sexpr.Options {
	opts := sexpr.DefaultOptions().
		WithPrettyPrinted(o.Pretty).
		WithLineWidth(o.Width).
		WithStyle(o.Style)
	if o.Each {
		opts = opts.WithBreakStyle(layout.BreakEach)
	}
	if o.NoColor {
		return opts.WithPalette("none")
	}
	return opts.WithPalette(o.Palette).WithForceColor(o.Color || tty)
}
