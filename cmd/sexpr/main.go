// Command sexpr renders JSON or YAML documents as S-expressions.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"

	"github.com/spf13/pflag"

	"pkt.systems/sexpr"
	"pkt.systems/sexpr/dialect"
	"pkt.systems/sexpr/internal/logging"
	"pkt.systems/sexpr/value"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv))
}

// run executes the command and returns the exit code: 0 on success, 1 on
// runtime errors and 2 on usage errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) int {
	const name = "sexpr"
	fs := newFlagSet(name, stderr)
	opt, err := parseArgs(fs, args, getenv)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 2
	}
	log := logging.New(stderr, logging.Level(opt.Verbose))

	if opt.ListStyles {
		for _, s := range dialect.Styles() {
			fmt.Fprintln(stdout, s)
		}
		return 0
	}

	tty := sexpr.ShouldColor(stdout, sexpr.DefaultOptions().WithPalette(opt.Palette))
	w := sexpr.NewWriter(opt.writerOptions(tty))
	out := bufio.NewWriter(stdout)

	files := opt.Files
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, path := range files {
		err := renderInput(log, w, out, stdin, path, opt.Input)
		if ferr := out.Flush(); err == nil && ferr != nil {
			err = fmt.Errorf("write error: %w", ferr)
		}
		if isBrokenPipe(err) {
			return 0
		}
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", name, err)
			return 1
		}
	}
	return 0
}

// renderInput writes every document of one input, one per line.
func renderInput(log *slog.Logger, w *sexpr.Writer, out *bufio.Writer, stdin io.Reader, path, input string) error {
	format, err := parseFormat(input, path)
	if err != nil {
		return err
	}
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	log.Debug("reading input", "input", path, "format", format)

	pretty := w.Options().PrettyPrinted()
	err = decodeDocuments(bufio.NewReader(r), format, func(index int, v value.Value) error {
		if err := w.Write(out, v); err != nil {
			return err
		}
		if !pretty {
			if err := out.WriteByte('\n'); err != nil {
				return err
			}
		}
		log.Debug("document written", "input", path, "index", index)
		return nil
	})
	if err != nil && path != "-" {
		return fmt.Errorf("%s: %w", path, err)
	}
	return err
}

// isBrokenPipe reports whether err comes from a reader closing early, as
// with `sexpr big.json | head`.
func isBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
