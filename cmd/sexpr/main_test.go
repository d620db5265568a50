package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"

	"pkt.systems/sexpr"
	"pkt.systems/sexpr/dialect"
	"pkt.systems/sexpr/layout"
	"pkt.systems/sexpr/value"
)

func noEnv(string) string { return "" }

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func runCLI(t *testing.T, args []string, stdin string, getenv func(string) string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr, getenv)
	return code, stdout.String(), stderr.String()
}

func TestRunCompactJSONFromStdin(t *testing.T) {
	t.Parallel()

	code, out, errOut := runCLI(t, nil, `{"b":[1,2],"a":"x"} [true,null,1.5]`, noEnv)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, errOut)
	}
	expected := "((a \"x\") (b (1 2)))\n(#t () 1.5)\n"
	if out != expected {
		t.Fatalf("unexpected output\nexpected:\n%q\nactual:\n%q", expected, out)
	}
}

func TestRunPrettyWidth(t *testing.T) {
	t.Parallel()

	code, out, errOut := runCLI(t, []string{"-p", "-w", "20"}, `["hello","this","is","a","lisp","list"]`, noEnv)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, errOut)
	}
	expected := "(\"hello\" \"this\" \"is\"\n \"a\" \"lisp\" \"list\")\n"
	if out != expected {
		t.Fatalf("unexpected output\nexpected:\n%q\nactual:\n%q", expected, out)
	}
}

func TestRunEachBreakStyle(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, []string{"--pretty", "--width", "10", "--each"}, `[1,2,3,4,5,6]`, noEnv)
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	expected := "(1\n 2\n 3\n 4\n 5\n 6)\n"
	if out != expected {
		t.Fatalf("unexpected output\nexpected:\n%q\nactual:\n%q", expected, out)
	}
}

func TestRunYAMLFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	src := "name: demo\ntags: [a, b]\n---\n- 1\n- 2.5\n- true\n- null\n"
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	code, out, errOut := runCLI(t, []string{"--style", "common-lisp", path}, "", noEnv)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, errOut)
	}
	expected := "((name \"demo\") (tags (\"a\" \"b\")))\n(1 2.5 t ())\n"
	if out != expected {
		t.Fatalf("unexpected output\nexpected:\n%q\nactual:\n%q", expected, out)
	}
}

func TestRunEnvironmentDefaults(t *testing.T) {
	t.Parallel()

	env := envOf(map[string]string{envStyle: "tree-sitter", envWidth: "8"})
	code, out, _ := runCLI(t, []string{"-p"}, `[true, false, true]`, env)
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	expected := "(true\n false\n true)\n"
	if out != expected {
		t.Fatalf("unexpected output\nexpected:\n%q\nactual:\n%q", expected, out)
	}

	code, out, _ = runCLI(t, []string{"-s", "scheme"}, `[true]`, env)
	if code != 0 || out != "(#t)\n" {
		t.Fatalf("flag should override env, got %d %q", code, out)
	}
}

func TestRunUsageErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		args []string
		env  map[string]string
	}{
		"unknown flag":   {args: []string{"--nope"}},
		"unknown style":  {args: []string{"-s", "cobol"}},
		"unknown input":  {args: []string{"-i", "toml"}},
		"palette":        {args: []string{"--palette", "neon"}},
		"color conflict": {args: []string{"--color", "--no-color"}},
		"bad env width":  {env: map[string]string{envWidth: "wide"}},
	}
	for name, tc := range cases {
		code, out, errOut := runCLI(t, tc.args, "[]", envOf(tc.env))
		if code != 2 {
			t.Fatalf("%s: expected exit 2, got %d", name, code)
		}
		if out != "" {
			t.Fatalf("%s: unexpected stdout %q", name, out)
		}
		if errOut == "" {
			t.Fatalf("%s: expected a message on stderr", name)
		}
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	code, _, errOut := runCLI(t, []string{"--help"}, "", noEnv)
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(errOut, "--width") {
		t.Fatalf("usage should list flags, got %q", errOut)
	}
}

func TestRunListStyles(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, []string{"--list-styles"}, "", noEnv)
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	var expected []string
	for _, s := range dialect.Styles() {
		expected = append(expected, s.String())
	}
	if diff := cmp.Diff(expected, strings.Fields(out)); diff != "" {
		t.Fatalf("styles mismatch (-want +got):\n%s", diff)
	}
}

func TestRunRuntimeErrors(t *testing.T) {
	t.Parallel()

	code, _, errOut := runCLI(t, []string{filepath.Join(t.TempDir(), "missing.json")}, "", noEnv)
	if code != 1 {
		t.Fatalf("missing file: expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut, "missing.json") {
		t.Fatalf("error should name the file, got %q", errOut)
	}

	code, out, errOut := runCLI(t, nil, `[1] {"broken"`, noEnv)
	if code != 1 {
		t.Fatalf("bad json: expected exit 1, got %d", code)
	}
	if out != "(1)\n" {
		t.Fatalf("documents before the error should be written, got %q", out)
	}
	if n := strings.Count(errOut, "\n"); n != 1 || !strings.HasPrefix(errOut, "sexpr: ") {
		t.Fatalf("expected one error line, got %q", errOut)
	}
}

func TestRunKeepsEarlierInputsOnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	small := filepath.Join(dir, "small.json")
	large := filepath.Join(dir, "large.json")
	missing := filepath.Join(dir, "missing.json")
	if err := os.WriteFile(small, []byte(`["a"]`), 0o600); err != nil {
		t.Fatal(err)
	}
	items := make([]string, 2000)
	for i := range items {
		items[i] = `"item"`
	}
	if err := os.WriteFile(large, []byte("["+strings.Join(items, ",")+"]"), 0o600); err != nil {
		t.Fatal(err)
	}

	code, out, errOut := runCLI(t, []string{small, missing}, "", noEnv)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if out != "(\"a\")\n" {
		t.Fatalf("output of the good input was lost: %q", out)
	}
	if strings.Count(errOut, "missing.json") != 1 || strings.Contains(errOut, "level=") {
		t.Fatalf("expected a single plain error report, got %q", errOut)
	}

	code, out, _ = runCLI(t, []string{large, missing}, "", noEnv)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	expected := "(" + strings.Join(items, " ") + ")\n"
	if out != expected {
		t.Fatalf("large input was cut short: got %d bytes, want %d", len(out), len(expected))
	}
}

func TestRunForcedColor(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, []string{"--color"}, `["x"]`, noEnv)
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected ANSI sequences, got %q", out)
	}
	code, out, _ = runCLI(t, []string{"--no-color"}, `["x"]`, noEnv)
	if code != 0 || out != "(\"x\")\n" {
		t.Fatalf("unexpected plain output %d %q", code, out)
	}
}

func TestParseArgsWriterOptions(t *testing.T) {
	t.Parallel()

	fs := newFlagSet("test", io.Discard)
	opt, err := parseArgs(fs, []string{"-p", "-w", "40", "-s", "elisp", "--each", "a.json", "b.yml"}, noEnv)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if diff := cmp.Diff([]string{"a.json", "b.yml"}, opt.Files); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}
	opts := opt.writerOptions(false)
	if !opts.PrettyPrinted() || opts.LineWidth() != 40 || opts.Style() != dialect.EmacsLisp || opts.BreakStyle() != layout.BreakEach {
		t.Fatalf("unexpected writer options %+v", opts)
	}
	if opts.ForceColor() {
		t.Fatalf("colour must not be forced without a terminal")
	}
	if !opt.writerOptions(true).ForceColor() {
		t.Fatalf("a terminal should enable colour")
	}
}

func TestParseArgsPaletteNormalisation(t *testing.T) {
	t.Parallel()

	for _, name := range []string{" racket", "Racket ", "NONE", ""} {
		fs := newFlagSet("test", io.Discard)
		opt, err := parseArgs(fs, []string{"--palette", name}, noEnv)
		if err != nil {
			t.Fatalf("palette %q: %v", name, err)
		}
		code, out, errOut := runCLI(t, []string{"--color", "--palette", opt.Palette}, `["x"]`, noEnv)
		if code != 0 || out == "" {
			t.Fatalf("palette %q: exit %d, stderr %q", name, code, errOut)
		}
	}
	fs := newFlagSet("test", io.Discard)
	if _, err := parseArgs(fs, []string{"--palette", " neon "}, noEnv); !errors.Is(err, sexpr.ErrUnknownPalette) {
		t.Fatalf("expected ErrUnknownPalette, got %v", err)
	}
}

func TestParseArgsHelpError(t *testing.T) {
	t.Parallel()

	fs := newFlagSet("test", io.Discard)
	if _, err := parseArgs(fs, []string{"-h"}, noEnv); err != pflag.ErrHelp {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		flag, path string
		want       inputFormat
	}{
		{"auto", "-", formatJSON},
		{"auto", "x.YAML", formatYAML},
		{"", "x.yml", formatYAML},
		{"auto", "x.json", formatJSON},
		{"yaml", "x.json", formatYAML},
		{"JSON", "x.yaml", formatJSON},
	}
	for _, tc := range cases {
		got, err := parseFormat(tc.flag, tc.path)
		if err != nil {
			t.Fatalf("parseFormat(%q, %q): %v", tc.flag, tc.path, err)
		}
		if got != tc.want {
			t.Fatalf("parseFormat(%q, %q) = %v, want %v", tc.flag, tc.path, got, tc.want)
		}
	}
}

func TestYAMLAliasesAndKeys(t *testing.T) {
	t.Parallel()

	src := "base: &b {x: 1}\ncopy: *b\n? [k]\n: v\nbig: 99999999999999999999\nwhen: 2024-01-02\n"
	var got []value.Value
	err := decodeDocuments(strings.NewReader(src), formatYAML, func(_ int, v value.Value) error {
		got = append(got, v)
		return nil
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	x := value.List(value.List(value.Atom("x"), value.Int(1)))
	expected := value.List(
		value.List(value.Atom("base"), x),
		value.List(value.Atom("copy"), x),
		value.List(value.List(value.String("k")), value.String("v")),
		value.List(value.Atom("big"), value.Float(1e20)),
		value.List(value.Atom("when"), value.String("2024-01-02")),
	)
	if len(got) != 1 || !value.Equal(expected, got[0]) {
		t.Fatalf("unexpected tree: %v", got)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	t.Parallel()

	if isBrokenPipe(nil) {
		t.Fatalf("nil is not a broken pipe")
	}
	if !isBrokenPipe(io.ErrClosedPipe) {
		t.Fatalf("closed pipe should count as broken pipe")
	}
}
