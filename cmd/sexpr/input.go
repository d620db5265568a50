package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"pkt.systems/sexpr/value"
)

type inputFormat int

const (
	formatJSON inputFormat = iota
	formatYAML
)

func (f inputFormat) String() string {
	if f == formatYAML {
		return "yaml"
	}
	return "json"
}

// parseFormat resolves the --input flag. "auto" picks YAML for .yaml and
// .yml files and JSON for everything else, stdin included.
func parseFormat(flagValue, path string) (inputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(flagValue)) {
	case "json":
		return formatJSON, nil
	case "yaml", "yml":
		return formatYAML, nil
	case "", "auto":
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			return formatYAML, nil
		}
		return formatJSON, nil
	}
	return formatJSON, fmt.Errorf("invalid --input %q", flagValue)
}

// decodeDocuments calls fn for every document in r.
func decodeDocuments(r io.Reader, f inputFormat, fn func(index int, v value.Value) error) error {
	if f == formatYAML {
		return decodeYAML(r, fn)
	}
	return decodeJSON(r, fn)
}

func decodeJSON(r io.Reader, fn func(int, value.Value) error) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	for i := 0; ; i++ {
		var doc any
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("document %d: %w", i, err)
		}
		v, err := value.From(doc)
		if err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
		if err := fn(i, v); err != nil {
			return err
		}
	}
}

func decodeYAML(r io.Reader, fn func(int, value.Value) error) error {
	dec := yaml.NewDecoder(r)
	for i := 0; ; i++ {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("document %d: %w", i, err)
		}
		v, err := fromYAML(&doc, 0)
		if err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
		if err := fn(i, v); err != nil {
			return err
		}
	}
}

// maxYAMLDepth bounds alias expansion; an alias to an enclosing node would
// otherwise recurse forever.
const maxYAMLDepth = 1000

// fromYAML converts a node tree. Mappings keep document order, unlike maps
// decoded from JSON, which are sorted by key.
func fromYAML(n *yaml.Node, depth int) (value.Value, error) {
	if depth > maxYAMLDepth {
		return value.Value{}, fmt.Errorf("line %d: nesting deeper than %d", n.Line, maxYAMLDepth)
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.List(), nil
		}
		return fromYAML(n.Content[0], depth+1)
	case yaml.AliasNode:
		return fromYAML(n.Alias, depth+1)
	case yaml.SequenceNode:
		items := make([]value.Value, len(n.Content))
		for i, c := range n.Content {
			v, err := fromYAML(c, depth+1)
			if err != nil {
				return value.Value{}, err
			}
			items[i] = v
		}
		return value.List(items...), nil
	case yaml.MappingNode:
		items := make([]value.Value, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, err := yamlKey(n.Content[i], depth+1)
			if err != nil {
				return value.Value{}, err
			}
			v, err := fromYAML(n.Content[i+1], depth+1)
			if err != nil {
				return value.Value{}, err
			}
			items = append(items, value.List(key, v))
		}
		return value.List(items...), nil
	case yaml.ScalarNode:
		return yamlScalar(n)
	}
	return value.Value{}, fmt.Errorf("line %d: unexpected yaml node kind %d", n.Line, n.Kind)
}

func yamlKey(n *yaml.Node, depth int) (value.Value, error) {
	if n.Kind == yaml.ScalarNode {
		return value.Atom(n.Value), nil
	}
	return fromYAML(n, depth)
}

func yamlScalar(n *yaml.Node) (value.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return value.List(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return value.Value{}, err
		}
		return value.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return value.Int(i), nil
		}
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return value.String(n.Value), nil
		}
		return value.Float(f), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return value.Value{}, err
		}
		return value.Float(f), nil
	}
	return value.String(n.Value), nil
}
