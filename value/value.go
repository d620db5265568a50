// Package value holds the tree model rendered by sexpr: atoms, strings and
// lists, plus the keyword, boolean, number and character leaves.
//
// Values are immutable. Lists copy their children on construction so a tree
// can never share or cycle back into itself.
package value

import "slices"

// Kind tags the variant held by a Value.
type Kind int

const (
	KindList Kind = iota
	KindAtom
	KindString
	KindKeyword
	KindBool
	KindInt
	KindFloat
	KindChar
)

var kindNames = [...]string{
	KindList:    "list",
	KindAtom:    "atom",
	KindString:  "string",
	KindKeyword: "keyword",
	KindBool:    "bool",
	KindInt:     "int",
	KindFloat:   "float",
	KindChar:    "char",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Value is one node of an S-expression tree. The zero Value is the empty
// list.
type Value struct {
	kind  Kind
	text  string
	num   int64
	float float64
	items []Value
}

// Atom returns a symbolic token. Quoting is left to the dialect.
func Atom(text string) Value {
	return Value{kind: KindAtom, text: text}
}

// String returns a string literal.
func String(text string) Value {
	return Value{kind: KindString, text: text}
}

// Keyword returns a keyword named name, without any dialect prefix.
func Keyword(name string) Value {
	return Value{kind: KindKeyword, text: name}
}

func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

func Int(i int64) Value {
	return Value{kind: KindInt, num: i}
}

func Float(f float64) Value {
	return Value{kind: KindFloat, float: f}
}

func Char(r rune) Value {
	return Value{kind: KindChar, num: int64(r)}
}

// List returns a list holding a private copy of items.
func List(items ...Value) Value {
	return Value{kind: KindList, items: slices.Clone(items)}
}

// Strings returns a list of string literals.
func Strings(texts ...string) Value {
	items := make([]Value, len(texts))
	for i, t := range texts {
		items[i] = String(t)
	}
	return Value{kind: KindList, items: items}
}

// Atoms returns a list of atoms.
func Atoms(texts ...string) Value {
	items := make([]Value, len(texts))
	for i, t := range texts {
		items[i] = Atom(t)
	}
	return Value{kind: KindList, items: items}
}

func (v Value) Kind() Kind { return v.kind }

// IsList reports whether v is a list.
func (v Value) IsList() bool { return v.kind == KindList }

// Text returns the payload of atoms, strings and keywords, and "" otherwise.
func (v Value) Text() string { return v.text }

// Len returns the number of children of a list, and 0 for leaves.
func (v Value) Len() int { return len(v.items) }

// At returns the i'th child of a list. It panics when i is out of range.
func (v Value) At(i int) Value { return v.items[i] }

// Items returns a copy of the children of a list.
func (v Value) Items() []Value { return slices.Clone(v.items) }

func (v Value) BoolValue() bool { return v.kind == KindBool && v.num != 0 }

func (v Value) IntValue() int64 {
	if v.kind != KindInt {
		return 0
	}
	return v.num
}

func (v Value) FloatValue() float64 {
	if v.kind != KindFloat {
		return 0
	}
	return v.float
}

func (v Value) CharValue() rune {
	if v.kind != KindChar {
		return 0
	}
	return rune(v.num)
}

// Equal reports whether a and b are the same tree. Floats compare by value,
// so NaN never equals itself.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindList:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindAtom, KindString, KindKeyword:
		return a.text == b.text
	case KindFloat:
		return a.float == b.float
	default:
		return a.num == b.num
	}
}
