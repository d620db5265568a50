package value

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
)

// ErrUnsupported is returned by From for Go values with no S-expression form.
var ErrUnsupported = errors.New("value: unsupported type")

// Primitive is the set of Go types ListOf converts element-wise.
type Primitive interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ListOf returns a list with one child per item. Strings become string
// literals, as From does.
func ListOf[T Primitive](items ...T) Value {
	out := make([]Value, len(items))
	for i, it := range items {
		out[i] = fromKind(reflect.ValueOf(it))
	}
	return Value{kind: KindList, items: out}
}

// From converts Go data into a Value.
//
// Strings become string literals, booleans and numbers become the matching
// leaves, json.Number keeps its integer or float form, slices and arrays
// become lists, and maps become lists of (key value) pairs ordered by key.
// A nil interface, pointer, slice or map becomes the empty list. Values pass
// through unchanged.
func From(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return t, nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("value: json number %q: %w", t.String(), err)
		}
		return Float(f), nil
	}
	return fromReflect(reflect.ValueOf(x))
}

// MustFrom is like From but panics on error.
func MustFrom(x any) Value {
	v, err := From(x)
	if err != nil {
		panic(err)
	}
	return v
}

func fromReflect(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return Value{}, nil
	}
	if rv.CanInterface() {
		switch t := rv.Interface().(type) {
		case Value:
			return t, nil
		case json.Number:
			return From(t)
		}
	}
	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return Value{}, nil
		}
		return fromReflect(rv.Elem())
	case reflect.Slice:
		if rv.IsNil() {
			return Value{}, nil
		}
		return fromSeq(rv)
	case reflect.Array:
		return fromSeq(rv)
	case reflect.Map:
		return fromMap(rv)
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return fromKind(rv), nil
	}
	return Value{}, fmt.Errorf("%w: %s", ErrUnsupported, rv.Type())
}

// fromKind converts scalar kinds. Unsigned values beyond int64 are kept as
// floats.
func fromKind(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > 1<<63-1 {
			return Float(float64(u))
		}
		return Int(int64(u))
	case reflect.Float32:
		f, _ := strconv.ParseFloat(strconv.FormatFloat(rv.Float(), 'g', -1, 32), 64)
		return Float(f)
	case reflect.Float64:
		return Float(rv.Float())
	}
	return Value{}
}

func fromSeq(rv reflect.Value) (Value, error) {
	items := make([]Value, rv.Len())
	for i := range items {
		v, err := fromReflect(rv.Index(i))
		if err != nil {
			return Value{}, fmt.Errorf("index %d: %w", i, err)
		}
		items[i] = v
	}
	return Value{kind: KindList, items: items}, nil
}

// mapEntry orders by printed key, then by the key's dynamic type and Go
// syntax, then by the value's, so keys that print alike (1 and "1") keep a
// fixed order.
type mapEntry struct {
	key    string
	keyTyp string
	keyGo  string
	valGo  string
	rawKey reflect.Value
	val    reflect.Value
}

func compareEntries(a, b mapEntry) int {
	return cmp.Or(
		cmp.Compare(a.key, b.key),
		cmp.Compare(a.keyTyp, b.keyTyp),
		cmp.Compare(a.keyGo, b.keyGo),
		cmp.Compare(a.valGo, b.valGo),
	)
}

func fromMap(rv reflect.Value) (Value, error) {
	if rv.IsNil() {
		return Value{}, nil
	}
	entries := make([]mapEntry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, mapEntry{key: mapKey(iter.Key()), rawKey: iter.Key(), val: iter.Value()})
	}
	slices.SortFunc(entries, compareEntries)
	for i := 1; i < len(entries); i++ {
		if entries[i].key == entries[i-1].key {
			describeEntries(entries)
			slices.SortFunc(entries, compareEntries)
			break
		}
	}

	items := make([]Value, len(entries))
	for i, e := range entries {
		v, err := fromReflect(e.val)
		if err != nil {
			return Value{}, fmt.Errorf("key %q: %w", e.key, err)
		}
		items[i] = Value{kind: KindList, items: []Value{Atom(e.key), v}}
	}
	return Value{kind: KindList, items: items}, nil
}

// describeEntries fills the tie-break fields, which only matter when two keys
// print the same.
func describeEntries(entries []mapEntry) {
	for i := range entries {
		e := &entries[i]
		k := e.rawKey
		for k.Kind() == reflect.Interface && !k.IsNil() {
			k = k.Elem()
		}
		e.keyTyp = k.Type().String()
		e.keyGo = fmt.Sprintf("%#v", k.Interface())
		e.valGo = fmt.Sprintf("%#v", e.val.Interface())
	}
}

func mapKey(k reflect.Value) string {
	for k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}
