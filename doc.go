// Package sexpr writes value trees as S-expressions in several Lisp
// dialects, either compact on one line or pretty-printed within a line
// width.
//
// Pretty output keeps a list on one line when it fits, closing delimiters
// included, and otherwise breaks it with a hanging indent: the first child
// stays next to the opening parenthesis and later children align under it.
// Optional ANSI colour never changes the layout.
//
// Basic usage:
//
//	v := value.Strings("hello", "this", "is", "a", "lisp", "list")
//	w := sexpr.NewWriter(sexpr.DefaultOptions().WithLineWidth(20)).PrettyPrinted(true)
//	if err := w.Write(os.Stdout, v); err != nil {
//		log.Fatal(err)
//	}
//
// prints
//
//	("hello" "this" "is"
//	 "a" "lisp" "list")
//
// Converting Go data:
//
//	v, err := value.From(map[string]any{"name": "demo", "tags": []string{"a", "b"}})
//	if err != nil {
//		log.Fatal(err)
//	}
//	s, _ := sexpr.NewWriter(sexpr.DefaultOptions().WithStyle(dialect.CommonLisp)).WriteString(v)
//	// ((name "demo") (tags ("a" "b")))
package sexpr
