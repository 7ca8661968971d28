// Package sexpr implements the S-expression tree used by KiCad schematic
// files. A parsed document is a tree of three node kinds: lists, bare atoms
// and quoted strings. Nodes are immutable once built; child order is source
// order and a list's first atom conventionally names the construct
// (e.g. symbol, wire, version).
package sexpr

import "strconv"

// Node is a single S-expression tree node. Exactly three types implement
// it: *List, Atom and Str. The interface is sealed so an atom can never
// carry children.
type Node interface {
	String() string
	node()
}

// List is a parenthesized sequence of nodes.
type List struct {
	Items []Node
}

// Atom is a bare token: an identifier, keyword or number.
type Atom string

// Str is a quoted string literal. The quotes are not part of the value.
type Str string

func (*List) node() {}
func (Atom) node()  {}
func (Str) node()   {}

// Tag returns the list's leading atom, or "" when the list is empty or
// starts with something other than an atom.
func (l *List) Tag() string {
	if len(l.Items) == 0 {
		return ""
	}
	if a, ok := l.Items[0].(Atom); ok {
		return string(a)
	}
	return ""
}

// Find returns the first child list tagged with key.
func (l *List) Find(key string) (*List, bool) {
	for _, item := range l.Items {
		if sub, ok := item.(*List); ok && sub.Tag() == key {
			return sub, true
		}
	}
	return nil, false
}

// FindAll returns every child list tagged with key, in source order.
func (l *List) FindAll(key string) []*List {
	var result []*List
	for _, item := range l.Items {
		if sub, ok := item.(*List); ok && sub.Tag() == key {
			result = append(result, sub)
		}
	}
	return result
}

// Text returns the textual value of the child at index, whether it is an
// atom or a quoted string. Index 0 is the tag.
func (l *List) Text(index int) (string, bool) {
	if index < 0 || index >= len(l.Items) {
		return "", false
	}
	switch v := l.Items[index].(type) {
	case Atom:
		return string(v), true
	case Str:
		return string(v), true
	}
	return "", false
}

// Float parses the child at index as a float64.
func (l *List) Float(index int) (float64, bool) {
	s, ok := l.Text(index)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Int parses the child at index as an int.
func (l *List) Int(index int) (int, bool) {
	s, ok := l.Text(index)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Equal reports structural equality of two trees. Whitespace never enters
// the tree, so this is the whitespace-insensitive comparison used to check
// transformation round-trips. An Atom and a Str are never equal even when
// they hold the same text.
func Equal(a, b Node) bool {
	switch av := a.(type) {
	case Atom:
		bv, ok := b.(Atom)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	}
	return false
}
