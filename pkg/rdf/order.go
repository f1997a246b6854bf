package rdf

import (
	"cmp"
	"strings"
)

// Compare imposes a total order over terms for deterministic sorting:
// IRI < BlankNode < Literal < TripleTerm, then same-kind terms by their
// natural field order. The order is presentation-only and is never used
// for index structure.
func Compare(a, b Term) int {
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}

	switch at := a.(type) {
	case IRI:
		return strings.Compare(at.Value, b.(IRI).Value)
	case BlankNode:
		return strings.Compare(at.ID, b.(BlankNode).ID)
	case Literal:
		bt := b.(Literal)
		if c := strings.Compare(at.Lexical, bt.Lexical); c != 0 {
			return c
		}
		if c := strings.Compare(at.Datatype.Value, bt.Datatype.Value); c != 0 {
			return c
		}
		if c := strings.Compare(at.Language, bt.Language); c != 0 {
			return c
		}
		return strings.Compare(string(at.Dir), string(bt.Dir))
	case TripleTerm:
		bt := b.(TripleTerm)
		if c := Compare(at.S, bt.S); c != 0 {
			return c
		}
		if c := Compare(at.P, bt.P); c != 0 {
			return c
		}
		return Compare(at.O, bt.O)
	}

	return 0
}
