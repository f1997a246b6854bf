package encoding

import (
	"testing"

	"github.com/rdfspace/rdfspace/pkg/rdf"
)

func TestKeyIsStable(t *testing.T) {
	terms := []rdf.Term{
		rdf.IRI{Value: "http://example.org/a"},
		rdf.BlankNode{ID: "b1"},
		rdf.NewString("x"),
		rdf.NewText("x", "en", rdf.LTR),
		rdf.TripleTerm{S: rdf.IRI{Value: "ex:a"}, P: rdf.IRI{Value: "ex:p"}, O: rdf.NewString("x")},
	}

	for _, term := range terms {
		if Key(term) != Key(term) {
			t.Errorf("Expected a stable key for %s", term)
		}
	}
}

func TestKeyDistinguishesTerms(t *testing.T) {
	terms := []rdf.Term{
		rdf.IRI{Value: "x"},
		rdf.BlankNode{ID: "x"},
		rdf.NewString("x"),
		rdf.Literal{Lexical: "x", Datatype: rdf.XSDInteger},
		rdf.NewText("x", "en", ""),
		rdf.NewText("x", "EN", ""), // language tags keep their case
		rdf.NewText("x", "en", rdf.LTR),
		rdf.TripleTerm{S: rdf.IRI{Value: "x"}, P: rdf.IRI{Value: "x"}, O: rdf.IRI{Value: "x"}},
	}

	seen := make(map[TermKey]rdf.Term)
	for _, term := range terms {
		key := Key(term)
		if prev, ok := seen[key]; ok {
			t.Errorf("Key collision between %s and %s", prev, term)
		}
		seen[key] = term
	}
}

func TestKeyKindByte(t *testing.T) {
	if Key(rdf.IRI{Value: "x"})[0] != byte(rdf.KindIRI) {
		t.Error("Expected the kind byte to lead the key")
	}
	if Key(rdf.BlankNode{ID: "x"})[0] != byte(rdf.KindBlankNode) {
		t.Error("Expected the kind byte to lead the key")
	}
}

// Field boundaries must not leak: shifting a byte between adjacent fields
// has to change the key.
func TestKeyFieldBoundaries(t *testing.T) {
	a := rdf.Literal{Lexical: "ab", Datatype: rdf.IRI{Value: "c"}}
	b := rdf.Literal{Lexical: "a", Datatype: rdf.IRI{Value: "bc"}}
	if Key(a) == Key(b) {
		t.Error("Expected length-prefixed fields to keep keys distinct")
	}
}
