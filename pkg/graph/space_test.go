package graph

import (
	"slices"
	"testing"

	"github.com/rdfspace/rdfspace/pkg/rdf"
)

// ===== Routing and counting tests =====

func TestDecodeCountsNewStatements(t *testing.T) {
	s := NewSpace()
	data := []rdf.Quad{
		rdf.Triple{S: exA, P: exKnows, O: exB}.ToQuad(),
		rdf.Triple{S: exA, P: exKnows, O: exB}.ToQuad(), // duplicate
		rdf.Triple{S: exB, P: exKnows, O: exC}.ToQuad(),
		rdf.Triple{S: exA, P: exKnows, O: exB}.InGraph(rdf.IRI{Value: "ex:g"}), // same triple, other graph
	}

	if got := s.Decode(slices.Values(data)); got != 3 {
		t.Errorf("Expected 3 newly asserted statements, got %d", got)
	}
	// A second pass asserts nothing new.
	if got := s.Decode(slices.Values(data)); got != 0 {
		t.Errorf("Expected 0 on replay, got %d", got)
	}
}

func TestDecodeRoutesToNamedModels(t *testing.T) {
	s := NewSpace()
	g := rdf.IRI{Value: "ex:g"}
	s.Decode(slices.Values([]rdf.Quad{
		rdf.Triple{S: exA, P: exKnows, O: exB}.InGraph(g),
	}))

	if len(slices.Collect(s.Default().Triples())) != 0 {
		t.Error("Expected the default model untouched by a quad")
	}

	named := s.Named(g)
	if !named.Described(exA).Has(exKnows, named.Get(exB)) {
		t.Error("Expected the statement asserted in the named model")
	}

	// Resources are scoped per model.
	if s.Default().Get(exA) == Resource(named.Get(exA)) {
		t.Error("Expected distinct resources in default and named models")
	}
}

func TestNamedModelsAreLazyAndStable(t *testing.T) {
	s := NewSpace()
	g := rdf.IRI{Value: "ex:g"}

	before := 0
	for range s.Models() {
		before++
	}
	if before != 0 {
		t.Errorf("Expected no named models before first use, got %d", before)
	}
	if s.Named(g) != s.Named(g) {
		t.Error("Expected the same model instance on repeated access")
	}

	after := 0
	for range s.Models() {
		after++
	}
	if after != 1 {
		t.Errorf("Expected 1 named model after first use, got %d", after)
	}
}

// ===== Round-trip tests =====

func TestEncodeDecodeRoundTrip(t *testing.T) {
	dataset := []rdf.Quad{
		rdf.Triple{S: exA, P: exKnows, O: exB}.ToQuad(),
		rdf.Triple{S: exA, P: exName, O: rdf.NewString("Alice")}.ToQuad(),
		rdf.Triple{S: rdf.BlankNode{ID: "b0"}, P: exKnows, O: exA}.ToQuad(),
		rdf.Triple{S: exB, P: exKnows, O: exC}.InGraph(rdf.IRI{Value: "ex:g1"}),
		rdf.Triple{S: exC, P: exName, O: rdf.NewText("x", "en", "")}.InGraph(rdf.BlankNode{ID: "g2"}),
	}

	s := NewSpace()
	if got := s.Decode(slices.Values(dataset)); got != len(dataset) {
		t.Fatalf("Expected %d statements decoded, got %d", len(dataset), got)
	}

	got := slices.Collect(s.Encode())
	if len(got) != len(dataset) {
		t.Fatalf("Expected %d statements encoded, got %d", len(dataset), len(got))
	}

	want := make(map[rdf.Quad]bool, len(dataset))
	for _, q := range dataset {
		want[q] = true
	}
	for _, q := range got {
		if !want[q] {
			t.Errorf("Unexpected statement: %s", q)
		}
		delete(want, q)
	}
	for q := range want {
		t.Errorf("Missing statement: %s", q)
	}
}

func TestEncodeNamedModelOrder(t *testing.T) {
	s := NewSpace()
	g1 := rdf.IRI{Value: "ex:g1"}
	g2 := rdf.IRI{Value: "ex:g2"}
	s.Decode(slices.Values([]rdf.Quad{
		rdf.Triple{S: exA, P: exKnows, O: exB}.InGraph(g2),
		rdf.Triple{S: exA, P: exKnows, O: exB}.InGraph(g1),
	}))

	quads := slices.Collect(s.Encode())
	if len(quads) != 2 {
		t.Fatalf("Expected 2 quads, got %d", len(quads))
	}
	if quads[0].G != rdf.Reference(g2) || quads[1].G != rdf.Reference(g1) {
		t.Errorf("Expected first-use graph order g2, g1; got %v, %v", quads[0].G, quads[1].G)
	}
}

func TestEncodeIsLazy(t *testing.T) {
	s := NewSpace()
	s.Decode(slices.Values([]rdf.Quad{
		rdf.Triple{S: exA, P: exKnows, O: exB}.ToQuad(),
		rdf.Triple{S: exB, P: exKnows, O: exC}.ToQuad(),
	}))

	// Early termination must not drain the sequence producer.
	count := 0
	for range s.Encode() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("Expected a single yielded statement, got %d", count)
	}
}

// ===== Blank node tests =====

func TestNewBlankNodeUniqueness(t *testing.T) {
	s := NewSpace()
	seen := make(map[rdf.BlankNode]bool)
	for i := 0; i < 1000; i++ {
		b := s.NewBlankNode("")
		if seen[b] {
			t.Fatalf("Duplicate blank node minted: %s", b)
		}
		seen[b] = true
	}
}

func TestNewBlankNodeVerbatim(t *testing.T) {
	s := NewSpace()
	b := s.NewBlankNode("custom")
	if b.ID != "custom" {
		t.Errorf("Expected verbatim id, got %q", b.ID)
	}
}

func TestNewBlankNodesDifferAcrossSpaces(t *testing.T) {
	s1 := NewSpace()
	s2 := NewSpace()
	if s1.NewBlankNode("") == s2.NewBlankNode("") {
		t.Error("Expected space-unique prefixes to keep minted nodes distinct")
	}
}

func TestModelNewBlankIsInterned(t *testing.T) {
	m := NewModel()
	b := m.NewBlank()
	if m.Get(b.Term()) != Resource(b) {
		t.Error("Expected the minted blank resource to be canonical")
	}
}

// ===== Concrete scenario =====

func TestKnowsScenario(t *testing.T) {
	s := NewSpace()
	triple := rdf.Triple{S: rdf.IRI{Value: "ex:a"}, P: rdf.IRI{Value: "ex:knows"}, O: rdf.IRI{Value: "ex:b"}}

	if got := s.Decode(slices.Values([]rdf.Quad{triple.ToQuad()})); got != 1 {
		t.Fatalf("Expected count 1, got %d", got)
	}

	m := s.Default()
	a := m.Described(rdf.IRI{Value: "ex:a"})
	objects := slices.Collect(a.Objects(rdf.IRI{Value: "ex:knows"}))
	if len(objects) != 1 || objects[0].Term() != rdf.Term(rdf.IRI{Value: "ex:b"}) {
		t.Fatalf("Expected {ex:b}, got %v", objects)
	}

	if !m.Remove(a, rdf.IRI{Value: "ex:knows"}, objects[0]) {
		t.Fatal("Expected Remove to succeed")
	}
	if got := slices.Collect(a.Objects(rdf.IRI{Value: "ex:knows"})); len(got) != 0 {
		t.Errorf("Expected empty set after Remove, got %v", got)
	}
	if _, ok := a.desc().description[rdf.IRI{Value: "ex:knows"}]; ok {
		t.Error("Expected the predicate key absent from the index map")
	}
}
