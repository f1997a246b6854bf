package graph

import (
	"fmt"
	"iter"

	"github.com/google/uuid"

	"github.com/rdfspace/rdfspace/pkg/rdf"
	"github.com/rdfspace/rdfspace/pkg/values"
)

// Space is a dataset: one default model plus named models created lazily,
// all sharing one blank-node namespace. Blank nodes minted by the space
// carry a space-unique prefix, so they never collide with each other
// across models.
type Space struct {
	def   *Model
	named map[rdf.Reference]*Model

	// names preserves first-use order of the named models for Encode.
	names []rdf.Reference

	bnodeUniq    string
	bnodeCounter uint64

	registry *values.Registry
}

// NewSpace returns an empty space using the default codec registry.
func NewSpace() *Space {
	return NewSpaceWithRegistry(values.Default)
}

// NewSpaceWithRegistry returns an empty space whose models decode literal
// values through the given registry.
func NewSpaceWithRegistry(registry *values.Registry) *Space {
	s := &Space{
		named:     make(map[rdf.Reference]*Model),
		bnodeUniq: uuid.NewString()[:8],
		registry:  registry,
	}
	s.def = newModel(s)
	return s
}

// Default returns the default model.
func (s *Space) Default() *Model { return s.def }

// Named returns the model of the named graph, creating it on first use.
func (s *Space) Named(name rdf.Reference) *Model {
	model, ok := s.named[name]
	if !ok {
		model = newModel(s)
		s.named[name] = model
		s.names = append(s.names, name)
	}
	return model
}

// Models yields the named models in first-use order.
func (s *Space) Models() iter.Seq2[rdf.Reference, *Model] {
	return func(yield func(rdf.Reference, *Model) bool) {
		for _, name := range s.names {
			if !yield(name, s.named[name]) {
				return
			}
		}
	}
}

// NewBlankNode mints a blank node. When id is non-empty it is wrapped
// verbatim and uniqueness is the caller's responsibility; otherwise the
// node gets a space-unique, monotonically increasing identifier.
func (s *Space) NewBlankNode(id string) rdf.BlankNode {
	if id != "" {
		return rdf.BlankNode{ID: id}
	}
	s.bnodeCounter++
	return rdf.BlankNode{ID: fmt.Sprintf("b-%s-%d", s.bnodeUniq, s.bnodeCounter)}
}

// Decode ingests a sequence of statements, routing triples (nil graph) to
// the default model and quads to the model named by their graph term. It
// returns the number of statements that were newly asserted; duplicates
// anywhere in the stream do not count.
func (s *Space) Decode(data iter.Seq[rdf.Quad]) int {
	count := 0
	for q := range data {
		model := s.def
		if q.G != nil {
			model = s.Named(q.G)
		}

		subj := model.Described(q.S)
		obj := model.Get(q.O)

		if model.Add(subj, q.P, obj) {
			count++
		}
	}
	return count
}

// Encode produces the current dataset as a lazy sequence: the default
// model's statements as bare triples, then each named model's statements
// tagged with its graph name, in first-use order of the models. Statement
// order within a model is unspecified. The sequence is bounded by the
// store contents; mutating the space while consuming it is undefined.
func (s *Space) Encode() iter.Seq[rdf.Quad] {
	return func(yield func(rdf.Quad) bool) {
		for t := range s.def.Triples() {
			if !yield(t.ToQuad()) {
				return
			}
		}
		for _, name := range s.names {
			for t := range s.named[name].Triples() {
				if !yield(t.InGraph(name)) {
					return
				}
			}
		}
	}
}
