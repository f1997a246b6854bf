// Package graph implements an in-memory RDF resource model: a per-model
// interning table mapping terms to canonical resources, forward and
// reverse statement indexes on every resource, and a dataset layer
// routing triples and quads between a default and named models.
//
// The model is single-threaded: mutation must not run concurrently with
// other mutation or with reads.
package graph

import (
	"iter"

	"github.com/rdfspace/rdfspace/pkg/rdf"
)

// propSet is a set of asserted statements. Propositions are interned, so
// pointer identity coincides with term identity.
type propSet map[*Proposition]struct{}

// Resource is a model-scoped canonical wrapper around exactly one term.
// Resources are created only through Model.Get: obtaining a resource for
// the same term twice from the same model yields the same instance.
//
// The concrete variants are Blank, Identified, Proposition, DataValue and
// TextValue; subject-capable variants additionally satisfy Described.
type Resource interface {
	// Term returns the wrapped term.
	Term() rdf.Term

	// Model returns the owning model.
	Model() *Model

	// Subjects yields every resource that is the subject of an asserted
	// statement (subject, pred, this).
	Subjects(pred rdf.IRI) iter.Seq[Resource]

	// ObjectOf yields the asserted statements that have this resource in
	// object position under pred.
	ObjectOf(pred rdf.IRI) iter.Seq[*Proposition]

	base() *resource
}

// Described is a subject-capable resource: one that can carry statements
// about itself. Blank, Identified and Proposition satisfy it.
type Described interface {
	Resource

	// Objects yields every object of an asserted statement
	// (this, pred, object).
	Objects(pred rdf.IRI) iter.Seq[Resource]

	// Statements yields the asserted statements with this resource as
	// subject, optionally restricted to the given predicates.
	Statements(preds ...rdf.IRI) iter.Seq[*Proposition]

	// Has reports whether (this, pred, obj) is currently asserted.
	Has(pred rdf.IRI, obj Resource) bool

	// Add asserts (this, pred, obj); false if it was already asserted.
	Add(pred rdf.IRI, obj Resource) bool

	// AddTerm interns obj in the owning model and asserts
	// (this, pred, obj).
	AddTerm(pred rdf.IRI, obj rdf.Term) bool

	// Remove retracts (this, pred, obj); false if it was not asserted.
	Remove(pred rdf.IRI, obj Resource) bool

	// RemoveAll retracts every statement (this, pred, *); false if none
	// was asserted. Reverse index entries are removed symmetrically.
	RemoveAll(pred rdf.IRI) bool

	// AsList decodes the rdf:first/rdf:rest chain starting at this
	// resource. The second result is false when the chain is not a
	// well-formed list.
	AsList() ([]Resource, bool)

	// AddList asserts (this, pred, head) where head encodes items as an
	// rdf:first/rdf:rest chain, and returns the head.
	AddList(pred rdf.IRI, items ...Resource) Described

	desc() *described
}

// resource carries the state common to all variants: the term, the owning
// model and the reverse (object-side) index.
type resource struct {
	model    *Model
	term     rdf.Term
	objectOf map[rdf.IRI]propSet
}

func (r *resource) base() *resource { return r }

// Term returns the wrapped term.
func (r *resource) Term() rdf.Term { return r.term }

// Model returns the owning model.
func (r *resource) Model() *Model { return r.model }

// ObjectOf yields the asserted statements that have this resource in
// object position under pred.
func (r *resource) ObjectOf(pred rdf.IRI) iter.Seq[*Proposition] {
	return setSeq(r.objectOf[pred])
}

// Subjects yields every resource that is the subject of an asserted
// statement (subject, pred, this).
func (r *resource) Subjects(pred rdf.IRI) iter.Seq[Resource] {
	return func(yield func(Resource) bool) {
		for prop := range r.objectOf[pred] {
			if prop.subject == nil {
				continue
			}
			if !yield(prop.subject) {
				return
			}
		}
	}
}

// described adds the forward (subject-side) index.
type described struct {
	resource
	description map[rdf.IRI]propSet
}

func (d *described) desc() *described { return d }

// Objects yields every object of an asserted statement (this, pred, object).
func (d *described) Objects(pred rdf.IRI) iter.Seq[Resource] {
	return func(yield func(Resource) bool) {
		for prop := range d.description[pred] {
			if !yield(prop.object) {
				return
			}
		}
	}
}

// Statements yields the asserted statements with this resource as
// subject, optionally restricted to the given predicates.
func (d *described) Statements(preds ...rdf.IRI) iter.Seq[*Proposition] {
	return func(yield func(*Proposition) bool) {
		if len(preds) == 0 {
			for _, props := range d.description {
				for prop := range props {
					if !yield(prop) {
						return
					}
				}
			}
			return
		}
		for _, pred := range preds {
			for prop := range d.description[pred] {
				if !yield(prop) {
					return
				}
			}
		}
	}
}

// Has reports whether (this, pred, obj) is currently asserted.
func (d *described) Has(pred rdf.IRI, obj Resource) bool {
	return d.model.has(d, pred, obj)
}

// Add asserts (this, pred, obj); false if it was already asserted.
func (d *described) Add(pred rdf.IRI, obj Resource) bool {
	return d.model.add(d, pred, obj)
}

// AddTerm interns obj in the owning model and asserts (this, pred, obj).
func (d *described) AddTerm(pred rdf.IRI, obj rdf.Term) bool {
	return d.model.add(d, pred, d.model.Get(obj))
}

// Remove retracts (this, pred, obj); false if it was not asserted.
func (d *described) Remove(pred rdf.IRI, obj Resource) bool {
	return d.model.remove(d, pred, obj)
}

// RemoveAll retracts every statement (this, pred, *).
func (d *described) RemoveAll(pred rdf.IRI) bool {
	return d.model.removeAll(d, pred)
}

// Blank is the resource variant for blank node terms.
type Blank struct {
	described
}

// Ref returns the blank node term.
func (b *Blank) Ref() rdf.BlankNode { return b.term.(rdf.BlankNode) }

// Identified is the resource variant for IRI terms. Besides being
// subject-capable it tracks the statements using it as predicate.
type Identified struct {
	described
	predicateOf propSet
}

// IRI returns the identifying term.
func (i *Identified) IRI() rdf.IRI { return i.term.(rdf.IRI) }

// PredicateOf yields every asserted statement whose predicate is this
// resource.
func (i *Identified) PredicateOf() iter.Seq[*Proposition] {
	return setSeq(i.predicateOf)
}

// Proposition is the resource variant for triple terms. It is addressable
// independently of whether its triple is currently asserted, and being
// subject-capable it supports nested reification.
type Proposition struct {
	described
	subject   Described
	predicate *Identified
	object    Resource
}

// TripleTerm returns the reified triple.
func (p *Proposition) TripleTerm() rdf.TripleTerm { return p.term.(rdf.TripleTerm) }

// Subject returns the triple's subject resolved through the owning model,
// or nil when the subject term is not subject-capable.
func (p *Proposition) Subject() Described { return p.subject }

// Predicate returns the triple's predicate resolved through the owning
// model.
func (p *Proposition) Predicate() *Identified { return p.predicate }

// Object returns the triple's object resolved through the owning model.
func (p *Proposition) Object() Resource { return p.object }

// IsFact reports whether the proposition's triple is currently asserted.
func (p *Proposition) IsFact() bool {
	if p.subject == nil {
		return false
	}
	return p.subject.Has(p.predicate.IRI(), p.object)
}

// value carries the state shared by the literal-wrapping variants.
type value struct {
	resource
}

// Literal returns the wrapped literal term.
func (v *value) Literal() rdf.Literal { return v.term.(rdf.Literal) }

// Datatype returns the literal's datatype resource.
func (v *value) Datatype() *Identified {
	return v.model.Get(v.Literal().Datatype).(*Identified)
}

// DataValue is the resource variant for non-language-tagged literals.
type DataValue struct {
	value
	data    any
	decoded bool
}

// Value returns the literal's decoded native value. The second result is
// false when the lexical form was not decodable by the model's registry.
func (dv *DataValue) Value() (any, bool) { return dv.data, dv.decoded }

// TextValue is the resource variant for language-tagged literals.
type TextValue struct {
	value
}

// Language returns the literal's language tag.
func (tv *TextValue) Language() string { return tv.Literal().Language }

// Dir returns the literal's base direction, if any.
func (tv *TextValue) Dir() rdf.Direction { return tv.Literal().Dir }

func setSeq(props propSet) iter.Seq[*Proposition] {
	return func(yield func(*Proposition) bool) {
		for prop := range props {
			if !yield(prop) {
				return
			}
		}
	}
}
