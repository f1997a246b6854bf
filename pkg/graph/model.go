package graph

import (
	"iter"

	"github.com/rdfspace/rdfspace/internal/encoding"
	"github.com/rdfspace/rdfspace/pkg/rdf"
	"github.com/rdfspace/rdfspace/pkg/values"
)

// Model owns one graph: a term interning table and the set of statements
// currently asserted in the graph.
type Model struct {
	space     *Space
	resources map[encoding.TermKey]Resource
}

// NewModel returns a standalone model owning its own space.
func NewModel() *Model {
	return NewSpace().Default()
}

func newModel(space *Space) *Model {
	return &Model{
		space:     space,
		resources: make(map[encoding.TermKey]Resource),
	}
}

// Space returns the owning space.
func (m *Model) Space() *Space { return m.space }

// Get returns the canonical resource for a term, constructing and caching
// the matching variant on first use. This is the only way resources are
// created; it never fails for well-formed terms.
func (m *Model) Get(term rdf.Term) Resource {
	key := encoding.Key(term)
	if r, ok := m.resources[key]; ok {
		return r
	}
	r := m.newResource(term)
	m.resources[key] = r
	return r
}

// peek returns the canonical resource for a term without creating one.
func (m *Model) peek(term rdf.Term) Resource {
	return m.resources[encoding.Key(term)]
}

// Described returns the canonical subject-capable resource for a
// reference.
func (m *Model) Described(ref rdf.Reference) Described {
	return m.Get(ref).(Described)
}

// Proposition returns the canonical resource for a triple term.
func (m *Model) Proposition(t rdf.TripleTerm) *Proposition {
	return m.Get(t).(*Proposition)
}

// NewBlank interns a blank node freshly minted by the owning space.
func (m *Model) NewBlank() *Blank {
	return m.Get(m.space.NewBlankNode("")).(*Blank)
}

func (m *Model) newResource(term rdf.Term) Resource {
	switch t := term.(type) {
	case rdf.IRI:
		return &Identified{
			described:   m.newDescribed(t),
			predicateOf: make(propSet),
		}
	case rdf.BlankNode:
		return &Blank{described: m.newDescribed(t)}
	case rdf.Literal:
		if t.Language != "" {
			return &TextValue{value: m.newValue(t)}
		}
		dv := &DataValue{value: m.newValue(t)}
		if data, err := m.registry().Decode(t); err == nil {
			dv.data, dv.decoded = data, true
		}
		return dv
	case rdf.TripleTerm:
		p := &Proposition{described: m.newDescribed(t)}
		p.subject, _ = m.Get(t.S).(Described)
		p.predicate = m.Get(t.P).(*Identified)
		p.object = m.Get(t.O)
		return p
	}
	panic("graph: malformed term")
}

func (m *Model) newDescribed(term rdf.Term) described {
	return described{
		resource:    m.newBase(term),
		description: make(map[rdf.IRI]propSet),
	}
}

func (m *Model) newValue(term rdf.Literal) value {
	return value{resource: m.newBase(term)}
}

func (m *Model) newBase(term rdf.Term) resource {
	return resource{
		model:    m,
		term:     term,
		objectOf: make(map[rdf.IRI]propSet),
	}
}

func (m *Model) registry() *values.Registry {
	if m.space != nil && m.space.registry != nil {
		return m.space.registry
	}
	return values.Default
}

// Add asserts the statement (subj, pred, obj). It returns false without
// changing anything when the statement is already asserted. Both index
// sides and the predicate-usage index are updated together.
func (m *Model) Add(subj Described, pred rdf.IRI, obj Resource) bool {
	return m.add(subj.desc(), pred, obj)
}

func (m *Model) add(subj *described, pred rdf.IRI, obj Resource) bool {
	prop := m.Proposition(rdf.TripleTerm{S: subj.term, P: pred, O: obj.Term()})

	props := subj.description[pred]
	if _, ok := props[prop]; ok {
		return false
	}
	if props == nil {
		props = make(propSet)
		subj.description[pred] = props
	}
	props[prop] = struct{}{}

	m.Get(pred).(*Identified).predicateOf[prop] = struct{}{}

	reverse := obj.base().objectOf[pred]
	if reverse == nil {
		reverse = make(propSet)
		obj.base().objectOf[pred] = reverse
	}
	reverse[prop] = struct{}{}

	return true
}

func (m *Model) has(subj *described, pred rdf.IRI, obj Resource) bool {
	props := subj.description[pred]
	if len(props) == 0 {
		return false
	}
	prop, ok := m.peek(rdf.TripleTerm{S: subj.term, P: pred, O: obj.Term()}).(*Proposition)
	if !ok {
		return false
	}
	_, asserted := props[prop]
	return asserted
}

// Remove retracts the statement (subj, pred, obj). It returns false when
// the statement is not asserted. Emptied index buckets are deleted so
// that absent predicates never linger as empty map entries.
func (m *Model) Remove(subj Described, pred rdf.IRI, obj Resource) bool {
	return m.remove(subj.desc(), pred, obj)
}

func (m *Model) remove(subj *described, pred rdf.IRI, obj Resource) bool {
	props := subj.description[pred]
	if len(props) == 0 {
		return false
	}

	prop, ok := m.peek(rdf.TripleTerm{S: subj.term, P: pred, O: obj.Term()}).(*Proposition)
	if !ok {
		return false
	}
	if _, asserted := props[prop]; !asserted {
		return false
	}

	delete(props, prop)
	if len(props) == 0 {
		delete(subj.description, pred)
	}

	m.unindex(prop, pred, obj)
	return true
}

// RemoveAll retracts every statement (subj, pred, *), returning false
// when none was asserted. Reverse index entries of the formerly linked
// objects are removed too, keeping both sides consistent.
func (m *Model) RemoveAll(subj Described, pred rdf.IRI) bool {
	return m.removeAll(subj.desc(), pred)
}

func (m *Model) removeAll(subj *described, pred rdf.IRI) bool {
	props, ok := subj.description[pred]
	if !ok {
		return false
	}

	for prop := range props {
		m.unindex(prop, pred, prop.object)
	}
	delete(subj.description, pred)
	return true
}

// unindex removes a proposition from the predicate-usage index and from
// the object's reverse bucket, pruning the bucket when it empties.
func (m *Model) unindex(prop *Proposition, pred rdf.IRI, obj Resource) {
	delete(m.Get(pred).(*Identified).predicateOf, prop)

	reverse := obj.base().objectOf[pred]
	delete(reverse, prop)
	if len(reverse) == 0 {
		delete(obj.base().objectOf, pred)
	}
}

// Resources yields every resource interned in the model, asserted or not.
func (m *Model) Resources() iter.Seq[Resource] {
	return func(yield func(Resource) bool) {
		for _, r := range m.resources {
			if !yield(r) {
				return
			}
		}
	}
}

// Subjects yields every resource that is the subject of at least one
// asserted statement.
func (m *Model) Subjects() iter.Seq[Described] {
	return func(yield func(Described) bool) {
		for _, r := range m.resources {
			if d, ok := r.(Described); ok && len(d.desc().description) > 0 {
				if !yield(d) {
					return
				}
			}
		}
	}
}

// Predicates yields every resource used as predicate of at least one
// asserted statement.
func (m *Model) Predicates() iter.Seq[*Identified] {
	return func(yield func(*Identified) bool) {
		for _, r := range m.resources {
			if i, ok := r.(*Identified); ok && len(i.predicateOf) > 0 {
				if !yield(i) {
					return
				}
			}
		}
	}
}

// Objects yields every resource in object position of at least one
// asserted statement.
func (m *Model) Objects() iter.Seq[Resource] {
	return func(yield func(Resource) bool) {
		for _, r := range m.resources {
			if len(r.base().objectOf) > 0 {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// Statements yields every asserted statement in the model.
func (m *Model) Statements() iter.Seq[*Proposition] {
	return func(yield func(*Proposition) bool) {
		for subj := range m.Subjects() {
			for prop := range subj.Statements() {
				if !yield(prop) {
					return
				}
			}
		}
	}
}

// Triples yields every asserted statement reconstructed as a plain
// triple. Statements whose subject is itself a reified triple cannot be
// expressed as a triple and are skipped.
func (m *Model) Triples() iter.Seq[rdf.Triple] {
	return func(yield func(rdf.Triple) bool) {
		for prop := range m.Statements() {
			t := prop.TripleTerm()
			s, ok := t.S.(rdf.Reference)
			if !ok {
				continue
			}
			if !yield(rdf.Triple{S: s, P: t.P, O: t.O}) {
				return
			}
		}
	}
}
