package graph

import (
	"github.com/rdfspace/rdfspace/pkg/rdf"
)

// AsList decodes the rdf:first/rdf:rest chain starting at this resource.
//
// Each node must carry exactly one rdf:first value and exactly one
// rdf:rest link; the chain must reach rdf:nil through subject-capable
// resources. Any structural defect anywhere in the chain makes the whole
// decode fail: the second result is false and no partial list is
// returned. Cyclic chains are detected and fail the same way.
func (d *described) AsList() ([]Resource, bool) {
	var items []Resource
	visited := make(map[*described]struct{})

	cur := d
	for {
		if _, seen := visited[cur]; seen {
			return nil, false
		}
		visited[cur] = struct{}{}

		first, ok := singleObject(cur.description[rdf.First])
		if !ok {
			return nil, false
		}
		items = append(items, first)

		rest, ok := singleObject(cur.description[rdf.Rest])
		if !ok {
			return nil, false
		}
		if rest.Term() == rdf.Term(rdf.Nil) {
			return items, true
		}

		next, ok := rest.(Described)
		if !ok {
			return nil, false
		}
		cur = next.desc()
	}
}

// singleObject returns the object of the sole statement in a bucket.
func singleObject(props propSet) (Resource, bool) {
	if len(props) != 1 {
		return nil, false
	}
	for prop := range props {
		return prop.object, true
	}
	return nil, false
}

// AddList encodes items as an rdf:first/rdf:rest chain of fresh blank
// nodes terminated by rdf:nil, asserts (this, pred, head) and returns the
// head. An empty items list links pred directly to rdf:nil.
func (d *described) AddList(pred rdf.IRI, items ...Resource) Described {
	if len(items) == 0 {
		nilres := d.model.Described(rdf.Nil)
		d.Add(pred, nilres)
		return nilres
	}

	head := d.model.NewBlank()
	d.Add(pred, head)

	cons := Described(head)
	for i, item := range items {
		cons.Add(rdf.First, item)
		if i == len(items)-1 {
			cons.Add(rdf.Rest, d.model.Described(rdf.Nil))
			break
		}
		next := d.model.NewBlank()
		cons.Add(rdf.Rest, next)
		cons = next
	}

	return head
}
