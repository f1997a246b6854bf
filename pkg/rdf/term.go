// Package rdf provides the RDF 1.2 term algebra: IRIs, blank nodes,
// literals and triple terms, plus the Triple and Quad statement shapes.
//
// All term types are immutable comparable value types, so any Term can be
// used directly as a map key and two terms are equal exactly when all of
// their fields are equal.
package rdf

// TermKind identifies the kind of an RDF term.
type TermKind uint8

const (
	// KindIRI represents an IRI term.
	KindIRI TermKind = iota + 1
	// KindBlankNode represents a blank node term.
	KindBlankNode
	// KindLiteral represents a literal term.
	KindLiteral
	// KindTripleTerm represents a reified triple used as a term.
	KindTripleTerm
)

// Term is a value that can appear in RDF statements.
type Term interface {
	Kind() TermKind
	String() string
}

// Reference is a term that can name things: an IRI or a blank node.
// Subjects and graph names are References.
type Reference interface {
	Term
	reference()
}

// Direction is the base direction of a language-tagged literal.
type Direction string

const (
	// LTR marks left-to-right base direction.
	LTR Direction = "ltr"
	// RTL marks right-to-left base direction.
	RTL Direction = "rtl"
)

// IRI is an absolute identifier.
type IRI struct {
	Value string
}

// Kind returns KindIRI.
func (i IRI) Kind() TermKind { return KindIRI }

func (i IRI) reference() {}

// BlankNode is a scoped anonymous identifier.
type BlankNode struct {
	ID string
}

// Kind returns KindBlankNode.
func (b BlankNode) Kind() TermKind { return KindBlankNode }

func (b BlankNode) reference() {}

// Literal is a lexical form paired with a datatype, optionally carrying a
// language tag and base direction. Language and direction are only
// meaningful with the rdf:langString / rdf:dirLangString datatypes.
type Literal struct {
	Lexical  string
	Datatype IRI
	Language string
	Dir      Direction
}

// Kind returns KindLiteral.
func (l Literal) Kind() TermKind { return KindLiteral }

// NewString returns a plain xsd:string literal.
func NewString(lexical string) Literal {
	return Literal{Lexical: lexical, Datatype: XSDString}
}

// NewText returns a language-tagged literal. The datatype is
// rdf:dirLangString when a base direction is given, rdf:langString
// otherwise. With an empty language it falls back to a plain string
// literal.
func NewText(lexical, language string, dir Direction) Literal {
	if language == "" {
		return NewString(lexical)
	}
	datatype := LangString
	if dir != "" {
		datatype = DirLangString
	}
	return Literal{Lexical: lexical, Datatype: datatype, Language: language, Dir: dir}
}

// TripleTerm is a triple used as a term in its own right, enabling
// statements about statements. The subject is a Term rather than a
// Reference so that reified triples can themselves be described.
type TripleTerm struct {
	S Term
	P IRI
	O Term
}

// Kind returns KindTripleTerm.
func (t TripleTerm) Kind() TermKind { return KindTripleTerm }

// Triple is an RDF statement in the default graph.
type Triple struct {
	S Reference
	P IRI
	O Term
}

// Quad is a Triple qualified by a graph name. G == nil places the triple
// in the default graph.
type Quad struct {
	S Reference
	P IRI
	O Term
	G Reference
}

// InDefaultGraph reports whether the quad belongs to the default graph.
func (q Quad) InDefaultGraph() bool { return q.G == nil }

// ToTriple extracts the triple, discarding the graph name.
func (q Quad) ToTriple() Triple { return Triple{S: q.S, P: q.P, O: q.O} }

// ToQuad places the triple in the default graph.
func (t Triple) ToQuad() Quad { return Quad{S: t.S, P: t.P, O: t.O} }

// InGraph places the triple in the named graph g.
func (t Triple) InGraph(g Reference) Quad {
	return Quad{S: t.S, P: t.P, O: t.O, G: g}
}

// ToTerm converts the triple into a term usable in object position.
func (t Triple) ToTerm() TripleTerm { return TripleTerm{S: t.S, P: t.P, O: t.O} }

// RDF and XSD vocabulary used by the model and value layers.
const (
	rdfNS = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	xsdNS = "http://www.w3.org/2001/XMLSchema#"
)

var (
	First         = IRI{rdfNS + "first"}
	Rest          = IRI{rdfNS + "rest"}
	Nil           = IRI{rdfNS + "nil"}
	Type          = IRI{rdfNS + "type"}
	Reifies       = IRI{rdfNS + "reifies"}
	LangString    = IRI{rdfNS + "langString"}
	DirLangString = IRI{rdfNS + "dirLangString"}

	XSDString        = IRI{xsdNS + "string"}
	XSDBoolean       = IRI{xsdNS + "boolean"}
	XSDInteger       = IRI{xsdNS + "integer"}
	XSDDouble        = IRI{xsdNS + "double"}
	XSDBase64Binary  = IRI{xsdNS + "base64Binary"}
	XSDDate          = IRI{xsdNS + "date"}
	XSDTime          = IRI{xsdNS + "time"}
	XSDDateTime      = IRI{xsdNS + "dateTime"}
	XSDDateTimeStamp = IRI{xsdNS + "dateTimeStamp"}
)
