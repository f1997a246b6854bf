package rdf

import (
	"fmt"
	"strings"
)

// Canonical forms follow the RDF 1.2 canonical N-Triples rules for
// representation (escape sequences, whitespace). They are used both for
// display and as the stable serialization behind term hashing, so every
// distinct term must have a distinct canonical form.

// String returns the canonical form of the IRI: <value>.
func (i IRI) String() string { return "<" + i.Value + ">" }

// String returns the canonical form of the blank node: _:id.
func (b BlankNode) String() string { return "_:" + b.ID }

// String returns the canonical form of the literal.
func (l Literal) String() string {
	escaped := escapeStringCanonical(l.Lexical)

	// Language tag with optional base direction (e.g. "x"@en--rtl).
	if l.Language != "" {
		langTag := strings.ToLower(l.Language)
		if l.Dir != "" {
			return fmt.Sprintf(`"%s"@%s--%s`, escaped, langTag, strings.ToLower(string(l.Dir)))
		}
		return fmt.Sprintf(`"%s"@%s`, escaped, langTag)
	}

	// xsd:string is the default datatype and stays implicit.
	if l.Datatype.Value != "" && l.Datatype != XSDString {
		return fmt.Sprintf(`"%s"^^%s`, escaped, l.Datatype)
	}

	return fmt.Sprintf(`"%s"`, escaped)
}

// String returns the canonical triple term form: <<( s p o )>> with
// mandatory spaces.
func (t TripleTerm) String() string {
	return fmt.Sprintf("<<( %s %s %s )>>", t.S, t.P, t.O)
}

// String renders the triple as a canonical N-Triples statement.
func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s .", t.S, t.P, t.O)
}

// String renders the quad as a canonical N-Quads statement. The graph
// term is omitted for the default graph.
func (q Quad) String() string {
	if q.G == nil {
		return q.ToTriple().String()
	}
	return fmt.Sprintf("%s %s %s %s .", q.S, q.P, q.O, q.G)
}

// escapeStringCanonical escapes a lexical form for canonical output.
// Escape rules:
//   - Special named escapes: \t \b \n \r \f \" \\
//   - Control characters, DEL and the noncharacters U+FFFE/U+FFFF: \uXXXX
func escapeStringCanonical(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))

	for _, r := range s {
		switch r {
		case '\t':
			builder.WriteString(`\t`)
		case '\b':
			builder.WriteString(`\b`)
		case '\n':
			builder.WriteString(`\n`)
		case '\r':
			builder.WriteString(`\r`)
		case '\f':
			builder.WriteString(`\f`)
		case '"':
			builder.WriteString(`\"`)
		case '\\':
			builder.WriteString(`\\`)
		default:
			if r < 0x20 || r == 0x7F || (r >= 0xFFFE && r <= 0xFFFF) {
				fmt.Fprintf(&builder, `\u%04X`, r)
			} else {
				builder.WriteRune(r)
			}
		}
	}

	return builder.String()
}
