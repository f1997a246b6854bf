// Package encoding maps RDF terms to fixed-size comparable keys for use
// in interning tables and index maps.
package encoding

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"

	"github.com/rdfspace/rdfspace/pkg/rdf"
)

// TermKeySize is the encoded key size: a kind byte followed by a 128-bit
// hash of the term's serialized fields.
const TermKeySize = 17

// TermKey is a fixed-size encoding of an RDF term. Equal terms always
// produce equal keys; distinct terms produce distinct keys up to the
// collision resistance of the 128-bit hash.
type TermKey [TermKeySize]byte

// Key encodes a term as a TermKey.
func Key(term rdf.Term) TermKey {
	var key TermKey
	key[0] = byte(term.Kind())
	hash := Hash128(appendTerm(nil, term))
	copy(key[1:], hash[:])
	return key
}

// Hash128 computes the 128-bit xxhash3 hash of the input.
func Hash128(data []byte) [16]byte {
	hash := xxh3.Hash128(data)
	var result [16]byte
	binary.BigEndian.PutUint64(result[0:8], hash.Hi)
	binary.BigEndian.PutUint64(result[8:16], hash.Lo)
	return result
}

// appendTerm serializes a term field by field. Each field is
// length-prefixed so that no two distinct terms share a serialization.
func appendTerm(buf []byte, term rdf.Term) []byte {
	buf = append(buf, byte(term.Kind()))

	switch t := term.(type) {
	case rdf.IRI:
		buf = appendString(buf, t.Value)
	case rdf.BlankNode:
		buf = appendString(buf, t.ID)
	case rdf.Literal:
		buf = appendString(buf, t.Lexical)
		buf = appendString(buf, t.Datatype.Value)
		buf = appendString(buf, t.Language)
		buf = appendString(buf, string(t.Dir))
	case rdf.TripleTerm:
		buf = appendTerm(buf, t.S)
		buf = appendTerm(buf, t.P)
		buf = appendTerm(buf, t.O)
	}

	return buf
}

func appendString(buf []byte, s string) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}
