// Package values converts between literal lexical forms and native Go
// values. Decoding is driven by a registry keyed by datatype IRI and is
// open for extension; encoding dispatches on the native type of the value.
package values

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rdfspace/rdfspace/pkg/rdf"
)

var (
	// ErrUnsupportedDatatype is returned when no decoder is registered
	// for a literal's datatype.
	ErrUnsupportedDatatype = errors.New("values: unsupported datatype")

	// ErrMalformedLexicalForm is returned when a decoder rejects a
	// literal's lexical form.
	ErrMalformedLexicalForm = errors.New("values: malformed lexical form")

	// ErrTypeMismatch is returned when a language tag is supplied for a
	// non-string value.
	ErrTypeMismatch = errors.New("values: language-tagged value must be a string")

	// ErrUnsupportedValueType is returned when a value's native type has
	// no datatype mapping.
	ErrUnsupportedValueType = errors.New("values: unsupported value type")
)

// Decoder converts a lexical form into a native value. A returned error
// marks the lexical form as malformed for the decoder's datatype.
type Decoder func(lexical string) (any, error)

// Registry maps datatype IRIs to decoders.
type Registry struct {
	decoders map[rdf.IRI]Decoder
}

// NewRegistry returns a registry seeded with the baseline datatypes:
// boolean, integer, double, string, base64Binary, date, time, dateTime
// and dateTimeStamp.
func NewRegistry() *Registry {
	r := &Registry{decoders: make(map[rdf.IRI]Decoder)}

	r.Register(rdf.XSDBoolean, decodeBoolean)
	r.Register(rdf.XSDInteger, func(s string) (any, error) {
		return strconv.ParseInt(s, 10, 64)
	})
	r.Register(rdf.XSDDouble, func(s string) (any, error) {
		return strconv.ParseFloat(s, 64)
	})
	r.Register(rdf.XSDString, func(s string) (any, error) {
		return s, nil
	})
	r.Register(rdf.XSDBase64Binary, func(s string) (any, error) {
		return base64.StdEncoding.DecodeString(s)
	})
	r.Register(rdf.XSDDate, func(s string) (any, error) {
		return ParseDate(s)
	})
	r.Register(rdf.XSDTime, func(s string) (any, error) {
		return ParseTimeOfDay(s)
	})
	r.Register(rdf.XSDDateTime, decodeDateTime)
	r.Register(rdf.XSDDateTimeStamp, decodeDateTimeStamp)

	return r
}

// Default is the shared baseline registry used by the package-level
// Decode function and by models that were not given their own registry.
var Default = NewRegistry()

// Register adds or replaces the decoder for a datatype.
func (r *Registry) Register(datatype rdf.IRI, dec Decoder) {
	r.decoders[datatype] = dec
}

// Decode converts a literal into its native value. It fails with
// ErrUnsupportedDatatype when no decoder is registered for the literal's
// datatype and with ErrMalformedLexicalForm when the decoder rejects the
// lexical form.
func (r *Registry) Decode(lit rdf.Literal) (any, error) {
	dec := r.decoders[lit.Datatype]
	if dec == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDatatype, lit.Datatype.Value)
	}

	value, err := dec(lit.Lexical)
	if err != nil {
		return nil, fmt.Errorf("%w: %q as %s: %v", ErrMalformedLexicalForm, lit.Lexical, lit.Datatype.Value, err)
	}
	return value, nil
}

// Decode converts a literal using the Default registry.
func Decode(lit rdf.Literal) (any, error) {
	return Default.Decode(lit)
}

// Encode converts a native value into a literal. The dispatch is fixed:
// bool, integers, float64, string, []byte, Date, TimeOfDay, LocalDateTime
// and time.Time are supported. A time.Time always carries a zone offset
// in Go, so it maps to xsd:dateTimeStamp; use LocalDateTime for a plain
// xsd:dateTime without an offset.
func Encode(value any) (rdf.Literal, error) {
	switch v := value.(type) {
	case bool:
		return rdf.Literal{Lexical: strconv.FormatBool(v), Datatype: rdf.XSDBoolean}, nil
	case int:
		return rdf.Literal{Lexical: strconv.FormatInt(int64(v), 10), Datatype: rdf.XSDInteger}, nil
	case int32:
		return rdf.Literal{Lexical: strconv.FormatInt(int64(v), 10), Datatype: rdf.XSDInteger}, nil
	case int64:
		return rdf.Literal{Lexical: strconv.FormatInt(v, 10), Datatype: rdf.XSDInteger}, nil
	case float64:
		return rdf.Literal{Lexical: strconv.FormatFloat(v, 'g', -1, 64), Datatype: rdf.XSDDouble}, nil
	case string:
		return rdf.NewString(v), nil
	case []byte:
		return rdf.Literal{Lexical: base64.StdEncoding.EncodeToString(v), Datatype: rdf.XSDBase64Binary}, nil
	case Date:
		return rdf.Literal{Lexical: v.String(), Datatype: rdf.XSDDate}, nil
	case TimeOfDay:
		return rdf.Literal{Lexical: v.String(), Datatype: rdf.XSDTime}, nil
	case LocalDateTime:
		return rdf.Literal{Lexical: v.String(), Datatype: rdf.XSDDateTime}, nil
	case time.Time:
		return rdf.Literal{Lexical: v.Format(time.RFC3339Nano), Datatype: rdf.XSDDateTimeStamp}, nil
	}

	return rdf.Literal{}, fmt.Errorf("%w: %T", ErrUnsupportedValueType, value)
}

// EncodeText builds a language-tagged literal from a string value. The
// value must be a string when a language is given; with an empty language
// it behaves like Encode.
func EncodeText(value any, language string, dir rdf.Direction) (rdf.Literal, error) {
	if language == "" {
		return Encode(value)
	}

	s, ok := value.(string)
	if !ok {
		return rdf.Literal{}, fmt.Errorf("%w: got %T", ErrTypeMismatch, value)
	}
	return rdf.NewText(s, language, dir), nil
}

func decodeBoolean(s string) (any, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return nil, fmt.Errorf("not a boolean: %q", s)
}

func decodeDateTime(s string) (any, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	ldt, err := ParseLocalDateTime(s)
	if err != nil {
		return nil, err
	}
	return ldt, nil
}

func decodeDateTimeStamp(s string) (any, error) {
	return time.Parse(time.RFC3339Nano, s)
}
