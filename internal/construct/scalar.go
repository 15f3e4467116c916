package construct

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrKindMismatch is returned when a Scalar is accessed through the wrong
// kind. Callers check it with errors.Is.
var ErrKindMismatch = errors.New("scalar kind mismatch")

// ScalarKind discriminates the variants of Scalar.
type ScalarKind int

const (
	KindInt ScalarKind = iota
	KindFloat
	KindChar
)

// scalarKindNames maps kinds to their wire names.
var scalarKindNames = [...]string{"int", "float", "char"}

// String returns the wire name of the kind.
func (k ScalarKind) String() string {
	if k < KindInt || k > KindChar {
		return fmt.Sprintf("ScalarKind(%d)", int(k))
	}
	return scalarKindNames[k]
}

// Scalar is a sealed interface representing exactly one of three value
// interpretations: 32-bit integer, 32-bit float, or single byte character.
// Only IntScalar, FloatScalar, and CharScalar implement it.
//
// Scalar replaces overlapping storage with an explicit discriminant:
// construction fixes the kind, and access through the wrong kind fails
// with ErrKindMismatch instead of reinterpreting bits.
type Scalar interface {
	Kind() ScalarKind
	scalar() // Sealed - only these types implement it
}

// IntScalar holds the integer interpretation.
type IntScalar int32

func (IntScalar) scalar() {}

// Kind returns KindInt.
func (IntScalar) Kind() ScalarKind { return KindInt }

// FloatScalar holds the floating-point interpretation.
type FloatScalar float32

func (FloatScalar) scalar() {}

// Kind returns KindFloat.
func (FloatScalar) Kind() ScalarKind { return KindFloat }

// CharScalar holds the single-character interpretation.
type CharScalar byte

func (CharScalar) scalar() {}

// Kind returns KindChar.
func (CharScalar) Kind() ScalarKind { return KindChar }

// NewInt creates the integer variant.
func NewInt(v int32) Scalar { return IntScalar(v) }

// NewFloat creates the floating-point variant.
func NewFloat(v float32) Scalar { return FloatScalar(v) }

// NewChar creates the character variant.
func NewChar(v byte) Scalar { return CharScalar(v) }

// AsInt returns the integer value, or ErrKindMismatch if s holds a
// different kind.
func AsInt(s Scalar) (int32, error) {
	v, ok := s.(IntScalar)
	if !ok {
		return 0, fmt.Errorf("%w: have %s, want %s", ErrKindMismatch, s.Kind(), KindInt)
	}
	return int32(v), nil
}

// AsFloat returns the floating-point value, or ErrKindMismatch if s holds
// a different kind.
func AsFloat(s Scalar) (float32, error) {
	v, ok := s.(FloatScalar)
	if !ok {
		return 0, fmt.Errorf("%w: have %s, want %s", ErrKindMismatch, s.Kind(), KindFloat)
	}
	return float32(v), nil
}

// AsChar returns the character value, or ErrKindMismatch if s holds a
// different kind.
func AsChar(s Scalar) (byte, error) {
	v, ok := s.(CharScalar)
	if !ok {
		return 0, fmt.Errorf("%w: have %s, want %s", ErrKindMismatch, s.Kind(), KindChar)
	}
	return byte(v), nil
}

// scalarJSON is the explicit wire form: the kind tag travels with the
// value so decoding never guesses.
type scalarJSON struct {
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value"`
}

// MarshalScalar encodes a Scalar as {"kind": ..., "value": ...}.
// Uses type-switch dispatch to handle all variants.
func MarshalScalar(s Scalar) ([]byte, error) {
	var raw []byte
	var err error
	switch v := s.(type) {
	case IntScalar:
		raw, err = json.Marshal(int32(v))
	case FloatScalar:
		raw, err = json.Marshal(float32(v))
	case CharScalar:
		// Chars travel as single-character strings, not byte ordinals.
		raw, err = json.Marshal(string(rune(v)))
	default:
		return nil, fmt.Errorf("unknown Scalar type: %T", s)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(scalarJSON{Kind: s.Kind().String(), Value: raw})
}

// UnmarshalScalar decodes the explicit wire form back into a Scalar.
// The kind tag is authoritative: a value that does not fit the declared
// kind is rejected rather than coerced.
func UnmarshalScalar(data []byte) (Scalar, error) {
	var wire scalarJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}

	switch wire.Kind {
	case KindInt.String():
		var n int64
		if err := json.Unmarshal(wire.Value, &n); err != nil {
			return nil, fmt.Errorf("int scalar: %w", err)
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, fmt.Errorf("int scalar out of int32 range: %d", n)
		}
		return IntScalar(n), nil

	case KindFloat.String():
		var f float32
		if err := json.Unmarshal(wire.Value, &f); err != nil {
			return nil, fmt.Errorf("float scalar: %w", err)
		}
		return FloatScalar(f), nil

	case KindChar.String():
		var s string
		if err := json.Unmarshal(wire.Value, &s); err != nil {
			return nil, fmt.Errorf("char scalar: %w", err)
		}
		r := []rune(s)
		if len(r) != 1 || r[0] > 0xFF {
			return nil, fmt.Errorf("char scalar must be a single byte character, got %q", s)
		}
		return CharScalar(r[0]), nil

	default:
		return nil, fmt.Errorf("unknown scalar kind %q", wire.Kind)
	}
}
