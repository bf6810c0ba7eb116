package token

import (
	"fmt"
	"strconv"
)

// ValueKind discriminates the payload stored in a Value.
type ValueKind uint8

const (
	// ValueNone means the token carries no value (EOF only).
	ValueNone ValueKind = iota
	// ValueInt means the token carries an int64 payload.
	ValueInt
	// ValueFloat means the token carries a float64 payload.
	ValueFloat
	// ValueText means the token carries a string payload.
	ValueText
)

// Value is the decoded payload of a token: an integer, a float, text, or
// nothing. Boolean tokens carry their lexeme text ("true"/"false"), the way
// the keyword table produces them.
type Value struct {
	Kind  ValueKind `json:"kind" msgpack:"kind"`
	Int   int64     `json:"int,omitempty" msgpack:"int,omitempty"`
	Float float64   `json:"float,omitempty" msgpack:"float,omitempty"`
	Text  string    `json:"text,omitempty" msgpack:"text,omitempty"`
}

// NoneValue returns the absent value.
func NoneValue() Value { return Value{Kind: ValueNone} }

// IntValue wraps an integer payload.
func IntValue(v int64) Value { return Value{Kind: ValueInt, Int: v} }

// FloatValue wraps a float payload.
func FloatValue(v float64) Value { return Value{Kind: ValueFloat, Float: v} }

// TextValue wraps a text payload.
func TextValue(s string) Value { return Value{Kind: ValueText, Text: s} }

// IsNone reports whether the value is absent.
func (v Value) IsNone() bool { return v.Kind == ValueNone }

// String renders the payload for token dumps.
func (v Value) String() string {
	switch v.Kind {
	case ValueInt:
		return strconv.FormatInt(v.Int, 10)
	case ValueFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case ValueText:
		return fmt.Sprintf("%q", v.Text)
	default:
		return "<none>"
	}
}
