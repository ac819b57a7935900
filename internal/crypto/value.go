// this file defines the in-memory JSON value tree that the canonical encoder consumes.
//
// A Value is an immutable tagged union over the six JSON variants. Objects keep their members
// as an ordered list rather than a Go map so that duplicate names in the source document are
// not silently collapsed: the encoder must see them in order to reject them.

package crypto

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Member is a single name/value pair of a JSON object.
type Member struct {
	Name  string
	Value Value
}

// Value is a parsed JSON value. The zero Value is JSON null.
type Value struct {
	kind    Kind
	boolean bool

	// text holds the string value, or the number literal for numbers
	text string

	// float is set for numbers written with a fraction or exponent, or built from a float64
	float bool

	items   []Value
	members []Member
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool returns a JSON boolean.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// String returns a JSON string.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Number returns a JSON number from its literal text (e.g. "1", "-2.50", "1e400").
// The literal is kept verbatim and validated when the value is encoded.
func Number(literal string) Value {
	return Value{kind: KindNumber, text: literal, float: strings.ContainsAny(literal, ".eE")}
}

// Int returns a JSON number holding an integer.
func Int(i int64) Value {
	return Value{kind: KindNumber, text: strconv.FormatInt(i, 10)}
}

// Float returns a JSON number holding f.
// NaN and infinities are accepted here and rejected by the encoder.
func Float(f float64) Value {
	var text string
	switch {
	case math.IsNaN(f):
		text = nanLiteral
	case math.IsInf(f, 1):
		text = posInfLiteral
	case math.IsInf(f, -1):
		text = negInfLiteral
	default:
		text = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return Value{kind: KindNumber, text: text, float: true}
}

const (
	nanLiteral    = "NaN"
	posInfLiteral = "Infinity"
	negInfLiteral = "-Infinity"
)

// Array returns a JSON array holding a copy of items.
func Array(items ...Value) Value {
	return Value{kind: KindArray, items: append([]Value(nil), items...)}
}

// Object returns a JSON object holding a copy of members, in the given order.
// Duplicate names are kept; the encoder rejects them.
func Object(members ...Member) Value {
	return Value{kind: KindObject, members: append([]Member(nil), members...)}
}

func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean held by v, false for other kinds.
func (v Value) Bool() bool { return v.boolean }

// Str returns the string held by v, "" for other kinds.
func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.text
}

// Literal returns the number literal held by v, "" for other kinds.
func (v Value) Literal() string {
	if v.kind != KindNumber {
		return ""
	}
	return v.text
}

// IsFloat reports whether v is a number written with a fraction or an exponent,
// or built from a float64.
func (v Value) IsFloat() bool { return v.kind == KindNumber && v.float }

// Len returns the number of array items or object members.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// Index returns the i'th array item. It panics if v is not an array or i is out of range.
func (v Value) Index(i int) Value {
	if v.kind != KindArray {
		panic("crypto: Index called on " + v.kind.String())
	}
	return v.items[i]
}

// Items returns a copy of the array items.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return append([]Value(nil), v.items...)
}

// Members returns a copy of the object members in source order.
func (v Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	return append([]Member(nil), v.members...)
}

// Lookup returns the value of the first member called name.
func (v Value) Lookup(name string) (Value, bool) {
	for _, m := range v.members {
		if m.Name == name {
			return m.Value, true
		}
	}
	return Value{}, false
}
