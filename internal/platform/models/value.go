package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind is kind of TypedValue payload.
type ValueKind string

const (
	ValueKindBoolean ValueKind = "boolean"
	ValueKindFloat   ValueKind = "float"
	ValueKindInteger ValueKind = "integer"
	ValueKindText    ValueKind = "text"
)

// TypedValue is attribute value payload. Exactly one payload, matching Kind, is set.
// Zero value is empty text.
type TypedValue struct {
	kind    ValueKind
	boolean bool
	float   float64
	integer int64
	text    string
}

// BooleanValue returns boolean TypedValue.
func BooleanValue(v bool) TypedValue {
	return TypedValue{kind: ValueKindBoolean, boolean: v}
}

// FloatValue returns float TypedValue.
func FloatValue(v float64) TypedValue {
	return TypedValue{kind: ValueKindFloat, float: v}
}

// IntegerValue returns integer TypedValue.
func IntegerValue(v int64) TypedValue {
	return TypedValue{kind: ValueKindInteger, integer: v}
}

// TextValue returns text TypedValue.
func TextValue(v string) TypedValue {
	return TypedValue{kind: ValueKindText, text: v}
}

// ParseTypedValue parses raw value according to attribute value type.
// Unknown value types are treated as text.
func ParseTypedValue(valueType string, raw string) (TypedValue, error) {
	raw = strings.TrimSpace(raw)

	switch ValueKind(valueType) {
	case ValueKindBoolean:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return TypedValue{}, fmt.Errorf("can't parse %q as boolean: %w", raw, err)
		}
		return BooleanValue(v), nil
	case ValueKindFloat:
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil {
			return TypedValue{}, fmt.Errorf("can't parse %q as float: %w", raw, err)
		}
		return FloatValue(v), nil
	case ValueKindInteger:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return TypedValue{}, fmt.Errorf("can't parse %q as integer: %w", raw, err)
		}
		return IntegerValue(v), nil
	default:
		return TextValue(raw), nil
	}
}

// Kind returns payload kind.
func (v TypedValue) Kind() ValueKind {
	if v.kind == "" {
		return ValueKindText
	}
	return v.kind
}

// Boolean returns boolean payload and true if value is boolean.
func (v TypedValue) Boolean() (bool, bool) {
	return v.boolean, v.kind == ValueKindBoolean
}

// Float returns float payload and true if value is float.
func (v TypedValue) Float() (float64, bool) {
	return v.float, v.kind == ValueKindFloat
}

// Integer returns integer payload and true if value is integer.
func (v TypedValue) Integer() (int64, bool) {
	return v.integer, v.kind == ValueKindInteger
}

// Text returns text payload and true if value is text.
func (v TypedValue) Text() (string, bool) {
	return v.text, v.Kind() == ValueKindText
}

// String returns payload formatted as string.
func (v TypedValue) String() string {
	switch v.Kind() {
	case ValueKindBoolean:
		return strconv.FormatBool(v.boolean)
	case ValueKindFloat:
		return strconv.FormatFloat(v.float, 'f', -1, 64)
	case ValueKindInteger:
		return strconv.FormatInt(v.integer, 10)
	default:
		return v.text
	}
}
