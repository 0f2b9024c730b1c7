package chart

import (
	"encoding/json"
	"math"
	"strconv"
)

// Value is a style or prop value that is either a literal or computed from
// the datum it is applied to. The zero Value is unset.
type Value struct {
	literal any
	compute func(Datum) any
	set     bool
}

// Literal wraps a constant value.
func Literal(v any) Value { return Value{literal: v, set: true} }

// Computed wraps a function of the datum. A nil function yields an unset
// Value.
func Computed(fn func(Datum) any) Value {
	if fn == nil {
		return Value{}
	}
	return Value{compute: fn, set: true}
}

// IsSet reports whether v was constructed by Literal or Computed.
func (v Value) IsSet() bool { return v.set }

// IsComputed reports whether v depends on the datum.
func (v Value) IsComputed() bool { return v.compute != nil }

// IsZero reports whether v is unset or a literal nil, empty string, zero
// number or false. Computed values are never zero.
func (v Value) IsZero() bool {
	if !v.set {
		return true
	}
	if v.compute != nil {
		return false
	}
	return isZeroLiteral(v.literal)
}

// Eval resolves v for d. Unset values evaluate to nil.
func (v Value) Eval(d Datum) any {
	if v.compute != nil {
		return v.compute(d)
	}
	return v.literal
}

// EvaluateProp resolves a datum-dependent prop.
func EvaluateProp(v Value, d Datum) any { return v.Eval(d) }

func isZeroLiteral(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	}
	if f, ok := ToFloat(v); ok {
		return f == 0 || math.IsNaN(f)
	}
	return false
}

// ToFloat converts numeric values, json.Number and numeric strings to
// float64.
func ToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	}
	return 0, false
}
