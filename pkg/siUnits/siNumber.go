package siunits

import (
	"fmt"
	"math"
	"strconv"
)

// Number represents a floating point value as a mantissa combined with
// an SI prefix: value = mantissa * 10^(prefix exponent). Numbers are
// immutable; every operation returns a new Number.
type Number struct {
	mantissa float64
	prefix   Prefix
}

// NewNumber returns a Number representing value without any prefix.
func NewNumber(value float64) Number {
	return Number{
		mantissa: value,
		prefix:   Nothing,
	}
}

// WithPrefix reinterprets the number under prefix: the mantissa stays
// the same, so the represented value changes. Use ToPrefix to change the
// prefix while keeping the value.
func (n Number) WithPrefix(prefix Prefix) Number {
	return Number{
		mantissa: n.mantissa,
		prefix:   prefix,
	}
}

// ToPrefix converts the number to prefix: the mantissa is rescaled so
// the represented value stays the same (up to floating point rounding).
func (n Number) ToPrefix(prefix Prefix) Number {
	factor := n.prefix.Factor() / prefix.Factor()
	return Number{
		mantissa: n.mantissa * factor,
		prefix:   prefix,
	}
}

// WithUnit combines the number with a unit into a Quantity.
func (n Number) WithUnit(unit Unit) Quantity {
	return NewQuantity(n, unit)
}

// Shorten normalizes the number to engineering notation: the mantissa
// gets at most 3 integer digits and is not sub-unity, with the remaining
// magnitude moved into the prefix. A zero mantissa short-circuits to
// NewNumber(0). Shorten fails when the target exponent lies outside the
// representable prefix range or hits an exponent without a prefix.
func (n Number) Shorten() (Number, error) {
	if n.mantissa == 0 {
		return NewNumber(0), nil
	}

	l := math.Log10(math.Abs(n.mantissa))
	// Log10 is not exact for powers of ten (Log10(1e15) is slightly
	// below 15), which would floor a full decade too low.
	if r := math.Round(l); math.Abs(l-r) < 1e-9 {
		l = r
	}
	exps := int(math.Floor(math.Floor(l)/3.0)) * 3

	expNew := n.prefix.Exp() + exps
	if expNew > MaxPrefixExp || expNew < MinPrefixExp {
		return Number{}, &PrefixRangeError{Exp: expNew}
	}
	prefixNew, err := PrefixFromExp(expNew)
	if err != nil {
		return Number{}, err
	}

	return n.ToPrefix(prefixNew), nil
}

// Mantissa returns the number displayed before the prefix.
func (n Number) Mantissa() float64 {
	return n.mantissa
}

// Prefix returns the prefix of the number.
func (n Number) Prefix() Prefix {
	return n.prefix
}

// Value returns the represented value without any prefix.
func (n Number) Value() float64 {
	return n.mantissa * n.prefix.Factor()
}

// Abs returns the absolute value, keeping the prefix of the receiver.
func (n Number) Abs() Number {
	return NewNumber(math.Abs(n.Value())).ToPrefix(n.prefix)
}

// Neg returns the negated value, keeping the prefix of the receiver.
func (n Number) Neg() Number {
	return NewNumber(-n.Value()).ToPrefix(n.prefix)
}

// Powi raises the represented value to an integer power, keeping the
// prefix of the receiver.
func (n Number) Powi(exp int) Number {
	val := math.Pow(n.Value(), float64(exp))
	return NewNumber(val).ToPrefix(n.prefix)
}

// Powf raises the represented value to a floating point power, keeping
// the prefix of the receiver.
func (n Number) Powf(exp float64) Number {
	val := math.Pow(n.Value(), exp)
	return NewNumber(val).ToPrefix(n.prefix)
}

// Add returns n+o, expressed with the larger of the two prefixes.
func (n Number) Add(o Number) Number {
	val := n.Value() + o.Value()
	return NewNumber(val).ToPrefix(n.prefix.Max(o.prefix))
}

// Sub returns n-o, expressed with the larger of the two prefixes.
func (n Number) Sub(o Number) Number {
	val := n.Value() - o.Value()
	return NewNumber(val).ToPrefix(n.prefix.Max(o.prefix))
}

// Mul returns n*o, expressed with the larger of the two prefixes.
func (n Number) Mul(o Number) Number {
	val := n.Value() * o.Value()
	return NewNumber(val).ToPrefix(n.prefix.Max(o.prefix))
}

// Div returns n/o, expressed with the larger of the two prefixes.
func (n Number) Div(o Number) Number {
	val := n.Value() / o.Value()
	return NewNumber(val).ToPrefix(n.prefix.Max(o.prefix))
}

// AddScalar returns n+v, keeping the prefix of the receiver. The scalar
// carries no prefix.
func (n Number) AddScalar(v float64) Number {
	return NewNumber(n.Value() + v).ToPrefix(n.prefix)
}

// SubScalar returns n-v, keeping the prefix of the receiver.
func (n Number) SubScalar(v float64) Number {
	return NewNumber(n.Value() - v).ToPrefix(n.prefix)
}

// MulScalar returns n*v, keeping the prefix of the receiver.
func (n Number) MulScalar(v float64) Number {
	return NewNumber(n.Value() * v).ToPrefix(n.prefix)
}

// DivScalar returns n/v, keeping the prefix of the receiver.
func (n Number) DivScalar(v float64) Number {
	return NewNumber(n.Value() / v).ToPrefix(n.prefix)
}

// Equal compares the represented values, not the raw mantissa/prefix
// pairs: 2 k equals 2000.
func (n Number) Equal(o Number) bool {
	return n.Value() == o.Value()
}

// Cmp compares the represented values and returns -1, 0 or +1.
func (n Number) Cmp(o Number) int {
	a, b := n.Value(), o.Value()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String renders the mantissa in plain decimal form followed by the
// prefix symbol, e.g. "9999.9 M". Scientific notation is never used.
func (n Number) String() string {
	if n.prefix == Nothing {
		return FormatFloat(n.mantissa)
	}
	return FormatFloat(n.mantissa) + " " + n.prefix.String()
}

// EngString renders the number in engineering notation, with the prefix
// replaced by its exponent: "9.9e3" instead of "9.9 k".
func (n Number) EngString() string {
	if n.prefix == Nothing {
		return FormatFloat(n.mantissa)
	}
	return fmt.Sprintf("%se%d", FormatFloat(n.mantissa), n.prefix.Exp())
}

// FormatFloat renders v in fixed decimal form with float noise beyond 10
// significant digits rounded away.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(roundNoise(v), 'f', -1, 64)
}

func roundNoise(v float64) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 10, 64), 64)
	if err != nil {
		return v
	}
	return r
}
