package siunits

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Quantity combines a Number with a Unit. Quantities are immutable;
// every operation returns a new Quantity.
//
// The kilogram is the one unit where prefix and unit are not orthogonal:
// it already is 10^3 gram. NewQuantity keeps kilogram quantities in a
// single canonical form, so a prefix is only ever displayed on "gram"
// and a gram quantity carrying exactly the kilo prefix becomes a plain
// kilogram.
type Quantity struct {
	number Number
	unit   Unit
}

// NewQuantity returns a Quantity representing number measured in unit,
// normalized to the canonical kilogram/gram form.
func NewQuantity(number Number, unit Unit) Quantity {
	switch {
	case unit == Kilogram && number.Prefix() != Nothing:
		// A prefixed kilogram is rewritten to a gram three decades up,
		// so "kilo kilogram" displays as "Mg".
		if prefix, err := PrefixFromExp(number.Prefix().Exp() + 3); err == nil {
			return Quantity{number: number.WithPrefix(prefix), unit: Gram}
		}
		// No prefix three decades up (deca, hecto and the outermost
		// prefixes); the kilogram form stays as it is.
		return Quantity{number: number, unit: unit}
	case unit == Gram && number.Prefix() == Kilo:
		return Quantity{number: number.WithPrefix(Nothing), unit: Kilogram}
	default:
		return Quantity{number: number, unit: unit}
	}
}

// Number returns the numeric part of the quantity.
func (q Quantity) Number() Number {
	return q.number
}

// Unit returns the unit of the quantity.
func (q Quantity) Unit() Unit {
	return q.unit
}

// Phys returns the physical quantity measured by the quantity's unit.
func (q Quantity) Phys() PhysicalQuantity {
	return q.unit.Phys()
}

// Value returns the magnitude of the quantity expressed in the base unit
// of its physical quantity, without any prefix.
func (q Quantity) Value() float64 {
	return q.number.Value() * q.unit.FactorToBase()
}

// ToPrefix converts the numeric part to prefix without changing the
// represented value, then re-normalizes.
func (q Quantity) ToPrefix(prefix Prefix) Quantity {
	return NewQuantity(q.number.ToPrefix(prefix), q.unit)
}

// ToUnit converts the quantity to the target unit. It fails if target
// measures a different physical quantity.
func (q Quantity) ToUnit(target Unit) (Quantity, error) {
	if !compatible(q.unit, target) {
		return Quantity{}, &UnitMismatchError{Units: []Unit{q.unit, target}}
	}
	factor := q.unit.FactorToBase() / target.FactorToBase()
	return NewQuantity(q.number.MulScalar(factor), target), nil
}

// Shorten normalizes the numeric part to engineering notation. The unit
// is never altered by this operation.
func (q Quantity) Shorten() (Quantity, error) {
	number, err := q.number.Shorten()
	if err != nil {
		return Quantity{}, err
	}
	return NewQuantity(number, q.unit), nil
}

// rebuild re-expresses a base-unit value in the receiver's unit and
// prefix.
func (q Quantity) rebuild(value float64) Quantity {
	res, err := NewQuantity(NewNumber(value), q.unit.Base()).ToUnit(q.unit)
	if err != nil {
		// A unit and its own base always measure the same physical
		// quantity.
		panic(err)
	}
	return res.ToPrefix(q.number.Prefix())
}

// Abs returns the absolute value, preserving the receiver's unit and
// prefix.
func (q Quantity) Abs() Quantity {
	return q.rebuild(math.Abs(q.Value()))
}

// Neg returns the negated value, preserving the receiver's unit and
// prefix.
func (q Quantity) Neg() Quantity {
	return q.rebuild(-q.Value())
}

// Add returns q+o expressed in the receiver's unit and prefix. It fails
// if the operands measure different physical quantities.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if !compatible(q.unit, o.unit) {
		return Quantity{}, &UnitMismatchError{Units: []Unit{q.unit, o.unit}}
	}
	return q.rebuild(q.Value() + o.Value()), nil
}

// Sub returns q-o expressed in the receiver's unit and prefix. It fails
// if the operands measure different physical quantities.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if !compatible(q.unit, o.unit) {
		return Quantity{}, &UnitMismatchError{Units: []Unit{q.unit, o.unit}}
	}
	return q.rebuild(q.Value() - o.Value()), nil
}

// Mul returns q*o expressed in the receiver's unit and prefix. It fails
// if the operands measure different physical quantities.
func (q Quantity) Mul(o Quantity) (Quantity, error) {
	if !compatible(q.unit, o.unit) {
		return Quantity{}, &UnitMismatchError{Units: []Unit{q.unit, o.unit}}
	}
	return q.rebuild(q.Value() * o.Value()), nil
}

// Div returns q/o expressed in the receiver's unit and prefix. It fails
// if the operands measure different physical quantities.
func (q Quantity) Div(o Quantity) (Quantity, error) {
	if !compatible(q.unit, o.unit) {
		return Quantity{}, &UnitMismatchError{Units: []Unit{q.unit, o.unit}}
	}
	return q.rebuild(q.Value() / o.Value()), nil
}

// AddScalar returns q+v, with the dimensionless scalar combined directly
// with the base-unit value. The result keeps the receiver's unit and
// prefix.
func (q Quantity) AddScalar(v float64) Quantity {
	return q.rebuild(q.Value() + v)
}

// SubScalar returns q-v, keeping the receiver's unit and prefix.
func (q Quantity) SubScalar(v float64) Quantity {
	return q.rebuild(q.Value() - v)
}

// MulScalar returns q*v, keeping the receiver's unit and prefix.
func (q Quantity) MulScalar(v float64) Quantity {
	return q.rebuild(q.Value() * v)
}

// DivScalar returns q/v, keeping the receiver's unit and prefix.
func (q Quantity) DivScalar(v float64) Quantity {
	return q.rebuild(q.Value() / v)
}

// Equal reports whether both quantities measure the same physical
// quantity and resolve to the same base-unit value. Unlike Number
// equality, numerically coincident quantities of different physical
// quantities are never equal.
func (q Quantity) Equal(o Quantity) bool {
	return compatible(q.unit, o.unit) && q.Value() == o.Value()
}

// Cmp compares the base-unit values and returns -1, 0 or +1. The caller
// is expected to compare only compatible quantities.
func (q Quantity) Cmp(o Quantity) int {
	a, b := q.Value(), o.Value()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Symbol returns the combined prefix and unit symbol, e.g. "km" or "Mg".
func (q Quantity) Symbol() string {
	return q.number.Prefix().String() + q.unit.String()
}

// String renders the quantity as mantissa followed by the prefixed unit
// symbol, e.g. "9.9 km". The space sits before the symbol only when the
// prefix is Nothing; otherwise the number already ends in the prefix
// letter and the unit symbol attaches directly.
func (q Quantity) String() string {
	if q.number.Prefix() == Nothing {
		return q.number.String() + " " + q.unit.String()
	}
	return q.number.String() + q.unit.String()
}

// prefixSymbols lists all prefixes with a non-empty symbol, longest
// symbol first so "da" wins over "d" when scanning.
var prefixSymbols = func() []Prefix {
	symbols := make([]Prefix, 0, len(allPrefixes))
	for _, p := range allPrefixes {
		if p != Nothing {
			symbols = append(symbols, p)
		}
	}
	sort.SliceStable(symbols, func(i, j int) bool {
		return len(symbols[i].String()) > len(symbols[j].String())
	})
	return symbols
}()

// ParseSymbol parses a prefixed unit symbol like "km", "Mg" or "bar"
// into its prefix and unit parts. The symbol is first matched as a
// plain unit, so "bar" is the pressure unit and not a "b" prefixed
// "ar".
func ParseSymbol(symbol string) (Prefix, Unit, error) {
	if unit, err := ParseUnit(symbol); err == nil {
		return Nothing, unit, nil
	}
	for _, p := range prefixSymbols {
		rest, ok := strings.CutPrefix(symbol, p.String())
		if !ok || rest == "" {
			continue
		}
		if unit, err := ParseUnit(rest); err == nil {
			return p, unit, nil
		}
	}
	return Nothing, Unit{}, &ParseUnitError{Input: symbol}
}

// ParseQuantity parses strings like "9.9 km", "12 Mg" or "3 bar".
func ParseQuantity(in string) (Quantity, error) {
	value, symbol, found := strings.Cut(strings.TrimSpace(in), " ")
	if !found {
		return Quantity{}, &ParseUnitError{Input: in}
	}
	mantissa, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Quantity{}, err
	}
	prefix, unit, err := ParseSymbol(strings.TrimSpace(symbol))
	if err != nil {
		return Quantity{}, err
	}
	return NewQuantity(NewNumber(mantissa).WithPrefix(prefix), unit), nil
}
