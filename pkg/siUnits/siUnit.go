package siunits

import "strings"

// PhysicalQuantity classifies units measuring the same kind of
// phenomenon. Conversions and arithmetic are only valid between units of
// the same physical quantity.
type PhysicalQuantity int

const (
	CustomQuantity PhysicalQuantity = iota
	Current
	LuminousIntensity
	Temperature
	Mass
	Length
	Amount
	Time
	Pressure
	Radiation
)

func (q PhysicalQuantity) String() string {
	switch q {
	case CustomQuantity:
		return "custom"
	case Current:
		return "current"
	case LuminousIntensity:
		return "luminous intensity"
	case Temperature:
		return "temperature"
	case Mass:
		return "mass"
	case Length:
		return "length"
	case Amount:
		return "amount"
	case Time:
		return "time"
	case Pressure:
		return "pressure"
	case Radiation:
		return "radiation"
	default:
		return "unknown"
	}
}

type unitKind int

const (
	unitCustom unitKind = iota
	unitAmpere
	unitCandela
	unitKelvin
	unitKilogram
	unitGram
	unitTonne
	unitMeter
	unitAstronomicalUnit
	unitLightyear
	unitParsec
	unitMole
	unitSecond
	unitPascal
	unitBar
	unitSievert
)

// Unit is an SI base or derived unit. The zero value is an unnamed
// custom unit; named units are the exported package variables. Unit
// values are comparable.
type Unit struct {
	kind  unitKind
	label string // only set for custom units
}

var (
	Ampere           = Unit{kind: unitAmpere}
	Candela          = Unit{kind: unitCandela}
	Kelvin           = Unit{kind: unitKelvin}
	Kilogram         = Unit{kind: unitKilogram}
	Gram             = Unit{kind: unitGram}
	Tonne            = Unit{kind: unitTonne}
	Meter            = Unit{kind: unitMeter}
	AstronomicalUnit = Unit{kind: unitAstronomicalUnit}
	Lightyear        = Unit{kind: unitLightyear}
	Parsec           = Unit{kind: unitParsec}
	Mole             = Unit{kind: unitMole}
	Second           = Unit{kind: unitSecond}
	Pascal           = Unit{kind: unitPascal}
	Bar              = Unit{kind: unitBar}
	Sievert          = Unit{kind: unitSievert}
)

var namedUnits = []Unit{
	Ampere, Candela, Kelvin, Kilogram, Gram, Tonne, Meter,
	AstronomicalUnit, Lightyear, Parsec, Mole, Second, Pascal, Bar,
	Sievert,
}

// Custom returns a free-text unit for units the library does not know.
// Custom units with the same label are compatible with each other and
// with nothing else.
func Custom(label string) Unit {
	return Unit{kind: unitCustom, label: label}
}

// IsCustom reports whether the unit is a free-text custom unit.
func (u Unit) IsCustom() bool {
	return u.kind == unitCustom
}

// Phys returns the physical quantity measured by the unit.
func (u Unit) Phys() PhysicalQuantity {
	switch u.kind {
	case unitAmpere:
		return Current
	case unitCandela:
		return LuminousIntensity
	case unitKelvin:
		return Temperature
	case unitKilogram, unitGram, unitTonne:
		return Mass
	case unitMeter, unitAstronomicalUnit, unitLightyear, unitParsec:
		return Length
	case unitMole:
		return Amount
	case unitSecond:
		return Time
	case unitPascal, unitBar:
		return Pressure
	case unitSievert:
		return Radiation
	default:
		return CustomQuantity
	}
}

// FactorToBase returns the multiplicative factor converting one unit of
// u into the base unit of its physical quantity.
func (u Unit) FactorToBase() float64 {
	switch u.kind {
	case unitGram:
		return 1e-3
	case unitTonne:
		return 1e3
	case unitAstronomicalUnit:
		return 1.495978707e11
	case unitLightyear:
		return 9.4607304725808e15
	case unitParsec:
		return 3.0856775814913673e16
	case unitBar:
		return 1e5
	default:
		return 1.0
	}
}

// Base returns the canonical unit of the physical quantity measured by
// u. Custom units are their own base.
func (u Unit) Base() Unit {
	switch u.kind {
	case unitGram, unitTonne:
		return Kilogram
	case unitAstronomicalUnit, unitLightyear, unitParsec:
		return Meter
	case unitBar:
		return Pascal
	default:
		return u
	}
}

// String returns the abbreviated unit symbol.
func (u Unit) String() string {
	switch u.kind {
	case unitAmpere:
		return "A"
	case unitCandela:
		return "cd"
	case unitKelvin:
		return "K"
	case unitKilogram:
		return "kg"
	case unitGram:
		return "g"
	case unitTonne:
		return "t"
	case unitMeter:
		return "m"
	case unitAstronomicalUnit:
		return "au"
	case unitLightyear:
		return "ly"
	case unitParsec:
		return "pc"
	case unitMole:
		return "mol"
	case unitSecond:
		return "s"
	case unitPascal:
		return "Pa"
	case unitBar:
		return "bar"
	case unitSievert:
		return "Sv"
	default:
		return u.label
	}
}

// Name returns the full word name of the unit.
func (u Unit) Name() string {
	switch u.kind {
	case unitAmpere:
		return "ampere"
	case unitCandela:
		return "candela"
	case unitKelvin:
		return "kelvin"
	case unitKilogram:
		return "kilogram"
	case unitGram:
		return "gram"
	case unitTonne:
		return "tonne"
	case unitMeter:
		return "meter"
	case unitAstronomicalUnit:
		return "astronomical unit"
	case unitLightyear:
		return "lightyear"
	case unitParsec:
		return "parsec"
	case unitMole:
		return "mole"
	case unitSecond:
		return "second"
	case unitPascal:
		return "pascal"
	case unitBar:
		return "bar"
	case unitSievert:
		return "sievert"
	default:
		return u.label
	}
}

// Key returns the canonical localization key of the unit, e.g.
// "astronomical_unit".
func (u Unit) Key() string {
	return strings.ReplaceAll(u.Name(), " ", "_")
}

// compatible reports whether a and b measure the same physical quantity.
// Two custom units are only compatible if their labels match.
func compatible(a, b Unit) bool {
	if a.Phys() != b.Phys() {
		return false
	}
	if a.kind == unitCustom {
		return a.label == b.label
	}
	return true
}

// ParseUnit parses a unit from its full name or symbol, matching
// case-insensitively. Unmatched input yields a ParseUnitError.
func ParseUnit(in string) (Unit, error) {
	for _, u := range namedUnits {
		if strings.EqualFold(in, u.Name()) || strings.EqualFold(in, u.String()) {
			return u, nil
		}
	}
	return Unit{}, &ParseUnitError{Input: in}
}

// ConvertValue converts a value measured in the unit from into the unit
// to. It fails if the units measure different physical quantities.
func ConvertValue(value float64, from, to Unit) (float64, error) {
	if !compatible(from, to) {
		return 0, &UnitMismatchError{Units: []Unit{from, to}}
	}
	return value * from.FactorToBase() / to.FactorToBase(), nil
}
