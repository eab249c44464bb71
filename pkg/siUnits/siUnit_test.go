package siunits

import (
	"errors"
	"testing"
)

func TestUnitFactorToBase(t *testing.T) {
	testCases := []struct {
		unit   Unit
		factor float64
	}{
		{Ampere, 1.0},
		{Kilogram, 1.0},
		{Gram, 1e-3},
		{Tonne, 1e3},
		{AstronomicalUnit, 1.495978707e11},
		{Lightyear, 9.4607304725808e15},
		{Parsec, 3.0856775814913673e16},
		{Bar, 1e5},
		{Pascal, 1.0},
		{Sievert, 1.0},
	}
	for _, c := range testCases {
		if got := c.unit.FactorToBase(); got != c.factor {
			t.Errorf("Unit(%s).FactorToBase() == %g, want %g", c.unit.Name(), got, c.factor)
		}
	}
}

func TestUnitBase(t *testing.T) {
	testCases := []struct {
		unit Unit
		base Unit
	}{
		{Ampere, Ampere},
		{Kilogram, Kilogram},
		{Gram, Kilogram},
		{Tonne, Kilogram},
		{Meter, Meter},
		{AstronomicalUnit, Meter},
		{Lightyear, Meter},
		{Parsec, Meter},
		{Bar, Pascal},
		{Custom("apple"), Custom("apple")},
	}
	for _, c := range testCases {
		if got := c.unit.Base(); got != c.base {
			t.Errorf("Unit(%s).Base() == %s, want %s", c.unit.Name(), got.Name(), c.base.Name())
		}
	}
}

func TestUnitPhys(t *testing.T) {
	testCases := []struct {
		unit Unit
		want PhysicalQuantity
	}{
		{Ampere, Current},
		{Candela, LuminousIntensity},
		{Kelvin, Temperature},
		{Kilogram, Mass},
		{Gram, Mass},
		{Tonne, Mass},
		{Meter, Length},
		{Parsec, Length},
		{Mole, Amount},
		{Second, Time},
		{Bar, Pressure},
		{Sievert, Radiation},
		{Custom("apple"), CustomQuantity},
	}
	for _, c := range testCases {
		if got := c.unit.Phys(); got != c.want {
			t.Errorf("Unit(%s).Phys() == %s, want %s", c.unit.Name(), got, c.want)
		}
	}
}

func TestParseUnit(t *testing.T) {
	testCases := []struct {
		in   string
		want Unit
	}{
		{"A", Ampere},
		{"ampere", Ampere},
		{"AMPERE", Ampere},
		{"kg", Kilogram},
		{"KILOGRAM", Kilogram},
		{"g", Gram},
		{"t", Tonne},
		{"tonne", Tonne},
		{"m", Meter},
		{"meter", Meter},
		{"au", AstronomicalUnit},
		{"astronomical unit", AstronomicalUnit},
		{"ly", Lightyear},
		{"pc", Parsec},
		{"mol", Mole},
		{"s", Second},
		{"pa", Pascal},
		{"bar", Bar},
		{"sv", Sievert},
	}
	for _, c := range testCases {
		got, err := ParseUnit(c.in)
		if err != nil {
			t.Errorf("ParseUnit(%q) failed: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseUnit(%q) == %s, want %s", c.in, got.Name(), c.want.Name())
		}
	}

	var parseErr *ParseUnitError
	if _, err := ParseUnit("furlong"); !errors.As(err, &parseErr) {
		t.Errorf("ParseUnit(\"furlong\") returned %v, want *ParseUnitError", err)
	}
}

func TestConvertValue(t *testing.T) {
	testCases := []struct {
		value    float64
		from, to Unit
		want     float64
	}{
		{1.0, Tonne, Kilogram, 1000.0},
		{1.0, Tonne, Gram, 1e6},
		{500.0, Gram, Kilogram, 0.5},
		{2.0, Bar, Pascal, 2e5},
		{1.0, Kilogram, Kilogram, 1.0},
	}
	for _, c := range testCases {
		got, err := ConvertValue(c.value, c.from, c.to)
		if err != nil {
			t.Errorf("ConvertValue(%g, %s, %s) failed: %v", c.value, c.from, c.to, err)
			continue
		}
		if got != c.want {
			t.Errorf("ConvertValue(%g, %s, %s) == %g, want %g", c.value, c.from, c.to, got, c.want)
		}
	}
}

func TestConvertValueMismatch(t *testing.T) {
	_, err := ConvertValue(1.0, Kilogram, Second)
	var mismatch *UnitMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("ConvertValue(kg, s) returned %v, want *UnitMismatchError", err)
	}
	if len(mismatch.Units) != 2 || mismatch.Units[0] != Kilogram || mismatch.Units[1] != Second {
		t.Errorf("UnitMismatchError.Units == %v, want [kg s]", mismatch.Units)
	}
}

func TestCustomUnitCompatibility(t *testing.T) {
	testCases := []struct {
		a, b Unit
		want bool
	}{
		{Custom("apple"), Custom("apple"), true},
		{Custom("apple"), Custom("pear"), false},
		{Custom("meter"), Meter, false},
		{Gram, Tonne, true},
		{Meter, Second, false},
	}
	for _, c := range testCases {
		if got := compatible(c.a, c.b); got != c.want {
			t.Errorf("compatible(%s, %s) == %v, want %v", c.a.Name(), c.b.Name(), got, c.want)
		}
	}
}

func TestUnitKey(t *testing.T) {
	testCases := []struct {
		unit Unit
		want string
	}{
		{Kilogram, "kilogram"},
		{AstronomicalUnit, "astronomical_unit"},
		{Custom("widget"), "widget"},
	}
	for _, c := range testCases {
		if got := c.unit.Key(); got != c.want {
			t.Errorf("Unit.Key() == %q, want %q", got, c.want)
		}
	}
}
