package siunits

import (
	"fmt"
	"strings"
)

// NoPrefixError is returned when an exponent has no corresponding SI
// prefix.
type NoPrefixError struct {
	Exp int
}

func (e *NoPrefixError) Error() string {
	return fmt.Sprintf("no SI prefix with exponent %d", e.Exp)
}

// PrefixRangeError is returned by Shorten when the normalized exponent
// lies outside the representable prefix range.
type PrefixRangeError struct {
	Exp int
}

func (e *PrefixRangeError) Error() string {
	return fmt.Sprintf("exponent %d is outside the SI prefix range [%d, %d]", e.Exp, MinPrefixExp, MaxPrefixExp)
}

// ParsePrefixError is returned when a string matches no prefix symbol or
// name.
type ParsePrefixError struct {
	Input string
}

func (e *ParsePrefixError) Error() string {
	return fmt.Sprintf("unrecognized SI prefix %q", e.Input)
}

// ParseUnitError is returned when a string matches no unit symbol or
// name.
type ParseUnitError struct {
	Input string
}

func (e *ParseUnitError) Error() string {
	return fmt.Sprintf("unrecognized unit %q", e.Input)
}

// UnitMismatchError is returned when an operation combines units that do
// not measure the same physical quantity. It carries the offending units.
type UnitMismatchError struct {
	Units []Unit
}

func (e *UnitMismatchError) Error() string {
	symbols := make([]string, 0, len(e.Units))
	for _, u := range e.Units {
		symbols = append(symbols, u.String())
	}
	return fmt.Sprintf("units do not measure the same physical quantity: %s", strings.Join(symbols, ", "))
}
