package siunits

import (
	"math"
	"strings"
)

// Prefix represents an SI magnitude prefix like kilo, milli or nano.
// The variants are ordered by magnitude, so prefixes can be compared
// directly.
type Prefix int

const (
	Quecto Prefix = iota
	Ronto
	Yocto
	Zepto
	Atto
	Femto
	Pico
	Nano
	Micro
	Milli
	Centi
	Deci
	Nothing
	Deca
	Hecto
	Kilo
	Mega
	Giga
	Tera
	Peta
	Exa
	Zetta
	Yotta
	Ronna
	Quetta
)

// Largest and smallest base-10 exponents representable by a Prefix.
const (
	MaxPrefixExp = 30
	MinPrefixExp = -30
)

// Exp returns the signed base-10 exponent represented by the prefix.
func (p Prefix) Exp() int {
	switch p {
	case Quecto:
		return -30
	case Ronto:
		return -27
	case Yocto:
		return -24
	case Zepto:
		return -21
	case Atto:
		return -18
	case Femto:
		return -15
	case Pico:
		return -12
	case Nano:
		return -9
	case Micro:
		return -6
	case Milli:
		return -3
	case Centi:
		return -2
	case Deci:
		return -1
	case Nothing:
		return 0
	case Deca:
		return 1
	case Hecto:
		return 2
	case Kilo:
		return 3
	case Mega:
		return 6
	case Giga:
		return 9
	case Tera:
		return 12
	case Peta:
		return 15
	case Exa:
		return 18
	case Zetta:
		return 21
	case Yotta:
		return 24
	case Ronna:
		return 27
	case Quetta:
		return 30
	default:
		return 0
	}
}

// Factor returns the multiplier represented by the prefix, e.g. 1e3 for
// Kilo and 1e-30 for Quecto.
func (p Prefix) Factor() float64 {
	return math.Pow10(p.Exp())
}

// PrefixFromExp returns the Prefix representing the base-10 exponent exp.
// Exponents without an SI prefix yield a NoPrefixError.
func PrefixFromExp(exp int) (Prefix, error) {
	switch exp {
	case -30:
		return Quecto, nil
	case -27:
		return Ronto, nil
	case -24:
		return Yocto, nil
	case -21:
		return Zepto, nil
	case -18:
		return Atto, nil
	case -15:
		return Femto, nil
	case -12:
		return Pico, nil
	case -9:
		return Nano, nil
	case -6:
		return Micro, nil
	case -3:
		return Milli, nil
	case -2:
		return Centi, nil
	case -1:
		return Deci, nil
	case 0:
		return Nothing, nil
	case 1:
		return Deca, nil
	case 2:
		return Hecto, nil
	case 3:
		return Kilo, nil
	case 6:
		return Mega, nil
	case 9:
		return Giga, nil
	case 12:
		return Tera, nil
	case 15:
		return Peta, nil
	case 18:
		return Exa, nil
	case 21:
		return Zetta, nil
	case 24:
		return Yotta, nil
	case 27:
		return Ronna, nil
	case 30:
		return Quetta, nil
	default:
		return Nothing, &NoPrefixError{Exp: exp}
	}
}

// String returns the letter symbol of the prefix. Nothing maps to the
// empty string.
func (p Prefix) String() string {
	switch p {
	case Quecto:
		return "q"
	case Ronto:
		return "r"
	case Yocto:
		return "y"
	case Zepto:
		return "z"
	case Atto:
		return "a"
	case Femto:
		return "f"
	case Pico:
		return "p"
	case Nano:
		return "n"
	case Micro:
		return "µ"
	case Milli:
		return "m"
	case Centi:
		return "c"
	case Deci:
		return "d"
	case Nothing:
		return ""
	case Deca:
		return "da"
	case Hecto:
		return "h"
	case Kilo:
		return "k"
	case Mega:
		return "M"
	case Giga:
		return "G"
	case Tera:
		return "T"
	case Peta:
		return "P"
	case Exa:
		return "E"
	case Zetta:
		return "Z"
	case Yotta:
		return "Y"
	case Ronna:
		return "R"
	case Quetta:
		return "Q"
	default:
		return "<unkn>"
	}
}

// Name returns the word form of the prefix, e.g. "kilo". Nothing maps to
// the empty string.
func (p Prefix) Name() string {
	switch p {
	case Quecto:
		return "quecto"
	case Ronto:
		return "ronto"
	case Yocto:
		return "yocto"
	case Zepto:
		return "zepto"
	case Atto:
		return "atto"
	case Femto:
		return "femto"
	case Pico:
		return "pico"
	case Nano:
		return "nano"
	case Micro:
		return "micro"
	case Milli:
		return "milli"
	case Centi:
		return "centi"
	case Deci:
		return "deci"
	case Nothing:
		return ""
	case Deca:
		return "deca"
	case Hecto:
		return "hecto"
	case Kilo:
		return "kilo"
	case Mega:
		return "mega"
	case Giga:
		return "giga"
	case Tera:
		return "tera"
	case Peta:
		return "peta"
	case Exa:
		return "exa"
	case Zetta:
		return "zetta"
	case Yotta:
		return "yotta"
	case Ronna:
		return "ronna"
	case Quetta:
		return "quetta"
	default:
		return "<unkn>"
	}
}

// Key returns the canonical localization key of the prefix. It is the
// same as the word form.
func (p Prefix) Key() string {
	return p.Name()
}

// Max returns the larger (by exponent) of p and o.
func (p Prefix) Max(o Prefix) Prefix {
	if o > p {
		return o
	}
	return p
}

var allPrefixes = []Prefix{
	Quecto, Ronto, Yocto, Zepto, Atto, Femto, Pico, Nano, Micro, Milli,
	Centi, Deci, Nothing, Deca, Hecto, Kilo, Mega, Giga, Tera, Peta,
	Exa, Zetta, Yotta, Ronna, Quetta,
}

// ParsePrefix parses a prefix from its letter symbol or word form. The
// symbol has to match exactly ("m" is milli, "M" is mega), the word form
// is matched case-insensitively. The ASCII fallback "u" is accepted for
// micro.
func ParsePrefix(in string) (Prefix, error) {
	if in == "u" {
		return Micro, nil
	}
	for _, p := range allPrefixes {
		if p == Nothing {
			continue
		}
		if in == p.String() || strings.EqualFold(in, p.Name()) {
			return p, nil
		}
	}
	if in == "" {
		return Nothing, nil
	}
	return Nothing, &ParsePrefixError{Input: in}
}
