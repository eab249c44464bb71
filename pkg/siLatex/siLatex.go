package silatex

import (
	"fmt"
	"strings"

	siunits "github.com/siquant/siquant/pkg/siUnits"
)

// Options controls the rendering of mantissas in the generated markup.
// The zero value renders integral mantissas with a single zero decimal
// ("9.0"). Options values are immutable, the builder methods return a
// modified copy.
type Options struct {
	DropZeroDecimal      bool
	MinimumDecimalDigits uint8
}

func NewOptions() Options {
	return Options{}
}

// WithDropZeroDecimal controls whether an all-zero decimal part is
// omitted ("9" instead of "9.0").
func (o Options) WithDropZeroDecimal(sw bool) Options {
	o.DropZeroDecimal = sw
	return o
}

// WithMinimumDecimalDigits pads the decimal part with zeros to at
// least the given number of digits.
func (o Options) WithMinimumDecimalDigits(digits uint8) Options {
	o.MinimumDecimalDigits = digits
	return o
}

func (o Options) String() string {
	if o.DropZeroDecimal {
		return "[drop-zero-decimal]"
	}
	return ""
}

// Texer is the capability interface for types that render themselves
// as siunitx markup. The helpers below cover the siunits types, other
// display types can opt in by implementing it.
type Texer interface {
	Tex(options Options) string
}

var prefixCommands = map[siunits.Prefix]string{
	siunits.Quecto: `\quecto`,
	siunits.Ronto:  `\ronto`,
	siunits.Yocto:  `\yocto`,
	siunits.Zepto:  `\zepto`,
	siunits.Atto:   `\atto`,
	siunits.Femto:  `\femto`,
	siunits.Pico:   `\pico`,
	siunits.Nano:   `\nano`,
	siunits.Micro:  `\micro`,
	siunits.Milli:  `\milli`,
	siunits.Centi:  `\centi`,
	siunits.Deci:   `\deci`,
	siunits.Deca:   `\deca`,
	siunits.Hecto:  `\hecto`,
	siunits.Kilo:   `\kilo`,
	siunits.Mega:   `\mega`,
	siunits.Giga:   `\giga`,
	siunits.Tera:   `\tera`,
	siunits.Peta:   `\peta`,
	siunits.Exa:    `\exa`,
	siunits.Zetta:  `\zetta`,
	siunits.Yotta:  `\yotta`,
	siunits.Ronna:  `\ronna`,
	siunits.Quetta: `\quetta`,
}

// PrefixTex returns the siunitx command for a prefix, for example
// `\kilo`. The neutral prefix renders as the empty string.
func PrefixTex(p siunits.Prefix) string {
	return prefixCommands[p]
}

// UnitTex returns the siunitx command for a unit, for example
// `\meter`. Custom units render their label verbatim.
func UnitTex(u siunits.Unit) string {
	if u.IsCustom() {
		return u.String()
	}
	switch u {
	case siunits.Ampere:
		return `\ampere`
	case siunits.Candela:
		return `\candela`
	case siunits.Kelvin:
		return `\kelvin`
	case siunits.Kilogram:
		return `\kilogram`
	case siunits.Gram:
		return `\gram`
	case siunits.Tonne:
		return `\tonne`
	case siunits.Meter:
		return `\meter`
	case siunits.AstronomicalUnit:
		return `\astronomicalunit`
	case siunits.Lightyear:
		return `\lightyear`
	case siunits.Parsec:
		return `\parsec`
	case siunits.Mole:
		return `\mol`
	case siunits.Second:
		return `\second`
	case siunits.Pascal:
		return `\pascal`
	case siunits.Bar:
		return `\bar`
	case siunits.Sievert:
		return `\sievert`
	}
	return u.String()
}

// Mantissa formats a mantissa according to the given options. Binary
// float noise is suppressed the same way the plain string form does
// it.
func Mantissa(v float64, options Options) string {
	s := siunits.FormatFloat(v)
	whole, frac, _ := strings.Cut(s, ".")
	min := int(options.MinimumDecimalDigits)
	if !options.DropZeroDecimal && min < 1 {
		min = 1
	}
	if len(frac) < min {
		frac += strings.Repeat("0", min-len(frac))
	}
	if frac == "" {
		return whole
	}
	return whole + "." + frac
}

// NumberTex renders a number as a `\num` command, or as a `\qty`
// command carrying the prefix when one is set.
func NumberTex(n siunits.Number, options Options) string {
	if n.Prefix() == siunits.Nothing {
		return fmt.Sprintf(`\num{%s}`, Mantissa(n.Mantissa(), options))
	}
	return fmt.Sprintf(`\qty{%s}{%s}`, Mantissa(n.Mantissa(), options), PrefixTex(n.Prefix()))
}

// QuantityTex renders a quantity as a `\qty` command, for example
// `\qty{9.9}{\milli\ampere}`. Masses are rendered in the canonical
// form the quantity itself carries, so a kilogram with a prefix shows
// up as the equivalent prefixed gram.
func QuantityTex(q siunits.Quantity, options Options) string {
	return fmt.Sprintf(
		`\qty{%s}{%s%s}`,
		Mantissa(q.Number().Mantissa(), options),
		PrefixTex(q.Number().Prefix()),
		UnitTex(q.Unit()),
	)
}
