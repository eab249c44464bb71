package siunits

import (
	"errors"
	"testing"
)

func TestPrefixFactorExp(t *testing.T) {
	testCases := []struct {
		prefix Prefix
		exp    int
		factor float64
	}{
		{Quecto, -30, 1e-30},
		{Femto, -15, 1e-15},
		{Milli, -3, 1e-3},
		{Centi, -2, 1e-2},
		{Deci, -1, 1e-1},
		{Nothing, 0, 1.0},
		{Deca, 1, 1e1},
		{Hecto, 2, 1e2},
		{Kilo, 3, 1e3},
		{Mega, 6, 1e6},
		{Peta, 15, 1e15},
		{Quetta, 30, 1e30},
	}
	for _, c := range testCases {
		if got := c.prefix.Exp(); got != c.exp {
			t.Errorf("Prefix(%s).Exp() == %d, want %d", c.prefix.Name(), got, c.exp)
		}
		if got := c.prefix.Factor(); got != c.factor {
			t.Errorf("Prefix(%s).Factor() == %g, want %g", c.prefix.Name(), got, c.factor)
		}
	}
}

func TestPrefixFromExpRoundTrip(t *testing.T) {
	for _, p := range allPrefixes {
		got, err := PrefixFromExp(p.Exp())
		if err != nil {
			t.Fatalf("PrefixFromExp(%d) failed: %v", p.Exp(), err)
		}
		if got != p {
			t.Errorf("PrefixFromExp(%d) == %s, want %s", p.Exp(), got.Name(), p.Name())
		}
	}
}

func TestPrefixFromExpInvalid(t *testing.T) {
	for _, exp := range []int{-31, -4, 4, 5, 7, 16, 31} {
		_, err := PrefixFromExp(exp)
		if err == nil {
			t.Errorf("PrefixFromExp(%d) succeeded, want error", exp)
			continue
		}
		var noPrefix *NoPrefixError
		if !errors.As(err, &noPrefix) {
			t.Errorf("PrefixFromExp(%d) returned %T, want *NoPrefixError", exp, err)
		} else if noPrefix.Exp != exp {
			t.Errorf("NoPrefixError.Exp == %d, want %d", noPrefix.Exp, exp)
		}
	}
}

func TestPrefixStrings(t *testing.T) {
	testCases := []struct {
		prefix Prefix
		symbol string
		name   string
	}{
		{Nothing, "", ""},
		{Kilo, "k", "kilo"},
		{Mega, "M", "mega"},
		{Milli, "m", "milli"},
		{Micro, "µ", "micro"},
		{Deca, "da", "deca"},
		{Quetta, "Q", "quetta"},
		{Quecto, "q", "quecto"},
	}
	for _, c := range testCases {
		if got := c.prefix.String(); got != c.symbol {
			t.Errorf("Prefix.String() == %q, want %q", got, c.symbol)
		}
		if got := c.prefix.Name(); got != c.name {
			t.Errorf("Prefix.Name() == %q, want %q", got, c.name)
		}
	}
}

func TestPrefixOrdering(t *testing.T) {
	if !(Milli < Nothing && Nothing < Kilo && Kilo < Mega) {
		t.Error("prefixes are not ordered by exponent")
	}
	if got := Kilo.Max(Milli); got != Kilo {
		t.Errorf("Kilo.Max(Milli) == %s, want kilo", got.Name())
	}
	if got := Nothing.Max(Kilo); got != Kilo {
		t.Errorf("Nothing.Max(Kilo) == %s, want kilo", got.Name())
	}
}

func TestParsePrefix(t *testing.T) {
	testCases := []struct {
		in   string
		want Prefix
	}{
		{"k", Kilo},
		{"kilo", Kilo},
		{"KILO", Kilo},
		{"m", Milli},
		{"M", Mega},
		{"µ", Micro},
		{"u", Micro},
		{"da", Deca},
		{"", Nothing},
	}
	for _, c := range testCases {
		got, err := ParsePrefix(c.in)
		if err != nil {
			t.Errorf("ParsePrefix(%q) failed: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParsePrefix(%q) == %s, want %s", c.in, got.Name(), c.want.Name())
		}
	}

	var parseErr *ParsePrefixError
	if _, err := ParsePrefix("xyz"); !errors.As(err, &parseErr) {
		t.Errorf("ParsePrefix(\"xyz\") returned %v, want *ParsePrefixError", err)
	}
}
