package sieval

import (
	"testing"

	siunits "github.com/siquant/siquant/pkg/siUnits"
)

func TestEvalQuantityExpressions(t *testing.T) {
	testCases := []struct {
		expr string
		want string
	}{
		{`qty("2 km") + qty("4 m")`, "2.004 km"},
		{`qty("2 km") - qty("4 m")`, "1.996 km"},
		{`qty("2 km") * 4`, "8 km"},
		{`4 * qty("2 km")`, "8 km"},
		{`qty("2 km") / 4`, "0.5 km"},
		{`shorten(qty("1200 m"))`, "1.2 km"},
		{`shorten(qty("0.004 A"))`, "4 mA"},
		{`toUnit(qty("1 t"), "kg")`, "1000 kg"},
		{`toPrefix(qty("2 km"), "m")`, "2000000 mm"},
		{`abs(qty("-9.9 km"))`, "9.9 km"},
		{`unit(2.5, "bar")`, "2.5 bar"},
		{`unit(num(2.5), "s")`, "2.5 s"},
	}

	e := New()
	for _, c := range testCases {
		q, err := e.EvalQuantity(c.expr, nil)
		if err != nil {
			t.Errorf("EvalQuantity(%s) failed: %v", c.expr, err)
			continue
		}
		if got := q.String(); got != c.want {
			t.Errorf("EvalQuantity(%s): got %q, want %q", c.expr, got, c.want)
		}
	}
}

func TestEvalNumberExpressions(t *testing.T) {
	testCases := []struct {
		expr string
		want string
	}{
		{`num(1500) + num(500)`, "2000"},
		{`shorten(num(1500))`, "1.5 k"},
		{`shorten(1500)`, "1.5 k"},
		{`num(2000) * 2`, "4000"},
		{`3 * num(2000)`, "6000"},
		{`toPrefix(num(2.5), "k")`, "0.0025 k"},
	}

	e := New()
	for _, c := range testCases {
		res, err := e.Eval(c.expr, nil)
		if err != nil {
			t.Errorf("Eval(%s) failed: %v", c.expr, err)
			continue
		}
		n, ok := res.(siunits.Number)
		if !ok {
			t.Errorf("Eval(%s): got %T, want a number", c.expr, res)
			continue
		}
		if got := n.String(); got != c.want {
			t.Errorf("Eval(%s): got %q, want %q", c.expr, got, c.want)
		}
	}
}

func TestEvalVariables(t *testing.T) {
	e := New()
	vars := map[string]interface{}{
		"mem":   siunits.NewQuantity(siunits.NewNumber(2).WithPrefix(siunits.Kilo), siunits.Gram),
		"scale": 3.0,
	}
	q, err := e.EvalQuantity(`mem * scale`, vars)
	if err != nil {
		t.Fatalf("EvalQuantity failed: %v", err)
	}
	if got := q.String(); got != "6 kg" {
		t.Errorf("got %q, want %q", got, "6 kg")
	}
}

func TestEvalUnitMismatch(t *testing.T) {
	e := New()
	_, err := e.Eval(`qty("1 A") + qty("1 s")`, nil)
	if err == nil {
		t.Fatal("expected an error for incompatible units")
	}
}

func TestEvalErrors(t *testing.T) {
	e := New()

	if _, err := e.Eval(`qty("1 A") +`, nil); err == nil {
		t.Error("expected a compile error for an incomplete expression")
	}
	if _, err := e.Eval(`qty("9.9 zz")`, nil); err == nil {
		t.Error("expected an error for an unknown unit")
	}
	if _, err := e.Eval(`num(1) + qty("1 s")`, nil); err == nil {
		t.Error("expected an error for mixing a bare number with a quantity")
	}
	if _, err := e.EvalQuantity(`1 + 2`, nil); err == nil {
		t.Error("expected an error for a non-quantity result")
	}
}

func TestEvalCachesCompiledExpressions(t *testing.T) {
	e := New()
	const expr = `qty("2 km") + qty("4 m")`
	if _, err := e.EvalQuantity(expr, nil); err != nil {
		t.Fatalf("first evaluation failed: %v", err)
	}
	if _, ok := e.cache[expr]; !ok {
		t.Error("compiled expression was not cached")
	}
	if _, err := e.EvalQuantity(expr, nil); err != nil {
		t.Fatalf("second evaluation failed: %v", err)
	}
}
