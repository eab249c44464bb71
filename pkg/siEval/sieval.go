package sieval

import (
	"context"
	"fmt"
	"sync"

	"github.com/PaesslerAG/gval"

	silog "github.com/siquant/siquant/internal/siLog"
	siunits "github.com/siquant/siquant/pkg/siUnits"
)

const component = "QuantityEval"

// quantityLanguage extends the full gval language with quantity
// construction and conversion functions. The infix operators are
// redefined to dispatch over Quantity, Number and plain float operands,
// applying the same prefix and unit result policies as the siunits
// package.
var quantityLanguage = gval.NewLanguage(
	gval.Full(),
	gval.Function("qty", qtyFunc),
	gval.Function("num", numFunc),
	gval.Function("unit", unitFunc),
	gval.Function("shorten", shortenFunc),
	gval.Function("toUnit", toUnitFunc),
	gval.Function("toPrefix", toPrefixFunc),
	gval.Function("value", valueFunc),
	gval.Function("abs", absFunc),
	gval.InfixOperator("+", func(a, b interface{}) (interface{}, error) { return arith("+", a, b) }),
	gval.InfixOperator("-", func(a, b interface{}) (interface{}, error) { return arith("-", a, b) }),
	gval.InfixOperator("*", func(a, b interface{}) (interface{}, error) { return arith("*", a, b) }),
	gval.InfixOperator("/", func(a, b interface{}) (interface{}, error) { return arith("/", a, b) }),
)

// Evaluator evaluates quantity expressions like
//
//	shorten(qty("2 km") + qty("4 m"))
//
// Compiled expressions are cached, so repeated evaluation of the same
// expression only parses it once. An Evaluator is safe for concurrent
// use.
type Evaluator struct {
	mutex sync.Mutex
	cache map[string]gval.Evaluable
}

func New() *Evaluator {
	return &Evaluator{
		cache: make(map[string]gval.Evaluable),
	}
}

func (e *Evaluator) evaluable(expr string) (gval.Evaluable, error) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if ev, ok := e.cache[expr]; ok {
		return ev, nil
	}
	ev, err := quantityLanguage.NewEvaluable(expr)
	if err != nil {
		silog.ComponentError(component, "failed to compile expression", expr, ":", err.Error())
		return nil, err
	}
	e.cache[expr] = ev
	return ev, nil
}

// Eval evaluates expr with the given variables. Variables may hold
// Quantity, Number or plain numeric values.
func (e *Evaluator) Eval(expr string, vars map[string]interface{}) (interface{}, error) {
	ev, err := e.evaluable(expr)
	if err != nil {
		return nil, err
	}
	res, err := ev(context.Background(), vars)
	if err != nil {
		silog.ComponentDebug(component, "evaluation of", expr, "failed:", err.Error())
		return nil, err
	}
	return res, nil
}

// EvalQuantity evaluates expr and requires the result to be a Quantity.
func (e *Evaluator) EvalQuantity(expr string, vars map[string]interface{}) (siunits.Quantity, error) {
	res, err := e.Eval(expr, vars)
	if err != nil {
		return siunits.Quantity{}, err
	}
	q, ok := res.(siunits.Quantity)
	if !ok {
		return siunits.Quantity{}, fmt.Errorf("expression %q evaluated to %T, not a quantity", expr, res)
	}
	return q, nil
}

func qtyFunc(args ...interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("qty() requires exactly one argument")
	}
	in, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("qty() requires a string argument, got %T", args[0])
	}
	return siunits.ParseQuantity(in)
}

func numFunc(args ...interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("num() requires exactly one argument")
	}
	v, ok := args[0].(float64)
	if !ok {
		return nil, fmt.Errorf("num() requires a numeric argument, got %T", args[0])
	}
	return siunits.NewNumber(v), nil
}

func unitFunc(args ...interface{}) (interface{}, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("unit() requires a value and a unit name")
	}
	name, ok := args[1].(string)
	if !ok {
		return nil, fmt.Errorf("unit() requires a unit name, got %T", args[1])
	}
	u, err := siunits.ParseUnit(name)
	if err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case float64:
		return siunits.NewQuantity(siunits.NewNumber(v), u), nil
	case siunits.Number:
		return siunits.NewQuantity(v, u), nil
	default:
		return nil, fmt.Errorf("unit() cannot attach a unit to %T", args[0])
	}
}

func shortenFunc(args ...interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("shorten() requires exactly one argument")
	}
	switch v := args[0].(type) {
	case siunits.Quantity:
		return v.Shorten()
	case siunits.Number:
		return v.Shorten()
	case float64:
		return siunits.NewNumber(v).Shorten()
	default:
		return nil, fmt.Errorf("shorten() cannot be applied to %T", args[0])
	}
}

func toUnitFunc(args ...interface{}) (interface{}, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("toUnit() requires a quantity and a unit name")
	}
	q, ok := args[0].(siunits.Quantity)
	if !ok {
		return nil, fmt.Errorf("toUnit() requires a quantity, got %T", args[0])
	}
	name, ok := args[1].(string)
	if !ok {
		return nil, fmt.Errorf("toUnit() requires a unit name, got %T", args[1])
	}
	u, err := siunits.ParseUnit(name)
	if err != nil {
		return nil, err
	}
	return q.ToUnit(u)
}

func toPrefixFunc(args ...interface{}) (interface{}, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("toPrefix() requires a value and a prefix name")
	}
	name, ok := args[1].(string)
	if !ok {
		return nil, fmt.Errorf("toPrefix() requires a prefix name, got %T", args[1])
	}
	p, err := siunits.ParsePrefix(name)
	if err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case siunits.Quantity:
		return v.ToPrefix(p), nil
	case siunits.Number:
		return v.ToPrefix(p), nil
	case float64:
		return siunits.NewNumber(v).ToPrefix(p), nil
	default:
		return nil, fmt.Errorf("toPrefix() cannot be applied to %T", args[0])
	}
}

func valueFunc(args ...interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("value() requires exactly one argument")
	}
	switch v := args[0].(type) {
	case siunits.Quantity:
		return v.Value(), nil
	case siunits.Number:
		return v.Value(), nil
	case float64:
		return v, nil
	default:
		return nil, fmt.Errorf("value() cannot be applied to %T", args[0])
	}
}

func absFunc(args ...interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("abs() requires exactly one argument")
	}
	switch v := args[0].(type) {
	case siunits.Quantity:
		return v.Abs(), nil
	case siunits.Number:
		return v.Abs(), nil
	case float64:
		if v < 0 {
			return -v, nil
		}
		return v, nil
	default:
		return nil, fmt.Errorf("abs() cannot be applied to %T", args[0])
	}
}
