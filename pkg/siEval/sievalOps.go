package sieval

import (
	"fmt"

	siunits "github.com/siquant/siquant/pkg/siUnits"
)

// arith dispatches an infix operator over the supported operand types.
// Quantity/Quantity and Number/Number operations follow the larger
// prefix of the two operands, scalar operands keep the prefix (and
// unit) of the non-scalar side. Mixing a bare Number with a Quantity
// is rejected.
func arith(op string, a, b interface{}) (interface{}, error) {
	switch x := a.(type) {
	case siunits.Quantity:
		switch y := b.(type) {
		case siunits.Quantity:
			return qtyOp(op, x, y)
		case float64:
			return qtyScalarOp(op, x, y), nil
		}
	case siunits.Number:
		switch y := b.(type) {
		case siunits.Number:
			return numOp(op, x, y), nil
		case float64:
			return numScalarOp(op, x, y), nil
		}
	case float64:
		switch y := b.(type) {
		case float64:
			return floatOp(op, x, y)
		case siunits.Number:
			return scalarNumOp(op, x, y), nil
		case siunits.Quantity:
			return scalarQtyOp(op, x, y)
		}
	}
	return nil, fmt.Errorf("operator %q not defined for %T and %T", op, a, b)
}

func qtyOp(op string, x, y siunits.Quantity) (siunits.Quantity, error) {
	switch op {
	case "+":
		return x.Add(y)
	case "-":
		return x.Sub(y)
	case "*":
		return x.Mul(y)
	default:
		return x.Div(y)
	}
}

func qtyScalarOp(op string, x siunits.Quantity, s float64) siunits.Quantity {
	switch op {
	case "+":
		return x.AddScalar(s)
	case "-":
		return x.SubScalar(s)
	case "*":
		return x.MulScalar(s)
	default:
		return x.DivScalar(s)
	}
}

func numOp(op string, x, y siunits.Number) siunits.Number {
	switch op {
	case "+":
		return x.Add(y)
	case "-":
		return x.Sub(y)
	case "*":
		return x.Mul(y)
	default:
		return x.Div(y)
	}
}

func numScalarOp(op string, x siunits.Number, s float64) siunits.Number {
	switch op {
	case "+":
		return x.AddScalar(s)
	case "-":
		return x.SubScalar(s)
	case "*":
		return x.MulScalar(s)
	default:
		return x.DivScalar(s)
	}
}

func floatOp(op string, x, y float64) (interface{}, error) {
	switch op {
	case "+":
		return x + y, nil
	case "-":
		return x - y, nil
	case "*":
		return x * y, nil
	default:
		return x / y, nil
	}
}

// scalarNumOp handles a plain number on the left side. The result keeps
// the prefix of the Number operand.
func scalarNumOp(op string, s float64, y siunits.Number) siunits.Number {
	var val float64
	switch op {
	case "+":
		val = s + y.Value()
	case "-":
		val = s - y.Value()
	case "*":
		val = s * y.Value()
	default:
		val = s / y.Value()
	}
	return siunits.NewNumber(val).ToPrefix(y.Prefix())
}

// scalarQtyOp handles a plain number on the left side. The scalar is
// combined with the quantity's base value and the result is expressed
// in the quantity's unit and prefix again.
func scalarQtyOp(op string, s float64, y siunits.Quantity) (siunits.Quantity, error) {
	var val float64
	switch op {
	case "+":
		val = s + y.Value()
	case "-":
		val = s - y.Value()
	case "*":
		val = s * y.Value()
	default:
		val = s / y.Value()
	}
	base := siunits.NewQuantity(siunits.NewNumber(val), y.Unit().Base())
	q, err := base.ToUnit(y.Unit())
	if err != nil {
		return siunits.Quantity{}, err
	}
	return q.ToPrefix(y.Number().Prefix()), nil
}
