package evaluator

import "math"

// Ordering is a three-way comparison result.
type Ordering int

const (
	OrderLess Ordering = -1
	OrderEqual Ordering = 0
	OrderGreater Ordering = 1
)

// numericPair normalizes two Values for arithmetic: (Int, Int) stays
// integer mode; any mix including Float promotes both to float mode.
// Non-numeric inputs fail TypeMismatch("numbers", …).
func numericPair(a, b Value) (ai, bi int64, af, bf float64, isFloat bool, err error) {
	switch x := a.(type) {
	case *Integer:
		ai = x.Value
		af = float64(x.Value)
	case *Floating:
		af = x.Value
		isFloat = true
	default:
		return 0, 0, 0, 0, false, &EvalError{Kind: KindArithTypeMismatch, Expected: "numbers", Actual: typeTag(a)}
	}
	switch y := b.(type) {
	case *Integer:
		bi = y.Value
		bf = float64(y.Value)
	case *Floating:
		bf = y.Value
		isFloat = true
	default:
		return 0, 0, 0, 0, false, &EvalError{Kind: KindArithTypeMismatch, Expected: "numbers", Actual: typeTag(b)}
	}
	return ai, bi, af, bf, isFloat, nil
}

// Add implements `+`: checked on integers, IEEE-754 on floats.
func Add(a, b Value) (Value, error) {
	ai, bi, af, bf, isFloat, err := numericPair(a, b)
	if err != nil {
		return nil, err
	}
	if isFloat {
		return &Floating{Value: af + bf}, nil
	}
	sum := ai + bi
	if (bi > 0 && sum < ai) || (bi < 0 && sum > ai) {
		return nil, &EvalError{Kind: KindOverflow, Detail: "add overflow"}
	}
	return &Integer{Value: sum}, nil
}

// Sub implements `-`.
func Sub(a, b Value) (Value, error) {
	ai, bi, af, bf, isFloat, err := numericPair(a, b)
	if err != nil {
		return nil, err
	}
	if isFloat {
		return &Floating{Value: af - bf}, nil
	}
	diff := ai - bi
	if (bi < 0 && diff < ai) || (bi > 0 && diff > ai) {
		return nil, &EvalError{Kind: KindOverflow, Detail: "sub overflow"}
	}
	return &Integer{Value: diff}, nil
}

// Mul implements `*`.
func Mul(a, b Value) (Value, error) {
	ai, bi, af, bf, isFloat, err := numericPair(a, b)
	if err != nil {
		return nil, err
	}
	if isFloat {
		return &Floating{Value: af * bf}, nil
	}
	if ai == 0 || bi == 0 {
		return &Integer{Value: 0}, nil
	}
	prod := ai * bi
	if prod/bi != ai || (ai == math.MinInt64 && bi == -1) {
		return nil, &EvalError{Kind: KindOverflow, Detail: "mul overflow"}
	}
	return &Integer{Value: prod}, nil
}

// Div implements `/`: truncated-toward-zero integer division (failing
// on divide-by-zero), IEEE-754 float division (±∞/NaN, not an error).
func Div(a, b Value) (Value, error) {
	ai, bi, af, bf, isFloat, err := numericPair(a, b)
	if err != nil {
		return nil, err
	}
	if isFloat {
		return &Floating{Value: af / bf}, nil
	}
	if bi == 0 {
		return nil, &EvalError{Kind: KindDivideByZero}
	}
	if ai == math.MinInt64 && bi == -1 {
		return nil, &EvalError{Kind: KindOverflow, Detail: "div overflow"}
	}
	return &Integer{Value: ai / bi}, nil
}

// Compare returns a<=>b for any two comparable kinds.
// NaN on either side of a float comparison fails ImpossibleComparison.
func Compare(a, b Value) (Ordering, error) {
	switch x := a.(type) {
	case *Integer:
		switch y := b.(type) {
		case *Integer:
			return intOrder(x.Value, y.Value), nil
		case *Floating:
			return floatOrder(float64(x.Value), y.Value)
		}
	case *Floating:
		switch y := b.(type) {
		case *Integer:
			return floatOrder(x.Value, float64(y.Value))
		case *Floating:
			return floatOrder(x.Value, y.Value)
		}
	case *String:
		if y, ok := b.(*String); ok {
			return intOrder(int64(stringCompare(x.Value, y.Value)), 0), nil
		}
	case *Path:
		if y, ok := b.(*Path); ok {
			return intOrder(int64(stringCompare(x.Value, y.Value)), 0), nil
		}
	}
	return 0, &EvalError{Kind: KindArithTypeMismatch, Detail: "values are not comparable"}
}

func stringCompare(a, b string) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func intOrder(a, b int64) Ordering {
	switch {
	case a < b:
		return OrderLess
	case a > b:
		return OrderGreater
	default:
		return OrderEqual
	}
}

func floatOrder(a, b float64) (Ordering, error) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, &EvalError{Kind: KindImpossibleComparison, Detail: "NaN is not ordered"}
	}
	switch {
	case a < b:
		return OrderLess, nil
	case a > b:
		return OrderGreater, nil
	default:
		return OrderEqual, nil
	}
}

// BitAnd/BitOr/BitXor require both operands to be Integer.
func BitAnd(a, b Value) (Value, error) { return bitOp(a, b, func(x, y int64) int64 { return x & y }) }
func BitOr(a, b Value) (Value, error)  { return bitOp(a, b, func(x, y int64) int64 { return x | y }) }
func BitXor(a, b Value) (Value, error) { return bitOp(a, b, func(x, y int64) int64 { return x ^ y }) }

func bitOp(a, b Value, f func(int64, int64) int64) (Value, error) {
	ai, ok := a.(*Integer)
	if !ok {
		return nil, &EvalError{Kind: KindArithTypeMismatch, Expected: "integer", Actual: typeTag(a)}
	}
	bi, ok := b.(*Integer)
	if !ok {
		return nil, &EvalError{Kind: KindArithTypeMismatch, Expected: "integer", Actual: typeTag(b)}
	}
	return &Integer{Value: f(ai.Value, bi.Value)}, nil
}
