package evaluator

import "math"

func (e *Evaluator) arithBuiltins() []*Builtin {
	return []*Builtin{
		e.curryNumeric2("add", Add),
		e.curryNumeric2("sub", Sub),
		e.curryNumeric2("mul", Mul),
		e.curryNumeric2("div", Div),
		curry2("lessThan", func(a, b Value) (Value, error) {
			af, err := e.forceWeak(a)
			if err != nil {
				return nil, err
			}
			bf, err := e.forceWeak(b)
			if err != nil {
				return nil, err
			}
			ord, err := Compare(af, bf)
			if err != nil {
				return nil, err
			}
			return &Boolean{Value: ord == OrderLess}, nil
		}),
		curry2("bitAnd", e.bitBuiltin(BitAnd)),
		curry2("bitOr", e.bitBuiltin(BitOr)),
		curry2("bitXor", e.bitBuiltin(BitXor)),
		curry1("ceil", e.roundBuiltin(math.Ceil)),
		curry1("floor", e.roundBuiltin(math.Floor)),
	}
}

// curryNumeric2 weak-forces both operands before delegating to the
// checked arithmetic core (arith.go), which expects already-forced
// Values.
func (e *Evaluator) curryNumeric2(name string, op func(a, b Value) (Value, error)) *Builtin {
	return curry2(name, func(a, b Value) (Value, error) {
		af, err := e.forceWeak(a)
		if err != nil {
			return nil, err
		}
		bf, err := e.forceWeak(b)
		if err != nil {
			return nil, err
		}
		return op(af, bf)
	})
}

func (e *Evaluator) bitBuiltin(op func(a, b Value) (Value, error)) func(a, b Value) (Value, error) {
	return func(a, b Value) (Value, error) {
		af, err := e.forceWeak(a)
		if err != nil {
			return nil, err
		}
		bf, err := e.forceWeak(b)
		if err != nil {
			return nil, err
		}
		return op(af, bf)
	}
}

func (e *Evaluator) roundBuiltin(round func(float64) float64) func(Value) (Value, error) {
	return func(v Value) (Value, error) {
		f, err := e.forceWeak(v)
		if err != nil {
			return nil, err
		}
		fl, ok := f.(*Floating)
		if !ok {
			return nil, typeMismatch("float", typeTag(f))
		}
		return &Integer{Value: int64(round(fl.Value))}, nil
	}
}
