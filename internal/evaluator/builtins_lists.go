package evaluator

func (e *Evaluator) listBuiltins() []*Builtin {
	return []*Builtin{
		curry1("concatLists", func(v Value) (Value, error) {
			outer, err := e.forceList(v)
			if err != nil {
				return nil, err
			}
			var out []Value
			for _, el := range outer.Elements {
				inner, err := e.forceList(el)
				if err != nil {
					return nil, err
				}
				out = append(out, inner.Elements...)
			}
			return newList(out), nil
		}),
		curry2("elem", func(xV, xsV Value) (Value, error) {
			x, err := e.forceWeak(xV)
			if err != nil {
				return nil, err
			}
			xs, err := e.forceList(xsV)
			if err != nil {
				return nil, err
			}
			for _, el := range xs.Elements {
				fel, err := e.forceWeak(el)
				if err != nil {
					return nil, err
				}
				if Equal(x, fel) {
					return &Boolean{Value: true}, nil
				}
			}
			return &Boolean{Value: false}, nil
		}),
		curry2("elemAt", func(xsV, nV Value) (Value, error) {
			xs, err := e.forceList(xsV)
			if err != nil {
				return nil, err
			}
			n, err := e.forceInt(nV)
			if err != nil {
				return nil, err
			}
			if n < 0 || n >= int64(len(xs.Elements)) {
				return nil, &EvalError{Kind: KindOutOfBounds, Detail: "elemAt index out of range"}
			}
			return xs.Elements[n], nil
		}),
		curry1("head", func(v Value) (Value, error) {
			xs, err := e.forceList(v)
			if err != nil {
				return nil, err
			}
			if len(xs.Elements) == 0 {
				return nil, &EvalError{Kind: KindOutOfBounds, Detail: "head of empty list"}
			}
			return xs.Elements[0], nil
		}),
		curry1("tail", func(v Value) (Value, error) {
			xs, err := e.forceList(v)
			if err != nil {
				return nil, err
			}
			if len(xs.Elements) == 0 {
				return nil, &EvalError{Kind: KindOutOfBounds, Detail: "tail of empty list"}
			}
			return newList(xs.Elements[1:]), nil
		}),
		curry1("length", func(v Value) (Value, error) {
			xs, err := e.forceList(v)
			if err != nil {
				return nil, err
			}
			return &Integer{Value: int64(len(xs.Elements))}, nil
		}),
		curry2("concatMap", func(fV, xsV Value) (Value, error) {
			f, err := e.forceCallable(fV)
			if err != nil {
				return nil, err
			}
			xs, err := e.forceList(xsV)
			if err != nil {
				return nil, err
			}
			var out []Value
			for _, el := range xs.Elements {
				mapped, err := e.ApplyFunction(f, el)
				if err != nil {
					return nil, err
				}
				inner, err := e.forceList(mapped)
				if err != nil {
					return nil, err
				}
				out = append(out, inner.Elements...)
			}
			return newList(out), nil
		}),
		curry2("genList", func(fV, nV Value) (Value, error) {
			f, err := e.forceCallable(fV)
			if err != nil {
				return nil, err
			}
			n, err := e.forceInt(nV)
			if err != nil {
				return nil, err
			}
			if n < 0 {
				return nil, &EvalError{Kind: KindOutOfBounds, Detail: "genList with negative length"}
			}
			elems := make([]Value, n)
			for i := int64(0); i < n; i++ {
				idx := i
				fn := f
				elems[i] = NewThunkFromCall(func() (Value, error) {
					return e.ApplyFunction(fn, &Integer{Value: idx})
				})
			}
			return newList(elems), nil
		}),
		curry2("filter", func(fV, xsV Value) (Value, error) {
			f, err := e.forceCallable(fV)
			if err != nil {
				return nil, err
			}
			xs, err := e.forceList(xsV)
			if err != nil {
				return nil, err
			}
			var out []Value
			for _, el := range xs.Elements {
				keep, err := e.applyPredicate(f, el)
				if err != nil {
					return nil, err
				}
				if keep {
					out = append(out, el)
				}
			}
			return newList(out), nil
		}),
		curry2("partition", func(fV, xsV Value) (Value, error) {
			f, err := e.forceCallable(fV)
			if err != nil {
				return nil, err
			}
			xs, err := e.forceList(xsV)
			if err != nil {
				return nil, err
			}
			var right, wrong []Value
			for _, el := range xs.Elements {
				keep, err := e.applyPredicate(f, el)
				if err != nil {
					return nil, err
				}
				if keep {
					right = append(right, el)
				} else {
					wrong = append(wrong, el)
				}
			}
			result := EmptyAttrSet()
			result = result.Put("right", newList(right))
			result = result.Put("wrong", newList(wrong))
			return result, nil
		}),
		curry3("foldl'", func(opV, nulV, xsV Value) (Value, error) {
			op, err := e.forceCallable(opV)
			if err != nil {
				return nil, err
			}
			xs, err := e.forceList(xsV)
			if err != nil {
				return nil, err
			}
			acc, err := e.forceWeak(nulV)
			if err != nil {
				return nil, err
			}
			for _, el := range xs.Elements {
				step, err := e.ApplyFunction(op, acc)
				if err != nil {
					return nil, err
				}
				stepFn, err := e.forceCallable(step)
				if err != nil {
					return nil, err
				}
				next, err := e.ApplyFunction(stepFn, el)
				if err != nil {
					return nil, err
				}
				acc, err = e.forceWeak(next)
				if err != nil {
					return nil, err
				}
			}
			return acc, nil
		}),
	}
}

func (e *Evaluator) forceInt(v Value) (int64, error) {
	f, err := e.forceWeak(v)
	if err != nil {
		return 0, err
	}
	i, ok := f.(*Integer)
	if !ok {
		return 0, typeMismatch("int", typeTag(f))
	}
	return i.Value, nil
}

func (e *Evaluator) forceCallable(v Value) (Value, error) {
	f, err := e.forceWeak(v)
	if err != nil {
		return nil, err
	}
	if !IsCallable(f) {
		return nil, typeMismatch("function", typeTag(f))
	}
	return f, nil
}

// applyPredicate applies f to x and requires the (weak-forced) result
// to be Boolean.
func (e *Evaluator) applyPredicate(f, x Value) (bool, error) {
	result, err := e.ApplyFunction(f, x)
	if err != nil {
		return false, err
	}
	forced, err := e.forceWeak(result)
	if err != nil {
		return false, err
	}
	b, ok := forced.(*Boolean)
	if !ok {
		return false, typeMismatch("bool", typeTag(forced))
	}
	return b.Value, nil
}
