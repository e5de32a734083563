package evaluator

import "strconv"

// toStringValue implements `toString` coercion: strings
// and paths pass through unchanged, numbers print in decimal, true
// becomes "1" and false/null become "", a List joins its elements'
// coercions with single spaces, an AttrSet with __toString or outPath
// defers to that, and Function/Builtin are CannotSerialize. Used both
// by the `toString` builtin and by string-interpolation. It shares
// Eval's recursion-depth counter, so a self-referential __toString or
// outPath fails with an error instead of overflowing the Go stack.
func (e *Evaluator) toStringValue(v Value) (string, error) {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > maxEvalDepth {
		return "", internalError(KindMismatch, "maximum recursion depth exceeded")
	}
	forced, err := e.forceWeak(v)
	if err != nil {
		return "", err
	}
	switch x := forced.(type) {
	case *String:
		return x.Value, nil
	case *Path:
		return x.Value, nil
	case *Integer:
		return strconv.FormatInt(x.Value, 10), nil
	case *Floating:
		return strconv.FormatFloat(x.Value, 'g', -1, 64), nil
	case *Boolean:
		if x.Value {
			return "1", nil
		}
		return "", nil
	case *Null:
		return "", nil
	case *List:
		parts := make([]string, len(x.Elements))
		for i, el := range x.Elements {
			s, err := e.toStringValue(el)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		out := ""
		for i, p := range parts {
			if i > 0 {
				out += " "
			}
			out += p
		}
		return out, nil
	case *AttrSet:
		if ts, ok := x.Get("__toString"); ok {
			tsForced, err := e.forceWeak(ts)
			if err != nil {
				return "", err
			}
			if !IsCallable(tsForced) {
				return "", &EvalError{Kind: KindCannotSerialize, Detail: "__toString is not callable"}
			}
			result, err := e.ApplyFunction(tsForced, x)
			if err != nil {
				return "", err
			}
			str, err := e.forceWeak(result)
			if err != nil {
				return "", err
			}
			s, ok := str.(*String)
			if !ok {
				return "", &EvalError{Kind: KindCannotSerialize, Detail: "__toString did not return a string"}
			}
			return s.Value, nil
		}
		if out, ok := x.Get("outPath"); ok {
			return e.toStringValue(out)
		}
		return "", &EvalError{Kind: KindCannotSerialize, Actual: typeTag(forced)}
	case *Function, *Builtin:
		return "", &EvalError{Kind: KindCannotSerialize, Actual: typeTag(forced)}
	}
	return "", &EvalError{Kind: KindCannotSerialize, Actual: typeTag(forced)}
}
