package evaluator

// Equal implements structural equality across Value kinds. Both
// operands must already be weak-forced by the caller — Equal never
// forces its operands themselves, so that Thunk==Thunk can be compared
// without evaluating either side: equality of Thunks is structural on
// (captured Env, body). Members of Lists and AttrSets are weak-forced
// (via forceWeakPure) before they are compared.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case *Thunk:
		y, ok := b.(*Thunk)
		return ok && x.Env == y.Env && x.Body == y.Body
	case *Builtin:
		// "Equality of two Builtins is always false (opaque identity
		// is undefined)" —.
		return false
	case *Function:
		y, ok := b.(*Function)
		return ok && x.Param == y.Param && x.Env == y.Env && x.Body == y.Body
	case *Null:
		_, ok := b.(*Null)
		return ok
	case *Boolean:
		y, ok := b.(*Boolean)
		return ok && x.Value == y.Value
	case *Integer:
		switch y := b.(type) {
		case *Integer:
			return x.Value == y.Value
		case *Floating:
			return float64(x.Value) == y.Value
		}
		return false
	case *Floating:
		switch y := b.(type) {
		case *Integer:
			return x.Value == float64(y.Value)
		case *Floating:
			return x.Value == y.Value
		}
		return false
	case *String:
		y, ok := b.(*String)
		return ok && x.Value == y.Value
	case *Path:
		y, ok := b.(*Path)
		return ok && x.Value == y.Value
	case *List:
		y, ok := b.(*List)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			ea, err := forceWeakPure(x.Elements[i])
			if err != nil {
				return false
			}
			eb, err := forceWeakPure(y.Elements[i])
			if err != nil {
				return false
			}
			if !Equal(ea, eb) {
				return false
			}
		}
		return true
	case *AttrSet:
		y, ok := b.(*AttrSet)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for _, k := range x.Keys() {
			av, _ := x.Get(k)
			bv, ok := y.Get(k)
			if !ok {
				return false
			}
			fa, err := forceWeakPure(av)
			if err != nil {
				return false
			}
			fb, err := forceWeakPure(bv)
			if err != nil {
				return false
			}
			if !Equal(fa, fb) {
				return false
			}
		}
		return true
	}
	return false
}

// forceWeakPure forces a Value with no Evaluator context available
// (used only by Equal/list/attrset comparisons, which
// property 1 guarantees is side-effect-observable only through
// builtins like `trace` — a concern Equal's callers already force
// past via the Evaluator before comparing in practice). It uses a
// throwaway Evaluator since forcing never needs cancellation context
// for a pure comparison.
func forceWeakPure(v Value) (Value, error) {
	e := &Evaluator{}
	return e.forceWeak(v)
}
