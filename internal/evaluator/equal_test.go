package evaluator

import "testing"

func TestEqualScalars(t *testing.T) {
	if !Equal(&Integer{Value: 1}, &Integer{Value: 1}) {
		t.Error("1 should equal 1")
	}
	if Equal(&Integer{Value: 1}, &Integer{Value: 2}) {
		t.Error("1 should not equal 2")
	}
	if !Equal(&Integer{Value: 1}, &Floating{Value: 1.0}) {
		t.Error("1 should equal 1.0 across kinds")
	}
	if !Equal(&Null{}, &Null{}) {
		t.Error("null should equal null")
	}
}

func TestEqualBuiltinsAlwaysFalse(t *testing.T) {
	b := newBuiltin("f", func(v Value) (Value, error) { return v, nil })
	if Equal(b, b) {
		t.Error("two Builtins, even the same pointer, must never compare equal")
	}
}

func TestEqualFunctionByReference(t *testing.T) {
	env1 := NewEnvironment().WithIdent("x", &Integer{Value: 1})
	env2 := NewEnvironment().WithIdent("x", &Integer{Value: 2})
	f1 := &Function{Param: "x", Env: env1, Body: nil}
	f2 := &Function{Param: "x", Env: env2, Body: nil}
	if Equal(f1, f2) {
		t.Error("Functions capturing different Environments must not be equal, even with the same Param")
	}
	if !Equal(f1, f1) {
		t.Error("a Function must equal itself")
	}
}

func TestEqualThunksStructuralWithoutForcing(t *testing.T) {
	// A Thunk whose body would panic/throw if forced must still compare
	// via (Env, Body) identity without ever forcing it.
	env := NewEnvironment()
	th := &Thunk{Env: env, Body: nil}
	same := &Thunk{Env: env, Body: nil}
	if !Equal(th, same) {
		t.Error("two Thunks sharing (Env, Body) should compare equal without forcing")
	}
}

func TestEqualListsAndAttrSets(t *testing.T) {
	l1 := newList([]Value{&Integer{Value: 1}, &Integer{Value: 2}})
	l2 := newList([]Value{&Integer{Value: 1}, &Integer{Value: 2}})
	if !Equal(l1, l2) {
		t.Error("element-wise equal lists should compare equal")
	}
	s1 := EmptyAttrSet().Put("a", &Integer{Value: 1})
	s2 := EmptyAttrSet().Put("a", &Integer{Value: 1})
	if !Equal(s1, s2) {
		t.Error("same-keys-and-values AttrSets should compare equal")
	}
	s3 := s1.Put("b", &Integer{Value: 2})
	if Equal(s1, s3) {
		t.Error("AttrSets of different size should not compare equal")
	}
}
