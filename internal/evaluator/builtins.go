package evaluator

// curry1 wraps a single-argument native function as a Builtin.
func curry1(name string, f func(Value) (Value, error)) *Builtin {
	return newBuiltin(name, f)
}

// curry2 wraps a two-argument native function as a Builtin that
// curries: the first call captures `a` and returns a new Builtin
// awaiting `b`.
func curry2(name string, f func(a, b Value) (Value, error)) *Builtin {
	return newBuiltin(name, func(a Value) (Value, error) {
		return newBuiltin(name, func(b Value) (Value, error) {
			return f(a, b)
		}), nil
	})
}

// curry3 curries a three-argument native function the same way.
func curry3(name string, f func(a, b, c Value) (Value, error)) *Builtin {
	return newBuiltin(name, func(a Value) (Value, error) {
		return newBuiltin(name, func(b Value) (Value, error) {
			return newBuiltin(name, func(c Value) (Value, error) {
				return f(a, b, c)
			}), nil
		}), nil
	})
}

// BaseEnvironment returns the root Environment every program evaluates
// in: `builtins` bound to the full primitives AttrSet, plus the
// `derivation`/`import` top-level aliases names.
func (e *Evaluator) BaseEnvironment() *Environment {
	b := e.builtinsAttrSet()
	env := NewEnvironment().WithIdent("builtins", b)
	if derivation, ok := b.Get("derivation"); ok {
		env = env.WithIdent("derivation", derivation)
	}
	if imp, ok := b.Get("import"); ok {
		env = env.WithIdent("import", imp)
	}
	return env
}

func (e *Evaluator) builtinsAttrSet() *AttrSet {
	set := EmptyAttrSet()
	put := func(name string, v Value) { set = set.Put(name, v) }

	for _, b := range e.arithBuiltins() {
		put(b.Name, b)
	}
	for _, b := range e.attrSetBuiltins() {
		put(b.Name, b)
	}
	for _, b := range e.listBuiltins() {
		put(b.Name, b)
	}
	for _, b := range e.higherOrderBuiltins() {
		put(b.Name, b)
	}
	for _, b := range e.stringBuiltins() {
		put(b.Name, b)
	}
	for _, b := range e.hashBuiltins() {
		put(b.Name, b)
	}
	for _, b := range e.typeBuiltins() {
		put(b.Name, b)
	}
	for _, b := range e.materializeBuiltins() {
		put(b.Name, b)
	}
	for _, b := range e.debugBuiltins() {
		put(b.Name, b)
	}
	for _, b := range e.interchangeBuiltins() {
		put(b.Name, b)
	}
	for _, b := range e.versionBuiltins() {
		put(b.Name, b)
	}
	for _, b := range e.notYetImplementedBuiltins() {
		put(b.Name, b)
	}
	return set
}
