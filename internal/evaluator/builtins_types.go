package evaluator

func (e *Evaluator) typeBuiltins() []*Builtin {
	is := func(name string, pred func(Value) bool) *Builtin {
		return curry1(name, func(v Value) (Value, error) {
			f, err := e.forceWeak(v)
			if err != nil {
				return nil, err
			}
			return &Boolean{Value: pred(f)}, nil
		})
	}

	return []*Builtin{
		is("isAttrs", func(v Value) bool { _, ok := v.(*AttrSet); return ok }),
		is("isBool", func(v Value) bool { _, ok := v.(*Boolean); return ok }),
		is("isFloat", func(v Value) bool { _, ok := v.(*Floating); return ok }),
		is("isFunction", IsCallable),
		is("isInt", func(v Value) bool { _, ok := v.(*Integer); return ok }),
		is("isList", func(v Value) bool { _, ok := v.(*List); return ok }),
		is("isNull", func(v Value) bool { _, ok := v.(*Null); return ok }),
		is("isPath", func(v Value) bool { _, ok := v.(*Path); return ok }),
		is("isString", func(v Value) bool { _, ok := v.(*String); return ok }),
		curry1("typeOf", func(v Value) (Value, error) {
			f, err := e.forceWeak(v)
			if err != nil {
				return nil, err
			}
			return &String{Value: typeTag(f)}, nil
		}),
	}
}
