package evaluator

func (e *Evaluator) higherOrderBuiltins() []*Builtin {
	return []*Builtin{
		curry2("all", func(fV, xsV Value) (Value, error) {
			f, err := e.forceCallable(fV)
			if err != nil {
				return nil, err
			}
			xs, err := e.forceList(xsV)
			if err != nil {
				return nil, err
			}
			for _, el := range xs.Elements {
				ok, err := e.applyPredicate(f, el)
				if err != nil {
					return nil, err
				}
				if !ok {
					return &Boolean{Value: false}, nil
				}
			}
			return &Boolean{Value: true}, nil
		}),
		curry2("any", func(fV, xsV Value) (Value, error) {
			f, err := e.forceCallable(fV)
			if err != nil {
				return nil, err
			}
			xs, err := e.forceList(xsV)
			if err != nil {
				return nil, err
			}
			for _, el := range xs.Elements {
				ok, err := e.applyPredicate(f, el)
				if err != nil {
					return nil, err
				}
				if ok {
					return &Boolean{Value: true}, nil
				}
			}
			return &Boolean{Value: false}, nil
		}),
	}
}
