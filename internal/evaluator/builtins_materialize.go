package evaluator

func (e *Evaluator) materializeBuiltins() []*Builtin {
	return []*Builtin{
		curry2("seq", func(a, b Value) (Value, error) {
			if _, err := e.forceWeak(a); err != nil {
				return nil, err
			}
			return b, nil
		}),
		curry2("deepSeq", func(a, b Value) (Value, error) {
			if _, err := e.forceDeep(a); err != nil {
				return nil, err
			}
			return b, nil
		}),
	}
}
