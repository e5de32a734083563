package evaluator

func (e *Evaluator) hashBuiltins() []*Builtin {
	return []*Builtin{
		curry2("hashString", func(algoV, sV Value) (Value, error) {
			algo, err := e.forceString(algoV)
			if err != nil {
				return nil, err
			}
			s, err := e.forceString(sV)
			if err != nil {
				return nil, err
			}
			if _, ok := hashRegistry[algo]; !ok {
				return nil, &EvalError{Kind: KindUnknownHash, Name: algo}
			}
			if !e.capabilityEnabled(algo) {
				return nil, notEnabled(algo)
			}
			digest, err := hashHex(algo, []byte(s))
			if err != nil {
				return nil, err
			}
			return &String{Value: digest}, nil
		}),
	}
}
