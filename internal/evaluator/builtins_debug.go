package evaluator

import "fmt"

func (e *Evaluator) debugBuiltins() []*Builtin {
	return []*Builtin{
		curry2("trace", func(msg, v Value) (Value, error) {
			rendered, err := e.Render(msg)
			if err != nil {
				return nil, err
			}
			fmt.Fprintln(e.Out, rendered)
			return v, nil
		}),
		curry1("abort", func(v Value) (Value, error) {
			s, err := e.forceString(v)
			if err != nil {
				return nil, err
			}
			return nil, &EvalError{Kind: KindAborted, Detail: s}
		}),
		curry1("throw", func(v Value) (Value, error) {
			s, err := e.forceString(v)
			if err != nil {
				return nil, err
			}
			return nil, &EvalError{Kind: KindThrown, Detail: s}
		}),
		curry1("tryEval", func(v Value) (Value, error) {
			return nil, builtinNotYetImplemented("tryEval")
		}),
	}
}
