package evaluator

import (
	"io"
	"os"

	"github.com/nixlang/nixeval/internal/config"
)

// maxEvalDepth guards against Go stack overflow from pathological or
// infinitely-recursive user programs.
const maxEvalDepth = 10000

// Evaluator carries the mutable, per-session state Eval needs:
// the diagnostic stream `trace` writes to, which optional capabilities
// are enabled, and the process environment getEnv reads from.
type Evaluator struct {
	Out    io.Writer
	Caps   config.Capabilities
	Getenv func(string) (string, bool)

	depth int
}

// New returns an Evaluator with diagnostics on stderr, every optional
// capability enabled, and getEnv backed by the process environment.
func New() *Evaluator {
	return &Evaluator{
		Out:    os.Stderr,
		Caps:   config.DefaultCapabilities(),
		Getenv: os.LookupEnv,
	}
}

// forceWeak materializes a Value to weak head normal form: if v is a
// Thunk, evaluate its body against its captured Environment; otherwise
// return v unchanged. A Thunk's memo cell makes repeated forces of the
// *same* Thunk value cheap and single-evaluation.
func (e *Evaluator) forceWeak(v Value) (Value, error) {
	switch t := v.(type) {
	case *Thunk:
		if t.forced {
			return t.result, t.err
		}
		res, err := e.Eval(t.Body, t.Env)
		t.forced = true
		t.result = res
		t.err = err
		return res, err
	case *NativeThunk:
		if t.forced {
			return t.result, t.err
		}
		res, err := t.fn()
		t.forced = true
		t.result = res
		t.err = err
		return res, err
	default:
		return v, nil
	}
}

// forceDeep materializes v and every nested element transitively.
// materializable short-circuits subtrees that contain no Thunk, which
// is what makes repeated deep-forcing of the same value idempotent and
// cheap.
func (e *Evaluator) forceDeep(v Value) (Value, error) {
	w, err := e.forceWeak(v)
	if err != nil {
		return nil, err
	}
	if !materializable(w) {
		return w, nil
	}
	switch x := w.(type) {
	case *List:
		elems := make([]Value, len(x.Elements))
		for i, el := range x.Elements {
			fv, err := e.forceDeep(el)
			if err != nil {
				return nil, err
			}
			elems[i] = fv
		}
		return &List{Elements: elems}, nil
	case *AttrSet:
		result := x
		for _, k := range x.Keys() {
			val, _ := x.Get(k)
			fv, err := e.forceDeep(val)
			if err != nil {
				return nil, err
			}
			result = result.Put(k, fv)
		}
		return result, nil
	}
	return w, nil
}

// materializable reports whether v is a Thunk or transitively contains
// one.
func materializable(v Value) bool {
	switch x := v.(type) {
	case *Thunk, *NativeThunk:
		return true
	case *List:
		for _, el := range x.Elements {
			if materializable(el) {
				return true
			}
		}
		return false
	case *AttrSet:
		for _, k := range x.Keys() {
			val, _ := x.Get(k)
			if materializable(val) {
				return true
			}
		}
		return false
	}
	return false
}
