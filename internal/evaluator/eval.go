package evaluator

import (
	"strings"

	"github.com/nixlang/nixeval/internal/ast"
)

// Eval dispatches on node's AST kind and produces a Value under env.
// Every non-kernel node kind (assert/if-else/with/
// inherit/dynamic keys/unary-op/patterns/or-default) returns
// NotYetImplemented. A StringLiteral's embedded expressions are
// evaluated and coerced by evalStringLiteral. AttrSetLiteral is also
// evaluated:
// attribute-set literals need to resolve through the same dotted
// with_path machinery let-bindings use, so this kernel implements it
// rather than leaving it a stub — see DESIGN.md for the full
// resolution of that tension.
func (e *Evaluator) Eval(node ast.Node, env *Environment) (Value, error) {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > maxEvalDepth {
		return nil, internalError(KindMismatch, "maximum recursion depth exceeded")
	}

	switch n := node.(type) {
	case *ast.Root:
		return e.Eval(n.Inner, env)
	case *ast.IntLiteral:
		return &Integer{Value: n.Value}, nil
	case *ast.FloatLiteral:
		return &Floating{Value: n.Value}, nil
	case *ast.PathLiteral:
		return &Path{Value: n.Value}, nil
	case *ast.BoolLiteral:
		return &Boolean{Value: n.Value}, nil
	case *ast.NullLiteral:
		return null, nil
	case *ast.StringLiteral:
		return e.evalStringLiteral(n, env)
	case *ast.Identifier:
		v, ok := env.Lookup(n.Name)
		if !ok {
			return nil, unresolvedIdent(n.Name)
		}
		return v, nil
	case *ast.ListLiteral:
		elems := make([]Value, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = NewThunk(env, el)
		}
		return newList(elems), nil
	case *ast.Paren:
		return e.Eval(n.Inner, env)
	case *ast.Select:
		return e.evalSelect(n, env)
	case *ast.Apply:
		return e.evalApply(n, env)
	case *ast.BinaryOp:
		return e.evalBinaryOp(n, env)
	case *ast.UnaryOp:
		return nil, notYetImplemented("unary-op")
	case *ast.Lambda:
		return &Function{Param: n.Param, Env: env, Body: n.Body}, nil
	case *ast.LetIn:
		return e.evalLetIn(n, env)
	case *ast.AttrSetLiteral:
		return e.evalAttrSetLiteral(n, env)
	case *ast.Assert:
		return nil, notYetImplemented("assert")
	case *ast.IfElse:
		return nil, notYetImplemented("if-else")
	case *ast.With:
		return nil, notYetImplemented("with")
	case *ast.Inherit:
		return nil, notYetImplemented("inherit")
	case *ast.DynamicKey:
		return nil, notYetImplemented("dynamic-key")
	case *ast.Pattern, *ast.PatternLambda:
		return nil, notYetImplemented("pattern")
	case *ast.OrDefault:
		return nil, notYetImplemented("or-default")
	}

	return nil, &EvalError{Kind: KindUnexpectedNode, Detail: "unrecognized AST node"}
}

func (e *Evaluator) evalStringLiteral(n *ast.StringLiteral, env *Environment) (Value, error) {
	if len(n.Parts) == 1 && n.Exprs[0] == nil {
		return &String{Value: n.Parts[0]}, nil
	}
	var sb strings.Builder
	for i, part := range n.Parts {
		sb.WriteString(part)
		if n.Exprs[i] != nil {
			v, err := e.Eval(n.Exprs[i], env)
			if err != nil {
				return nil, err
			}
			s, err := e.toStringValue(v)
			if err != nil {
				return nil, err
			}
			sb.WriteString(s)
		}
	}
	return &String{Value: sb.String()}, nil
}

func (e *Evaluator) evalSelect(n *ast.Select, env *Environment) (Value, error) {
	setVal, err := e.Eval(n.Set, env)
	if err != nil {
		return nil, err
	}
	forced, err := e.forceWeak(setVal)
	if err != nil {
		return nil, err
	}
	set, ok := forced.(*AttrSet)
	if !ok {
		return nil, typeMismatch("set", typeTag(forced))
	}
	v, ok := set.Get(n.Key)
	if !ok {
		return nil, noSuchIndex(n.Key)
	}
	return v, nil
}

func (e *Evaluator) evalApply(n *ast.Apply, env *Environment) (Value, error) {
	fnVal, err := e.Eval(n.Fn, env)
	if err != nil {
		return nil, err
	}
	forced, err := e.forceWeak(fnVal)
	if err != nil {
		return nil, err
	}
	if !IsCallable(forced) {
		return nil, typeMismatch("function", typeTag(forced))
	}
	// Function arguments are lazy: wrap the unevaluated
	// argument expression in a Thunk over the caller's Environment.
	arg := Value(NewThunk(env, n.Arg))
	return e.ApplyFunction(forced, arg)
}

// ApplyFunction applies a callable Value to one already-forced-or-thunked
// argument.
func (e *Evaluator) ApplyFunction(fn Value, arg Value) (Value, error) {
	switch f := fn.(type) {
	case *Function:
		newEnv := f.Env.WithIdent(f.Param, arg)
		return e.Eval(f.Body, newEnv)
	case *Builtin:
		return f.Fn(arg)
	default:
		return nil, typeMismatch("function", typeTag(fn))
	}
}

func (e *Evaluator) evalBinaryOp(n *ast.BinaryOp, env *Environment) (Value, error) {
	switch n.Operator {
	case ast.OpAnd:
		l, err := e.evalBool(n.Left, env)
		if err != nil {
			return nil, err
		}
		if !l {
			return &Boolean{Value: false}, nil
		}
		r, err := e.evalBool(n.Right, env)
		if err != nil {
			return nil, err
		}
		return &Boolean{Value: r}, nil
	case ast.OpOr:
		l, err := e.evalBool(n.Left, env)
		if err != nil {
			return nil, err
		}
		if l {
			return &Boolean{Value: true}, nil
		}
		r, err := e.evalBool(n.Right, env)
		if err != nil {
			return nil, err
		}
		return &Boolean{Value: r}, nil
	case ast.OpImplies:
		l, err := e.evalBool(n.Left, env)
		if err != nil {
			return nil, err
		}
		if !l {
			return &Boolean{Value: true}, nil
		}
		r, err := e.evalBool(n.Right, env)
		if err != nil {
			return nil, err
		}
		return &Boolean{Value: r}, nil
	case ast.OpConcat, ast.OpUpdate, ast.OpIsSet:
		return nil, notYetImplemented(string(n.Operator))
	}

	left, err := e.evalForced(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.evalForced(n.Right, env)
	if err != nil {
		return nil, err
	}

	switch n.Operator {
	case ast.OpAdd:
		return Add(left, right)
	case ast.OpSub:
		return Sub(left, right)
	case ast.OpMul:
		return Mul(left, right)
	case ast.OpDiv:
		return Div(left, right)
	case ast.OpEqual:
		return &Boolean{Value: Equal(left, right)}, nil
	case ast.OpNotEqual:
		return &Boolean{Value: !Equal(left, right)}, nil
	case ast.OpLess, ast.OpLessEq, ast.OpMore, ast.OpMoreEq:
		ord, err := Compare(left, right)
		if err != nil {
			return nil, err
		}
		switch n.Operator {
		case ast.OpLess:
			return &Boolean{Value: ord == OrderLess}, nil
		case ast.OpLessEq:
			return &Boolean{Value: ord != OrderGreater}, nil
		case ast.OpMore:
			return &Boolean{Value: ord == OrderGreater}, nil
		default:
			return &Boolean{Value: ord != OrderLess}, nil
		}
	}

	return nil, &EvalError{Kind: KindUnexpectedToken, Detail: "unknown operator " + string(n.Operator)}
}

// evalForced evaluates node and weak-forces the result — the shared
// path for every strict-operand operator (arithmetic, comparison).
func (e *Evaluator) evalForced(node ast.Node, env *Environment) (Value, error) {
	v, err := e.Eval(node, env)
	if err != nil {
		return nil, err
	}
	return e.forceWeak(v)
}

func (e *Evaluator) evalBool(node ast.Node, env *Environment) (bool, error) {
	v, err := e.evalForced(node, env)
	if err != nil {
		return false, err
	}
	b, ok := v.(*Boolean)
	if !ok {
		return false, typeMismatch("bool", typeTag(v))
	}
	return b.Value, nil
}

// evalLetIn builds the full binding set before any Thunk closes over
// the final Environment, so self- and sibling-references resolve
// regardless of source order: each
// binding gets an allocated Thunk "cell" up front, those cells are
// threaded into the Environment first, and only then is each cell's
// Env field set to the fully-extended Environment.
func (e *Evaluator) evalLetIn(n *ast.LetIn, env *Environment) (Value, error) {
	thunks := make([]*Thunk, len(n.Bindings))
	for i, b := range n.Bindings {
		thunks[i] = &Thunk{Body: b.Value}
	}

	finalEnv := env
	for i, b := range n.Bindings {
		var err error
		finalEnv, err = finalEnv.WithPath(b.Path, thunks[i], e.forceWeak)
		if err != nil {
			return nil, err
		}
	}
	for _, t := range thunks {
		t.Env = finalEnv
	}

	return e.Eval(n.Body, finalEnv)
}

// evalAttrSetLiteral resolves each entry's (possibly dotted) key into
// a nested AttrSet via the same attrSetWithPath helper Environment's
// WithPath uses for let-bindings. For `rec { ... }`, top-level
// (non-dotted) entries can reference each other and themselves, using
// the same cell-then-fill construction as evalLetIn; nested dotted
// entries inside a rec block are evaluated against the outer
// Environment only (documented limitation, see DESIGN.md).
func (e *Evaluator) evalAttrSetLiteral(n *ast.AttrSetLiteral, env *Environment) (Value, error) {
	bodyEnv := env
	cells := make(map[string]*Thunk)

	if n.Recursive {
		for _, ent := range n.Entries {
			seg := ent.Key
			if idx := strings.IndexByte(seg, '.'); idx >= 0 {
				continue // dotted key: not part of the recursive scope
			}
			cells[seg] = &Thunk{Body: ent.Value}
		}
		for name, t := range cells {
			bodyEnv = bodyEnv.WithIdent(name, t)
		}
		for _, t := range cells {
			t.Env = bodyEnv
		}
	}

	result := EmptyAttrSet()
	for _, ent := range n.Entries {
		segs := strings.Split(ent.Key, ".")
		var value Value
		if t, ok := cells[ent.Key]; ok {
			value = t
		} else {
			value = NewThunk(bodyEnv, ent.Value)
		}
		var err error
		result, err = attrSetWithPath(result, segs, value, e.forceWeak)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
