package evaluator

// Environment is an immutable mapping from identifier name to Value.
// Extension never mutates; it returns a new
// Environment node that shadows the same name in its parent chain and
// shares the rest of the chain structurally.
type Environment struct {
	outer *Environment
	name  string
	value Value
}

// NewEnvironment returns the empty root Environment.
func NewEnvironment() *Environment {
	return nil
}

// Lookup resolves name against e and its enclosing chain, innermost
// binding wins.
func (e *Environment) Lookup(name string) (Value, bool) {
	for env := e; env != nil; env = env.outer {
		if env.name == name {
			return env.value, true
		}
	}
	return nil, false
}

// WithIdent extends e with a single binding.
func (e *Environment) WithIdent(name string, value Value) *Environment {
	return &Environment{outer: e, name: name, value: value}
}

// forcer weak-forces a Value; it is the forcing protocol (force.go)
// threaded in rather than imported, so Environment stays a pure data
// structure independent of the AST-evaluating Evaluator.
type forcer func(Value) (Value, error)

// WithPath extends e along a dotted binding path, auto-creating intermediate AttrSets and refusing to
// traverse through a non-AttrSet value. An empty path is a
// programming error, not a user-facing one.
func (e *Environment) WithPath(segments []string, value Value, force forcer) (*Environment, error) {
	if len(segments) == 0 {
		return nil, internalError(KindMissingChildren, "with_path called with an empty segment list")
	}
	if len(segments) == 1 {
		return e.WithIdent(segments[0], value), nil
	}

	head := segments[0]
	var base *AttrSet
	if existing, ok := e.Lookup(head); ok {
		forced, err := force(existing)
		if err != nil {
			return nil, err
		}
		as, ok := forced.(*AttrSet)
		if !ok {
			return nil, &EvalError{Kind: KindMismatch, Detail: "binding conflict: " + head + " is not an attribute set"}
		}
		base = as
	} else {
		base = EmptyAttrSet()
	}

	newSet, err := attrSetWithPath(base, segments[1:], value, force)
	if err != nil {
		return nil, err
	}
	return e.WithIdent(head, newSet), nil
}

// attrSetWithPath recurses into nested AttrSets the way WithPath
// recurses into Environment frames, for the tail of a dotted path.
func attrSetWithPath(set *AttrSet, segments []string, value Value, force forcer) (*AttrSet, error) {
	head := segments[0]
	if len(segments) == 1 {
		return set.Put(head, value), nil
	}

	var child *AttrSet
	if existing, ok := set.Get(head); ok {
		forced, err := force(existing)
		if err != nil {
			return nil, err
		}
		as, ok := forced.(*AttrSet)
		if !ok {
			return nil, &EvalError{Kind: KindMismatch, Detail: "binding conflict: " + head + " is not an attribute set"}
		}
		child = as
	} else {
		child = EmptyAttrSet()
	}

	newChild, err := attrSetWithPath(child, segments[1:], value, force)
	if err != nil {
		return nil, err
	}
	return set.Put(head, newChild), nil
}
