// Package evaluator implements the language kernel: the runtime Value
// representation, the immutable Environment, the arithmetic/comparison
// core, the lazy-forcing protocol, the AST-dispatching evaluator, and
// the builtins standard library.
package evaluator

import "github.com/nixlang/nixeval/internal/ast"

// Kind tags each Value variant.
type Kind string

const (
	KindString   Kind = "string"
	KindInteger  Kind = "int"
	KindFloating Kind = "float"
	KindPath     Kind = "path"
	KindBoolean  Kind = "bool"
	KindNull     Kind = "null"
	KindFunction Kind = "lambda"
	KindAttrSet  Kind = "set"
	KindList     Kind = "list"
	KindThunk    Kind = "thunk" // never observable; every consumer weak-forces first
	KindBuiltin  Kind = "builtin"
)

// Value is the tagged union every evaluation produces. Thunk is never
// exposed to user code as a classifiable kind — forceWeak must be
// called before a Value's Kind is inspected.
type Value interface {
	Kind() Kind
}

// String is an immutable UTF-8 text value.
type String struct {
	Value string
}

func (*String) Kind() Kind { return KindString }

// Integer is a 64-bit signed value; arithmetic on it is checked.
type Integer struct {
	Value int64
}

func (*Integer) Kind() Kind { return KindInteger }

// Floating is a 64-bit IEEE-754 value with only partial ordering.
type Floating struct {
	Value float64
}

func (*Floating) Kind() Kind { return KindFloating }

// Path is surface-syntactically distinct from String but shares its
// representation.
type Path struct {
	Value string
}

func (*Path) Kind() Kind { return KindPath }

type Boolean struct {
	Value bool
}

func (*Boolean) Kind() Kind { return KindBoolean }

// Null is the unit value.
type Null struct{}

func (*Null) Kind() Kind { return KindNull }

var null = &Null{}

// Function is a single-parameter closure: a parameter name, the
// Environment captured at the lambda's definition point, and the
// unevaluated body.
type Function struct {
	Param string
	Env   *Environment
	Body  ast.Node
}

func (*Function) Kind() Kind { return KindFunction }

// List is an ordered, persistent sequence. Elements may themselves be
// Thunks: list elements are lazy, not eager.
type List struct {
	Elements []Value
}

func (*List) Kind() Kind { return KindList }

func newList(elems []Value) *List {
	return &List{Elements: elems}
}

// Thunk is an unevaluated expression plus its captured Environment. It
// carries a single-assignment memo cell so repeated forcing of the
// *same* Thunk value only evaluates the body once.
type Thunk struct {
	Env  *Environment
	Body ast.Node

	forced bool
	result Value
	err    error
}

func (*Thunk) Kind() Kind { return KindThunk }

// NewThunk wraps an expression and its captured environment, unforced.
func NewThunk(env *Environment, body ast.Node) *Thunk {
	return &Thunk{Env: env, Body: body}
}

// NativeThunk defers a native Go computation the same way Thunk defers
// an AST node — used where a builtin must produce a value lazily
// without evaluating an AST (e.g. `genList`'s elements are not forced
// at construction time).
type NativeThunk struct {
	fn func() (Value, error)

	forced bool
	result Value
	err    error
}

func (*NativeThunk) Kind() Kind { return KindThunk }

// NewThunkFromCall wraps a native computation, unforced.
func NewThunkFromCall(fn func() (Value, error)) *NativeThunk {
	return &NativeThunk{fn: fn}
}

// BuiltinFn is a native callable taking one argument and producing a
// Value, or an error. Multi-argument primitives curry: each call
// either returns the final Value or another Builtin.
type BuiltinFn func(arg Value) (Value, error)

// Builtin wraps a native closure; Name is the key it is registered
// under in `builtins`. Printing ignores it (always `<built-in function>`).
type Builtin struct {
	Name string
	Fn   BuiltinFn
}

func (*Builtin) Kind() Kind { return KindBuiltin }

func newBuiltin(name string, fn BuiltinFn) *Builtin {
	return &Builtin{Name: name, Fn: fn}
}

// IsCallable reports whether v is directly applicable.
func IsCallable(v Value) bool {
	switch v.(type) {
	case *Function, *Builtin:
		return true
	}
	return false
}

func typeTag(v Value) string {
	switch v.(type) {
	case *String:
		return "string"
	case *Integer:
		return "int"
	case *Floating:
		return "float"
	case *Path:
		return "path"
	case *Boolean:
		return "bool"
	case *Null:
		return "null"
	case *Function, *Builtin:
		return "lambda"
	case *AttrSet:
		return "set"
	case *List:
		return "list"
	default:
		return "thunk"
	}
}
