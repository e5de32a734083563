package evaluator

import "fmt"

// ErrorKind enumerates the EvalError taxonomy.
type ErrorKind string

const (
	KindMismatch        ErrorKind = "Mismatch"
	KindMissingChildren ErrorKind = "MissingChildren"
	KindLiteralParse    ErrorKind = "LiteralParse"
	KindUnexpectedNode  ErrorKind = "UnexpectedNode"
	KindUnexpectedToken ErrorKind = "UnexpectedToken"
	KindTypeMismatch    ErrorKind = "TypeMismatch"
	KindNotYetImpl      ErrorKind = "NotYetImplemented"
	KindNotEnabled      ErrorKind = "NotEnabled"
	KindUnresolvedIdent ErrorKind = "UnresolvedIdent"
	KindNoSuchIndex     ErrorKind = "NoSuchIndex"

	// Arithmetic subkinds
	KindArithTypeMismatch       ErrorKind = "Arithmetic.TypeMismatch"
	KindOverflow                ErrorKind = "Arithmetic.Overflow"
	KindDivideByZero            ErrorKind = "Arithmetic.DivideByZero"
	KindImpossibleComparison    ErrorKind = "Arithmetic.ImpossibleComparison"

	// Builtin subkinds
	KindAborted                  ErrorKind = "Builtin.Aborted"
	KindThrown                   ErrorKind = "Builtin.Thrown"
	KindBuiltinTypeMismatch      ErrorKind = "Builtin.TypeMismatch"
	KindBuiltinNotYetImpl        ErrorKind = "Builtin.NotYetImplemented"
	KindVersionParse             ErrorKind = "Builtin.VersionParse"
	KindUnexpectedVersionOutput  ErrorKind = "Builtin.UnexpectedVersionOutput"
	KindOutOfBounds              ErrorKind = "Builtin.OutOfBounds"
	KindUnknownHash              ErrorKind = "Builtin.UnknownHash"
	KindMissingAttr              ErrorKind = "Builtin.MissingAttr"
	KindReplaceStringsArgLength  ErrorKind = "Builtin.ReplaceStringsArgLength"
	KindCannotSerialize          ErrorKind = "Builtin.CannotSerialize"
	KindEnvironment              ErrorKind = "Builtin.Environment"
	KindOpaqueJSON               ErrorKind = "Builtin.JSON"
	KindOpaqueRegex               ErrorKind = "Builtin.Regex"
)

// EvalError is the single failure type every evaluation path returns.
// Nothing is recovered locally; every failure unwinds
// out of the current evaluation.
type EvalError struct {
	Kind     ErrorKind
	Detail   string
	Expected string
	Actual   string
	Name     string
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case KindTypeMismatch, KindArithTypeMismatch, KindBuiltinTypeMismatch:
		return fmt.Sprintf("%s: expected %s, got %s", e.Kind, e.Expected, e.Actual)
	case KindNotYetImpl, KindBuiltinNotYetImpl:
		return fmt.Sprintf("not yet implemented: %s", e.Name)
	case KindNotEnabled:
		return fmt.Sprintf("capability not enabled: %s", e.Name)
	case KindUnresolvedIdent:
		return fmt.Sprintf("undefined variable: %s", e.Name)
	case KindNoSuchIndex:
		return fmt.Sprintf("attribute missing: %s", e.Name)
	default:
		if e.Detail != "" {
			return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
		}
		return string(e.Kind)
	}
}

func internalError(kind ErrorKind, detail string) *EvalError {
	return &EvalError{Kind: kind, Detail: detail}
}

func typeMismatch(expected, actual string) *EvalError {
	return &EvalError{Kind: KindTypeMismatch, Expected: expected, Actual: actual}
}

func notYetImplemented(feature string) *EvalError {
	return &EvalError{Kind: KindNotYetImpl, Name: feature}
}

// builtinNotYetImplemented is notYetImplemented's Builtin.* counterpart,
// for stub primitives rather than unimplemented AST node kinds.
func builtinNotYetImplemented(feature string) *EvalError {
	return &EvalError{Kind: KindBuiltinNotYetImpl, Name: feature}
}

func notEnabled(capability string) *EvalError {
	return &EvalError{Kind: KindNotEnabled, Name: capability}
}

func unresolvedIdent(name string) *EvalError {
	return &EvalError{Kind: KindUnresolvedIdent, Name: name}
}

func noSuchIndex(name string) *EvalError {
	return &EvalError{Kind: KindNoSuchIndex, Name: name}
}
