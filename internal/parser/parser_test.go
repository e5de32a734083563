package parser

import (
	"testing"

	"github.com/nixlang/nixeval/internal/ast"
)

func TestParseProgramArithmeticPrecedence(t *testing.T) {
	root, errs := ParseProgram("1 + 2 * 3")
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	op, ok := root.Inner.(*ast.BinaryOp)
	if !ok {
		t.Fatalf("got %T, want *ast.BinaryOp", root.Inner)
	}
	if op.Operator != ast.OpAdd {
		t.Errorf("got top-level operator %q, want %q (multiplication should bind tighter)", op.Operator, ast.OpAdd)
	}
}

func TestParseProgramApplicationIsLeftAssociative(t *testing.T) {
	root, errs := ParseProgram("f x y")
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	outer, ok := root.Inner.(*ast.Apply)
	if !ok {
		t.Fatalf("got %T, want *ast.Apply", root.Inner)
	}
	inner, ok := outer.Fn.(*ast.Apply)
	if !ok {
		t.Fatalf("got %T for outer.Fn, want *ast.Apply ((f x) y))", outer.Fn)
	}
	if _, ok := inner.Fn.(*ast.Identifier); !ok {
		t.Fatalf("got %T, want *ast.Identifier", inner.Fn)
	}
}

func TestParseProgramLetIn(t *testing.T) {
	root, errs := ParseProgram("let x = 1; y = 2; in x")
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	letIn, ok := root.Inner.(*ast.LetIn)
	if !ok {
		t.Fatalf("got %T, want *ast.LetIn", root.Inner)
	}
	if len(letIn.Bindings) != 2 {
		t.Fatalf("got %d bindings, want 2", len(letIn.Bindings))
	}
}

func TestParseProgramDottedSelect(t *testing.T) {
	root, errs := ParseProgram("a.b.c")
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	outer, ok := root.Inner.(*ast.Select)
	if !ok {
		t.Fatalf("got %T, want *ast.Select", root.Inner)
	}
	if outer.Key != "c" {
		t.Errorf("got outer key %q, want %q", outer.Key, "c")
	}
}

func TestParseProgramReportsErrors(t *testing.T) {
	_, errs := ParseProgram("let x = in x")
	if len(errs) == 0 {
		t.Fatal("expected a parse error for a binding with no value")
	}
}

func TestParseProgramReportsTrailingTokens(t *testing.T) {
	// A stray ": 5" after a complete attrset literal must be reported,
	// not silently dropped. The `:` after the braces sends the parser
	// down the pattern-lambda path, where `a = 1;` is rejected.
	_, errs := ParseProgram("{ a = 1; }: 5")
	if len(errs) == 0 {
		t.Fatal("expected a parse error for unconsumed trailing input")
	}
}

func TestParseProgramEmptyPatternLambda(t *testing.T) {
	root, errs := ParseProgram("{}: 5")
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	lam, ok := root.Inner.(*ast.PatternLambda)
	if !ok {
		t.Fatalf("got %T, want *ast.PatternLambda", root.Inner)
	}
	if len(lam.Pattern.Fields) != 0 || lam.Pattern.HasEllipsis {
		t.Errorf("got Fields %v HasEllipsis %v, want an empty pattern", lam.Pattern.Fields, lam.Pattern.HasEllipsis)
	}
}

func TestParseProgramPatternLambdaFieldsAndDefaults(t *testing.T) {
	root, errs := ParseProgram("{ a, b ? 1, ... }: a")
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	lam, ok := root.Inner.(*ast.PatternLambda)
	if !ok {
		t.Fatalf("got %T, want *ast.PatternLambda", root.Inner)
	}
	if len(lam.Pattern.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(lam.Pattern.Fields))
	}
	if _, ok := lam.Pattern.Defaults["b"]; !ok {
		t.Error("expected a default expression recorded for field b")
	}
	if !lam.Pattern.HasEllipsis {
		t.Error("expected HasEllipsis to be true")
	}
}

func TestParseProgramPlainAttrSetLiteralIsNotAPattern(t *testing.T) {
	root, errs := ParseProgram("{ a = 1; b = 2; }")
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if _, ok := root.Inner.(*ast.AttrSetLiteral); !ok {
		t.Fatalf("got %T, want *ast.AttrSetLiteral", root.Inner)
	}
}
