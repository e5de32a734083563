package evaluator

import (
	"testing"

	"github.com/nixlang/nixeval/internal/ast"
	"github.com/nixlang/nixeval/internal/parser"
)

func parseOrFatal(t *testing.T, src string) (*ast.Root, []string) {
	t.Helper()
	root, errs := parser.ParseProgram(src)
	if len(errs) > 0 {
		t.Fatalf("parse error for %q: %v", src, errs)
	}
	return root, errs
}

func mustEval(t *testing.T, src string) string {
	t.Helper()
	got, err := evalSource(t, src)
	if err != nil {
		t.Fatalf("eval(%q): unexpected error: %v", src, err)
	}
	return got
}

func TestBuiltinsConcatStringsSep(t *testing.T) {
	got := mustEval(t, `builtins.concatStringsSep ", " [ "a" "b" "c" ]`)
	want := `"a, b, c"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuiltinsFoldl(t *testing.T) {
	got := mustEval(t, `builtins.foldl' (a: b: a + b) 0 [ 1 2 3 4 ]`)
	if got != "10" {
		t.Errorf("got %q, want %q", got, "10")
	}
}

func TestBuiltinsHashString(t *testing.T) {
	got := mustEval(t, `builtins.hashString "sha256" "abc"`)
	// sha256("abc") = ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
	want := `"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuiltinsHashStringUnknownAlgo(t *testing.T) {
	_, err := evalSource(t, `builtins.hashString "crc32" "abc"`)
	if err == nil {
		t.Fatal("expected an error")
	}
	evalErr, ok := err.(*EvalError)
	if !ok {
		t.Fatalf("expected *EvalError, got %T", err)
	}
	if evalErr.Kind != KindUnknownHash {
		t.Errorf("got Kind %q, want %q", evalErr.Kind, KindUnknownHash)
	}
}

func TestBuiltinsHashStringDisabledCapability(t *testing.T) {
	root, _ := parseOrFatal(t, `builtins.hashString "md5" "abc"`)
	e := New()
	e.Caps.MD5 = false
	env := e.BaseEnvironment()
	_, err := e.Eval(root, env)
	if err == nil {
		t.Fatal("expected an error")
	}
	evalErr, ok := err.(*EvalError)
	if !ok {
		t.Fatalf("expected *EvalError, got %T", err)
	}
	if evalErr.Kind != KindNotEnabled {
		t.Errorf("got Kind %q, want %q", evalErr.Kind, KindNotEnabled)
	}
}

func TestBuiltinsParseDrvName(t *testing.T) {
	got := mustEval(t, `builtins.parseDrvName "hello-2.10"`)
	want := "{\n  name = \"hello\";\n  version = \"2.10\";\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuiltinsParseDrvNameNoVersion(t *testing.T) {
	got := mustEval(t, `builtins.parseDrvName "hello"`)
	want := "{\n  name = \"hello\";\n  version = null;\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuiltinsSubstringClamps(t *testing.T) {
	// start+len exceeds the string's length: clamp to the end rather
	// than error.
	got := mustEval(t, `builtins.substring 2 100 "hello"`)
	if got != `"llo"` {
		t.Errorf("got %q, want %q", got, `"llo"`)
	}
}

func TestBuiltinsSubstringNegativeLength(t *testing.T) {
	got := mustEval(t, `builtins.substring 1 (0 - 1) "hello"`)
	if got != `"ello"` {
		t.Errorf("got %q, want %q", got, `"ello"`)
	}
}

func TestBuiltinsListToAttrsMissingName(t *testing.T) {
	_, err := evalSource(t, `builtins.listToAttrs [ { value = 1; } ]`)
	if err == nil {
		t.Fatal("expected an error")
	}
	evalErr, ok := err.(*EvalError)
	if !ok {
		t.Fatalf("expected *EvalError, got %T", err)
	}
	if evalErr.Kind != KindMissingAttr {
		t.Errorf("got Kind %q, want %q", evalErr.Kind, KindMissingAttr)
	}
	if evalErr.Name != "name" {
		t.Errorf("got Name %q, want %q", evalErr.Name, "name")
	}
}

func TestBuiltinsListToAttrsRoundTrip(t *testing.T) {
	got := mustEval(t, `builtins.listToAttrs [ { name = "a"; value = 1; } { name = "b"; value = 2; } ]`)
	want := "{\n  a = 1;\n  b = 2;\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuiltinsElemAtOutOfBounds(t *testing.T) {
	_, err := evalSource(t, `builtins.elemAt [ 1 2 3 ] 5`)
	if err == nil {
		t.Fatal("expected an error")
	}
	evalErr, ok := err.(*EvalError)
	if !ok {
		t.Fatalf("expected *EvalError, got %T", err)
	}
	if evalErr.Kind != KindOutOfBounds {
		t.Errorf("got Kind %q, want %q", evalErr.Kind, KindOutOfBounds)
	}
}

func TestBuiltinsGenListIsLazy(t *testing.T) {
	// genList's elements must not be forced at construction: asking for
	// the length of a genList whose function would throw for any index
	// must still succeed.
	got := mustEval(t, `builtins.length (builtins.genList (i: builtins.throw "boom") 5)`)
	if got != "5" {
		t.Errorf("got %q, want %q", got, "5")
	}
}

func TestBuiltinsGenListElements(t *testing.T) {
	got := mustEval(t, `builtins.genList (i: i * 2) 4`)
	want := "[\n  0\n  2\n  4\n  6\n]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuiltinsFilter(t *testing.T) {
	got := mustEval(t, `builtins.filter (x: x > 2) [ 1 2 3 4 ]`)
	want := "[\n  3\n  4\n]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuiltinsAllAny(t *testing.T) {
	got := mustEval(t, `builtins.all (x: x > 0) [ 1 2 3 ]`)
	if got != "true" {
		t.Errorf("got %q, want %q", got, "true")
	}
	got = mustEval(t, `builtins.any (x: x > 2) [ 1 2 3 ]`)
	if got != "true" {
		t.Errorf("got %q, want %q", got, "true")
	}
}

func TestBuiltinsAnyShortCircuits(t *testing.T) {
	// The second element would throw if forced; `any` must stop as soon
	// as the first predicate succeeds.
	got := mustEval(t, `builtins.any (x: x > 0) [ 1 (builtins.throw "boom") ]`)
	if got != "true" {
		t.Errorf("got %q, want %q", got, "true")
	}
}

func TestBuiltinsTypePredicates(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`builtins.isInt 1`, "true"},
		{`builtins.isInt 1.0`, "false"},
		{`builtins.isString "x"`, "true"},
		{`builtins.isList [ ]`, "true"},
		{`builtins.isAttrs { }`, "true"},
		{`builtins.isBool true`, "true"},
		{`builtins.isNull null`, "true"},
		{`builtins.isFunction (x: x)`, "true"},
		{`builtins.typeOf 1`, `"int"`},
		{`builtins.typeOf "x"`, `"string"`},
		{`builtins.typeOf (x: x)`, `"lambda"`},
		{`builtins.typeOf builtins.head`, `"lambda"`},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := mustEval(t, tt.src)
			if got != tt.want {
				t.Errorf("eval(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestBuiltinsSeqForcesLeftReturnsRight(t *testing.T) {
	got := mustEval(t, `builtins.seq 1 2`)
	if got != "2" {
		t.Errorf("got %q, want %q", got, "2")
	}
}

func TestBuiltinsSeqPropagatesError(t *testing.T) {
	_, err := evalSource(t, `builtins.seq (builtins.throw "boom") 2`)
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestBuiltinsDeepSeqForcesNested(t *testing.T) {
	_, err := evalSource(t, `builtins.deepSeq [ (builtins.throw "boom") ] 2`)
	if err == nil {
		t.Fatal("expected forcing the nested thunk to surface its error")
	}
}

func TestBuiltinsCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"1.0", "1.0", "0"},
		{"1.0", "2.0", "-1"},
		{"2.0", "1.0", "1"},
		{"1.2", "1.10", "-1"},
		{"1.0", "1.0.1", "-1"},
	}
	for _, tt := range tests {
		src := `builtins.compareVersions "` + tt.a + `" "` + tt.b + `"`
		got := mustEval(t, src)
		if got != tt.want {
			t.Errorf("compareVersions(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestBuiltinsToJSONFromJSONRoundTrip(t *testing.T) {
	got := mustEval(t, `builtins.fromJSON (builtins.toJSON { a = 1; b = [ 1 2 3 ]; c = "x"; })`)
	want := "{\n  a = 1;\n  b = [\n    1\n    2\n    3\n  ];\n  c = \"x\";\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuiltinsToJSONCannotSerializeFunction(t *testing.T) {
	_, err := evalSource(t, `builtins.toJSON (x: x)`)
	if err == nil {
		t.Fatal("expected an error")
	}
	evalErr, ok := err.(*EvalError)
	if !ok {
		t.Fatalf("expected *EvalError, got %T", err)
	}
	if evalErr.Kind != KindCannotSerialize {
		t.Errorf("got Kind %q, want %q", evalErr.Kind, KindCannotSerialize)
	}
}

func TestBuiltinsNotYetImplementedStub(t *testing.T) {
	_, err := evalSource(t, `builtins.readFile "/etc/hostname"`)
	if err == nil {
		t.Fatal("expected an error")
	}
	evalErr, ok := err.(*EvalError)
	if !ok {
		t.Fatalf("expected *EvalError, got %T", err)
	}
	if evalErr.Kind != KindBuiltinNotYetImpl {
		t.Errorf("got Kind %q, want %q", evalErr.Kind, KindBuiltinNotYetImpl)
	}
	if evalErr.Name != "readFile" {
		t.Errorf("got Name %q, want %q", evalErr.Name, "readFile")
	}
}

func TestBuiltinsTryEvalIsNotYetImplemented(t *testing.T) {
	_, err := evalSource(t, `builtins.tryEval 1`)
	if err == nil {
		t.Fatal("expected an error")
	}
	evalErr, ok := err.(*EvalError)
	if !ok {
		t.Fatalf("expected *EvalError, got %T", err)
	}
	if evalErr.Kind != KindBuiltinNotYetImpl {
		t.Errorf("got Kind %q, want %q", evalErr.Kind, KindBuiltinNotYetImpl)
	}
}

func TestBuiltinsAbortAndThrow(t *testing.T) {
	_, err := evalSource(t, `builtins.abort "stop"`)
	if evalErr, ok := err.(*EvalError); !ok || evalErr.Kind != KindAborted {
		t.Fatalf("got %v, want Builtin.Aborted", err)
	}
	_, err = evalSource(t, `builtins.throw "stop"`)
	if evalErr, ok := err.(*EvalError); !ok || evalErr.Kind != KindThrown {
		t.Fatalf("got %v, want Builtin.Thrown", err)
	}
}
