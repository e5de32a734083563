package evaluator

import "testing"

func TestRenderScalars(t *testing.T) {
	e := New()
	tests := []struct {
		v    Value
		want string
	}{
		{&Integer{Value: 42}, "42"},
		{&Floating{Value: 1.5}, "1.5"},
		{&String{Value: "hi"}, `"hi"`},
		{&Boolean{Value: true}, "true"},
		{&Boolean{Value: false}, "false"},
		{&Null{}, "null"},
		{&Path{Value: "/tmp/x"}, "/tmp/x"},
	}
	for _, tt := range tests {
		got, err := e.Render(tt.v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tt.want {
			t.Errorf("Render(%#v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestRenderCallables(t *testing.T) {
	e := New()
	got, err := e.Render(&Function{Param: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "<function>" {
		t.Errorf("got %q, want %q", got, "<function>")
	}
	got, err = e.Render(newBuiltin("f", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "<built-in function>" {
		t.Errorf("got %q, want %q", got, "<built-in function>")
	}
}

func TestRenderEmptyAggregates(t *testing.T) {
	e := New()
	got, err := e.Render(newList(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "[ ]" {
		t.Errorf("got %q, want %q", got, "[ ]")
	}
	got, err = e.Render(EmptyAttrSet())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "{ }" {
		t.Errorf("got %q, want %q", got, "{ }")
	}
}

func TestRenderForcesThunkElements(t *testing.T) {
	e := New()
	l := newList([]Value{NewThunkFromCall(func() (Value, error) { return &Integer{Value: 9}, nil })})
	got, err := e.Render(l)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[\n  9\n]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
