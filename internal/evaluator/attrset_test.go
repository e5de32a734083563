package evaluator

import "testing"

func TestAttrSetPutIsCopyOnWrite(t *testing.T) {
	base := EmptyAttrSet().Put("a", &Integer{Value: 1})
	updated := base.Put("a", &Integer{Value: 2})

	v, _ := base.Get("a")
	if v.(*Integer).Value != 1 {
		t.Errorf("Put must not mutate the receiver: got %d, want 1", v.(*Integer).Value)
	}
	v, _ = updated.Get("a")
	if v.(*Integer).Value != 2 {
		t.Errorf("got %d, want 2", v.(*Integer).Value)
	}
}

func TestAttrSetRemoveIsCopyOnWrite(t *testing.T) {
	base := EmptyAttrSet().Put("a", &Integer{Value: 1}).Put("b", &Integer{Value: 2})
	removed := base.Remove("a")

	if _, ok := base.Get("a"); !ok {
		t.Error("Remove must not mutate the receiver")
	}
	if _, ok := removed.Get("a"); ok {
		t.Error("removed set should no longer have key a")
	}
	if removed.Len() != 1 {
		t.Errorf("got Len() = %d, want 1", removed.Len())
	}
}

func TestAttrSetRemoveMissingKeyIsNoop(t *testing.T) {
	base := EmptyAttrSet().Put("a", &Integer{Value: 1})
	same := base.Remove("nonexistent")
	if same.Len() != 1 {
		t.Errorf("got Len() = %d, want 1", same.Len())
	}
}

func TestAttrSetKeysAreSorted(t *testing.T) {
	s := EmptyAttrSet().Put("z", &Integer{Value: 1}).Put("a", &Integer{Value: 2}).Put("m", &Integer{Value: 3})
	keys := s.Keys()
	want := []string{"a", "m", "z"}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], k)
		}
	}
}

func TestAttrSetLastBindingWins(t *testing.T) {
	s := NewAttrSet([]struct {
		Key   string
		Value Value
	}{
		{"a", &Integer{Value: 1}},
		{"a", &Integer{Value: 2}},
	})
	v, ok := s.Get("a")
	if !ok {
		t.Fatal("expected key a to be present")
	}
	if v.(*Integer).Value != 2 {
		t.Errorf("got %d, want 2 (last binding should win)", v.(*Integer).Value)
	}
}
