package env

import "testing"

func TestNewStartsWithOneFrame(t *testing.T) {
	s := New[int]()
	if s.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", s.Depth())
	}
}

func TestDeclareAndGet(t *testing.T) {
	s := New[int]()
	if !s.Declare("x", 1) {
		t.Fatal("Declare should succeed for a fresh name")
	}
	v, ok := s.Get("x")
	if !ok || v != 1 {
		t.Errorf("Get(x) = (%v, %v), want (1, true)", v, ok)
	}
}

func TestDeclareRejectsRedeclarationInSameFrame(t *testing.T) {
	s := New[int]()
	s.Declare("x", 1)
	if s.Declare("x", 2) {
		t.Error("Declare should reject a second binding for the same name in the same frame")
	}
	v, _ := s.Get("x")
	if v != 1 {
		t.Errorf("Get(x) = %v after rejected redeclare, want unchanged 1", v)
	}
}

func TestPushAllowsShadowing(t *testing.T) {
	s := New[int]()
	s.Declare("x", 1)
	s.Push()
	if !s.Declare("x", 2) {
		t.Fatal("Declare should allow shadowing a name from an outer frame")
	}
	v, _ := s.Get("x")
	if v != 2 {
		t.Errorf("Get(x) = %v, want inner shadow value 2", v)
	}
	s.Pop()
	v, _ = s.Get("x")
	if v != 1 {
		t.Errorf("Get(x) after Pop = %v, want outer value 1", v)
	}
}

func TestGetSearchesInnermostFirst(t *testing.T) {
	s := New[string]()
	s.Declare("a", "outer")
	s.Push()
	s.Declare("b", "inner")
	a, ok := s.Get("a")
	if !ok || a != "outer" {
		t.Errorf("Get(a) = (%v, %v), want (outer, true)", a, ok)
	}
	b, ok := s.Get("b")
	if !ok || b != "inner" {
		t.Errorf("Get(b) = (%v, %v), want (inner, true)", b, ok)
	}
}

func TestGetMissingNameReturnsFalse(t *testing.T) {
	s := New[int]()
	if _, ok := s.Get("nope"); ok {
		t.Error("Get should report false for an undeclared name")
	}
}

func TestSetUpdatesNearestFrame(t *testing.T) {
	s := New[int]()
	s.Declare("x", 1)
	s.Push()
	if !s.Set("x", 42) {
		t.Fatal("Set should find x in the outer frame")
	}
	v, _ := s.Get("x")
	if v != 42 {
		t.Errorf("Get(x) = %v, want 42", v)
	}
}

func TestSetFailsForUndeclaredName(t *testing.T) {
	s := New[int]()
	if s.Set("nope", 1) {
		t.Error("Set should fail for a name that was never declared")
	}
}

func TestSetUpdatesInnermostBindingWhenShadowed(t *testing.T) {
	s := New[int]()
	s.Declare("x", 1)
	s.Push()
	s.Declare("x", 2)
	s.Set("x", 99)
	inner, _ := s.Get("x")
	if inner != 99 {
		t.Errorf("inner Get(x) = %v, want 99", inner)
	}
	s.Pop()
	outer, _ := s.Get("x")
	if outer != 1 {
		t.Errorf("outer Get(x) after Pop = %v, want untouched 1", outer)
	}
}

func TestContainsInTopAndAnywhere(t *testing.T) {
	s := New[int]()
	s.Declare("x", 1)
	s.Push()
	if s.ContainsInTop("x") {
		t.Error("ContainsInTop should be false for a name declared only in an outer frame")
	}
	if !s.ContainsAnywhere("x") {
		t.Error("ContainsAnywhere should be true for a name declared in an outer frame")
	}
	s.Declare("y", 2)
	if !s.ContainsInTop("y") {
		t.Error("ContainsInTop should be true for a name declared in the current frame")
	}
}

func TestPopToUnwindsMultipleFrames(t *testing.T) {
	s := New[int]()
	s.Declare("x", 1)
	s.Push()
	s.Declare("y", 2)
	s.Push()
	s.Declare("z", 3)
	if s.Depth() != 3 {
		t.Fatalf("Depth() = %d, want 3", s.Depth())
	}
	s.PopTo(1)
	if s.Depth() != 1 {
		t.Errorf("Depth() after PopTo(1) = %d, want 1", s.Depth())
	}
	if _, ok := s.Get("y"); ok {
		t.Error("y should no longer be visible after PopTo(1)")
	}
	if _, ok := s.Get("x"); !ok {
		t.Error("x should still be visible after PopTo(1)")
	}
}

func TestPopPanicsOnLastFrame(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Pop should panic when popping the last remaining frame")
		}
	}()
	s := New[int]()
	s.Pop()
}
