package runtime

import "testing"

func TestEnvironmentDefineLookup(t *testing.T) {
	h := NewHeap()
	e := h.NewTopLevelEnvironment()
	x := h.Intern("x")
	e.Define(x, h.NewInt(42))

	v, defining, ok := e.Lookup(x)
	if !ok {
		t.Fatal("expected x to be bound")
	}
	if defining != e {
		t.Error("expected x to be defined in the top frame")
	}
	if v.(*IntValue).Val != 42 {
		t.Errorf("got %v, want 42", v)
	}
}

func TestEnvironmentLookupWalksParentChain(t *testing.T) {
	h := NewHeap()
	parent := h.NewTopLevelEnvironment()
	child := h.NewEnvironment(parent)

	y := h.Intern("y")
	parent.Define(y, h.NewInt(7))

	v, defining, ok := child.Lookup(y)
	if !ok {
		t.Fatal("expected y to be visible through the parent chain")
	}
	if defining != parent {
		t.Error("expected y's defining frame to be the parent")
	}
	if v.(*IntValue).Val != 7 {
		t.Errorf("got %v, want 7", v)
	}
}

func TestEnvironmentLookupUnbound(t *testing.T) {
	h := NewHeap()
	e := h.NewTopLevelEnvironment()
	if _, _, ok := e.Lookup(h.Intern("nope")); ok {
		t.Error("expected lookup of an unbound name to fail")
	}
}

func TestEnvironmentAssignMutatesDefiningFrame(t *testing.T) {
	h := NewHeap()
	parent := h.NewTopLevelEnvironment()
	child := h.NewEnvironment(parent)

	x := h.Intern("x")
	parent.Define(x, h.NewInt(1))

	if ok := child.Assign(x, h.NewInt(2)); !ok {
		t.Fatal("assign should succeed for a name bound in an ancestor frame")
	}
	v, _, _ := parent.Lookup(x)
	if v.(*IntValue).Val != 2 {
		t.Errorf("expected parent's binding to be mutated, got %v", v)
	}
	if _, ok := child.vars[x]; ok {
		t.Error("assign must not create a shadowing binding in the child frame")
	}
}

func TestEnvironmentAssignUnboundFails(t *testing.T) {
	h := NewHeap()
	e := h.NewTopLevelEnvironment()
	if ok := e.Assign(h.Intern("nope"), h.NewInt(1)); ok {
		t.Error("assign of an unbound name must fail")
	}
}

func TestMutuallyRecursiveDefinesShareTopFrame(t *testing.T) {
	h := NewHeap()
	top := h.NewTopLevelEnvironment()

	evenSym := h.Intern("even?")
	oddSym := h.Intern("odd?")

	// Simulate two closures that each close over the shared top frame
	// and refer to each other by name, resolved lazily at call time.
	evenClosure := h.NewClosure(nil, nil, top)
	oddClosure := h.NewClosure(nil, nil, top)
	top.Define(evenSym, evenClosure)
	top.Define(oddSym, oddClosure)

	if v, _, ok := evenClosure.Env.Lookup(oddSym); !ok || v != oddClosure {
		t.Error("even? must be able to resolve odd? through the shared top-level frame")
	}
	if v, _, ok := oddClosure.Env.Lookup(evenSym); !ok || v != evenClosure {
		t.Error("odd? must be able to resolve even? through the shared top-level frame")
	}
}
