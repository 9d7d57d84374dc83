package runtime

import "testing"

func TestNewHeapConstantsExist(t *testing.T) {
	h := NewHeap()
	if h.Null == nil || h.True == nil || h.False == nil {
		t.Fatal("NewHeap must populate Null/True/False before returning")
	}
	if h.Null.header().gcColor() != Constant {
		t.Errorf("Null must be Constant-colored, got %v", h.Null.header().gcColor())
	}
}

func TestInternIsIdentity(t *testing.T) {
	h := NewHeap()
	a := h.Intern("foo")
	b := h.Intern("foo")
	if a != b {
		t.Fatal("two Interns of the same name must return the same pointer")
	}
	c := h.Intern("bar")
	if a == c {
		t.Fatal("different names must not intern to the same symbol")
	}
}

func TestSmallIntInterning(t *testing.T) {
	h := NewHeap()
	a := h.NewInt(5)
	b := h.NewInt(5)
	if a != b {
		t.Fatal("small ints should be interned")
	}
	if a.header().gcColor() != Constant {
		t.Errorf("interned small int should be Constant, got %v", a.header().gcColor())
	}
}

func TestCollectReclaimsUnreachable(t *testing.T) {
	h := NewHeap(WithThreshold(1 << 30)) // never auto-trigger
	top := h.NewTopLevelEnvironment()

	h.NewString("unbound, reclaimed")
	kept := h.NewString("reachable")
	top.Define(h.Intern("x"), kept)

	h.NewString("garbage 1")
	h.NewString("garbage 2")

	before := h.NumLive()
	if before < 4 {
		t.Fatalf("expected at least 4 live strings before collection, got %d", before)
	}

	h.CollectGarbage()

	if h.NumLive() != 1 {
		t.Fatalf("expected exactly 1 live value after collection, got %d", h.NumLive())
	}
	if _, _, ok := top.Lookup(h.Intern("x")); !ok {
		t.Fatal("bound value must survive collection")
	}
}

func TestCollectPrunesUnreferencedEnvironments(t *testing.T) {
	h := NewHeap(WithThreshold(1 << 30))
	top := h.NewTopLevelEnvironment()

	child := h.NewEnvironment(top)
	leave := h.EnterFrame(child)
	h.CollectGarbage()
	if _, ok := h.envs[child]; !ok {
		t.Fatal("actively-framed environment must survive collection")
	}
	leave()

	h.CollectGarbage()
	if _, ok := h.envs[child]; ok {
		t.Fatal("environment with no remaining reference must be pruned")
	}
	if _, ok := h.envs[top]; !ok {
		t.Fatal("the top-level (permanent) environment must never be pruned")
	}
}

func TestClosureKeepsCapturedEnvironmentAlive(t *testing.T) {
	h := NewHeap(WithThreshold(1 << 30))
	top := h.NewTopLevelEnvironment()
	child := h.NewEnvironment(top)

	n := h.Intern("n")
	child.Define(n, h.NewInt(999))

	leave := h.EnterFrame(child)
	closure := h.NewClosure(nil, nil, child)
	top.Define(h.Intern("f"), closure)
	leave() // the call frame itself is done; the closure should still hold it

	h.CollectGarbage()

	if _, ok := h.envs[child]; !ok {
		t.Fatal("environment captured by a reachable closure must survive")
	}
	v, _, ok := child.Lookup(n)
	if !ok || v.(*IntValue).Val != 999 {
		t.Fatal("captured binding must survive alongside its environment")
	}
}

func TestReadPhaseSuppressesCollection(t *testing.T) {
	h := NewHeap(WithThreshold(2))
	h.SetPhase(PhaseRead)
	for i := 0; i < 10; i++ {
		h.NewString("partial parse fragment")
	}
	if h.NumLive() != 10 {
		t.Fatalf("collection must not run during PhaseRead, got %d live", h.NumLive())
	}
}

func TestGuardProtectsAcrossNestedAllocation(t *testing.T) {
	h := NewHeap(WithThreshold(1))
	top := h.NewTopLevelEnvironment()
	_ = top

	v := h.NewString("protect me")
	release := h.GuardValue(v)
	defer release()

	// Force a collection while v is guarded but not bound anywhere.
	h.CollectGarbage()

	found := false
	for obj := range h.objects {
		if obj == v {
			found = true
		}
	}
	if !found {
		t.Fatal("guarded value must survive a collection triggered mid-scope")
	}

	release()
	h.CollectGarbage()
	for obj := range h.objects {
		if obj == v {
			t.Fatal("value must be reclaimed once its guard is released and nothing else roots it")
		}
	}
}
