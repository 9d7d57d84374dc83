package runtime

// CollectGarbage runs one tri-color mark-and-sweep cycle (§4.1). It is
// always safe to call directly (tests do this to force a cycle between
// a guard's acquire and release); the allocator also calls it
// automatically once the live-object threshold is crossed, except
// during PhaseRead.
func (h *Heap) CollectGarbage() {
	h.logf("gc: starting cycle, %d live objects, %d environments", len(h.objects), len(h.envs))

	// 1. Reset every non-constant value and every registered environment
	// to White. Constant-colored values are left untouched: they never
	// change color.
	for v := range h.objects {
		if v.header().gcColor() != Constant {
			v.header().setGCColor(White)
		}
	}
	for e := range h.envs {
		e.color = White
	}

	var valueWork []Value
	var envWork []*Environment

	markValue := func(v Value) {
		if v == nil {
			return
		}
		if v.header().gcColor() == Constant || v.header().gcColor() != White {
			return
		}
		v.header().setGCColor(Grey)
		valueWork = append(valueWork, v)
	}
	markEnv := func(e *Environment) {
		if e == nil || e.color != White {
			return
		}
		e.color = Grey
		envWork = append(envWork, e)
	}

	// 2. Mark roots Grey: every guarded value, and every environment that
	// is either permanent (the top level) or currently an active call
	// frame.
	for v := range h.guard.counts {
		markValue(v)
	}
	for e := range h.envs {
		if e.permanent || h.frameRoots[e] > 0 {
			markEnv(e)
		}
	}

	// 3. Work the two worklists until both are empty. A Value's edges
	// may discover new Environments (through a Closure's captured env);
	// an Environment's edges may discover new Values (its bindings) and
	// its parent Environment.
	for len(valueWork) > 0 || len(envWork) > 0 {
		for len(valueWork) > 0 {
			v := valueWork[len(valueWork)-1]
			valueWork = valueWork[:len(valueWork)-1]
			if cl, ok := v.(*ClosureValue); ok && cl.Env != nil {
				markEnv(cl.Env)
			}
			v.Walk(markValue)
			v.header().setGCColor(Black)
		}
		for len(envWork) > 0 {
			e := envWork[len(envWork)-1]
			envWork = envWork[:len(envWork)-1]
			e.walkEdges(markValue)
			markEnv(e.parent)
			e.color = Black
		}
	}

	h.sweep()
}

// sweep releases every White value and prunes every White environment,
// then recomputes the heap-size counter from the surviving live set.
func (h *Heap) sweep() {
	swept := 0
	for v := range h.objects {
		if v.header().gcColor() == White {
			delete(h.objects, v)
			swept++
		}
	}
	prunedEnvs := 0
	for e := range h.envs {
		if e.color == White {
			delete(h.envs, e)
			prunedEnvs++
		}
	}
	h.logf("gc: swept %d values, pruned %d environments, %d live remain", swept, prunedEnvs, len(h.objects))
}
