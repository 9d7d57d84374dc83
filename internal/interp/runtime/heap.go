package runtime

import (
	"fmt"
	"io"
)

// Phase distinguishes Read from Eval (§4.1 "Phase gate"). Collection is
// suppressed during Read because in-progress parse fragments are not
// yet attached to any root.
type Phase int

const (
	PhaseEval Phase = iota
	PhaseRead
)

// Option configures a Heap at construction time, following the
// functional-options shape the teacher's lexer uses for LexerOption.
type Option func(*Heap)

// WithThreshold overrides the default collection threshold (a rough
// count of live objects at which the next allocation triggers a cycle).
func WithThreshold(n int) Option {
	return func(h *Heap) { h.threshold = n }
}

// WithTrace routes one-line collection diagnostics to w.
func WithTrace(w io.Writer) Option {
	return func(h *Heap) { h.trace = w }
}

// Heap owns every dynamically created Value and Environment, tracks
// the live set, and performs tri-color mark-and-sweep on demand. It is
// meant to be used as a single process-wide instance per running
// interpreter (see SPEC_FULL.md "Process-wide singleton").
type Heap struct {
	objects map[Value]struct{}
	envs    map[*Environment]struct{}

	// frameRoots holds environments kept alive because an evaluation is
	// currently in progress against them, keyed with a reference count
	// so nested re-entrant use of the same frame composes correctly.
	frameRoots map[*Environment]int

	guard *guardStack

	threshold int
	phase     Phase
	trace     io.Writer

	interned  map[string]*SymbolValue
	smallInts map[int64]*IntValue

	Null  *NullValue
	True  *BoolValue
	False *BoolValue
}

const defaultThreshold = 32 // gc.h's threshold_

// NewHeap constructs a Heap with its interned constant pool already
// populated, per the initialization-order rule in §9: constants must
// exist before the first user-visible allocation.
func NewHeap(opts ...Option) *Heap {
	h := &Heap{
		objects:    make(map[Value]struct{}),
		envs:       make(map[*Environment]struct{}),
		frameRoots: make(map[*Environment]int),
		interned:   make(map[string]*SymbolValue),
		smallInts:  make(map[int64]*IntValue),
		threshold:  defaultThreshold,
	}
	h.guard = newGuardStack()
	for _, opt := range opts {
		opt(h)
	}
	h.initConstants()
	return h
}

// Phase reports the current Read/Eval phase.
func (h *Heap) Phase() Phase { return h.phase }

// SetPhase switches the phase gate. The reader sets PhaseRead around a
// parse; the evaluator (and the top-level driver) set PhaseEval around
// everything else.
func (h *Heap) SetPhase(p Phase) { h.phase = p }

// NumLive returns the number of live, non-constant objects currently
// registered — useful for tests asserting collection actually ran.
func (h *Heap) NumLive() int { return len(h.objects) }

// register adds a freshly built Value to the live set and, if the
// threshold is crossed and the heap is not mid-parse, runs a
// collection. Every constructor in this package that allocates a
// non-constant Value calls this.
//
// v is not reachable from any root at this point — it isn't bound in
// an environment and the caller hasn't had a chance to GuardValue it
// yet — so the threshold check brackets v in an ephemeral self-root,
// mirroring gc.cpp's GCManager::RegisterObject bracketing the
// threshold check with an insert/erase pair into its own return_ set
// so a just-registered object survives the very cycle its
// registration triggers.
func (h *Heap) register(v Value) {
	h.objects[v] = struct{}{}
	if h.phase == PhaseRead {
		return
	}
	if len(h.objects) >= h.threshold {
		release := h.guard.acquire(v)
		h.CollectGarbage()
		release()
	}
}

func (h *Heap) logf(format string, args ...interface{}) {
	if h.trace != nil {
		fmt.Fprintf(h.trace, format+"\n", args...)
	}
}

// NewPair allocates a fresh cons cell.
func (h *Heap) NewPair(car, cdr Value) *PairValue {
	v := &PairValue{Car: car, Cdr: cdr}
	h.register(v)
	return v
}

// NewString allocates a String value.
func (h *Heap) NewString(s string) *StringValue {
	v := &StringValue{Val: s}
	h.register(v)
	return v
}

// NewInt returns an Int value. Small magnitudes are interned (the
// cache is permanently retained, like the other interned atoms); large
// ones are allocated fresh and tracked for collection.
func (h *Heap) NewInt(n int64) *IntValue {
	const smallIntBound = 256
	if n >= -smallIntBound && n <= smallIntBound {
		if v, ok := h.smallInts[n]; ok {
			return v
		}
		v := &IntValue{Val: n}
		v.setGCColor(Constant)
		h.smallInts[n] = v
		return v
	}
	v := &IntValue{Val: n}
	h.register(v)
	return v
}

// NewClosure allocates a Closure capturing env.
func (h *Heap) NewClosure(params []*SymbolValue, body []Value, env *Environment) *ClosureValue {
	v := &ClosureValue{Params: params, Body: body, Env: env}
	h.register(v)
	return v
}

// NewBuiltin allocates a Builtin value bound under name.
func (h *Heap) NewBuiltin(name string, types ArityTypes, arity Arity, fn BuiltinFunc) *BuiltinValue {
	v := &BuiltinValue{Name: name, Types: types, Arity: arity, Fn: fn}
	h.register(v)
	return v
}

// NewSpecialForm allocates a SpecialForm value bound under name.
func (h *Heap) NewSpecialForm(name string, arity Arity, fn SpecialFormFunc) *SpecialFormValue {
	v := &SpecialFormValue{Name: name, Arity: arity, Fn: fn}
	h.register(v)
	return v
}

// NewError allocates an Error value (see error_value.go's package-level
// helper of the same behavior, kept for call sites that already hold a
// *Heap method receiver).
func (h *Heap) NewError(kind ErrorKind, message string) *ErrorValue {
	return NewError(h, kind, message)
}

// Intern returns the single SymbolValue instance for name, allocating
// it on first use. Interned symbols are Constant-colored and never
// swept, which is what gives `eq?` on symbols its identity semantics.
func (h *Heap) Intern(name string) *SymbolValue {
	if v, ok := h.interned[name]; ok {
		return v
	}
	v := &SymbolValue{Name: name}
	v.setGCColor(Constant)
	h.interned[name] = v
	return v
}

// NewEnvironment creates a new frame whose parent is parent (nil at the
// top level) and registers it with the heap so it can be traced.
func (h *Heap) NewEnvironment(parent *Environment) *Environment {
	e := newEnvironment(parent)
	h.envs[e] = struct{}{}
	return e
}

// NewTopLevelEnvironment creates the permanent root environment: it is
// never pruned regardless of reference count.
func (h *Heap) NewTopLevelEnvironment() *Environment {
	e := h.NewEnvironment(nil)
	e.permanent = true
	return e
}

// EnterFrame marks env as an active call frame for the duration of the
// returned leave() call. This is what keeps a freshly created closure
// invocation frame alive across a nested allocation's collection, even
// before any Closure value has captured it — the same role a Temp
// guard plays for Values, but for Environments. Calls nest: re-entrant
// use of the same env composes via a reference count.
func (h *Heap) EnterFrame(env *Environment) (leave func()) {
	h.frameRoots[env]++
	left := false
	return func() {
		if left {
			return
		}
		left = true
		h.frameRoots[env]--
		if h.frameRoots[env] <= 0 {
			delete(h.frameRoots, env)
		}
	}
}

// GuardValue acquires a temporary-guard handle for v (§5). Release the
// handle (in reverse order of acquisition, typically via defer) when v
// no longer needs protecting from a collection triggered by a later
// allocation.
func (h *Heap) GuardValue(v Value) (release func()) {
	return h.guard.acquire(v)
}
