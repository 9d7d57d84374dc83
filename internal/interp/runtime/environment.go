package runtime

// Environment is one frame in the lexical scope chain: an optional
// parent and a symbol→value mapping. Keys are Symbol values; equality
// is identity, which interning guarantees for any two symbols with the
// same name.
//
// Environment is not itself a Value variant (it is not in the data
// model's discriminated union) but it is heap-managed: it carries a
// mark color and participates in the same tracing cycle as ordinary
// values, via Heap.CollectGarbage. See Heap.EnterFrame for how a frame
// stays alive for the duration of an active call even before any
// Closure captures it.
type Environment struct {
	color     Color
	permanent bool
	parent    *Environment
	vars      map[*SymbolValue]Value
}

func newEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, vars: make(map[*SymbolValue]Value)}
}

// Parent returns the enclosing frame, or nil at the top level.
func (e *Environment) Parent() *Environment { return e.parent }

// Define installs or overwrites a binding in this frame.
func (e *Environment) Define(sym *SymbolValue, val Value) {
	e.vars[sym] = val
}

// Lookup walks the parent chain looking for sym, returning the bound
// value and the frame that defines it. ok is false if no frame in the
// chain binds the symbol.
func (e *Environment) Lookup(sym *SymbolValue) (val Value, defining *Environment, ok bool) {
	for env := e; env != nil; env = env.parent {
		if v, found := env.vars[sym]; found {
			return v, env, true
		}
	}
	return nil, nil, false
}

// Assign locates the defining frame via Lookup and overwrites the
// binding there. ok is false if sym is unbound anywhere in the chain.
func (e *Environment) Assign(sym *SymbolValue, val Value) bool {
	_, defining, ok := e.Lookup(sym)
	if !ok {
		return false
	}
	defining.vars[sym] = val
	return true
}

// walkEdges invokes fn for every key and value this frame binds. It
// does not visit the parent: CollectGarbage marks the parent
// Environment itself when it scans this frame.
func (e *Environment) walkEdges(fn func(Value)) {
	for k, v := range e.vars {
		fn(k)
		if v != nil {
			fn(v)
		}
	}
}
