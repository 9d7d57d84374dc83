package builtins

import "github.com/commander-trashdin/trash-scheme/internal/interp/runtime"

// registerComparison binds `< <= > >= =`. Per §4.4 each accepts ≥ 2
// arguments and succeeds iff every consecutive pair satisfies the
// relation.
func registerComparison(h *runtime.Heap, env *runtime.Environment) {
	intVariadic := runtime.ArityTypes{Variadic: kindPtr(runtime.KindInt)}
	arity := runtime.Arity{Min: 2, Max: -1}

	chain := func(rel func(a, b int64) bool) runtime.BuiltinFunc {
		return func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			for i := 0; i+1 < len(args); i++ {
				a := args[i].(*runtime.IntValue).Val
				b := args[i+1].(*runtime.IntValue).Val
				if !rel(a, b) {
					return h.False, nil
				}
			}
			return h.True, nil
		}
	}

	define(h, env, "<", intVariadic, arity, chain(func(a, b int64) bool { return a < b }))
	define(h, env, "<=", intVariadic, arity, chain(func(a, b int64) bool { return a <= b }))
	define(h, env, ">", intVariadic, arity, chain(func(a, b int64) bool { return a > b }))
	define(h, env, ">=", intVariadic, arity, chain(func(a, b int64) bool { return a >= b }))
	define(h, env, "=", intVariadic, arity, chain(func(a, b int64) bool { return a == b }))
}
