package builtins

import "github.com/commander-trashdin/trash-scheme/internal/interp/runtime"

// registerExtrema binds `min max`, both requiring at least one argument.
func registerExtrema(h *runtime.Heap, env *runtime.Environment) {
	intVariadic := runtime.ArityTypes{Variadic: kindPtr(runtime.KindInt)}
	arity := runtime.Arity{Min: 1, Max: -1}

	define(h, env, "min", intVariadic, arity,
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			best := args[0].(*runtime.IntValue).Val
			for _, a := range args[1:] {
				if v := a.(*runtime.IntValue).Val; v < best {
					best = v
				}
			}
			return h.NewInt(best), nil
		})

	define(h, env, "max", intVariadic, arity,
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			best := args[0].(*runtime.IntValue).Val
			for _, a := range args[1:] {
				if v := a.(*runtime.IntValue).Val; v > best {
					best = v
				}
			}
			return h.NewInt(best), nil
		})
}
