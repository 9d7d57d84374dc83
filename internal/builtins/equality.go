package builtins

import "github.com/commander-trashdin/trash-scheme/internal/interp/runtime"

// registerEquality binds `eq? eql? not`.
func registerEquality(h *runtime.Heap, env *runtime.Environment) {
	define(h, env, "eq?", anyType(), runtime.Arity{Min: 2, Max: 2},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			return h.Bool(runtime.Eq(args[0], args[1])), nil
		})

	define(h, env, "eql?", anyType(), runtime.Arity{Min: 2, Max: 2},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			return h.Bool(runtime.Eql(args[0], args[1])), nil
		})

	define(h, env, "not", anyType(), runtime.Arity{Min: 1, Max: 1},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			return h.Bool(runtime.IsFalse(args[0])), nil
		})
}
