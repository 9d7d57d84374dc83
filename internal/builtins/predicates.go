package builtins

import "github.com/commander-trashdin/trash-scheme/internal/interp/runtime"

// registerPredicates binds `null? pair? number? symbol? boolean? list?`.
func registerPredicates(h *runtime.Heap, env *runtime.Environment) {
	unary := runtime.Arity{Min: 1, Max: 1}

	kindIs := func(k runtime.Kind) runtime.BuiltinFunc {
		return func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			return h.Bool(args[0].Kind() == k), nil
		}
	}

	define(h, env, "null?", anyType(), unary, kindIs(runtime.KindNull))
	define(h, env, "pair?", anyType(), unary, kindIs(runtime.KindPair))
	define(h, env, "number?", anyType(), unary, kindIs(runtime.KindInt))
	define(h, env, "symbol?", anyType(), unary, kindIs(runtime.KindSymbol))
	define(h, env, "boolean?", anyType(), unary, kindIs(runtime.KindBool))

	define(h, env, "list?", anyType(), unary,
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			return h.Bool(runtime.IsProperList(args[0])), nil
		})
}
