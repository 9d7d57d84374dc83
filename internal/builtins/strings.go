package builtins

import "github.com/commander-trashdin/trash-scheme/internal/interp/runtime"

// registerStrings binds the supplemented string operations (Open
// Question b: strings are accepted by the reader but the base spec's
// arithmetic/comparison builtins never touch them; these three fill
// the resulting gap instead of leaving strings write-only).
func registerStrings(h *runtime.Heap, env *runtime.Environment) {
	define(h, env, "string?", anyType(), runtime.Arity{Min: 1, Max: 1},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			return h.Bool(args[0].Kind() == runtime.KindString), nil
		})

	define(h, env, "string-length", runtime.ArityTypes{Fixed: []runtime.Kind{runtime.KindString}},
		runtime.Arity{Min: 1, Max: 1},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			return h.NewInt(int64(len(args[0].(*runtime.StringValue).Val))), nil
		})

	define(h, env, "string-append", runtime.ArityTypes{Variadic: kindPtr(runtime.KindString)},
		runtime.Arity{Min: 0, Max: -1},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			var b []byte
			for _, a := range args {
				b = append(b, a.(*runtime.StringValue).Val...)
			}
			return h.NewString(string(b)), nil
		})
}
