package builtins

import (
	interperrors "github.com/commander-trashdin/trash-scheme/internal/errors"
	"github.com/commander-trashdin/trash-scheme/internal/interp/runtime"
)

// registerArithmetic binds `+ - * /`. All arithmetic is two's-complement
// 64-bit signed; overflow wraps (Go's int64 arithmetic already does
// this). Division truncates toward zero and fails with a RuntimeError
// on a zero divisor (Open Question c, resolved toward values).
func registerArithmetic(h *runtime.Heap, env *runtime.Environment) {
	intVariadic := runtime.ArityTypes{Variadic: kindPtr(runtime.KindInt)}

	define(h, env, "+", intVariadic, runtime.Arity{Min: 0, Max: -1},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			var acc int64
			for _, a := range args {
				acc += a.(*runtime.IntValue).Val
			}
			return h.NewInt(acc), nil
		})

	define(h, env, "*", intVariadic, runtime.Arity{Min: 0, Max: -1},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			acc := int64(1)
			for _, a := range args {
				acc *= a.(*runtime.IntValue).Val
			}
			return h.NewInt(acc), nil
		})

	define(h, env, "-", intVariadic, runtime.Arity{Min: 1, Max: -1},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			first := args[0].(*runtime.IntValue).Val
			if len(args) == 1 {
				return h.NewInt(-first), nil
			}
			acc := first
			for _, a := range args[1:] {
				acc -= a.(*runtime.IntValue).Val
			}
			return h.NewInt(acc), nil
		})

	define(h, env, "/", intVariadic, runtime.Arity{Min: 1, Max: -1},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			first := args[0].(*runtime.IntValue).Val
			if len(args) == 1 {
				if first == 0 {
					return nil, interperrors.NewRuntimeError(interperrors.MsgDivisionByZero)
				}
				return h.NewInt(1 / first), nil
			}
			acc := first
			for _, a := range args[1:] {
				d := a.(*runtime.IntValue).Val
				if d == 0 {
					return nil, interperrors.NewRuntimeError(interperrors.MsgDivisionByZero)
				}
				acc /= d
			}
			return h.NewInt(acc), nil
		})
}
