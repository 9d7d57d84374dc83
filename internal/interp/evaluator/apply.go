package evaluator

import (
	"strconv"

	interperrors "github.com/commander-trashdin/trash-scheme/internal/errors"
	"github.com/commander-trashdin/trash-scheme/internal/interp/runtime"
)

// Apply invokes fn (a Builtin or Closure) against an already-evaluated
// argument vector. This is the entry point builtins like `map` use to
// call back into a first-class function value they were handed — the
// same dispatch evalApplication uses for the Builtin/Closure cases,
// exposed here because applying a value is not always driven by
// evaluating a Pair form.
func Apply(h *runtime.Heap, env *runtime.Environment, fn runtime.Value, args []runtime.Value) (runtime.Value, error) {
	switch v := fn.(type) {
	case *runtime.BuiltinValue:
		if !v.Arity.Accepts(len(args)) {
			return nil, arityError(v.Name, v.Arity, len(args))
		}
		if err := checkArgTypes(v.Name, v.Types, args); err != nil {
			return nil, err
		}
		return v.Fn(h, env, args)
	case *runtime.ClosureValue:
		return applyClosure(h, v, args)
	default:
		return nil, interperrors.NewRuntimeError(interperrors.MsgNotApplicable, fn.Kind())
	}
}

// applyClosure implements §4.4 "Closure invocation": a fresh child
// frame, an arity check, sequential parameter binding, and sequential
// body evaluation with the value of the last form returned.
func applyClosure(h *runtime.Heap, fn *runtime.ClosureValue, args []runtime.Value) (runtime.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, interperrors.NewRuntimeError(
			interperrors.MsgArityMismatch, "#<lambda function>", strconv.Itoa(len(fn.Params)), len(args))
	}

	frame := h.NewEnvironment(fn.Env)
	leave := h.EnterFrame(frame)
	defer leave()

	for i, p := range fn.Params {
		frame.Define(p, args[i])
	}

	var result runtime.Value = h.Null
	for _, body := range fn.Body {
		v, err := Eval(h, frame, body)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}
