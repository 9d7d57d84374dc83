// Package evaluator implements the core recursive dispatch over
// runtime.Value (§4.4): literals self-evaluate, symbols resolve in the
// current environment, and Pairs are applied either as special-form
// invocations (unevaluated tail) or as ordinary function calls
// (evaluated argument vector).
package evaluator

import (
	"strconv"

	interperrors "github.com/commander-trashdin/trash-scheme/internal/errors"
	"github.com/commander-trashdin/trash-scheme/internal/interp/runtime"
)

// Eval evaluates expr in env, allocating any new values through h.
// It satisfies runtime.EvalFunc so that special forms can recurse back
// into it without this package's caller importing anything special.
func Eval(h *runtime.Heap, env *runtime.Environment, expr runtime.Value) (runtime.Value, error) {
	switch v := expr.(type) {
	case *runtime.SymbolValue:
		val, _, ok := env.Lookup(v)
		if !ok {
			return nil, interperrors.NewNameError(interperrors.MsgUnboundLookup, v.Name)
		}
		return val, nil

	case *runtime.PairValue:
		return evalApplication(h, env, v)

	default:
		// Null, Bool, Int, String, Builtin, SpecialForm, Closure, Error
		// all evaluate to themselves.
		return expr, nil
	}
}

// evalApplication evaluates the head, then dispatches on its Kind per
// the application rule in §4.4.
func evalApplication(h *runtime.Heap, env *runtime.Environment, form *runtime.PairValue) (runtime.Value, error) {
	head, err := Eval(h, env, form.Car)
	if err != nil {
		return nil, err
	}
	release := h.GuardValue(head)
	defer release()

	switch fn := head.(type) {
	case *runtime.SpecialFormValue:
		rawArgs, ok := runtime.ListToSlice(form.Cdr)
		if !ok {
			return nil, interperrors.NewRuntimeError(interperrors.MsgImproperArgList)
		}
		if !fn.Arity.Accepts(len(rawArgs)) {
			return nil, arityError(fn.Name, fn.Arity, len(rawArgs))
		}
		return fn.Fn(h, env, rawArgs, Eval)

	case *runtime.BuiltinValue:
		args, err := evalArgs(h, env, form.Cdr)
		if err != nil {
			return nil, err
		}
		if !fn.Arity.Accepts(len(args)) {
			return nil, arityError(fn.Name, fn.Arity, len(args))
		}
		if err := checkArgTypes(fn.Name, fn.Types, args); err != nil {
			return nil, err
		}
		return fn.Fn(h, env, args)

	case *runtime.ClosureValue:
		args, err := evalArgs(h, env, form.Cdr)
		if err != nil {
			return nil, err
		}
		return applyClosure(h, fn, args)

	default:
		return nil, interperrors.NewRuntimeError(interperrors.MsgNotApplicable, head.Kind())
	}
}

// evalArgs evaluates a proper list of argument expressions left to
// right, guarding each result so that a later argument's allocation
// (or a GC it triggers) cannot reclaim an earlier one before the whole
// vector is assembled.
func evalArgs(h *runtime.Heap, env *runtime.Environment, rawList runtime.Value) ([]runtime.Value, error) {
	raw, ok := runtime.ListToSlice(rawList)
	if !ok {
		return nil, interperrors.NewRuntimeError(interperrors.MsgImproperArgList)
	}
	args := make([]runtime.Value, 0, len(raw))
	var releases []func()
	defer func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}()
	for _, e := range raw {
		v, err := Eval(h, env, e)
		if err != nil {
			return nil, err
		}
		releases = append(releases, h.GuardValue(v))
		args = append(args, v)
	}
	return args, nil
}

func arityError(name string, a runtime.Arity, got int) error {
	var expected string
	switch {
	case a.Min == a.Max:
		expected = strconv.Itoa(a.Min)
	case a.Max == -1:
		expected = "at least " + strconv.Itoa(a.Min)
	default:
		expected = strconv.Itoa(a.Min) + ".." + strconv.Itoa(a.Max)
	}
	return interperrors.NewRuntimeError(interperrors.MsgArityMismatch, name, expected, got)
}

func checkArgTypes(name string, types runtime.ArityTypes, args []runtime.Value) error {
	for i, a := range args {
		declared, inRange := types.TypeAt(i)
		if !inRange {
			continue
		}
		if !runtime.IsSubtype(a.Kind(), declared) {
			return interperrors.NewRuntimeError(interperrors.MsgArgTypeMismatch, i, name, declared, a.Kind())
		}
	}
	return nil
}
