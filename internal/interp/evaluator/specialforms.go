package evaluator

import (
	interperrors "github.com/commander-trashdin/trash-scheme/internal/errors"
	"github.com/commander-trashdin/trash-scheme/internal/interp/runtime"
)

// RegisterSpecialForms binds the minimum special-form set from §4.4
// into env under their names. It is the evaluator's half of the
// registration contract from §4.5 — the builtins package supplies the
// other half (the native-function catalogue).
func RegisterSpecialForms(h *runtime.Heap, env *runtime.Environment) {
	define := func(name string, arity runtime.Arity, fn runtime.SpecialFormFunc) {
		sym := h.Intern(name)
		env.Define(sym, h.NewSpecialForm(name, arity, fn))
	}

	define("quote", runtime.Arity{Min: 1, Max: 1}, sfQuote)
	define("if", runtime.Arity{Min: 2, Max: 3}, sfIf)
	define("and", runtime.Arity{Min: 0, Max: -1}, sfAnd)
	define("or", runtime.Arity{Min: 0, Max: -1}, sfOr)
	define("define", runtime.Arity{Min: 2, Max: -1}, sfDefine)
	define("set!", runtime.Arity{Min: 2, Max: 2}, sfSet)
	define("lambda", runtime.Arity{Min: 1, Max: -1}, sfLambda)
	define("begin", runtime.Arity{Min: 0, Max: -1}, sfBegin)
}

func sfQuote(h *runtime.Heap, env *runtime.Environment, rawArgs []runtime.Value, eval runtime.EvalFunc) (runtime.Value, error) {
	return rawArgs[0], nil
}

func sfIf(h *runtime.Heap, env *runtime.Environment, rawArgs []runtime.Value, eval runtime.EvalFunc) (runtime.Value, error) {
	cond, err := eval(h, env, rawArgs[0])
	if err != nil {
		return nil, err
	}
	if !runtime.IsFalse(cond) {
		return eval(h, env, rawArgs[1])
	}
	if len(rawArgs) == 3 {
		return eval(h, env, rawArgs[2])
	}
	return h.Null, nil
}

func sfAnd(h *runtime.Heap, env *runtime.Environment, rawArgs []runtime.Value, eval runtime.EvalFunc) (runtime.Value, error) {
	var result runtime.Value = h.True
	for _, e := range rawArgs {
		v, err := eval(h, env, e)
		if err != nil {
			return nil, err
		}
		if runtime.IsFalse(v) {
			return h.False, nil
		}
		result = v
	}
	return result, nil
}

func sfOr(h *runtime.Heap, env *runtime.Environment, rawArgs []runtime.Value, eval runtime.EvalFunc) (runtime.Value, error) {
	for _, e := range rawArgs {
		v, err := eval(h, env, e)
		if err != nil {
			return nil, err
		}
		if !runtime.IsFalse(v) {
			return v, nil
		}
	}
	return h.False, nil
}

// sfDefine handles both forms from §4.4: `(define name expr)` and the
// procedure-shorthand `(define (name params…) body…)`, which desugars
// to `(define name (lambda (params…) body…))`.
func sfDefine(h *runtime.Heap, env *runtime.Environment, rawArgs []runtime.Value, eval runtime.EvalFunc) (runtime.Value, error) {
	if sym, ok := rawArgs[0].(*runtime.SymbolValue); ok {
		if len(rawArgs) != 2 {
			return nil, interperrors.NewRuntimeError(interperrors.MsgArityMismatch, "define", "2", len(rawArgs))
		}
		val, err := eval(h, env, rawArgs[1])
		if err != nil {
			return nil, err
		}
		env.Define(sym, val)
		return sym, nil
	}

	header, ok := rawArgs[0].(*runtime.PairValue)
	if !ok {
		return nil, interperrors.NewRuntimeError("define target must be a symbol or a (name params…) list, got %s", rawArgs[0].Kind())
	}
	nameSym, ok := header.Car.(*runtime.SymbolValue)
	if !ok {
		return nil, interperrors.NewRuntimeError("define: procedure name must be a symbol")
	}
	params, err := parseParamList(header.Cdr)
	if err != nil {
		return nil, err
	}
	closure := h.NewClosure(params, rawArgs[1:], env)
	env.Define(nameSym, closure)
	return nameSym, nil
}

func sfSet(h *runtime.Heap, env *runtime.Environment, rawArgs []runtime.Value, eval runtime.EvalFunc) (runtime.Value, error) {
	sym, ok := rawArgs[0].(*runtime.SymbolValue)
	if !ok {
		return nil, interperrors.NewRuntimeError("set! target must be a symbol, got %s", rawArgs[0].Kind())
	}
	val, err := eval(h, env, rawArgs[1])
	if err != nil {
		return nil, err
	}
	if !env.Assign(sym, val) {
		return nil, interperrors.NewNameError(interperrors.MsgUnboundAssign, sym.Name)
	}
	return val, nil
}

func sfLambda(h *runtime.Heap, env *runtime.Environment, rawArgs []runtime.Value, eval runtime.EvalFunc) (runtime.Value, error) {
	params, err := parseParamList(rawArgs[0])
	if err != nil {
		return nil, err
	}
	return h.NewClosure(params, rawArgs[1:], env), nil
}

// sfBegin is not part of the spec's named minimum set but is a
// supplemented convenience (original_source's driver evaluates a
// sequence of top-level forms the same way `begin` sequences a body).
func sfBegin(h *runtime.Heap, env *runtime.Environment, rawArgs []runtime.Value, eval runtime.EvalFunc) (runtime.Value, error) {
	var result runtime.Value = h.Null
	for _, e := range rawArgs {
		v, err := eval(h, env, e)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func parseParamList(v runtime.Value) ([]*runtime.SymbolValue, error) {
	elems, ok := runtime.ListToSlice(v)
	if !ok {
		return nil, interperrors.NewRuntimeError("lambda parameter list must be a proper list")
	}
	params := make([]*runtime.SymbolValue, 0, len(elems))
	for _, e := range elems {
		sym, ok := e.(*runtime.SymbolValue)
		if !ok {
			return nil, interperrors.NewRuntimeError("lambda parameter must be a symbol, got %s", e.Kind())
		}
		params = append(params, sym)
	}
	return params, nil
}
