package builtins

import (
	interperrors "github.com/commander-trashdin/trash-scheme/internal/errors"
	"github.com/commander-trashdin/trash-scheme/internal/interp/evaluator"
	"github.com/commander-trashdin/trash-scheme/internal/interp/runtime"
)

// registerListOps binds `cons car cdr set-car! set-cdr! list list-ref
// list-tail map`.
func registerListOps(h *runtime.Heap, env *runtime.Environment) {
	define(h, env, "cons", runtime.ArityTypes{Fixed: []runtime.Kind{runtime.KindAny, runtime.KindAny}},
		runtime.Arity{Min: 2, Max: 2},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			return h.NewPair(args[0], args[1]), nil
		})

	define(h, env, "car", runtime.ArityTypes{Fixed: []runtime.Kind{runtime.KindPair}}, runtime.Arity{Min: 1, Max: 1},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			return args[0].(*runtime.PairValue).Car, nil
		})

	define(h, env, "cdr", runtime.ArityTypes{Fixed: []runtime.Kind{runtime.KindPair}}, runtime.Arity{Min: 1, Max: 1},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			return args[0].(*runtime.PairValue).Cdr, nil
		})

	define(h, env, "set-car!", runtime.ArityTypes{Fixed: []runtime.Kind{runtime.KindPair, runtime.KindAny}},
		runtime.Arity{Min: 2, Max: 2},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			args[0].(*runtime.PairValue).Car = args[1]
			return h.Null, nil
		})

	define(h, env, "set-cdr!", runtime.ArityTypes{Fixed: []runtime.Kind{runtime.KindPair, runtime.KindAny}},
		runtime.Arity{Min: 2, Max: 2},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			args[0].(*runtime.PairValue).Cdr = args[1]
			return h.Null, nil
		})

	define(h, env, "list", anyType(), runtime.Arity{Min: 0, Max: -1},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			result := runtime.Value(h.Null)
			for i := len(args) - 1; i >= 0; i-- {
				result = h.NewPair(args[i], result)
			}
			return result, nil
		})

	define(h, env, "list-ref", runtime.ArityTypes{Fixed: []runtime.Kind{runtime.KindAny, runtime.KindInt}},
		runtime.Arity{Min: 2, Max: 2},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			elems, ok := runtime.ListToSlice(args[0])
			if !ok {
				return nil, interperrors.NewRuntimeError(interperrors.MsgImproperArgList)
			}
			idx := args[1].(*runtime.IntValue).Val
			if idx < 0 || idx >= int64(len(elems)) {
				return nil, interperrors.NewRuntimeError(interperrors.MsgIndexOutOfRange, idx, len(elems))
			}
			return elems[idx], nil
		})

	define(h, env, "list-tail", runtime.ArityTypes{Fixed: []runtime.Kind{runtime.KindAny, runtime.KindInt}},
		runtime.Arity{Min: 2, Max: 2},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			cur := args[0]
			n := args[1].(*runtime.IntValue).Val
			for i := int64(0); i < n; i++ {
				p, ok := cur.(*runtime.PairValue)
				if !ok {
					return nil, interperrors.NewRuntimeError(interperrors.MsgIndexOutOfRange, n, i)
				}
				cur = p.Cdr
			}
			return cur, nil
		})

	define(h, env, "map", runtime.ArityTypes{Fixed: []runtime.Kind{runtime.KindAny, runtime.KindAny}},
		runtime.Arity{Min: 2, Max: 2},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			elems, ok := runtime.ListToSlice(args[1])
			if !ok {
				return nil, interperrors.NewRuntimeError(interperrors.MsgImproperArgList)
			}
			mapped := make([]runtime.Value, len(elems))
			var releases []func()
			defer func() {
				for _, release := range releases {
					release()
				}
			}()
			for i, e := range elems {
				releaseArg := h.GuardValue(e)
				v, err := evaluator.Apply(h, env, args[0], []runtime.Value{e})
				releaseArg()
				if err != nil {
					return nil, err
				}
				mapped[i] = v
				releases = append(releases, h.GuardValue(v))
			}
			result := runtime.Value(h.Null)
			for i := len(mapped) - 1; i >= 0; i-- {
				result = h.NewPair(mapped[i], result)
			}
			return result, nil
		})
}
