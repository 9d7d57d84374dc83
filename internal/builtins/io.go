package builtins

import (
	"fmt"
	"io"

	interperrors "github.com/commander-trashdin/trash-scheme/internal/errors"
	"github.com/commander-trashdin/trash-scheme/internal/interp/evaluator"
	"github.com/commander-trashdin/trash-scheme/internal/interp/runtime"
	"github.com/commander-trashdin/trash-scheme/internal/lexer"
	"github.com/commander-trashdin/trash-scheme/internal/loader"
	"github.com/commander-trashdin/trash-scheme/internal/parser"
)

// registerIO binds `print read load exit` against cfg's streams.
//
// `read` lazily buffers the whole of cfg.stdin into a single Lexer the
// first time it is called, then pulls one form per call from that same
// Lexer — a stdin stream is read once and forms are peeled off it in
// order, rather than re-read from scratch on every call.
func registerIO(h *runtime.Heap, env *runtime.Environment, cfg *config) {
	var readLex *lexer.Lexer
	ensureReadLexer := func() (*lexer.Lexer, error) {
		if readLex == nil {
			data, err := io.ReadAll(cfg.stdin)
			if err != nil {
				return nil, err
			}
			readLex = lexer.New(string(data))
		}
		return readLex, nil
	}

	define(h, env, "print", anyType(), runtime.Arity{Min: 1, Max: -1},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			for i, a := range args {
				if i > 0 {
					fmt.Fprint(cfg.stdout, " ")
				}
				fmt.Fprint(cfg.stdout, a.String())
			}
			fmt.Fprintln(cfg.stdout)
			return h.Null, nil
		})

	define(h, env, "read", runtime.ArityTypes{}, runtime.Arity{Min: 0, Max: 0},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			lex, err := ensureReadLexer()
			if err != nil {
				return nil, interperrors.NewRuntimeError("read: %s", err)
			}
			p := parser.New(lex, h)
			v, err := p.ParseForm()
			if err == io.EOF {
				return h.Null, nil
			}
			if err != nil {
				return nil, err
			}
			return v, nil
		})

	define(h, env, "load", runtime.ArityTypes{Fixed: []runtime.Kind{runtime.KindString}}, runtime.Arity{Min: 1, Max: 1},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			path := args[0].(*runtime.StringValue).Val
			src, err := loader.ReadSource(path)
			if err != nil {
				return nil, interperrors.NewRuntimeError("load: %s", err)
			}
			p := parser.New(lexer.New(src), h)
			forms, err := p.ParseProgram()
			if err != nil {
				return nil, err
			}
			var result runtime.Value = h.Null
			for _, f := range forms {
				v, err := evaluator.Eval(h, env, f)
				if err != nil {
					return nil, err
				}
				result = v
			}
			return result, nil
		})

	define(h, env, "exit", runtime.ArityTypes{Variadic: kindPtr(runtime.KindInt)}, runtime.Arity{Min: 0, Max: 1},
		func(h *runtime.Heap, env *runtime.Environment, args []runtime.Value) (runtime.Value, error) {
			code := 0
			if len(args) == 1 {
				code = int(args[0].(*runtime.IntValue).Val)
			}
			return nil, &interperrors.ExitSignal{Code: code}
		})
}
