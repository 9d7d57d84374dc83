// Package builtins supplies the native-function half of the
// registration contract from §4.5: every entry in the minimum catalogue
// bound under a constant Symbol key in a fresh top-level environment.
//
// Each builtin's arity and per-argument type declaration is enforced
// by the evaluator before the native function runs (see
// internal/interp/evaluator's checkArgTypes), so the functions below
// do not re-validate argument count or Kind themselves — only domain
// failures (division by zero, out-of-range index, and the like).
package builtins

import (
	"io"
	"os"

	"github.com/commander-trashdin/trash-scheme/internal/interp/runtime"
)

// config holds the I/O streams `print` and `read` operate against. Defaulted to the process's stdio, overridable via Option so
// tests and embedders can capture output or script input.
type config struct {
	stdout io.Writer
	stdin  io.Reader
}

// Option configures RegisterAll, mirroring the functional-options
// shape used for runtime.Heap and lexer.Lexer.
type Option func(*config)

// WithStdout redirects `print` output.
func WithStdout(w io.Writer) Option { return func(c *config) { c.stdout = w } }

// WithStdin redirects `read` input.
func WithStdin(r io.Reader) Option { return func(c *config) { c.stdin = r } }

// RegisterAll binds the full minimum catalogue into env, split across
// files by concern the way the teacher splits vm_builtins_*.go.
func RegisterAll(h *runtime.Heap, env *runtime.Environment, opts ...Option) {
	cfg := &config{stdout: os.Stdout, stdin: os.Stdin}
	for _, opt := range opts {
		opt(cfg)
	}

	registerArithmetic(h, env)
	registerComparison(h, env)
	registerPredicates(h, env)
	registerEquality(h, env)
	registerListOps(h, env)
	registerExtrema(h, env)
	registerIO(h, env, cfg)
	registerStrings(h, env)
}

func define(h *runtime.Heap, env *runtime.Environment, name string, types runtime.ArityTypes, arity runtime.Arity, fn runtime.BuiltinFunc) {
	env.Define(h.Intern(name), h.NewBuiltin(name, types, arity, fn))
}

func anyType() runtime.ArityTypes { return runtime.ArityTypes{Variadic: kindPtr(runtime.KindAny)} }

func kindPtr(k runtime.Kind) *runtime.Kind { return &k }
