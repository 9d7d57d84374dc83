// Package trashscheme is the public embedding facade over the
// interpreter core, mirroring the shape of the teacher's pkg/dwscript
// engine: construct once, then feed it source a form (or a whole
// program) at a time.
package trashscheme

import (
	"io"
	"os"

	"github.com/commander-trashdin/trash-scheme/internal/builtins"
	"github.com/commander-trashdin/trash-scheme/internal/interp/evaluator"
	"github.com/commander-trashdin/trash-scheme/internal/interp/runtime"
	"github.com/commander-trashdin/trash-scheme/internal/lexer"
	"github.com/commander-trashdin/trash-scheme/internal/loader"
	"github.com/commander-trashdin/trash-scheme/internal/parser"
)

// Interpreter owns one Heap and one top-level Environment, pre-loaded
// with the special forms and the builtin catalogue. Per §9
// "Process-wide singleton", an Interpreter is meant to be used from a
// single goroutine at a time.
type Interpreter struct {
	Heap *runtime.Heap
	Env  *runtime.Environment
}

// Option configures an Interpreter at construction.
type Option func(*config)

type config struct {
	gcThreshold int
	gcTrace     io.Writer
	stdout      io.Writer
	stdin       io.Reader
}

// WithGCThreshold overrides the collector's live-object threshold.
func WithGCThreshold(n int) Option { return func(c *config) { c.gcThreshold = n } }

// WithGCTrace routes one-line collection diagnostics to w.
func WithGCTrace(w io.Writer) Option { return func(c *config) { c.gcTrace = w } }

// WithStdout redirects the `print` builtin's output.
func WithStdout(w io.Writer) Option { return func(c *config) { c.stdout = w } }

// WithStdin redirects the `read` builtin's input.
func WithStdin(r io.Reader) Option { return func(c *config) { c.stdin = r } }

// New constructs an Interpreter with a fresh heap and top-level
// environment, registering every special form and builtin from §4.4
// and §4.5.
func New(opts ...Option) *Interpreter {
	cfg := &config{stdout: os.Stdout, stdin: os.Stdin}
	for _, opt := range opts {
		opt(cfg)
	}

	heapOpts := []runtime.Option{}
	if cfg.gcThreshold > 0 {
		heapOpts = append(heapOpts, runtime.WithThreshold(cfg.gcThreshold))
	}
	if cfg.gcTrace != nil {
		heapOpts = append(heapOpts, runtime.WithTrace(cfg.gcTrace))
	}

	h := runtime.NewHeap(heapOpts...)
	env := h.NewTopLevelEnvironment()
	evaluator.RegisterSpecialForms(h, env)
	builtins.RegisterAll(h, env, builtins.WithStdout(cfg.stdout), builtins.WithStdin(cfg.stdin))

	return &Interpreter{Heap: h, Env: env}
}

// EvalString parses and evaluates every form in src against the
// top-level environment in order, returning the value of the last
// form (or the Null singleton for an empty program).
func (interp *Interpreter) EvalString(src string) (runtime.Value, error) {
	p := parser.New(lexer.New(src), interp.Heap)
	var result runtime.Value = interp.Heap.Null
	for {
		form, err := p.ParseForm()
		if err == io.EOF {
			return result, nil
		}
		if err != nil {
			return nil, err
		}
		result, err = evaluator.Eval(interp.Heap, interp.Env, form)
		if err != nil {
			return nil, err
		}
	}
}

// RunFile loads and evaluates path as a script (§6 "Script mode"): the
// extension must be .trash, and each form is parsed and evaluated in
// turn against the top-level environment, with the heap's phase
// toggled to Read before each parse and Eval before each evaluation.
func (interp *Interpreter) RunFile(path string) (runtime.Value, error) {
	if err := loader.CheckExtension(path); err != nil {
		return nil, err
	}
	src, err := loader.ReadSource(path)
	if err != nil {
		return nil, err
	}
	return interp.EvalString(src)
}
