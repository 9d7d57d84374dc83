package cmd

import (
	"fmt"
	"io"
	"os"

	interperrors "github.com/commander-trashdin/trash-scheme/internal/errors"
	"github.com/commander-trashdin/trash-scheme/internal/interp/evaluator"
	"github.com/commander-trashdin/trash-scheme/internal/lexer"
	"github.com/commander-trashdin/trash-scheme/internal/parser"
	"github.com/commander-trashdin/trash-scheme/pkg/trashscheme"
)

// runREPL implements the read-eval-print loop from §6: read one
// complete form from standard input, evaluate it in the top-level
// environment, print the result followed by a newline. Errors are
// printed to stderr and the loop continues. The sentinel ExitSignal
// produced by `exit` stops it.
//
// Standard input is buffered into a single Lexer up front and forms
// are pulled from it one at a time, the same streaming-token strategy
// the `read` builtin uses against its own stream.
func runREPL() error {
	interp := newInterpreter()

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}
	p := parser.New(lexer.New(string(data)), interp.Heap)

	for {
		fmt.Print("trash> ")
		form, err := p.ParseForm()
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		result, evalErr := evaluator.Eval(interp.Heap, interp.Env, form)
		if evalErr != nil {
			if sig, ok := interperrors.AsExitSignal(evalErr); ok {
				return exitCode(sig.Code)
			}
			fmt.Fprintln(os.Stderr, evalErr)
			continue
		}
		fmt.Println(result.String())
	}
}

func newInterpreter() *trashscheme.Interpreter {
	var opts []trashscheme.Option
	if traceGC {
		opts = append(opts, trashscheme.WithGCTrace(os.Stderr))
	}
	return trashscheme.New(opts...)
}

// exitCode turns an ExitSignal into a process-terminating sentinel
// error that main() reports via os.Exit without printing it like an
// ordinary evaluation error.
func exitCode(code int) error {
	if code == 0 {
		return nil
	}
	return &ExitError{Code: code}
}

// ExitError carries a non-zero process exit code: the code given to
// `exit`, or 1 after runScript has already reported a failure to
// stderr. main() exits with that code silently instead of printing it.
type ExitError struct{ Code int }

func (e *ExitError) Error() string { return "" }
