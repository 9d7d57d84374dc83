package cmd

import (
	"fmt"
	"os"

	interperrors "github.com/commander-trashdin/trash-scheme/internal/errors"
)

// runScript implements §6's "Script mode": the path's extension must
// be .trash (a mismatch is fatal), every form in the file is evaluated
// in order against a fresh top-level environment, and a failure
// terminates with a non-zero exit.
func runScript(path string) error {
	interp := newInterpreter()

	_, err := interp.RunFile(path)
	if err != nil {
		if sig, ok := interperrors.AsExitSignal(err); ok {
			return exitCode(sig.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		return &ExitError{Code: 1}
	}
	return nil
}
