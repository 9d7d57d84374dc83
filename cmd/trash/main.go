// Command trash is the trash-scheme interpreter: a REPL when invoked
// with no arguments, a script runner when given a .trash file path.
package main

import (
	"fmt"
	"os"

	"github.com/commander-trashdin/trash-scheme/cmd/trash/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if exitErr, ok := err.(*cmd.ExitError); ok {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
