package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"

	traceGC bool
)

var rootCmd = &cobra.Command{
	Use:   "trash [file]",
	Short: "trash-scheme interpreter",
	Long: `trash is the interpreter for trash-scheme, a small Scheme-like Lisp.

Invoked with no arguments it starts a REPL; invoked with a path to a
.trash file it runs that script against a fresh top-level environment.`,
	Version:       Version,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runRootOrScript,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVar(&traceGC, "trace-gc", false, "trace garbage collection cycles to stderr")
}

// runRootOrScript dispatches the bare `trash` invocation: a script
// path runs it, no arguments starts the REPL.
func runRootOrScript(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return runScript(args[0])
	}
	return runREPL()
}
