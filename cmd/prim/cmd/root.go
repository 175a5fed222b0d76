/*
File    : prim/cmd/prim/cmd/root.go
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is the interpreter's version string, printed by the version
// subcommand.
var Version = "v0.1.0"

var rootCmd = &cobra.Command{
	Use:   "prim",
	Short: "Prim interpreter",
	Long: `prim is an interpreter for Prim, a small imperative language with
NUM, STRING and BOOL values, assignment, if/while/do-while control flow,
and a handful of string builtins.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
