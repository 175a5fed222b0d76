/*
File    : prim/cmd/prim/cmd/repl.go
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/primlang/prim/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Prim session",
	RunE: func(_ *cobra.Command, _ []string) error {
		repl.New().Start(os.Stdin, os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
