/*
File    : prim/cmd/prim/cmd/version.go
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the interpreter version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("prim %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
