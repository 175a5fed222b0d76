/*
File    : prim/cmd/prim/cmd/run.go
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/primlang/prim/eval"
	"github.com/primlang/prim/parser"
	"github.com/primlang/prim/primerr"
	"github.com/primlang/prim/printer"
)

var dumpAST bool

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a Prim source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST before evaluating")
}

// runFile implements the single recover point for file-mode execution: it
// parses and evaluates the whole file, and any *primerr.Error panic raised
// anywhere in that pipeline is caught here, reported to stderr, and turned
// into a non-zero exit via the returned error.
func runFile(_ *cobra.Command, args []string) (execErr error) {
	defer func() {
		if rec := recover(); rec != nil {
			perr := primerr.Recover(rec)
			if perr == nil {
				panic(rec)
			}
			color.New(color.FgRed).Fprint(os.Stderr, perr.Error())
			execErr = errors.New("execution failed")
		}
	}()

	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read file %q: %w", args[0], err)
	}

	prog := parser.NewParser(string(source)).Parse()

	if dumpAST {
		fmt.Fprint(os.Stdout, printer.Dump(prog))
	}

	evaluator := eval.New()
	evaluator.Run(prog)
	return nil
}
