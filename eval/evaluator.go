/*
File    : prim/eval/evaluator.go
*/
// Package eval implements Prim's tree-walking evaluator: one function per
// node kind, dispatched by a plain Go type switch rather than the
// teacher's visitor double-dispatch - see the design note in ast/visitor.go.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/primlang/prim/ast"
	"github.com/primlang/prim/environment"
)

// Evaluator holds the one environment and the I/O streams a run reads from
// and writes to. A single Evaluator lives for the duration of one program
// run (file mode) or one REPL/server session.
type Evaluator struct {
	Env    *environment.Environment
	Writer io.Writer
	Reader *bufio.Reader
}

// New creates an Evaluator wired to the process's standard streams.
func New() *Evaluator {
	return &Evaluator{
		Env:    environment.New(),
		Writer: os.Stdout,
		Reader: bufio.NewReader(os.Stdin),
	}
}

// SetWriter redirects print output, used by tests and the REPL/server.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetReader redirects readint/readstr input, used by tests. The REPL and
// server sessions do not call it, so readint/readstr there read the
// process's standard input.
func (e *Evaluator) SetReader(r io.Reader) {
	e.Reader = bufio.NewReader(r)
}

// exitSignal is the panic value ExitStmt raises to unwind straight out of
// Run without being mistaken for a reported error.
type exitSignal struct{}

// Run executes a parsed program against this evaluator's environment. An
// `exit` statement anywhere in the program unwinds cleanly here; any
// *primerr.Error panic raised during evaluation propagates past Run to the
// caller's own recover point (the CLI command handler or the REPL/server
// per-line handler).
func (e *Evaluator) Run(prog *ast.Program) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(exitSignal); ok {
				return
			}
			panic(r)
		}
	}()
	e.execInstr(prog.Body)
}
