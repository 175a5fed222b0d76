/*
File    : prim/repl/repl.go
*/
// Package repl implements an interactive read-eval-print loop for Prim.
// The reference implementation (original_source/) is file-only; this is a
// supplementary mode that shares the evaluator and environment across
// lines so state persists between them, and recovers per line rather than
// per session so one bad line does not end the session.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/primlang/prim/eval"
	"github.com/primlang/prim/parser"
	"github.com/primlang/prim/primerr"
)

var (
	blueColor  = color.New(color.FgBlue)
	redColor   = color.New(color.FgRed)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

const banner = "Prim - a tiny imperative interpreter"

// Repl is one interactive session: a prompt, a banner, and the evaluator
// and environment that persist for its lifetime.
type Repl struct {
	Prompt string
}

// New creates a Repl with the default prompt.
func New() *Repl {
	return &Repl{Prompt: "prim >>> "}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintln(w, "----------------------------------------------------------------")
	greenColor.Fprintln(w, banner)
	blueColor.Fprintln(w, "----------------------------------------------------------------")
	cyanColor.Fprintln(w, "Type Prim statements and press enter. Ctrl+D or '.exit' to quit.")
	blueColor.Fprintln(w, "----------------------------------------------------------------")
}

// Start runs the REPL loop, reading lines from reader and writing
// banner/prompt/output to writer. One Evaluator and Environment live for
// the whole session, so a variable bound on one line is visible on the
// next. reader/writer are typically os.Stdin/os.Stdout for an interactive
// terminal session, or a net.Conn for a served session (see cmd/prim's
// serve command); readline disables raw-mode line editing automatically
// when the underlying file descriptor is not a terminal.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
		Stderr: writer,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.New()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, evaluator)
	}
}

// evalLine parses and evaluates a single line, recovering from any
// *primerr.Error panic so the session continues past a bad line.
func (r *Repl) evalLine(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if rec := recover(); rec != nil {
			if perr := primerr.Recover(rec); perr != nil {
				redColor.Fprint(writer, perr.Error())
				return
			}
			panic(rec)
		}
	}()

	prog := parser.NewParser(line).Parse()
	evaluator.Run(prog)
}
