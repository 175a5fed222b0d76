/*
File    : prim/eval/eval_statements.go
*/
package eval

import (
	"fmt"

	"github.com/primlang/prim/ast"
	"github.com/primlang/prim/primerr"
	"github.com/primlang/prim/value"
)

// execStmt executes a statement for its side effects. It never returns a
// value - Prim's statement forms have none.
func (e *Evaluator) execStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Instr:
		e.execInstr(n)
	case *ast.Block:
		e.execInstr(n.Body)
	case *ast.ExitStmt:
		panic(exitSignal{})
	case *ast.AssignStmt:
		e.execAssignStmt(n)
	case *ast.PrintStmt:
		e.execPrintStmt(n)
	case *ast.IfStmt:
		e.execIfStmt(n)
	case *ast.WhileStmt:
		e.execWhileStmt(n)
	default:
		primerr.Fatal(s.Line(), "Unknown statement kind %T", s)
	}
}

func (e *Evaluator) execInstr(i *ast.Instr) {
	for _, stmt := range i.Stmts {
		e.execStmt(stmt)
	}
}

func (e *Evaluator) execAssignStmt(n *ast.AssignStmt) {
	v := e.evalExpr(n.Expr)
	e.Env.Assign(n.Line(), n.Name, v)
}

func (e *Evaluator) execPrintStmt(n *ast.PrintStmt) {
	v := e.evalExpr(n.Expr)
	fmt.Fprintln(e.Writer, v.String())
}

func (e *Evaluator) execIfStmt(n *ast.IfStmt) {
	cond := e.requireBool(n.Line(), e.evalBoolExpr(n.Cond), "If clause condition must be a boolean expression.")
	if cond.B {
		e.execStmt(n.Then)
	} else if n.Else != nil {
		e.execStmt(n.Else)
	}
}

// execWhileStmt implements both `while bool_expr do simple_instr` and
// `do simple_instr while bool_expr`. The initial evaluation of the
// condition is a type-check probe only: its result is discarded, and the
// real loop-control evaluations that follow run independently. A
// condition with an observable side effect (e.g. readint) therefore runs
// once more than the number of times its value is actually consulted -
// this mirrors the reference implementation exactly.
func (e *Evaluator) execWhileStmt(n *ast.WhileStmt) {
	e.requireBool(n.Line(), e.evalBoolExpr(n.Cond), "While loop condition must be a boolean expression.")

	if n.DoWhile {
		for {
			e.execStmt(n.Body)
			cond := e.requireBool(n.Line(), e.evalBoolExpr(n.Cond), "While loop condition must be a boolean expression.")
			if !cond.B {
				break
			}
		}
		return
	}

	for {
		cond := e.requireBool(n.Line(), e.evalBoolExpr(n.Cond), "While loop condition must be a boolean expression.")
		if !cond.B {
			break
		}
		e.execStmt(n.Body)
	}
}

func (e *Evaluator) requireBool(line int, v value.Value, msg string) value.Bool {
	b, ok := v.(value.Bool)
	if !ok {
		primerr.Fatal(line, "%s", msg)
	}
	return b
}
