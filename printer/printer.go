/*
File    : prim/printer/printer.go
*/
// Package printer implements an AST-dumping ast.Visitor, wired to the
// prim run --dump-ast flag. It exists purely as a debugging aid; the
// evaluator never uses it.
package printer

import (
	"bytes"
	"fmt"

	"github.com/primlang/prim/ast"
)

const indentSize = 2

// Printer walks an AST and renders one indented line per node.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

// Dump renders the AST rooted at prog as a string.
func Dump(prog *ast.Program) string {
	p := &Printer{}
	prog.Accept(p)
	return p.buf.String()
}

func (p *Printer) line(format string, args ...any) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteByte(' ')
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *Printer) nested(f func()) {
	p.indent += indentSize
	f()
	p.indent -= indentSize
}

func (p *Printer) VisitProgram(n *ast.Program) {
	p.line("Program")
	p.nested(func() { n.Body.Accept(p) })
}

func (p *Printer) VisitInstr(n *ast.Instr) {
	p.line("Instr")
	p.nested(func() {
		for _, s := range n.Stmts {
			s.Accept(p)
		}
	})
}

func (p *Printer) VisitBlock(n *ast.Block) {
	p.line("Block")
	p.nested(func() { n.Body.Accept(p) })
}

func (p *Printer) VisitExitStmt(n *ast.ExitStmt) {
	p.line("ExitStmt")
}

func (p *Printer) VisitAssignStmt(n *ast.AssignStmt) {
	p.line("AssignStmt %s :=", n.Name)
	p.nested(func() { n.Expr.Accept(p) })
}

func (p *Printer) VisitPrintStmt(n *ast.PrintStmt) {
	p.line("PrintStmt")
	p.nested(func() { n.Expr.Accept(p) })
}

func (p *Printer) VisitIfStmt(n *ast.IfStmt) {
	p.line("IfStmt")
	p.nested(func() {
		p.line("cond:")
		p.nested(func() { n.Cond.Accept(p) })
		p.line("then:")
		p.nested(func() { n.Then.Accept(p) })
		if n.Else != nil {
			p.line("else:")
			p.nested(func() { n.Else.Accept(p) })
		}
	})
}

func (p *Printer) VisitWhileStmt(n *ast.WhileStmt) {
	p.line("WhileStmt doWhile=%t", n.DoWhile)
	p.nested(func() {
		p.line("cond:")
		p.nested(func() { n.Cond.Accept(p) })
		p.line("body:")
		p.nested(func() { n.Body.Accept(p) })
	})
}

func (p *Printer) VisitIdent(n *ast.Ident) {
	p.line("Ident %s", n.Name)
}

func (p *Printer) VisitLiteral(n *ast.Literal) {
	p.line("Literal %s", n.Value.String())
}

func (p *Printer) VisitReadintExpr(n *ast.ReadintExpr) {
	p.line("ReadintExpr")
}

func (p *Printer) VisitReadstrExpr(n *ast.ReadstrExpr) {
	p.line("ReadstrExpr")
}

func (p *Printer) VisitUnaryExpr(n *ast.UnaryExpr) {
	p.line("UnaryExpr -")
	p.nested(func() { n.Operand.Accept(p) })
}

func (p *Printer) VisitBinopExpr(n *ast.BinopExpr) {
	p.line("BinopExpr %s", n.Op)
	p.nested(func() {
		n.Left.Accept(p)
		n.Right.Accept(p)
	})
}

func (p *Printer) VisitGroupingExpr(n *ast.GroupingExpr) {
	p.line("GroupingExpr")
	p.nested(func() { n.Inner.Accept(p) })
}

func (p *Printer) VisitLenExpr(n *ast.LenExpr) {
	p.line("LenExpr")
	p.nested(func() { n.Operand.Accept(p) })
}

func (p *Printer) VisitPosExpr(n *ast.PosExpr) {
	p.line("PosExpr")
	p.nested(func() {
		n.Haystack.Accept(p)
		n.Needle.Accept(p)
	})
}

func (p *Printer) VisitConcatExpr(n *ast.ConcatExpr) {
	p.line("ConcatExpr")
	p.nested(func() {
		n.Left.Accept(p)
		n.Right.Accept(p)
	})
}

func (p *Printer) VisitSubstrExpr(n *ast.SubstrExpr) {
	p.line("SubstrExpr")
	p.nested(func() {
		n.Str.Accept(p)
		n.Start.Accept(p)
		n.End.Accept(p)
	})
}

func (p *Printer) VisitNotExpr(n *ast.NotExpr) {
	p.line("NotExpr")
	p.nested(func() { n.Operand.Accept(p) })
}

func (p *Printer) VisitBoolopExpr(n *ast.BoolopExpr) {
	p.line("BoolopExpr %s", n.Op)
	p.nested(func() {
		n.Left.Accept(p)
		n.Right.Accept(p)
	})
}

func (p *Printer) VisitNumRelopExpr(n *ast.NumRelopExpr) {
	p.line("NumRelopExpr %s", n.Rel)
	p.nested(func() {
		n.Left.Accept(p)
		n.Right.Accept(p)
	})
}

func (p *Printer) VisitStrRelopExpr(n *ast.StrRelopExpr) {
	p.line("StrRelopExpr %s", n.Rel)
	p.nested(func() {
		n.Left.Accept(p)
		n.Right.Accept(p)
	})
}

func (p *Printer) VisitGroupingBoolExpr(n *ast.GroupingBoolExpr) {
	p.line("GroupingBoolExpr")
	p.nested(func() { n.Inner.Accept(p) })
}
