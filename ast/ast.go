/*
File    : prim/ast/ast.go
*/
// Package ast defines Prim's abstract syntax tree: a closed set of node
// variants produced by the parser and consumed by the evaluator and the
// AST printer. Nodes are pure data - Accept methods exist only so the
// printer can walk the tree via the Visitor in visitor.go; the evaluator
// itself dispatches by type switch rather than by double dispatch (see
// eval.Evaluator).
package ast

import "github.com/primlang/prim/value"

// Node is the base of every AST node: something with a source line and a
// debug rendering.
type Node interface {
	Line() int
	Literal() string
	Accept(v Visitor)
}

// Stmt is a statement: a SimpleInstr in the grammar, or the Instr sequence
// that chains them.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an arithmetic or string expression - the grammar's `expr`
// nonterminal (num_expr | str_expr | IDENT).
type Expr interface {
	Node
	exprNode()
}

// BoolExpr is a boolean expression - the grammar's `bool_expr` nonterminal.
type BoolExpr interface {
	Node
	boolExprNode()
}

type base struct {
	line int
}

func (b base) Line() int { return b.line }

// Program is the root node: a single Instr sequence.
type Program struct {
	base
	Body *Instr
}

func NewProgram(line int, body *Instr) *Program { return &Program{base{line}, body} }

func (p *Program) Literal() string { return p.Body.Literal() }
func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }

// Instr is an ordered sequence of SimpleInstr statements, the flattened
// left-to-right execution order of `instr SEMI simple_instr`.
type Instr struct {
	base
	Stmts []Stmt
}

func NewInstr(line int, stmts []Stmt) *Instr { return &Instr{base{line}, stmts} }

func (i *Instr) Literal() string {
	s := ""
	for n, stmt := range i.Stmts {
		if n > 0 {
			s += "; "
		}
		s += stmt.Literal()
	}
	return s
}
func (i *Instr) Accept(v Visitor) { v.VisitInstr(i) }
func (i *Instr) stmtNode()        {}

// Block is `begin instr end`, a SimpleInstr that does not open a new scope.
type Block struct {
	base
	Body *Instr
}

func NewBlock(line int, body *Instr) *Block { return &Block{base{line}, body} }

func (b *Block) Literal() string   { return "begin " + b.Body.Literal() + " end" }
func (b *Block) Accept(v Visitor) { v.VisitBlock(b) }
func (b *Block) stmtNode()        {}

// ExitStmt terminates the interpreter with success.
type ExitStmt struct {
	base
}

func NewExitStmt(line int) *ExitStmt { return &ExitStmt{base{line}} }

func (e *ExitStmt) Literal() string   { return "exit" }
func (e *ExitStmt) Accept(v Visitor) { v.VisitExitStmt(e) }
func (e *ExitStmt) stmtNode()        {}

// AssignStmt is `IDENT := expr`.
type AssignStmt struct {
	base
	Name string
	Expr Expr
}

func NewAssignStmt(line int, name string, expr Expr) *AssignStmt {
	return &AssignStmt{base{line}, name, expr}
}

func (a *AssignStmt) Literal() string   { return a.Name + " := " + a.Expr.Literal() }
func (a *AssignStmt) Accept(v Visitor) { v.VisitAssignStmt(a) }
func (a *AssignStmt) stmtNode()        {}

// PrintStmt is `print(expr)`.
type PrintStmt struct {
	base
	Expr Expr
}

func NewPrintStmt(line int, expr Expr) *PrintStmt { return &PrintStmt{base{line}, expr} }

func (p *PrintStmt) Literal() string   { return "print(" + p.Expr.Literal() + ")" }
func (p *PrintStmt) Accept(v Visitor) { v.VisitPrintStmt(p) }
func (p *PrintStmt) stmtNode()        {}

// IfStmt is `if bool_expr then simple_instr [else simple_instr]`. Else is
// nil when absent; the parser resolves the dangling-else ambiguity by
// always attaching a trailing else to the innermost open if.
type IfStmt struct {
	base
	Cond BoolExpr
	Then Stmt
	Else Stmt
}

func NewIfStmt(line int, cond BoolExpr, then, els Stmt) *IfStmt {
	return &IfStmt{base{line}, cond, then, els}
}

func (f *IfStmt) Literal() string {
	s := "if " + f.Cond.Literal() + " then " + f.Then.Literal()
	if f.Else != nil {
		s += " else " + f.Else.Literal()
	}
	return s
}
func (f *IfStmt) Accept(v Visitor) { v.VisitIfStmt(f) }
func (f *IfStmt) stmtNode()        {}

// WhileStmt covers both `while bool_expr do simple_instr` (DoWhile=false)
// and `do simple_instr while bool_expr` (DoWhile=true).
type WhileStmt struct {
	base
	Cond    BoolExpr
	Body    Stmt
	DoWhile bool
}

func NewWhileStmt(line int, cond BoolExpr, body Stmt, doWhile bool) *WhileStmt {
	return &WhileStmt{base{line}, cond, body, doWhile}
}

func (w *WhileStmt) Literal() string {
	if w.DoWhile {
		return "do " + w.Body.Literal() + " while " + w.Cond.Literal()
	}
	return "while " + w.Cond.Literal() + " do " + w.Body.Literal()
}
func (w *WhileStmt) Accept(v Visitor) { v.VisitWhileStmt(w) }
func (w *WhileStmt) stmtNode()        {}

// Ident is a bare identifier reference, valid wherever `expr` is.
type Ident struct {
	base
	Name string
}

func NewIdent(line int, name string) *Ident { return &Ident{base{line}, name} }

func (i *Ident) Literal() string   { return i.Name }
func (i *Ident) Accept(v Visitor) { v.VisitIdent(i) }
func (i *Ident) exprNode()        {}

// Literal carries a constant Num, Str, or Bool value. Bool literals only
// ever appear where a BoolExpr is expected; Literal implements both Expr
// and BoolExpr so the same node type serves either position.
type Literal struct {
	base
	Value value.Value
}

func NewLiteral(line int, v value.Value) *Literal { return &Literal{base{line}, v} }

func (l *Literal) Literal() string   { return l.Value.String() }
func (l *Literal) Accept(v Visitor) { v.VisitLiteral(l) }
func (l *Literal) exprNode()        {}
func (l *Literal) boolExprNode()    {}

// ReadintExpr reads one line from stdin and parses it as a NUM.
type ReadintExpr struct {
	base
}

func NewReadintExpr(line int) *ReadintExpr { return &ReadintExpr{base{line}} }

func (r *ReadintExpr) Literal() string   { return "readint" }
func (r *ReadintExpr) Accept(v Visitor) { v.VisitReadintExpr(r) }
func (r *ReadintExpr) exprNode()        {}

// ReadstrExpr reads one line from stdin as a STRING.
type ReadstrExpr struct {
	base
}

func NewReadstrExpr(line int) *ReadstrExpr { return &ReadstrExpr{base{line}} }

func (r *ReadstrExpr) Literal() string   { return "readstr" }
func (r *ReadstrExpr) Accept(v Visitor) { v.VisitReadstrExpr(r) }
func (r *ReadstrExpr) exprNode()        {}

// UnaryExpr is arithmetic negation, `- expr` at UMINUS precedence.
type UnaryExpr struct {
	base
	Operand Expr
}

func NewUnaryExpr(line int, operand Expr) *UnaryExpr { return &UnaryExpr{base{line}, operand} }

func (u *UnaryExpr) Literal() string   { return "-" + u.Operand.Literal() }
func (u *UnaryExpr) Accept(v Visitor) { v.VisitUnaryExpr(u) }
func (u *UnaryExpr) exprNode()        {}

// BinopExpr is a binary arithmetic operator: one of + - * / %.
type BinopExpr struct {
	base
	Left  Expr
	Op    string
	Right Expr
}

func NewBinopExpr(line int, left Expr, op string, right Expr) *BinopExpr {
	return &BinopExpr{base{line}, left, op, right}
}

func (b *BinopExpr) Literal() string   { return b.Left.Literal() + " " + b.Op + " " + b.Right.Literal() }
func (b *BinopExpr) Accept(v Visitor) { v.VisitBinopExpr(b) }
func (b *BinopExpr) exprNode()        {}

// GroupingExpr is a parenthesized `expr`.
type GroupingExpr struct {
	base
	Inner Expr
}

func NewGroupingExpr(line int, inner Expr) *GroupingExpr { return &GroupingExpr{base{line}, inner} }

func (g *GroupingExpr) Literal() string   { return "(" + g.Inner.Literal() + ")" }
func (g *GroupingExpr) Accept(v Visitor) { v.VisitGroupingExpr(g) }
func (g *GroupingExpr) exprNode()        {}

// LenExpr is `length(expr)`.
type LenExpr struct {
	base
	Operand Expr
}

func NewLenExpr(line int, operand Expr) *LenExpr { return &LenExpr{base{line}, operand} }

func (l *LenExpr) Literal() string   { return "length(" + l.Operand.Literal() + ")" }
func (l *LenExpr) Accept(v Visitor) { v.VisitLenExpr(l) }
func (l *LenExpr) exprNode()        {}

// PosExpr is `position(expr, expr)`.
type PosExpr struct {
	base
	Haystack Expr
	Needle   Expr
}

func NewPosExpr(line int, haystack, needle Expr) *PosExpr {
	return &PosExpr{base{line}, haystack, needle}
}

func (p *PosExpr) Literal() string {
	return "position(" + p.Haystack.Literal() + ", " + p.Needle.Literal() + ")"
}
func (p *PosExpr) Accept(v Visitor) { v.VisitPosExpr(p) }
func (p *PosExpr) exprNode()        {}

// ConcatExpr is `concatenate(expr, expr)`.
type ConcatExpr struct {
	base
	Left  Expr
	Right Expr
}

func NewConcatExpr(line int, left, right Expr) *ConcatExpr {
	return &ConcatExpr{base{line}, left, right}
}

func (c *ConcatExpr) Literal() string {
	return "concatenate(" + c.Left.Literal() + ", " + c.Right.Literal() + ")"
}
func (c *ConcatExpr) Accept(v Visitor) { v.VisitConcatExpr(c) }
func (c *ConcatExpr) exprNode()        {}

// SubstrExpr is `substring(expr, expr, expr)`.
type SubstrExpr struct {
	base
	Str   Expr
	Start Expr
	End   Expr
}

func NewSubstrExpr(line int, str, start, end Expr) *SubstrExpr {
	return &SubstrExpr{base{line}, str, start, end}
}

func (s *SubstrExpr) Literal() string {
	return "substring(" + s.Str.Literal() + ", " + s.Start.Literal() + ", " + s.End.Literal() + ")"
}
func (s *SubstrExpr) Accept(v Visitor) { v.VisitSubstrExpr(s) }
func (s *SubstrExpr) exprNode()        {}

// NotExpr is `not bool_expr`.
type NotExpr struct {
	base
	Operand BoolExpr
}

func NewNotExpr(line int, operand BoolExpr) *NotExpr { return &NotExpr{base{line}, operand} }

func (n *NotExpr) Literal() string    { return "not " + n.Operand.Literal() }
func (n *NotExpr) Accept(v Visitor)  { v.VisitNotExpr(n) }
func (n *NotExpr) boolExprNode()     {}

// BoolopExpr is `bool_expr (and|or) bool_expr`.
type BoolopExpr struct {
	base
	Left  BoolExpr
	Op    string
	Right BoolExpr
}

func NewBoolopExpr(line int, left BoolExpr, op string, right BoolExpr) *BoolopExpr {
	return &BoolopExpr{base{line}, left, op, right}
}

func (b *BoolopExpr) Literal() string {
	return b.Left.Literal() + " " + b.Op + " " + b.Right.Literal()
}
func (b *BoolopExpr) Accept(v Visitor) { v.VisitBoolopExpr(b) }
func (b *BoolopExpr) boolExprNode()    {}

// NumRelopExpr is `expr num_rel expr` for rel in {= < <= > >= <>}.
type NumRelopExpr struct {
	base
	Left  Expr
	Rel   string
	Right Expr
}

func NewNumRelopExpr(line int, left Expr, rel string, right Expr) *NumRelopExpr {
	return &NumRelopExpr{base{line}, left, rel, right}
}

func (n *NumRelopExpr) Literal() string {
	return n.Left.Literal() + " " + n.Rel + " " + n.Right.Literal()
}
func (n *NumRelopExpr) Accept(v Visitor) { v.VisitNumRelopExpr(n) }
func (n *NumRelopExpr) boolExprNode()    {}

// StrRelopExpr is `expr str_rel expr` for rel in {== !=}.
type StrRelopExpr struct {
	base
	Left  Expr
	Rel   string
	Right Expr
}

func NewStrRelopExpr(line int, left Expr, rel string, right Expr) *StrRelopExpr {
	return &StrRelopExpr{base{line}, left, rel, right}
}

func (s *StrRelopExpr) Literal() string {
	return s.Left.Literal() + " " + s.Rel + " " + s.Right.Literal()
}
func (s *StrRelopExpr) Accept(v Visitor) { v.VisitStrRelopExpr(s) }
func (s *StrRelopExpr) boolExprNode()    {}

// GroupingBoolExpr is a parenthesized `bool_expr`.
type GroupingBoolExpr struct {
	base
	Inner BoolExpr
}

func NewGroupingBoolExpr(line int, inner BoolExpr) *GroupingBoolExpr {
	return &GroupingBoolExpr{base{line}, inner}
}

func (g *GroupingBoolExpr) Literal() string   { return "(" + g.Inner.Literal() + ")" }
func (g *GroupingBoolExpr) Accept(v Visitor) { v.VisitGroupingBoolExpr(g) }
func (g *GroupingBoolExpr) boolExprNode()    {}
