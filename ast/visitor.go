/*
File    : prim/ast/visitor.go
*/
package ast

// Visitor traverses the AST one node kind at a time. It exists for the
// printer (--dump-ast); the evaluator does not implement it, since §9's
// design note prefers a plain type switch over double dispatch for
// interpretation itself.
type Visitor interface {
	VisitProgram(n *Program)
	VisitInstr(n *Instr)
	VisitBlock(n *Block)
	VisitExitStmt(n *ExitStmt)
	VisitAssignStmt(n *AssignStmt)
	VisitPrintStmt(n *PrintStmt)
	VisitIfStmt(n *IfStmt)
	VisitWhileStmt(n *WhileStmt)

	VisitIdent(n *Ident)
	VisitLiteral(n *Literal)
	VisitReadintExpr(n *ReadintExpr)
	VisitReadstrExpr(n *ReadstrExpr)
	VisitUnaryExpr(n *UnaryExpr)
	VisitBinopExpr(n *BinopExpr)
	VisitGroupingExpr(n *GroupingExpr)
	VisitLenExpr(n *LenExpr)
	VisitPosExpr(n *PosExpr)
	VisitConcatExpr(n *ConcatExpr)
	VisitSubstrExpr(n *SubstrExpr)

	VisitNotExpr(n *NotExpr)
	VisitBoolopExpr(n *BoolopExpr)
	VisitNumRelopExpr(n *NumRelopExpr)
	VisitStrRelopExpr(n *StrRelopExpr)
	VisitGroupingBoolExpr(n *GroupingBoolExpr)
}
