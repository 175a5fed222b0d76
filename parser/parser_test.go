/*
File    : prim/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/primlang/prim/ast"
	"github.com/primlang/prim/value"
)

func TestParser_NumberLiteral(t *testing.T) {
	prog := NewParser("x := 12").Parse()
	assert.Equal(t, 1, len(prog.Body.Stmts))
	assign, ok := prog.Body.Stmts[0].(*ast.AssignStmt)
	assert.True(t, ok)
	lit, ok := assign.Expr.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, value.Num{N: 12}, lit.Value)
}

func TestParser_RightAssociativeMinus(t *testing.T) {
	// 10 - 3 - 2 must parse as 10 - (3 - 2)
	prog := NewParser("print(10 - 3 - 2)").Parse()
	printStmt, ok := prog.Body.Stmts[0].(*ast.PrintStmt)
	assert.True(t, ok)

	outer, ok := printStmt.Expr.(*ast.BinopExpr)
	assert.True(t, ok)
	assert.Equal(t, "-", outer.Op)

	outerLeft, ok := outer.Left.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, value.Num{N: 10}, outerLeft.Value)

	inner, ok := outer.Right.(*ast.BinopExpr)
	assert.True(t, ok)
	assert.Equal(t, "-", inner.Op)
	innerLeft, ok := inner.Left.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, value.Num{N: 3}, innerLeft.Value)
	innerRight, ok := inner.Right.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, value.Num{N: 2}, innerRight.Value)
}

func TestParser_UnaryMinusBindsTighterThanTimes(t *testing.T) {
	// -a * b must parse as (-a) * b
	prog := NewParser("x := -2 * 3").Parse()
	assign, ok := prog.Body.Stmts[0].(*ast.AssignStmt)
	assert.True(t, ok)

	mul, ok := assign.Expr.(*ast.BinopExpr)
	assert.True(t, ok)
	assert.Equal(t, "*", mul.Op)

	_, ok = mul.Left.(*ast.UnaryExpr)
	assert.True(t, ok)
}

func TestParser_DanglingElseBindsToNearestIf(t *testing.T) {
	prog := NewParser("if true then if false then print(1) else print(2)").Parse()
	outer, ok := prog.Body.Stmts[0].(*ast.IfStmt)
	assert.True(t, ok)
	assert.Nil(t, outer.Else)

	inner, ok := outer.Then.(*ast.IfStmt)
	assert.True(t, ok)
	assert.NotNil(t, inner.Else)
}

func TestParser_DoWhile(t *testing.T) {
	prog := NewParser("do i := i + 1 while i < 0").Parse()
	while, ok := prog.Body.Stmts[0].(*ast.WhileStmt)
	assert.True(t, ok)
	assert.True(t, while.DoWhile)
}

func TestParser_WhileDo(t *testing.T) {
	prog := NewParser("while i > 0 do begin print(i); i := i - 1 end").Parse()
	while, ok := prog.Body.Stmts[0].(*ast.WhileStmt)
	assert.True(t, ok)
	assert.False(t, while.DoWhile)
	block, ok := while.Body.(*ast.Block)
	assert.True(t, ok)
	assert.Equal(t, 2, len(block.Body.Stmts))
}

func TestParser_RelationalInsideParens(t *testing.T) {
	// Leading '(' here starts an expr, not a grouped bool_expr.
	prog := NewParser("print(position(\"a\", \"b\"))").Parse()
	assert.Equal(t, 1, len(prog.Body.Stmts))

	prog2 := NewParser("if (1 + 2) = 3 then print(1)").Parse()
	ifStmt, ok := prog2.Body.Stmts[0].(*ast.IfStmt)
	assert.True(t, ok)
	_, ok = ifStmt.Cond.(*ast.NumRelopExpr)
	assert.True(t, ok)
}

func TestParser_GroupedBoolExpr(t *testing.T) {
	prog := NewParser("if (true or false) then print(1)").Parse()
	ifStmt, ok := prog.Body.Stmts[0].(*ast.IfStmt)
	assert.True(t, ok)
	_, ok = ifStmt.Cond.(*ast.GroupingBoolExpr)
	assert.True(t, ok)
}

func TestParser_AndBindsTighterThanOr(t *testing.T) {
	prog := NewParser("if true or false and true then print(1)").Parse()
	ifStmt, ok := prog.Body.Stmts[0].(*ast.IfStmt)
	assert.True(t, ok)
	or, ok := ifStmt.Cond.(*ast.BoolopExpr)
	assert.True(t, ok)
	assert.Equal(t, "or", or.Op)
	_, ok = or.Right.(*ast.BoolopExpr)
	assert.True(t, ok)
}

func TestParser_SyntaxErrorIsFatal(t *testing.T) {
	defer func() {
		r := recover()
		assert.NotNil(t, r)
	}()
	NewParser("x := ").Parse()
	t.Fatal("expected panic on syntax error")
}
