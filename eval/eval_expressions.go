/*
File    : prim/eval/eval_expressions.go
*/
package eval

import (
	"strconv"
	"strings"

	"github.com/primlang/prim/ast"
	"github.com/primlang/prim/primerr"
	"github.com/primlang/prim/value"
)

// evalExpr evaluates the grammar's `expr` nonterminal: num_expr, str_expr,
// or a bare identifier.
func (e *Evaluator) evalExpr(n ast.Expr) value.Value {
	switch x := n.(type) {
	case *ast.Ident:
		return e.Env.Get(x.Line(), x.Name)
	case *ast.Literal:
		return x.Value
	case *ast.GroupingExpr:
		return e.evalExpr(x.Inner)
	case *ast.ReadintExpr:
		return e.readint(x.Line())
	case *ast.ReadstrExpr:
		return e.readstr(x.Line())
	case *ast.UnaryExpr:
		return e.evalUnaryExpr(x)
	case *ast.BinopExpr:
		return e.evalBinopExpr(x)
	case *ast.LenExpr:
		return e.evalLenExpr(x)
	case *ast.PosExpr:
		return e.evalPosExpr(x)
	case *ast.ConcatExpr:
		return e.evalConcatExpr(x)
	case *ast.SubstrExpr:
		return e.evalSubstrExpr(x)
	default:
		primerr.Fatal(n.Line(), "Unknown expression kind %T", n)
		panic("unreachable")
	}
}

// evalBoolExpr evaluates the grammar's `bool_expr` nonterminal, always
// producing a value.Bool.
func (e *Evaluator) evalBoolExpr(n ast.BoolExpr) value.Value {
	switch x := n.(type) {
	case *ast.Literal:
		return x.Value
	case *ast.GroupingBoolExpr:
		return e.evalBoolExpr(x.Inner)
	case *ast.NotExpr:
		return e.evalNotExpr(x)
	case *ast.BoolopExpr:
		return e.evalBoolopExpr(x)
	case *ast.NumRelopExpr:
		return e.evalNumRelopExpr(x)
	case *ast.StrRelopExpr:
		return e.evalStrRelopExpr(x)
	default:
		primerr.Fatal(n.Line(), "Unknown boolean expression kind %T", n)
		panic("unreachable")
	}
}

func (e *Evaluator) readint(line int) value.Value {
	raw, err := e.Reader.ReadString('\n')
	if err != nil && raw == "" {
		primerr.Fatal(line, "Input to readint must be of type NUM.")
	}
	n, convErr := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if convErr != nil {
		primerr.Fatal(line, "Input to readint must be of type NUM.")
	}
	return value.Num{N: n}
}

func (e *Evaluator) readstr(line int) value.Value {
	s, err := e.Reader.ReadString('\n')
	if err != nil && s == "" {
		primerr.Fatal(line, "Unexpected end of input.")
	}
	return value.Str{S: strings.TrimRight(s, "\r\n")}
}

func (e *Evaluator) evalUnaryExpr(n *ast.UnaryExpr) value.Value {
	v := e.requireNum(n.Line(), e.evalExpr(n.Operand), "Unary operator - can only be applied to arguments of type NUM.")
	return value.Num{N: -v.N}
}

func (e *Evaluator) evalBinopExpr(n *ast.BinopExpr) value.Value {
	left := e.evalExpr(n.Left)
	right := e.evalExpr(n.Right)
	msg := "Binary operator " + n.Op + " can only be applied to arguments of type NUM."
	l := e.requireNum(n.Line(), left, msg)
	r := e.requireNum(n.Line(), right, msg)

	switch n.Op {
	case "+":
		return value.Num{N: l.N + r.N}
	case "-":
		return value.Num{N: l.N - r.N}
	case "*":
		return value.Num{N: l.N * r.N}
	case "/":
		if r.N == 0 {
			primerr.Fatal(n.Line(), "Division by zero.")
		}
		return value.Num{N: l.N / r.N}
	case "%":
		if r.N == 0 {
			primerr.Fatal(n.Line(), "Division by zero.")
		}
		return value.Num{N: l.N % r.N}
	default:
		primerr.Fatal(n.Line(), "Unknown binary operator %q", n.Op)
		panic("unreachable")
	}
}

func (e *Evaluator) evalLenExpr(n *ast.LenExpr) value.Value {
	s := e.requireStr(n.Line(), e.evalExpr(n.Operand), "Argument passed to length() must be of type STRING.")
	return value.Num{N: int64(len(s.S))}
}

func (e *Evaluator) evalPosExpr(n *ast.PosExpr) value.Value {
	msg := "Arguments passed to position() must be of type STRING."
	haystack := e.requireStr(n.Line(), e.evalExpr(n.Haystack), msg)
	needle := e.requireStr(n.Line(), e.evalExpr(n.Needle), msg)
	idx := strings.Index(haystack.S, needle.S)
	if idx == -1 {
		return value.Num{N: 0}
	}
	return value.Num{N: int64(idx)}
}

func (e *Evaluator) evalConcatExpr(n *ast.ConcatExpr) value.Value {
	msg := "Arguments passed to concatenate() must be of type STRING."
	left := e.requireStr(n.Line(), e.evalExpr(n.Left), msg)
	right := e.requireStr(n.Line(), e.evalExpr(n.Right), msg)
	return value.Str{S: left.S + right.S}
}

func (e *Evaluator) evalSubstrExpr(n *ast.SubstrExpr) value.Value {
	msg := "Arguments passed to substring() must be of appropriate types."
	str := e.requireStr(n.Line(), e.evalExpr(n.Str), msg)
	start := e.requireNum(n.Line(), e.evalExpr(n.Start), msg)
	end := e.requireNum(n.Line(), e.evalExpr(n.End), msg)

	if start.N < 1 || end.N < 0 {
		return value.Str{S: ""}
	}
	s := str.S
	startIdx := int(start.N) - 1
	endIdx := int(end.N)
	if startIdx > len(s) {
		startIdx = len(s)
	}
	if endIdx > len(s) {
		endIdx = len(s)
	}
	if endIdx < startIdx {
		return value.Str{S: ""}
	}
	return value.Str{S: s[startIdx:endIdx]}
}

func (e *Evaluator) evalNotExpr(n *ast.NotExpr) value.Value {
	b := e.requireBool(n.Line(), e.evalBoolExpr(n.Operand), "'not' keyword can only be used with a boolean expression.")
	return value.Bool{B: !b.B}
}

func (e *Evaluator) evalBoolopExpr(n *ast.BoolopExpr) value.Value {
	left := e.evalBoolExpr(n.Left)
	right := e.evalBoolExpr(n.Right)
	msg := "Boolean operators can only be used with boolean expressions."
	l := e.requireBool(n.Line(), left, msg)
	r := e.requireBool(n.Line(), right, msg)

	switch n.Op {
	case "and":
		return value.Bool{B: l.B && r.B}
	case "or":
		return value.Bool{B: l.B || r.B}
	default:
		primerr.Fatal(n.Line(), "Unknown boolean operator %q", n.Op)
		panic("unreachable")
	}
}

func (e *Evaluator) evalNumRelopExpr(n *ast.NumRelopExpr) value.Value {
	msg := "Relational operator '" + n.Rel + "' can only be used with type NUM"
	left := e.requireNum(n.Line(), e.evalExpr(n.Left), msg)
	right := e.requireNum(n.Line(), e.evalExpr(n.Right), msg)

	switch n.Rel {
	case "=":
		return value.Bool{B: left.N == right.N}
	case "<":
		return value.Bool{B: left.N < right.N}
	case "<=":
		return value.Bool{B: left.N <= right.N}
	case ">":
		return value.Bool{B: left.N > right.N}
	case ">=":
		return value.Bool{B: left.N >= right.N}
	case "<>":
		return value.Bool{B: left.N != right.N}
	default:
		primerr.Fatal(n.Line(), "Unknown relational operator %q", n.Rel)
		panic("unreachable")
	}
}

func (e *Evaluator) evalStrRelopExpr(n *ast.StrRelopExpr) value.Value {
	msg := "Relational operator '" + n.Rel + "' can only be used with type STRING."
	left := e.requireStr(n.Line(), e.evalExpr(n.Left), msg)
	right := e.requireStr(n.Line(), e.evalExpr(n.Right), msg)

	switch n.Rel {
	case "==":
		return value.Bool{B: left.S == right.S}
	case "!=":
		return value.Bool{B: left.S != right.S}
	default:
		primerr.Fatal(n.Line(), "Unknown relational operator %q", n.Rel)
		panic("unreachable")
	}
}

func (e *Evaluator) requireNum(line int, v value.Value, msg string) value.Num {
	n, ok := v.(value.Num)
	if !ok {
		primerr.Fatal(line, "%s", msg)
	}
	return n
}

func (e *Evaluator) requireStr(line int, v value.Value, msg string) value.Str {
	s, ok := v.(value.Str)
	if !ok {
		primerr.Fatal(line, "%s", msg)
	}
	return s
}
