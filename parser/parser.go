/*
File    : prim/parser/parser.go
*/
// Package parser implements Prim's recursive-descent parser. The grammar's
// own two expression nonterminals - `expr` (arithmetic/string) and
// `bool_expr` (boolean/relational) - are implemented as two distinct entry
// points (parseExpr, parseBoolExpr) rather than one generic Pratt parser,
// because unlike the teacher's GoMix grammar, Prim's grammar is not a
// single unified expression language: a bool_expr cannot appear wherever
// an expr can and vice versa, except through the explicit relational
// productions (`expr num_rel expr`, `expr str_rel expr`).
//
// The one genuine grammar ambiguity a recursive-descent parser has to work
// around by hand (where an LALR table resolves it implicitly) is a leading
// '(' in boolean-expression context: it may open a parenthesized bool_expr
// or a parenthesized expr that feeds a relational comparison. This parser
// resolves it with a short speculative parse - attempt the relational
// reading first, and if it panics with a syntax error, rewind and parse a
// grouped bool_expr instead. The panic/recover idiom already used for the
// fail-fast error contract doubles as the rewind signal here; it never
// escapes the parser.
package parser

import (
	"github.com/primlang/prim/ast"
	"github.com/primlang/prim/lexer"
	"github.com/primlang/prim/primerr"
	"github.com/primlang/prim/value"
)

// Parser consumes the full token stream up front so that the boolean
// expression parser can checkpoint and rewind its position when resolving
// the parenthesis ambiguity described above.
type Parser struct {
	Tokens []lexer.Token
	Pos    int
}

// NewParser tokenizes src in full and returns a Parser positioned at the
// first token.
func NewParser(src string) *Parser {
	lex := lexer.NewLexer(src)
	toks := lex.ConsumeTokens()
	toks = append(toks, lexer.Token{Type: lexer.EOF_TYPE, Literal: "EOF", Line: lex.Line})
	return &Parser{Tokens: toks}
}

// Parse parses the entire token stream as a program and requires it to be
// followed by EOF.
func (p *Parser) Parse() *ast.Program {
	line := p.cur().Line
	body := p.parseInstr()
	if p.cur().Type != lexer.EOF_TYPE {
		p.syntaxError(p.cur())
	}
	return ast.NewProgram(line, body)
}

func (p *Parser) cur() lexer.Token {
	return p.Tokens[p.Pos]
}

func (p *Parser) advance() lexer.Token {
	tok := p.Tokens[p.Pos]
	if p.Pos < len(p.Tokens)-1 {
		p.Pos++
	}
	return tok
}

func (p *Parser) checkpoint() int { return p.Pos }
func (p *Parser) restore(pos int) { p.Pos = pos }

func (p *Parser) expect(tt lexer.TokenType) lexer.Token {
	tok := p.cur()
	if tok.Type != tt {
		p.syntaxError(tok)
	}
	return p.advance()
}

func (p *Parser) syntaxError(tok lexer.Token) {
	if tok.Type == lexer.EOF_TYPE {
		primerr.Fatal(tok.Line, "Unexpected end of input")
	}
	primerr.Fatal(tok.Line, "Syntax error at token '%s'", tok.Literal)
}

// instr := simple_instr (SEMI simple_instr)*
func (p *Parser) parseInstr() *ast.Instr {
	line := p.cur().Line
	stmts := []ast.Stmt{p.parseSimpleInstr()}
	for p.cur().Type == lexer.SEMI_OP {
		p.advance()
		stmts = append(stmts, p.parseSimpleInstr())
	}
	return ast.NewInstr(line, stmts)
}

func (p *Parser) parseSimpleInstr() ast.Stmt {
	tok := p.cur()
	switch tok.Type {
	case lexer.IDENT_ID:
		return p.parseAssignStmt()
	case lexer.IF_KEY:
		return p.parseIfStmt()
	case lexer.WHILE_KEY:
		return p.parseWhileStmt()
	case lexer.DO_KEY:
		return p.parseDoWhileStmt()
	case lexer.PRINT_KEY:
		return p.parsePrintStmt()
	case lexer.EXIT_KEY:
		p.advance()
		return ast.NewExitStmt(tok.Line)
	case lexer.BEGIN_KEY:
		p.advance()
		body := p.parseInstr()
		p.expect(lexer.END_KEY)
		return ast.NewBlock(tok.Line, body)
	default:
		p.syntaxError(tok)
		panic("unreachable")
	}
}

func (p *Parser) parseAssignStmt() ast.Stmt {
	nameTok := p.expect(lexer.IDENT_ID)
	p.expect(lexer.ASSIGN_OP)
	e := p.parseExpr()
	return ast.NewAssignStmt(nameTok.Line, nameTok.Literal, e)
}

func (p *Parser) parseIfStmt() ast.Stmt {
	ifTok := p.expect(lexer.IF_KEY)
	cond := p.parseBoolExpr()
	p.expect(lexer.THEN_KEY)
	then := p.parseSimpleInstr()
	var els ast.Stmt
	if p.cur().Type == lexer.ELSE_KEY {
		p.advance()
		els = p.parseSimpleInstr()
	}
	return ast.NewIfStmt(ifTok.Line, cond, then, els)
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	whileTok := p.expect(lexer.WHILE_KEY)
	cond := p.parseBoolExpr()
	p.expect(lexer.DO_KEY)
	body := p.parseSimpleInstr()
	return ast.NewWhileStmt(whileTok.Line, cond, body, false)
}

func (p *Parser) parseDoWhileStmt() ast.Stmt {
	doTok := p.expect(lexer.DO_KEY)
	body := p.parseSimpleInstr()
	p.expect(lexer.WHILE_KEY)
	cond := p.parseBoolExpr()
	return ast.NewWhileStmt(doTok.Line, cond, body, true)
}

func (p *Parser) parsePrintStmt() ast.Stmt {
	printTok := p.expect(lexer.PRINT_KEY)
	p.expect(lexer.LPAREN_OP)
	e := p.parseExpr()
	p.expect(lexer.RPAREN_OP)
	return ast.NewPrintStmt(printTok.Line, e)
}

// parseExpr parses the grammar's `expr` nonterminal: right-associative
// PLUS/MINUS over left-associative TIMES/DIVIDE/MOD over right-associative
// unary minus over primaries.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseAdditive()
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	tok := p.cur()
	if tok.Type == lexer.PLUS_OP || tok.Type == lexer.MINUS_OP {
		p.advance()
		right := p.parseAdditive()
		return ast.NewBinopExpr(tok.Line, left, tok.Literal, right)
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for {
		tok := p.cur()
		if tok.Type != lexer.TIMES_OP && tok.Type != lexer.DIVIDE_OP && tok.Type != lexer.MOD_OP {
			break
		}
		p.advance()
		right := p.parseUnary()
		left = ast.NewBinopExpr(tok.Line, left, tok.Literal, right)
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	if p.cur().Type == lexer.MINUS_OP {
		tok := p.advance()
		operand := p.parseUnary()
		return ast.NewUnaryExpr(tok.Line, operand)
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.cur()
	switch tok.Type {
	case lexer.NUM_LIT:
		p.advance()
		return ast.NewLiteral(tok.Line, value.Num{N: tok.NumValue})
	case lexer.STRING_LIT:
		p.advance()
		return ast.NewLiteral(tok.Line, value.Str{S: tok.Literal})
	case lexer.READINT_KEY:
		p.advance()
		return ast.NewReadintExpr(tok.Line)
	case lexer.READSTR_KEY:
		p.advance()
		return ast.NewReadstrExpr(tok.Line)
	case lexer.IDENT_ID:
		p.advance()
		return ast.NewIdent(tok.Line, tok.Literal)
	case lexer.LPAREN_OP:
		p.advance()
		inner := p.parseExpr()
		p.expect(lexer.RPAREN_OP)
		return ast.NewGroupingExpr(tok.Line, inner)
	case lexer.LEN_KEY:
		p.advance()
		p.expect(lexer.LPAREN_OP)
		e := p.parseExpr()
		p.expect(lexer.RPAREN_OP)
		return ast.NewLenExpr(tok.Line, e)
	case lexer.POS_KEY:
		p.advance()
		p.expect(lexer.LPAREN_OP)
		a := p.parseExpr()
		p.expect(lexer.COMMA_OP)
		b := p.parseExpr()
		p.expect(lexer.RPAREN_OP)
		return ast.NewPosExpr(tok.Line, a, b)
	case lexer.CONCAT_KEY:
		p.advance()
		p.expect(lexer.LPAREN_OP)
		a := p.parseExpr()
		p.expect(lexer.COMMA_OP)
		b := p.parseExpr()
		p.expect(lexer.RPAREN_OP)
		return ast.NewConcatExpr(tok.Line, a, b)
	case lexer.SUBSTR_KEY:
		p.advance()
		p.expect(lexer.LPAREN_OP)
		s := p.parseExpr()
		p.expect(lexer.COMMA_OP)
		start := p.parseExpr()
		p.expect(lexer.COMMA_OP)
		end := p.parseExpr()
		p.expect(lexer.RPAREN_OP)
		return ast.NewSubstrExpr(tok.Line, s, start, end)
	default:
		p.syntaxError(tok)
		panic("unreachable")
	}
}

// parseBoolExpr parses the grammar's `bool_expr` nonterminal: left OR over
// left AND over right NOT over a boolean primary (literal, parenthesized
// bool_expr, or a relational comparison of two `expr`s).
func (p *Parser) parseBoolExpr() ast.BoolExpr {
	return p.parseBoolOr()
}

func (p *Parser) parseBoolOr() ast.BoolExpr {
	left := p.parseBoolAnd()
	for p.cur().Type == lexer.OR_KEY {
		tok := p.advance()
		right := p.parseBoolAnd()
		left = ast.NewBoolopExpr(tok.Line, left, "or", right)
	}
	return left
}

func (p *Parser) parseBoolAnd() ast.BoolExpr {
	left := p.parseBoolNot()
	for p.cur().Type == lexer.AND_KEY {
		tok := p.advance()
		right := p.parseBoolNot()
		left = ast.NewBoolopExpr(tok.Line, left, "and", right)
	}
	return left
}

func (p *Parser) parseBoolNot() ast.BoolExpr {
	if p.cur().Type == lexer.NOT_KEY {
		tok := p.advance()
		operand := p.parseBoolNot()
		return ast.NewNotExpr(tok.Line, operand)
	}
	return p.parseBoolPrimary()
}

func (p *Parser) parseBoolPrimary() ast.BoolExpr {
	tok := p.cur()
	switch tok.Type {
	case lexer.BOOL_LIT:
		p.advance()
		return ast.NewLiteral(tok.Line, value.Bool{B: tok.BoolVal})
	case lexer.LPAREN_OP:
		return p.parseParenBoolOrRelational()
	default:
		left := p.parseExpr()
		return p.parseRelationalTail(left)
	}
}

// parseParenBoolOrRelational resolves the leading-'(' ambiguity: try the
// relational reading (expr rel expr, where the expr may itself begin with
// a parenthesized group) first; on failure, rewind and parse a
// parenthesized bool_expr.
func (p *Parser) parseParenBoolOrRelational() ast.BoolExpr {
	start := p.checkpoint()
	if rel, ok := p.tryParseRelational(); ok {
		return rel
	}
	p.restore(start)

	tok := p.expect(lexer.LPAREN_OP)
	inner := p.parseBoolExpr()
	p.expect(lexer.RPAREN_OP)
	return ast.NewGroupingBoolExpr(tok.Line, inner)
}

func (p *Parser) tryParseRelational() (result ast.BoolExpr, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseErr := r.(*primerr.Error); isParseErr {
				ok = false
				return
			}
			panic(r)
		}
	}()
	left := p.parseExpr()
	result = p.parseRelationalTail(left)
	return result, true
}

func (p *Parser) parseRelationalTail(left ast.Expr) ast.BoolExpr {
	tok := p.cur()
	switch tok.Type {
	case lexer.EQUALS_OP, lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP, lexer.NE_OP:
		p.advance()
		right := p.parseExpr()
		return ast.NewNumRelopExpr(tok.Line, left, tok.Literal, right)
	case lexer.STREQ_OP, lexer.STRNOTEQ_OP:
		p.advance()
		right := p.parseExpr()
		return ast.NewStrRelopExpr(tok.Line, left, tok.Literal, right)
	default:
		p.syntaxError(tok)
		panic("unreachable")
	}
}
