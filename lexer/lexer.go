/*
File    : prim/lexer/lexer.go
*/
package lexer

import (
	"strconv"

	"github.com/primlang/prim/primerr"
)

// Lexer performs lexical analysis of Prim source code. It scans the source
// byte by byte, producing one Token per call to NextToken until it reaches
// EOF_TYPE. There are no comments in Prim's grammar, so unlike richer
// languages the whitespace-skipping pass here has nothing else to ignore.
//
// Fields:
//   - Src: the complete source text
//   - Current: the byte at Position (0 once past the end)
//   - Position: current index into Src
//   - SrcLength: len(Src), cached to avoid recomputing it on every Advance
//   - Line: current 1-indexed line number, used for error reporting
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
}

// NewLexer creates a Lexer positioned at the first character of src.
func NewLexer(src string) *Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return &Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
	}
}

// Peek looks at the next character without consuming it, returning 0 past
// the end of the source.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance consumes the current character and moves to the next one.
func (lex *Lexer) Advance() {
	lex.Position++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// IgnoreWhitespace skips spaces, tabs, and newlines, incrementing Line on
// each newline consumed.
func (lex *Lexer) IgnoreWhitespace() {
	for isWhitespace(lex.Current) {
		if lex.Current == '\n' {
			lex.Line++
		}
		lex.Advance()
	}
}

// NextToken returns the next token in the source, or an EOF_TYPE token once
// the source is exhausted. Any byte that cannot start a valid token is a
// fatal lexical error.
func (lex *Lexer) NextToken() Token {
	lex.IgnoreWhitespace()

	line := lex.Line

	switch {
	case lex.Current == 0:
		return Token{Type: EOF_TYPE, Literal: "EOF", Line: line}

	case lex.Current == ':':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return Token{Type: ASSIGN_OP, Literal: ":=", Line: line}
		}
		primerr.Fatal(line, "Unexpected character ':'")

	case lex.Current == '=':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return Token{Type: STREQ_OP, Literal: "==", Line: line}
		}
		lex.Advance()
		return Token{Type: EQUALS_OP, Literal: "=", Line: line}

	case lex.Current == '!':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return Token{Type: STRNOTEQ_OP, Literal: "!=", Line: line}
		}
		primerr.Fatal(line, "Unexpected character '!'")

	case lex.Current == '<':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return Token{Type: LE_OP, Literal: "<=", Line: line}
		}
		if lex.Peek() == '>' {
			lex.Advance()
			lex.Advance()
			return Token{Type: NE_OP, Literal: "<>", Line: line}
		}
		lex.Advance()
		return Token{Type: LT_OP, Literal: "<", Line: line}

	case lex.Current == '>':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return Token{Type: GE_OP, Literal: ">=", Line: line}
		}
		lex.Advance()
		return Token{Type: GT_OP, Literal: ">", Line: line}

	case lex.Current == '+':
		lex.Advance()
		return Token{Type: PLUS_OP, Literal: "+", Line: line}

	case lex.Current == '-':
		lex.Advance()
		return Token{Type: MINUS_OP, Literal: "-", Line: line}

	case lex.Current == '*':
		lex.Advance()
		return Token{Type: TIMES_OP, Literal: "*", Line: line}

	case lex.Current == '/':
		lex.Advance()
		return Token{Type: DIVIDE_OP, Literal: "/", Line: line}

	case lex.Current == '%':
		lex.Advance()
		return Token{Type: MOD_OP, Literal: "%", Line: line}

	case lex.Current == '(':
		lex.Advance()
		return Token{Type: LPAREN_OP, Literal: "(", Line: line}

	case lex.Current == ')':
		lex.Advance()
		return Token{Type: RPAREN_OP, Literal: ")", Line: line}

	case lex.Current == ';':
		lex.Advance()
		return Token{Type: SEMI_OP, Literal: ";", Line: line}

	case lex.Current == ',':
		lex.Advance()
		return Token{Type: COMMA_OP, Literal: ",", Line: line}

	case lex.Current == '"':
		return lex.readString()

	case isDigit(lex.Current):
		return lex.readNumber()

	case isIdentStart(lex.Current):
		return lex.readIdentifier()
	}

	primerr.Fatal(line, "Unexpected character %q", lex.Current)
	panic("unreachable")
}

// readNumber scans a run of digits into a NUM_LIT token.
func (lex *Lexer) readNumber() Token {
	line := lex.Line
	start := lex.Position
	for isDigit(lex.Current) {
		lex.Advance()
	}
	lit := lex.Src[start:lex.Position]
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		primerr.Fatal(line, "Invalid numeric literal %q", lit)
	}
	return Token{Type: NUM_LIT, Literal: lit, NumValue: n, Line: line}
}

// readString scans a double-quoted string literal. Prim strings do not
// support escape sequences; the literal runs until the next '"' on the same
// line. A string left open at end of line or end of source is a fatal
// lexical error reported at the line the string began.
func (lex *Lexer) readString() Token {
	line := lex.Line
	lex.Advance() // consume opening quote
	start := lex.Position
	for lex.Current != '"' {
		if lex.Current == 0 || lex.Current == '\n' {
			primerr.Fatal(line, "Unterminated string literal")
		}
		lex.Advance()
	}
	lit := lex.Src[start:lex.Position]
	lex.Advance() // consume closing quote
	return Token{Type: STRING_LIT, Literal: lit, Line: line}
}

// readIdentifier scans an identifier or reserved word.
func (lex *Lexer) readIdentifier() Token {
	line := lex.Line
	start := lex.Position
	for isIdentPart(lex.Current) {
		lex.Advance()
	}
	lit := lex.Src[start:lex.Position]
	tokType := lookupIdent(lit)
	tok := Token{Type: tokType, Literal: lit, Line: line}
	if tokType == BOOL_LIT {
		tok.BoolVal = lit == "true"
	}
	return tok
}

// ConsumeTokens tokenizes the entire source, returning every token up to
// but excluding EOF. Useful for tests and --dump-ast tooling.
func (lex *Lexer) ConsumeTokens() []Token {
	tokens := make([]Token, 0)
	for {
		tok := lex.NextToken()
		if tok.Type == EOF_TYPE {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentStart(c byte) bool {
	return isAlpha(c) || c == '_'
}

func isIdentPart(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}
