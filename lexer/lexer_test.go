/*
File    : prim/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexer_SingleCharTokens(t *testing.T) {
	src := "+ - * / % ( ) ; ,"
	tokens := NewLexer(src).ConsumeTokens()
	expected := []TokenType{
		PLUS_OP, MINUS_OP, TIMES_OP, DIVIDE_OP, MOD_OP,
		LPAREN_OP, RPAREN_OP, SEMI_OP, COMMA_OP,
	}
	assert.Equal(t, len(expected), len(tokens))
	for i, want := range expected {
		assert.Equal(t, want, tokens[i].Type)
	}
}

func TestLexer_MultiCharOperators(t *testing.T) {
	src := ":= == != <= >= <> < > ="
	tokens := NewLexer(src).ConsumeTokens()
	expected := []TokenType{
		ASSIGN_OP, STREQ_OP, STRNOTEQ_OP, LE_OP, GE_OP, NE_OP, LT_OP, GT_OP, EQUALS_OP,
	}
	assert.Equal(t, len(expected), len(tokens))
	for i, want := range expected {
		assert.Equal(t, want, tokens[i].Type)
	}
}

func TestLexer_NumberLiteral(t *testing.T) {
	tokens := NewLexer("42").ConsumeTokens()
	assert.Equal(t, 1, len(tokens))
	assert.Equal(t, NUM_LIT, tokens[0].Type)
	assert.Equal(t, int64(42), tokens[0].NumValue)
}

func TestLexer_StringLiteral(t *testing.T) {
	tokens := NewLexer(`"hello world"`).ConsumeTokens()
	assert.Equal(t, 1, len(tokens))
	assert.Equal(t, STRING_LIT, tokens[0].Type)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestLexer_BooleanLiterals(t *testing.T) {
	tokens := NewLexer("true false").ConsumeTokens()
	assert.Equal(t, 2, len(tokens))
	assert.Equal(t, BOOL_LIT, tokens[0].Type)
	assert.True(t, tokens[0].BoolVal)
	assert.Equal(t, BOOL_LIT, tokens[1].Type)
	assert.False(t, tokens[1].BoolVal)
}

func TestLexer_ReservedWordsAndIdent(t *testing.T) {
	src := "if then else while do print readint readstr substring length position concatenate begin end exit and or not foo123"
	tokens := NewLexer(src).ConsumeTokens()
	expected := []TokenType{
		IF_KEY, THEN_KEY, ELSE_KEY, WHILE_KEY, DO_KEY, PRINT_KEY,
		READINT_KEY, READSTR_KEY, SUBSTR_KEY, LEN_KEY, POS_KEY, CONCAT_KEY,
		BEGIN_KEY, END_KEY, EXIT_KEY, AND_KEY, OR_KEY, NOT_KEY, IDENT_ID,
	}
	assert.Equal(t, len(expected), len(tokens))
	for i, want := range expected {
		assert.Equal(t, want, tokens[i].Type)
	}
	assert.Equal(t, "foo123", tokens[len(tokens)-1].Literal)
}

func TestLexer_LineTracking(t *testing.T) {
	src := "1\n2\n\n3"
	tokens := NewLexer(src).ConsumeTokens()
	assert.Equal(t, 3, len(tokens))
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 4, tokens[2].Line)
}

func TestLexer_UnterminatedStringIsFatal(t *testing.T) {
	defer func() {
		r := recover()
		assert.NotNil(t, r)
	}()
	NewLexer(`"unterminated`).ConsumeTokens()
	t.Fatal("expected panic for unterminated string literal")
}

func TestLexer_UnexpectedCharacterIsFatal(t *testing.T) {
	defer func() {
		r := recover()
		assert.NotNil(t, r)
	}()
	NewLexer("@").ConsumeTokens()
	t.Fatal("expected panic for unexpected character")
}
