/*
File    : prim/eval/eval_test.go
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/primlang/prim/parser"
)

func run(t *testing.T, src string, stdin string) (stdout string, panicked any) {
	t.Helper()
	var out bytes.Buffer
	e := New()
	e.SetWriter(&out)
	e.SetReader(strings.NewReader(stdin))

	defer func() {
		panicked = recover()
	}()
	prog := parser.NewParser(src).Parse()
	e.Run(prog)
	return out.String(), nil
}

func TestEval_HelloWorld(t *testing.T) {
	out, rec := run(t, `print("hello")`, "")
	assert.Nil(t, rec)
	assert.Equal(t, "hello\n", out)
}

func TestEval_RightAssociativeMinus(t *testing.T) {
	out, rec := run(t, `print(10 - 3 - 2)`, "")
	assert.Nil(t, rec)
	assert.Equal(t, "9\n", out)
}

func TestEval_WhileCountdown(t *testing.T) {
	out, rec := run(t, `i := 3; while i > 0 do begin print(i); i := i - 1 end`, "")
	assert.Nil(t, rec)
	assert.Equal(t, "3\n2\n1\n", out)
}

func TestEval_DoWhileRunsOnce(t *testing.T) {
	out, rec := run(t, `i := 0; do i := i + 1 while i < 0; print(i)`, "")
	assert.Nil(t, rec)
	assert.Equal(t, "1\n", out)
}

func TestEval_TypePinningIsFatal(t *testing.T) {
	_, rec := run(t, `x := 1; x := "a"`, "")
	assert.NotNil(t, rec)
	assert.Contains(t, recoverMessage(rec), "Variable type does not match.")
}

func TestEval_DanglingElseBindsToNearestIf(t *testing.T) {
	out, rec := run(t, `if true then if false then print(1) else print(2)`, "")
	assert.Nil(t, rec)
	assert.Equal(t, "2\n", out)
}

func TestEval_SubstringBounds(t *testing.T) {
	out, rec := run(t, `print(substring("abcdef", 2, 4))`, "")
	assert.Nil(t, rec)
	assert.Equal(t, "bcd\n", out)

	out2, rec2 := run(t, `print(substring("abc", 10, 20))`, "")
	assert.Nil(t, rec2)
	assert.Equal(t, "\n", out2)
}

func TestEval_PositionSentinel(t *testing.T) {
	out, rec := run(t, `print(position("hello", "ll"))`, "")
	assert.Nil(t, rec)
	assert.Equal(t, "2\n", out)

	out2, rec2 := run(t, `print(position("hello", "z"))`, "")
	assert.Nil(t, rec2)
	assert.Equal(t, "0\n", out2)
}

func TestEval_ReadintParseFailureIsFatal(t *testing.T) {
	_, rec := run(t, `x := readint`, "abc\n")
	assert.NotNil(t, rec)
	assert.Contains(t, recoverMessage(rec), "Input to readint must be of type NUM.")
}

func TestEval_ReadintThenPrint(t *testing.T) {
	out, rec := run(t, `x := readint; print(x)`, "42\n")
	assert.Nil(t, rec)
	assert.Equal(t, "42\n", out)
}

func TestEval_ReadstrThenPrint(t *testing.T) {
	out, rec := run(t, `s := readstr; print(s)`, "hello world\n")
	assert.Nil(t, rec)
	assert.Equal(t, "hello world\n", out)
}

func TestEval_ConcatAndLength(t *testing.T) {
	out, rec := run(t, `print(length(concatenate("foo", "bar")))`, "")
	assert.Nil(t, rec)
	assert.Equal(t, "6\n", out)
}

func TestEval_UnaryMinusBindsTighterThanTimes(t *testing.T) {
	out, rec := run(t, `print(-2 * 3)`, "")
	assert.Nil(t, rec)
	assert.Equal(t, "-6\n", out)
}

func TestEval_IntegerDivisionTruncates(t *testing.T) {
	out, rec := run(t, `print(5 / 2)`, "")
	assert.Nil(t, rec)
	assert.Equal(t, "2\n", out)
}

func TestEval_BoolopDoesNotShortCircuit(t *testing.T) {
	// Both arms of 'or' are evaluated even when the left is already true:
	// each readint call consumes one line, so the trailing print(readint)
	// sees the third line only if the right arm consumed the second one,
	// even though the left arm alone already decides the result.
	out, rec := run(t, `if (readint = 1) or (readint = 9) then print(1); print(readint)`, "1\n2\n3\n")
	assert.Nil(t, rec)
	assert.Equal(t, "1\n3\n", out)
}

func TestEval_IfConditionMustBeBool(t *testing.T) {
	// A bare NUM is not a bool_expr, so the parser rejects it before the
	// evaluator's runtime condition check is ever reached.
	_, rec := run(t, `if 1 then print(1)`, "")
	assert.NotNil(t, rec)
	assert.Contains(t, recoverMessage(rec), "Syntax error at token 'then'")
}

func TestEval_BinopRequiresNum(t *testing.T) {
	_, rec := run(t, `print("a" + 1)`, "")
	assert.NotNil(t, rec)
	assert.Contains(t, recoverMessage(rec), "Binary operator + can only be applied to arguments of type NUM.")
}

func TestEval_ExitStopsExecution(t *testing.T) {
	out, rec := run(t, `print(1); exit; print(2)`, "")
	assert.Nil(t, rec)
	assert.Equal(t, "1\n", out)
}

func recoverMessage(rec any) string {
	if err, ok := rec.(error); ok {
		return err.Error()
	}
	return ""
}
