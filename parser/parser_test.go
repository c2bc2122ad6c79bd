/*
File    : gomix/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"testing"

	"github.com/gomixlang/gomix/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkParserErrors(t *testing.T, p *Parser) {
	t.Helper()
	errors := p.Errors()
	require.Emptyf(t, errors, "parser had %d errors: %v", len(errors), errors)
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input              string
		expectedIdentifier string
		expectedValue      interface{}
	}{
		{"let x = 5;", "x", int64(5)},
		{"let y = true;", "y", true},
		{"let foobar = y;", "foobar", "y"},
	}

	for _, tt := range tests {
		p := New(tt.input)
		program := p.ParseProgram()
		checkParserErrors(t, p)

		require.Len(t, program.Statements, 1)
		stmt := program.Statements[0]
		require.Equal(t, "let", stmt.TokenLiteral())

		letStmt, ok := stmt.(*ast.LetStatement)
		require.True(t, ok)
		assert.Equal(t, tt.expectedIdentifier, letStmt.Name.Value)
		testLiteralExpression(t, letStmt.Value, tt.expectedValue)
	}
}

func TestReturnStatements(t *testing.T) {
	input := `
return 5;
return true;
return foobar;
`
	p := New(input)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	require.Len(t, program.Statements, 3)
	for _, stmt := range program.Statements {
		returnStmt, ok := stmt.(*ast.ReturnStatement)
		require.True(t, ok)
		assert.Equal(t, "return", returnStmt.TokenLiteral())
	}
}

func TestIdentifierExpression(t *testing.T) {
	p := New("foobar;")
	program := p.ParseProgram()
	checkParserErrors(t, p)

	require.Len(t, program.Statements, 1)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	ident, ok := stmt.Expression.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "foobar", ident.Value)
}

func TestIntegerLiteralExpression(t *testing.T) {
	p := New("5;")
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	literal, ok := stmt.Expression.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(5), literal.Value)
}

// TestIntegerLiteralLeadingZero pins spec.md §4.1's "run of ASCII
// digits... no base prefix": a leading zero must not trigger octal
// interpretation.
func TestIntegerLiteralLeadingZero(t *testing.T) {
	p := New("08;")
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	literal, ok := stmt.Expression.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(8), literal.Value)

	p = New("010;")
	program = p.ParseProgram()
	checkParserErrors(t, p)

	stmt = program.Statements[0].(*ast.ExpressionStatement)
	literal, ok = stmt.Expression.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(10), literal.Value)
}

func TestParsingPrefixExpressions(t *testing.T) {
	tests := []struct {
		input    string
		operator string
		value    interface{}
	}{
		{"!5;", "!", int64(5)},
		{"-15;", "-", int64(15)},
		{"!true;", "!", true},
		{"!false;", "!", false},
	}

	for _, tt := range tests {
		p := New(tt.input)
		program := p.ParseProgram()
		checkParserErrors(t, p)

		stmt := program.Statements[0].(*ast.ExpressionStatement)
		exp, ok := stmt.Expression.(*ast.PrefixExpression)
		require.True(t, ok)
		assert.Equal(t, tt.operator, exp.Operator)
		testLiteralExpression(t, exp.Right, tt.value)
	}
}

func TestParsingInfixExpressions(t *testing.T) {
	tests := []struct {
		input      string
		leftValue  interface{}
		operator   string
		rightValue interface{}
	}{
		{"5 + 5;", int64(5), "+", int64(5)},
		{"5 - 5;", int64(5), "-", int64(5)},
		{"5 * 5;", int64(5), "*", int64(5)},
		{"5 / 5;", int64(5), "/", int64(5)},
		{"5 > 5;", int64(5), ">", int64(5)},
		{"5 < 5;", int64(5), "<", int64(5)},
		{"5 == 5;", int64(5), "==", int64(5)},
		{"5 != 5;", int64(5), "!=", int64(5)},
		{"true == true", true, "==", true},
		{"true != false", true, "!=", false},
		{"false == false", false, "==", false},
	}

	for _, tt := range tests {
		p := New(tt.input)
		program := p.ParseProgram()
		checkParserErrors(t, p)

		stmt := program.Statements[0].(*ast.ExpressionStatement)
		testInfixExpression(t, stmt.Expression, tt.leftValue, tt.operator, tt.rightValue)
	}
}

// TestOperatorPrecedenceParsing is the concrete scenario #10 from
// spec.md §8: parsing `a + b * c + d / e - f` then pretty-printing must
// yield `(((a + (b * c)) + (d / e)) - f)`.
func TestOperatorPrecedenceParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"3 + 4; -5 * 5", "(3 + 4)((-5) * 5)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true", "true"},
		{"false", "false"},
		{"3 > 5 == false", "((3 > 5) == false)"},
		{"3 < 5 == true", "((3 < 5) == true)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"2 / (5 + 5)", "(2 / (5 + 5))"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{
			"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))",
			"add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))",
		},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d)"},
		{"add(a * b[2], b[1], 2 * [1, 2][1])", "add((a * (b[2])), (b[1]), (2 * ([1, 2][1])))"},
	}

	for _, tt := range tests {
		p := New(tt.input)
		program := p.ParseProgram()
		checkParserErrors(t, p)

		assert.Equal(t, tt.expected, program.String())
	}
}

func TestIfExpression(t *testing.T) {
	input := `if (x < y) { x }`

	p := New(input)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	require.Len(t, program.Statements, 1)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	exp, ok := stmt.Expression.(*ast.IfExpression)
	require.True(t, ok)

	testInfixExpression(t, exp.Condition, "x", "<", "y")
	require.Len(t, exp.Consequence.Statements, 1)
	consequence := exp.Consequence.Statements[0].(*ast.ExpressionStatement)
	testIdentifier(t, consequence.Expression, "x")
	assert.Nil(t, exp.Alternative)
}

func TestIfElseExpression(t *testing.T) {
	input := `if (x < y) { x } else { y }`

	p := New(input)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	exp, ok := stmt.Expression.(*ast.IfExpression)
	require.True(t, ok)

	require.Len(t, exp.Consequence.Statements, 1)
	require.NotNil(t, exp.Alternative)
	alternative := exp.Alternative.Statements[0].(*ast.ExpressionStatement)
	testIdentifier(t, alternative.Expression, "y")
}

func TestFunctionLiteralParsing(t *testing.T) {
	input := `fn(x, y) { x + y; }`

	p := New(input)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	function, ok := stmt.Expression.(*ast.FunctionLiteral)
	require.True(t, ok)

	require.Len(t, function.Parameters, 2)
	testLiteralExpression(t, function.Parameters[0], "x")
	testLiteralExpression(t, function.Parameters[1], "y")

	require.Len(t, function.Body.Statements, 1)
	bodyStmt := function.Body.Statements[0].(*ast.ExpressionStatement)
	testInfixExpression(t, bodyStmt.Expression, "x", "+", "y")
}

func TestFunctionParameterParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{input: "fn() {};", expected: []string{}},
		{input: "fn(x) {};", expected: []string{"x"}},
		{input: "fn(x, y, z) {};", expected: []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		p := New(tt.input)
		program := p.ParseProgram()
		checkParserErrors(t, p)

		stmt := program.Statements[0].(*ast.ExpressionStatement)
		function := stmt.Expression.(*ast.FunctionLiteral)

		require.Len(t, function.Parameters, len(tt.expected))
		for i, ident := range tt.expected {
			testLiteralExpression(t, function.Parameters[i], ident)
		}
	}
}

func TestCallExpressionParsing(t *testing.T) {
	input := "add(1, 2 * 3, 4 + 5);"

	p := New(input)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	exp, ok := stmt.Expression.(*ast.CallExpression)
	require.True(t, ok)

	testIdentifier(t, exp.Function, "add")
	require.Len(t, exp.Arguments, 3)
	testLiteralExpression(t, exp.Arguments[0], int64(1))
	testInfixExpression(t, exp.Arguments[1], int64(2), "*", int64(3))
	testInfixExpression(t, exp.Arguments[2], int64(4), "+", int64(5))
}

func TestStringLiteralExpression(t *testing.T) {
	p := New(`"hello world";`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	literal, ok := stmt.Expression.(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "hello world", literal.Value)
}

func TestParsingArrayLiterals(t *testing.T) {
	p := New("[1, 2 * 2, 3 + 3]")
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	array, ok := stmt.Expression.(*ast.ArrayLiteral)
	require.True(t, ok)
	require.Len(t, array.Elements, 3)
	testIntegerLiteral(t, array.Elements[0], 1)
	testInfixExpression(t, array.Elements[1], int64(2), "*", int64(2))
	testInfixExpression(t, array.Elements[2], int64(3), "+", int64(3))
}

func TestParsingIndexExpressions(t *testing.T) {
	p := New("myArray[1 + 1]")
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	indexExp, ok := stmt.Expression.(*ast.IndexExpression)
	require.True(t, ok)
	testIdentifier(t, indexExp.Left, "myArray")
	testInfixExpression(t, indexExp.Index, int64(1), "+", int64(1))
}

// TestLetStatementError is the parser-error scenario from spec.md §8:
// `let foo 5;` must record the missing `=`.
func TestLetStatementError(t *testing.T) {
	p := New("let foo 5;")
	p.ParseProgram()
	require.Contains(t, p.Errors(), "expected next token to be = got INT instead")
}

// TestLetStatementMissingIdentifier is spec.md §8's other parser-error
// scenario: `let = 5;` must record the missing identifier.
func TestLetStatementMissingIdentifier(t *testing.T) {
	p := New("let = 5;")
	p.ParseProgram()
	require.Contains(t, p.Errors(), "expected next token to be IDENT got = instead")
}

func TestNoPrefixParseFnError(t *testing.T) {
	p := New(")")
	p.ParseProgram()
	require.Contains(t, p.Errors(), "no prefix parse function for ) found")
}

func TestParseIntegerLiteralOverflow(t *testing.T) {
	p := New(fmt.Sprintf("%d0", int64(1)<<62))
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
}

// -- shared assertion helpers, in the teacher's table-test style --

func testIntegerLiteral(t *testing.T, il ast.Expression, value int64) {
	t.Helper()
	integ, ok := il.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, value, integ.Value)
	assert.Equal(t, fmt.Sprintf("%d", value), integ.TokenLiteral())
}

func testIdentifier(t *testing.T, exp ast.Expression, value string) {
	t.Helper()
	ident, ok := exp.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, value, ident.Value)
	assert.Equal(t, value, ident.TokenLiteral())
}

func testBooleanLiteral(t *testing.T, exp ast.Expression, value bool) {
	t.Helper()
	bo, ok := exp.(*ast.BooleanLiteral)
	require.True(t, ok)
	assert.Equal(t, value, bo.Value)
}

func testLiteralExpression(t *testing.T, exp ast.Expression, expected interface{}) {
	t.Helper()
	switch v := expected.(type) {
	case int:
		testIntegerLiteral(t, exp, int64(v))
	case int64:
		testIntegerLiteral(t, exp, v)
	case string:
		testIdentifier(t, exp, v)
	case bool:
		testBooleanLiteral(t, exp, v)
	default:
		t.Fatalf("type of exp not handled, got=%T", exp)
	}
}

func testInfixExpression(t *testing.T, exp ast.Expression, left interface{}, operator string, right interface{}) {
	t.Helper()
	opExp, ok := exp.(*ast.InfixExpression)
	require.True(t, ok)
	testLiteralExpression(t, opExp.Left, left)
	assert.Equal(t, operator, opExp.Operator)
	testLiteralExpression(t, opExp.Right, right)
}
