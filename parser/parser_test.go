// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.

package parser_test

import (
	"fmt"
	"testing"

	"github.com/probechain/monkey-lang/ast"
	"github.com/probechain/monkey-lang/lexer"
	"github.com/probechain/monkey-lang/parser"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	l := lexer.New("test.monkey", input)
	p := parser.New(l)
	program := p.ParseProgram()
	checkParserErrors(t, p)
	return program
}

func checkParserErrors(t *testing.T, p *parser.Parser) {
	t.Helper()
	errs := p.Errors()
	if len(errs) == 0 {
		return
	}
	t.Errorf("parser had %d errors", len(errs))
	for _, e := range errs {
		t.Errorf("parser error: %s", e)
	}
	t.FailNow()
}

func TestLetStatements(t *testing.T) {
	cases := []struct {
		input              string
		expectedIdentifier string
	}{
		{"let x = 5;", "x"},
		{"let y = true;", "y"},
		{"let foobar = y;", "foobar"},
	}

	for _, c := range cases {
		program := parseProgram(t, c.input)
		if len(program.Statements) != 1 {
			t.Fatalf("program.Statements does not contain 1 statement, got %d", len(program.Statements))
		}
		stmt, ok := program.Statements[0].(*ast.LetStatement)
		if !ok {
			t.Fatalf("statement not *ast.LetStatement, got %T", program.Statements[0])
		}
		if stmt.Name.Value != c.expectedIdentifier {
			t.Errorf("stmt.Name.Value = %q, want %q", stmt.Name.Value, c.expectedIdentifier)
		}
	}
}

func TestReturnStatements(t *testing.T) {
	program := parseProgram(t, "return 5; return 10; return 993322;")
	if len(program.Statements) != 3 {
		t.Fatalf("program.Statements does not contain 3 statements, got %d", len(program.Statements))
	}
	for _, s := range program.Statements {
		stmt, ok := s.(*ast.ReturnStatement)
		if !ok {
			t.Fatalf("statement not *ast.ReturnStatement, got %T", s)
		}
		if stmt.TokenLiteral() != "return" {
			t.Errorf("stmt.TokenLiteral() = %q, want 'return'", stmt.TokenLiteral())
		}
	}
}

func TestOperatorPrecedenceRoundTrip(t *testing.T) {
	cases := []struct{ input, want string }{
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
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d)"},
		{"add(a * b[2], b[1], 2 * [1, 2][1])", "add((a * (b[2])), (b[1]), (2 * ([1, 2][1])))"},
	}

	for _, c := range cases {
		program := parseProgram(t, c.input)
		if got := program.String(); got != c.want {
			t.Errorf("input %q: got %q, want %q", c.input, got, c.want)
		}
	}
}

func TestIfExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	expr, ok := stmt.Expression.(*ast.IfExpression)
	if !ok {
		t.Fatalf("expression not *ast.IfExpression, got %T", stmt.Expression)
	}
	if len(expr.Consequence.Statements) != 1 {
		t.Fatalf("consequence does not contain 1 statement, got %d", len(expr.Consequence.Statements))
	}
	if expr.Alternative != nil {
		t.Errorf("expr.Alternative was not nil")
	}
}

func TestIfElseExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x } else { y }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	expr := stmt.Expression.(*ast.IfExpression)
	if expr.Alternative == nil {
		t.Fatalf("expr.Alternative was nil")
	}
	if len(expr.Alternative.Statements) != 1 {
		t.Fatalf("alternative does not contain 1 statement, got %d", len(expr.Alternative.Statements))
	}
}

func TestFunctionLiteralParsing(t *testing.T) {
	program := parseProgram(t, "fn(x, y) { x + y; }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fn, ok := stmt.Expression.(*ast.FunctionLiteral)
	if !ok {
		t.Fatalf("expression not *ast.FunctionLiteral, got %T", stmt.Expression)
	}
	if len(fn.Parameters) != 2 {
		t.Fatalf("function literal parameters wrong, want 2, got %d", len(fn.Parameters))
	}
	if fn.Parameters[0].Value != "x" || fn.Parameters[1].Value != "y" {
		t.Errorf("parameters = %v, %v, want x, y", fn.Parameters[0].Value, fn.Parameters[1].Value)
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("function body has wrong number of statements, got %d", len(fn.Body.Statements))
	}
}

func TestFunctionLiteralBoundByLetGetsName(t *testing.T) {
	program := parseProgram(t, "let myFn = fn(x) { x };")
	stmt := program.Statements[0].(*ast.LetStatement)
	fn := stmt.Value.(*ast.FunctionLiteral)
	if fn.Name != "myFn" {
		t.Errorf("fn.Name = %q, want %q", fn.Name, "myFn")
	}
	if fn.String() != "fn(x) x" {
		t.Errorf("fn.String() = %q, must not include Name", fn.String())
	}
}

func TestFunctionParameterParsing(t *testing.T) {
	cases := []struct {
		input  string
		params []string
	}{
		{"fn() {};", []string{}},
		{"fn(x) {};", []string{"x"}},
		{"fn(x, y, z) {};", []string{"x", "y", "z"}},
	}
	for _, c := range cases {
		program := parseProgram(t, c.input)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		fn := stmt.Expression.(*ast.FunctionLiteral)
		if len(fn.Parameters) != len(c.params) {
			t.Fatalf("input %q: length params wrong, want %d, got %d", c.input, len(c.params), len(fn.Parameters))
		}
		for i, want := range c.params {
			if fn.Parameters[i].Value != want {
				t.Errorf("input %q: param[%d] = %q, want %q", c.input, i, fn.Parameters[i].Value, want)
			}
		}
	}
}

func TestCallExpressionParsing(t *testing.T) {
	program := parseProgram(t, "add(1, 2 * 3, 4 + 5);")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expression.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expression not *ast.CallExpression, got %T", stmt.Expression)
	}
	if call.Function.(*ast.Identifier).Value != "add" {
		t.Errorf("call.Function = %q, want add", call.Function.String())
	}
	if len(call.Arguments) != 3 {
		t.Fatalf("wrong number of arguments, got %d", len(call.Arguments))
	}
}

func TestStringLiteralExpression(t *testing.T) {
	program := parseProgram(t, `"hello world";`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	lit, ok := stmt.Expression.(*ast.StringLiteral)
	if !ok {
		t.Fatalf("expression not *ast.StringLiteral, got %T", stmt.Expression)
	}
	if lit.Value != "hello world" {
		t.Errorf("lit.Value = %q, want %q", lit.Value, "hello world")
	}
}

func TestParsingArrayLiterals(t *testing.T) {
	program := parseProgram(t, "[1, 2 * 2, 3 + 3]")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	arr, ok := stmt.Expression.(*ast.ArrayLiteral)
	if !ok {
		t.Fatalf("expression not *ast.ArrayLiteral, got %T", stmt.Expression)
	}
	if len(arr.Elements) != 3 {
		t.Fatalf("len(arr.Elements) = %d, want 3", len(arr.Elements))
	}
}

func TestParsingEmptyArrayLiterals(t *testing.T) {
	program := parseProgram(t, "[]")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	arr := stmt.Expression.(*ast.ArrayLiteral)
	if len(arr.Elements) != 0 {
		t.Fatalf("len(arr.Elements) = %d, want 0", len(arr.Elements))
	}
}

func TestParsingIndexExpressions(t *testing.T) {
	program := parseProgram(t, "myArray[1 + 1]")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	idx, ok := stmt.Expression.(*ast.IndexExpression)
	if !ok {
		t.Fatalf("expression not *ast.IndexExpression, got %T", stmt.Expression)
	}
	if idx.Left.(*ast.Identifier).Value != "myArray" {
		t.Errorf("idx.Left = %q, want myArray", idx.Left.String())
	}
}

func TestParsingHashLiteralsStringKeys(t *testing.T) {
	program := parseProgram(t, `{"one": 1, "two": 2, "three": 3}`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	hash, ok := stmt.Expression.(*ast.HashLiteral)
	if !ok {
		t.Fatalf("expression not *ast.HashLiteral, got %T", stmt.Expression)
	}
	if len(hash.Keys) != 3 {
		t.Fatalf("hash.Keys has wrong length, got %d", len(hash.Keys))
	}
	want := map[string]int64{"one": 1, "two": 2, "three": 3}
	for i, k := range hash.Keys {
		lit := k.(*ast.StringLiteral)
		v := hash.Values[i].(*ast.IntegerLiteral)
		if v.Value != want[lit.Value] {
			t.Errorf("value for %q = %d, want %d", lit.Value, v.Value, want[lit.Value])
		}
	}
}

func TestParsingEmptyHashLiteral(t *testing.T) {
	program := parseProgram(t, "{}")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	hash := stmt.Expression.(*ast.HashLiteral)
	if len(hash.Keys) != 0 {
		t.Fatalf("hash.Keys has wrong length, got %d", len(hash.Keys))
	}
}

func TestParsingHashIndexWithFunctionLiteralKey(t *testing.T) {
	// Nested example from spec.md scenario 9: a function literal is a
	// syntactically legal (if semantically invalid at eval time) hash key.
	program := parseProgram(t, `{"name": "Monkey"}[fn(x){x}]`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	idx, ok := stmt.Expression.(*ast.IndexExpression)
	if !ok {
		t.Fatalf("expression not *ast.IndexExpression, got %T", stmt.Expression)
	}
	if _, ok := idx.Index.(*ast.FunctionLiteral); !ok {
		t.Fatalf("idx.Index not *ast.FunctionLiteral, got %T", idx.Index)
	}
}

func TestMissingTokenProducesParserError(t *testing.T) {
	l := lexer.New("test.monkey", "let x 5;")
	p := parser.New(l)
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected parser errors for malformed let statement, got none")
	}
}

func TestIntegerLiteralOverflowIsParserError(t *testing.T) {
	huge := fmt.Sprintf("%d0", int64(1)<<62) // far beyond int64 range once extended
	l := lexer.New("test.monkey", huge)
	p := parser.New(l)
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected a parser error for an out-of-range integer literal")
	}
}
