// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.

package ast_test

import (
	"testing"

	"github.com/probechain/monkey-lang/ast"
	"github.com/probechain/monkey-lang/token"
)

func TestString(t *testing.T) {
	program := &ast.Program{
		Statements: []ast.Statement{
			&ast.LetStatement{
				Token: token.Token{Type: token.LET, Literal: "let"},
				Name: &ast.Identifier{
					Token: token.Token{Type: token.IDENT, Literal: "myVar"},
					Value: "myVar",
				},
				Value: &ast.Identifier{
					Token: token.Token{Type: token.IDENT, Literal: "anotherVar"},
					Value: "anotherVar",
				},
			},
		},
	}

	want := "let myVar = anotherVar;"
	if program.String() != want {
		t.Errorf("program.String() = %q, want %q", program.String(), want)
	}
}

func TestFunctionLiteralStringHasNoNameDecoration(t *testing.T) {
	fn := &ast.FunctionLiteral{
		Token: token.Token{Type: token.FUNCTION, Literal: "fn"},
		Parameters: []*ast.Identifier{
			{Token: token.Token{Type: token.IDENT, Literal: "x"}, Value: "x"},
		},
		Body: &ast.BlockStatement{
			Statements: []ast.Statement{
				&ast.ExpressionStatement{
					Expression: &ast.Identifier{Token: token.Token{Literal: "x"}, Value: "x"},
				},
			},
		},
		Name: "identity",
	}

	want := "fn(x) x"
	if fn.String() != want {
		t.Errorf("fn.String() = %q, want %q (Name must not affect the printed form)", fn.String(), want)
	}
}
