/*
File    : gomix/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the syntax tree GoMix's Parser produces and the
// Evaluator consumes. Rather than the deep visitor hierarchy the original
// C++ implementation uses (see spec.md §9, "Design Notes"), every node is
// one of two tagged marker interfaces — Statement or Expression — each
// carrying its own payload. Pretty-printing is a String method on each node
// type, and evaluation is a type switch over the concrete node types.
package ast

import "bytes"

// Node is the root interface every AST node implements. TokenLiteral
// returns the literal text of the token a node's syntactic form began
// with (spec.md §3's "every parsed node retains the token at which its
// syntactic form began"); String renders the node back to source text.
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement is a Node that appears directly in a Program or Block body.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that yields a value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of every parsed GoMix source: an ordered sequence
// of top-level Statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// String concatenates every statement's own String representation with no
// separator, as spec.md §6 specifies for the AST pretty-print of a Program.
func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}
