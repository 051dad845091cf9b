package ast

import (
	"github.com/quill-lang/quill/internal/token"
	"github.com/quill-lang/quill/internal/types"
)

// TokenProvider is implemented by any node that can provide its primary
// token. Used for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
}

// Expression is a Node that produces a value. The parser owns construction;
// the analyzer reads the tree and records types on it.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Identifier references a local variable or parameter.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()       {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token { return i.Token }

// SelfExpression references the receiver of the enclosing method.
type SelfExpression struct {
	Token token.Token
}

func (s *SelfExpression) expressionNode()       {}
func (s *SelfExpression) TokenLiteral() string  { return s.Token.Lexeme }
func (s *SelfExpression) GetToken() token.Token { return s.Token }

// IntegerLiteral is an integer literal.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()       {}
func (il *IntegerLiteral) TokenLiteral() string  { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token { return il.Token }

// RealLiteral is a floating-point literal.
type RealLiteral struct {
	Token token.Token
	Value float64
}

func (rl *RealLiteral) expressionNode()       {}
func (rl *RealLiteral) TokenLiteral() string  { return rl.Token.Lexeme }
func (rl *RealLiteral) GetToken() token.Token { return rl.Token }

// BooleanLiteral is a boolean literal.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()       {}
func (bl *BooleanLiteral) TokenLiteral() string  { return bl.Token.Lexeme }
func (bl *BooleanLiteral) GetToken() token.Token { return bl.Token }

// NoValueLiteral is the literal denoting the absent value of an optional.
type NoValueLiteral struct {
	Token token.Token
}

func (nl *NoValueLiteral) expressionNode()       {}
func (nl *NoValueLiteral) TokenLiteral() string  { return nl.Token.Lexeme }
func (nl *NoValueLiteral) GetToken() token.Token { return nl.Token }

// ListLiteral is a list literal. An empty list literal has no type of its
// own and requires an expected type from the surrounding context.
type ListLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (ll *ListLiteral) expressionNode()       {}
func (ll *ListLiteral) TokenLiteral() string  { return ll.Token.Lexeme }
func (ll *ListLiteral) GetToken() token.Token { return ll.Token }

// TypeExpression names a type in expression position: the callee of a
// type-method or initializer call.
type TypeExpression struct {
	Token token.Token
	Type  types.Type
}

func (te *TypeExpression) expressionNode()       {}
func (te *TypeExpression) TokenLiteral() string  { return te.Token.Lexeme }
func (te *TypeExpression) GetToken() token.Token { return te.Token }

// PropertyAccess reads a stored property of the receiver expression.
type PropertyAccess struct {
	Token    token.Token
	Receiver Expression
	Name     string
}

func (pa *PropertyAccess) expressionNode()       {}
func (pa *PropertyAccess) TokenLiteral() string  { return pa.Token.Lexeme }
func (pa *PropertyAccess) GetToken() token.Token { return pa.Token }
