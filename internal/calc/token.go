// Package calc implements the integer expression engine behind gocalc.
// A line is tokenized, classified as an assignment, a lookup or an
// expression, and expressions are normalized, converted to postfix and
// evaluated on a value stack against a per-engine symbol table.
package calc

import "fmt"

// TokenKind identifies the lexical class of a token.
type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenIdent
	TokenOperator
	TokenAssign
	TokenLParen
	TokenRParen
	// TokenInvalid holds a single character the lexer does not recognize.
	TokenInvalid
)

var tokenKindNames = map[TokenKind]string{
	TokenNumber:   "NUMBER",
	TokenIdent:    "IDENT",
	TokenOperator: "OPERATOR",
	TokenAssign:   "ASSIGN",
	TokenLParen:   "LPAREN",
	TokenRParen:   "RPAREN",
	TokenInvalid:  "INVALID",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is one lexical unit of a line.
type Token struct {
	Kind TokenKind
	Text string
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}

// isOperator reports whether the token is the given arithmetic operator.
func (t Token) isOperator(op byte) bool {
	return t.Kind == TokenOperator && t.Text[0] == op
}

// isSign reports whether the token is '+' or '-'.
func (t Token) isSign() bool {
	return t.isOperator('+') || t.isOperator('-')
}

func (t Token) isOperand() bool {
	return t.Kind == TokenNumber || t.Kind == TokenIdent
}
