package calc

import (
	"fmt"
	"strconv"
)

type statementKind int

const (
	statementEmpty statementKind = iota
	statementAssign
	statementLookup
	statementExpression
)

func (k statementKind) String() string {
	switch k {
	case statementEmpty:
		return "empty"
	case statementAssign:
		return "assignment"
	case statementLookup:
		return "lookup"
	default:
		return "expression"
	}
}

// statement is a classified line. For assignments either source names the
// variable to copy or value holds the literal.
type statement struct {
	kind   statementKind
	target string
	source string
	value  int64
}

// classify decides what kind of statement the tokens form and validates the
// shape of assignments and lookups. Expressions are validated later by the
// normalizer.
func classify(tokens []Token) (statement, error) {
	if len(tokens) == 0 {
		return statement{kind: statementEmpty}, nil
	}

	eq, assigns := -1, 0
	hasOperator := false
	for i, tok := range tokens {
		switch tok.Kind {
		case TokenAssign:
			if eq < 0 {
				eq = i
			}
			assigns++
		case TokenOperator:
			hasOperator = true
		}
	}

	switch {
	case assigns > 1:
		return statement{}, newError(KindInvalidAssignment, fmt.Sprintf("%d '=' in one statement", assigns))
	case assigns == 1:
		return classifyAssignment(tokens[:eq], tokens[eq+1:])
	case !hasOperator:
		name, ok := identifier(tokens)
		if !ok {
			return statement{}, newError(KindInvalidIdentifier, fmt.Sprintf("%q is not a variable name", joinTokens(tokens)))
		}
		return statement{kind: statementLookup, target: name}, nil
	default:
		return statement{kind: statementExpression}, nil
	}
}

func classifyAssignment(left, right []Token) (statement, error) {
	if len(left) == 0 {
		return statement{}, newError(KindInvalidAssignment, "nothing to assign to")
	}
	target, ok := identifier(left)
	if !ok {
		return statement{}, newError(KindInvalidIdentifier, fmt.Sprintf("%q is not a variable name", joinTokens(left)))
	}

	if source, ok := identifier(right); ok {
		return statement{kind: statementAssign, target: target, source: source}, nil
	}
	value, err := literal(right)
	if err != nil {
		return statement{}, err
	}
	return statement{kind: statementAssign, target: target, value: value}, nil
}

// identifier reports whether tokens are exactly one identifier.
func identifier(tokens []Token) (string, bool) {
	if len(tokens) != 1 || tokens[0].Kind != TokenIdent {
		return "", false
	}
	return tokens[0].Text, true
}

// literal parses an integer literal with at most one leading sign.
func literal(tokens []Token) (int64, error) {
	text := ""
	switch {
	case len(tokens) == 1 && tokens[0].Kind == TokenNumber:
		text = tokens[0].Text
	case len(tokens) == 2 && tokens[0].isSign() && tokens[1].Kind == TokenNumber:
		text = tokens[0].Text + tokens[1].Text
	default:
		return 0, newError(KindInvalidAssignment, fmt.Sprintf("%q is neither a variable nor an integer", joinTokens(tokens)))
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, newError(KindInvalidAssignment, fmt.Sprintf("literal %s is out of range", text))
	}
	return v, nil
}

func joinTokens(tokens []Token) string {
	s := ""
	for _, tok := range tokens {
		s += tok.Text
	}
	return s
}
