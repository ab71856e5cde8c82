package calc

import (
	"fmt"
	"strconv"
)

type itemKind int

const (
	itemValue itemKind = iota
	itemOperator
	itemLParen
	itemRParen
)

// infixItem is one element of a normalized infix expression. Signs are
// already folded into values and identifiers are already resolved.
type infixItem struct {
	kind  itemKind
	value int64
	op    byte
}

func (it infixItem) String() string {
	switch it.kind {
	case itemValue:
		return strconv.FormatInt(it.value, 10)
	case itemOperator:
		return string(it.op)
	case itemLParen:
		return "("
	default:
		return ")"
	}
}

type normalizer struct {
	tokens []Token
	pos    int
	syms   *Symbols
	out    []infixItem

	// depth counts brackets written by the user.
	depth int
	// closeAt holds the depths at which a negated group "(0-(...))" needs its
	// extra closing bracket.
	closeAt []int
}

// normalize collapses sign runs, folds unary signs into their operands,
// resolves identifiers and rejects operator sequences that cannot form an
// expression. The token slice is never modified.
func normalize(tokens []Token, syms *Symbols) ([]infixItem, error) {
	n := &normalizer{tokens: tokens, syms: syms}
	if err := n.run(); err != nil {
		return nil, err
	}
	return n.out, nil
}

func (n *normalizer) run() error {
	// expectOperand is true at the start, after '(' and after any operator.
	expectOperand := true
	for n.pos < len(n.tokens) {
		tok := n.tokens[n.pos]
		switch {
		case tok.isSign():
			negative, end := collapseSigns(n.tokens, n.pos)
			n.pos = end
			if expectOperand {
				operand, err := n.unary(negative)
				if err != nil {
					return err
				}
				expectOperand = !operand
				continue
			}
			op := byte('+')
			if negative {
				op = '-'
			}
			n.emit(infixItem{kind: itemOperator, op: op})
			expectOperand = true

		case tok.Kind == TokenOperator:
			if expectOperand {
				return newError(KindInvalidExpression, fmt.Sprintf("operator %q is missing its left operand", tok.Text))
			}
			n.emit(infixItem{kind: itemOperator, op: tok.Text[0]})
			n.pos++
			expectOperand = true

		case tok.isOperand():
			if !expectOperand {
				return newError(KindInvalidExpression, fmt.Sprintf("%q follows an operand without an operator", tok.Text))
			}
			v, err := n.resolve(tok, false)
			if err != nil {
				return err
			}
			n.emit(infixItem{kind: itemValue, value: v})
			n.pos++
			expectOperand = false

		case tok.Kind == TokenLParen:
			if !expectOperand {
				return newError(KindInvalidExpression, "bracket follows an operand without an operator")
			}
			n.emit(infixItem{kind: itemLParen})
			n.depth++
			n.pos++

		case tok.Kind == TokenRParen:
			if n.depth == 0 {
				return newError(KindUnbalancedBrackets, "closing bracket without an opening one")
			}
			if expectOperand {
				return newError(KindInvalidExpression, "closing bracket where an operand was expected")
			}
			n.emit(infixItem{kind: itemRParen})
			n.depth--
			for len(n.closeAt) > 0 && n.closeAt[len(n.closeAt)-1] == n.depth {
				n.emit(infixItem{kind: itemRParen})
				n.closeAt = n.closeAt[:len(n.closeAt)-1]
			}
			n.pos++

		default:
			return newError(KindInvalidExpression, fmt.Sprintf("unexpected %q", tok.Text))
		}
	}
	if expectOperand {
		return newError(KindInvalidExpression, "expression ends with an operator")
	}
	return nil
}

// unary applies a collapsed sign in operand position to whatever follows
// it. It reports whether an operand was consumed.
func (n *normalizer) unary(negative bool) (bool, error) {
	if n.pos >= len(n.tokens) {
		return false, newError(KindInvalidExpression, "sign without an operand")
	}
	next := n.tokens[n.pos]
	switch {
	case next.isOperand():
		v, err := n.resolve(next, negative)
		if err != nil {
			return false, err
		}
		n.emit(infixItem{kind: itemValue, value: v})
		n.pos++
		return true, nil
	case next.Kind == TokenLParen:
		// -(x) becomes (0-(x)) so the postfix form only has binary operators.
		if negative {
			n.emit(infixItem{kind: itemLParen}, infixItem{kind: itemValue, value: 0}, infixItem{kind: itemOperator, op: '-'})
			n.closeAt = append(n.closeAt, n.depth)
		}
		return false, nil
	default:
		return false, newError(KindInvalidExpression, fmt.Sprintf("sign followed by %q", next.Text))
	}
}

// resolve turns a number or identifier token into its value.
func (n *normalizer) resolve(tok Token, negative bool) (int64, error) {
	if tok.Kind == TokenNumber {
		text := tok.Text
		if negative {
			text = "-" + text
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return 0, newError(KindInvalidExpression, fmt.Sprintf("literal %s is out of range", text))
		}
		return v, nil
	}

	v, ok := n.syms.Get(tok.Text)
	if !ok {
		return 0, newError(KindUnknownVariable, fmt.Sprintf("%q is not defined", tok.Text))
	}
	if negative {
		return negate(v)
	}
	return v, nil
}

func (n *normalizer) emit(items ...infixItem) {
	n.out = append(n.out, items...)
}

// collapseSigns reduces the run of '+' and '-' starting at pos to a single
// sign. It returns true for an odd number of '-' and the index after the run.
func collapseSigns(tokens []Token, pos int) (negative bool, end int) {
	end = pos
	for end < len(tokens) && tokens[end].isSign() {
		if tokens[end].isOperator('-') {
			negative = !negative
		}
		end++
	}
	return negative, end
}
