package calc

import (
	"strconv"
	"strings"
)

// Element is one entry of a postfix expression: an operator when Op is
// non-zero, otherwise the literal Value.
type Element struct {
	Op    byte
	Value int64
}

// IsOperator reports whether the element is an operator.
func (e Element) IsOperator() bool {
	return e.Op != 0
}

func (e Element) String() string {
	if e.IsOperator() {
		return string(e.Op)
	}
	return strconv.FormatInt(e.Value, 10)
}

// Postfix is an expression in reverse Polish order.
type Postfix []Element

// String renders the expression with single spaces, e.g. "3 4 5 * +".
func (p Postfix) String() string {
	parts := make([]string, len(p))
	for i, e := range p {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

func precedence(op byte) int {
	switch op {
	case '^':
		return 3
	case '*', '/':
		return 2
	default:
		return 1
	}
}

// toPostfix reorders a normalized infix expression with the shunting-yard
// algorithm. Operators of equal precedence pop before the incoming one is
// pushed, so every operator groups left to right, '^' included.
func toPostfix(items []infixItem) (Postfix, error) {
	out := make(Postfix, 0, len(items))
	// ops holds operators and '(' markers, the latter stored as Op '('.
	var ops []byte
	for _, it := range items {
		switch it.kind {
		case itemValue:
			out = append(out, Element{Value: it.value})
		case itemOperator:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top == '(' || precedence(top) < precedence(it.op) {
					break
				}
				out = append(out, Element{Op: top})
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, it.op)
		case itemLParen:
			ops = append(ops, '(')
		case itemRParen:
			matched := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top == '(' {
					matched = true
					break
				}
				out = append(out, Element{Op: top})
			}
			if !matched {
				return nil, newError(KindUnbalancedBrackets, "closing bracket without an opening one")
			}
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top == '(' {
			return nil, newError(KindUnbalancedBrackets, "opening bracket is never closed")
		}
		out = append(out, Element{Op: top})
	}
	return out, nil
}
