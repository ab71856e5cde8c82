package calc

import (
	"fmt"
	"math"
)

// Evaluate runs a postfix expression on a value stack and returns the
// single value left on it.
func Evaluate(p Postfix) (int64, error) {
	stack := make([]int64, 0, len(p))
	for _, e := range p {
		if !e.IsOperator() {
			stack = append(stack, e.Value)
			continue
		}
		if len(stack) < 2 {
			return 0, newError(KindInvalidExpression, fmt.Sprintf("operator %q needs two operands", e.Op))
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		v, err := apply(e.Op, a, b)
		if err != nil {
			return 0, err
		}
		stack = append(stack, v)
	}
	if len(stack) != 1 {
		return 0, newError(KindInvalidExpression, fmt.Sprintf("expression leaves %d values", len(stack)))
	}
	return stack[0], nil
}

func apply(op byte, a, b int64) (int64, error) {
	switch op {
	case '+':
		return add(a, b)
	case '-':
		return sub(a, b)
	case '*':
		return mul(a, b)
	case '/':
		return floorDiv(a, b)
	case '^':
		return pow(a, b)
	default:
		return 0, newError(KindInvalidExpression, fmt.Sprintf("unknown operator %q", op))
	}
}

func overflow(op string, a, b int64) error {
	return newError(KindInvalidExpression, fmt.Sprintf("%d %s %d overflows int64", a, op, b))
}

func add(a, b int64) (int64, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, overflow("+", a, b)
	}
	return s, nil
}

func sub(a, b int64) (int64, error) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, overflow("-", a, b)
	}
	return d, nil
}

func mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || p/b != a {
		return 0, overflow("*", a, b)
	}
	return p, nil
}

// floorDiv rounds the quotient toward negative infinity, so -7/2 is -4.
func floorDiv(a, b int64) (int64, error) {
	if b == 0 {
		return 0, newError(KindInvalidExpression, "division by zero")
	}
	if a == math.MinInt64 && b == -1 {
		return 0, overflow("/", a, b)
	}
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q, nil
}

func pow(a, b int64) (int64, error) {
	if b < 0 {
		return 0, newError(KindInvalidExpression, fmt.Sprintf("negative exponent %d", b))
	}
	result := int64(1)
	base := a
	for exp := b; exp > 0; exp >>= 1 {
		var err error
		if exp&1 == 1 {
			if result, err = mul(result, base); err != nil {
				return 0, overflow("^", a, b)
			}
		}
		if exp > 1 {
			if base, err = mul(base, base); err != nil {
				return 0, overflow("^", a, b)
			}
		}
	}
	return result, nil
}

func negate(v int64) (int64, error) {
	if v == math.MinInt64 {
		return 0, newError(KindInvalidExpression, fmt.Sprintf("-(%d) overflows int64", v))
	}
	return -v, nil
}
