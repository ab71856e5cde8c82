package calc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// run executes setup lines on a fresh engine and fails the test if any of
// them is rejected.
func run(t *testing.T, setup ...string) *Engine {
	t.Helper()
	e := New()
	for _, line := range setup {
		if _, err := e.Exec(line); err != nil {
			t.Fatalf("setup %q: %v", line, err)
		}
	}
	return e
}

func TestExecExpressions(t *testing.T) {
	tests := []struct {
		name  string
		setup []string
		input string
		want  int64
	}{
		{name: "precedence", input: "3+4*5", want: 23},
		{name: "brackets override precedence", input: "(3+4)*5", want: 35},
		{name: "power groups left to right", input: "2^3^2", want: 64},
		{name: "three minuses", input: "2---2", want: 0},
		{name: "four minuses", input: "2----2", want: 4},
		{name: "plus run", input: "3 +++ 5", want: 8},
		{name: "mixed sign runs", input: "1 +++ 2 * 3 -- 4", want: 11},
		{name: "bracketed product", input: "(1+2)*3", want: 9},
		{name: "nested brackets", input: "8 * 3 + 12 * (4 - 2)", want: 48},
		{name: "subtraction is left associative", input: "10 - 2 - 3", want: 5},
		{name: "division is left associative", input: "100 / 10 / 5", want: 2},
		{name: "floor division", input: "7 / 2", want: 3},
		{name: "floor division negative dividend", input: "-7 / 2", want: -4},
		{name: "floor division negative divisor", input: "7 / -2", want: -4},
		{name: "leading minus", input: "-10", want: -10},
		{name: "leading plus", input: "+10", want: 10},
		{name: "double negation", input: "--5", want: 5},
		{name: "sign after multiplication", input: "2 * -3", want: -6},
		{name: "negated group", input: "-(2+3)", want: -5},
		{name: "negated group inside product", input: "2 * -(1+1)", want: -4},
		{name: "nested negated groups", input: "-(-(4)) + 1", want: 5},
		{name: "zero to the zero", input: "0^0", want: 1},
		{name: "power", input: "2^10", want: 1024},
		{name: "variables", setup: []string{"a = 4", "b = 5"}, input: "a * b - 2", want: 18},
		{name: "negated variable", setup: []string{"n = 3"}, input: "-n * 2", want: -6},
		{name: "variable in brackets", setup: []string{"n = 3"}, input: "(n + 1) ^ 2", want: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := run(t, tt.setup...)
			res, err := e.Exec(tt.input)
			if err != nil {
				t.Fatalf("Exec(%q) error = %v", tt.input, err)
			}
			if !res.HasValue || res.Value != tt.want {
				t.Errorf("Exec(%q) = %+v, want %d", tt.input, res, tt.want)
			}
		})
	}
}

func TestExecErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup []string
		input string
		want  error
	}{
		{name: "extra closing bracket", input: "(1+2))", want: ErrUnbalancedBrackets},
		{name: "missing closing bracket", input: "((1+2)", want: ErrUnbalancedBrackets},
		{name: "closing bracket first", input: ")+1", want: ErrUnbalancedBrackets},
		{name: "unclosed negated group", input: "-(1+2", want: ErrUnbalancedBrackets},
		{name: "operator after sign run", input: "1++*2", want: ErrInvalidExpression},
		{name: "doubled multiplication", input: "1**2", want: ErrInvalidExpression},
		{name: "trailing operator", input: "2+", want: ErrInvalidExpression},
		{name: "leading multiplication", input: "*2", want: ErrInvalidExpression},
		{name: "lone sign", input: "-", want: ErrInvalidExpression},
		{name: "operator before closing bracket", input: "(1+)", want: ErrInvalidExpression},
		{name: "operand before bracket", input: "2(3)+1", want: ErrInvalidExpression},
		{name: "identifier next to digits", setup: []string{"a = 1"}, input: "a2+1", want: ErrInvalidExpression},
		{name: "unknown character", input: "1+$", want: ErrInvalidExpression},
		{name: "division by zero", input: "5/0", want: ErrInvalidExpression},
		{name: "negative exponent", input: "2^-1", want: ErrInvalidExpression},
		{name: "overflow", input: "9223372036854775807 + 1", want: ErrInvalidExpression},
		{name: "literal out of range", input: "99999999999999999999 + 1", want: ErrInvalidExpression},
		{name: "unknown variable in expression", input: "z+1", want: ErrUnknownVariable},
		{name: "unknown variable lookup", input: "z", want: ErrUnknownVariable},
		{name: "case sensitive lookup", setup: []string{"A = 5"}, input: "a", want: ErrUnknownVariable},
		{name: "number lookup", input: "12", want: ErrInvalidIdentifier},
		{name: "mixed identifier lookup", input: "a1", want: ErrInvalidIdentifier},
		{name: "invalid assignment target", input: "a1 = 5", want: ErrInvalidIdentifier},
		{name: "non latin target", input: "ёж = 5", want: ErrInvalidIdentifier},
		{name: "two equals", input: "a = 7 = 8", want: ErrInvalidAssignment},
		{name: "invalid right side", input: "n = a2a", want: ErrInvalidAssignment},
		{name: "computed right side", input: "n = 1 + 2", want: ErrInvalidAssignment},
		{name: "doubled sign in literal", input: "n = --5", want: ErrInvalidAssignment},
		{name: "empty right side", input: "n =", want: ErrInvalidAssignment},
		{name: "empty target", input: "= 5", want: ErrInvalidAssignment},
		{name: "copy unknown variable", input: "a = b", want: ErrUnknownVariable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := run(t, tt.setup...)
			before := e.Symbols().Snapshot()

			res, err := e.Exec(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Exec(%q) error = %v, want %v", tt.input, err, tt.want)
			}
			if res.HasValue {
				t.Errorf("Exec(%q) returned a value alongside an error: %+v", tt.input, res)
			}
			if diff := cmp.Diff(before, e.Symbols().Snapshot()); diff != "" {
				t.Errorf("symbol table changed after failed statement (-before +after):\n%s", diff)
			}
		})
	}
}

func TestExecAssignment(t *testing.T) {
	e := New()

	for _, line := range []string{"x = 5", "y = x", "neg = -5", "pos = +7", "x = 6"} {
		res, err := e.Exec(line)
		if err != nil {
			t.Fatalf("Exec(%q) error = %v", line, err)
		}
		if res.HasValue {
			t.Errorf("Exec(%q) should not produce a value, got %+v", line, res)
		}
	}

	want := map[string]int64{"x": 6, "y": 5, "neg": -5, "pos": 7}
	if diff := cmp.Diff(want, e.Symbols().Snapshot()); diff != "" {
		t.Errorf("symbols mismatch (-want +got):\n%s", diff)
	}

	res, err := e.Exec("y")
	if err != nil {
		t.Fatalf("Exec(y) error = %v", err)
	}
	if res.String() != "5" {
		t.Errorf("Exec(y) = %q, want %q", res.String(), "5")
	}
}

func TestExecEmptyLine(t *testing.T) {
	e := New()
	res, err := e.Exec("   ")
	if err != nil {
		t.Fatalf("Exec() error = %v", err)
	}
	if res.HasValue || res.String() != "" {
		t.Errorf("Exec() = %+v, want no value", res)
	}
}

func TestExecUnknownLeavesTableEmpty(t *testing.T) {
	e := New()
	for _, line := range []string{"z", "z+1", "y = z"} {
		if _, err := e.Exec(line); !errors.Is(err, ErrUnknownVariable) {
			t.Errorf("Exec(%q) error = %v, want %v", line, err, ErrUnknownVariable)
		}
	}
	if n := e.Symbols().Len(); n != 0 {
		t.Errorf("Len() = %d, want 0", n)
	}
}

func TestExecIdempotent(t *testing.T) {
	e := run(t, "a = 3")
	first, err := e.Exec("a * (2 + a) ^ 2")
	if err != nil {
		t.Fatalf("Exec() error = %v", err)
	}
	second, err := e.Exec("a * (2 + a) ^ 2")
	if err != nil {
		t.Fatalf("Exec() error = %v", err)
	}
	if first != second {
		t.Errorf("results differ: %+v then %+v", first, second)
	}
	if first.Value != 75 {
		t.Errorf("Value = %d, want 75", first.Value)
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "precedence", input: "3+4*5", want: "3 4 5 * +"},
		{name: "brackets", input: "(3+4)*5", want: "3 4 + 5 *"},
		{name: "left associative power", input: "2^3^2", want: "2 3 ^ 2 ^"},
		{name: "signed literal", input: "2*-3", want: "2 -3 *"},
		{name: "negated group", input: "-(1+2)", want: "0 1 2 + -"},
		{name: "resolved variable", input: "x*2", want: "4 2 *"},
	}

	e := run(t, "x = 4")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Compile(tt.input)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("Compile(%q) = %q, want %q", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	e := New()
	tests := map[string]string{
		"a1 = 5":    "Invalid identifier",
		"a = 1 = 2": "Invalid assignment",
		"q":         "Unknown variable",
		"1 +":       "Invalid expression",
		"(1+2":      "Unbalanced brackets",
	}
	for input, want := range tests {
		_, err := e.Exec(input)
		if err == nil {
			t.Errorf("Exec(%q) succeeded, want %q", input, want)
			continue
		}
		if err.Error() != want {
			t.Errorf("Exec(%q) error = %q, want %q", input, err.Error(), want)
		}
	}
}
