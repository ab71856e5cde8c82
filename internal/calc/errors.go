package calc

// Kind classifies why a statement was rejected.
type Kind int

const (
	// KindInvalidIdentifier is a variable name with non-letter characters, or
	// an assignment target or lookup that is not exactly one identifier.
	KindInvalidIdentifier Kind = iota + 1
	// KindInvalidAssignment is a statement with several '=' or a right side
	// that is neither an identifier nor an integer literal.
	KindInvalidAssignment
	// KindUnknownVariable is a reference to a name missing from the symbol table.
	KindUnknownVariable
	// KindInvalidExpression covers malformed operator sequences and failures
	// while evaluating the postfix form.
	KindInvalidExpression
	// KindUnbalancedBrackets is a bracket that has no partner.
	KindUnbalancedBrackets
)

// String returns the diagnostic shown to the user for the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidIdentifier:
		return "Invalid identifier"
	case KindInvalidAssignment:
		return "Invalid assignment"
	case KindUnknownVariable:
		return "Unknown variable"
	case KindInvalidExpression:
		return "Invalid expression"
	case KindUnbalancedBrackets:
		return "Unbalanced brackets"
	default:
		return "Unknown error"
	}
}

// Error is returned by the engine when a statement is rejected. Error()
// yields the user facing diagnostic; Detail says what exactly went wrong.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	return e.Kind.String()
}

// Is reports whether target is an *Error of the same kind, so the sentinel
// values below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidIdentifier  = &Error{Kind: KindInvalidIdentifier}
	ErrInvalidAssignment  = &Error{Kind: KindInvalidAssignment}
	ErrUnknownVariable    = &Error{Kind: KindUnknownVariable}
	ErrInvalidExpression  = &Error{Kind: KindInvalidExpression}
	ErrUnbalancedBrackets = &Error{Kind: KindUnbalancedBrackets}
)

func newError(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}
