package calc

import (
	"errors"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Result is the outcome of a statement that was accepted. HasValue is false
// for assignments and empty lines, which print nothing.
type Result struct {
	Value    int64
	HasValue bool
}

func (r Result) String() string {
	if !r.HasValue {
		return ""
	}
	return strconv.FormatInt(r.Value, 10)
}

// Engine evaluates statements against its own symbol table. It is not safe
// for concurrent use.
type Engine struct {
	syms *Symbols
	log  logrus.FieldLogger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for stage traces. Traces are logged at
// debug level.
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithSymbols starts the engine with an existing symbol table, e.g. one
// restored from a saved session.
func WithSymbols(syms *Symbols) Option {
	return func(e *Engine) {
		e.syms = syms
	}
}

// New creates an engine with an empty symbol table.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.syms == nil {
		e.syms = NewSymbols()
	}
	if e.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		e.log = l
	}
	return e
}

// Symbols returns the engine's symbol table.
func (e *Engine) Symbols() *Symbols {
	return e.syms
}

// Exec runs one line. A rejected statement returns a *Error and leaves the
// symbol table untouched.
func (e *Engine) Exec(line string) (Result, error) {
	log := e.log.WithField("line", line)

	tokens := Tokenize(line)
	log.WithField("tokens", tokens).Debug("Tokenized line")

	stmt, err := classify(tokens)
	if err != nil {
		return Result{}, e.reject(log, err)
	}
	log = log.WithField("statement", stmt.kind)

	switch stmt.kind {
	case statementEmpty:
		return Result{}, nil

	case statementAssign:
		value := stmt.value
		if stmt.source != "" {
			v, ok := e.syms.Get(stmt.source)
			if !ok {
				return Result{}, e.reject(log, newError(KindUnknownVariable, strconv.Quote(stmt.source)+" is not defined"))
			}
			value = v
		}
		e.syms.Set(stmt.target, value)
		log.WithField("value", value).Debugf("Assigned %s", stmt.target)
		return Result{}, nil

	case statementLookup:
		v, ok := e.syms.Get(stmt.target)
		if !ok {
			return Result{}, e.reject(log, newError(KindUnknownVariable, strconv.Quote(stmt.target)+" is not defined"))
		}
		return Result{Value: v, HasValue: true}, nil

	default:
		postfix, err := e.compile(tokens)
		if err != nil {
			return Result{}, e.reject(log, err)
		}
		log.WithField("postfix", postfix.String()).Debug("Converted to postfix")

		v, err := Evaluate(postfix)
		if err != nil {
			return Result{}, e.reject(log, err)
		}
		return Result{Value: v, HasValue: true}, nil
	}
}

// Compile converts an expression line to postfix, resolving variables from
// the symbol table. It does not evaluate anything.
func (e *Engine) Compile(line string) (Postfix, error) {
	return e.compile(Tokenize(line))
}

func (e *Engine) compile(tokens []Token) (Postfix, error) {
	items, err := normalize(tokens, e.syms)
	if err != nil {
		return nil, err
	}
	return toPostfix(items)
}

func (e *Engine) reject(log logrus.FieldLogger, err error) error {
	var calcErr *Error
	if errors.As(err, &calcErr) {
		log.WithFields(logrus.Fields{
			"kind":   calcErr.Kind.String(),
			"detail": calcErr.Detail,
		}).Debug("Statement rejected")
	}
	return err
}
