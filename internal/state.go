package internal

import (
	"errors"
	"os"
)

// loxError is one recorded diagnostic. Syntax errors carry the
// offending token's lexeme in at; lexical errors leave it empty.
type loxError struct {
	err  error
	line int
	at   string
}

// runState stores everything belonging to one scan+parse run:
// the source text, the token sequence, the parse result and all
// diagnostics accumulated along the way.
type runState struct {
	source string
	tokens []token
	expr   expr
	errors []loxError

	logger IPrinter
}

func newRunState(source string, logger IPrinter) *runState {
	return &runState{
		source: source,
		errors: make([]loxError, 0),
		logger: logger,
	}
}

// setError records a lexical error at a source line.
func (s *runState) setError(err error, line int) {
	s.errors = append(s.errors, loxError{
		err:  err,
		line: line,
	})
}

// setTokenError records a syntax error at a token.
func (s *runState) setTokenError(tok token, err error) {
	at := "end"
	if tok.token != tkEOF {
		at = "'" + tok.lexeme + "'"
	}
	s.errors = append(s.errors, loxError{
		err:  err,
		line: tok.line,
		at:   at,
	})
}

// Valid returns true if no errors have been recorded
func (s *runState) Valid() bool {
	return len(s.errors) == 0
}

// PrintErrors prints all recorded errors and reports whether
// there were any.
func (s *runState) PrintErrors() bool {
	for _, e := range s.errors {
		if e.at == "" {
			s.logger.Fprintf(os.Stderr, "[line %d] Error: %v\n", e.line, e.err)
		} else {
			s.logger.Fprintf(os.Stderr, "[line %d] Error at %s: %v\n", e.line, e.at, e.err)
		}
	}
	return !s.Valid()
}

// Lexer errors
var errUnexpectedChar = errors.New("Unexpected character")
var errUnterminatedString = errors.New("Unterminated string")

// Parser errors
var errUnclosedParen = errors.New("Expect ')' after expression")
var errExpectedExpr = errors.New("Expect expression")
