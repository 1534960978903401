package internal

import (
	"io"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// RunSourceWithPrinter scans and parses source on a fresh state and
// prints the resulting tree. All accumulated diagnostics are printed
// through p; the return value reports whether the run was clean.
func RunSourceWithPrinter(source string, p IPrinter) bool {
	state := newRunState(source, p)
	lexer := &lexer{
		line:  1,
		state: state,
	}
	parser := &parser{
		state: state,
	}

	lexer.scan()

	if state.PrintErrors() {
		return false
	}

	state.expr = parser.parse()

	if state.PrintErrors() {
		return false
	}

	state.PrintTree()

	return true
}

// ScanSourceWithPrinter scans source and prints one line per token:
// type, lexeme and decoded literal. Lexical errors are printed but do
// not stop the dump.
func ScanSourceWithPrinter(source string, p IPrinter) bool {
	state := newRunState(source, p)
	lexer := &lexer{
		line:  1,
		state: state,
	}

	lexer.scan()

	for _, tok := range state.tokens {
		if tok.literal != nil {
			p.Println(tok.token.String(), tok.lexeme, tok.literal)
		} else {
			p.Println(tok.token.String(), tok.lexeme)
		}
	}

	return !state.PrintErrors()
}
