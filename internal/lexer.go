package internal

import (
	"strconv"
)

// lexer walks the source string once, left to right, keeping the
// window [start, current) over the lexeme being scanned.
type lexer struct {
	start   int
	current int
	line    int

	state *runState
}

var keywords = map[string]tokenType{
	"and":    tkAnd,
	"class":  tkClass,
	"else":   tkElse,
	"false":  tkFalse,
	"for":    tkFor,
	"fun":    tkFun,
	"if":     tkIf,
	"nil":    tkNil,
	"or":     tkOr,
	"print":  tkPrint,
	"return": tkReturn,
	"super":  tkSuper,
	"this":   tkThis,
	"true":   tkTrue,
	"var":    tkVar,
	"while":  tkWhile,
}

// scan tokenizes the whole source. Lexical errors are recorded on the
// state and scanning continues; the token sequence always ends with
// exactly one EOF token.
func (l *lexer) scan() {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.state.tokens = append(l.state.tokens, token{
		token:  tkEOF,
		lexeme: "",
		line:   l.line,
	})
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(tkLeftParen, nil)
	case ')':
		l.emit(tkRightParen, nil)
	case '{':
		l.emit(tkLeftBrace, nil)
	case '}':
		l.emit(tkRightBrace, nil)
	case ',':
		l.emit(tkComma, nil)
	case '.':
		l.emit(tkDot, nil)
	case '-':
		l.emit(tkMinus, nil)
	case '+':
		l.emit(tkPlus, nil)
	case ';':
		l.emit(tkSemicolon, nil)
	case '*':
		l.emit(tkStar, nil)
	case '!':
		if l.match('=') {
			l.emit(tkBangEqual, nil)
		} else {
			l.emit(tkBang, nil)
		}
	case '=':
		if l.match('=') {
			l.emit(tkEqualEqual, nil)
		} else {
			l.emit(tkEqual, nil)
		}
	case '<':
		if l.match('=') {
			l.emit(tkLessEqual, nil)
		} else {
			l.emit(tkLess, nil)
		}
	case '>':
		if l.match('=') {
			l.emit(tkGreaterEqual, nil)
		} else {
			l.emit(tkGreater, nil)
		}
	case '/':
		if l.match('/') {
			// Comment runs until the end of the line
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else {
			l.emit(tkSlash, nil)
		}

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		l.line++

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.state.setError(errUnexpectedChar, l.line)
		}
	}
}

func (l *lexer) string() {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.state.setError(errUnterminatedString, l.line)
		return
	}

	// Consume the closing "
	l.advance()

	// Literal excludes both quotes
	l.emit(tkString, l.state.source[l.start+1:l.current-1])
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	// Only consume the '.' when a digit follows, so "3." stays
	// NUMBER followed by DOT
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	literal, _ := strconv.ParseFloat(l.state.source[l.start:l.current], 64)

	l.emit(tkNumber, literal)
}

func (l *lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	identifier := l.state.source[l.start:l.current]

	tokenType, ok := keywords[identifier]
	if !ok {
		tokenType = tkIdentifier
	}

	l.emit(tokenType, nil)
}

func (l *lexer) advance() byte {
	current := l.state.source[l.current]
	l.current++
	return current
}

// match consumes the next character when it equals c.
func (l *lexer) match(c byte) bool {
	if l.isAtEnd() {
		return false
	}
	if l.state.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.state.source[l.current]
}

func (l *lexer) peekNext() byte {
	if l.current+1 >= len(l.state.source) {
		return 0
	}
	return l.state.source[l.current+1]
}

func (l *lexer) emit(tk tokenType, literal interface{}) {
	l.state.tokens = append(l.state.tokens, token{
		token:   tk,
		lexeme:  l.state.source[l.start:l.current],
		literal: literal,
		line:    l.line,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.state.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
