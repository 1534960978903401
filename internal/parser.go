package internal

// parser consumes the lexer's token sequence and builds a single
// expression tree. Every grammar method returns the built node or the
// error that aborted this expression attempt; errors are recorded on
// the state where they originate and then propagated by value, so a
// half-built binary chain is never returned past a failure.
type parser struct {
	current int

	state *runState
}

// parse returns the root expression, or nil after at least one
// recorded syntax error.
func (p *parser) parse() expr {
	expression, err := p.expression()
	if err != nil {
		return nil
	}
	return expression
}

func (p *parser) expression() (expr, error) {
	return p.equality()
}

func (p *parser) equality() (expr, error) {
	left, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(tkBangEqual, tkEqualEqual) {
		operator := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		left = &binaryExpr{
			left:     left,
			operator: operator,
			right:    right,
		}
	}
	return left, nil
}

func (p *parser) comparison() (expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &binaryExpr{
			left:     left,
			operator: operator,
			right:    right,
		}
	}
	return left, nil
}

func (p *parser) term() (expr, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(tkMinus, tkPlus) {
		operator := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &binaryExpr{
			left:     left,
			operator: operator,
			right:    right,
		}
	}
	return left, nil
}

func (p *parser) factor() (expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(tkSlash, tkStar) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &binaryExpr{
			left:     left,
			operator: operator,
			right:    right,
		}
	}
	return left, nil
}

func (p *parser) unary() (expr, error) {
	if p.match(tkBang, tkMinus) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &unaryExpr{
			operator: operator,
			right:    right,
		}, nil
	}
	return p.primary()
}

func (p *parser) primary() (expr, error) {
	if p.match(tkFalse) {
		return &literalExpr{value: false}, nil
	}
	if p.match(tkTrue) {
		return &literalExpr{value: true}, nil
	}
	if p.match(tkNil) {
		return &literalExpr{value: nil}, nil
	}
	if p.match(tkNumber, tkString) {
		return &literalExpr{value: p.previous().literal}, nil
	}
	if p.match(tkLeftParen) {
		expression, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(tkRightParen, errUnclosedParen); err != nil {
			return nil, err
		}
		return &groupingExpr{expression: expression}, nil
	}

	return nil, p.error(p.peek(), errExpectedExpr)
}

// consume advances past a token of the expected type, or records and
// returns a syntax error. This is the only place besides the primary
// fallback where syntax errors originate.
func (p *parser) consume(tk tokenType, err error) (*token, error) {
	if p.check(tk) {
		return p.advance(), nil
	}
	return nil, p.error(p.peek(), err)
}

func (p *parser) error(tok token, err error) error {
	p.state.setTokenError(tok, err)
	return err
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...tokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.current++
			return true
		}
	}
	return false
}

func (p *parser) check(token tokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().token == token
}

func (p *parser) peek() token {
	return p.state.tokens[p.current]
}

func (p *parser) previous() *token {
	return &p.state.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}

// synchronize discards tokens until a statement boundary: just after a
// ';', or just before a keyword that starts a statement. Once the
// grammar grows statements this runs after each recorded error; today
// nothing above parse calls it.
func (p *parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().token == tkSemicolon {
			return
		}

		switch p.peek().token {
		case tkClass:
			return
		case tkFun:
			return
		case tkVar:
			return
		case tkFor:
			return
		case tkIf:
			return
		case tkWhile:
			return
		case tkPrint:
			return
		case tkReturn:
			return
		default:
		}

		p.advance()
	}
}
