package internal

import (
	"testing"
)

func parseSource(source string) (expr, *runState) {
	state := scanSource(source)
	parser := &parser{
		state: state,
	}
	return parser.parse(), state
}

func checkTree(t *testing.T, source string, result string) {
	expression, state := parseSource(source)
	if !state.Valid() {
		t.Errorf("parsing %q reported errors: %v", source, state.errors)
		return
	}
	if expression == nil {
		t.Errorf("parsing %q returned no tree", source)
		return
	}
	rendered := expression.accept(stringVisitor{}).(string)
	if rendered != result {
		t.Errorf(
			"Error on: \n%s\n\tTree should be %s instead of %s",
			source,
			result,
			rendered,
		)
	}
}

func checkParseError(t *testing.T, source string, wantErr error, wantAt string) {
	expression, state := parseSource(source)
	if expression != nil {
		t.Errorf("parsing %q should yield no tree, got %v", source, expression.accept(stringVisitor{}))
		return
	}
	if len(state.errors) != 1 {
		t.Errorf("parsing %q should report exactly one error, got %v", source, state.errors)
		return
	}
	if state.errors[0].err != wantErr {
		t.Errorf("parsing %q: expected error %v, got %v", source, wantErr, state.errors[0].err)
	}
	if state.errors[0].at != wantAt {
		t.Errorf("parsing %q: error located at %s, expected %s", source, state.errors[0].at, wantAt)
	}
}

func TestLiterals(t *testing.T) {
	checkTree(t, "1", "1")
	checkTree(t, "3.14", "3.14")
	checkTree(t, "2.50", "2.5")
	checkTree(t, `"abc"`, "abc")
	checkTree(t, "true", "true")
	checkTree(t, "false", "false")
	checkTree(t, "nil", "nil")
}

func TestPrecedence(t *testing.T) {
	// Multiplication binds tighter than addition
	checkTree(t, "1 + 2 * 3", "(+ 1 (* 2 3))")
	checkTree(t, "1 * 2 + 3", "(+ (* 1 2) 3)")
	checkTree(t, "(1 + 2) * 3", "(* (group (+ 1 2)) 3)")

	// Comparison over term, equality over comparison
	checkTree(t, "1 + 2 < 3 + 4", "(< (+ 1 2) (+ 3 4))")
	checkTree(t, "1 < 2 == 3 < 4", "(== (< 1 2) (< 3 4))")
	checkTree(t, "1 >= 2 != 3 <= 4", "(!= (>= 1 2) (<= 3 4))")
}

func TestLeftAssociativity(t *testing.T) {
	checkTree(t, "1 == 2 == 3", "(== (== 1 2) 3)")
	checkTree(t, "1 - 2 - 3", "(- (- 1 2) 3)")
	checkTree(t, "8 / 4 / 2", "(/ (/ 8 4) 2)")
}

func TestUnary(t *testing.T) {
	checkTree(t, "-1", "(- 1)")
	checkTree(t, "!true", "(! true)")
	checkTree(t, "!!false", "(! (! false))")
	checkTree(t, "--1", "(- (- 1))")
	checkTree(t, "-1 * 2", "(* (- 1) 2)")
	checkTree(t, "!1 == 2", "(== (! 1) 2)")
}

func TestGrouping(t *testing.T) {
	checkTree(t, "(1)", "(group 1)")
	checkTree(t, "((1))", "(group (group 1))")
	checkTree(t, "(1 + 2)", "(group (+ 1 2))")
}

func TestUnclosedParen(t *testing.T) {
	checkParseError(t, "(1 + 2", errUnclosedParen, "end")
	checkParseError(t, "(1 + 2 3", errUnclosedParen, "'3'")
}

func TestExpectExpression(t *testing.T) {
	checkParseError(t, "", errExpectedExpr, "end")
	checkParseError(t, "1 +", errExpectedExpr, "end")
	checkParseError(t, "(1 + )", errExpectedExpr, "')'")
	checkParseError(t, "* 1", errExpectedExpr, "'*'")
}

func TestBinaryOperatorTokens(t *testing.T) {
	// Every folded node must hold an operator valid at its level
	expression, state := parseSource("1 + 2 * 3 == 4 < 5")
	if !state.Valid() || expression == nil {
		t.Fatalf("unexpected parse failure: %v", state.errors)
	}
	root, ok := expression.(*binaryExpr)
	if !ok || root.operator.token != tkEqualEqual {
		t.Fatalf("root should fold on ==, got %v", expression)
	}
	left, ok := root.left.(*binaryExpr)
	if !ok || left.operator.token != tkPlus {
		t.Errorf("left of == should fold on +, got %v", root.left)
	}
	right, ok := root.right.(*binaryExpr)
	if !ok || right.operator.token != tkLess {
		t.Errorf("right of == should fold on <, got %v", root.right)
	}
}

func TestSynchronizeAfterSemicolon(t *testing.T) {
	state := scanSource("1 2 3; 4 5")
	p := &parser{state: state}
	p.synchronize()
	if p.peek().lexeme != "4" {
		t.Errorf("synchronize should stop right after ';', stopped at %q", p.peek().lexeme)
	}
}

func TestSynchronizeBeforeStatementKeyword(t *testing.T) {
	state := scanSource("1 2 var x")
	p := &parser{state: state}
	p.synchronize()
	if p.peek().token != tkVar {
		t.Errorf("synchronize should stop before 'var', stopped at %v", p.peek())
	}
}

func TestSynchronizeAtEnd(t *testing.T) {
	state := scanSource("1 2 3")
	p := &parser{state: state}
	p.synchronize()
	if !p.isAtEnd() {
		t.Errorf("synchronize without a boundary should run to EOF, stopped at %v", p.peek())
	}
}
