package internal

import (
	"fmt"
	"strconv"
)

// PrintTree prints the parenthesized form of the parsed expression.
func (s *runState) PrintTree() {
	if s.expr == nil {
		return
	}
	s.logger.Println(s.expr.accept(stringVisitor{}).(string))
}

// stringVisitor renders expressions in prefix form, e.g.
// "1 + 2 * 3" becomes "(+ 1 (* 2 3))".
type stringVisitor struct{}

func (v stringVisitor) visitBinaryExpr(expr *binaryExpr) R {
	return fmt.Sprintf("(%s %v %v)",
		expr.operator.lexeme,
		expr.left.accept(v),
		expr.right.accept(v),
	)
}

func (v stringVisitor) visitGroupingExpr(expr *groupingExpr) R {
	return fmt.Sprintf("(group %v)", expr.expression.accept(v))
}

func (v stringVisitor) visitLiteralExpr(expr *literalExpr) R {
	switch value := expr.value.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case string:
		return value
	default:
		return fmt.Sprintf("%v", value)
	}
}

func (v stringVisitor) visitUnaryExpr(expr *unaryExpr) R {
	return fmt.Sprintf("(%s %v)", expr.operator.lexeme, expr.right.accept(v))
}
