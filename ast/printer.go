//go:generate go run ../cmd/astgen

package ast

import (
	"fmt"
	"strings"
)

// Printer renders an expression as a parenthesized S-expression,
// e.g. "(* (group (+ 1 2)) 3)".
type Printer struct{}

// Print returns a string representation of an Expr node
func (a Printer) Print(expr Expr) string {
	return Accept[string](expr, a)
}

func (a Printer) VisitBinaryExpr(expr BinaryExpr) string {
	return a.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

func (a Printer) VisitGroupingExpr(expr GroupingExpr) string {
	return a.parenthesize("group", expr.Expression)
}

func (a Printer) VisitLiteralExpr(expr LiteralExpr) string {
	return literalString(expr.Value)
}

func (a Printer) VisitUnaryExpr(expr UnaryExpr) string {
	return a.parenthesize(expr.Operator.Lexeme, expr.Right)
}

func (a Printer) parenthesize(name string, exprs ...Expr) string {
	var str strings.Builder

	str.WriteString("(" + name)
	for _, expr := range exprs {
		str.WriteString(" " + a.Print(expr))
	}
	str.WriteString(")")

	return str.String()
}

func literalString(value interface{}) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprint(value)
}
