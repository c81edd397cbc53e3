package ast

import "fmt"

// Node is a plain-data rendering of an expression, shaped for
// structured encoders such as YAML.
type Node struct {
	Kind     string  `yaml:"kind"`
	Operator string  `yaml:"operator,omitempty"`
	Type     string  `yaml:"type,omitempty"`
	Value    *string `yaml:"value,omitempty"`
	Line     int     `yaml:"line,omitempty"`
	Children []Node  `yaml:"children,omitempty"`
}

// Tree converts expr into a Node tree.
func Tree(expr Expr) Node {
	return Accept[Node](expr, treeBuilder{})
}

type treeBuilder struct{}

func (t treeBuilder) VisitBinaryExpr(expr BinaryExpr) Node {
	return Node{
		Kind:     "binary",
		Operator: expr.Operator.Lexeme,
		Line:     expr.Operator.Line,
		Children: []Node{Tree(expr.Left), Tree(expr.Right)},
	}
}

func (t treeBuilder) VisitGroupingExpr(expr GroupingExpr) Node {
	return Node{Kind: "grouping", Children: []Node{Tree(expr.Expression)}}
}

// VisitLiteralExpr records the literal's type next to its text, so
// nil and "nil" (or 1 and "1") stay distinguishable.
func (t treeBuilder) VisitLiteralExpr(expr LiteralExpr) Node {
	node := Node{Kind: "literal", Type: literalType(expr.Value)}
	if expr.Value != nil {
		value := literalString(expr.Value)
		node.Value = &value
	}
	return node
}

func literalType(value interface{}) string {
	switch value.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case float64:
		return "number"
	case string:
		return "string"
	}
	return fmt.Sprintf("%T", value)
}

func (t treeBuilder) VisitUnaryExpr(expr UnaryExpr) Node {
	return Node{
		Kind:     "unary",
		Operator: expr.Operator.Lexeme,
		Line:     expr.Operator.Line,
		Children: []Node{Tree(expr.Right)},
	}
}
