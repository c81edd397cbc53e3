// Generates AST nodes
package main

import (
	"fmt"
	"go/format"
	"os"
	"strings"
)

// exprTypes describes the expression nodes as "Name : Field Type, ...".
var exprTypes = []string{
	"Binary   : Left Expr, Operator Token, Right Expr",
	"Grouping : Expression Expr",
	"Literal  : Value interface{}",
	"Unary    : Operator Token, Right Expr",
}

func main() {
	writeAst("Expr", exprTypes)
}

func writeAst(name string, types []string) {
	src, err := defineAst(name, types)
	if err != nil {
		fmt.Fprintf(os.Stderr, "astgen: %v\n", err)
		os.Exit(1)
	}

	err = os.WriteFile(strings.ToLower(name)+".go", src, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "astgen: %v\n", err)
		os.Exit(1)
	}
}

// nodeType is one parsed line of the grammar description.
type nodeType struct {
	name   string
	fields []string
}

func parseTypes(name string, types []string) ([]nodeType, error) {
	nodes := make([]nodeType, 0, len(types))
	for _, t := range types {
		split := strings.SplitN(t, ":", 2)
		if len(split) != 2 {
			return nil, fmt.Errorf("malformed type description %q", t)
		}

		node := nodeType{name: strings.TrimSpace(split[0]) + name}
		for _, field := range strings.Split(split[1], ",") {
			node.fields = append(node.fields, strings.TrimSpace(field))
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func defineAst(name string, types []string) ([]byte, error) {
	nodes, err := parseTypes(name, types)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("// Code generated by astgen. DO NOT EDIT.\n\n")
	b.WriteString("package ast\n\n")
	b.WriteString("import \"fmt\"\n")
	defineInterface(&b, name)
	defineTypes(&b, name, nodes)
	defineVisitor(&b, name, nodes)

	// Format code with go fmt
	return format.Source([]byte(b.String()))
}

func defineInterface(b *strings.Builder, name string) {
	fmt.Fprintf(b, `
type %s interface {
	%sNode()
}
`, name, strings.ToLower(name))
}

func defineTypes(b *strings.Builder, name string, nodes []nodeType) {
	for _, node := range nodes {
		fmt.Fprintf(b, "\ntype %s struct {\n", node.name)
		for _, field := range node.fields {
			fmt.Fprintf(b, "\t%s\n", field)
		}
		b.WriteString("}\n")

		fmt.Fprintf(b, "\nfunc (%s) %sNode() {}\n", node.name, strings.ToLower(name))
	}
}

func defineVisitor(b *strings.Builder, name string, nodes []nodeType) {
	param := strings.ToLower(name)

	fmt.Fprintf(b, "\ntype %sVisitor[T any] interface {\n", name)
	for _, node := range nodes {
		fmt.Fprintf(b, "\tVisit%s(%s %s) T\n", node.name, param, node.name)
	}
	b.WriteString("}\n")

	fmt.Fprintf(b, "\nfunc Accept[T any](%s %s, visitor %sVisitor[T]) T {\n", param, name, name)
	fmt.Fprintf(b, "\tswitch e := %s.(type) {\n", param)
	for _, node := range nodes {
		fmt.Fprintf(b, "\tcase %s:\n\t\treturn visitor.Visit%s(e)\n", node.name, node.name)
	}
	b.WriteString("\t}\n")
	fmt.Fprintf(b, "\tpanic(fmt.Sprintf(\"ast: unexpected %s %%T\", %s))\n", name, param)
	b.WriteString("}\n")
}
