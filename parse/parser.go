package parse

import (
	"errors"

	"github.com/chidiwilliams/lox/ast"
	"github.com/chidiwilliams/lox/report"
)

// Error is a parse failure at an offending token.
type Error struct {
	Token   ast.Token
	Message string
}

func (e *Error) Error() string {
	return report.Format(e.Token.Line, report.Where(e.Token), e.Message)
}

// Parser parses a flat list of tokens into
// an AST representation of the source program
type Parser struct {
	tokens   []ast.Token
	current  int
	reporter report.Reporter
}

// NewParser returns a new Parser that reads a list of tokens. The list
// must end with an EOF token, as produced by scan.Scanner.
func NewParser(tokens []ast.Token, reporter report.Reporter) *Parser {
	return &Parser{tokens: tokens, reporter: reporter}
}

/**
Parser grammar:

	expression   => equality
	equality     => comparison ( ( "!=" | "==" ) comparison )*
	comparison   => term ( ( ">" | ">=" | "<" | "<=" ) term )*
	term         => factor ( ( "-" | "+" ) factor )*
	factor       => unary ( ( "/" | "*" ) unary )*
	unary        => ( "!" | "-" ) unary | primary
	primary      => NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"

*/

// Parse reads the list of tokens and returns the expression they
// describe. On a syntax error it reports the error once and returns
// a nil Expr together with a *Error.
//
// Tokens after the expression are left unconsumed.
func (p *Parser) Parse() (ast.Expr, error) {
	expr, err := p.expression()
	if err != nil {
		var perr *Error
		if errors.As(err, &perr) {
			p.reporter.TokenError(perr.Token, perr.Message)
		}
		return nil, err
	}
	return expr, nil
}

func (p *Parser) expression() (ast.Expr, error) {
	return p.equality()
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.binary(p.comparison, ast.TokenBangEqual, ast.TokenEqualEqual)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.binary(p.term, ast.TokenGreater, ast.TokenGreaterEqual, ast.TokenLess, ast.TokenLessEqual)
}

func (p *Parser) term() (ast.Expr, error) {
	return p.binary(p.factor, ast.TokenMinus, ast.TokenPlus)
}

func (p *Parser) factor() (ast.Expr, error) {
	return p.binary(p.unary, ast.TokenSlash, ast.TokenStar)
}

// binary parses one left-associative operator layer: an operand at the
// next-tighter level, then any number of (operator operand) pairs folded
// into left-nested BinaryExprs.
func (p *Parser) binary(operand func() (ast.Expr, error), operators ...ast.TokenType) (ast.Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(operators...) {
		operator := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(ast.TokenBang, ast.TokenMinus) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.UnaryExpr{Operator: operator, Right: right}, nil
	}

	return p.primary()
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(ast.TokenFalse):
		return ast.LiteralExpr{Value: false}, nil
	case p.match(ast.TokenTrue):
		return ast.LiteralExpr{Value: true}, nil
	case p.match(ast.TokenNil):
		return ast.LiteralExpr{}, nil
	case p.match(ast.TokenNumber, ast.TokenString):
		return ast.LiteralExpr{Value: p.previous().Literal}, nil
	case p.match(ast.TokenLeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(ast.TokenRightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return ast.GroupingExpr{Expression: expr}, nil
	}

	return nil, p.error(p.peek(), "Expect expression.")
}

// consume checks that the next ast.Token is of the given ast.TokenType and then
// advances to the next token. If the check fails, it returns an error with the given message.
func (p *Parser) consume(tokenType ast.TokenType, message string) (ast.Token, error) {
	if p.check(tokenType) {
		return p.advance(), nil
	}
	return ast.Token{}, p.error(p.peek(), message)
}

func (p *Parser) error(token ast.Token, message string) error {
	return &Error{Token: token, Message: message}
}

// Synchronize discards tokens until a probable statement boundary:
// just past a semicolon, or before a keyword that starts a statement.
// Callers use it to resume after Parse fails.
func (p *Parser) Synchronize() {
	if p.isAtEnd() {
		return
	}

	p.advance()
	for !p.isAtEnd() {
		if p.previous().TokenType == ast.TokenSemicolon {
			return
		}

		switch p.peek().TokenType {
		case ast.TokenClass, ast.TokenFor, ast.TokenFun, ast.TokenIf,
			ast.TokenPrint, ast.TokenReturn, ast.TokenVar, ast.TokenWhile:
			return
		}

		p.advance()
	}
}

// Remaining returns the tokens not yet consumed, excluding EOF.
func (p *Parser) Remaining() []ast.Token {
	return p.tokens[p.current : len(p.tokens)-1]
}

func (p *Parser) match(types ...ast.TokenType) bool {
	for _, tokenType := range types {
		if p.check(tokenType) {
			p.advance()
			return true
		}
	}

	return false
}

func (p *Parser) check(tokenType ast.TokenType) bool {
	if p.isAtEnd() {
		return false
	}

	return p.peek().TokenType == tokenType
}

func (p *Parser) advance() ast.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().TokenType == ast.TokenEof
}

func (p *Parser) peek() ast.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() ast.Token {
	return p.tokens[p.current-1]
}
