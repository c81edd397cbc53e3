package scan

import (
	"strconv"
	"unicode/utf8"

	"github.com/chidiwilliams/lox/ast"
	"github.com/chidiwilliams/lox/report"
)

// Scanner convert a source text
// into a slice of ast.Token-s
type Scanner struct {
	start    int
	current  int
	line     int
	source   string
	tokens   []ast.Token
	reporter report.Reporter
}

// NewScanner returns a new Scanner. Lexical errors are sent to
// reporter and scanning carries on past them.
func NewScanner(source string, reporter report.Reporter) *Scanner {
	return &Scanner{source: source, line: 1, reporter: reporter}
}

// ScanTokens returns a slice of tokens representing the source text.
// The slice always ends with a single EOF token.
func (s *Scanner) ScanTokens() []ast.Token {
	for !s.isAtEnd() {
		// we're at the beginning of the next lexeme
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, ast.Token{TokenType: ast.TokenEof, Line: s.line})
	return s.tokens
}

func (s *Scanner) scanToken() {
	char := s.advance()
	switch char {
	case '(':
		s.addToken(ast.TokenLeftParen)
	case ')':
		s.addToken(ast.TokenRightParen)
	case '{':
		s.addToken(ast.TokenLeftBrace)
	case '}':
		s.addToken(ast.TokenRightBrace)
	case ',':
		s.addToken(ast.TokenComma)
	case '.':
		s.addToken(ast.TokenDot)
	case '-':
		s.addToken(ast.TokenMinus)
	case '+':
		s.addToken(ast.TokenPlus)
	case ';':
		s.addToken(ast.TokenSemicolon)
	case '*':
		s.addToken(ast.TokenStar)

	// with look-ahead
	case '!':
		s.addToken(s.pick('=', ast.TokenBangEqual, ast.TokenBang))
	case '=':
		s.addToken(s.pick('=', ast.TokenEqualEqual, ast.TokenEqual))
	case '<':
		s.addToken(s.pick('=', ast.TokenLessEqual, ast.TokenLess))
	case '>':
		s.addToken(s.pick('=', ast.TokenGreaterEqual, ast.TokenGreater))
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.addToken(ast.TokenSlash)
		}

	// whitespace
	case ' ', '\r', '\t':
	case '\n':
		s.line++

	// string
	case '"':
		s.string()

	default:
		if isDigit(char) {
			s.number()
		} else if isAlpha(char) {
			s.identifier()
		} else {
			s.unexpected(char)
		}
	}
}

// unexpected reports an unrecognised character. A multi-byte
// UTF-8 sequence is skipped whole so it is reported once.
func (s *Scanner) unexpected(char byte) {
	if char >= utf8.RuneSelf {
		_, size := utf8.DecodeRuneInString(s.source[s.start:])
		s.current = s.start + size
	}
	s.reporter.Error(s.line, "Unexpected character.")
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() byte {
	curr := s.source[s.current]
	s.current++
	return curr
}

func (s *Scanner) addToken(tokenType ast.TokenType) {
	s.addTokenWithLiteral(tokenType, nil)
}

func (s *Scanner) addTokenWithLiteral(tokenType ast.TokenType, literal interface{}) {
	text := s.source[s.start:s.current]
	token := ast.Token{TokenType: tokenType, Lexeme: text, Literal: literal, Line: s.line}
	s.tokens = append(s.tokens, token)
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() {
		return false
	}

	if s.source[s.current] != expected {
		return false
	}

	s.current++
	return true
}

// pick returns matched if the next character is expected
// (consuming it), and otherwise returns single.
func (s *Scanner) pick(expected byte, matched, single ast.TokenType) ast.TokenType {
	if s.match(expected) {
		return matched
	}
	return single
}

func (s *Scanner) string() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		s.reporter.Error(s.line, "Unterminated string.")
		return
	}

	s.advance() // the closing "

	value := s.source[s.start+1 : s.current-1]
	s.addTokenWithLiteral(ast.TokenString, value)
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}

	// look for a fractional part
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	// the lexeme is digits with an optional fraction, so it always parses
	val, _ := strconv.ParseFloat(s.source[s.start:s.current], 64)
	s.addTokenWithLiteral(ast.TokenNumber, val)
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return '\000'
	}
	return s.source[s.current+1]
}

var keywords = map[string]ast.TokenType{
	"and":    ast.TokenAnd,
	"class":  ast.TokenClass,
	"else":   ast.TokenElse,
	"false":  ast.TokenFalse,
	"for":    ast.TokenFor,
	"fun":    ast.TokenFun,
	"if":     ast.TokenIf,
	"nil":    ast.TokenNil,
	"or":     ast.TokenOr,
	"print":  ast.TokenPrint,
	"return": ast.TokenReturn,
	"super":  ast.TokenSuper,
	"this":   ast.TokenThis,
	"true":   ast.TokenTrue,
	"var":    ast.TokenVar,
	"while":  ast.TokenWhile,
}

// identifier scans the longest run of identifier characters
// and only then decides whether it is a keyword.
func (s *Scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	text := s.source[s.start:s.current]
	tokenType, found := keywords[text]
	if !found {
		tokenType = ast.TokenIdentifier
	}
	s.addToken(tokenType)
}

func isDigit(char byte) bool {
	return char >= '0' && char <= '9'
}

func isAlpha(char byte) bool {
	return (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char == '_')
}

func isAlphaNumeric(char byte) bool {
	return isAlpha(char) || isDigit(char)
}
