package query

import (
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes query strings
type Lexer struct {
	input string
	pos   int // offset of ch
	next  int // offset after ch
	ch    rune
}

// NewLexer creates a new lexer
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar reads the next character
func (l *Lexer) readChar() {
	l.pos = l.next
	if l.next >= len(l.input) {
		l.ch = 0
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.next:])
	l.ch = r
	l.next += size
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// readWhile consumes characters while accept holds and returns the consumed text
func (l *Lexer) readWhile(accept func(rune) bool) string {
	start := l.pos
	for !l.atEOF() && accept(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// NextToken returns the next token
func (l *Lexer) NextToken() Token {
	start := l.pos
	if l.atEOF() {
		return Token{Type: TokenEOF, Pos: start}
	}

	single := func(typ TokenType) Token {
		l.readChar()
		return Token{Type: typ, Value: l.input[start:l.pos], Pos: start}
	}

	switch l.ch {
	case '(':
		return single(TokenLParen)
	case ')':
		return single(TokenRParen)
	case '.':
		return single(TokenDot)
	case ',':
		return single(TokenComma)
	case '*':
		return single(TokenStar)
	}

	switch {
	case unicode.IsSpace(l.ch):
		return Token{Type: TokenSpace, Value: l.readWhile(unicode.IsSpace), Pos: start}
	case isIdentRune(l.ch):
		return Token{Type: TokenIdent, Value: l.readWhile(isIdentRune), Pos: start}
	default:
		return single(TokenOther)
	}
}

// Tokenize returns all tokens from the input, ending with a TokenEOF.
func Tokenize(input string) []Token {
	lexer := NewLexer(input)
	var tokens []Token

	for {
		tok := lexer.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			break
		}
	}

	return tokens
}
