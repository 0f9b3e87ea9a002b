package query

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// controlWords are matched against the whole trimmed line, ignoring case
var controlWords = map[string]CommandKind{
	"h":      CommandHelp,
	"help":   CommandHelp,
	"q":      CommandQuit,
	"quit":   CommandQuit,
	"exit":   CommandQuit,
	"schema": CommandSchema,
}

// Parser parses DQS queries from a token stream.
//
// Clause arguments are the raw input text between an opening parenthesis
// and its matching closing parenthesis.
type Parser struct {
	input  string
	tokens []Token
	depth  []int // parenthesis nesting level of each token
}

// NewParser creates a parser over tokens produced from input
func NewParser(input string, tokens []Token) *Parser {
	p := &Parser{
		input:  input,
		tokens: tokens,
		depth:  make([]int, len(tokens)),
	}

	// A closing parenthesis shares the level of its opening one.
	level := 0
	for i, tok := range tokens {
		if tok.Type == TokenRParen && level > 0 {
			level--
		}
		p.depth[i] = level
		if tok.Type == TokenLParen {
			level++
		}
	}
	return p
}

// Parse parses one input line
func Parse(line string) (*Command, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return &Command{Kind: CommandNone}, nil
	}
	if kind, ok := controlWords[strings.ToLower(trimmed)]; ok {
		return &Command{Kind: kind}, nil
	}

	if err := ValidateQuery(line); err != nil {
		return nil, err
	}

	tokens := Tokenize(line)
	if err := ValidateTokens(tokens); err != nil {
		return nil, err
	}

	return NewParser(line, tokens).parseCommand()
}

// token returns the token at i, or EOF when i is out of range
func (p *Parser) token(i int) Token {
	if i < 0 || i >= len(p.tokens) {
		return Token{Type: TokenEOF, Pos: len(p.input)}
	}
	return p.tokens[i]
}

// isIdent reports whether the token at i is the identifier name
func (p *Parser) isIdent(i int, name string) bool {
	tok := p.token(i)
	return tok.Type == TokenIdent && tok.Value == name
}

// topLevel reports whether the token at i sits outside every parenthesis
func (p *Parser) topLevel(i int) bool {
	return i >= 0 && i < len(p.depth) && p.depth[i] == 0
}

// find returns the index of the first token satisfying match, or -1
func (p *Parser) find(match func(i int) bool) int {
	for i := range p.tokens {
		if match(i) {
			return i
		}
	}
	return -1
}

// matching returns the index of the parenthesis closing the one at open, or -1
func (p *Parser) matching(open int) int {
	level := 0
	for i := open; i < len(p.tokens); i++ {
		switch p.tokens[i].Type {
		case TokenLParen:
			level++
		case TokenRParen:
			level--
			if level == 0 {
				return i
			}
		}
	}
	return -1
}

// between returns the raw input strictly between two tokens
func (p *Parser) between(open, closing int) string {
	return p.input[p.tokens[open].End():p.tokens[closing].Pos]
}

// arguments returns the text inside the parenthesis opened at open and the
// index of its closing parenthesis
func (p *Parser) arguments(open int) (string, int, error) {
	closing := p.matching(open)
	if closing < 0 {
		return "", -1, fmt.Errorf("%w: '(' at offset %d is never closed", ErrUnbalancedParens, p.tokens[open].Pos)
	}
	return p.between(open, closing), closing, nil
}

// isLoadAt reports whether a top-level load( starts at i
func (p *Parser) isLoadAt(i int) bool {
	return p.topLevel(i) && p.isLoadTokenAt(i)
}

// isSelectMarkerAt reports whether a top-level select() starts at i
func (p *Parser) isSelectMarkerAt(i int) bool {
	return p.topLevel(i) && p.isSelectTokenAt(i)
}

// isLoadTokenAt reports whether load( starts at i, at any depth
func (p *Parser) isLoadTokenAt(i int) bool {
	return p.isIdent(i, "load") && p.token(i+1).Type == TokenLParen
}

// isSelectTokenAt reports whether select() starts at i, at any depth
func (p *Parser) isSelectTokenAt(i int) bool {
	return p.isIdent(i, "select") &&
		p.token(i+1).Type == TokenLParen && p.token(i+2).Type == TokenRParen
}

// method finds the first top-level .name(...) clause and returns its arguments
func (p *Parser) method(name string) (string, bool, error) {
	at := p.find(func(i int) bool {
		return p.topLevel(i) && p.token(i).Type == TokenDot &&
			p.isIdent(i+1, name) && p.token(i+2).Type == TokenLParen
	})
	if at < 0 {
		return "", false, nil
	}
	args, _, err := p.arguments(at + 2)
	if err != nil {
		return "", false, err
	}
	return args, true, nil
}

// parseCommand classifies the line and dispatches to the load or select parser
func (p *Parser) parseCommand() (*Command, error) {
	hasLoad := p.find(p.isLoadAt) >= 0
	hasSelect := p.find(func(i int) bool {
		return p.topLevel(i) && p.isIdent(i, "select")
	}) >= 0

	// load( and select() at any depth make the line ambiguous, even when
	// one is nested inside the other's arguments.
	mixed := p.find(p.isLoadTokenAt) >= 0 && p.find(p.isSelectTokenAt) >= 0

	switch {
	case mixed || (hasLoad && hasSelect):
		return nil, ErrAmbiguousCommand
	case !hasLoad && !hasSelect:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, strings.TrimSpace(p.input))
	}

	if err := p.checkBalance(); err != nil {
		return nil, err
	}

	if hasLoad {
		spec, err := p.parseLoad()
		if err != nil {
			return nil, err
		}
		return &Command{Kind: CommandLoad, Load: spec}, nil
	}

	req, err := p.parseSelect()
	if err != nil {
		return nil, err
	}
	return &Command{Kind: CommandSelect, Projection: req}, nil
}

// checkBalance requires as many '(' as ')'
func (p *Parser) checkBalance() error {
	opening, closing := 0, 0
	for _, tok := range p.tokens {
		switch tok.Type {
		case TokenLParen:
			opening++
		case TokenRParen:
			closing++
		}
	}
	if opening != closing {
		return fmt.Errorf("%w: %d opening, %d closing", ErrUnbalancedParens, opening, closing)
	}
	return nil
}

// parseLoad parses: load ( path ) . separator ( char )
func (p *Parser) parseLoad() (*LoadSpec, error) {
	at := p.find(p.isLoadAt)

	path, pathClose, err := p.arguments(at + 1)
	if err != nil {
		return nil, err
	}

	if p.token(pathClose+1).Type != TokenDot ||
		!p.isIdent(pathClose+2, "separator") ||
		p.token(pathClose+3).Type != TokenLParen {
		return nil, fmt.Errorf("%w: missing .separator(<char>) after load(%s)", ErrMalformedLoad, path)
	}

	separator, _, err := p.arguments(pathClose + 3)
	if err != nil {
		return nil, err
	}

	if !hasExtension(path) {
		return nil, fmt.Errorf("%w: file name %q has no extension", ErrMalformedLoad, path)
	}
	if utf8.RuneCountInString(separator) != 1 {
		return nil, fmt.Errorf("%w: separator %q must be exactly one character", ErrMalformedLoad, separator)
	}
	if err := ValidatePath(path); err != nil {
		return nil, err
	}

	return &LoadSpec{Path: path, Separator: separator}, nil
}

// hasExtension reports whether path has a '.' with at least one character on
// each side
func hasExtension(path string) bool {
	if len(path) < 3 {
		return false
	}
	return strings.Contains(path[1:len(path)-1], ".")
}

// parseSelect parses: select() ... .cols(args) [.limit(n)] [.offset(n)]
func (p *Parser) parseSelect() (*ProjectionRequest, error) {
	if p.find(p.isSelectMarkerAt) < 0 {
		return nil, ErrMissingSelect
	}

	args, found, err := p.method("cols")
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrMissingCols
	}

	req := &ProjectionRequest{}
	if strings.Trim(args, "*") == "" {
		req.All = true
	} else {
		req.Columns = strings.Split(args, ",")
	}

	if req.Limit, err = p.intMethod("limit"); err != nil {
		return nil, err
	}
	if req.Offset, err = p.intMethod("offset"); err != nil {
		return nil, err
	}

	return req, nil
}

// intMethod parses an optional top-level .name(n) clause
func (p *Parser) intMethod(name string) (*int64, error) {
	args, found, err := p.method(name)
	if err != nil || !found {
		return nil, err
	}
	n, err := strconv.ParseInt(args, 10, 64)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: %s(%s)", ErrInvalidLimit, name, args)
	}
	return &n, nil
}
