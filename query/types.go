package query

import "fmt"

// TokenType represents the type of a token
type TokenType int

const (
	TokenIdent  TokenType = iota // letters, digits and underscores
	TokenLParen                  // (
	TokenRParen                  // )
	TokenDot                     // .
	TokenComma                   // ,
	TokenStar                    // *
	TokenSpace                   // run of whitespace
	TokenOther                   // any other single character
	TokenEOF
)

var tokenNames = map[TokenType]string{
	TokenIdent:  "identifier",
	TokenLParen: "'('",
	TokenRParen: "')'",
	TokenDot:    "'.'",
	TokenComma:  "','",
	TokenStar:   "'*'",
	TokenSpace:  "whitespace",
	TokenOther:  "character",
	TokenEOF:    "end of input",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token represents a lexical token. Pos is the byte offset of the token in
// the input.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// End returns the byte offset just past the token.
func (t Token) End() int {
	return t.Pos + len(t.Value)
}

// CommandKind identifies what a parsed line asks for.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandHelp
	CommandQuit
	CommandSchema
	CommandLoad
	CommandSelect
)

func (k CommandKind) String() string {
	switch k {
	case CommandNone:
		return "none"
	case CommandHelp:
		return "help"
	case CommandQuit:
		return "quit"
	case CommandSchema:
		return "schema"
	case CommandLoad:
		return "load"
	case CommandSelect:
		return "select"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// LoadSpec is a parsed load(<path>).separator(<char>) request.
type LoadSpec struct {
	Path      string
	Separator string
}

// ProjectionRequest is a parsed select().cols(...) request.
//
// When All is set Columns is ignored. Columns keeps the order written,
// duplicates included. Limit and Offset are nil unless the query sets them.
type ProjectionRequest struct {
	All     bool
	Columns []string
	Limit   *int64
	Offset  *int64
}

// Command is the result of parsing one input line. Load is set for
// CommandLoad and Projection for CommandSelect.
type Command struct {
	Kind       CommandKind
	Load       *LoadSpec
	Projection *ProjectionRequest
}
