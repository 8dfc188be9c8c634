package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	IDENTIFIER // procedure name, declared or called

	// Keywords
	PROC // "proc"

	// Punctuation
	DOUBLE_COLON // ::
	LPAREN       // (
	RPAREN       // )
	LBRACE       // {
	RBRACE       // }
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:          "EOF",
	IDENTIFIER:   "IDENTIFIER",
	PROC:         "PROC",
	DOUBLE_COLON: "DOUBLE_COLON",
	LPAREN:       "LPAREN",
	RPAREN:       "RPAREN",
	LBRACE:       "LBRACE",
	RBRACE:       "RBRACE",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by Lex. Start and End delimit the
// matched byte span in the source; the visualizer uses them for highlighting.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched; "" for EOF
	Row    int    // 1-based source line where the token begins
	Col    int    // 1-based column where the token begins
	Start  int    // 0-based byte offset of the first matched byte
	End    int    // 0-based byte offset one past the last matched byte
}

func (t Token) String() string {
	return fmt.Sprintf("%-12s %-14q  line %d, col %d", t.Type, t.Lexeme, t.Row, t.Col)
}
