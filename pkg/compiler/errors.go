package compiler

import "fmt"

// ErrorKind classifies a compilation failure.
type ErrorKind int

const (
	LexicalError  ErrorKind = iota // malformed or unrecognized input byte
	SyntaxError                    // grammar-rule mismatch
	ResourceError                  // output artifact could not be created
)

var kindNames = [...]string{
	LexicalError:  "lexical",
	SyntaxError:   "syntax",
	ResourceError: "resource",
}

func (k ErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the single failure type surfaced by the compiler. The first error
// aborts the compilation; callers decide whether to terminate the process.
type Error struct {
	Kind    ErrorKind
	Row     int // 1-based line of the failure
	Col     int // 1-based column of the failure
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Row, e.Col, e.Message)
}

// lexicalErr reports a failure at the cursor's current position.
func (c *Compiler) lexicalErr(message string) *Error {
	return &Error{Kind: LexicalError, Row: c.cursor.Row, Col: c.cursor.Col, Message: message}
}

// syntaxErr reports a failure at the offending token. The cursor has already
// moved past the token by the time the parser sees it, so the token's own
// position is the one worth reporting.
func syntaxErr(tok Token, message string) *Error {
	return &Error{Kind: SyntaxError, Row: tok.Row, Col: tok.Col, Message: message}
}
