package compiler

// Compiler holds all state for a single compilation: the source text, the
// read cursor, the token produced by the last Lex call, the procedure table,
// and the append-only token history. One Compiler per source file; nothing
// here is shared across compilations and there is no package-level state.
type Compiler struct {
	src     string
	cursor  Cursor
	current Token
	procs   []*Procedure
	history tokenHistory
}

// New creates a compiler over source. Lex, Parse and GenerateAsm are driven
// by the caller; Compile runs the whole pipeline in one call.
func New(source string) *Compiler {
	return &Compiler{src: source, cursor: newCursor(source)}
}

// Source returns the text being compiled.
func (c *Compiler) Source() string {
	return c.src
}

// Current returns the token produced by the most recent Lex call. Before the
// first Lex call it is the zero Token.
func (c *Compiler) Current() Token {
	return c.current
}

// Position returns a copy of the cursor for read-only inspection.
func (c *Compiler) Position() Cursor {
	return c.cursor
}

// History returns every token produced so far, in production order. The log
// is observational: the parser never consults it.
func (c *Compiler) History() []Token {
	return c.history.tokens
}

// tokenHistory is an append-only log of produced tokens, kept for the
// step visualizer.
type tokenHistory struct {
	tokens []Token
}

func (h *tokenHistory) add(tok Token) {
	h.tokens = append(h.tokens, tok)
}

// Compile parses src and returns the generated assembly text. On any error
// no output is produced.
func Compile(src string) (string, error) {
	c := New(src)
	if err := c.Parse(); err != nil {
		return "", err
	}
	return c.GenerateAsm(), nil
}
