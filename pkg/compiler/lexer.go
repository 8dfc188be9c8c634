package compiler

import "unicode"

// keywords maps source text to its keyword TokenType.
var keywords = map[string]TokenType{
	"proc": PROC,
}

func isSpace(b byte) bool {
	return unicode.IsSpace(rune(b))
}

func isIdentStart(b byte) bool {
	return unicode.IsLetter(rune(b)) || b == '_'
}

func isIdentPart(b byte) bool {
	return unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b)) || b == '_'
}

// Lex produces the next lexical unit, replacing the compiler's current token
// and appending a copy to the token history. The lexer is pull-based: there
// is no precomputed token stream, only the token produced by the last call.
//
// Once the end of input is reached, further calls keep producing EOF tokens
// at the same position; the end check at entry guards against reading past
// the buffer.
func (c *Compiler) Lex() error {
	for isSpace(c.cursor.peek()) {
		c.cursor.advance()
	}

	if c.cursor.atEnd() {
		end := c.cursor.Point
		c.current = Token{Type: EOF, Lexeme: "", Row: c.cursor.Row, Col: c.cursor.Col, Start: end, End: end}
		c.history.add(c.current)
		return nil
	}

	startRow := c.cursor.Row
	startCol := c.cursor.Col
	start := c.cursor.Point
	ch := c.cursor.peek()

	switch {
	case isIdentStart(ch):
		for isIdentPart(c.cursor.peek()) {
			c.cursor.advance()
		}
		lexeme := c.src[start:c.cursor.Point]
		tt := IDENTIFIER
		if kw, ok := keywords[lexeme]; ok {
			tt = kw
		}
		c.current = Token{Type: tt, Lexeme: lexeme, Row: startRow, Col: startCol, Start: start, End: c.cursor.Point}

	case ch == ':':
		c.cursor.advance()
		if c.cursor.peek() != ':' {
			return c.lexicalErr("Expected ':' after ':'")
		}
		c.cursor.advance()
		c.current = Token{Type: DOUBLE_COLON, Lexeme: "::", Row: startRow, Col: startCol, Start: start, End: c.cursor.Point}

	case ch == '(':
		c.cursor.advance()
		c.current = Token{Type: LPAREN, Lexeme: "(", Row: startRow, Col: startCol, Start: start, End: c.cursor.Point}

	case ch == ')':
		c.cursor.advance()
		c.current = Token{Type: RPAREN, Lexeme: ")", Row: startRow, Col: startCol, Start: start, End: c.cursor.Point}

	case ch == '{':
		c.cursor.advance()
		c.current = Token{Type: LBRACE, Lexeme: "{", Row: startRow, Col: startCol, Start: start, End: c.cursor.Point}

	case ch == '}':
		c.cursor.advance()
		c.current = Token{Type: RBRACE, Lexeme: "}", Row: startRow, Col: startCol, Start: start, End: c.cursor.Point}

	default:
		return c.lexicalErr("Unexpected character")
	}

	c.history.add(c.current)
	return nil
}
