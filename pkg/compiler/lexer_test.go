package compiler

import (
	"errors"
	"reflect"
	"testing"
)

// lexAll drives the pull lexer until EOF and returns every produced token,
// EOF included.
func lexAll(src string) ([]Token, error) {
	c := New(src)
	var tokens []Token
	for {
		if err := c.Lex(); err != nil {
			return tokens, err
		}
		tokens = append(tokens, c.Current())
		if c.Current().Type == EOF {
			return tokens, nil
		}
	}
}

func TestLex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Empty",
			input: "",
			expected: []Token{
				{Type: EOF, Lexeme: "", Row: 1, Col: 1, Start: 0, End: 0},
			},
		},
		{
			name:  "Whitespace Only",
			input: " \t\n ",
			expected: []Token{
				{Type: EOF, Lexeme: "", Row: 2, Col: 2, Start: 4, End: 4},
			},
		},
		{
			name:  "Empty Declaration",
			input: "main :: proc () { }",
			expected: []Token{
				{Type: IDENTIFIER, Lexeme: "main", Row: 1, Col: 1, Start: 0, End: 4},
				{Type: DOUBLE_COLON, Lexeme: "::", Row: 1, Col: 6, Start: 5, End: 7},
				{Type: PROC, Lexeme: "proc", Row: 1, Col: 9, Start: 8, End: 12},
				{Type: LPAREN, Lexeme: "(", Row: 1, Col: 14, Start: 13, End: 14},
				{Type: RPAREN, Lexeme: ")", Row: 1, Col: 15, Start: 14, End: 15},
				{Type: LBRACE, Lexeme: "{", Row: 1, Col: 17, Start: 16, End: 17},
				{Type: RBRACE, Lexeme: "}", Row: 1, Col: 19, Start: 18, End: 19},
				{Type: EOF, Lexeme: "", Row: 1, Col: 20, Start: 19, End: 19},
			},
		},
		{
			name:  "Multiline Declaration",
			input: "main :: proc () {\n    foo()\n}",
			expected: []Token{
				{Type: IDENTIFIER, Lexeme: "main", Row: 1, Col: 1, Start: 0, End: 4},
				{Type: DOUBLE_COLON, Lexeme: "::", Row: 1, Col: 6, Start: 5, End: 7},
				{Type: PROC, Lexeme: "proc", Row: 1, Col: 9, Start: 8, End: 12},
				{Type: LPAREN, Lexeme: "(", Row: 1, Col: 14, Start: 13, End: 14},
				{Type: RPAREN, Lexeme: ")", Row: 1, Col: 15, Start: 14, End: 15},
				{Type: LBRACE, Lexeme: "{", Row: 1, Col: 17, Start: 16, End: 17},
				{Type: IDENTIFIER, Lexeme: "foo", Row: 2, Col: 5, Start: 22, End: 25},
				{Type: LPAREN, Lexeme: "(", Row: 2, Col: 8, Start: 25, End: 26},
				{Type: RPAREN, Lexeme: ")", Row: 2, Col: 9, Start: 26, End: 27},
				{Type: RBRACE, Lexeme: "}", Row: 3, Col: 1, Start: 28, End: 29},
				{Type: EOF, Lexeme: "", Row: 3, Col: 2, Start: 29, End: 29},
			},
		},
		{
			name:  "Keyword vs Identifiers",
			input: "proc procx _p1",
			expected: []Token{
				{Type: PROC, Lexeme: "proc", Row: 1, Col: 1, Start: 0, End: 4},
				{Type: IDENTIFIER, Lexeme: "procx", Row: 1, Col: 6, Start: 5, End: 10},
				{Type: IDENTIFIER, Lexeme: "_p1", Row: 1, Col: 12, Start: 11, End: 14},
				{Type: EOF, Lexeme: "", Row: 1, Col: 15, Start: 14, End: 14},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := lexAll(tt.input)
			if err != nil {
				t.Fatalf("Lex failed: %v", err)
			}
			if !reflect.DeepEqual(tokens, tt.expected) {
				t.Errorf("token mismatch\ngot:  %v\nwant: %v", tokens, tt.expected)
			}
		})
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
		wantRow int
		wantCol int
	}{
		{"Single Colon", ":x", "Expected ':' after ':'", 1, 2},
		{"Colon At End", "a :", "Expected ':' after ':'", 1, 4},
		{"Unexpected Character", "@", "Unexpected character", 1, 1},
		{"Unexpected Character After Token", "a $", "Unexpected character", 1, 3},
		{"Digit Start", "1foo", "Unexpected character", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lexAll(tt.input)
			if err == nil {
				t.Fatal("expected a lexical error, got none")
			}
			var cerr *Error
			if !errors.As(err, &cerr) {
				t.Fatalf("error is %T, want *Error", err)
			}
			if cerr.Kind != LexicalError {
				t.Errorf("kind = %v, want %v", cerr.Kind, LexicalError)
			}
			if cerr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", cerr.Message, tt.wantMsg)
			}
			if cerr.Row != tt.wantRow || cerr.Col != tt.wantCol {
				t.Errorf("position = %d:%d, want %d:%d", cerr.Row, cerr.Col, tt.wantRow, tt.wantCol)
			}
		})
	}
}

// Re-lexing after end-of-input must keep yielding EOF tokens rather than
// reading past the buffer.
func TestLexEOFIdempotent(t *testing.T) {
	c := New("a ")
	if err := c.Lex(); err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	if c.Current().Type != IDENTIFIER {
		t.Fatalf("first token = %v, want IDENTIFIER", c.Current().Type)
	}

	want := Token{Type: EOF, Lexeme: "", Row: 1, Col: 3, Start: 2, End: 2}
	for i := 0; i < 3; i++ {
		if err := c.Lex(); err != nil {
			t.Fatalf("Lex past end failed on call %d: %v", i, err)
		}
		if got := c.Current(); got != want {
			t.Fatalf("call %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestLexHistory(t *testing.T) {
	c := New("a()")
	for i := 0; i < 4; i++ {
		if err := c.Lex(); err != nil {
			t.Fatalf("Lex failed: %v", err)
		}
	}

	kinds := make([]TokenType, 0, len(c.History()))
	for _, tok := range c.History() {
		kinds = append(kinds, tok.Type)
	}
	want := []TokenType{IDENTIFIER, LPAREN, RPAREN, EOF}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("history kinds = %v, want %v", kinds, want)
	}
}
