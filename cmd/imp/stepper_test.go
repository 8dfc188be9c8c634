package main

import (
	"image/color"
	"testing"

	"github.com/laluxx/imp/pkg/compiler"
	"github.com/laluxx/imp/pkg/theme"
)

func TestNewStepperGameLexesFirstToken(t *testing.T) {
	g, err := newStepperGame("main :: proc () { }")
	if err != nil {
		t.Fatalf("newStepperGame failed: %v", err)
	}
	if !g.single {
		t.Error("single-highlight mode should start enabled")
	}
	tok := g.comp.Current()
	if tok.Type != compiler.IDENTIFIER || tok.Lexeme != "main" {
		t.Errorf("first token = %v, want the main identifier", tok)
	}
}

func TestStepperRunsToCompletion(t *testing.T) {
	g, err := newStepperGame("main :: proc () { }")
	if err != nil {
		t.Fatalf("newStepperGame failed: %v", err)
	}

	for i := 0; i < 100 && !g.done; i++ {
		g.step()
	}
	if !g.done {
		t.Fatal("stepper did not reach completion")
	}
	if g.comp.Current().Type != compiler.EOF {
		t.Errorf("final token = %v, want EOF", g.comp.Current().Type)
	}
	// Tokens after the first: ::, proc, (, ), {, }, EOF.
	if g.stepCount != 7 {
		t.Errorf("stepCount = %d, want 7", g.stepCount)
	}
	if g.lexErr != nil {
		t.Errorf("unexpected lex error: %v", g.lexErr)
	}
}

func TestStepperSurfacesLexError(t *testing.T) {
	g, err := newStepperGame("main :")
	if err != nil {
		t.Fatalf("newStepperGame failed: %v", err)
	}

	g.step()
	if g.lexErr == nil {
		t.Fatal("expected the malformed ':' to surface as a lex error")
	}
	if !g.done {
		t.Error("stepper should stop after a lex error")
	}
}

func TestTokenColor(t *testing.T) {
	th := theme.Builtin()[0]
	tests := []struct {
		tt   compiler.TokenType
		want color.RGBA
	}{
		{compiler.IDENTIFIER, th.Variable},
		{compiler.DOUBLE_COLON, th.Function},
		{compiler.PROC, th.Keyword},
		{compiler.LPAREN, th.Preprocessor},
		{compiler.RPAREN, th.Preprocessor},
		{compiler.LBRACE, th.Type},
		{compiler.RBRACE, th.Type},
		{compiler.EOF, th.Text},
	}
	for _, tt := range tests {
		if got := tokenColor(th, tt.tt); got != tt.want {
			t.Errorf("tokenColor(%v) = %v, want %v", tt.tt, got, tt.want)
		}
	}
}
