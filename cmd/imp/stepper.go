package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/laluxx/imp/pkg/compiler"
	"github.com/laluxx/imp/pkg/theme"
)

const (
	screenW = 960
	screenH = 540

	// basicfont.Face7x13 cell geometry
	cellW   = 7
	cellH   = 13
	ascent  = 11
	marginX = 10
	marginY = 60
)

// stepperGame single-steps the lexer, one token per keypress, and paints the
// source buffer with the spans the lexer has classified so far. It holds all
// visualizer state itself and only ever reads from the compiler.
type stepperGame struct {
	comp      *compiler.Compiler
	themes    []theme.Theme
	themeIdx  int
	single    bool // highlight only the current token, not the whole history
	stepCount int
	done      bool
	lexErr    error
}

func newStepperGame(source string) (*stepperGame, error) {
	g := &stepperGame{
		comp:   compiler.New(source),
		themes: theme.Builtin(),
		single: true,
	}
	// Produce the first token so there is something to show.
	if err := g.comp.Lex(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *stepperGame) step() {
	if g.comp.Current().Type == compiler.EOF {
		g.done = true
		return
	}
	if err := g.comp.Lex(); err != nil {
		g.lexErr = err
		g.done = true
		return
	}
	g.stepCount++
}

func (g *stepperGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyJ) ||
		inpututil.IsKeyJustPressed(ebiten.KeyN) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.single = !g.single
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.themeIdx = theme.Previous(g.themeIdx, len(g.themes))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.themeIdx = theme.Next(g.themeIdx, len(g.themes))
	}
	return nil
}

// tokenColor maps a token kind to its face color in th.
func tokenColor(th theme.Theme, tt compiler.TokenType) color.RGBA {
	switch tt {
	case compiler.IDENTIFIER:
		return th.Variable
	case compiler.DOUBLE_COLON:
		return th.Function
	case compiler.PROC:
		return th.Keyword
	case compiler.LPAREN, compiler.RPAREN:
		return th.Preprocessor
	case compiler.LBRACE, compiler.RBRACE:
		return th.Type
	default:
		return th.Text
	}
}

func (g *stepperGame) Draw(screen *ebiten.Image) {
	th := g.themes[g.themeIdx]
	screen.Fill(th.Bg)

	src := g.comp.Source()
	pos := g.comp.Position()
	cur := g.comp.Current()
	face := basicfont.Face7x13

	// Filled block under the cursor cell; the character on top of it is
	// drawn in the background color so it stays readable.
	cx, cy := marginX, marginY
	for i := 0; i < pos.Point && i < len(src); i++ {
		if src[i] == '\n' {
			cx = marginX
			cy += cellH
		} else {
			cx += cellW
		}
	}
	vector.DrawFilledRect(screen, float32(cx), float32(cy), cellW, cellH, th.Cursor, false)

	hist := g.comp.History()
	tokIdx := 0
	x, y := marginX, marginY
	for i := 0; i < len(src); i++ {
		ch := src[i]
		if ch == '\n' {
			x = marginX
			y += cellH
			continue
		}

		var clr color.RGBA
		switch {
		case i == pos.Point:
			clr = th.Bg
		case g.single:
			clr = th.Text
			if i >= cur.Start && i < cur.End {
				clr = tokenColor(th, cur.Type)
			}
		default:
			// History is span-ordered, so the scan index only moves forward.
			for tokIdx < len(hist) && i >= hist[tokIdx].End {
				tokIdx++
			}
			clr = th.Text
			if tokIdx < len(hist) && i >= hist[tokIdx].Start && i < hist[tokIdx].End {
				clr = tokenColor(th, hist[tokIdx].Type)
			}
		}

		text.Draw(screen, string(rune(ch)), face, x, y+ascent, clr)
		x += cellW
	}

	status := fmt.Sprintf("Step: %d, Token: %s, Line: %d, Col: %d",
		g.stepCount, cur.Lexeme, pos.Row, pos.Col)
	text.Draw(screen, status, face, marginX, 20, th.Text)
	text.Draw(screen, "[space/j/n/f] step  [h] highlight mode  [-/=] theme: "+th.Name,
		face, marginX, 36, th.Region)

	switch {
	case g.lexErr != nil:
		text.Draw(screen, g.lexErr.Error(), face, marginX, screenH-10, th.Region)
	case g.done:
		text.Draw(screen, "Lexical analysis complete", face, marginX, screenH-10, th.Region)
	}
}

func (g *stepperGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func runStepper(source string) error {
	g, err := newStepperGame(source)
	if err != nil {
		return err
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("imp - Lex Stepper")
	return ebiten.RunGame(g)
}
