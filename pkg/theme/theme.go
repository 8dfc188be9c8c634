// Package theme holds the color palettes used by the lex-step visualizer.
// Cycling state belongs to the caller; Next and Previous only wrap an index.
package theme

import "image/color"

// Theme is one visualizer palette. The fields name the roles the highlighter
// assigns to token kinds rather than concrete hues.
type Theme struct {
	Name         string
	Bg           color.RGBA
	Text         color.RGBA
	Keyword      color.RGBA
	Variable     color.RGBA
	Function     color.RGBA
	Type         color.RGBA
	Preprocessor color.RGBA
	Cursor       color.RGBA
	Region       color.RGBA
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}

var gruvbox = Theme{
	Name:         "gruvbox",
	Bg:           rgb(0x282828),
	Text:         rgb(0xebdbb2),
	Keyword:      rgb(0xfb4934),
	Variable:     rgb(0x83a598),
	Function:     rgb(0xb8bb26),
	Type:         rgb(0xfabd2f),
	Preprocessor: rgb(0x8ec07c),
	Cursor:       rgb(0xebdbb2),
	Region:       rgb(0xd3869b),
}

var nord = Theme{
	Name:         "nord",
	Bg:           rgb(0x2e3440),
	Text:         rgb(0xd8dee9),
	Keyword:      rgb(0x81a1c1),
	Variable:     rgb(0x8fbcbb),
	Function:     rgb(0x88c0d0),
	Type:         rgb(0xebcb8b),
	Preprocessor: rgb(0xb48ead),
	Cursor:       rgb(0xd8dee9),
	Region:       rgb(0xa3be8c),
}

var paper = Theme{
	Name:         "paper",
	Bg:           rgb(0xfafafa),
	Text:         rgb(0x1a1a1a),
	Keyword:      rgb(0xa626a4),
	Variable:     rgb(0x4078f2),
	Function:     rgb(0x50a14f),
	Type:         rgb(0xc18401),
	Preprocessor: rgb(0x986801),
	Cursor:       rgb(0x1a1a1a),
	Region:       rgb(0xe45649),
}

// Builtin returns the built-in palettes in cycling order.
func Builtin() []Theme {
	return []Theme{gruvbox, nord, paper}
}

// Next returns the index after i among n palettes, wrapping around.
func Next(i, n int) int {
	return (i + 1) % n
}

// Previous returns the index before i among n palettes, wrapping around.
func Previous(i, n int) int {
	return (i - 1 + n) % n
}
