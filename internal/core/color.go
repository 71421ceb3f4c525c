package core

import "image/color"

// Color represents a color for a screen cell or a draw operation.
// Terminal hosts map it to hex truecolor codes, window hosts to NRGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault     Color = iota
	ColorGreen             // food
	ColorBrightWhite       // score text
	ColorOrange            // snake
	ColorDarkGreen         // scoreboard strip
	ColorForest            // game over banner text
	ColorMint              // board background
)

// palette holds the non-premultiplied value of every named color.
// Alpha values give the board its translucent look.
var palette = map[Color]color.NRGBA{
	ColorDefault:     {R: 0, G: 0, B: 0, A: 255},
	ColorGreen:       {R: 80, G: 180, B: 0, A: 160},
	ColorBrightWhite: {R: 255, G: 255, B: 255, A: 255},
	ColorOrange:      {R: 255, G: 80, B: 0, A: 255},
	ColorDarkGreen:   {R: 25, G: 80, B: 0, A: 160},
	ColorForest:      {R: 0, G: 34, B: 3, A: 255},
	ColorMint:        {R: 0xA9, G: 0xF5, B: 0xD0, A: 255},
}

// NRGBA returns the color's value. Unknown colors map to ColorDefault.
func (c Color) NRGBA() color.NRGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[ColorDefault]
}
