package core

import (
	"fmt"
	"image/color"
)

// Color is a palette index shared by every render target.
type Color uint8

// Pastel palette used by the game, plus ink for text.
const (
	ColorDefault Color = iota
	ColorLightBlue
	ColorLightGreen
	ColorLightPink
	ColorLightYellow
	ColorLightPurple
	ColorLightOrange
	ColorLightMint
	ColorInk
)

var palette = map[Color]color.RGBA{
	ColorDefault:     {R: 0, G: 0, B: 0, A: 0},
	ColorLightBlue:   {R: 173, G: 216, B: 230, A: 255},
	ColorLightGreen:  {R: 144, G: 238, B: 144, A: 255},
	ColorLightPink:   {R: 255, G: 182, B: 193, A: 255},
	ColorLightYellow: {R: 255, G: 255, B: 224, A: 255},
	ColorLightPurple: {R: 216, G: 191, B: 216, A: 255},
	ColorLightOrange: {R: 255, G: 218, B: 185, A: 255},
	ColorLightMint:   {R: 240, G: 255, B: 240, A: 255},
	ColorInk:         {R: 0, G: 0, B: 0, A: 255},
}

// RGBA returns the palette entry for c. Unknown colors are transparent.
func (c Color) RGBA() color.RGBA {
	return palette[c]
}

// Hex returns the color as a "#rrggbb" string, or "" for ColorDefault.
func (c Color) Hex() string {
	if c == ColorDefault {
		return ""
	}
	rgba := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
