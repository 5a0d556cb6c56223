// pkg/render/color.go
package render

import "image/color"

// BoardColors holds all the color definitions needed to render the board.
type BoardColors struct {
	BackgroundColor color.RGBA
	BorderColor     color.RGBA
	PathColor       color.RGBA
	LegalColor      color.RGBA
	IllegalColor    color.RGBA
	EntryColor      color.RGBA
	ExitColor       color.RGBA
	HealthColor     color.RGBA
	HealthLostColor color.RGBA
	ObstacleColor   color.RGBA
	PulseColor      color.RGBA
	StrokeWidth     float32
	HealthBarHeight float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
