package design

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Contrast labels a text colour against the assumed light canvas.
type Contrast string

const (
	LowContrast  Contrast = "Low Contrast"
	HighContrast Contrast = "High Contrast"
)

// brightnessThreshold is the luma above which text reads as too light.
const brightnessThreshold = 125

// Brightness returns the perceptual brightness (0-255) of a #RRGGBB colour
// using luma weights without gamma correction. ok is false when the input is
// not a #RRGGBB colour.
func Brightness(hex string) (brightness float64, ok bool) {
	if !IsHexColor(hex) {
		return 0, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, false
	}
	r, g, b := c.RGB255()
	return float64(299*int(r)+587*int(g)+114*int(b)) / 1000, true
}

// ClassifyContrast labels hex as low contrast when its brightness exceeds
// 125. Input that is not #RRGGBB is reported as high contrast.
func ClassifyContrast(hex string) Contrast {
	brightness, ok := Brightness(hex)
	if !ok {
		return HighContrast
	}
	if brightness > brightnessThreshold {
		return LowContrast
	}
	return HighContrast
}

// High reports whether c is the high contrast label.
func (c Contrast) High() bool {
	return c == HighContrast
}
