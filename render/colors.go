package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbGridDots    = tcell.NewRGBColor(60, 62, 80)    // Dim dots for empty cells
	RgbBorder      = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbHead        = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbHeadCrashed = tcell.NewRGBColor(255, 0, 0)     // Error red
	RgbOrb         = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbStatusText  = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbStatusBg    = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbCrashedBg   = tcell.NewRGBColor(200, 50, 50)   // Red status when crashed

	// Body gradient endpoints, head side to tail side
	RgbBodyNear = tcell.NewRGBColor(50, 255, 50) // Bright green
	RgbBodyFar  = tcell.NewRGBColor(0, 110, 0)   // Dark green
)

// BodyColor returns the gradient color for segment index out of length
// Index 0 is next to the head
func BodyColor(index, length int) tcell.Color {
	if length <= 1 || index <= 0 {
		return RgbBodyNear
	}
	if index >= length-1 {
		return RgbBodyFar
	}

	t := float64(index) / float64(length-1)
	nr, ng, nb := RgbBodyNear.RGB()
	fr, fg, fb := RgbBodyFar.RGB()
	return tcell.NewRGBColor(
		lerp(nr, fr, t),
		lerp(ng, fg, t),
		lerp(nb, fb, t),
	)
}

func lerp(a, b int32, t float64) int32 {
	return a + int32(float64(b-a)*t)
}
