package chart

import (
	"image/color"
	"math"
)

// viridis anchors, evenly spaced from 0 to 1.
var viridis = []color.RGBA{
	{68, 1, 84, 255},
	{72, 40, 120, 255},
	{62, 74, 137, 255},
	{49, 104, 142, 255},
	{38, 130, 142, 255},
	{31, 158, 137, 255},
	{53, 183, 121, 255},
	{109, 205, 89, 255},
	{180, 222, 44, 255},
	{253, 231, 37, 255},
}

// Viridis maps v in [0, 1] to the viridis color scale. Values outside are
// clamped, NaN is the lowest color.
func Viridis(v float64) color.RGBA {
	if math.IsNaN(v) || v <= 0 {
		return viridis[0]
	}
	if v >= 1 {
		return viridis[len(viridis)-1]
	}
	pos := v * float64(len(viridis)-1)
	i := int(pos)
	t := pos - float64(i)
	a, b := viridis[i], viridis[i+1]
	lerp := func(x, y uint8) uint8 { return uint8(math.Round(float64(x) + t*(float64(y)-float64(x)))) }
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), 255}
}

// textColor returns a readable text color over bg.
func textColor(bg color.RGBA) color.Color {
	luma := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if luma > 140 {
		return color.Black
	}
	return color.White
}
