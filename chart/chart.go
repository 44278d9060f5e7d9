// Package chart draws the exposure views as PNG images.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	cellWidth   = 90
	cellHeight  = 30
	labelWidth  = 160
	headerSpace = 70
	margin      = 20
	legendSpace = 40
	fontSize    = 12
	titleSize   = 16
)

var background = color.White

// faces parses the embedded Go font once.
var faces = sync.OnceValues(func() (*truetype.Font, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	return f, nil
})

func face(size float64) (font.Face, error) {
	f, err := faces()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}

// canvas is a gg context with the chart fonts loaded.
type canvas struct {
	*gg.Context
	text  font.Face
	title font.Face
}

func newCanvas(width, height int) (*canvas, error) {
	text, err := face(fontSize)
	if err != nil {
		return nil, err
	}
	title, err := face(titleSize)
	if err != nil {
		return nil, err
	}
	c := &canvas{Context: gg.NewContext(width, height), text: text, title: title}
	c.SetColor(background)
	c.Clear()
	c.SetFontFace(text)
	return c, nil
}

func (c *canvas) drawTitle(s string) {
	c.SetFontFace(c.title)
	c.SetColor(color.Black)
	c.DrawStringAnchored(s, float64(c.Width())/2, margin, 0.5, 0.5)
	c.SetFontFace(c.text)
}

// drawEmpty writes a placeholder message in the middle of the canvas.
func (c *canvas) drawEmpty(s string) {
	c.SetColor(color.Gray{Y: 100})
	c.DrawStringAnchored(s, float64(c.Width())/2, float64(c.Height())/2, 0.5, 0.5)
}

// drawLegend draws the color scale from low to high along the bottom.
func (c *canvas) drawLegend(low, high string) {
	y := float64(c.Height() - legendSpace + 10)
	x0, x1 := float64(labelWidth), float64(c.Width()-margin)
	const steps = 50
	step := (x1 - x0) / steps
	for i := range steps {
		c.SetColor(Viridis(float64(i) / (steps - 1)))
		c.DrawRectangle(x0+float64(i)*step, y, step+1, 10)
		c.Fill()
	}
	c.SetColor(color.Black)
	c.DrawStringAnchored(low, x0, y+20, 0, 0.5)
	c.DrawStringAnchored(high, x1, y+20, 1, 0.5)
}

func (c *canvas) encode(w io.Writer) error {
	if err := c.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
