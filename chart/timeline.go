package chart

import (
	"io"

	"github.com/etnz/exposure"
)

// Timeline draws the maturity timeline as a grid of stocks by period start,
// colored on a viridis scale from 0 to the largest amount.
func Timeline(w io.Writer, t *exposure.Timeline, currency string) error {
	width := labelWidth + max(len(t.Starts), 1)*cellWidth + margin
	height := headerSpace + max(len(t.Stocks), 1)*cellHeight + legendSpace + margin
	c, err := newCanvas(width, height)
	if err != nil {
		return err
	}
	c.drawTitle("Maturity Timeline (" + t.Period.String() + ")")
	if len(t.Starts) == 0 || len(t.Stocks) == 0 {
		c.drawEmpty("no maturity")
		return c.encode(w)
	}

	top := t.Max().InexactFloat64()
	for j, start := range t.Starts {
		x := float64(labelWidth + j*cellWidth + cellWidth/2)
		c.SetRGB(0, 0, 0)
		c.DrawStringAnchored(start.String(), x, headerSpace-10, 0.5, 0)
	}
	for i, stock := range t.Stocks {
		y := float64(headerSpace + i*cellHeight)
		c.SetRGB(0, 0, 0)
		c.DrawStringAnchored(stock, labelWidth-8, y+cellHeight/2, 1, 0.5)
		for j := range t.Starts {
			v := 0.0
			if top > 0 {
				v = t.Totals[i][j].InexactFloat64() / top
			}
			c.SetColor(Viridis(v))
			c.DrawRectangle(float64(labelWidth+j*cellWidth), y, cellWidth-1, cellHeight-1)
			c.Fill()
		}
	}
	c.drawLegend(formatShort(0, currency), formatShort(top, currency))
	return c.encode(w)
}
