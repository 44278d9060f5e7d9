package chart

import (
	"io"

	"github.com/etnz/exposure"
)

// Heatmap draws h as a grid of stocks by clients colored on a 0 to 100%
// viridis scale, each cell labeled with its percentage.
func Heatmap(w io.Writer, title string, h *exposure.Heatmap) error {
	width := labelWidth + max(len(h.Clients), 1)*cellWidth + margin
	height := headerSpace + max(len(h.Stocks), 1)*cellHeight + legendSpace + margin
	c, err := newCanvas(width, height)
	if err != nil {
		return err
	}
	c.drawTitle(title)
	if len(h.Stocks) == 0 || len(h.Clients) == 0 {
		c.drawEmpty("no exposure")
		return c.encode(w)
	}

	for j, client := range h.Clients {
		x := float64(labelWidth + j*cellWidth + cellWidth/2)
		c.SetRGB(0, 0, 0)
		c.DrawStringAnchored(client, x, headerSpace-10, 0.5, 0)
	}
	for i, stock := range h.Stocks {
		y := float64(headerSpace + i*cellHeight)
		c.SetRGB(0, 0, 0)
		c.DrawStringAnchored(stock, labelWidth-8, y+cellHeight/2, 1, 0.5)
		for j := range h.Clients {
			v := h.Values[i][j]
			bg := Viridis(float64(v) / 100)
			x := float64(labelWidth + j*cellWidth)
			c.SetColor(bg)
			c.DrawRectangle(x, y, cellWidth, cellHeight)
			c.Fill()
			c.SetColor(textColor(bg))
			c.DrawStringAnchored(v.String(), x+cellWidth/2, y+cellHeight/2, 0.5, 0.5)
		}
	}
	c.drawLegend("0%", "100%")
	return c.encode(w)
}
