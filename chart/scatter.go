package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"slices"

	"github.com/Rhymond/go-money"
	"github.com/etnz/exposure"
	"github.com/etnz/exposure/date"
)

const (
	scatterWidth  = 900
	minRadius     = 3
	maxRadius     = 18
	scatterTicks  = 5
	scatterBottom = 40
)

// Scatter plots every point by maturity date (x) and stock (y). The disk
// area follows the amount and its color the current exposure percentage.
// Points of amount 0 are drawn as a small outline.
func Scatter(w io.Writer, points []exposure.ScatterPoint) error {
	var stocks []string
	var dates []date.Date
	top := 0.0
	for _, p := range points {
		if !slices.Contains(stocks, p.Stock) {
			stocks = append(stocks, p.Stock)
		}
		dates = append(dates, p.Maturity)
		top = math.Max(top, p.Amount.InexactFloat64())
	}

	height := headerSpace + max(len(stocks), 1)*cellHeight*2 + scatterBottom + legendSpace + margin
	c, err := newCanvas(scatterWidth, height)
	if err != nil {
		return err
	}
	c.drawTitle("Maturity Scatter")
	if len(points) == 0 {
		c.drawEmpty("no maturity")
		return c.encode(w)
	}

	first, last := date.Min(dates...), date.Max(dates...)
	span := float64(last.Sub(first))
	x0, x1 := float64(labelWidth), float64(scatterWidth-margin-maxRadius)
	plotBottom := float64(headerSpace + len(stocks)*cellHeight*2)
	xOf := func(d date.Date) float64 {
		if span == 0 {
			return (x0 + x1) / 2
		}
		return x0 + (x1-x0)*float64(d.Sub(first))/span
	}
	yOf := func(stock string) float64 {
		return float64(headerSpace + slices.Index(stocks, stock)*cellHeight*2 + cellHeight)
	}

	// axes
	c.SetRGB(0.6, 0.6, 0.6)
	c.SetLineWidth(1)
	c.DrawLine(x0, plotBottom, x1, plotBottom)
	c.Stroke()
	for i := 0; i <= scatterTicks; i++ {
		d := first.Add(int(math.Round(span * float64(i) / scatterTicks)))
		x := xOf(d)
		c.DrawLine(x, plotBottom, x, plotBottom+5)
		c.Stroke()
		c.DrawStringAnchored(d.String(), x, plotBottom+18, 0.5, 0.5)
		if span == 0 {
			break
		}
	}
	for _, stock := range stocks {
		c.SetRGB(0, 0, 0)
		c.DrawStringAnchored(stock, labelWidth-8, yOf(stock), 1, 0.5)
	}

	for _, p := range points {
		x, y := xOf(p.Maturity), yOf(p.Stock)
		amount := p.Amount.InexactFloat64()
		if amount <= 0 || top == 0 {
			c.SetRGB(0.6, 0.6, 0.6)
			c.DrawCircle(x, y, minRadius)
			c.Stroke()
			continue
		}
		r := minRadius + (maxRadius-minRadius)*math.Sqrt(amount/top)
		col := Viridis(float64(p.Current) / 100)
		c.SetColor(color.NRGBA{col.R, col.G, col.B, 200})
		c.DrawCircle(x, y, r)
		c.Fill()
	}
	c.drawLegend("0%", "100%")
	return c.encode(w)
}

// formatShort formats an amount in thousands or millions with the currency
// symbol.
func formatShort(v float64, currency string) string {
	cur := money.New(0, currency).Currency()
	symbol := cur.Grapheme
	if symbol == "" {
		symbol = currency + " "
	}
	switch {
	case math.Abs(v) >= 1e6:
		return fmt.Sprintf("%s%.1fM", symbol, v/1e6)
	case math.Abs(v) >= 1e3:
		return fmt.Sprintf("%s%.1fk", symbol, v/1e3)
	default:
		return fmt.Sprintf("%s%.0f", symbol, v)
	}
}
