package exposure

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a percentage, 12.5 meaning 12.5%.
type Percent float64

var hundred = decimal.NewFromInt(100)

// percentOf returns part as a percentage of total, 0 when total is zero.
func percentOf(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred)
}

// round2 rounds p to two decimals, half away from zero.
func round2(p decimal.Decimal) Percent {
	return Percent(p.Round(2).InexactFloat64())
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString formats the change p, "-" for no change.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}
