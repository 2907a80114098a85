package vipani

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a percentage value, e.g. 20 for 20%.
type Percent float64

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// PayoutFactor returns the exact decimal factor applied to a sales amount to
// obtain the seller payout, i.e. 1 - p/100.
func (p Percent) PayoutFactor() decimal.Decimal {
	return decimal.NewFromInt(1).Sub(decimal.NewFromFloat(float64(p)).Div(decimal.NewFromInt(100)))
}
