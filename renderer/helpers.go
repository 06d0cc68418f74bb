package renderer

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Placeholder is shown for an unknown value, so that it is not read as a zero.
const Placeholder = "—"

// usd formats an amount in US dollars, like "$1,234.56".
func usd(v float64) string {
	return money.New(int64(math.Round(v*100)), money.USD).Display()
}

// price formats a price, unknown prices are 0.
func price(v float64) string {
	if v == 0 {
		return Placeholder
	}
	return usd(v)
}

// signed formats an amount with an explicit sign.
func signed(v float64) string {
	if v > 0 {
		return "+" + usd(v)
	}
	return usd(v)
}

// percent formats a percentage with an explicit sign, like "+1.23%".
func percent(v float64) string { return fmt.Sprintf("%+.2f%%", v) }

// fraction formats a ratio as a percentage, like "12.30%".
func fraction(v float64) string { return fmt.Sprintf("%.2f%%", v*100) }

// ratio formats a dimensionless number.
func ratio(v float64) string { return fmt.Sprintf("%.2f", v) }

func shares(q decimal.Decimal) string { return q.StringFixed(2) }
