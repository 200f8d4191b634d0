// README: Money value object used to format fares for display.
package types

import (
	"fmt"
	"math"
	"strconv"
)

// Money holds an amount in minor units (cents).
type Money struct {
	Amount   int64
	Currency string
}

// USD converts a dollar amount into cents, rounding half away from zero.
func USD(dollars float64) Money {
	return Money{Amount: int64(math.Round(dollars * 100)), Currency: "USD"}
}

// FormatUSD renders dollars as "$12.34". Amounts whose cents do not fit in
// an int64 are formatted from the float directly.
func FormatUSD(dollars float64) string {
	if math.IsNaN(dollars) || math.Abs(dollars*100) >= math.MaxInt64 {
		sign := ""
		if dollars < 0 {
			sign = "-"
			dollars = -dollars
		}
		return sign + "$" + strconv.FormatFloat(dollars, 'f', 2, 64)
	}
	return USD(dollars).String()
}

func (m Money) String() string {
	sign := ""
	amount := m.Amount
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	symbol := "$"
	if m.Currency != "" && m.Currency != "USD" {
		symbol = m.Currency + " "
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, symbol, amount/100, amount%100)
}
