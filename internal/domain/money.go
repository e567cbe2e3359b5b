package domain

import (
	"fmt"
	"math"
)

// Money is an amount of currency in minor units (hundredths of a coin).
// Balances are never stored or computed as floating point; display values
// are converted at the edges.
type Money int64

// MoneyFromDisplay converts a display-unit amount (e.g. "12.34" coins) to
// minor units, rounding half up to the nearest cent.
func MoneyFromDisplay(amount float64) Money {
	return Money(math.Floor(amount*100 + 0.5))
}

// MoneyFromCoins converts a whole display-unit price to minor units.
func MoneyFromCoins(coins int) Money {
	return Money(coins) * 100
}

// Display returns the amount in display units.
func (m Money) Display() float64 {
	return float64(m) / 100
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Display())
}

// MultiplyRounded scales the amount by a float multiplier, rounding half up.
// Used for effect multipliers on earnings.
func (m Money) MultiplyRounded(mult float64) Money {
	return Money(math.Floor(float64(m)*mult + 0.5))
}
