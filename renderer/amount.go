package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is a display-only monetary value. The backend reports plain floats,
// so this exists to format them with the right symbol and fraction digits.
type Amount struct {
	value decimal.Decimal
	cur   string
}

// Cash builds an Amount in the given currency code, EUR when empty.
func Cash(v float64, cur string) Amount {
	if cur == "" {
		cur = money.EUR
	}
	return Amount{value: decimal.NewFromFloat(v), cur: cur}
}

func (a Amount) currency() money.Currency {
	// the Money constructor is the only way to get a never nil currency
	return *money.New(0, a.cur).Currency()
}

// String formats the amount with its currency symbol.
func (a Amount) String() string {
	cur := a.currency()
	dec := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is String with an explicit sign, zero rendered as "-".
func (a Amount) SignedString() string {
	if a.value.IsZero() {
		return "-"
	}
	if a.value.IsPositive() {
		return "+" + a.String()
	}
	return a.String()
}
