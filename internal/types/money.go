// README: Common money value object used across modules.
package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

const CurrencyBRL = "BRL"

// Money is a currency amount rounded to centavos. Amount marshals as a JSON string.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// BRL rounds v half away from zero to two decimal places.
func BRL(v float64) Money {
	return Money{Amount: decimal.NewFromFloat(v).Round(2), Currency: CurrencyBRL}
}

func (m Money) Float() float64 {
	f, _ := m.Amount.Float64()
	return f
}

// String renders the amount the way Brazilian reports print it, e.g. "R$ 1.234,56".
func (m Money) String() string {
	s := m.Amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, cents := s[:len(s)-3], s[len(s)-2:]

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return sign + "R$ " + b.String() + "," + cents
}

// DecimalComma formats v with a fixed number of places and a comma decimal separator,
// the form Brazilian-locale spreadsheets expect.
func DecimalComma(v float64, places int32) string {
	return strings.Replace(decimal.NewFromFloat(v).StringFixed(places), ".", ",", 1)
}
