package templates

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/message"
)

// MaxPriceMinor is the largest amount, in minor units, that formats exactly.
const MaxPriceMinor int64 = 1 << 53

// Price is an amount of money in the currency's minor units.
type Price struct {
	Minor    int64
	Currency currency.Unit
}

// NewPrice validates a minor-unit amount and an ISO 4217 code.
func NewPrice(minor int64, code string) (Price, error) {
	if minor < 0 {
		return Price{}, errors.New("price amount must not be negative")
	}
	if minor > MaxPriceMinor {
		return Price{}, fmt.Errorf("price amount %d exceeds %d minor units", minor, MaxPriceMinor)
	}
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return Price{}, fmt.Errorf("parse currency %q: %w", code, err)
	}
	return Price{Minor: minor, Currency: unit}, nil
}

// Amount converts the minor units using the currency's standard scale.
func (p Price) Amount() currency.Amount {
	scale, _ := currency.Standard.Rounding(p.Currency)
	return p.Currency.Amount(float64(p.Minor) / math.Pow10(scale))
}

// Format renders the amount with its ISO code for the printer's language.
func (p Price) Format(printer *message.Printer) string {
	return printer.Sprint(currency.ISO(p.Amount()))
}

func (p Price) formatFor(page PageContext) string {
	return p.Format(message.NewPrinter(page.Tag()))
}
