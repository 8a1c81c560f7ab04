package domain

import (
	"fmt"

	"github.com/mjaros/beertracker/internal/apperrors"
)

// CurrencyCode is the closed set of currencies the tracker understands.
type CurrencyCode string

const (
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyUSD CurrencyCode = "USD"
)

// SupportedCurrencies lists every valid currency code.
var SupportedCurrencies = []CurrencyCode{CurrencyEUR, CurrencyUSD}

// ParseCurrencyCode validates a raw currency string against the supported
// set. Unknown values are rejected at this boundary rather than stored.
func ParseCurrencyCode(raw string) (CurrencyCode, error) {
	for _, c := range SupportedCurrencies {
		if string(c) == raw {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unsupported currency code '%s'", apperrors.ErrValidation, raw)
}

// Other returns the counterpart currency of the EUR/USD pair.
func (c CurrencyCode) Other() CurrencyCode {
	if c == CurrencyEUR {
		return CurrencyUSD
	}
	return CurrencyEUR
}

func (c CurrencyCode) String() string {
	return string(c)
}
