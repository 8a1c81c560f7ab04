package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BeerEntry is one recorded beer purchase with dual-currency pricing.
// Exactly one of EURPrice/USDPrice matches OriginalPrice verbatim; the other
// is OriginalPrice * ExchangeRate, or zero with RateUnavailable set when the
// historical rate could not be fetched.
// EntryID and CreatedAt are assigned by the repository on insert.
type BeerEntry struct {
	EntryID          int64           `json:"entryID"`
	BeerName         string          `json:"beerName"`
	OriginalPrice    decimal.Decimal `json:"originalPrice"`
	OriginalCurrency CurrencyCode    `json:"originalCurrency"`
	PurchaseDate     time.Time       `json:"purchaseDate"` // date only, no time component
	EURPrice         decimal.Decimal `json:"eurPrice"`
	USDPrice         decimal.Decimal `json:"usdPrice"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	RateUnavailable  bool            `json:"rateUnavailable"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// PriceBreakdown is the result of converting an original price into both
// supported currencies for a given purchase date.
type PriceBreakdown struct {
	EURPrice        decimal.Decimal
	USDPrice        decimal.Decimal
	Rate            decimal.Decimal
	RateUnavailable bool
}
