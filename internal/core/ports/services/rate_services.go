package services

import (
	"context"
	"time"

	"github.com/mjaros/beertracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateProvider fetches a historical exchange rate between two currencies for
// a given date. Implementations return a rate of exactly 1 without any
// network call when from == to, and an error wrapping
// apperrors.ErrRateUnavailable on any transport, status, or parse failure.
type RateProvider interface {
	GetRate(ctx context.Context, from, to domain.CurrencyCode, date time.Time) (decimal.Decimal, error)
}

// PricingSvc converts an original price into both supported currencies.
type PricingSvc interface {
	// CalculatePrices never fails on rate lookup problems; it applies the
	// documented fallback and marks the breakdown as RateUnavailable.
	CalculatePrices(ctx context.Context, originalPrice decimal.Decimal, originalCurrency domain.CurrencyCode, purchaseDate time.Time) domain.PriceBreakdown
}
