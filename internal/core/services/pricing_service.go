package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/mjaros/beertracker/internal/core/domain"
	portssvc "github.com/mjaros/beertracker/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// pricingService converts an original price into both supported currencies
// using a historical rate looked up for the purchase date.
type pricingService struct {
	rates portssvc.RateProvider
}

// NewPricingService creates a new PricingSvc backed by the given rate provider.
func NewPricingService(rates portssvc.RateProvider) portssvc.PricingSvc {
	return &pricingService{rates: rates}
}

var _ portssvc.PricingSvc = (*pricingService)(nil)

// CalculatePrices produces the EUR price, USD price, and the rate used.
// The price in the original currency is preserved verbatim; the converted
// price is originalPrice * rate, unrounded. When the rate lookup fails the
// converted price is zero, the rate defaults to 1, and the breakdown is
// marked RateUnavailable; the failure never propagates to the caller.
func (s *pricingService) CalculatePrices(ctx context.Context, originalPrice decimal.Decimal, originalCurrency domain.CurrencyCode, purchaseDate time.Time) domain.PriceBreakdown {
	rate, err := s.rates.GetRate(ctx, originalCurrency, originalCurrency.Other(), purchaseDate)
	if err != nil {
		slog.Warn("Rate lookup failed, applying fallback pricing",
			slog.String("currency", originalCurrency.String()),
			slog.String("purchase_date", purchaseDate.Format("2006-01-02")),
			slog.String("error", err.Error()),
		)
		return fallbackBreakdown(originalPrice, originalCurrency)
	}

	converted := originalPrice.Mul(rate)
	breakdown := domain.PriceBreakdown{Rate: rate}
	if originalCurrency == domain.CurrencyEUR {
		breakdown.EURPrice = originalPrice
		breakdown.USDPrice = converted
	} else {
		breakdown.USDPrice = originalPrice
		breakdown.EURPrice = converted
	}
	return breakdown
}

// fallbackBreakdown keeps the originating currency's price, zeroes the
// converted one, and records a rate of 1. The RateUnavailable flag lets
// callers tell "costs nothing" apart from "rate unknown".
func fallbackBreakdown(originalPrice decimal.Decimal, originalCurrency domain.CurrencyCode) domain.PriceBreakdown {
	breakdown := domain.PriceBreakdown{
		Rate:            decimal.NewFromInt(1),
		RateUnavailable: true,
	}
	if originalCurrency == domain.CurrencyEUR {
		breakdown.EURPrice = originalPrice
		breakdown.USDPrice = decimal.Zero
	} else {
		breakdown.USDPrice = originalPrice
		breakdown.EURPrice = decimal.Zero
	}
	return breakdown
}
