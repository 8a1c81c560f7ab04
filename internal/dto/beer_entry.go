package dto

import (
	"time"

	"github.com/mjaros/beertracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PurchaseDateLayout is the wire format for purchase dates (date only).
const PurchaseDateLayout = "2006-01-02"

// CreateBeerEntryRequest defines the data needed to record a beer purchase.
// Name/price/date plausibility checks belong to the UI; binding here only
// enforces presence, the schema bound on the name, and the closed currency set.
type CreateBeerEntryRequest struct {
	BeerName         string          `json:"beerName" binding:"required,max=200"`
	OriginalPrice    decimal.Decimal `json:"originalPrice" binding:"required"`
	OriginalCurrency string          `json:"originalCurrency" binding:"required,currencycode"`
	PurchaseDate     string          `json:"purchaseDate" binding:"required,datetime=2006-01-02"`
}

// UpdateBeerEntryRequest is a possible future extension; no update operation
// is exposed by the service today.
type UpdateBeerEntryRequest struct {
	BeerName         *string          `json:"beerName,omitempty" binding:"omitempty,max=200"`
	OriginalPrice    *decimal.Decimal `json:"originalPrice,omitempty"`
	OriginalCurrency *string          `json:"originalCurrency,omitempty" binding:"omitempty,currencycode"`
	PurchaseDate     *string          `json:"purchaseDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// BeerEntryResponse defines the data returned for a beer entry.
type BeerEntryResponse struct {
	EntryID          int64           `json:"entryID"`
	BeerName         string          `json:"beerName"`
	OriginalPrice    decimal.Decimal `json:"originalPrice"`
	OriginalCurrency string          `json:"originalCurrency"`
	PurchaseDate     string          `json:"purchaseDate"`
	EURPrice         decimal.Decimal `json:"eurPrice"`
	USDPrice         decimal.Decimal `json:"usdPrice"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	RateUnavailable  bool            `json:"rateUnavailable"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToBeerEntryResponse converts a domain.BeerEntry to a BeerEntryResponse DTO.
func ToBeerEntryResponse(entry *domain.BeerEntry) BeerEntryResponse {
	return BeerEntryResponse{
		EntryID:          entry.EntryID,
		BeerName:         entry.BeerName,
		OriginalPrice:    entry.OriginalPrice,
		OriginalCurrency: entry.OriginalCurrency.String(),
		PurchaseDate:     entry.PurchaseDate.Format(PurchaseDateLayout),
		EURPrice:         entry.EURPrice,
		USDPrice:         entry.USDPrice,
		ExchangeRate:     entry.ExchangeRate,
		RateUnavailable:  entry.RateUnavailable,
		CreatedAt:        entry.CreatedAt,
	}
}

// ToListBeerEntryResponse converts a slice of domain.BeerEntry to response DTOs.
func ToListBeerEntryResponse(entries []domain.BeerEntry) []BeerEntryResponse {
	res := make([]BeerEntryResponse, len(entries))
	for i, entry := range entries {
		res[i] = ToBeerEntryResponse(&entry)
	}
	return res
}
