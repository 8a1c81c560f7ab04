package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mjaros/beertracker/internal/apperrors"
	"github.com/mjaros/beertracker/internal/core/domain"
	portsrepo "github.com/mjaros/beertracker/internal/core/ports/repositories"
	portssvc "github.com/mjaros/beertracker/internal/core/ports/services"
	"github.com/mjaros/beertracker/internal/dto"
)

// beerEntryService orchestrates pricing and persistence for beer entries.
type beerEntryService struct {
	entryRepo portsrepo.BeerEntryRepositoryFacade
	pricing   portssvc.PricingSvc
}

// NewBeerEntryService creates a new BeerEntrySvcFacade.
func NewBeerEntryService(entryRepo portsrepo.BeerEntryRepositoryFacade, pricing portssvc.PricingSvc) portssvc.BeerEntrySvcFacade {
	return &beerEntryService{
		entryRepo: entryRepo,
		pricing:   pricing,
	}
}

var _ portssvc.BeerEntrySvcFacade = (*beerEntryService)(nil)

// CreateBeerEntry computes dual-currency pricing for the purchase and
// persists the entry. The rate fetch is awaited synchronously; a pricing
// fallback still creates the entry, while any persistence error aborts the
// operation with no partial record.
func (s *beerEntryService) CreateBeerEntry(ctx context.Context, req dto.CreateBeerEntryRequest) (*domain.BeerEntry, error) {
	currency, err := domain.ParseCurrencyCode(req.OriginalCurrency)
	if err != nil {
		return nil, err
	}

	purchaseDate, err := time.Parse(dto.PurchaseDateLayout, req.PurchaseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid purchase date '%s'", apperrors.ErrValidation, req.PurchaseDate)
	}

	breakdown := s.pricing.CalculatePrices(ctx, req.OriginalPrice, currency, purchaseDate)

	entry := domain.BeerEntry{
		BeerName:         req.BeerName,
		OriginalPrice:    req.OriginalPrice,
		OriginalCurrency: currency,
		PurchaseDate:     purchaseDate,
		EURPrice:         breakdown.EURPrice,
		USDPrice:         breakdown.USDPrice,
		ExchangeRate:     breakdown.Rate,
		RateUnavailable:  breakdown.RateUnavailable,
	}

	saved, err := s.entryRepo.SaveBeerEntry(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create beer entry in service: %w", err)
	}

	return saved, nil
}

// ListBeerEntries returns all entries in insertion order, without pagination.
func (s *beerEntryService) ListBeerEntries(ctx context.Context) ([]domain.BeerEntry, error) {
	entries, err := s.entryRepo.ListBeerEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list beer entries in service: %w", err)
	}
	if entries == nil {
		return []domain.BeerEntry{}, nil
	}
	return entries, nil
}

// DeleteBeerEntry removes an entry by ID. Deleting a nonexistent ID is not
// an error condition; it reports (false, nil).
func (s *beerEntryService) DeleteBeerEntry(ctx context.Context, entryID int64) (bool, error) {
	err := s.entryRepo.DeleteBeerEntry(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete beer entry in service: %w", err)
	}
	return true, nil
}
