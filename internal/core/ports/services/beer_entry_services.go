package services

import (
	"context"

	"github.com/mjaros/beertracker/internal/core/domain"
	"github.com/mjaros/beertracker/internal/dto"
)

// BeerEntryReaderSvc defines read operations for beer entries
type BeerEntryReaderSvc interface {
	// ListBeerEntries retrieves all entries in insertion order.
	ListBeerEntries(ctx context.Context) ([]domain.BeerEntry, error)
}

// BeerEntryWriterSvc defines write operations for beer entries
type BeerEntryWriterSvc interface {
	// CreateBeerEntry records a purchase with computed dual-currency pricing.
	CreateBeerEntry(ctx context.Context, req dto.CreateBeerEntryRequest) (*domain.BeerEntry, error)

	// DeleteBeerEntry removes an entry by ID. A missing ID is a normal
	// negative result (false, nil), not an error.
	DeleteBeerEntry(ctx context.Context, entryID int64) (bool, error)
}

// BeerEntrySvcFacade combines all beer-entry service interfaces
type BeerEntrySvcFacade interface {
	BeerEntryReaderSvc
	BeerEntryWriterSvc
}
