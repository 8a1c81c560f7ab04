package repositories

import (
	"context"

	"github.com/mjaros/beertracker/internal/core/domain"
)

// BeerEntryReader defines read operations for beer entry data
type BeerEntryReader interface {
	// FindBeerEntryByID retrieves a single entry, or apperrors.ErrNotFound.
	FindBeerEntryByID(ctx context.Context, entryID int64) (*domain.BeerEntry, error)

	// ListBeerEntries retrieves all entries in insertion order.
	ListBeerEntries(ctx context.Context) ([]domain.BeerEntry, error)
}

// BeerEntryWriter defines write operations for beer entry data
type BeerEntryWriter interface {
	// SaveBeerEntry persists a new entry and returns it with the
	// store-assigned entry ID and creation timestamp filled in.
	SaveBeerEntry(ctx context.Context, entry domain.BeerEntry) (*domain.BeerEntry, error)

	// DeleteBeerEntry removes an entry permanently. Returns
	// apperrors.ErrNotFound when no row matches.
	DeleteBeerEntry(ctx context.Context, entryID int64) error
}

// BeerEntryRepositoryFacade combines all beer-entry repository interfaces
type BeerEntryRepositoryFacade interface {
	BeerEntryReader
	BeerEntryWriter
}

// BeerEntryRepositoryWithTx extends the facade with transaction capabilities
type BeerEntryRepositoryWithTx interface {
	BeerEntryRepositoryFacade
	TransactionManager
}

// RepositoryProvider holds instances of all the application repositories.
type RepositoryProvider struct {
	BeerEntryRepo BeerEntryRepositoryFacade
}
