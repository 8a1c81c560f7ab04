package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mjaros/beertracker/internal/apperrors"
	"github.com/mjaros/beertracker/internal/core/domain"
	portsrepo "github.com/mjaros/beertracker/internal/core/ports/repositories"
)

type PgxBeerEntryRepository struct {
	BaseRepository
}

// newPgxBeerEntryRepository creates a new repository for beer entry data.
func newPgxBeerEntryRepository(pool *pgxpool.Pool) *PgxBeerEntryRepository {
	return &PgxBeerEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBeerEntryRepository implements the facade with tx support
var _ portsrepo.BeerEntryRepositoryWithTx = (*PgxBeerEntryRepository)(nil)

// SaveBeerEntry inserts a new entry within a transaction and returns it with
// the store-assigned entry_id and created_at read back from the insert.
func (r *PgxBeerEntryRepository) SaveBeerEntry(ctx context.Context, entry domain.BeerEntry) (*domain.BeerEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO beer_entries (
			beer_name, original_price, original_currency, purchase_date,
			eur_price, usd_price, exchange_rate, rate_unavailable
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING entry_id, created_at;
	`
	err = tx.QueryRow(ctx, query,
		entry.BeerName,
		entry.OriginalPrice,
		entry.OriginalCurrency.String(),
		entry.PurchaseDate,
		entry.EURPrice,
		entry.USDPrice,
		entry.ExchangeRate,
		entry.RateUnavailable,
	).Scan(&entry.EntryID, &entry.CreatedAt)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return nil, apperrors.NewAppError(500, "failed to save beer entry", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindBeerEntryByID retrieves a single entry by its store-assigned ID.
func (r *PgxBeerEntryRepository) FindBeerEntryByID(ctx context.Context, entryID int64) (*domain.BeerEntry, error) {
	query := `
		SELECT entry_id, beer_name, original_price, original_currency, purchase_date,
			eur_price, usd_price, exchange_rate, rate_unavailable, created_at
		FROM beer_entries
		WHERE entry_id = $1;
	`
	var entry domain.BeerEntry
	var currency string
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&entry.EntryID,
		&entry.BeerName,
		&entry.OriginalPrice,
		&currency,
		&entry.PurchaseDate,
		&entry.EURPrice,
		&entry.USDPrice,
		&entry.ExchangeRate,
		&entry.RateUnavailable,
		&entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find beer entry %d: %w", entryID, err)
	}
	entry.OriginalCurrency = domain.CurrencyCode(currency)

	return &entry, nil
}

// ListBeerEntries retrieves all entries ordered by entry_id, which matches
// insertion order for the serial key.
func (r *PgxBeerEntryRepository) ListBeerEntries(ctx context.Context) ([]domain.BeerEntry, error) {
	query := `
		SELECT entry_id, beer_name, original_price, original_currency, purchase_date,
			eur_price, usd_price, exchange_rate, rate_unavailable, created_at
		FROM beer_entries
		ORDER BY entry_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query beer entries: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BeerEntry, error) {
		var entry domain.BeerEntry
		var currency string
		err := row.Scan(
			&entry.EntryID,
			&entry.BeerName,
			&entry.OriginalPrice,
			&currency,
			&entry.PurchaseDate,
			&entry.EURPrice,
			&entry.USDPrice,
			&entry.ExchangeRate,
			&entry.RateUnavailable,
			&entry.CreatedAt,
		)
		entry.OriginalCurrency = domain.CurrencyCode(currency)
		return entry, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan beer entries: %w", err)
	}

	if entries == nil {
		return []domain.BeerEntry{}, nil
	}
	return entries, nil
}

// DeleteBeerEntry removes an entry permanently within a transaction.
// Zero rows affected maps to apperrors.ErrNotFound.
func (r *PgxBeerEntryRepository) DeleteBeerEntry(ctx context.Context, entryID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM beer_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewAppError(500, "failed to delete beer entry", err)
	}
	if tag.RowsAffected() == 0 {
		_ = r.Rollback(ctx, tx)
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
