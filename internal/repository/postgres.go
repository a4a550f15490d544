package repository

import (
	"context"
	"fmt"

	"address-resolver/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// addressesTable is created by the importer and read by PostgresRepository.
const addressesTable = `
	CREATE TABLE IF NOT EXISTS addresses (
		id BIGSERIAL PRIMARY KEY,
		street TEXT,
		suburb TEXT,
		town TEXT,
		full_address TEXT
	);
	CREATE INDEX IF NOT EXISTS addresses_suburb_idx ON addresses (lower(suburb));
	CREATE INDEX IF NOT EXISTS addresses_town_idx ON addresses (lower(town));
`

// PostgresRepository reads and writes the dataset in PostgreSQL
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListAddresses returns every address in insertion order. NULL columns come back empty.
func (r *PostgresRepository) ListAddresses(ctx context.Context) ([]models.AddressRecord, error) {
	sql := `
		SELECT
			COALESCE(street, ''),
			COALESCE(suburb, ''),
			COALESCE(town, ''),
			COALESCE(full_address, '')
		FROM addresses
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute address query: %w", err)
	}
	defer rows.Close()

	var records []models.AddressRecord
	for rows.Next() {
		var rec models.AddressRecord
		err := rows.Scan(
			&rec.Street,
			&rec.Suburb,
			&rec.Town,
			&rec.FullAddress,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan address: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return records, nil
}

// EnsureSchema creates the addresses table and its indexes if they do not exist.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, addressesTable); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// ImportAddresses bulk inserts records with COPY, optionally truncating the table first, and
// returns the number of rows copied.
func (r *PostgresRepository) ImportAddresses(ctx context.Context, records []models.AddressRecord, truncate bool) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin import: %w", err)
	}
	defer tx.Rollback(ctx)

	if truncate {
		if _, err := tx.Exec(ctx, "TRUNCATE addresses RESTART IDENTITY"); err != nil {
			return 0, fmt.Errorf("repository: failed to truncate addresses: %w", err)
		}
	}

	n, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"addresses"},
		[]string{"street", "suburb", "town", "full_address"},
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			rec := records[i]
			return []any{rec.Street, rec.Suburb, rec.Town, rec.FullAddress}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy addresses: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit import: %w", err)
	}
	return n, nil
}

// CountAddresses returns the number of rows in the addresses table.
func (r *PostgresRepository) CountAddresses(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM addresses").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count addresses: %w", err)
	}
	return count, nil
}
