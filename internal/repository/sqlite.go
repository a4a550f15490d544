package repository

import (
	"context"
	"database/sql"
	"fmt"

	"address-resolver/internal/models"

	_ "modernc.org/sqlite"
)

// SQLiteRepository reads the dataset from an addresses table in a SQLite file.
type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLite opens the SQLite database at path read-only.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("repository: failed to open sqlite: %w", err)
	}
	return NewSQLiteRepository(db), nil
}

// NewSQLiteRepository wraps an open database handle.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// ListAddresses returns every address in rowid order. NULL columns come back empty.
func (r *SQLiteRepository) ListAddresses(ctx context.Context) ([]models.AddressRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			COALESCE(street, ''),
			COALESCE(suburb, ''),
			COALESCE(town, ''),
			COALESCE(full_address, '')
		FROM addresses
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute address query: %w", err)
	}
	defer rows.Close()

	var records []models.AddressRecord
	for rows.Next() {
		var rec models.AddressRecord
		if err := rows.Scan(&rec.Street, &rec.Suburb, &rec.Town, &rec.FullAddress); err != nil {
			return nil, fmt.Errorf("repository: failed to scan address: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return records, nil
}

// Close closes the database handle.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
