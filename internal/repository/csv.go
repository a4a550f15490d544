package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"address-resolver/internal/models"
)

// Dataset column names.
const (
	ColumnStreet      = "street"
	ColumnSuburb      = "suburb"
	ColumnTown        = "town"
	ColumnFullAddress = "full_address"
)

var requiredColumns = []string{ColumnStreet, ColumnSuburb, ColumnTown, ColumnFullAddress}

// ErrMissingColumn is returned when the dataset lacks a required column.
var ErrMissingColumn = errors.New("required column not found")

// ParseCSV reads address records from CSV with a header row. Columns are located by name,
// case-insensitively; extra columns are ignored and short rows leave the missing fields empty.
func ParseCSV(r io.Reader) ([]models.AddressRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("repository: failed to read header: %w", err)
	}

	positions, err := columnPositions(header)
	if err != nil {
		return nil, err
	}

	var records []models.AddressRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("repository: failed to read record: %w", err)
		}

		field := func(column string) string {
			i := positions[column]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		records = append(records, models.AddressRecord{
			Street:      field(ColumnStreet),
			Suburb:      field(ColumnSuburb),
			Town:        field(ColumnTown),
			FullAddress: field(ColumnFullAddress),
		})
	}

	return records, nil
}

func columnPositions(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := positions[key]; !dup {
			positions[key] = i
		}
	}

	for _, column := range requiredColumns {
		if _, ok := positions[column]; !ok {
			return nil, fmt.Errorf("repository: %w: %q", ErrMissingColumn, column)
		}
	}
	return positions, nil
}

// CSVFileRepository reads the dataset from a local CSV file.
type CSVFileRepository struct {
	path string
}

// NewCSVFileRepository creates a repository over the CSV file at path.
func NewCSVFileRepository(path string) *CSVFileRepository {
	return &CSVFileRepository{path: path}
}

// Path is the file the repository reads.
func (r *CSVFileRepository) Path() string {
	return r.path
}

// ListAddresses parses every record in the file.
func (r *CSVFileRepository) ListAddresses(ctx context.Context) ([]models.AddressRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to open file: %w", err)
	}
	defer file.Close()

	return ParseCSV(file)
}
