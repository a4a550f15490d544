package index

import (
	"time"

	"address-resolver/internal/models"
)

// Snapshot is an immutable, fully indexed copy of the reference dataset. It is safe for
// concurrent use without locking.
type Snapshot struct {
	Source   string
	LoadedAt time.Time

	records   []models.AddressRecord
	locations *LocationIndex
	all       *Scope
}

// NewSnapshot indexes records. The slice is retained and must not be modified afterwards.
func NewSnapshot(records []models.AddressRecord, source string) *Snapshot {
	return &Snapshot{
		Source:    source,
		LoadedAt:  time.Now().UTC(),
		records:   records,
		locations: Build(records),
		all:       NewScope(records),
	}
}

// Len is the number of records in the dataset.
func (s *Snapshot) Len() int {
	return len(s.records)
}

// Locations returns the location index.
func (s *Snapshot) Locations() *LocationIndex {
	return s.locations
}

// All returns a scope covering every record.
func (s *Snapshot) All() *Scope {
	return s.all
}

// FilterExact scopes the dataset by exact normalized suburb and town.
func (s *Snapshot) FilterExact(suburb, town string) *Scope {
	return FilterExact(s.records, suburb, town)
}
