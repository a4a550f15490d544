package index

import (
	"address-resolver/internal/fuzzy"
	"address-resolver/internal/models"
)

// Scope is a set of records together with the distinct candidate strings derived from them.
// A Scope is immutable once built.
type Scope struct {
	records   []models.AddressRecord
	streets   []string
	addresses []string

	byStreet  map[string]int
	byAddress map[string]int
}

// NewScope builds a scope over records, keeping their order. Candidate lists hold each
// non-empty street and full address once, in first-seen order.
func NewScope(records []models.AddressRecord) *Scope {
	s := &Scope{
		records:   records,
		byStreet:  make(map[string]int),
		byAddress: make(map[string]int),
	}

	for i, rec := range records {
		if rec.Street != "" {
			if _, seen := s.byStreet[rec.Street]; !seen {
				s.byStreet[rec.Street] = i
				s.streets = append(s.streets, rec.Street)
			}
		}
		if rec.FullAddress != "" {
			if _, seen := s.byAddress[rec.FullAddress]; !seen {
				s.byAddress[rec.FullAddress] = i
				s.addresses = append(s.addresses, rec.FullAddress)
			}
		}
	}
	return s
}

// Len is the number of records in the scope.
func (s *Scope) Len() int {
	return len(s.records)
}

// Records returns the scoped records in dataset order. Callers must not modify the slice.
func (s *Scope) Records() []models.AddressRecord {
	return s.records
}

// Streets returns the distinct street names in the scope.
func (s *Scope) Streets() []string {
	return s.streets
}

// Addresses returns the distinct full addresses in the scope.
func (s *Scope) Addresses() []string {
	return s.addresses
}

// FirstByStreet returns the first record whose street equals street exactly.
func (s *Scope) FirstByStreet(street string) (models.AddressRecord, bool) {
	i, ok := s.byStreet[street]
	if !ok {
		return models.AddressRecord{}, false
	}
	return s.records[i], true
}

// FirstByAddress returns the first record whose full address equals address exactly.
func (s *Scope) FirstByAddress(address string) (models.AddressRecord, bool) {
	i, ok := s.byAddress[address]
	if !ok {
		return models.AddressRecord{}, false
	}
	return s.records[i], true
}

// filter returns the records matching keep, in order.
func filter(records []models.AddressRecord, keep func(models.AddressRecord) bool) []models.AddressRecord {
	var out []models.AddressRecord
	for _, rec := range records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterExact scopes records to those whose normalized suburb equals suburb and whose
// normalized town equals town. An empty argument does not filter on that field.
func FilterExact(records []models.AddressRecord, suburb, town string) *Scope {
	suburbKey := fuzzy.NormalizeKey(suburb)
	townKey := fuzzy.NormalizeKey(town)

	scoped := records
	if suburbKey != "" {
		scoped = filter(scoped, func(rec models.AddressRecord) bool {
			return fuzzy.NormalizeKey(rec.Suburb) == suburbKey
		})
	}
	if townKey != "" {
		scoped = filter(scoped, func(rec models.AddressRecord) bool {
			return fuzzy.NormalizeKey(rec.Town) == townKey
		})
	}
	return NewScope(scoped)
}
