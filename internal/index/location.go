// Package index holds the read-only structures queries run against: the location index, the
// per-location scopes it caches and the snapshot that bundles them with the dataset.
package index

import (
	"address-resolver/internal/fuzzy"
	"address-resolver/internal/models"
)

var emptyScope = NewScope(nil)

// LocationIndex maps every normalized suburb and town name in a dataset to the records it
// covers.
type LocationIndex struct {
	tokens []string
	scopes map[string]*Scope
}

// Build indexes records by normalized suburb and town. Tokens keep first-seen order so that
// building twice from the same records answers every query identically. A record with
// different suburb and town keys is listed under both.
func Build(records []models.AddressRecord) *LocationIndex {
	var tokens []string
	members := make(map[string][]models.AddressRecord)

	add := func(token string, rec models.AddressRecord) {
		if token == "" {
			return
		}
		if _, seen := members[token]; !seen {
			tokens = append(tokens, token)
		}
		members[token] = append(members[token], rec)
	}

	for _, rec := range records {
		suburb := fuzzy.NormalizeKey(rec.Suburb)
		town := fuzzy.NormalizeKey(rec.Town)
		add(suburb, rec)
		if town != suburb {
			add(town, rec)
		}
	}

	scopes := make(map[string]*Scope, len(members))
	for token, recs := range members {
		scopes[token] = NewScope(recs)
	}

	return &LocationIndex{tokens: tokens, scopes: scopes}
}

// Tokens returns the distinct location tokens. Callers must not modify the slice.
func (idx *LocationIndex) Tokens() []string {
	return idx.tokens
}

// Len is the number of distinct tokens.
func (idx *LocationIndex) Len() int {
	return len(idx.tokens)
}

// Scope returns the records covered by token, or an empty scope when the token is unknown.
func (idx *LocationIndex) Scope(token string) *Scope {
	if s, ok := idx.scopes[token]; ok {
		return s
	}
	return emptyScope
}
