package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"address-resolver/internal/fuzzy"
	"address-resolver/internal/index"
	"address-resolver/internal/metrics"
	"address-resolver/internal/models"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultAddressCutoff is the precision floor for street and address matches.
	DefaultAddressCutoff = 75.0
	// DefaultLocationCutoff is the minimum score for a location token to be accepted.
	DefaultLocationCutoff = 50.0
)

// Query is one resolution request. Location is a combined suburb-or-town fragment matched
// fuzzily; Suburb and Town are matched exactly and only used when Location is blank.
type Query struct {
	Text     string   `json:"query"`
	Location string   `json:"location,omitempty"`
	Suburb   string   `json:"suburb,omitempty"`
	Town     string   `json:"town,omitempty"`
	Limit    int      `json:"limit"`
	Cutoff   *float64 `json:"cutoff,omitempty"`
}

// ResolverOptions configures a ResolverService.
type ResolverOptions struct {
	Scorer         fuzzy.Scorer
	AddressCutoff  float64
	LocationCutoff float64
}

// DefaultResolverOptions returns the composite scorer with the default cutoffs.
func DefaultResolverOptions() ResolverOptions {
	return ResolverOptions{
		Scorer:         fuzzy.DefaultScorer,
		AddressCutoff:  DefaultAddressCutoff,
		LocationCutoff: DefaultLocationCutoff,
	}
}

// ResolverService resolves address fragments against the currently published dataset
// snapshot. Snapshots are swapped atomically, so queries never lock and a query that started
// on an old snapshot finishes on it.
type ResolverService struct {
	scorer         fuzzy.Scorer
	addressCutoff  float64
	locationCutoff float64
	metrics        *metrics.Metrics

	snapshot atomic.Pointer[index.Snapshot]
}

// NewResolverService creates a resolver with no dataset loaded.
func NewResolverService(opts ResolverOptions, m *metrics.Metrics) *ResolverService {
	if opts.Scorer == nil {
		opts.Scorer = fuzzy.DefaultScorer
	}
	if m == nil {
		m = metrics.New()
	}
	return &ResolverService{
		scorer:         opts.Scorer,
		addressCutoff:  opts.AddressCutoff,
		locationCutoff: opts.LocationCutoff,
		metrics:        m,
	}
}

// Load indexes records and publishes them as the live dataset. The slice must not be modified
// afterwards. An empty dataset is rejected and the previous snapshot stays live.
func (s *ResolverService) Load(records []models.AddressRecord, source string) (*index.Snapshot, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("service: no address records in %s: %w", source, ErrDatasetUnavailable)
	}

	snap := index.NewSnapshot(records, source)
	s.snapshot.Store(snap)
	return snap, nil
}

// Snapshot returns the live dataset, or nil before the first successful Load.
func (s *ResolverService) Snapshot() *index.Snapshot {
	return s.snapshot.Load()
}

// Resolve matches q against the live dataset.
func (s *ResolverService) Resolve(ctx context.Context, q Query) (*models.ResolutionOutcome, error) {
	outcome, err := s.resolve(ctx, q)
	s.metrics.RecordQuery(classify(outcome, err))
	return outcome, err
}

func (s *ResolverService) resolve(ctx context.Context, q Query) (*models.ResolutionOutcome, error) {
	if strings.TrimSpace(q.Text) == "" {
		return nil, newResolutionError(ErrMissingQueryInput, q)
	}

	snap := s.snapshot.Load()
	if snap == nil || snap.Len() == 0 {
		return nil, newResolutionError(ErrDatasetUnavailable, q)
	}

	cutoff := s.addressCutoff
	if q.Cutoff != nil {
		cutoff = *q.Cutoff
	}

	scope, location, err := s.scope(snap, q)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("service: resolve interrupted: %w", err)
	}

	streets, err := s.match(q.Text, scope.Streets(), scope.FirstByStreet, q.Limit, cutoff)
	if err != nil {
		return nil, fmt.Errorf("service: failed to match streets: %w", err)
	}

	addresses, err := s.match(q.Text, scope.Addresses(), scope.FirstByAddress, q.Limit, cutoff)
	if err != nil {
		return nil, fmt.Errorf("service: failed to match addresses: %w", err)
	}

	return &models.ResolutionOutcome{
		Location:       location,
		StreetResults:  streets,
		AddressResults: addresses,
	}, nil
}

// scope narrows the dataset for q: a fuzzy location token when Location is given, an exact
// suburb/town filter when only those are given, and the whole dataset otherwise.
func (s *ResolverService) scope(snap *index.Snapshot, q Query) (*index.Scope, *models.LocationMatch, error) {
	switch {
	case strings.TrimSpace(q.Location) != "":
		locations := snap.Locations()

		best, ok, err := fuzzy.ExtractOne(fuzzy.NormalizeKey(q.Location), locations.Tokens(), s.scorer, s.locationCutoff)
		if err != nil {
			return nil, nil, fmt.Errorf("service: failed to resolve location: %w", err)
		}
		if !ok {
			return nil, nil, newResolutionError(ErrNoLocationMatch, q)
		}

		log.Debug().
			Str("location", q.Location).
			Str("token", best.Choice).
			Float64("score", best.Score).
			Msg("resolved location")

		scope := locations.Scope(best.Choice)
		if scope.Len() == 0 {
			return nil, nil, newResolutionError(ErrNoRecordsForLocation, q)
		}
		return scope, &models.LocationMatch{Token: best.Choice, Score: best.Score, Method: models.LocationMethodFuzzy}, nil

	case strings.TrimSpace(q.Suburb) != "" || strings.TrimSpace(q.Town) != "":
		scope := snap.FilterExact(q.Suburb, q.Town)
		if scope.Len() == 0 {
			return nil, nil, newResolutionError(ErrNoLocationMatch, q)
		}
		return scope, &models.LocationMatch{Token: exactToken(q.Suburb, q.Town), Score: 100, Method: models.LocationMethodExact}, nil

	default:
		return snap.All(), nil, nil
	}
}

// match ranks candidates and maps every match back to the first record carrying it.
func (s *ResolverService) match(query string, candidates []string, lookup func(string) (models.AddressRecord, bool), limit int, cutoff float64) ([]models.MatchResult, error) {
	matches, err := fuzzy.Extract(query, candidates, s.scorer, limit, cutoff)
	if err != nil {
		return nil, err
	}

	results := make([]models.MatchResult, 0, len(matches))
	for _, m := range matches {
		rec, ok := lookup(m.Choice)
		if !ok {
			continue
		}
		results = append(results, models.MatchResult{MatchedText: m.Choice, Score: m.Score, Record: rec})
	}
	return results, nil
}

func exactToken(suburb, town string) string {
	var parts []string
	for _, p := range []string{fuzzy.NormalizeKey(suburb), fuzzy.NormalizeKey(town)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func classify(outcome *models.ResolutionOutcome, err error) metrics.Outcome {
	switch {
	case err == nil && len(outcome.StreetResults)+len(outcome.AddressResults) > 0:
		return metrics.OutcomeMatched
	case err == nil:
		return metrics.OutcomeEmpty
	case errors.Is(err, ErrMissingQueryInput):
		return metrics.OutcomeMissingInput
	case errors.Is(err, ErrDatasetUnavailable):
		return metrics.OutcomeUnavailable
	case errors.Is(err, ErrNoLocationMatch):
		return metrics.OutcomeNoLocation
	case errors.Is(err, ErrNoRecordsForLocation):
		return metrics.OutcomeNoRecords
	default:
		return metrics.OutcomeFailed
	}
}
