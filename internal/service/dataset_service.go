package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"address-resolver/internal/index"
	"address-resolver/internal/metrics"
	"address-resolver/internal/models"

	"github.com/rs/zerolog/log"
)

// AddressRepository supplies the reference dataset.
type AddressRepository interface {
	ListAddresses(ctx context.Context) ([]models.AddressRecord, error)
}

// DatasetLoader publishes a freshly loaded dataset.
type DatasetLoader interface {
	Load(records []models.AddressRecord, source string) (*index.Snapshot, error)
}

// ReloadSummary describes a successfully published dataset.
type ReloadSummary struct {
	Source    string        `json:"source"`
	Records   int           `json:"records"`
	Locations int           `json:"locations"`
	LoadedAt  time.Time     `json:"loaded_at"`
	Duration  time.Duration `json:"duration_ns"`
}

// DatasetService loads the dataset from a repository into the resolver. Reloads are
// serialised; queries keep running against the previous snapshot until the new one is
// published.
type DatasetService struct {
	repo    AddressRepository
	loader  DatasetLoader
	source  string
	metrics *metrics.Metrics

	mu sync.Mutex
}

// NewDatasetService creates a dataset service. source names the repository in logs and
// snapshots.
func NewDatasetService(repo AddressRepository, loader DatasetLoader, source string, m *metrics.Metrics) *DatasetService {
	if m == nil {
		m = metrics.New()
	}
	return &DatasetService{repo: repo, loader: loader, source: source, metrics: m}
}

// Reload fetches the dataset and publishes it.
func (s *DatasetService) Reload(ctx context.Context) (*ReloadSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	summary, err := s.reload(ctx)
	if err != nil {
		s.metrics.RecordReload(0, 0, err)
		log.Error().Err(err).Str("source", s.source).Msg("dataset reload failed")
		return nil, err
	}
	summary.Duration = time.Since(start)

	s.metrics.RecordReload(summary.Records, summary.Locations, nil)
	log.Info().
		Str("source", s.source).
		Int("records", summary.Records).
		Int("locations", summary.Locations).
		Dur("took", summary.Duration).
		Msg("dataset loaded")
	return summary, nil
}

func (s *DatasetService) reload(ctx context.Context) (*ReloadSummary, error) {
	records, err := s.repo.ListAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list addresses: %w", err)
	}

	snap, err := s.loader.Load(records, s.source)
	if err != nil {
		return nil, err
	}

	return &ReloadSummary{
		Source:    snap.Source,
		Records:   snap.Len(),
		Locations: snap.Locations().Len(),
		LoadedAt:  snap.LoadedAt,
	}, nil
}
