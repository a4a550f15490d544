package metrics

import "sync/atomic"

// Metrics captures resolver counters shared by request handlers and the reload path.
type Metrics struct {
	queries          int64
	matched          int64
	emptyResults     int64
	missingInput     int64
	unavailable      int64
	noLocation       int64
	noRecords        int64
	failedQueries    int64
	reloads          int64
	failedReloads    int64
	datasetRecords   int64
	datasetLocations int64
}

// Snapshot provides a consistent view of the current metrics.
type Snapshot struct {
	Queries          int64 `json:"queries"`
	Matched          int64 `json:"matched"`
	EmptyResults     int64 `json:"empty_results"`
	MissingInput     int64 `json:"missing_input"`
	Unavailable      int64 `json:"dataset_unavailable"`
	NoLocation       int64 `json:"no_location_match"`
	NoRecords        int64 `json:"no_records_for_location"`
	FailedQueries    int64 `json:"failed_queries"`
	Reloads          int64 `json:"reloads"`
	FailedReloads    int64 `json:"failed_reloads"`
	DatasetRecords   int64 `json:"dataset_records"`
	DatasetLocations int64 `json:"dataset_locations"`
}

// Outcome classifies a finished query.
type Outcome int

const (
	OutcomeMatched Outcome = iota
	OutcomeEmpty
	OutcomeMissingInput
	OutcomeUnavailable
	OutcomeNoLocation
	OutcomeNoRecords
	OutcomeFailed
)

// New creates a zeroed Metrics instance.
func New() *Metrics {
	return &Metrics{}
}

// RecordQuery increments the query counter and the counter for its outcome.
func (m *Metrics) RecordQuery(outcome Outcome) {
	atomic.AddInt64(&m.queries, 1)

	switch outcome {
	case OutcomeMatched:
		atomic.AddInt64(&m.matched, 1)
	case OutcomeEmpty:
		atomic.AddInt64(&m.emptyResults, 1)
	case OutcomeMissingInput:
		atomic.AddInt64(&m.missingInput, 1)
	case OutcomeUnavailable:
		atomic.AddInt64(&m.unavailable, 1)
	case OutcomeNoLocation:
		atomic.AddInt64(&m.noLocation, 1)
	case OutcomeNoRecords:
		atomic.AddInt64(&m.noRecords, 1)
	default:
		atomic.AddInt64(&m.failedQueries, 1)
	}
}

// RecordReload counts a reload attempt and, on success, the size of the new dataset.
func (m *Metrics) RecordReload(records, locations int, err error) {
	atomic.AddInt64(&m.reloads, 1)
	if err != nil {
		atomic.AddInt64(&m.failedReloads, 1)
		return
	}
	atomic.StoreInt64(&m.datasetRecords, int64(records))
	atomic.StoreInt64(&m.datasetLocations, int64(locations))
}

// Snapshot returns a read-only view of metrics.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Queries:          atomic.LoadInt64(&m.queries),
		Matched:          atomic.LoadInt64(&m.matched),
		EmptyResults:     atomic.LoadInt64(&m.emptyResults),
		MissingInput:     atomic.LoadInt64(&m.missingInput),
		Unavailable:      atomic.LoadInt64(&m.unavailable),
		NoLocation:       atomic.LoadInt64(&m.noLocation),
		NoRecords:        atomic.LoadInt64(&m.noRecords),
		FailedQueries:    atomic.LoadInt64(&m.failedQueries),
		Reloads:          atomic.LoadInt64(&m.reloads),
		FailedReloads:    atomic.LoadInt64(&m.failedReloads),
		DatasetRecords:   atomic.LoadInt64(&m.datasetRecords),
		DatasetLocations: atomic.LoadInt64(&m.datasetLocations),
	}
}
