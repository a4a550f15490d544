package repository

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"address-resolver/internal/models"
)

// HTTPRepository fetches the dataset as CSV from a remote URL.
type HTTPRepository struct {
	url    string
	client *http.Client
}

// NewHTTPRepository creates a repository fetching url with the given timeout.
func NewHTTPRepository(url string, timeout time.Duration) *HTTPRepository {
	return &HTTPRepository{url: url, client: &http.Client{Timeout: timeout}}
}

// ListAddresses downloads and parses the remote CSV.
func (r *HTTPRepository) ListAddresses(ctx context.Context) ([]models.AddressRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to build request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("repository: unexpected status fetching dataset: %s", resp.Status)
	}

	return ParseCSV(resp.Body)
}
