package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"address-resolver/internal/index"
	"address-resolver/internal/metrics"
	"address-resolver/internal/models"
	"address-resolver/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDatasetReloader is a mock implementation of the DatasetReloader interface
type MockDatasetReloader struct {
	mock.Mock
}

func (m *MockDatasetReloader) Reload(ctx context.Context) (*service.ReloadSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(*service.ReloadSummary), args.Error(1)
}

type staticSnapshots struct {
	snap *index.Snapshot
}

func (s staticSnapshots) Snapshot() *index.Snapshot {
	return s.snap
}

func TestDatasetHandler_Reload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	loadedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name           string
		mockSummary    *service.ReloadSummary
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "successful reload",
			mockSummary:    &service.ReloadSummary{Source: "nz_streets.csv", Records: 2, Locations: 3, LoadedAt: loadedAt, Duration: time.Millisecond},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"source": "nz_streets.csv", "records": 2.0, "locations": 3.0,
				"loaded_at": "2026-01-02T03:04:05Z", "duration_ns": 1e6,
			},
		},
		{
			name:           "empty dataset",
			mockError:      service.ErrDatasetUnavailable,
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   map[string]interface{}{"error": "dataset is empty; previous dataset kept"},
		},
		{
			name:           "reload error",
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"error": "dataset reload failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockReloader := new(MockDatasetReloader)
			handler := NewDatasetHandler(mockReloader, staticSnapshots{}, metrics.New())
			mockReloader.On("Reload", mock.Anything).Return(tt.mockSummary, tt.mockError)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/admin/reload", nil)

			// Execute
			handler.Reload(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &actualBody))
			assert.Equal(t, tt.expectedBody, actualBody)
			mockReloader.AssertExpectations(t)
		})
	}
}

func TestDatasetHandler_StatsAndHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	snap := index.NewSnapshot([]models.AddressRecord{woburn}, "nz_streets.csv")
	m := metrics.New()
	m.RecordQuery(metrics.OutcomeMatched)

	tests := []struct {
		name           string
		snapshots      staticSnapshots
		expectedHealth int
		expectDataset  bool
	}{
		{name: "dataset loaded", snapshots: staticSnapshots{snap: snap}, expectedHealth: http.StatusOK, expectDataset: true},
		{name: "dataset not loaded", snapshots: staticSnapshots{}, expectedHealth: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewDatasetHandler(new(MockDatasetReloader), tt.snapshots, m)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/stats", nil)
			handler.Stats(c)

			assert.Equal(t, http.StatusOK, w.Code)
			var stats StatsResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
			assert.Equal(t, int64(1), stats.Metrics.Queries)
			if tt.expectDataset {
				require.NotNil(t, stats.Dataset)
				assert.Equal(t, "nz_streets.csv", stats.Dataset.Source)
				assert.Equal(t, 1, stats.Dataset.Records)
				assert.Equal(t, 2, stats.Dataset.Locations)
			} else {
				assert.Nil(t, stats.Dataset)
			}

			w = httptest.NewRecorder()
			c, _ = gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)
			handler.Health(c)
			assert.Equal(t, tt.expectedHealth, w.Code)
		})
	}
}
