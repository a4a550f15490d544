package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"address-resolver/internal/fuzzy"
	"address-resolver/internal/models"
	"address-resolver/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSearchService is a mock implementation of the SearchService interface
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Resolve(ctx context.Context, q service.Query) (*models.ResolutionOutcome, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(*models.ResolutionOutcome), args.Error(1)
}

var woburn = models.AddressRecord{
	Street:      "Main Street",
	Suburb:      "Woburn",
	Town:        "Masterton",
	FullAddress: "12 Main Street, Woburn, Masterton",
}

func float(v float64) *float64 {
	return &v
}

func TestSearchHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		params         url.Values
		expectedQuery  *service.Query
		mockOutcome    *models.ResolutionOutcome
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing query parameter",
			params:         url.Values{"location": {"Woburn"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "missing required query parameter 'query'"},
		},
		{
			name:           "invalid cutoff",
			params:         url.Values{"query": {"Main St"}, "cutoff": {"150"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "cutoff must be a number between 0 and 100"},
		},
		{
			name:          "successful search with results",
			params:        url.Values{"query": {"Main St"}, "location": {"Woburn"}},
			expectedQuery: &service.Query{Text: "Main St", Location: "Woburn", Limit: 3},
			mockOutcome: &models.ResolutionOutcome{
				Location:       &models.LocationMatch{Token: "woburn", Score: 100, Method: models.LocationMethodFuzzy},
				StreetResults:  []models.MatchResult{{MatchedText: "Main Street", Score: 85.5, Record: woburn}},
				AddressResults: []models.MatchResult{{MatchedText: woburn.FullAddress, Score: 88.888, Record: woburn}},
			},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"location": map[string]interface{}{"token": "woburn", "score": 100.0, "method": "fuzzy"},
				"street_results": []interface{}{
					map[string]interface{}{
						"street": "Main Street", "suburb": "Woburn", "town": "Masterton",
						"full_address": "12 Main Street, Woburn, Masterton", "matched_text": "Main Street", "score": 85.5,
					},
				},
				"address_results": []interface{}{
					map[string]interface{}{
						"street": "Main Street", "suburb": "Woburn", "town": "Masterton",
						"full_address": "12 Main Street, Woburn, Masterton", "matched_text": "12 Main Street, Woburn, Masterton", "score": 88.89,
					},
				},
			},
		},
		{
			name:           "limit zero and explicit cutoff",
			params:         url.Values{"query": {"Main St"}, "suburb": {"Woburn"}, "town": {"Masterton"}, "limit": {"0"}, "cutoff": {"80"}},
			expectedQuery:  &service.Query{Text: "Main St", Suburb: "Woburn", Town: "Masterton", Limit: 0, Cutoff: float(80)},
			mockOutcome:    &models.ResolutionOutcome{StreetResults: []models.MatchResult{}, AddressResults: []models.MatchResult{}},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"street_results": []interface{}{}, "address_results": []interface{}{}},
		},
		{
			name:           "unparseable limit falls back to default",
			params:         url.Values{"query": {"Main St"}, "limit": {"lots"}},
			expectedQuery:  &service.Query{Text: "Main St", Limit: 3},
			mockOutcome:    &models.ResolutionOutcome{StreetResults: []models.MatchResult{}, AddressResults: []models.MatchResult{}},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"street_results": []interface{}{}, "address_results": []interface{}{}},
		},
		{
			name:           "limit capped",
			params:         url.Values{"query": {"Main St"}, "limit": {"500"}},
			expectedQuery:  &service.Query{Text: "Main St", Limit: 10},
			mockOutcome:    &models.ResolutionOutcome{StreetResults: []models.MatchResult{}, AddressResults: []models.MatchResult{}},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"street_results": []interface{}{}, "address_results": []interface{}{}},
		},
		{
			name:          "no location match echoes query",
			params:        url.Values{"query": {"Main St"}, "location": {"Atlantis"}},
			expectedQuery: &service.Query{Text: "Main St", Location: "Atlantis", Limit: 3},
			mockError: &service.ResolutionError{
				Kind:  service.ErrNoLocationMatch,
				Query: service.Query{Text: "Main St", Location: "Atlantis", Limit: 3},
			},
			expectedStatus: http.StatusNotFound,
			expectedBody: map[string]interface{}{
				"error": "no streets found for the specified location",
				"query": map[string]interface{}{"query": "Main St", "location": "Atlantis", "limit": 3.0},
			},
		},
		{
			name:           "dataset unavailable",
			params:         url.Values{"query": {"Main St"}},
			expectedQuery:  &service.Query{Text: "Main St", Limit: 3},
			mockError:      &service.ResolutionError{Kind: service.ErrDatasetUnavailable},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   gin.H{"error": "address data is not loaded"},
		},
		{
			name:           "blank query rejected by service",
			params:         url.Values{"query": {"   "}},
			expectedQuery:  &service.Query{Text: "   ", Limit: 3},
			mockError:      &service.ResolutionError{Kind: service.ErrMissingQueryInput},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "missing required query parameter 'query'"},
		},
		{
			name:           "invalid input",
			params:         url.Values{"query": {"Main St"}},
			expectedQuery:  &service.Query{Text: "Main St", Limit: 3},
			mockError:      fuzzy.ErrInvalidInput,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "query parameters must be valid UTF-8 text"},
		},
		{
			name:           "service error",
			params:         url.Values{"query": {"Main St"}},
			expectedQuery:  &service.Query{Text: "Main St", Limit: 3},
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockSearchService)
			handler := NewSearchHandler(mockSvc, 3, 10)

			if tt.expectedQuery != nil {
				mockSvc.On("Resolve", mock.Anything, *tt.expectedQuery).Return(tt.mockOutcome, tt.mockError)
			}

			// Create request
			req := httptest.NewRequest(http.MethodGet, "/search?"+tt.params.Encode(), nil)
			w := httptest.NewRecorder()

			// Create Gin context
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			// Execute
			handler.Search(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)

			expected, err := json.Marshal(tt.expectedBody)
			assert.NoError(t, err)
			var expectedBody interface{}
			assert.NoError(t, json.Unmarshal(expected, &expectedBody))
			assert.Equal(t, expectedBody, actualBody)

			if tt.expectedQuery != nil {
				mockSvc.AssertExpectations(t)
			} else {
				mockSvc.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
			}
		})
	}
}
