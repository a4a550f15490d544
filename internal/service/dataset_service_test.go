package service

import (
	"context"
	"testing"

	"address-resolver/internal/metrics"
	"address-resolver/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAddressRepository is a mock implementation of the AddressRepository interface
type MockAddressRepository struct {
	mock.Mock
}

// ListAddresses implements AddressRepository.
func (m *MockAddressRepository) ListAddresses(ctx context.Context) ([]models.AddressRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.AddressRecord), args.Error(1)
}

func TestDatasetService_Reload(t *testing.T) {
	tests := []struct {
		name          string
		mockRecords   []models.AddressRecord
		mockError     error
		expectedError error
		records       int
		locations     int
	}{
		{
			name:        "successful reload",
			mockRecords: regionRecords,
			records:     len(regionRecords),
			locations:   5,
		},
		{
			name:          "repository error",
			mockRecords:   nil,
			mockError:     assert.AnError,
			expectedError: assert.AnError,
		},
		{
			name:          "empty dataset",
			mockRecords:   []models.AddressRecord{},
			expectedError: ErrDatasetUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockRepo := new(MockAddressRepository)
			m := metrics.New()
			resolver := NewResolverService(DefaultResolverOptions(), m)
			service := NewDatasetService(mockRepo, resolver, "mock", m)

			mockRepo.On("ListAddresses", mock.Anything).Return(tt.mockRecords, tt.mockError)

			// Execute
			summary, err := service.Reload(context.Background())

			// Assert
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, resolver.Snapshot())
				assert.Equal(t, int64(1), m.Snapshot().FailedReloads)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "mock", summary.Source)
				assert.Equal(t, tt.records, summary.Records)
				assert.Equal(t, tt.locations, summary.Locations)
				assert.Equal(t, int64(tt.records), m.Snapshot().DatasetRecords)
				require.NotNil(t, resolver.Snapshot())
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
