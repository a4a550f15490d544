package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRepository_ListAddresses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/streets.csv":
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte(sampleCSV))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	records, err := NewHTTPRepository(server.URL+"/streets.csv", time.Second).ListAddresses(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "Woburn", records[0].Suburb)

	_, err = NewHTTPRepository(server.URL+"/missing.csv", time.Second).ListAddresses(context.Background())
	assert.ErrorContains(t, err, "404")
}
