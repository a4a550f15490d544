package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"address-resolver/internal/index"
	"address-resolver/internal/metrics"
	"address-resolver/internal/service"

	"github.com/gin-gonic/gin"
)

// DatasetHandler serves dataset reloads, resolver statistics and health
type DatasetHandler struct {
	reloader  DatasetReloader
	snapshots SnapshotProvider
	metrics   *metrics.Metrics
}

// DatasetReloader interface for dependency injection
type DatasetReloader interface {
	Reload(context.Context) (*service.ReloadSummary, error)
}

// SnapshotProvider exposes the live dataset
type SnapshotProvider interface {
	Snapshot() *index.Snapshot
}

// DatasetInfo describes the live dataset.
type DatasetInfo struct {
	Source    string    `json:"source"`
	Records   int       `json:"records"`
	Locations int       `json:"locations"`
	LoadedAt  time.Time `json:"loaded_at"`
}

// StatsResponse is the body of GET /stats.
type StatsResponse struct {
	Dataset *DatasetInfo     `json:"dataset"`
	Metrics metrics.Snapshot `json:"metrics"`
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(reloader DatasetReloader, snapshots SnapshotProvider, m *metrics.Metrics) *DatasetHandler {
	return &DatasetHandler{reloader: reloader, snapshots: snapshots, metrics: m}
}

// Reload handles POST /admin/reload requests
//
//	@Summary	Reload the address dataset
//	@Tags		admin
//	@Produce	json
//	@Param		X-Admin-Token	header		string	false	"Admin token when ADMIN_TOKEN is configured"
//	@Success	200				{object}	service.ReloadSummary
//	@Failure	401				{object}	map[string]any
//	@Failure	503				{object}	map[string]any
//	@Router		/admin/reload [post]
func (h *DatasetHandler) Reload(c *gin.Context) {
	summary, err := h.reloader.Reload(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrDatasetUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "dataset is empty; previous dataset kept"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "dataset reload failed"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Stats handles GET /stats requests
//
//	@Summary	Resolver statistics
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	StatsResponse
//	@Router		/stats [get]
func (h *DatasetHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, StatsResponse{
		Dataset: h.datasetInfo(),
		Metrics: h.metrics.Snapshot(),
	})
}

// Health handles GET /health requests
func (h *DatasetHandler) Health(c *gin.Context) {
	if h.snapshots.Snapshot() == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *DatasetHandler) datasetInfo() *DatasetInfo {
	snap := h.snapshots.Snapshot()
	if snap == nil {
		return nil
	}
	return &DatasetInfo{
		Source:    snap.Source,
		Records:   snap.Len(),
		Locations: snap.Locations().Len(),
		LoadedAt:  snap.LoadedAt,
	}
}
