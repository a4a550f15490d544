package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"address-resolver/internal/fuzzy"
	"address-resolver/internal/models"
	"address-resolver/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SearchHandler handles address search requests
type SearchHandler struct {
	service      SearchService
	defaultLimit int
	maxLimit     int
}

// SearchService interface for dependency injection
type SearchService interface {
	Resolve(context.Context, service.Query) (*models.ResolutionOutcome, error)
}

// AddressResult is one ranked match in a search response.
type AddressResult struct {
	Street      string  `json:"street"`
	Suburb      string  `json:"suburb"`
	Town        string  `json:"town"`
	FullAddress string  `json:"full_address"`
	MatchedText string  `json:"matched_text"`
	Score       float64 `json:"score"`
}

// SearchResponse is the body of a successful search.
type SearchResponse struct {
	Location       *models.LocationMatch `json:"location,omitempty"`
	StreetResults  []AddressResult       `json:"street_results"`
	AddressResults []AddressResult       `json:"address_results"`
}

// NewSearchHandler creates a new search handler. defaultLimit applies when the request has no
// usable limit; larger limits are capped at maxLimit.
func NewSearchHandler(svc SearchService, defaultLimit, maxLimit int) *SearchHandler {
	return &SearchHandler{service: svc, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// Search handles GET /search requests
//
//	@Summary		Fuzzy street and address search
//	@Description	Resolves the location (fuzzy location, or exact suburb and town) and ranks streets and full addresses within it.
//	@Tags			search
//	@Produce		json
//	@Param			query		query		string	true	"Street or address fragment"
//	@Param			location	query		string	false	"Suburb or town fragment, matched fuzzily"
//	@Param			suburb		query		string	false	"Exact suburb"
//	@Param			town		query		string	false	"Exact town"
//	@Param			limit		query		int		false	"Maximum results per list"	default(3)
//	@Param			cutoff		query		number	false	"Minimum score 0-100"		default(75)
//	@Success		200			{object}	SearchResponse
//	@Failure		400			{object}	map[string]any
//	@Failure		404			{object}	map[string]any
//	@Failure		503			{object}	map[string]any
//	@Router			/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	query := service.Query{
		Text:     c.Query("query"),
		Location: c.Query("location"),
		Suburb:   c.Query("suburb"),
		Town:     c.Query("town"),
		Limit:    h.limit(c.Query("limit")),
	}

	if query.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'query'"})
		return
	}

	if raw := c.Query("cutoff"); raw != "" {
		cutoff, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(cutoff) || cutoff < 0 || cutoff > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cutoff must be a number between 0 and 100"})
			return
		}
		query.Cutoff = &cutoff
	}

	outcome, err := h.service.Resolve(c.Request.Context(), query)
	if err != nil {
		h.writeError(c, query, err)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Location:       outcome.Location,
		StreetResults:  toAddressResults(outcome.StreetResults),
		AddressResults: toAddressResults(outcome.AddressResults),
	})
}

// limit parses the limit parameter. Unparseable or negative values fall back to the default.
func (h *SearchHandler) limit(raw string) int {
	limit := h.defaultLimit
	if raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			limit = n
		}
	}
	return min(limit, h.maxLimit)
}

func (h *SearchHandler) writeError(c *gin.Context, query service.Query, err error) {
	var resErr *service.ResolutionError
	if errors.As(err, &resErr) {
		query = resErr.Query
	}

	switch {
	case errors.Is(err, service.ErrMissingQueryInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'query'"})
	case errors.Is(err, fuzzy.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameters must be valid UTF-8 text"})
	case errors.Is(err, service.ErrDatasetUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "address data is not loaded"})
	case errors.Is(err, service.ErrNoLocationMatch):
		c.JSON(http.StatusNotFound, gin.H{"error": "no streets found for the specified location", "query": query})
	case errors.Is(err, service.ErrNoRecordsForLocation):
		log.Error().Err(err).Str("location", query.Location).Msg("location index inconsistent with dataset")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no address records for the resolved location", "query": query})
	default:
		log.Error().Err(err).Msg("search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func toAddressResults(matches []models.MatchResult) []AddressResult {
	results := make([]AddressResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, AddressResult{
			Street:      m.Record.Street,
			Suburb:      m.Record.Suburb,
			Town:        m.Record.Town,
			FullAddress: m.Record.FullAddress,
			MatchedText: m.MatchedText,
			Score:       math.Round(m.Score*100) / 100,
		})
	}
	return results
}
