package models

// AddressRecord is one row of the reference dataset. All fields are opaque text and none is
// unique on its own; absent values are carried as the empty string.
type AddressRecord struct {
	Street      string `json:"street"`
	Suburb      string `json:"suburb"`
	Town        string `json:"town"`
	FullAddress string `json:"full_address"`
}

// MatchResult is one ranked match together with the record it was resolved to.
type MatchResult struct {
	MatchedText string        `json:"matched_text"`
	Score       float64       `json:"score"`
	Record      AddressRecord `json:"record"`
}

// Location resolution methods.
const (
	LocationMethodFuzzy = "fuzzy"
	LocationMethodExact = "exact"
)

// LocationMatch describes the location a query was scoped to.
type LocationMatch struct {
	Token  string  `json:"token"`
	Score  float64 `json:"score"`
	Method string  `json:"method"`
}

// ResolutionOutcome is the successful result of resolving one query. Location is nil when the
// query was not scoped to a location.
type ResolutionOutcome struct {
	Location       *LocationMatch `json:"location,omitempty"`
	StreetResults  []MatchResult  `json:"street_results"`
	AddressResults []MatchResult  `json:"address_results"`
}
