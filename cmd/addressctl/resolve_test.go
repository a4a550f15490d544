package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"address-resolver/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintOutcome(t *testing.T) {
	var buf bytes.Buffer
	printOutcome(&buf, &models.ResolutionOutcome{
		Location: &models.LocationMatch{Token: "woburn", Score: 83.333, Method: models.LocationMethodFuzzy},
		StreetResults: []models.MatchResult{{
			MatchedText: "Main Street",
			Score:       90,
			Record:      models.AddressRecord{Street: "Main Street", Suburb: "Woburn", Town: "Lower Hutt"},
		}},
		AddressResults: []models.MatchResult{},
	})

	out := buf.String()
	assert.Contains(t, out, "Location: woburn (fuzzy, 83.33)")
	assert.Contains(t, out, "SCORE")
	assert.Contains(t, out, "Main Street")
	assert.Contains(t, out, "90.00")
	assert.Contains(t, out, "no matches")
}

func TestResolveCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streets.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"street,suburb,town,full_address\n"+
			"Main Street,Woburn,Lower Hutt,\"12 Main Street, Woburn, Lower Hutt\"\n"+
			"Queen Street,Masterton,Masterton,\"1 Queen Street, Masterton\"\n",
	), 0o644))

	cmd := createResolveCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"Main St", "--source", path, "--location", "wobern"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Location: woburn")
	assert.Contains(t, buf.String(), "Woburn")
	assert.NotContains(t, buf.String(), "Masterton")
}
