package main

import (
	"fmt"
	"io"
	"time"

	"address-resolver/internal/models"
	"address-resolver/internal/repository"
	"address-resolver/internal/service"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// createResolveCmd runs a single lookup against a dataset source and prints the ranked results.
func createResolveCmd() *cobra.Command {
	var (
		source, location, suburb, town string
		limit                          int
		cutoff, locationCutoff         float64
	)

	cmd := &cobra.Command{
		Use:   "resolve [query]",
		Short: "Resolve a street or address fragment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, closeRepo, err := repository.Open(ctx, source, 30*time.Second)
			if err != nil {
				return err
			}
			defer closeRepo()

			resolver := service.NewResolverService(service.ResolverOptions{
				AddressCutoff:  cutoff,
				LocationCutoff: locationCutoff,
			}, nil)
			datasets := service.NewDatasetService(repo, resolver, repository.Describe(source), nil)
			if _, err := datasets.Reload(ctx); err != nil {
				return err
			}

			outcome, err := resolver.Resolve(ctx, service.Query{
				Text:     args[0],
				Location: location,
				Suburb:   suburb,
				Town:     town,
				Limit:    limit,
			})
			if err != nil {
				return err
			}

			printOutcome(cmd.OutOrStdout(), outcome)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "nz_streets.csv", "Dataset source: CSV path, http(s) URL, sqlite file or postgres URL")
	cmd.Flags().StringVar(&location, "location", "", "Suburb or town, matched fuzzily")
	cmd.Flags().StringVar(&suburb, "suburb", "", "Exact suburb")
	cmd.Flags().StringVar(&town, "town", "", "Exact town")
	cmd.Flags().IntVar(&limit, "limit", 3, "Maximum results per list")
	cmd.Flags().Float64Var(&cutoff, "cutoff", service.DefaultAddressCutoff, "Minimum street and address score")
	cmd.Flags().Float64Var(&locationCutoff, "location-cutoff", service.DefaultLocationCutoff, "Minimum location score")

	return cmd
}

func printOutcome(w io.Writer, outcome *models.ResolutionOutcome) {
	if loc := outcome.Location; loc != nil {
		fmt.Fprintf(w, "Location: %s (%s, %.2f)\n", loc.Token, loc.Method, loc.Score)
	}

	fmt.Fprintln(w, "\n=== Streets ===")
	renderMatches(w, outcome.StreetResults)
	fmt.Fprintln(w, "\n=== Addresses ===")
	renderMatches(w, outcome.AddressResults)
}

func renderMatches(w io.Writer, matches []models.MatchResult) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "no matches")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Score", "Matched", "Street", "Suburb", "Town"})
	for _, m := range matches {
		table.Append([]string{
			fmt.Sprintf("%.2f", m.Score),
			m.MatchedText,
			m.Record.Street,
			m.Record.Suburb,
			m.Record.Town,
		})
	}
	table.Render()
}
