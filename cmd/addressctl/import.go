package main

import (
	"fmt"
	"os"

	"address-resolver/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// createImportCmd loads a street CSV into the addresses table.
func createImportCmd() *cobra.Command {
	var file, database string
	var truncate bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a street CSV into PostgreSQL",
		Long:  `Parse a CSV with street, suburb, town and full_address columns and bulk copy it into the addresses table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			log.Info().Str("file", file).Msg("starting import")

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer f.Close()

			records, err := repository.ParseCSV(f)
			if err != nil {
				return err
			}
			log.Info().Int("records", len(records)).Msg("parsed CSV")

			pool, err := pgxpool.New(ctx, database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer pool.Close()

			repo := repository.NewPostgresRepository(pool)
			if err := repo.EnsureSchema(ctx); err != nil {
				return err
			}

			copied, err := repo.ImportAddresses(ctx, records, truncate)
			if err != nil {
				return err
			}

			count, err := repo.CountAddresses(ctx)
			if err != nil {
				return err
			}
			if truncate && count != int64(len(records)) {
				return fmt.Errorf("record count mismatch: expected %d, got %d", len(records), count)
			}

			log.Info().
				Int64("copied", copied).
				Int64("total", count).
				Str("database", repository.Describe(database)).
				Msg("import complete")
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to the CSV file to import")
	cmd.Flags().StringVar(&database, "database", os.Getenv("DATABASE_URL"), "PostgreSQL connection URL")
	cmd.Flags().BoolVar(&truncate, "truncate", false, "Replace existing rows instead of appending")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
