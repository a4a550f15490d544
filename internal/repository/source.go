package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"address-resolver/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Source is an opened dataset source.
type Source interface {
	ListAddresses(ctx context.Context) ([]models.AddressRecord, error)
}

// Kind identifies how a dataset source string is interpreted.
type Kind string

const (
	KindCSV      Kind = "csv"
	KindHTTP     Kind = "http"
	KindPostgres Kind = "postgres"
	KindSQLite   Kind = "sqlite"
)

// KindOf classifies a dataset source: postgres:// and postgresql:// URLs, sqlite:// paths or
// files ending in .db/.sqlite, http(s):// URLs, and anything else as a local CSV path.
func KindOf(source string) Kind {
	lower := strings.ToLower(source)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return KindPostgres
	case strings.HasPrefix(lower, "sqlite://"),
		strings.HasSuffix(lower, ".db"),
		strings.HasSuffix(lower, ".sqlite"):
		return KindSQLite
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return KindHTTP
	default:
		return KindCSV
	}
}

// Open opens the dataset source described by source. The returned close function releases
// any connection held by the source and is never nil.
func Open(ctx context.Context, source string, timeout time.Duration) (Source, func(), error) {
	noop := func() {}
	if strings.TrimSpace(source) == "" {
		return nil, noop, fmt.Errorf("repository: dataset source is empty")
	}

	switch KindOf(source) {
	case KindPostgres:
		pool, err := pgxpool.New(ctx, source)
		if err != nil {
			return nil, noop, fmt.Errorf("repository: failed to connect to postgres: %w", err)
		}
		return NewPostgresRepository(pool), pool.Close, nil

	case KindSQLite:
		repo, err := OpenSQLite(strings.TrimPrefix(source, "sqlite://"))
		if err != nil {
			return nil, noop, err
		}
		return repo, func() { _ = repo.Close() }, nil

	case KindHTTP:
		return NewHTTPRepository(source, timeout), noop, nil

	default:
		return NewCSVFileRepository(source), noop, nil
	}
}

// Describe returns source with any password removed, for logs and status output.
func Describe(source string) string {
	if KindOf(source) != KindPostgres {
		return source
	}
	cfg, err := pgxpool.ParseConfig(source)
	if err != nil {
		return "postgres"
	}
	return fmt.Sprintf("postgres://%s@%s:%d/%s", cfg.ConnConfig.User, cfg.ConnConfig.Host, cfg.ConnConfig.Port, cfg.ConnConfig.Database)
}
