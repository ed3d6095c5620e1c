package config

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/agentdesk/pkg/domain/interfaces"
	"github.com/m-mizutani/agentdesk/pkg/domain/types/apperr"
	"github.com/m-mizutani/agentdesk/pkg/repository/database/memory"
	"github.com/m-mizutani/agentdesk/pkg/repository/database/postgres"
	"github.com/m-mizutani/agentdesk/pkg/repository/database/sqlite"
	"github.com/m-mizutani/agentdesk/pkg/utils/safe"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Database backends
const (
	BackendMemory    = "memory"
	BackendPostgres  = "postgres"
	BackendSQLite    = "sqlite"
	BackendFirestore = "firestore"
)

// Database contains configuration of the agent repository
type Database struct {
	Backend  string
	DSN      string `masq:"secret"`
	MaxConns int
	Migrate  bool

	Firestore Firestore
}

// Flags returns CLI flags for database configuration
func (x *Database) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "db-backend",
			Category:    "database",
			Sources:     cli.EnvVars("AGENTDESK_DB_BACKEND"),
			Usage:       "Agent storage backend [memory|postgres|sqlite|firestore]",
			Value:       BackendMemory,
			Destination: &x.Backend,
		},
		&cli.StringFlag{
			Name:        "db-dsn",
			Category:    "database",
			Sources:     cli.EnvVars("AGENTDESK_DB_DSN", "DATABASE_URL"),
			Usage:       "Connection string for postgres, or file path for sqlite",
			Destination: &x.DSN,
		},
		&cli.IntFlag{
			Name:        "db-max-conns",
			Category:    "database",
			Sources:     cli.EnvVars("AGENTDESK_DB_MAX_CONNS"),
			Usage:       "Maximum open connections (postgres)",
			Value:       10,
			Destination: &x.MaxConns,
		},
		&cli.BoolFlag{
			Name:        "db-migrate",
			Category:    "database",
			Sources:     cli.EnvVars("AGENTDESK_DB_MIGRATE"),
			Usage:       "Apply schema migrations on startup (postgres)",
			Destination: &x.Migrate,
		},
	}
	return append(flags, x.Firestore.Flags()...)
}

// LogValue returns the database configuration as a slog.Value for logging
func (x Database) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("backend", x.Backend),
		slog.String("dsn", redactDSN(x.DSN)),
		slog.Int("max_conns", x.MaxConns),
		slog.Bool("migrate", x.Migrate),
	}
	if x.Backend == BackendFirestore {
		attrs = append(attrs, slog.Any("firestore", x.Firestore))
	}
	return slog.GroupValue(attrs...)
}

// Validate validates the database configuration
func (x *Database) Validate() error {
	x.Backend = strings.ToLower(x.Backend)

	switch x.Backend {
	case BackendMemory, BackendSQLite:
		return nil
	case BackendPostgres:
		if x.DSN == "" {
			return goerr.New("--db-dsn is required for the postgres backend")
		}
		if x.MaxConns <= 0 {
			return goerr.New("--db-max-conns must be positive", goerr.V("max_conns", x.MaxConns))
		}
		return nil
	case BackendFirestore:
		x.Firestore.SetDefaults()
		if !x.Firestore.IsValid() {
			return goerr.New("--firestore-project-id is required for the firestore backend")
		}
		return nil
	default:
		return goerr.Wrap(apperr.ErrUnknownBackend, "unsupported database backend",
			goerr.TV(apperr.BackendKey, x.Backend))
	}
}

// Configure opens the configured repository and verifies the connection
func (x *Database) Configure(ctx context.Context) (interfaces.AgentRepository, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}

	var (
		repo interfaces.AgentRepository
		err  error
	)

	switch x.Backend {
	case BackendMemory:
		repo = memory.New()

	case BackendSQLite:
		repo, err = sqlite.New(ctx, x.DSN)

	case BackendPostgres:
		if x.Migrate {
			if err := postgres.Migrate(ctx, x.DSN); err != nil {
				return nil, err
			}
		}
		repo, err = postgres.New(ctx, postgres.Config{
			DSN:      x.DSN,
			MaxConns: int32(x.MaxConns), // #nosec G115 - bounded by pool config
		})

	case BackendFirestore:
		repo, err = x.Firestore.Configure(ctx)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open repository",
			goerr.TV(apperr.BackendKey, x.Backend))
	}

	if err := repo.Ping(ctx); err != nil {
		safe.Close(ctx, repo)
		return nil, goerr.Wrap(err, "database connection test failed",
			goerr.TV(apperr.BackendKey, x.Backend))
	}

	ctxlog.From(ctx).Info("database connection established", "backend", x.Backend)
	return repo, nil
}

// RunMigrations applies the schema migrations of SQL backends
func (x *Database) RunMigrations(ctx context.Context) error {
	if err := x.Validate(); err != nil {
		return err
	}

	switch x.Backend {
	case BackendPostgres:
		return postgres.Migrate(ctx, x.DSN)

	case BackendSQLite:
		// Opening the database applies pending migrations
		client, err := sqlite.New(ctx, x.DSN)
		if err != nil {
			return err
		}
		return client.Close()

	default:
		return goerr.New("backend has no schema migrations",
			goerr.TV(apperr.BackendKey, x.Backend))
	}
}
