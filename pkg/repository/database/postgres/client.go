package postgres

import (
	"context"
	"database/sql"
	"embed"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/m-mizutani/agentdesk/pkg/domain/types/apperr"
	"github.com/m-mizutani/agentdesk/pkg/repository/database/migrate"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	// Register pgx stdlib driver for database/sql usage in migrations.
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	defaultMaxConns    = 10
	defaultPingTimeout = 3 * time.Second
)

// DB is the subset of pgxpool.Pool used by Client, satisfied by pgxmock in tests
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// Client is a PostgreSQL implementation of AgentRepository
type Client struct {
	db   DB
	pool *pgxpool.Pool
	now  func() time.Time
}

// Config holds connection settings
type Config struct {
	DSN      string
	MaxConns int32
}

// New connects to PostgreSQL and verifies the connection
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.DSN == "" {
		return nil, goerr.New("postgres DSN is required")
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse postgres DSN")
	}

	poolCfg.MaxConns = defaultMaxConns
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create postgres pool",
			goerr.T(apperr.ErrTagPersistence))
	}

	c := NewWithDB(pool)
	c.pool = pool

	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	if err := c.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	ctxlog.From(ctx).Info("postgres connection established",
		"host", poolCfg.ConnConfig.Host,
		"database", poolCfg.ConnConfig.Database,
		"max_conns", poolCfg.MaxConns,
	)
	return c, nil
}

// NewWithDB wraps an existing pool-like connection
func NewWithDB(db DB) *Client {
	return &Client{
		db:  db,
		now: time.Now,
	}
}

// Ping verifies the connection is alive
func (c *Client) Ping(ctx context.Context) error {
	if err := c.db.Ping(ctx); err != nil {
		return goerr.Wrap(err, "postgres ping failed",
			goerr.TV(apperr.RepositoryKey, "postgres"),
			goerr.T(apperr.ErrTagPersistence))
	}
	return nil
}

// Close shuts down the connection pool
func (c *Client) Close() error {
	if c.pool != nil {
		c.pool.Close()
	}
	return nil
}

// Migrate applies the embedded schema migrations to the database at dsn
func Migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return goerr.Wrap(err, "failed to open postgres for migrations")
	}
	defer db.Close()

	return migrate.Up(ctx, db, migrationsFS, "migrations", "postgres")
}
