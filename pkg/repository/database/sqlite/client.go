package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"strings"
	"time"

	"github.com/m-mizutani/agentdesk/pkg/domain/types/apperr"
	"github.com/m-mizutani/agentdesk/pkg/repository/database/migrate"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	// Register pure-Go sqlite driver
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const memoryDSN = ":memory:"

// Client is a SQLite implementation of AgentRepository
type Client struct {
	db  *sql.DB
	now func() time.Time
}

// New opens the SQLite database at dsn and applies the embedded migrations
func New(ctx context.Context, dsn string) (*Client, error) {
	if dsn == "" {
		dsn = memoryDSN
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database",
			goerr.T(apperr.ErrTagPersistence))
	}

	// Every pooled connection to :memory: would get its own empty database
	if isMemoryDSN(dsn) {
		db.SetMaxOpenConns(1)
	}

	c := &Client{
		db:  db,
		now: time.Now,
	}

	if err := c.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	ctxlog.From(ctx).Info("sqlite database opened", "dsn", dsn)
	return c, nil
}

func isMemoryDSN(dsn string) bool {
	return dsn == memoryDSN || strings.Contains(dsn, "mode=memory")
}

// Migrate applies pending schema migrations
func (c *Client) Migrate(ctx context.Context) error {
	return migrate.Up(ctx, c.db, migrationsFS, "migrations", "sqlite3")
}

// Ping verifies the database is reachable
func (c *Client) Ping(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return goerr.Wrap(err, "sqlite ping failed",
			goerr.TV(apperr.RepositoryKey, "sqlite"),
			goerr.T(apperr.ErrTagPersistence))
	}
	return nil
}

// Close closes the underlying database
func (c *Client) Close() error {
	return c.db.Close()
}
