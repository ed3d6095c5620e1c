// Package migrate applies embedded goose migrations for the SQL backends.
package migrate

import (
	"context"
	"database/sql"
	"io/fs"
	"sync"

	"github.com/m-mizutani/agentdesk/pkg/domain/types/apperr"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pressly/goose/v3"
)

// goose keeps dialect and base FS as package globals
var gooseMu sync.Mutex

// Up applies every pending migration found in dir of fsys
func Up(ctx context.Context, db *sql.DB, fsys fs.FS, dir, dialect string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return goerr.Wrap(err, "failed to set goose dialect",
			goerr.TV(apperr.BackendKey, dialect))
	}

	before, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return goerr.Wrap(err, "failed to read schema version",
			goerr.TV(apperr.BackendKey, dialect),
			goerr.T(apperr.ErrTagPersistence))
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return goerr.Wrap(err, "failed to apply migrations",
			goerr.TV(apperr.BackendKey, dialect),
			goerr.T(apperr.ErrTagPersistence))
	}

	after, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return goerr.Wrap(err, "failed to read schema version",
			goerr.TV(apperr.BackendKey, dialect),
			goerr.T(apperr.ErrTagPersistence))
	}

	ctxlog.From(ctx).Info("database schema is up to date",
		"dialect", dialect,
		"from_version", before,
		"to_version", after,
	)
	return nil
}
