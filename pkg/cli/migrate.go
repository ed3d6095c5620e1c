package cli

import (
	"context"

	"github.com/m-mizutani/agentdesk/pkg/cli/config"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdMigrate() *cli.Command {
	var dbCfg config.Database

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Apply database schema migrations and exit",
		Flags:   dbCfg.Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctxlog.From(ctx).Info("running migrations", "database", dbCfg)

			if err := dbCfg.RunMigrations(ctx); err != nil {
				return goerr.Wrap(err, "migration failed")
			}
			return nil
		},
	}
}
