package cli

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/agentdesk/pkg/cli/config"
	utilerrors "github.com/m-mizutani/agentdesk/pkg/utils/errors"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const defaultEnvFile = ".env"

func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg config.Logger
		envFile   string
	)

	// .env must be loaded before flags read their environment sources
	if err := loadEnvFile(envFileFromArgs(args)); err != nil {
		utilerrors.Handle(ctx, err)
		return err
	}

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "env-file",
			Sources:     cli.EnvVars("AGENTDESK_ENV_FILE"),
			Usage:       "Load environment variables from this file if it exists",
			Value:       defaultEnvFile,
			Destination: &envFile,
		},
	}
	flags = append(flags, loggerCfg.Flags()...)

	app := &cli.Command{
		Name:  "agentdesk",
		Usage: "Agent management API server",
		Flags: flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}

			ctx = ctxlog.With(ctx, logger)
			ctxlog.From(ctx).Info("base options", "logger", loggerCfg, "env_file", envFile)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			loggerCfg.Close()
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdMigrate(),
			cmdTool(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		utilerrors.Handle(ctx, goerr.Wrap(err, "failed to run app"))
		return err
	}

	return nil
}

// envFileFromArgs finds --env-file ahead of flag parsing
func envFileFromArgs(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--env-file" || arg == "-env-file":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--env-file="):
			return strings.TrimPrefix(arg, "--env-file=")
		case strings.HasPrefix(arg, "-env-file="):
			return strings.TrimPrefix(arg, "-env-file=")
		}
	}

	if v := os.Getenv("AGENTDESK_ENV_FILE"); v != "" {
		return v
	}
	return defaultEnvFile
}

// loadEnvFile loads path without overriding variables already set. A missing file is ignored.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return goerr.Wrap(err, "failed to load env file", goerr.V("path", path))
	}
	return nil
}
