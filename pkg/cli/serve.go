package cli

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/agentdesk/pkg/cli/config"
	server "github.com/m-mizutani/agentdesk/pkg/controller/http"
	"github.com/m-mizutani/agentdesk/pkg/usecase"
	"github.com/m-mizutani/agentdesk/pkg/utils/async"
	"github.com/m-mizutani/agentdesk/pkg/utils/safe"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		dbCfg     config.Database
		vendorCfg config.Vendor
	)

	var flags []cli.Flag
	flags = append(flags, serverCfg.Flags()...)
	flags = append(flags, dbCfg.Flags()...)
	flags = append(flags, vendorCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run server",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := ctxlog.From(ctx)
			logger.Info("starting server",
				"server", serverCfg,
				"database", dbCfg,
				"vendor", vendorCfg,
			)

			if err := serverCfg.Validate(); err != nil {
				return goerr.Wrap(err, "invalid server configuration")
			}

			// Configure vendor client
			vendorClient, err := vendorCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure vendor client")
			}

			// Open repository and test the connection
			repo, err := dbCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure database")
			}
			defer safe.Close(ctx, repo)

			// Create usecase
			ucOptions := []usecase.AgentOption{}
			if vendorClient != nil {
				ucOptions = append(ucOptions,
					usecase.WithVendorClient(vendorClient),
					usecase.WithVendorMirror(vendorCfg.Mirror),
				)
			}
			uc := usecase.NewAgentUseCases(repo, ucOptions...)

			// Build HTTP server options
			serverOptions := []server.Options{
				server.WithAgentController(server.NewAgentController(uc)),
				server.WithCORSOrigin(serverCfg.CORSOrigin),
				server.WithReadinessProbe(repo),
			}

			addr := serverCfg.ListenAddr()
			httpServer := http.Server{
				Addr:              addr,
				Handler:           server.New(serverOptions...),
				ReadTimeout:       30 * time.Second,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			errCh := make(chan error, 1)
			go func() {
				defer close(errCh)
				ctxlog.From(ctx).Info("server started", "addr", addr)
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			select {
			case err := <-errCh:
				return goerr.Wrap(err, "server stopped unexpectedly", goerr.V("addr", addr))
			case sig := <-sigCh:
				ctxlog.From(ctx).Info("shutting down server...", "signal", sig.String())
				return shutdown(ctx, &httpServer, serverCfg.ShutdownTimeout)
			}
		},
	}
}

// shutdown drains in-flight requests and background handlers within timeout
func shutdown(ctx context.Context, httpServer *http.Server, timeout time.Duration) error {
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return goerr.Wrap(err, "forced shutdown: in-flight requests did not finish",
			goerr.V("timeout", timeout))
	}

	if err := async.Wait(shutdownCtx); err != nil {
		return goerr.Wrap(err, "forced shutdown: background tasks did not finish",
			goerr.V("timeout", timeout))
	}

	ctxlog.From(ctx).Info("server stopped gracefully")
	return nil
}
