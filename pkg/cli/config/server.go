package config

import (
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"time"

	server "github.com/m-mizutani/agentdesk/pkg/controller/http"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Server contains configuration of the HTTP listener
type Server struct {
	Addr            string
	Port            int
	CORSOrigin      string
	ShutdownTimeout time.Duration
}

// Flags returns CLI flags for server configuration
func (x *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Category:    "server",
			Aliases:     []string{"a"},
			Sources:     cli.EnvVars("AGENTDESK_ADDR"),
			Usage:       "Listen address",
			Value:       "127.0.0.1:3000",
			Destination: &x.Addr,
		},
		&cli.IntFlag{
			Name:        "port",
			Category:    "server",
			Sources:     cli.EnvVars("AGENTDESK_PORT", "PORT"),
			Usage:       "Listen port, overrides the port part of --addr",
			Destination: &x.Port,
		},
		&cli.StringFlag{
			Name:        "cors-origin",
			Category:    "server",
			Sources:     cli.EnvVars("AGENTDESK_CORS_ORIGIN"),
			Usage:       "Origin allowed to call the API from a browser",
			Value:       server.DefaultCORSOrigin,
			Destination: &x.CORSOrigin,
		},
		&cli.DurationFlag{
			Name:        "shutdown-timeout",
			Category:    "server",
			Sources:     cli.EnvVars("AGENTDESK_SHUTDOWN_TIMEOUT"),
			Usage:       "Grace period for in-flight requests on shutdown",
			Value:       10 * time.Second,
			Destination: &x.ShutdownTimeout,
		},
	}
}

// LogValue returns the server configuration as a slog.Value for logging
func (x Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", x.ListenAddr()),
		slog.String("cors_origin", x.CORSOrigin),
		slog.Duration("shutdown_timeout", x.ShutdownTimeout),
	)
}

// Validate validates the server configuration
func (x *Server) Validate() error {
	if _, _, err := net.SplitHostPort(x.Addr); err != nil {
		return goerr.Wrap(err, "invalid listen address", goerr.V("addr", x.Addr))
	}
	if x.Port < 0 || x.Port > 65535 {
		return goerr.New("port out of range", goerr.V("port", x.Port))
	}
	if x.ShutdownTimeout <= 0 {
		return goerr.New("shutdown timeout must be positive", goerr.V("shutdown_timeout", x.ShutdownTimeout))
	}

	u, err := url.Parse(x.CORSOrigin)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return goerr.New("CORS origin must be an absolute URL", goerr.V("cors_origin", x.CORSOrigin))
	}

	return nil
}

// ListenAddr returns the address to listen on after applying --port
func (x *Server) ListenAddr() string {
	if x.Port == 0 {
		return x.Addr
	}

	host, _, err := net.SplitHostPort(x.Addr)
	if err != nil {
		return x.Addr
	}
	return net.JoinHostPort(host, strconv.Itoa(x.Port))
}
