package config

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/m-mizutani/agentdesk/pkg/domain/interfaces"
	"github.com/m-mizutani/agentdesk/pkg/service/elevenlabs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Vendor contains configuration of the external conversational-agent service
type Vendor struct {
	BaseURL string
	APIKey  string `masq:"secret"`
	Timeout time.Duration
	Retry   int
	Mirror  bool
}

// Flags returns CLI flags for vendor configuration
func (x *Vendor) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "vendor-base-url",
			Category:    "vendor",
			Sources:     cli.EnvVars("AGENTDESK_VENDOR_BASE_URL"),
			Usage:       "Vendor API endpoint",
			Value:       elevenlabs.DefaultBaseURL,
			Destination: &x.BaseURL,
		},
		&cli.StringFlag{
			Name:        "vendor-api-key",
			Category:    "vendor",
			Sources:     cli.EnvVars("AGENTDESK_VENDOR_API_KEY", "ELEVENLABS_API_KEY"),
			Usage:       "Vendor API key. Vendor features are disabled when empty",
			Destination: &x.APIKey,
		},
		&cli.DurationFlag{
			Name:        "vendor-timeout",
			Category:    "vendor",
			Sources:     cli.EnvVars("AGENTDESK_VENDOR_TIMEOUT"),
			Usage:       "Timeout of a single vendor request",
			Value:       elevenlabs.DefaultTimeout,
			Destination: &x.Timeout,
		},
		&cli.IntFlag{
			Name:        "vendor-retry",
			Category:    "vendor",
			Sources:     cli.EnvVars("AGENTDESK_VENDOR_RETRY"),
			Usage:       "Retry count for failed vendor reads",
			Value:       2,
			Destination: &x.Retry,
		},
		&cli.BoolFlag{
			Name:        "vendor-mirror",
			Category:    "vendor",
			Sources:     cli.EnvVars("AGENTDESK_VENDOR_MIRROR"),
			Usage:       "Also create every new agent at the vendor",
			Destination: &x.Mirror,
		},
	}
}

// LogValue returns the vendor configuration as a slog.Value for logging
func (x Vendor) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", x.BaseURL),
		slog.String("api_key", redactSecret(x.APIKey)),
		slog.Duration("timeout", x.Timeout),
		slog.Int("retry", x.Retry),
		slog.Bool("mirror", x.Mirror),
	)
}

// Enabled reports whether a vendor client can be created
func (x *Vendor) Enabled() bool {
	return x.APIKey != ""
}

// Validate validates the vendor configuration
func (x *Vendor) Validate() error {
	if x.Mirror && !x.Enabled() {
		return goerr.New("--vendor-mirror requires --vendor-api-key")
	}
	if x.Timeout <= 0 {
		return goerr.New("vendor timeout must be positive", goerr.V("timeout", x.Timeout))
	}
	if x.Retry < 0 {
		return goerr.New("vendor retry count must not be negative", goerr.V("retry", x.Retry))
	}

	u, err := url.Parse(x.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return goerr.New("vendor base URL must be an absolute URL", goerr.V("base_url", x.BaseURL))
	}
	return nil
}

// Configure creates the vendor client. It returns nil when no API key is set.
func (x *Vendor) Configure() (interfaces.VendorClient, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}
	if !x.Enabled() {
		return nil, nil
	}

	client, err := elevenlabs.New(x.APIKey,
		elevenlabs.WithBaseURL(x.BaseURL),
		elevenlabs.WithTimeout(x.Timeout),
		elevenlabs.WithRetryCount(x.Retry),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create vendor client")
	}
	return client, nil
}
