package tools

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/m-mizutani/agentdesk/pkg/cli/config"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// CmdVendorAgents returns the vendor-agents command
func CmdVendorAgents() *cli.Command {
	var vendorCfg config.Vendor

	return &cli.Command{
		Name:    "vendor-agents",
		Aliases: []string{"va"},
		Usage:   "Print agents registered at the vendor as JSON",
		Flags:   vendorCfg.Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := vendorCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure vendor client")
			}
			if client == nil {
				return goerr.New("--vendor-api-key is required")
			}

			agents, err := client.ListAgents(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to list vendor agents")
			}
			ctxlog.From(ctx).Debug("fetched vendor agents", "count", len(agents))

			var w io.Writer = os.Stdout
			if root := cmd.Root(); root != nil && root.Writer != nil {
				w = root.Writer
			}

			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if err := enc.Encode(agents); err != nil {
				return goerr.Wrap(err, "failed to write vendor agents")
			}
			return nil
		},
	}
}
