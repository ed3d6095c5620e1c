package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/agentdesk/pkg/repository/database/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Firestore contains configuration for Google Cloud Firestore
type Firestore struct {
	ProjectID        string
	DatabaseID       string
	CollectionPrefix string
}

// Flags returns CLI flags for Firestore configuration
func (f *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Category:    "database",
			Usage:       "Google Cloud Project ID for Firestore",
			Sources:     cli.EnvVars("AGENTDESK_FIRESTORE_PROJECT_ID"),
			Destination: &f.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Category:    "database",
			Usage:       "Firestore Database ID (default: (default))",
			Sources:     cli.EnvVars("AGENTDESK_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &f.DatabaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection-prefix",
			Category:    "database",
			Usage:       "Prefix for Firestore collection names",
			Sources:     cli.EnvVars("AGENTDESK_FIRESTORE_COLLECTION_PREFIX"),
			Destination: &f.CollectionPrefix,
		},
	}
}

// LogValue returns the Firestore configuration as a slog.Value for logging
func (f Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project_id", f.ProjectID),
		slog.String("database_id", f.DatabaseID),
		slog.String("collection_prefix", f.CollectionPrefix),
	)
}

// SetDefaults sets default values for Firestore configuration
func (f *Firestore) SetDefaults() {
	if f.DatabaseID == "" {
		f.DatabaseID = "(default)"
	}
}

// IsValid checks if the Firestore configuration is valid
func (f *Firestore) IsValid() bool {
	return f.ProjectID != "" && f.DatabaseID != ""
}

// Configure creates the Firestore client
func (f *Firestore) Configure(ctx context.Context) (*firestore.Client, error) {
	f.SetDefaults()
	if !f.IsValid() {
		return nil, goerr.New("--firestore-project-id is required for the firestore backend")
	}

	var opts []firestore.Option
	if f.CollectionPrefix != "" {
		opts = append(opts, firestore.WithCollectionPrefix(f.CollectionPrefix))
	}
	return firestore.New(ctx, f.ProjectID, f.DatabaseID, opts...)
}
