// Package commands wires the CLI: each subcommand fetches entity snapshots
// from the backend, runs them through the aggregation layer and renders the
// resulting view models.
package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/stocklens-dev/stocklens/internal/apiclient"
	"github.com/stocklens-dev/stocklens/internal/buildinfo"
	"github.com/stocklens-dev/stocklens/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:     "stocklens",
		Short:   "Inventory dashboard and analytics for your club stock",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.FileName, "path to stocklens.yaml")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newDashboardCommand(&cfgPath))
	rootCmd.AddCommand(newAnalyticsCommand(&cfgPath))
	rootCmd.AddCommand(newInventoryCommand(&cfgPath))
	rootCmd.AddCommand(newSuppliersCommand(&cfgPath))
	rootCmd.AddCommand(newAlertsCommand(&cfgPath))
	rootCmd.AddCommand(newEventsCommand(&cfgPath))
	rootCmd.AddCommand(newForecastCommand(&cfgPath))
	rootCmd.AddCommand(newExportCommand(&cfgPath))

	return rootCmd
}

// loadConfig reads the config file; a missing file falls back to defaults so
// the tool works against a local backend without any setup.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", path).Msg("no config file, using defaults")
		return config.Default("http://localhost:8000"), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// backendClient builds the REST client from config.
func backendClient(cfgPath string) (*apiclient.Client, *config.Config, error) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	return apiclient.New(cfg.API.BaseURL, cfg.Timeout(), log.Logger), cfg, nil
}
