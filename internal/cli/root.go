package cli

import (
	"log/slog"
	"os"

	"garden-irrigation/internal/config"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigDir string
}

// NewRootCommand creates the root command for the irrigation backend.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "irrigation",
		Short: "Garden irrigation backend",
		Long:  "Collects soil moisture readings, drives watering valves by hysteresis rules and tracks plant growth.",
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigDir, "config", "", "directory containing config.yaml")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewDevicesCommand(opts))
	cmd.AddCommand(NewPurgeCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewSimulateCommand())

	return cmd
}

// loadConfig reads the configuration and installs the JSON logger at the
// configured level.
func loadConfig(opts *RootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigDir)
	if err != nil {
		return config.Config{}, err
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()})))
	return cfg, nil
}
