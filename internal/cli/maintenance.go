package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"garden-irrigation/internal/config"
	"garden-irrigation/internal/db"

	"github.com/spf13/cobra"
)

type maintenanceStore interface {
	ListDevices(ctx context.Context) ([]db.DeviceSummary, error)
	Purge(ctx context.Context, table string, before time.Time) (int64, error)
	ExportRows(ctx context.Context, table string, since time.Time) ([]string, [][]string, error)
}

func openDB(ctx context.Context, cfg config.Config) (*db.DB, error) {
	return db.Init(ctx, db.Config{
		ConnString:     cfg.DB.ConnString,
		MigrationsPath: cfg.DB.MigrationsPath,
	})
}

// withDB loads the configuration, connects and hands the database to fn.
func withDB(cmd *cobra.Command, rootOpts *RootOptions, fn func(ctx context.Context, cfg config.Config, store *db.DB) error) error {
	cfg, err := loadConfig(rootOpts)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	database, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()
	return fn(ctx, cfg, database)
}

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "migrate",
		Short:        "Apply database migrations",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, rootOpts, func(ctx context.Context, _ config.Config, _ *db.DB) error {
				fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date")
				return nil
			})
		},
	}
}

// NewDevicesCommand creates the devices command.
func NewDevicesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "devices",
		Short:        "List known devices with their reading counts and rules",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, rootOpts, func(ctx context.Context, _ config.Config, store *db.DB) error {
				return runDevices(ctx, store, cmd.OutOrStdout())
			})
		},
	}
}

func runDevices(ctx context.Context, store maintenanceStore, out io.Writer) error {
	devices, err := store.ListDevices(ctx)
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		fmt.Fprintln(out, "No devices found")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DEVICE\tREADINGS\tVALVE ACTIONS\tLAST SEEN\tRULE")
	for _, d := range devices {
		lastSeen := "-"
		if d.LastSeen != nil {
			lastSeen = d.LastSeen.UTC().Format(time.RFC3339)
		}
		rule := "default"
		if d.Enabled != nil && d.LowThreshold != nil && d.HighThreshold != nil {
			state := "off"
			if *d.Enabled {
				state = "on"
			}
			rule = fmt.Sprintf("%s %.0f/%.0f", state, *d.LowThreshold, *d.HighThreshold)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n", d.DeviceID, d.ReadingCount, d.ValveActionCount, lastSeen, rule)
	}
	return tw.Flush()
}

// NewPurgeCommand creates the purge command.
func NewPurgeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "purge <" + strings.Join(db.PurgeTables(), "|") + "> [days]",
		Short:        "Delete rows older than the given number of days",
		Long:         "Delete time-series rows older than the given number of days. Defaults to retention.days.",
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, rootOpts, func(ctx context.Context, cfg config.Config, store *db.DB) error {
				days := cfg.Retention.Days
				if len(args) == 2 {
					var err error
					if days, err = parseDays(args[1]); err != nil {
						return err
					}
				}
				return runPurge(ctx, store, cmd.OutOrStdout(), args[0], days, time.Now())
			})
		},
	}
}

func runPurge(ctx context.Context, store maintenanceStore, out io.Writer, table string, days int, now time.Time) error {
	n, err := store.Purge(ctx, table, now.AddDate(0, 0, -days))
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "Purged old rows", "table", table, "days", days, "rows", n)
	fmt.Fprintf(out, "Deleted %d rows from %s older than %d days\n", n, table, days)
	return nil
}

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	Days int
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:          "export <" + strings.Join(db.ExportTables(), "|") + "> <output.csv>",
		Short:        "Export a table to CSV",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkExportTable(args[0]); err != nil {
				return err
			}
			return withDB(cmd, rootOpts, func(ctx context.Context, _ config.Config, store *db.DB) error {
				n, err := exportToFile(ctx, store, args[0], args[1], opts.Days, time.Now())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", n, args[1])
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&opts.Days, "days", 0, "only export rows from the last N days (0 exports everything)")

	return cmd
}

func checkExportTable(table string) error {
	if !slices.Contains(db.ExportTables(), table) {
		return fmt.Errorf("%w: %s", db.ErrUnknownTable, table)
	}
	return nil
}

// exportToFile writes the table to path. The file is only created once the
// table is known, and removed again when the export fails.
func exportToFile(ctx context.Context, store maintenanceStore, table, path string, days int, now time.Time) (int, error) {
	if err := checkExportTable(table); err != nil {
		return 0, err
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	n, err := runExport(ctx, store, f, table, days, now)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return 0, err
	}
	return n, nil
}

func runExport(ctx context.Context, store maintenanceStore, out io.Writer, table string, days int, now time.Time) (int, error) {
	if days < 0 {
		return 0, fmt.Errorf("invalid days %d", days)
	}
	var since time.Time
	if days > 0 {
		since = now.AddDate(0, 0, -days)
	}
	header, rows, err := store.ExportRows(ctx, table, since)
	if err != nil {
		return 0, err
	}

	w := csv.NewWriter(out)
	if err := w.Write(header); err != nil {
		return 0, err
	}
	if err := w.WriteAll(rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func parseDays(raw string) (int, error) {
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return 0, fmt.Errorf("invalid days %q: must be a positive integer", raw)
	}
	return days, nil
}
