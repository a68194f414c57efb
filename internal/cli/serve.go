package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"garden-irrigation/internal/api"
	"garden-irrigation/internal/automation"
	"garden-irrigation/internal/commands"
	"garden-irrigation/internal/config"
	"garden-irrigation/internal/db"
	"garden-irrigation/internal/irrigation"
	k "garden-irrigation/internal/kafka"
	"garden-irrigation/internal/processors/dispatcher"
	"garden-irrigation/internal/processors/poller"

	"github.com/spf13/cobra"
)

const brokerWait = 60 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "serve",
		Short:        "Run the HTTP API and the automation workers",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootOpts)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}
}

func runServe(ctx context.Context, cfg config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	slog.InfoContext(ctx, "Starting service...", "addr", cfg.HTTP.Addr, "kafka", cfg.Kafka.Enabled)

	database, err := db.Init(ctx, db.Config{
		ConnString:     cfg.DB.ConnString,
		MigrationsPath: cfg.DB.MigrationsPath,
	})
	if err != nil {
		return err
	}
	defer database.Close()

	store := commands.NewStore()
	var (
		wg        sync.WaitGroup
		publisher commands.Publisher = store
	)

	if cfg.Kafka.Enabled {
		if err := k.WaitForBroker(ctx, cfg.Kafka.Brokers[0], brokerWait, 2*time.Second); err != nil {
			return err
		}
		kp := commands.NewKafkaPublisher(k.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.CommandTopic))
		defer kp.Close(ctx)
		publisher = kp

		d := dispatcher.New(dispatcher.Config{
			Brokers:         cfg.Kafka.Brokers,
			ConsumerGroupID: cfg.Kafka.ConsumerGroupID,
			ConsumerTopic:   cfg.Kafka.CommandTopic,
			Store:           store,
		})
		wg.Go(func() {
			d.Run(ctx)
		})
		defer d.Close(ctx)
	}

	svc := irrigation.New(irrigation.Config{
		DB:        database,
		Publisher: publisher,
		Throttle: automation.Throttle{
			MinRest:        cfg.Automation.MinRest,
			MaxDailyCycles: cfg.Automation.MaxDailyCycles,
		},
		Calibration:  irrigation.Calibration{WetADC: cfg.Sensor.WetADC, DryADC: cfg.Sensor.DryADC},
		DefaultLow:   cfg.Automation.DefaultLow,
		DefaultHigh:  cfg.Automation.DefaultHigh,
		ActiveWindow: cfg.Automation.ActiveWindow,
	})

	p := poller.New(poller.Config{
		Interval: cfg.Automation.PollInterval,
		Sweeper:  svc,
	})
	wg.Go(func() {
		p.Run(ctx)
	})

	srv := &http.Server{
		Addr: cfg.HTTP.Addr,
		Handler: api.New(api.Config{
			DB:             database,
			Irrigation:     svc,
			Commands:       store,
			AllowedOrigins: cfg.HTTP.AllowedOrigins,
		}).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "HTTP server listening", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if serr := srv.Shutdown(shutdownCtx); serr != nil {
		slog.ErrorContext(ctx, "HTTP shutdown failed", "error", serr)
	}

	wg.Wait()
	store.Dump()
	slog.InfoContext(ctx, "Service stopped")
	return err
}
