package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"garden-irrigation/internal/api"

	"github.com/spf13/cobra"
)

// SimulateOptions holds flags for the simulate command.
type SimulateOptions struct {
	DeviceID string
	Server   string
	Interval time.Duration
	Duration time.Duration
}

// NewSimulateCommand creates the simulate command.
func NewSimulateCommand() *cobra.Command {
	opts := &SimulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a moisture sensor device against a running server",
		Long: `Simulate a device that posts drifting moisture readings and polls for
valve commands. A received valve:1 makes moisture rise, valve:0 makes it fall.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if opts.Duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, opts.Duration)
				defer cancel()
			}
			sim := NewSimulator(opts.DeviceID, opts.Server, http.DefaultClient)
			return sim.Run(ctx, opts.Interval)
		},
	}

	cmd.Flags().StringVar(&opts.DeviceID, "device-id", "pico_sim_01", "device ID to report as")
	cmd.Flags().StringVar(&opts.Server, "server", "http://localhost:5000", "backend base URL")
	cmd.Flags().DurationVar(&opts.Interval, "interval", 10*time.Second, "time between readings")
	cmd.Flags().DurationVar(&opts.Duration, "duration", time.Hour, "total simulation time (0 runs until interrupted)")

	return cmd
}

// Simulator plays the part of one sensor device.
type Simulator struct {
	deviceID string
	baseURL  string
	client   *http.Client
	rng      *rand.Rand

	moisture float64
	trend    float64
}

func NewSimulator(deviceID, baseURL string, client *http.Client) *Simulator {
	return &Simulator{
		deviceID: deviceID,
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   client,
		rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		moisture: 50,
		trend:    -1,
	}
}

func (s *Simulator) Run(ctx context.Context, interval time.Duration) error {
	slog.InfoContext(ctx, "Starting simulation", "device_id", s.deviceID, "server", s.baseURL, "interval", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := s.Step(ctx); err != nil && ctx.Err() == nil {
			slog.ErrorContext(ctx, "Simulation step failed", "device_id", s.deviceID, "error", err)
		}
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Simulation stopped", "device_id", s.deviceID)
			return nil
		case <-ticker.C:
		}
	}
}

// Step drifts the moisture, reports it and applies any pending valve command.
func (s *Simulator) Step(ctx context.Context) error {
	s.drift()
	moisture := s.moisture

	body, err := json.Marshal(api.SensorDataRequest{DeviceID: s.deviceID, Moisture: &moisture})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/sensor-data", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sensor-data returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	slog.InfoContext(ctx, "Sent moisture", "device_id", s.deviceID, "moisture", fmt.Sprintf("%.1f", moisture))

	cmd, err := s.pollCommand(ctx)
	if err != nil || cmd == "" {
		return err
	}
	slog.InfoContext(ctx, "Received command", "device_id", s.deviceID, "command", cmd)
	if state, ok := strings.CutPrefix(cmd, "valve:"); ok {
		if on, _ := strconv.Atoi(state); on == 1 {
			s.trend = 1
		} else {
			s.trend = -1
		}
	}
	return nil
}

func (s *Simulator) pollCommand(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/commands/"+s.deviceID, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("commands returned %d", resp.StatusCode)
	}
	var out api.CommandResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Command == nil {
		return "", nil
	}
	return *out.Command, nil
}

func (s *Simulator) drift() {
	s.moisture += s.trend * (0.5 + s.rng.Float64()*1.5)
	s.moisture += s.rng.Float64()*2 - 1
	s.moisture = max(0, min(100, s.moisture))

	switch {
	case s.moisture < 10:
		s.trend = 1
	case s.moisture > 90:
		s.trend = -1
	}
	if s.rng.Float64() < 0.05 {
		s.trend = -s.trend
	}
}
