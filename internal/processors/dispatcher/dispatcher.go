package dispatcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"garden-irrigation/internal/commands"
	"garden-irrigation/internal/worker"

	k "garden-irrigation/internal/kafka" // alias to avoid name conflict
)

var (
	ErrReadMessage    = errors.New("error reading message")
	ErrJSONParse      = errors.New("error parsing JSON")
	ErrInvalidCommand = errors.New("invalid command")
	ErrStaleCommand   = errors.New("stale command")
)

type Config struct {
	Brokers         []string
	ConsumerGroupID string
	ConsumerTopic   string
	Store           commandStore
}

type commandStore interface {
	Get(deviceID string) (commands.Command, bool)
	Set(cmd commands.Command) bool
}

// Dispatcher moves valve commands from the command topic into the pending
// store that devices poll.
type Dispatcher struct {
	worker *worker.Worker
	reader k.Reader
	store  commandStore
}

func New(cfg Config) *Dispatcher {
	d := &Dispatcher{
		reader: k.NewReader(cfg.Brokers, cfg.ConsumerGroupID, cfg.ConsumerTopic),
		store:  cfg.Store,
	}

	d.worker = worker.New(worker.Config{
		Name:      "dispatcher-worker",
		Processor: d,
	})
	return d
}

func (d *Dispatcher) Run(ctx context.Context) {
	d.worker.Run(ctx)
}

func (d *Dispatcher) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing dispatcher resources...")
	d.reader.Close()
}

// Auto-commit active
func (d *Dispatcher) ProcessMessage(ctx context.Context) error {
	const fn = "Dispatcher:ProcessMessage"
	m, err := d.reader.ReadMessage(ctx)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrReadMessage, err)
	}
	var record k.StructuredConnectRecord
	if err := json.Unmarshal(m.Value, &record); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrJSONParse, err)
	}

	cmd, err := d.validateCommand(record)
	if err != nil {
		slog.InfoContext(ctx, "Invalid command, skipping",
			"error", err,
			"device_id", record.Payload.DeviceID,
			"state", record.Payload.State,
			"timestamp", record.Payload.Timestamp,
		)
		return nil
	}

	d.store.Set(cmd)
	slog.InfoContext(ctx, "Dispatched valve command", "device_id", cmd.DeviceID, "command", cmd.Wire())
	return nil
}

func (d *Dispatcher) validateCommand(record k.StructuredConnectRecord) (commands.Command, error) {
	if record.Payload.DeviceID == "" {
		return commands.Command{}, fmt.Errorf("%w: missing device id", ErrInvalidCommand)
	}
	cmd, err := commands.FromRecord(record)
	if err != nil {
		return commands.Command{}, fmt.Errorf("%w: %w", ErrInvalidCommand, err)
	}
	if pending, exists := d.store.Get(cmd.DeviceID); exists && pending.IssuedAt.After(cmd.IssuedAt) {
		return commands.Command{}, ErrStaleCommand
	}
	return cmd, nil
}
