package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"garden-irrigation/internal/automation"
	k "garden-irrigation/internal/kafka"

	"github.com/segmentio/kafka-go"
)

var (
	ErrMarshal      = errors.New("error marshalling command")
	ErrWriteMessage = errors.New("error writing message")
)

// KafkaPublisher sends commands to the command topic. A dispatcher consumes
// the topic and fills the pending Store the devices poll.
type KafkaPublisher struct {
	writer k.Writer
}

func NewKafkaPublisher(writer k.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, cmd Command) error {
	const fn = "KafkaPublisher:Publish"
	out, err := json.Marshal(ToRecord(cmd))
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrMarshal, err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(cmd.DeviceID), Value: out})
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrWriteMessage, err)
	}
	slog.InfoContext(ctx, "Published valve command", "device_id", cmd.DeviceID, "command", cmd.Wire(), "id", cmd.ID)
	return nil
}

func (p *KafkaPublisher) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing command publisher...")
	p.writer.Close()
}

func ToRecord(cmd Command) k.StructuredConnectRecord {
	return k.StructuredConnectRecord{
		Schema: k.StructuredSchema,
		Payload: k.ValveCommand{
			ID:        cmd.ID,
			DeviceID:  cmd.DeviceID,
			State:     int(cmd.State),
			Source:    cmd.Source,
			Timestamp: cmd.IssuedAt.UnixMilli(),
		},
	}
}

func FromRecord(rec k.StructuredConnectRecord) (Command, error) {
	state, err := automation.ParseValveState(rec.Payload.State)
	if err != nil {
		return Command{}, err
	}
	return Command{
		ID:       rec.Payload.ID,
		DeviceID: rec.Payload.DeviceID,
		State:    state,
		Source:   rec.Payload.Source,
		IssuedAt: time.UnixMilli(rec.Payload.Timestamp).UTC(),
	}, nil
}
