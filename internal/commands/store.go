package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"garden-irrigation/internal/automation"

	"github.com/google/uuid"
)

// Command is a valve instruction waiting to be collected by a device.
type Command struct {
	ID       string
	DeviceID string
	State    automation.ValveState
	Source   string
	IssuedAt time.Time
}

func New(deviceID string, state automation.ValveState, source string, now time.Time) Command {
	return Command{
		ID:       uuid.NewString(),
		DeviceID: deviceID,
		State:    state,
		Source:   source,
		IssuedAt: now,
	}
}

// Wire is the form the microcontroller understands.
func (c Command) Wire() string {
	return fmt.Sprintf("valve:%d", c.State)
}

type Publisher interface {
	Publish(ctx context.Context, cmd Command) error
}

// Store keeps at most one pending command per device. A newer command
// replaces an older one that was never collected.
type Store struct {
	mu      sync.Mutex
	pending map[string]Command
}

func NewStore() *Store {
	return &Store{
		pending: make(map[string]Command),
	}
}

// Set stores cmd unless a newer command is already pending. It reports
// whether cmd was stored.
func (s *Store) Set(cmd Command) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.pending[cmd.DeviceID]; ok && cur.IssuedAt.After(cmd.IssuedAt) {
		return false
	}
	s.pending[cmd.DeviceID] = cmd
	return true
}

func (s *Store) Get(deviceID string) (Command, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cmd, ok := s.pending[deviceID]
	return cmd, ok
}

// Take removes and returns the pending command for the device.
func (s *Store) Take(deviceID string) (Command, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cmd, ok := s.pending[deviceID]
	if ok {
		delete(s.pending, deviceID)
	}
	return cmd, ok
}

// Publish hands the command straight to the store. Used when no broker is
// configured.
func (s *Store) Publish(ctx context.Context, cmd Command) error {
	if s.Set(cmd) {
		slog.InfoContext(ctx, "Queued valve command", "device_id", cmd.DeviceID, "command", cmd.Wire())
	}
	return nil
}

func (s *Store) Dump() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for deviceID, cmd := range s.pending {
		slog.Info("Pending command", "device_id", deviceID, "command", cmd.Wire(), "issued_at", cmd.IssuedAt)
	}
}
