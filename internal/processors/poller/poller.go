package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"garden-irrigation/internal/worker"
)

var ErrSweepFailed = errors.New("automation sweep failed")

type Config struct {
	Interval time.Duration
	Sweeper  sweeper
}

type sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// Poller re-evaluates automation for recently active devices on a fixed
// tick, so a valve still reacts when a device stops reporting mid-cycle.
type Poller struct {
	worker  *worker.Worker
	sweeper sweeper
}

func New(cfg Config) *Poller {
	p := &Poller{
		sweeper: cfg.Sweeper,
	}

	p.worker = worker.New(worker.Config{
		Name:      "automation-poller",
		Processor: p,
		Interval:  cfg.Interval,
	})
	return p
}

func (p *Poller) Run(ctx context.Context) {
	p.worker.Run(ctx)
}

func (p *Poller) ProcessMessage(ctx context.Context) error {
	const fn = "Poller:ProcessMessage"
	n, err := p.sweeper.Sweep(ctx)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrSweepFailed, err)
	}
	slog.DebugContext(ctx, "Automation sweep complete", "devices", n)
	return nil
}
