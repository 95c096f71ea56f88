package bridge

import (
	"context"
	"sync/atomic"
	"time"
)

// NullBackend accepts every message and publishes empty snapshots at a fixed cadence once initialised
type NullBackend struct {
	interval time.Duration

	initialised atomic.Bool
	controls    atomic.Uint64
	steps       atomic.Uint64
}

// NewNullBackend creates a backend stepping every interval
func NewNullBackend(interval time.Duration) *NullBackend {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &NullBackend{interval: interval}
}

// Run implements Backend
func (n *NullBackend) Run(ctx context.Context, inbox <-chan Message, publish func(*Snapshot)) error {
	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-inbox:
			switch msg.Type {
			case MsgInit:
				n.initialised.Store(true)
			case MsgControlUpdate:
				// A control update also initialises a backend that missed Init
				n.initialised.Store(true)
				n.controls.Add(1)
			}
		case <-ticker.C:
			if !n.initialised.Load() {
				continue
			}
			seq := n.steps.Add(1)
			publish(&Snapshot{Seq: seq})
		}
	}
}

// Initialised reports whether Init or a control update has been received
func (n *NullBackend) Initialised() bool {
	return n.initialised.Load()
}

// Controls returns the number of control updates consumed
func (n *NullBackend) Controls() uint64 {
	return n.controls.Load()
}

// Steps returns the number of snapshots published
func (n *NullBackend) Steps() uint64 {
	return n.steps.Load()
}
