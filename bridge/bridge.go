package bridge

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/engine"
	"github.com/lixenwraith/rockstorm/parameter"
)

// Backend runs an out-of-process rigid-body world
// Run consumes messages until ctx ends and hands snapshots to publish
type Backend interface {
	Run(ctx context.Context, inbox <-chan Message, publish func(*Snapshot)) error
}

// Bridge carries fire-and-forget messages out and keeps the latest inbound snapshot
// Send and Latest are safe from any goroutine
type Bridge struct {
	backend Backend

	outbox chan Message
	outSeq atomic.Uint64
	sent   atomic.Uint64
	drop   atomic.Uint64

	latest     atomic.Pointer[Snapshot]
	appliedSeq uint64
	lastErr    atomic.Pointer[error]

	cancel    context.CancelFunc
	done      chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
	running   atomic.Bool
}

// New creates a bridge over backend, nil selects the null backend
func New(backend Backend) *Bridge {
	if backend == nil {
		backend = NewNullBackend(parameter.BridgeStepInterval)
	}
	return &Bridge{
		backend: backend,
		outbox:  make(chan Message, parameter.BridgeOutboxSize),
		done:    make(chan struct{}),
	}
}

// Start launches the backend worker and queues the Init message
func (b *Bridge) Start(ctx context.Context) {
	b.startOnce.Do(func() {
		ctx, b.cancel = context.WithCancel(ctx)
		b.running.Store(true)
		core.Go(func() {
			defer close(b.done)
			defer b.running.Store(false)
			if err := b.backend.Run(ctx, b.outbox, b.publish); err != nil && ctx.Err() == nil {
				b.lastErr.Store(&err)
			}
		})
		b.Send(Message{Type: MsgInit})
	})
}

// Stop cancels the worker and waits for it to exit
func (b *Bridge) Stop() {
	b.stopOnce.Do(func() {
		if b.cancel == nil {
			return
		}
		b.cancel()
		<-b.done
	})
}

// Send queues msg without blocking, returns false when the outbox is full
func (b *Bridge) Send(msg Message) bool {
	msg.Seq = b.outSeq.Add(1)
	select {
	case b.outbox <- msg:
		b.sent.Add(1)
		return true
	default:
		b.drop.Add(1)
		return false
	}
}

// SendControl queues the current intent
func (b *Bridge) SendControl(in engine.Intent) bool {
	return b.Send(Message{Type: MsgControlUpdate, Control: in})
}

func (b *Bridge) publish(s *Snapshot) {
	if s == nil {
		return
	}
	// Older snapshots never replace newer ones
	for {
		cur := b.latest.Load()
		if cur != nil && cur.Seq >= s.Seq {
			return
		}
		if b.latest.CompareAndSwap(cur, s) {
			return
		}
	}
}

// Latest returns the newest snapshot received, nil before the first
func (b *Bridge) Latest() *Snapshot {
	return b.latest.Load()
}

// Running reports whether the backend worker is alive
func (b *Bridge) Running() bool {
	return b.running.Load()
}

// Err returns the error the backend exited with, if any
func (b *Bridge) Err() error {
	if p := b.lastErr.Load(); p != nil {
		return *p
	}
	return nil
}

// Stats returns sent and dropped outbound message counts
func (b *Bridge) Stats() (sent, dropped uint64) {
	return b.sent.Load(), b.drop.Load()
}

// ApplyLatest writes the newest unapplied snapshot onto live entities
// Bodies whose id is no longer in the world are skipped; returns the number applied
// Must run on the goroutine that owns w
func (b *Bridge) ApplyLatest(w *engine.World) int {
	s := b.latest.Load()
	if s == nil || s.Seq <= b.appliedSeq {
		return 0
	}
	b.appliedSeq = s.Seq

	applied := 0
	for _, body := range s.Bodies {
		e, ok := w.Store.Get(body.ID)
		if !ok {
			continue
		}
		e.Transform.Position = body.Position
		e.Transform.Rotation = body.Rotation
		applied++
	}
	return applied
}
