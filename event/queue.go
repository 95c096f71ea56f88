package event

import (
	"sync/atomic"

	"github.com/lixenwraith/rockstorm/parameter"
)

// Queue is a lock-free MPSC ring buffer of game events
// Producers: the simulation step (and any collaborator goroutine)
// Consumer: the frame loop, between ticks
// Slots carry a published flag so a reader never observes a partial write
// When full, the oldest events are overwritten and counted as dropped
type Queue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // next slot to read
	tail      atomic.Uint64 // next slot to write
	dropped   atomic.Uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push reserves the next slot, writes ev and publishes it
// A writer that laps the reader moves head past the overwritten events
func (q *Queue) Push(ev GameEvent) {
	next := q.tail.Add(1)
	idx := (next - 1) & parameter.EventBufferMask
	q.events[idx] = ev
	q.published[idx].Store(true)

	for {
		head := q.head.Load()
		if next-head <= parameter.EventQueueSize {
			return
		}
		floor := next - parameter.EventQueueSize
		if q.head.CompareAndSwap(head, floor) {
			q.dropped.Add(floor - head)
			return
		}
	}
}

// Dropped returns the total number of events overwritten before being read
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}

// Consume returns all published events in FIFO order, nil when empty
func (q *Queue) Consume() []GameEvent {
	var out []GameEvent
	q.Drain(func(ev GameEvent) {
		out = append(out, ev)
	})
	return out
}

// Drain hands every published event to fn in FIFO order and advances head
// Stops early at a slot whose writer has not finished publishing
func (q *Queue) Drain(fn func(GameEvent)) int {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if tail == head {
			return 0
		}

		avail := tail - head
		if avail > parameter.EventQueueSize {
			avail = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		batch := make([]GameEvent, 0, avail)
		for i := uint64(0); i < avail; i++ {
			idx := (head + i) & parameter.EventBufferMask
			if !q.published[idx].Load() {
				break
			}
			batch = append(batch, q.events[idx])
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(batch))) {
			for _, ev := range batch {
				fn(ev)
			}
			return len(batch)
		}
	}
}

// Len returns the approximate pending count
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	n := int(tail - head)
	if n > parameter.EventQueueSize {
		return parameter.EventQueueSize
	}
	return n
}
