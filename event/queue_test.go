package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/rockstorm/parameter"
)

func TestQueue_FIFO(t *testing.T) {
	eq := NewQueue()
	if got := eq.Consume(); got != nil {
		t.Fatalf("Expected nil from empty queue, got %v", got)
	}

	eq.Push(GameEvent{Type: EventBulletFired, Entity: 1})
	eq.Push(GameEvent{Type: EventBulletHit, Entity: 1, Other: 2})
	eq.Push(GameEvent{Type: EventAsteroidFragmented, Entity: 2, Amount: 1})

	if eq.Len() != 3 {
		t.Fatalf("Expected 3 pending, got %d", eq.Len())
	}

	got := eq.Consume()
	if len(got) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(got))
	}
	want := []EventType{EventBulletFired, EventBulletHit, EventAsteroidFragmented}
	for i, ev := range got {
		if ev.Type != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], ev.Type)
		}
	}
	if eq.Len() != 0 {
		t.Errorf("Expected queue drained, got %d", eq.Len())
	}
}

// TestQueue_Overflow tests that the oldest events are overwritten when full
func TestQueue_Overflow(t *testing.T) {
	eq := NewQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		eq.Push(GameEvent{Type: EventAsteroidSpawned, Amount: float64(i)})
	}

	got := eq.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(got))
	}
	if got[0].Amount != 10 {
		t.Errorf("Expected oldest surviving event 10, got %v", got[0].Amount)
	}
	if got[len(got)-1].Amount != float64(total-1) {
		t.Errorf("Expected newest event %d, got %v", total-1, got[len(got)-1].Amount)
	}
	if got := eq.Dropped(); got != 10 {
		t.Errorf("Expected 10 dropped events, got %d", got)
	}
}

func TestQueue_ConcurrentPush(t *testing.T) {
	eq := NewQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				eq.Push(GameEvent{Type: EventShipDamaged})
			}
		}()
	}
	wg.Wait()

	if got := eq.Consume(); len(got) != 400 {
		t.Fatalf("Expected 400 events, got %d", len(got))
	}
}

func TestEventType_String(t *testing.T) {
	if EventShipLost.String() != "ShipLost" {
		t.Errorf("Unexpected name %q", EventShipLost.String())
	}
	if EventType(-1).String() != "Unknown" {
		t.Error("Expected Unknown for unregistered type")
	}
}

func TestQueue_Drain(t *testing.T) {
	q := NewQueue()
	q.Push(GameEvent{Type: EventShipLost, Amount: 2})
	q.Push(GameEvent{Type: EventGameOver})

	var seen []EventType
	n := q.Drain(func(ev GameEvent) { seen = append(seen, ev.Type) })
	if n != 2 || len(seen) != 2 || seen[1] != EventGameOver {
		t.Fatalf("Expected 2 drained events ending in GameOver, got %d %v", n, seen)
	}
	if q.Drain(func(GameEvent) { t.Fatal("Expected no events after drain") }) != 0 {
		t.Fatal("Expected zero count on empty drain")
	}
}
