package status

import (
	"sync"
	"testing"
)

// TestMetricMap_GetCachesPointer tests that repeated Get returns the same pointer
func TestMetricMap_GetCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("sim.ticks")
	b := r.Ints.Get("sim.ticks")
	if a != b {
		t.Fatalf("Expected cached pointer, got distinct pointers")
	}
	a.Store(7)
	if got := r.Ints.Get("sim.ticks").Load(); got != 7 {
		t.Errorf("Expected 7, got %d", got)
	}
	if !r.Ints.Has("sim.ticks") || r.Ints.Has("missing") {
		t.Errorf("Has reported wrong membership")
	}
}

// TestRegistry_Lines tests formatting order and duration keys
func TestRegistry_Lines(t *testing.T) {
	r := NewRegistry()
	r.Floats.Get("ship.health").Set(87.5)
	r.Ints.Get("game.score").Store(120)
	r.Ints.Get("sim.step.ns").Store(1500)
	r.Bools.Get("game.over").Store(true)

	want := []string{
		"game.over: true",
		"game.score: 120",
		"sim.step: 1.5µs",
		"ship.health: 87.50",
	}
	got := r.Lines()
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if r.TotalCount() != 4 {
		t.Errorf("Expected 4 metrics, got %d", r.TotalCount())
	}
}

// TestAtomicFloat_Concurrent tests Add and Max under contention
func TestAtomicFloat_Concurrent(t *testing.T) {
	var sum, peak AtomicFloat
	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				sum.Add(0.5)
				peak.Max(float64(n))
			}
		}(i)
	}
	wg.Wait()

	if got := sum.Get(); got != 400 {
		t.Errorf("Expected sum 400, got %v", got)
	}
	if got := peak.Get(); got != 8 {
		t.Errorf("Expected peak 8, got %v", got)
	}
	if got := peak.Max(3); got != 8 {
		t.Errorf("Expected Max to keep 8, got %v", got)
	}
}
