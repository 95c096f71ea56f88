package status

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// Registry is the central metrics facade
// Publishers cache pointers once; per-tick writes go straight to the atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Lines formats every metric as "key: value", bools then ints then floats, each sorted by key
// Int keys ending in ".ns" are shown as durations
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())

	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s: %v", key, ptr.Load()))
	})

	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		val := ptr.Load()
		if strings.HasSuffix(key, ".ns") {
			lines = append(lines, fmt.Sprintf("%s: %s", strings.TrimSuffix(key, ".ns"), time.Duration(val)))
		} else {
			lines = append(lines, fmt.Sprintf("%s: %d", key, val))
		}
	})

	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s: %.2f", key, ptr.Get()))
	})

	return lines
}
