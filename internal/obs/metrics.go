package obs

import (
	"sort"
	"strings"
	"sync"
)

// Label is a key/value pair attached to measurements.
type Label struct {
	Key   string
	Value string
}

// Meter is a very small interface for emitting counters/histograms.
// Implementations may no-op or bridge to a metrics system.
type Meter interface {
	Counter(name string, value float64, labels ...Label)
	Histogram(name string, value float64, labels ...Label)
}

// NopMeter is a Meter that discards all measurements.
type NopMeter struct{}

func (NopMeter) Counter(name string, value float64, labels ...Label)   {}
func (NopMeter) Histogram(name string, value float64, labels ...Label) {}

// MemMeter keeps running totals in memory. Counters sum values;
// histograms keep count and sum.
type MemMeter struct {
	mu     sync.Mutex
	counts map[string]float64
	hsum   map[string]float64
	hcount map[string]int
}

func (m *MemMeter) Counter(name string, value float64, labels ...Label) {
	k := seriesKey(name, labels)
	m.mu.Lock()
	if m.counts == nil {
		m.counts = make(map[string]float64)
	}
	m.counts[k] += value
	m.mu.Unlock()
}

func (m *MemMeter) Histogram(name string, value float64, labels ...Label) {
	k := seriesKey(name, labels)
	m.mu.Lock()
	if m.hsum == nil {
		m.hsum = make(map[string]float64)
		m.hcount = make(map[string]int)
	}
	m.hsum[k] += value
	m.hcount[k]++
	m.mu.Unlock()
}

// Count returns the counter total for name with exactly these labels.
func (m *MemMeter) Count(name string, labels ...Label) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[seriesKey(name, labels)]
}

// Observations returns how many values were recorded and their sum.
func (m *MemMeter) Observations(name string, labels ...Label) (int, float64) {
	k := seriesKey(name, labels)
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hcount[k], m.hsum[k]
}

// Snapshot returns a copy of all counters keyed by series.
func (m *MemMeter) Snapshot() map[string]float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]float64, len(m.counts))
	for k, v := range m.counts {
		out[k] = v
	}
	return out
}

// seriesKey renders name{k=v,...} with labels sorted by key.
func seriesKey(name string, labels []Label) string {
	if len(labels) == 0 {
		return name
	}
	ls := append([]Label(nil), labels...)
	sort.Slice(ls, func(i, j int) bool { return ls[i].Key < ls[j].Key })
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	for i, l := range ls {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(l.Key)
		b.WriteByte('=')
		b.WriteString(l.Value)
	}
	b.WriteByte('}')
	return b.String()
}
