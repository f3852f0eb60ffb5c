// Package metrics measures the memory cost of a calculation from runtime
// statistics taken before and after it.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc  uint64 // bytes of live heap objects
	TotalAlloc uint64 // cumulative bytes allocated
	Mallocs    uint64 // cumulative heap objects allocated
	Sys        uint64 // total bytes obtained from OS
	NumGC      uint32 // number of completed GC cycles
}

// AllocDelta is the difference between two snapshots.
type AllocDelta struct {
	Bytes   uint64 // bytes allocated in between
	Objects uint64 // heap objects allocated in between
	GCs     uint32 // GC cycles completed in between
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:  m.HeapAlloc,
		TotalAlloc: m.TotalAlloc,
		Mallocs:    m.Mallocs,
		Sys:        m.Sys,
		NumGC:      m.NumGC,
	}
}

// Since returns the allocations made between before and s. The counters are
// process-wide, so concurrent work is included.
func (s MemorySnapshot) Since(before MemorySnapshot) AllocDelta {
	return AllocDelta{
		Bytes:   s.TotalAlloc - before.TotalAlloc,
		Objects: s.Mallocs - before.Mallocs,
		GCs:     s.NumGC - before.NumGC,
	}
}

// Measure runs fn and returns the allocations observed while it ran.
func (mc *MemoryCollector) Measure(fn func()) AllocDelta {
	before := mc.Snapshot()
	fn()
	return mc.Snapshot().Since(before)
}
