package metrics

import "testing"

var sink []byte

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	snap := NewMemoryCollector().Snapshot()
	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
	if snap.TotalAlloc < snap.HeapAlloc {
		t.Error("TotalAlloc should be at least HeapAlloc")
	}
}

func TestMemoryCollector_Measure(t *testing.T) {
	t.Parallel()

	delta := NewMemoryCollector().Measure(func() {
		sink = make([]byte, 1<<20)
	})
	if delta.Bytes < 1<<20 {
		t.Errorf("Bytes = %d, want at least 1 MiB", delta.Bytes)
	}
	if delta.Objects == 0 {
		t.Error("Objects should count the allocation")
	}
}

func TestMemorySnapshot_Since(t *testing.T) {
	t.Parallel()

	before := MemorySnapshot{TotalAlloc: 100, Mallocs: 3, NumGC: 1}
	after := MemorySnapshot{TotalAlloc: 612, Mallocs: 10, NumGC: 2}
	got := after.Since(before)
	if got != (AllocDelta{Bytes: 512, Objects: 7, GCs: 1}) {
		t.Errorf("Since() = %+v", got)
	}
}
