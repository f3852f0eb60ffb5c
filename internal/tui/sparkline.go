package tui

// sparklineChars maps values 0..7 to Unicode block elements.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// History is a fixed-capacity ring of percentage samples.
type History struct {
	data  []float64
	head  int
	count int
}

// NewHistory creates a history holding up to capacity samples.
func NewHistory(capacity int) *History {
	return &History{data: make([]float64, max(capacity, 1))}
}

// Push adds a sample, overwriting the oldest if full.
func (h *History) Push(v float64) {
	h.data[h.head] = v
	h.head = (h.head + 1) % len(h.data)
	if h.count < len(h.data) {
		h.count++
	}
}

// Len returns the number of stored samples.
func (h *History) Len() int { return h.count }

// Slice returns the samples oldest first.
func (h *History) Slice() []float64 {
	out := make([]float64, h.count)
	start := h.head - h.count + len(h.data)
	for i := 0; i < h.count; i++ {
		out[i] = h.data[(start+i)%len(h.data)]
	}
	return out
}

// RenderSparkline converts percentages (0..100) into block characters.
func RenderSparkline(values []float64) string {
	runes := make([]rune, len(values))
	for i, v := range values {
		v = min(max(v, 0), 100)
		runes[i] = sparklineChars[min(int(v/100*7), 7)]
	}
	return string(runes)
}
