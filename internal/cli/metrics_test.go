package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestDisplayMetrics(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	ours := prometheus.NewCounter(prometheus.CounterOpts{Name: "fibbench_test_total", Help: "Test counter."})
	other := prometheus.NewGauge(prometheus.GaugeOpts{Name: "unrelated_gauge", Help: "Ignored."})
	reg.MustRegister(ours, other)
	ours.Add(3)

	var buf bytes.Buffer
	if err := DisplayMetrics(reg, &buf); err != nil {
		t.Fatalf("DisplayMetrics error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "# TYPE fibbench_test_total counter") || !strings.Contains(out, "fibbench_test_total 3") {
		t.Errorf("metrics output missing counter:\n%s", out)
	}
	if strings.Contains(out, "unrelated_gauge") {
		t.Errorf("metrics output should be filtered by prefix:\n%s", out)
	}
}
