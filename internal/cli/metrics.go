package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// MetricPrefix selects the application's own metric families.
const MetricPrefix = "fibbench_"

// DisplayMetrics writes the gathered metric families whose name starts with
// MetricPrefix in the Prometheus text exposition format.
func DisplayMetrics(gatherer prometheus.Gatherer, out io.Writer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	fmt.Fprintf(out, "\n--- Metrics ---\n")
	for _, mf := range filterFamilies(families, MetricPrefix) {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("encoding %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

func filterFamilies(families []*dto.MetricFamily, prefix string) []*dto.MetricFamily {
	kept := families[:0:0]
	for _, mf := range families {
		if strings.HasPrefix(mf.GetName(), prefix) {
			kept = append(kept, mf)
		}
	}
	return kept
}
