/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package manifest

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Result status labels.
const (
	statusMatch      = "match"
	statusMismatch   = "mismatch"
	statusParseError = "parse_error"
	statusIOError    = "io_error"
)

var (
	// Manifest verification metrics
	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chkr_manifest_verify_duration_seconds",
			Help:    "Time taken to drain a complete manifest verification run",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	resultTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chkr_manifest_results_total",
			Help: "Total number of per-record verification results",
		},
		[]string{"status"}, // match, mismatch, parse_error, io_error
	)

	recordGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chkr_manifest_records",
			Help: "Number of retained records in the last parsed manifest",
		},
	)
)

// WriteMetrics renders the default Prometheus registry, including the
// verification metrics above, in the text exposition format. A
// run-to-completion invocation has no scrape endpoint, so this is how
// collected metrics reach a reader: the CLI dumps them to a file at the
// end of a run.
func WriteMetrics(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
