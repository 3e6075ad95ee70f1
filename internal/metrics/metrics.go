package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the calculator's Prometheus metrics on a private registry so
// a CLI run can dump them to a textfile without running an HTTP endpoint.
type Collector struct {
	registry *prometheus.Registry

	CalculationsTotal   *prometheus.CounterVec
	CalculationDuration *prometheus.HistogramVec
	ReportsWritten      *prometheus.CounterVec
}

// New creates a collector with every metric registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		CalculationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "investment_calculations_total",
				Help: "Total number of tab calculations performed",
			},
			[]string{"tab"},
		),
		CalculationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "investment_calculation_duration_seconds",
				Help:    "Duration of tab calculations in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"tab"},
		),
		ReportsWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "investment_reports_written_total",
				Help: "Total number of reports written per format",
			},
			[]string{"format"},
		),
	}
	c.registry.MustRegister(c.CalculationsTotal, c.CalculationDuration, c.ReportsWritten)
	return c
}

// ObserveCalculation records one tab calculation.
func (c *Collector) ObserveCalculation(tab string, elapsed time.Duration) {
	c.CalculationsTotal.WithLabelValues(tab).Inc()
	c.CalculationDuration.WithLabelValues(tab).Observe(elapsed.Seconds())
}

// ReportWritten records one report file written in the given format.
func (c *Collector) ReportWritten(format string) {
	c.ReportsWritten.WithLabelValues(format).Inc()
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// WriteToTextfile writes the current metric values in the Prometheus text format.
func (c *Collector) WriteToTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
