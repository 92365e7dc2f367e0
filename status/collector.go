package status

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports a Tracker as Prometheus metrics
type Collector struct {
	tracker *Tracker
	changes *prometheus.Desc
	value   *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector for t; namespace prefixes metric names
func NewCollector(t *Tracker, namespace string) *Collector {
	return &Collector{
		tracker: t,
		changes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "changes_total"),
			"Number of change notifications per parameter.",
			[]string{"parameter"}, nil,
		),
		value: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "value"),
			"Last effective value per parameter.",
			[]string{"parameter"}, nil,
		),
	}
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.changes
	ch <- c.value
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, s := range c.tracker.Samples() {
		ch <- prometheus.MustNewConstMetric(c.changes, prometheus.CounterValue, float64(s.Changes), s.Name)
		ch <- prometheus.MustNewConstMetric(c.value, prometheus.GaugeValue, s.Value, s.Name)
	}
}
