package monitoring

import (
	"campus-parking/internal/parking"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type StatsSource interface {
	Stats() parking.ParkingStats
}

// SlotCollector exposes slot counts for Prometheus scrapes. Stats are
// recomputed from the source on every scrape.
type SlotCollector struct {
	source StatsSource

	slots       *prometheus.Desc
	total       *prometheus.Desc
	utilization *prometheus.Desc
}

func NewSlotCollector(source StatsSource) *SlotCollector {
	return &SlotCollector{
		source: source,
		slots: prometheus.NewDesc(
			"campus_parking_slots",
			"Current number of parking slots per status",
			[]string{"status"}, nil,
		),
		total: prometheus.NewDesc(
			"campus_parking_slots_total",
			"Total number of parking slots",
			nil, nil,
		),
		utilization: prometheus.NewDesc(
			"campus_parking_utilization_percent",
			"Share of slots occupied or reserved",
			nil, nil,
		),
	}
}

func (c *SlotCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.slots
	ch <- c.total
	ch <- c.utilization
}

func (c *SlotCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Stats()
	disabled := stats.TotalSlots - stats.AvailableSlots - stats.OccupiedSlots - stats.ReservedSlots

	ch <- prometheus.MustNewConstMetric(c.slots, prometheus.GaugeValue, float64(stats.AvailableSlots), string(parking.StatusAvailable))
	ch <- prometheus.MustNewConstMetric(c.slots, prometheus.GaugeValue, float64(stats.OccupiedSlots), string(parking.StatusOccupied))
	ch <- prometheus.MustNewConstMetric(c.slots, prometheus.GaugeValue, float64(stats.ReservedSlots), string(parking.StatusReserved))
	ch <- prometheus.MustNewConstMetric(c.slots, prometheus.GaugeValue, float64(disabled), string(parking.StatusDisabled))
	ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(stats.TotalSlots))
	ch <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, stats.UtilizationRate)
}

// NewRegistry returns a Prometheus registry holding the slot collector and
// the standard Go and process collectors.
func NewRegistry(source StatsSource) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		NewSlotCollector(source),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
