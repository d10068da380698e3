// Package metrics defines the prometheus collectors of the front-desk service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service collectors.
type Metrics struct {
	BookingsCreated   prometheus.Counter
	BookingsCancelled prometheus.Counter
	OperationFailures *prometheus.CounterVec
	RoomsByStatus     *prometheus.GaugeVec
	ActiveBookings    prometheus.Gauge
	SnapshotSaves     *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		BookingsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "frontdesk_bookings_created_total",
			Help: "Total number of bookings created",
		}),
		BookingsCancelled: f.NewCounter(prometheus.CounterOpts{
			Name: "frontdesk_bookings_cancelled_total",
			Help: "Total number of bookings cancelled",
		}),
		OperationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "frontdesk_operation_failures_total",
			Help: "Rejected booking operations by operation and error code",
		}, []string{"operation", "code"}),
		RoomsByStatus: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "frontdesk_rooms",
			Help: "Number of rooms by status",
		}, []string{"status"}),
		ActiveBookings: f.NewGauge(prometheus.GaugeOpts{
			Name: "frontdesk_active_bookings",
			Help: "Number of active bookings",
		}),
		SnapshotSaves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "frontdesk_snapshot_saves_total",
			Help: "Durable store saves by result",
		}, []string{"result"}),
	}
}

// ObserveState sets the room and booking gauges.
func (m *Metrics) ObserveState(available, booked, active int) {
	m.RoomsByStatus.WithLabelValues("available").Set(float64(available))
	m.RoomsByStatus.WithLabelValues("booked").Set(float64(booked))
	m.ActiveBookings.Set(float64(active))
}
