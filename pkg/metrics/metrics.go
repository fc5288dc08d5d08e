package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the service counters. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	StockUpdates     *prometheus.CounterVec
	LowStockAlerts   prometheus.Counter
	OrderTransitions *prometheus.CounterVec
	OrdersSubmitted  prometheus.Counter
	LoginAttempts    *prometheus.CounterVec
	SyncRuns         *prometheus.CounterVec
	StateSaves       *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StockUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "inventory",
			Name:      "stock_updates_total",
			Help:      "Stock updates by transaction type.",
		}, []string{"type"}),
		LowStockAlerts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "inventory",
			Name:      "low_stock_alerts_total",
			Help:      "Low stock alerts raised.",
		}),
		OrderTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "orders",
			Name:      "status_transitions_total",
			Help:      "Order status changes by target status.",
		}, []string{"status"}),
		OrdersSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "orders",
			Name:      "submitted_total",
			Help:      "Orders submitted.",
		}),
		LoginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "auth",
			Name:      "login_attempts_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
		SyncRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "sync",
			Name:      "runs_total",
			Help:      "Blob storage sync runs by status.",
		}, []string{"status"}),
		StateSaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "state",
			Name:      "saves_total",
			Help:      "State document saves by bucket and result.",
		}, []string{"bucket", "result"}),
	}

	reg.MustRegister(
		m.StockUpdates,
		m.LowStockAlerts,
		m.OrderTransitions,
		m.OrdersSubmitted,
		m.LoginAttempts,
		m.SyncRuns,
		m.StateSaves,
	)
	return m
}

func (m *Metrics) StockUpdated(txType string) {
	if m == nil {
		return
	}
	m.StockUpdates.WithLabelValues(txType).Inc()
}

func (m *Metrics) LowStockAlertRaised() {
	if m == nil {
		return
	}
	m.LowStockAlerts.Inc()
}

func (m *Metrics) OrderStatusChanged(status string) {
	if m == nil {
		return
	}
	m.OrderTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) OrderSubmitted() {
	if m == nil {
		return
	}
	m.OrdersSubmitted.Inc()
}

func (m *Metrics) LoginAttempt(result string) {
	if m == nil {
		return
	}
	m.LoginAttempts.WithLabelValues(result).Inc()
}

func (m *Metrics) SyncRun(status string) {
	if m == nil {
		return
	}
	m.SyncRuns.WithLabelValues(status).Inc()
}

func (m *Metrics) StateSaved(bucket string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.StateSaves.WithLabelValues(bucket, result).Inc()
}
