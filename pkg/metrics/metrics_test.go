package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.StockUpdated("withdrawal")
	m.StockUpdated("withdrawal")
	m.LowStockAlertRaised()
	m.StateSaved("inventory-storage", errors.New("disk full"))

	if got := testutil.ToFloat64(m.StockUpdates.WithLabelValues("withdrawal")); got != 2 {
		t.Errorf("stock updates = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.LowStockAlerts); got != 1 {
		t.Errorf("low stock alerts = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.StateSaves.WithLabelValues("inventory-storage", "error")); got != 1 {
		t.Errorf("failed saves = %v, want 1", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.StockUpdated("restock")
	m.LoginAttempt("success")
	m.SyncRun("failed")
}
