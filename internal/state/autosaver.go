package state

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"github.com/fekuna/omnipos-clinic-service/pkg/metrics"
	"go.uber.org/zap"
)

// Saveable is a store that can flush its state explicitly.
type Saveable interface {
	Name() string
	Dirty() bool
	Save(ctx context.Context) error
}

// Autosaver flushes dirty stores on an interval and once more on shutdown.
type Autosaver struct {
	stores   []Saveable
	interval time.Duration
	metrics  *metrics.Metrics
	logger   logger.ZapLogger
}

func NewAutosaver(interval time.Duration, m *metrics.Metrics, log logger.ZapLogger, stores ...Saveable) *Autosaver {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Autosaver{
		stores:   stores,
		interval: interval,
		metrics:  m,
		logger:   log,
	}
}

// Start blocks until ctx is cancelled, then performs a final flush.
func (a *Autosaver) Start(ctx context.Context) {
	a.logger.Info("Starting state autosaver", zap.Duration("interval", a.interval))
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			a.FlushAll(flushCtx)
			cancel()
			a.logger.Info("Stopped state autosaver")
			return
		case <-ticker.C:
			a.FlushAll(ctx)
		}
	}
}

// FlushAll saves every dirty store and returns the first error.
func (a *Autosaver) FlushAll(ctx context.Context) error {
	var first error
	for _, s := range a.stores {
		if !s.Dirty() {
			continue
		}
		err := s.Save(ctx)
		a.metrics.StateSaved(s.Name(), err)
		if err != nil {
			a.logger.Error("failed to save state", zap.String("bucket", s.Name()), zap.Error(err))
			if first == nil {
				first = err
			}
		}
	}
	return first
}
