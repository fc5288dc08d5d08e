package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/fekuna/omnipos-clinic-service/internal/blobsync"
	"github.com/fekuna/omnipos-clinic-service/internal/inventory"
	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/internal/state"
	"github.com/fekuna/omnipos-clinic-service/pkg/i18n"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"github.com/fekuna/omnipos-clinic-service/pkg/metrics"
	"go.uber.org/zap"
)

type syncUseCase struct {
	doc       *state.Document[model.SyncConfig]
	client    blobsync.Client
	inventory inventory.UseCase
	metrics   *metrics.Metrics
	logger    logger.ZapLogger
	now       func() time.Time

	// pollUnit scales PollingInterval; a minute outside of tests.
	pollUnit time.Duration

	mu       sync.Mutex
	status   model.SyncStatus
	lastSync *time.Time
	errs     []string
	seen     map[string]time.Time

	// runMu serializes sync runs from the poller and from callers.
	runMu sync.Mutex

	// pollMu is held across stopping and starting the poller.
	pollMu     sync.Mutex
	pollCancel context.CancelFunc
	pollDone   chan struct{}
}

func NewSyncUseCase(repo state.Repository, client blobsync.Client, inventoryUC inventory.UseCase, m *metrics.Metrics, log logger.ZapLogger) blobsync.UseCase {
	return &syncUseCase{
		doc: state.NewDocument(state.BucketSync, repo, model.SyncConfig{
			PollingInterval: model.DefaultPollingInterval,
		}),
		client:    client,
		inventory: inventoryUC,
		metrics:   m,
		logger:    log,
		now:       time.Now,
		pollUnit:  time.Minute,
		status:    model.SyncIdle,
		seen:      make(map[string]time.Time),
	}
}

func (uc *syncUseCase) Name() string                   { return uc.doc.Name() }
func (uc *syncUseCase) Dirty() bool                    { return uc.doc.Dirty() }
func (uc *syncUseCase) Save(ctx context.Context) error { return uc.doc.Save(ctx) }

// Load restores the configuration and resumes polling when it was enabled.
func (uc *syncUseCase) Load(ctx context.Context) error {
	if err := uc.doc.Load(ctx); err != nil {
		return err
	}
	uc.reconcilePolling()
	return nil
}

func (uc *syncUseCase) config() model.SyncConfig {
	var cfg model.SyncConfig
	uc.doc.View(func(c *model.SyncConfig) { cfg = *c })
	return cfg
}

func (uc *syncUseCase) Status(ctx context.Context) model.SyncState {
	cfg := uc.config()
	uc.mu.Lock()
	defer uc.mu.Unlock()
	st := model.SyncState{
		SyncConfig: cfg,
		SyncStatus: uc.status,
		SyncErrors: append([]string{}, uc.errs...),
	}
	if uc.lastSync != nil {
		t := *uc.lastSync
		st.LastSyncTime = &t
	}
	return st
}

func (uc *syncUseCase) SetConnectionString(ctx context.Context, connectionString string) error {
	return uc.doc.Update(func(c *model.SyncConfig) error {
		c.ConnectionString = strings.TrimSpace(connectionString)
		return nil
	})
}

func (uc *syncUseCase) SetContainerName(ctx context.Context, containerName string) error {
	return uc.doc.Update(func(c *model.SyncConfig) error {
		c.ContainerName = strings.TrimSpace(containerName)
		return nil
	})
}

// SetPollingInterval restarts a running poller with the new interval.
func (uc *syncUseCase) SetPollingInterval(ctx context.Context, minutes int) error {
	if minutes < 1 {
		return blobsync.ErrInvalidInterval
	}
	err := uc.doc.Update(func(c *model.SyncConfig) error {
		c.PollingInterval = minutes
		return nil
	})
	if err != nil {
		return err
	}
	if uc.config().IsEnabled {
		uc.reconcilePolling()
	}
	return nil
}

func (uc *syncUseCase) SetEnabled(ctx context.Context, enabled bool) error {
	err := uc.doc.Update(func(c *model.SyncConfig) error {
		c.IsEnabled = enabled
		return nil
	})
	if err != nil {
		return err
	}
	uc.reconcilePolling()
	return nil
}

func (uc *syncUseCase) TestConnection(ctx context.Context, connectionString, containerName string) error {
	cfg := uc.config()
	if connectionString == "" {
		connectionString = cfg.ConnectionString
	}
	if containerName == "" {
		containerName = cfg.ContainerName
	}
	if connectionString == "" || containerName == "" {
		return blobsync.ErrConfigRequired
	}

	uc.setStatus(model.SyncSyncing)
	err := uc.client.TestConnection(ctx, blobsync.Target{
		ConnectionString: connectionString,
		ContainerName:    containerName,
	})
	if err != nil {
		uc.logger.Warn("blob storage connection test failed", zap.Error(err))
		uc.fail("sync.connection_error", err)
		return err
	}
	uc.setStatus(model.SyncSuccess)
	return nil
}

func (uc *syncUseCase) ClearErrors(ctx context.Context) {
	uc.mu.Lock()
	uc.errs = nil
	uc.mu.Unlock()
}

// SyncNow imports every new or modified blob. The returned error is set
// when the run failed as a whole; the result is still returned then.
func (uc *syncUseCase) SyncNow(ctx context.Context) (*model.SyncResult, error) {
	cfg := uc.config()
	if cfg.ConnectionString == "" || cfg.ContainerName == "" {
		return nil, blobsync.ErrConfigRequired
	}

	uc.runMu.Lock()
	defer uc.runMu.Unlock()

	uc.setStatus(model.SyncSyncing)
	target := blobsync.Target{ConnectionString: cfg.ConnectionString, ContainerName: cfg.ContainerName}
	result := &model.SyncResult{StartTime: uc.now(), Files: []model.ProcessedFile{}, Errors: []string{}}

	blobs, err := uc.client.ListBlobs(ctx, target)
	if err != nil {
		return uc.finishFailed(result, err)
	}

	for _, blob := range blobs {
		kind := classify(blob.Name)
		if kind == kindUnknown || !uc.changed(blob) {
			continue
		}
		file := uc.processBlob(ctx, target, blob, kind)
		result.Files = append(result.Files, file)
		result.FilesProcessed++
		result.RecordsProcessed += file.RecordsProcessed
		for _, e := range file.Errors {
			result.Errors = append(result.Errors, blob.Name+": "+e)
		}
	}

	result.EndTime = uc.now()
	switch {
	case len(result.Errors) == 0:
		result.Status = model.ResultSuccess
	case result.RecordsProcessed > 0:
		result.Status = model.ResultPartial
	default:
		return uc.finishFailed(result, errors.New(strings.Join(result.Errors, "; ")))
	}

	uc.mu.Lock()
	uc.status = model.SyncSuccess
	end := result.EndTime
	uc.lastSync = &end
	for _, e := range result.Errors {
		uc.errs = append(uc.errs, i18n.T("sync.sync_error", map[string]any{"Reason": e}))
	}
	uc.mu.Unlock()

	uc.metrics.SyncRun(string(result.Status))
	uc.logger.Info("blob storage sync finished",
		zap.String("status", string(result.Status)),
		zap.Int("files", result.FilesProcessed),
		zap.Int("records", result.RecordsProcessed),
	)
	return result, nil
}

func (uc *syncUseCase) finishFailed(result *model.SyncResult, err error) (*model.SyncResult, error) {
	result.EndTime = uc.now()
	result.Status = model.ResultFailed
	if len(result.Errors) == 0 {
		result.Errors = append(result.Errors, err.Error())
	}
	uc.fail("sync.sync_error", err)
	uc.metrics.SyncRun(string(result.Status))
	uc.logger.Error("blob storage sync failed", zap.Error(err))
	return result, err
}

func (uc *syncUseCase) processBlob(ctx context.Context, target blobsync.Target, blob model.BlobInfo, kind blobKind) model.ProcessedFile {
	file := model.ProcessedFile{
		Name:         blob.Name,
		Type:         detectFileType(blob.Name),
		LastModified: blob.LastModified,
		Errors:       []string{},
	}

	data, err := uc.client.Download(ctx, target, blob.Name)
	if err != nil {
		file.ProcessedAt = uc.now()
		file.Errors = append(file.Errors, err.Error())
		return file
	}

	switch kind {
	case kindInventory:
		file.RecordsProcessed, file.Errors = uc.importStock(ctx, file.Type, data)
	case kindOrders:
		file.RecordsProcessed, file.Errors = countOrders(data)
	}
	file.ProcessedAt = uc.now()

	uc.mu.Lock()
	uc.seen[blob.Name] = blob.LastModified
	uc.mu.Unlock()
	return file
}

// changed reports whether the blob is new or modified since its last import.
func (uc *syncUseCase) changed(blob model.BlobInfo) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	last, ok := uc.seen[blob.Name]
	return !ok || !last.Equal(blob.LastModified)
}

func (uc *syncUseCase) setStatus(s model.SyncStatus) {
	uc.mu.Lock()
	uc.status = s
	uc.mu.Unlock()
}

func (uc *syncUseCase) fail(messageID string, err error) {
	msg := i18n.T(messageID, map[string]any{"Reason": reason(err)})
	uc.mu.Lock()
	uc.status = model.SyncError
	uc.errs = append(uc.errs, msg)
	uc.mu.Unlock()
}

func reason(err error) string {
	if err == nil || err.Error() == "" {
		return i18n.T("sync.unknown_error", nil)
	}
	return err.Error()
}

// reconcilePolling replaces any running poller with one matching the stored
// configuration. The configuration is read under pollMu, so the last caller
// through decides and at most one poller exists.
func (uc *syncUseCase) reconcilePolling() {
	uc.pollMu.Lock()
	defer uc.pollMu.Unlock()

	uc.stopPollingLocked()
	if cfg := uc.config(); cfg.IsEnabled {
		uc.startPollingLocked(cfg.PollingInterval)
	}
}

func (uc *syncUseCase) startPollingLocked(minutes int) {
	if minutes < 1 {
		minutes = model.DefaultPollingInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	uc.pollCancel = cancel
	uc.pollDone = done

	interval := time.Duration(minutes) * uc.pollUnit
	uc.logger.Info("blob storage polling started", zap.Duration("interval", interval))
	go uc.poll(ctx, interval, done)
}

func (uc *syncUseCase) poll(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !uc.config().IsEnabled {
				continue
			}
			if _, err := uc.SyncNow(ctx); err != nil {
				uc.logger.Warn("background sync failed", zap.Error(err))
			}
		}
	}
}

// stopPollingLocked waits for the poller to exit. The poller never takes
// pollMu, so waiting with it held cannot deadlock.
func (uc *syncUseCase) stopPollingLocked() {
	cancel, done := uc.pollCancel, uc.pollDone
	uc.pollCancel, uc.pollDone = nil, nil
	if cancel == nil {
		return
	}
	cancel()
	<-done
	uc.logger.Info("blob storage polling stopped")
}

func (uc *syncUseCase) Close() {
	uc.pollMu.Lock()
	defer uc.pollMu.Unlock()
	uc.stopPollingLocked()
}

