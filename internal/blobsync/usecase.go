package blobsync

import (
	"context"

	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/internal/state"
	"github.com/fekuna/omnipos-clinic-service/pkg/i18n"
)

var (
	ErrConfigRequired  = i18n.NewError("sync.config_required")
	ErrInvalidInterval = i18n.NewError("sync.invalid_interval")
)

// SyncUserID and SyncUserName identify stock changes made by a sync run.
const (
	SyncUserID   = "azure-sync"
	SyncUserName = "Azure Sync"
)

// Target addresses one container of an external blob store.
type Target struct {
	ConnectionString string
	ContainerName    string
}

// Client talks to the external blob store.
type Client interface {
	TestConnection(ctx context.Context, target Target) error
	ListBlobs(ctx context.Context, target Target) ([]model.BlobInfo, error)
	Download(ctx context.Context, target Target, name string) ([]byte, error)
}

// UseCase owns the sync configuration and runs imports. Only the
// configuration is persisted; status and errors live for the process.
type UseCase interface {
	state.Saveable
	Load(ctx context.Context) error

	Status(ctx context.Context) model.SyncState
	SetConnectionString(ctx context.Context, connectionString string) error
	SetContainerName(ctx context.Context, containerName string) error
	SetPollingInterval(ctx context.Context, minutes int) error
	SetEnabled(ctx context.Context, enabled bool) error

	// TestConnection falls back to the stored values for empty arguments.
	TestConnection(ctx context.Context, connectionString, containerName string) error
	SyncNow(ctx context.Context) (*model.SyncResult, error)
	ClearErrors(ctx context.Context)

	// Close stops the polling worker.
	Close()
}
