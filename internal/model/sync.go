package model

import "time"

type SyncStatus string

const (
	SyncIdle    SyncStatus = "idle"
	SyncSyncing SyncStatus = "syncing"
	SyncSuccess SyncStatus = "success"
	SyncError   SyncStatus = "error"
)

const DefaultPollingInterval = 15 // minutes

// SyncConfig is the persisted part of the blob storage integration.
type SyncConfig struct {
	ConnectionString string `json:"connectionString"`
	ContainerName    string `json:"containerName"`
	PollingInterval  int    `json:"pollingInterval"`
	IsEnabled        bool   `json:"isEnabled"`
}

type SyncState struct {
	SyncConfig
	LastSyncTime *time.Time `json:"lastSyncTime"`
	SyncStatus   SyncStatus `json:"syncStatus"`
	SyncErrors   []string   `json:"syncErrors"`
}

type BlobInfo struct {
	Name         string    `json:"name"`
	ContentType  string    `json:"contentType"`
	LastModified time.Time `json:"lastModified"`
	ETag         string    `json:"etag"`
	Size         int64     `json:"size"`
}

type FileType string

const (
	FileCSV     FileType = "csv"
	FileJSON    FileType = "json"
	FileXML     FileType = "xml"
	FileTXT     FileType = "txt"
	FileUnknown FileType = "unknown"
)

type ResultStatus string

const (
	ResultSuccess ResultStatus = "success"
	ResultPartial ResultStatus = "partial"
	ResultFailed  ResultStatus = "failed"
)

type ProcessedFile struct {
	Name             string    `json:"name"`
	Type             FileType  `json:"type"`
	LastModified     time.Time `json:"lastModified"`
	ProcessedAt      time.Time `json:"processedAt"`
	RecordsProcessed int       `json:"recordsProcessed"`
	Errors           []string  `json:"errors"`
}

type SyncResult struct {
	StartTime        time.Time       `json:"startTime"`
	EndTime          time.Time       `json:"endTime"`
	FilesProcessed   int             `json:"filesProcessed"`
	RecordsProcessed int             `json:"recordsProcessed"`
	Files            []ProcessedFile `json:"files"`
	Errors           []string        `json:"errors"`
	Status           ResultStatus    `json:"status"`
}
