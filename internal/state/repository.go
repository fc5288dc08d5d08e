package state

import "context"

// Bucket names, one logical record per store.
const (
	BucketAuth      = "auth-storage"
	BucketInventory = "inventory-storage"
	BucketOrder     = "order-storage"
	BucketTheme     = "theme-storage"
	BucketUser      = "user-storage"
	BucketSync      = "azure-storage"
)

// Repository persists whole-state JSON payloads keyed by bucket.
type Repository interface {
	// Get returns nil, nil when the bucket has never been written.
	Get(ctx context.Context, bucket string) ([]byte, error)
	Put(ctx context.Context, bucket string, payload []byte) error
}
