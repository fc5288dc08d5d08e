package inventory

import (
	"context"

	"github.com/fekuna/omnipos-clinic-service/internal/model"
)

// SearchRepository keeps a full text index of the items. The inventory
// document stays the source of truth; the index only yields ids.
type SearchRepository interface {
	EnsureIndex(ctx context.Context) error
	IndexItem(ctx context.Context, item *model.InventoryItem) error
	DeleteItem(ctx context.Context, id string) error
	SearchItemIDs(ctx context.Context, query string, limit int) ([]string, error)
}
