package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/fekuna/omnipos-clinic-service/internal/inventory"
	"github.com/fekuna/omnipos-clinic-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/internal/state"
	"github.com/fekuna/omnipos-clinic-service/pkg/i18n"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"github.com/fekuna/omnipos-clinic-service/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	lockTTL      = 5 * time.Second
	lockAttempts = 3
	lockBackoff  = 100 * time.Millisecond
)

type inventoryUseCase struct {
	doc     *state.Document[catalog]
	locker  inventory.Locker
	search  inventory.SearchRepository
	metrics *metrics.Metrics
	logger  logger.ZapLogger
	now     func() time.Time
}

// NewInventoryUseCase builds the inventory store. locker and search are
// optional.
func NewInventoryUseCase(repo state.Repository, locker inventory.Locker, search inventory.SearchRepository, m *metrics.Metrics, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		doc:     state.NewDocument(state.BucketInventory, repo, seedCatalog(time.Now())),
		locker:  locker,
		search:  search,
		metrics: m,
		logger:  log,
		now:     time.Now,
	}
}

func (uc *inventoryUseCase) Name() string                   { return uc.doc.Name() }
func (uc *inventoryUseCase) Dirty() bool                    { return uc.doc.Dirty() }
func (uc *inventoryUseCase) Save(ctx context.Context) error { return uc.doc.Save(ctx) }

// Load restores the catalog and rebuilds the search index from it.
func (uc *inventoryUseCase) Load(ctx context.Context) error {
	if err := uc.doc.Load(ctx); err != nil {
		return err
	}
	if uc.search == nil {
		return nil
	}

	if err := uc.search.EnsureIndex(ctx); err != nil {
		uc.logger.Warn("failed to create item index", zap.Error(err))
		return nil
	}
	for _, item := range uc.ListItems(ctx) {
		uc.indexItem(ctx, &item)
	}
	return nil
}

func (uc *inventoryUseCase) GetItemByID(ctx context.Context, id string) (*model.InventoryItem, error) {
	var found *model.InventoryItem
	uc.doc.View(func(c *catalog) {
		if i := indexOfItem(c.Items, id); i >= 0 {
			item := c.Items[i]
			found = &item
		}
	})
	if found == nil {
		return nil, inventory.ErrItemNotFound
	}
	return found, nil
}

// GetItemByBarcode tries an exact match first, then compares digits only.
func (uc *inventoryUseCase) GetItemByBarcode(ctx context.Context, barcode string) (*model.InventoryItem, error) {
	if barcode == "" {
		return nil, inventory.ErrItemNotFound
	}

	var found *model.InventoryItem
	uc.doc.View(func(c *catalog) {
		for i := range c.Items {
			if c.Items[i].Barcode == barcode {
				item := c.Items[i]
				found = &item
				return
			}
		}
		normalized := model.NormalizeBarcode(barcode)
		for i := range c.Items {
			if c.Items[i].Barcode != "" && model.NormalizeBarcode(c.Items[i].Barcode) == normalized {
				item := c.Items[i]
				found = &item
				return
			}
		}
	})
	if found == nil {
		return nil, inventory.ErrItemNotFound
	}
	return found, nil
}

func (uc *inventoryUseCase) ListItems(ctx context.Context) []model.InventoryItem {
	return uc.filterItems(func(*model.InventoryItem) bool { return true })
}

func (uc *inventoryUseCase) GetItemsByCategory(ctx context.Context, category string) []model.InventoryItem {
	return uc.filterItems(func(it *model.InventoryItem) bool { return it.Category == category })
}

func (uc *inventoryUseCase) ListCategories(ctx context.Context) []string {
	seen := map[string]bool{}
	var categories []string
	uc.doc.View(func(c *catalog) {
		for _, it := range c.Items {
			if it.Category == "" || seen[it.Category] {
				continue
			}
			seen[it.Category] = true
			categories = append(categories, it.Category)
		}
	})
	sort.Strings(categories)
	return categories
}

// SearchItems asks the search index when one is configured and falls back
// to substring matching when it is missing or failing.
func (uc *inventoryUseCase) SearchItems(ctx context.Context, query string, limit int) ([]model.InventoryItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return uc.limit(uc.ListItems(ctx), limit), nil
	}

	if uc.search != nil {
		ids, err := uc.search.SearchItemIDs(ctx, query, limit)
		if err == nil {
			return uc.itemsByIDs(ids), nil
		}
		uc.logger.Error("item search failed, falling back to memory", zap.Error(err))
	}

	needle := strings.ToLower(query)
	digits := model.NormalizeBarcode(query)
	matches := uc.filterItems(func(it *model.InventoryItem) bool {
		if digits != "" && it.Barcode != "" && strings.Contains(model.NormalizeBarcode(it.Barcode), digits) {
			return true
		}
		for _, field := range []string{it.Name, it.Category, it.SKU, it.Barcode, it.Manufacturer} {
			if strings.Contains(strings.ToLower(field), needle) {
				return true
			}
		}
		return false
	})
	return uc.limit(matches, limit), nil
}

func (uc *inventoryUseCase) CreateItem(ctx context.Context, input *dto.ItemInput) (*model.InventoryItem, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, inventory.ErrNameRequired
	}

	item := model.InventoryItem{ID: uuid.New().String()}
	applyInput(&item, input, uc.now())

	err := uc.doc.Update(func(c *catalog) error {
		if barcodeTaken(c.Items, item.Barcode, "") {
			return inventory.ErrBarcodeExists
		}
		c.Items = append(c.Items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.indexItem(ctx, &item)
	uc.logger.Info("inventory item created", zap.String("item_id", item.ID), zap.String("name", item.Name))
	return &item, nil
}

func (uc *inventoryUseCase) UpdateItem(ctx context.Context, id string, input *dto.ItemInput) (*model.InventoryItem, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, inventory.ErrNameRequired
	}

	var updated model.InventoryItem
	err := uc.doc.Update(func(c *catalog) error {
		i := indexOfItem(c.Items, id)
		if i < 0 {
			return inventory.ErrItemNotFound
		}
		if barcodeTaken(c.Items, input.Barcode, id) {
			return inventory.ErrBarcodeExists
		}
		item := c.Items[i]
		applyInput(&item, input, uc.now())
		c.Items[i] = item
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.indexItem(ctx, &updated)
	return &updated, nil
}

func (uc *inventoryUseCase) DeleteItem(ctx context.Context, id string) error {
	err := uc.doc.Update(func(c *catalog) error {
		i := indexOfItem(c.Items, id)
		if i < 0 {
			return inventory.ErrItemNotFound
		}
		c.Items = append(c.Items[:i:i], c.Items[i+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	if uc.search != nil {
		if err := uc.search.DeleteItem(ctx, id); err != nil {
			uc.logger.Error("failed to remove item from index", zap.String("item_id", id), zap.Error(err))
		}
	}
	return nil
}

func (uc *inventoryUseCase) UpdateItemStock(ctx context.Context, input *dto.UpdateStockInput) (*dto.StockChange, error) {
	return uc.changeStock(ctx, input.ItemID, func(int) int { return input.NewStock }, stockMeta{
		txType:   input.Type,
		userID:   input.UserID,
		userName: input.UserName,
		notes:    input.Notes,
	})
}

func (uc *inventoryUseCase) AdjustItemStock(ctx context.Context, input *dto.AdjustStockInput) (*dto.StockChange, error) {
	return uc.changeStock(ctx, input.ItemID, func(current int) int { return current + input.Delta }, stockMeta{
		txType:   input.Type,
		userID:   input.UserID,
		userName: input.UserName,
		notes:    input.Notes,
	})
}

type stockMeta struct {
	txType   model.TransactionType
	userID   string
	userName string
	notes    string
}

// changeStock sets the stock of one item, records the transaction and
// raises a low stock alert the first time the item drops below its
// minimum.
func (uc *inventoryUseCase) changeStock(ctx context.Context, itemID string, next func(current int) int, meta stockMeta) (*dto.StockChange, error) {
	release, err := uc.lock(ctx, itemID)
	if err != nil {
		return nil, err
	}
	defer release()

	now := uc.now()
	var change dto.StockChange
	err = uc.doc.Update(func(c *catalog) error {
		i := indexOfItem(c.Items, itemID)
		if i < 0 {
			return inventory.ErrItemNotFound
		}
		item := c.Items[i]
		newStock := next(item.CurrentStock)

		tx := model.StockTransaction{
			ID:        uuid.New().String(),
			ItemID:    item.ID,
			ItemName:  item.Name,
			Type:      meta.txType,
			Quantity:  abs(newStock - item.CurrentStock),
			Timestamp: now,
			UserID:    meta.userID,
			UserName:  meta.userName,
			Notes:     meta.notes,
		}

		item.CurrentStock = newStock
		item.LastUpdated = now
		if meta.userName != "" {
			item.UpdatedBy = meta.userName
		}
		c.Items[i] = item
		c.Transactions = append([]model.StockTransaction{tx}, c.Transactions...)

		if item.IsLowStock() && !hasLowStockAlert(c.Alerts, item.ID) {
			alert := model.StockAlert{
				ID:       uuid.New().String(),
				Type:     model.AlertLowStock,
				ItemID:   item.ID,
				ItemName: item.Name,
				Message: i18n.T("inventory.low_stock_alert", map[string]any{
					"Current": item.CurrentStock,
					"Min":     item.MinStock,
				}),
				CreatedAt: now,
				Priority:  model.PriorityHigh,
			}
			c.Alerts = append(c.Alerts, alert)
			change.Alert = &alert
		}

		change.Item = item
		change.Transaction = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.StockUpdated(string(meta.txType))
	if change.Alert != nil {
		uc.metrics.LowStockAlertRaised()
		uc.logger.Warn("low stock", zap.String("item_id", itemID),
			zap.Int("current", change.Item.CurrentStock), zap.Int("min", change.Item.MinStock))
	}
	return &change, nil
}

// lock takes the distributed stock lock for one item. Without a locker the
// document mutex is the only guard.
func (uc *inventoryUseCase) lock(ctx context.Context, itemID string) (func(), error) {
	if uc.locker == nil {
		return func() {}, nil
	}

	key := "lock:inventory:" + itemID
	value := uuid.New().String()
	for attempt := 0; attempt < lockAttempts; attempt++ {
		ok, err := uc.locker.AcquireLock(ctx, key, value, lockTTL)
		if err != nil {
			uc.logger.Error("failed to acquire stock lock", zap.String("key", key), zap.Error(err))
		}
		if ok {
			return func() {
				if err := uc.locker.ReleaseLock(context.Background(), key, value); err != nil {
					uc.logger.Error("failed to release stock lock", zap.String("key", key), zap.Error(err))
				}
			}, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockBackoff):
		}
	}
	return nil, inventory.ErrBusy
}

func (uc *inventoryUseCase) GetLowStockItems(ctx context.Context) []model.InventoryItem {
	return uc.filterItems(func(it *model.InventoryItem) bool { return it.IsLowStock() })
}

// GetExpiringItems returns items expiring within the next days days,
// including ones that already expired.
func (uc *inventoryUseCase) GetExpiringItems(ctx context.Context, days int) []model.InventoryItem {
	threshold := uc.now().AddDate(0, 0, days)
	return uc.filterItems(func(it *model.InventoryItem) bool { return it.ExpiresBefore(threshold) })
}

func (uc *inventoryUseCase) GetRecentTransactions(ctx context.Context, limit int) []model.StockTransaction {
	if limit <= 0 {
		limit = inventory.DefaultTransactionLimit
	}

	var out []model.StockTransaction
	uc.doc.View(func(c *catalog) {
		out = make([]model.StockTransaction, len(c.Transactions))
		copy(out, c.Transactions)
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (uc *inventoryUseCase) ListAlerts(ctx context.Context) []model.StockAlert {
	var out []model.StockAlert
	uc.doc.View(func(c *catalog) {
		out = make([]model.StockAlert, len(c.Alerts))
		copy(out, c.Alerts)
	})
	return out
}

func (uc *inventoryUseCase) MarkAlertAsRead(ctx context.Context, id string) error {
	return uc.doc.Update(func(c *catalog) error {
		for i := range c.Alerts {
			if c.Alerts[i].ID == id {
				c.Alerts[i].IsRead = true
				return nil
			}
		}
		return inventory.ErrAlertNotFound
	})
}

func (uc *inventoryUseCase) GetUnreadAlertsCount(ctx context.Context) int {
	count := 0
	uc.doc.View(func(c *catalog) {
		for _, a := range c.Alerts {
			if !a.IsRead {
				count++
			}
		}
	})
	return count
}

func (uc *inventoryUseCase) filterItems(keep func(*model.InventoryItem) bool) []model.InventoryItem {
	var out []model.InventoryItem
	uc.doc.View(func(c *catalog) {
		for i := range c.Items {
			if keep(&c.Items[i]) {
				out = append(out, c.Items[i])
			}
		}
	})
	return out
}

// itemsByIDs keeps the order of ids and skips ids no longer in the catalog.
func (uc *inventoryUseCase) itemsByIDs(ids []string) []model.InventoryItem {
	out := make([]model.InventoryItem, 0, len(ids))
	uc.doc.View(func(c *catalog) {
		for _, id := range ids {
			if i := indexOfItem(c.Items, id); i >= 0 {
				out = append(out, c.Items[i])
			}
		}
	})
	return out
}

func (uc *inventoryUseCase) limit(items []model.InventoryItem, n int) []model.InventoryItem {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func (uc *inventoryUseCase) indexItem(ctx context.Context, item *model.InventoryItem) {
	if uc.search == nil {
		return
	}
	if err := uc.search.IndexItem(ctx, item); err != nil {
		uc.logger.Error("failed to index item", zap.String("item_id", item.ID), zap.Error(err))
	}
}

func applyInput(item *model.InventoryItem, in *dto.ItemInput, now time.Time) {
	item.Name = strings.TrimSpace(in.Name)
	item.Category = in.Category
	item.Description = in.Description
	item.Location = in.Location
	item.CurrentStock = in.CurrentStock
	item.MinStock = in.MinStock
	item.Unit = in.Unit
	item.Price = in.Price
	item.ExpiryDate = in.ExpiryDate
	item.Supplier = in.Supplier
	item.Manufacturer = in.Manufacturer
	item.ManufacturerNumber = in.ManufacturerNumber
	item.Barcode = strings.TrimSpace(in.Barcode)
	item.Image = in.Image
	item.Batch = in.Batch
	item.SKU = in.SKU
	item.UpdatedBy = in.UpdatedBy
	item.LastUpdated = now
}

// barcodeTaken compares digits only, ignoring the item with id except.
func barcodeTaken(items []model.InventoryItem, barcode, except string) bool {
	normalized := model.NormalizeBarcode(barcode)
	if normalized == "" {
		return false
	}
	for i := range items {
		if items[i].ID != except && model.NormalizeBarcode(items[i].Barcode) == normalized {
			return true
		}
	}
	return false
}

func hasLowStockAlert(alerts []model.StockAlert, itemID string) bool {
	for _, a := range alerts {
		if a.ItemID == itemID && a.Type == model.AlertLowStock {
			return true
		}
	}
	return false
}

func indexOfItem(items []model.InventoryItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
