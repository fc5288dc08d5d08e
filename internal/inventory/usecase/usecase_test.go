package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-clinic-service/internal/inventory"
	"github.com/fekuna/omnipos-clinic-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-clinic-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/internal/state/repository"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"github.com/fekuna/omnipos-clinic-service/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
)

func setupUseCase(t *testing.T, locker inventory.Locker, search inventory.SearchRepository) (inventory.UseCase, *metrics.Metrics) {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	uc := usecase.NewInventoryUseCase(repository.NewMemoryRepository(), locker, search, m, logger.NewNop())
	if err := uc.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return uc, m
}

func TestGetLowStockItems_ExactSubset(t *testing.T) {
	uc, _ := setupUseCase(t, nil, nil)
	ctx := context.Background()

	low := map[string]bool{}
	for _, it := range uc.GetLowStockItems(ctx) {
		low[it.ID] = true
	}
	for _, it := range uc.ListItems(ctx) {
		if want := it.CurrentStock < it.MinStock; low[it.ID] != want {
			t.Errorf("item %s (%d/%d): in low list = %v", it.ID, it.CurrentStock, it.MinStock, low[it.ID])
		}
	}
	if len(low) == 0 {
		t.Error("seed should contain low stock items")
	}
}

func TestGetExpiringItems(t *testing.T) {
	uc, _ := setupUseCase(t, nil, nil)
	ctx := context.Background()

	threshold := time.Now().AddDate(0, 0, 30)
	expiring := map[string]bool{}
	for _, it := range uc.GetExpiringItems(ctx, 30) {
		expiring[it.ID] = true
	}
	for _, it := range uc.ListItems(ctx) {
		want := it.ExpiryDate != nil && !it.ExpiryDate.After(threshold)
		if expiring[it.ID] != want {
			t.Errorf("item %s: expiring = %v, want %v", it.ID, expiring[it.ID], want)
		}
	}
	if !expiring["2"] || !expiring["4"] {
		t.Errorf("items 2 and 4 expire within 30 days: %v", expiring)
	}
	if expiring["5"] {
		t.Error("items without expiry date must be excluded")
	}
}

func TestGetItemByBarcode(t *testing.T) {
	uc, _ := setupUseCase(t, nil, nil)
	ctx := context.Background()

	tests := []struct {
		code   string
		wantID string
	}{
		{"4006381333931", "1"},
		{"4006-3813-33931", "1"},
		{" 4006 3813 33931 ", "1"},
		{"4015630052186", "4"},
	}
	for _, tt := range tests {
		item, err := uc.GetItemByBarcode(ctx, tt.code)
		if err != nil {
			t.Errorf("%q: %v", tt.code, err)
			continue
		}
		if item.ID != tt.wantID {
			t.Errorf("%q resolved to %s, want %s", tt.code, item.ID, tt.wantID)
		}
	}

	for _, code := range []string{"", "0000000000000"} {
		if _, err := uc.GetItemByBarcode(ctx, code); !errors.Is(err, inventory.ErrItemNotFound) {
			t.Errorf("%q: expected ErrItemNotFound, got %v", code, err)
		}
	}
}

func TestUpdateItemStock_TransactionAndSingleAlert(t *testing.T) {
	uc, m := setupUseCase(t, nil, nil)
	ctx := context.Background()

	// Spritzen: 1200 in stock, minimum 500.
	alertsBefore := len(uc.ListAlerts(ctx))

	change, err := uc.UpdateItemStock(ctx, &dto.UpdateStockInput{
		ItemID: "3", NewStock: 450, Type: model.TransactionWithdrawal,
		UserID: "2", UserName: "Thomas Müller", Notes: "Notaufnahme",
	})
	if err != nil {
		t.Fatalf("UpdateItemStock failed: %v", err)
	}
	if change.Transaction.Quantity != 750 {
		t.Errorf("quantity = %d, want 750", change.Transaction.Quantity)
	}
	if change.Item.CurrentStock != 450 {
		t.Errorf("stock = %d", change.Item.CurrentStock)
	}
	if change.Alert == nil {
		t.Fatal("expected a low stock alert")
	}
	if change.Alert.Message != "Bestand unter Mindestmenge (450/500)" || change.Alert.Priority != model.PriorityHigh {
		t.Errorf("unexpected alert: %+v", change.Alert)
	}

	recent := uc.GetRecentTransactions(ctx, 1)
	if len(recent) != 1 || recent[0].ID != change.Transaction.ID {
		t.Errorf("new transaction should be first: %+v", recent)
	}

	change, err = uc.UpdateItemStock(ctx, &dto.UpdateStockInput{
		ItemID: "3", NewStock: 470, Type: model.TransactionReturn, UserID: "2", UserName: "Thomas Müller",
	})
	if err != nil {
		t.Fatalf("UpdateItemStock failed: %v", err)
	}
	if change.Transaction.Quantity != 20 {
		t.Errorf("quantity = %d, want 20", change.Transaction.Quantity)
	}
	if change.Alert != nil {
		t.Error("no second alert while still below minimum")
	}
	if got := len(uc.ListAlerts(ctx)); got != alertsBefore+1 {
		t.Errorf("alerts = %d, want %d", got, alertsBefore+1)
	}

	if got := testutil.ToFloat64(m.LowStockAlerts); got != 1 {
		t.Errorf("low stock counter = %v", got)
	}
	if got := testutil.ToFloat64(m.StockUpdates.WithLabelValues("withdrawal")); got != 1 {
		t.Errorf("withdrawal counter = %v", got)
	}
}

func TestUpdateItemStock_QuantityIsAbsoluteDifference(t *testing.T) {
	uc, _ := setupUseCase(t, nil, nil)
	ctx := context.Background()

	levels := []int{100, 40, 40, 900, 0}
	prev := 450
	for _, level := range levels {
		change, err := uc.UpdateItemStock(ctx, &dto.UpdateStockInput{ItemID: "1", NewStock: level, Type: model.TransactionAdjustment})
		if err != nil {
			t.Fatalf("UpdateItemStock failed: %v", err)
		}
		want := level - prev
		if want < 0 {
			want = -want
		}
		if change.Transaction.Quantity != want {
			t.Errorf("%d -> %d: quantity = %d, want %d", prev, level, change.Transaction.Quantity, want)
		}
		prev = level
	}
}

func TestUpdateItemStock_UnknownItem(t *testing.T) {
	uc, _ := setupUseCase(t, nil, nil)
	_, err := uc.UpdateItemStock(context.Background(), &dto.UpdateStockInput{ItemID: "missing", NewStock: 1})
	if !errors.Is(err, inventory.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if err.Error() != "Artikel nicht gefunden" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestAdjustItemStock(t *testing.T) {
	uc, _ := setupUseCase(t, nil, nil)
	change, err := uc.AdjustItemStock(context.Background(), &dto.AdjustStockInput{
		ItemID: "7", Delta: 30, Type: model.TransactionRestock, UserID: "system", UserName: "system",
	})
	if err != nil {
		t.Fatalf("AdjustItemStock failed: %v", err)
	}
	if change.Item.CurrentStock != 38 || change.Transaction.Quantity != 30 {
		t.Errorf("unexpected change: stock=%d qty=%d", change.Item.CurrentStock, change.Transaction.Quantity)
	}
}

func TestGetRecentTransactions_DefaultLimitAndOrder(t *testing.T) {
	uc, _ := setupUseCase(t, nil, nil)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		if _, err := uc.AdjustItemStock(ctx, &dto.AdjustStockInput{ItemID: "5", Delta: 1, Type: model.TransactionRestock}); err != nil {
			t.Fatalf("AdjustItemStock failed: %v", err)
		}
	}

	recent := uc.GetRecentTransactions(ctx, 0)
	if len(recent) != inventory.DefaultTransactionLimit {
		t.Fatalf("len = %d", len(recent))
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].Timestamp.After(recent[i-1].Timestamp) {
			t.Fatal("transactions must be newest first")
		}
	}
}

func TestAlerts(t *testing.T) {
	uc, _ := setupUseCase(t, nil, nil)
	ctx := context.Background()

	unread := uc.GetUnreadAlertsCount(ctx)
	if unread != 3 {
		t.Fatalf("unread = %d, want 3", unread)
	}
	if err := uc.MarkAlertAsRead(ctx, "alert-1"); err != nil {
		t.Fatalf("MarkAlertAsRead failed: %v", err)
	}
	if got := uc.GetUnreadAlertsCount(ctx); got != unread-1 {
		t.Errorf("unread = %d, want %d", got, unread-1)
	}
	if err := uc.MarkAlertAsRead(ctx, "nope"); !errors.Is(err, inventory.ErrAlertNotFound) {
		t.Errorf("expected ErrAlertNotFound, got %v", err)
	}
}

func TestItemCRUD_BarcodeUniqueness(t *testing.T) {
	uc, _ := setupUseCase(t, nil, nil)
	ctx := context.Background()

	input := &dto.ItemInput{
		Name: "Pflasterstrips", Category: "Verbandsmaterial", CurrentStock: 40, MinStock: 10,
		Unit: "Packung", Price: decimal.RequireFromString("3.20"), Barcode: "4012345678901",
	}
	item, err := uc.CreateItem(ctx, input)
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	dup := *input
	dup.Barcode = "4012-3456-78901"
	if _, err := uc.CreateItem(ctx, &dup); !errors.Is(err, inventory.ErrBarcodeExists) {
		t.Errorf("expected ErrBarcodeExists, got %v", err)
	}
	if _, err := uc.CreateItem(ctx, &dto.ItemInput{Name: "  "}); !errors.Is(err, inventory.ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}

	update := *input
	update.Name = "Pflasterstrips sensitiv"
	updated, err := uc.UpdateItem(ctx, item.ID, &update)
	if err != nil {
		t.Fatalf("UpdateItem with own barcode failed: %v", err)
	}
	if updated.Name != "Pflasterstrips sensitiv" {
		t.Errorf("name = %q", updated.Name)
	}

	update.Barcode = "4006381333931"
	if _, err := uc.UpdateItem(ctx, item.ID, &update); !errors.Is(err, inventory.ErrBarcodeExists) {
		t.Errorf("expected ErrBarcodeExists, got %v", err)
	}

	found := false
	for _, c := range uc.ListCategories(ctx) {
		if c == "Verbandsmaterial" {
			found = true
		}
	}
	if !found {
		t.Error("category missing")
	}
	if got := len(uc.GetItemsByCategory(ctx, "Verbandsmaterial")); got != 2 {
		t.Errorf("Verbandsmaterial items = %d", got)
	}

	if err := uc.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}
	if _, err := uc.GetItemByID(ctx, item.ID); !errors.Is(err, inventory.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestSearchItems_MemoryFallback(t *testing.T) {
	uc, _ := setupUseCase(t, nil, nil)
	ctx := context.Background()

	items, err := uc.SearchItems(ctx, "paracetamol", 0)
	if err != nil {
		t.Fatalf("SearchItems failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != "2" {
		t.Errorf("unexpected result: %+v", items)
	}

	items, _ = uc.SearchItems(ctx, "4006-3813", 0)
	if len(items) != 1 || items[0].ID != "1" {
		t.Errorf("barcode digits search: %+v", items)
	}
}

type fakeSearch struct {
	mu      sync.Mutex
	indexed map[string]bool
	ids     []string
	err     error
}

func (f *fakeSearch) EnsureIndex(ctx context.Context) error { return nil }

func (f *fakeSearch) IndexItem(ctx context.Context, item *model.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.indexed == nil {
		f.indexed = map[string]bool{}
	}
	f.indexed[item.ID] = true
	return nil
}

func (f *fakeSearch) DeleteItem(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.indexed, id)
	return nil
}

func (f *fakeSearch) SearchItemIDs(ctx context.Context, query string, limit int) ([]string, error) {
	return f.ids, f.err
}

func TestSearchItems_UsesIndex(t *testing.T) {
	search := &fakeSearch{ids: []string{"6", "gone", "2"}}
	uc, _ := setupUseCase(t, nil, search)
	ctx := context.Background()

	if len(search.indexed) != 8 {
		t.Errorf("Load should index the catalog, indexed %d", len(search.indexed))
	}

	items, err := uc.SearchItems(ctx, "schmerz", 10)
	if err != nil {
		t.Fatalf("SearchItems failed: %v", err)
	}
	if len(items) != 2 || items[0].ID != "6" || items[1].ID != "2" {
		t.Errorf("unexpected result: %+v", items)
	}

	search.err = errors.New("cluster down")
	items, _ = uc.SearchItems(ctx, "ibuprofen", 10)
	if len(items) != 1 || items[0].ID != "6" {
		t.Errorf("fallback result: %+v", items)
	}
}

type fakeLocker struct {
	mu       sync.Mutex
	held     map[string]string
	acquired int
	busy     bool
}

func (f *fakeLocker) AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy {
		return false, nil
	}
	if f.held == nil {
		f.held = map[string]string{}
	}
	if _, ok := f.held[key]; ok {
		return false, nil
	}
	f.held[key] = value
	f.acquired++
	return true, nil
}

func (f *fakeLocker) ReleaseLock(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.held[key] == value {
		delete(f.held, key)
	}
	return nil
}

func TestUpdateItemStock_Lock(t *testing.T) {
	locker := &fakeLocker{}
	uc, _ := setupUseCase(t, locker, nil)
	ctx := context.Background()

	if _, err := uc.UpdateItemStock(ctx, &dto.UpdateStockInput{ItemID: "1", NewStock: 10}); err != nil {
		t.Fatalf("UpdateItemStock failed: %v", err)
	}
	if locker.acquired != 1 || len(locker.held) != 0 {
		t.Errorf("lock not taken and released: acquired=%d held=%v", locker.acquired, locker.held)
	}

	locker.busy = true
	if _, err := uc.UpdateItemStock(ctx, &dto.UpdateStockInput{ItemID: "1", NewStock: 20}); !errors.Is(err, inventory.ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}
	item, _ := uc.GetItemByID(ctx, "1")
	if item.CurrentStock != 10 {
		t.Errorf("stock changed without lock: %d", item.CurrentStock)
	}
}
