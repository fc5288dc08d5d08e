package usecase

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-clinic-service/internal/blobsync"
	"github.com/fekuna/omnipos-clinic-service/internal/blobsync/repository"
	"github.com/fekuna/omnipos-clinic-service/internal/inventory"
	invusecase "github.com/fekuna/omnipos-clinic-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-clinic-service/internal/model"
	staterepo "github.com/fekuna/omnipos-clinic-service/internal/state/repository"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"github.com/fekuna/omnipos-clinic-service/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

const (
	testConn      = "AccessKeyId=AKIA;SecretAccessKey=secret"
	testContainer = "clinic-data"
)

type fixture struct {
	uc        *syncUseCase
	client    *repository.MemoryClient
	inventory inventory.UseCase
	metrics   *metrics.Metrics
	repo      *staterepo.MemoryRepository
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	repo := staterepo.NewMemoryRepository()
	m := metrics.New(prometheus.NewRegistry())

	inv := invusecase.NewInventoryUseCase(repo, nil, nil, m, logger.NewNop())
	if err := inv.Load(ctx); err != nil {
		t.Fatalf("inventory Load: %v", err)
	}

	client := repository.NewMemoryClient()
	uc := NewSyncUseCase(repo, client, inv, m, logger.NewNop()).(*syncUseCase)
	if err := uc.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	t.Cleanup(uc.Close)
	return &fixture{uc: uc, client: client, inventory: inv, metrics: m, repo: repo}
}

func (f *fixture) configure(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	if err := f.uc.SetConnectionString(ctx, testConn); err != nil {
		t.Fatalf("SetConnectionString: %v", err)
	}
	if err := f.uc.SetContainerName(ctx, testContainer); err != nil {
		t.Fatalf("SetContainerName: %v", err)
	}
}

func stockOf(t *testing.T, inv inventory.UseCase, id string) int {
	t.Helper()
	item, err := inv.GetItemByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetItemByID(%s): %v", id, err)
	}
	return item.CurrentStock
}

func TestStatus_Defaults(t *testing.T) {
	f := setup(t)
	st := f.uc.Status(context.Background())
	if st.PollingInterval != model.DefaultPollingInterval || st.IsEnabled {
		t.Errorf("config = %+v", st.SyncConfig)
	}
	if st.SyncStatus != model.SyncIdle || st.LastSyncTime != nil || len(st.SyncErrors) != 0 {
		t.Errorf("status = %+v", st)
	}
}

func TestTestConnection(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	if err := f.uc.TestConnection(ctx, "", ""); !errors.Is(err, blobsync.ErrConfigRequired) {
		t.Fatalf("err = %v, want ErrConfigRequired", err)
	}
	if err := f.uc.TestConnection(ctx, testConn, ""); !errors.Is(err, blobsync.ErrConfigRequired) {
		t.Fatalf("err = %v, want ErrConfigRequired without container", err)
	}

	f.client.Put(testContainer, "readme.txt", []byte("hi"), time.Now())
	if err := f.uc.TestConnection(ctx, testConn, testContainer); err != nil {
		t.Fatalf("TestConnection: %v", err)
	}
	if st := f.uc.Status(ctx); st.SyncStatus != model.SyncSuccess {
		t.Errorf("status = %s, want success", st.SyncStatus)
	}

	if err := f.uc.TestConnection(ctx, testConn, "missing"); err == nil {
		t.Fatal("expected error for unknown container")
	}
	st := f.uc.Status(ctx)
	if st.SyncStatus != model.SyncError {
		t.Errorf("status = %s, want error", st.SyncStatus)
	}
	if len(st.SyncErrors) != 1 || !strings.HasPrefix(st.SyncErrors[0], "Verbindungsfehler: ") {
		t.Errorf("errors = %q", st.SyncErrors)
	}
}

func TestTestConnection_UsesStoredConfig(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.configure(t)
	f.client.Put(testContainer, "orders.json", []byte("[]"), time.Now())

	if err := f.uc.TestConnection(ctx, "", ""); err != nil {
		t.Fatalf("TestConnection with stored config: %v", err)
	}
}

func TestSyncNow_RequiresConfig(t *testing.T) {
	f := setup(t)
	res, err := f.uc.SyncNow(context.Background())
	if !errors.Is(err, blobsync.ErrConfigRequired) || res != nil {
		t.Fatalf("SyncNow = %v, %v; want ErrConfigRequired", res, err)
	}
	if st := f.uc.Status(context.Background()); st.SyncStatus != model.SyncIdle {
		t.Errorf("status changed to %s", st.SyncStatus)
	}
}

func TestSyncNow_ImportsMatchingFiles(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.configure(t)

	modified := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	f.client.Put(testContainer, "inventory-2026-10.csv", []byte("id,currentStock\n1,480\n3,1200\n"), modified)
	f.client.Put(testContainer, "exports/Products_Q4.csv", []byte("Barcode;Bestand\n4030855000123;80\n"), modified)
	f.client.Put(testContainer, "orders-2026.json", []byte(`[{"id":"a"},{"id":"b"}]`), modified)
	f.client.Put(testContainer, "readme.txt", []byte("ignored"), modified)

	res, err := f.uc.SyncNow(ctx)
	if err != nil {
		t.Fatalf("SyncNow: %v", err)
	}
	if res.Status != model.ResultSuccess {
		t.Fatalf("status = %s, errors = %q", res.Status, res.Errors)
	}
	if res.FilesProcessed != 3 || res.RecordsProcessed != 5 {
		t.Errorf("files = %d records = %d, want 3 and 5", res.FilesProcessed, res.RecordsProcessed)
	}

	if got := stockOf(t, f.inventory, "1"); got != 480 {
		t.Errorf("item 1 stock = %d, want 480", got)
	}
	if got := stockOf(t, f.inventory, "2"); got != 80 {
		t.Errorf("item 2 stock = %d, want 80", got)
	}
	if got := stockOf(t, f.inventory, "3"); got != 1200 {
		t.Errorf("item 3 stock = %d, want unchanged 1200", got)
	}

	txs := f.inventory.GetRecentTransactions(ctx, 2)
	for _, tx := range txs {
		if tx.UserID != blobsync.SyncUserID || tx.Type != model.TransactionRestock {
			t.Errorf("transaction = %+v, want restock by %s", tx, blobsync.SyncUserID)
		}
	}

	st := f.uc.Status(ctx)
	if st.SyncStatus != model.SyncSuccess || st.LastSyncTime == nil {
		t.Errorf("status = %+v", st)
	}
	if got := testutil.ToFloat64(f.metrics.SyncRuns.WithLabelValues("success")); got != 1 {
		t.Errorf("success runs = %v, want 1", got)
	}
}

func TestSyncNow_SkipsUnchangedBlobs(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.configure(t)

	first := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	f.client.Put(testContainer, "inventory.csv", []byte("id,stock\n1,400\n"), first)
	if _, err := f.uc.SyncNow(ctx); err != nil {
		t.Fatalf("first SyncNow: %v", err)
	}

	res, err := f.uc.SyncNow(ctx)
	if err != nil {
		t.Fatalf("second SyncNow: %v", err)
	}
	if res.FilesProcessed != 0 {
		t.Errorf("unchanged blob processed again: %+v", res.Files)
	}

	f.client.Put(testContainer, "inventory.csv", []byte("id,stock\n1,390\n"), first.Add(time.Hour))
	res, err = f.uc.SyncNow(ctx)
	if err != nil {
		t.Fatalf("third SyncNow: %v", err)
	}
	if res.FilesProcessed != 1 || stockOf(t, f.inventory, "1") != 390 {
		t.Errorf("modified blob not imported: %+v", res)
	}
	if tx := f.inventory.GetRecentTransactions(ctx, 1)[0]; tx.Type != model.TransactionAdjustment {
		t.Errorf("lower stock recorded as %s, want adjustment", tx.Type)
	}
}

func TestSyncNow_Partial(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.configure(t)
	f.client.Put(testContainer, "inventory.csv", []byte("id,stock\n1,500\n999,10\n3,abc\n"), time.Now())

	res, err := f.uc.SyncNow(ctx)
	if err != nil {
		t.Fatalf("SyncNow: %v", err)
	}
	if res.Status != model.ResultPartial || res.RecordsProcessed != 1 || len(res.Errors) != 2 {
		t.Fatalf("result = %+v", res)
	}
	st := f.uc.Status(ctx)
	if st.SyncStatus != model.SyncSuccess || len(st.SyncErrors) != 2 {
		t.Errorf("status = %+v", st)
	}
	for _, e := range st.SyncErrors {
		if !strings.HasPrefix(e, "Synchronisierungsfehler: ") {
			t.Errorf("error %q lacks prefix", e)
		}
	}
}

func TestSyncNow_Failed(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.configure(t)
	f.client.FailWith(errors.New("connection reset"))

	res, err := f.uc.SyncNow(ctx)
	if err == nil {
		t.Fatal("expected error")
	}
	if res == nil || res.Status != model.ResultFailed {
		t.Fatalf("result = %+v", res)
	}
	st := f.uc.Status(ctx)
	if st.SyncStatus != model.SyncError {
		t.Errorf("status = %s, want error", st.SyncStatus)
	}
	if len(st.SyncErrors) != 1 || st.SyncErrors[0] != "Synchronisierungsfehler: connection reset" {
		t.Errorf("errors = %q", st.SyncErrors)
	}
	if got := testutil.ToFloat64(f.metrics.SyncRuns.WithLabelValues("failed")); got != 1 {
		t.Errorf("failed runs = %v, want 1", got)
	}

	f.uc.ClearErrors(ctx)
	if st := f.uc.Status(ctx); len(st.SyncErrors) != 0 {
		t.Errorf("errors after clear = %q", st.SyncErrors)
	}
}

func TestSyncNow_UnparsableFileFails(t *testing.T) {
	f := setup(t)
	f.configure(t)
	f.client.Put(testContainer, "orders.json", []byte("{not json"), time.Now())

	res, err := f.uc.SyncNow(context.Background())
	if err == nil || res.Status != model.ResultFailed {
		t.Fatalf("SyncNow = %+v, %v; want failed", res, err)
	}
}

func TestSetPollingInterval(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	if err := f.uc.SetPollingInterval(ctx, 0); !errors.Is(err, blobsync.ErrInvalidInterval) {
		t.Fatalf("err = %v, want ErrInvalidInterval", err)
	}
	if err := f.uc.SetPollingInterval(ctx, 30); err != nil {
		t.Fatalf("SetPollingInterval: %v", err)
	}
	if got := f.uc.Status(ctx).PollingInterval; got != 30 {
		t.Errorf("interval = %d, want 30", got)
	}
}

func TestOnlyConfigurationPersists(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.configure(t)
	if err := f.uc.SetPollingInterval(ctx, 5); err != nil {
		t.Fatal(err)
	}
	f.client.FailWith(errors.New("down"))
	_, _ = f.uc.SyncNow(ctx)
	if err := f.uc.Save(ctx); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded := NewSyncUseCase(f.repo, f.client, f.inventory, nil, logger.NewNop())
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer reloaded.Close()

	st := reloaded.Status(ctx)
	if st.ConnectionString != testConn || st.ContainerName != testContainer || st.PollingInterval != 5 {
		t.Errorf("config = %+v", st.SyncConfig)
	}
	if st.SyncStatus != model.SyncIdle || len(st.SyncErrors) != 0 {
		t.Errorf("runtime status persisted: %+v", st)
	}
}

func TestPolling_RunsWhileEnabled(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.uc.pollUnit = 10 * time.Millisecond
	f.configure(t)
	if err := f.uc.SetPollingInterval(ctx, 1); err != nil {
		t.Fatal(err)
	}
	f.client.Put(testContainer, "inventory.csv", []byte("id,stock\n8,20\n"), time.Now())

	if err := f.uc.SetEnabled(ctx, true); err != nil {
		t.Fatalf("SetEnabled: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for stockOf(t, f.inventory, "8") != 20 {
		if time.Now().After(deadline) {
			t.Fatal("poller did not import the blob")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := f.uc.SetEnabled(ctx, false); err != nil {
		t.Fatalf("SetEnabled(false): %v", err)
	}
	f.uc.pollMu.Lock()
	running := f.uc.pollCancel != nil
	f.uc.pollMu.Unlock()
	if running {
		t.Error("poller still running after disable")
	}
}

func TestSetEnabled_ConcurrentCallsKeepOnePoller(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.uc.pollUnit = time.Hour
	f.configure(t)

	waitGoroutines := func(max int) int {
		t.Helper()
		deadline := time.Now().Add(2 * time.Second)
		for {
			n := runtime.NumGoroutine()
			if n <= max || time.Now().After(deadline) {
				return n
			}
			time.Sleep(5 * time.Millisecond)
		}
	}
	baseline := runtime.NumGoroutine()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f.uc.SetEnabled(ctx, true); err != nil {
				t.Errorf("SetEnabled: %v", err)
			}
		}()
	}
	wg.Wait()

	if n := waitGoroutines(baseline + 1); n > baseline+1 {
		t.Fatalf("goroutines = %d after concurrent enables, want at most %d", n, baseline+1)
	}

	if err := f.uc.SetEnabled(ctx, false); err != nil {
		t.Fatalf("SetEnabled(false): %v", err)
	}
	if n := waitGoroutines(baseline); n > baseline {
		t.Errorf("goroutines = %d after disable, want at most %d", n, baseline)
	}
}

func TestClassify(t *testing.T) {
	tests := map[string]blobKind{
		"inventory.csv":             kindInventory,
		"Inventory_2026-10-01.JSON": kindInventory,
		"uploads/products-a.csv":    kindInventory,
		"products.json":             kindUnknown,
		"orders.json":               kindOrders,
		"orders.csv":                kindUnknown,
		"report.pdf":                kindUnknown,
	}
	for name, want := range tests {
		if got := classify(name); got != want {
			t.Errorf("classify(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParseStockJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []stockRecord
	}{
		{
			name: "array",
			data: `[{"id":"1","currentStock":10},{"barcode":"4022495028054","stock":"7"}]`,
			want: []stockRecord{{line: 1, itemID: "1", stock: "10"}, {line: 2, barcode: "4022495028054", stock: "7"}},
		},
		{
			name: "wrapped",
			data: `{"items":[{"itemId":"2","currentStock":3}]}`,
			want: []stockRecord{{line: 1, itemID: "2", stock: "3"}},
		},
		{
			name: "single",
			data: `{"id":"5","currentStock":0}`,
			want: []stockRecord{{line: 1, itemID: "5", stock: "0"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseStockJSON([]byte(tt.data))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("record %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
