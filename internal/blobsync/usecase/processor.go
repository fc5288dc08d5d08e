package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-clinic-service/internal/blobsync"
	"github.com/fekuna/omnipos-clinic-service/internal/inventory"
	"github.com/fekuna/omnipos-clinic-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/pkg/i18n"
)

type blobKind int

const (
	kindUnknown blobKind = iota
	kindInventory
	kindOrders
)

var blobPatterns = []struct {
	pattern string
	kind    blobKind
}{
	{"inventory*.csv", kindInventory},
	{"inventory*.json", kindInventory},
	{"products*.csv", kindInventory},
	{"orders*.json", kindOrders},
}

// classify matches the base name of a blob case-insensitively.
func classify(name string) blobKind {
	base := strings.ToLower(path.Base(name))
	for _, p := range blobPatterns {
		if ok, _ := path.Match(p.pattern, base); ok {
			return p.kind
		}
	}
	return kindUnknown
}

func detectFileType(name string) model.FileType {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(name), ".")) {
	case "csv":
		return model.FileCSV
	case "json":
		return model.FileJSON
	case "xml":
		return model.FileXML
	case "txt":
		return model.FileTXT
	}
	return model.FileUnknown
}

// stockRecord is one line of an inventory file: an item reference by id or
// barcode plus the absolute stock level.
type stockRecord struct {
	line    int
	itemID  string
	barcode string
	stock   string
}

var (
	idColumns      = []string{"id", "itemid", "item_id"}
	barcodeColumns = []string{"barcode", "ean"}
	stockColumns   = []string{"currentstock", "current_stock", "stock", "quantity", "bestand"}
)

func (uc *syncUseCase) importStock(ctx context.Context, fileType model.FileType, data []byte) (int, []string) {
	var (
		records []stockRecord
		err     error
	)
	if fileType == model.FileJSON {
		records, err = parseStockJSON(data)
	} else {
		records, err = parseStockCSV(data)
	}
	if err != nil {
		return 0, []string{err.Error()}
	}

	processed := 0
	errs := []string{}
	for _, rec := range records {
		if err := uc.applyStock(ctx, rec); err != nil {
			errs = append(errs, fmt.Sprintf("record %d: %v", rec.line, err))
			continue
		}
		processed++
	}
	return processed, errs
}

func (uc *syncUseCase) applyStock(ctx context.Context, rec stockRecord) error {
	newStock, err := strconv.Atoi(strings.TrimSpace(rec.stock))
	if err != nil {
		return fmt.Errorf("invalid stock %q", rec.stock)
	}
	if newStock < 0 {
		return fmt.Errorf("negative stock %d", newStock)
	}

	item, err := uc.lookupItem(ctx, rec)
	if err != nil {
		return err
	}
	if item.CurrentStock == newStock {
		return nil
	}

	txType := model.TransactionAdjustment
	if newStock > item.CurrentStock {
		txType = model.TransactionRestock
	}
	_, err = uc.inventory.UpdateItemStock(ctx, &dto.UpdateStockInput{
		ItemID:   item.ID,
		NewStock: newStock,
		Type:     txType,
		UserID:   blobsync.SyncUserID,
		UserName: blobsync.SyncUserName,
		Notes:    i18n.T("sync.auto_update_note", nil),
	})
	return err
}

func (uc *syncUseCase) lookupItem(ctx context.Context, rec stockRecord) (*model.InventoryItem, error) {
	if rec.itemID != "" {
		item, err := uc.inventory.GetItemByID(ctx, rec.itemID)
		if err == nil || !errors.Is(err, inventory.ErrItemNotFound) || rec.barcode == "" {
			return item, err
		}
	}
	if rec.barcode != "" {
		return uc.inventory.GetItemByBarcode(ctx, rec.barcode)
	}
	return nil, errors.New("no item id or barcode")
}

func parseStockCSV(data []byte) ([]stockRecord, error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	if first, _, _ := bytes.Cut(data, []byte("\n")); bytes.Count(first, []byte(";")) > bytes.Count(first, []byte(",")) {
		r.Comma = ';'
	}

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	idCol, barcodeCol, stockCol := column(cols, idColumns), column(cols, barcodeColumns), column(cols, stockColumns)
	if stockCol < 0 {
		return nil, errors.New("missing stock column")
	}
	if idCol < 0 && barcodeCol < 0 {
		return nil, errors.New("missing id or barcode column")
	}

	var records []stockRecord
	line := 1
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return records, fmt.Errorf("line %d: %w", line, err)
		}
		if blankRow(row) {
			continue
		}
		records = append(records, stockRecord{
			line:    line,
			itemID:  field(row, idCol),
			barcode: field(row, barcodeCol),
			stock:   field(row, stockCol),
		})
	}
	return records, nil
}

type stockJSON struct {
	ID           string           `json:"id"`
	ItemID       string           `json:"itemId"`
	Barcode      string           `json:"barcode"`
	CurrentStock *json.RawMessage `json:"currentStock"`
	Stock        *json.RawMessage `json:"stock"`
}

// parseStockJSON accepts an array of records, a single record or an object
// with an "items" array.
func parseStockJSON(data []byte) ([]stockRecord, error) {
	var entries []stockJSON
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.HasPrefix(trimmed, []byte("[")):
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	default:
		var wrapper struct {
			Items []stockJSON `json:"items"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		if wrapper.Items != nil {
			entries = wrapper.Items
			break
		}
		var single stockJSON
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		entries = []stockJSON{single}
	}

	records := make([]stockRecord, 0, len(entries))
	for i, e := range entries {
		id := e.ID
		if id == "" {
			id = e.ItemID
		}
		raw := e.CurrentStock
		if raw == nil {
			raw = e.Stock
		}
		stock := ""
		if raw != nil {
			stock = strings.Trim(string(*raw), `"`)
		}
		records = append(records, stockRecord{line: i + 1, itemID: id, barcode: e.Barcode, stock: stock})
	}
	return records, nil
}

// countOrders validates an orders file; its records are counted only.
func countOrders(data []byte) (int, []string) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return 0, []string{fmt.Sprintf("parse json: %v", err)}
	}
	if list, ok := v.([]any); ok {
		return len(list), []string{}
	}
	return 1, []string{}
}

func column(cols map[string]int, names []string) int {
	for _, n := range names {
		if i, ok := cols[n]; ok {
			return i
		}
	}
	return -1
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blankRow(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
