package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-clinic-service/internal/inventory"
	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/pkg/search"
)

const (
	IndexName    = "inventory-items"
	defaultLimit = 20
)

const itemMapping = `{
	"mappings": {
		"properties": {
			"name": { "type": "text" },
			"description": { "type": "text" },
			"category": { "type": "keyword" },
			"manufacturer": { "type": "text" },
			"supplier": { "type": "text" },
			"sku": { "type": "keyword" },
			"barcode": { "type": "keyword" },
			"barcodeDigits": { "type": "keyword" },
			"lastUpdated": { "type": "date" }
		}
	}
}`

// SearchClient is the part of *search.Client the repository uses.
type SearchClient interface {
	CreateIndex(ctx context.Context, index, mapping string) error
	Index(ctx context.Context, index, id string, doc any) error
	Delete(ctx context.Context, index, id string) error
	Search(ctx context.Context, index string, query map[string]interface{}) (*search.SearchResult, error)
}

type esRepository struct {
	client SearchClient
	index  string
}

func NewElasticRepository(client SearchClient) inventory.SearchRepository {
	return &esRepository{client: client, index: IndexName}
}

type itemDocument struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Manufacturer  string `json:"manufacturer,omitempty"`
	Supplier      string `json:"supplier,omitempty"`
	SKU           string `json:"sku,omitempty"`
	Barcode       string `json:"barcode,omitempty"`
	BarcodeDigits string `json:"barcodeDigits,omitempty"`
	LastUpdated   string `json:"lastUpdated"`
}

func (r *esRepository) EnsureIndex(ctx context.Context) error {
	return r.client.CreateIndex(ctx, r.index, itemMapping)
}

func (r *esRepository) IndexItem(ctx context.Context, item *model.InventoryItem) error {
	doc := itemDocument{
		Name:          item.Name,
		Description:   item.Description,
		Category:      item.Category,
		Manufacturer:  item.Manufacturer,
		Supplier:      item.Supplier,
		SKU:           item.SKU,
		Barcode:       item.Barcode,
		BarcodeDigits: model.NormalizeBarcode(item.Barcode),
		LastUpdated:   item.LastUpdated.UTC().Format(time.RFC3339),
	}
	return r.client.Index(ctx, r.index, item.ID, doc)
}

func (r *esRepository) DeleteItem(ctx context.Context, id string) error {
	return r.client.Delete(ctx, r.index, id)
}

func (r *esRepository) SearchItemIDs(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	should := []map[string]interface{}{
		{
			"query_string": map[string]interface{}{
				"query":  fmt.Sprintf("*%s*", escapeQuery(query)),
				"fields": []string{"name^3", "category^2", "sku", "barcode", "manufacturer", "description"},
			},
		},
	}
	if digits := model.NormalizeBarcode(query); digits != "" {
		should = append(should, map[string]interface{}{
			"term": map[string]interface{}{"barcodeDigits": digits},
		})
	}

	q := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"should":               should,
				"minimum_should_match": 1,
			},
		},
		"size":    limit,
		"_source": false,
	}

	res, err := r.client.Search(ctx, r.index, q)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}

var queryEscaper = strings.NewReplacer(
	`\`, `\\`, `+`, `\+`, `-`, `\-`, `=`, `\=`, `&`, `\&`, `|`, `\|`,
	`>`, `\>`, `<`, `\<`, `!`, `\!`, `(`, `\(`, `)`, `\)`, `{`, `\{`,
	`}`, `\}`, `[`, `\[`, `]`, `\]`, `^`, `\^`, `"`, `\"`, `~`, `\~`,
	`*`, `\*`, `?`, `\?`, `:`, `\:`, `/`, `\/`,
)

// escapeQuery escapes query_string operators so user input is matched
// literally.
func escapeQuery(s string) string {
	return queryEscaper.Replace(s)
}
