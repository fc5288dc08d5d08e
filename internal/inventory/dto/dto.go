package dto

import "github.com/fekuna/omnipos-clinic-service/internal/model"

// StockChange is the outcome of a stock update.
type StockChange struct {
	Item        model.InventoryItem
	Transaction model.StockTransaction
	// Alert is set when the change raised a new low stock alert.
	Alert *model.StockAlert
}
