package usecase

import (
	"time"

	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/shopspring/decimal"
)

type catalog struct {
	Items        []model.InventoryItem    `json:"items"`
	Alerts       []model.StockAlert       `json:"alerts"`
	Transactions []model.StockTransaction `json:"transactions"`
}

func days(now time.Time, n int) *time.Time {
	t := now.AddDate(0, 0, n)
	return &t
}

// seedCatalog is the stock of a fresh installation. Expiry dates are
// relative to now so the expiring list is never empty.
func seedCatalog(now time.Time) catalog {
	items := []model.InventoryItem{
		{
			ID: "1", Name: "Einmalhandschuhe Nitril M", Category: "Verbrauchsmaterial",
			Description: "Puderfreie Untersuchungshandschuhe, Größe M", Location: "Lager A, Regal 3",
			CurrentStock: 450, MinStock: 200, Unit: "Stück", Price: decimal.RequireFromString("0.12"),
			ExpiryDate: days(now, 540), Supplier: "MedSupply GmbH", Manufacturer: "Hartmann",
			ManufacturerNumber: "HM-942-M", Barcode: "4006381333931", Batch: "B2024-117", SKU: "VM-HS-NIT-M",
		},
		{
			ID: "2", Name: "Paracetamol 500 mg", Category: "Medikamente",
			Description: "Tabletten, 20 Stück pro Packung", Location: "Apotheke, Schrank 2",
			CurrentStock: 35, MinStock: 50, Unit: "Packung", Price: decimal.RequireFromString("2.49"),
			ExpiryDate: days(now, 20), Supplier: "Pharma Nord", Manufacturer: "ratiopharm",
			ManufacturerNumber: "RP-500-20", Barcode: "4030855000123", Batch: "P23-0456", SKU: "MED-PCM-500",
		},
		{
			ID: "3", Name: "Spritzen 5 ml", Category: "Verbrauchsmaterial",
			Description: "Einmalspritzen Luer-Lock, steril", Location: "Lager A, Regal 1",
			CurrentStock: 1200, MinStock: 500, Unit: "Stück", Price: decimal.RequireFromString("0.08"),
			ExpiryDate: days(now, 720), Supplier: "MedSupply GmbH", Manufacturer: "B. Braun",
			ManufacturerNumber: "BB-4606051V", Barcode: "4022495028054", Batch: "S2024-88", SKU: "VM-SP-5ML",
		},
		{
			ID: "4", Name: "Kochsalzlösung 0,9 % 500 ml", Category: "Infusionen",
			Description: "Isotonische Natriumchloridlösung", Location: "Lager B, Regal 4",
			CurrentStock: 18, MinStock: 40, Unit: "Flasche", Price: decimal.RequireFromString("1.35"),
			ExpiryDate: days(now, 12), Supplier: "Fresenius Kabi", Manufacturer: "Fresenius Kabi",
			ManufacturerNumber: "FK-NACL-500", Barcode: "4015630052186", Batch: "I24-0031", SKU: "INF-NACL-500",
		},
		{
			ID: "5", Name: "Verbandmull steril 10x10 cm", Category: "Verbandsmaterial",
			Description: "Mullkompressen, 8-fach gelegt", Location: "Station 2, Schrank 1",
			CurrentStock: 260, MinStock: 100, Unit: "Stück", Price: decimal.RequireFromString("0.21"),
			Supplier: "MedSupply GmbH", Manufacturer: "Lohmann & Rauscher",
			ManufacturerNumber: "LR-13621", Barcode: "4021447136219", SKU: "VB-MULL-10",
		},
		{
			ID: "6", Name: "Ibuprofen 400 mg", Category: "Medikamente",
			Description: "Filmtabletten, 50 Stück pro Packung", Location: "Apotheke, Schrank 2",
			CurrentStock: 62, MinStock: 30, Unit: "Packung", Price: decimal.RequireFromString("4.95"),
			ExpiryDate: days(now, 210), Supplier: "Pharma Nord", Manufacturer: "Hexal",
			ManufacturerNumber: "HX-IBU-400", Barcode: "4030855001878", Batch: "P24-1102", SKU: "MED-IBU-400",
		},
		{
			ID: "7", Name: "Desinfektionsmittel 1 l", Category: "Hygiene",
			Description: "Alkoholisches Händedesinfektionsmittel", Location: "Lager C, Regal 2",
			CurrentStock: 8, MinStock: 25, Unit: "Flasche", Price: decimal.RequireFromString("6.80"),
			ExpiryDate: days(now, 365), Supplier: "Hygiene Plus", Manufacturer: "Schülke",
			ManufacturerNumber: "SC-SD-1000", Barcode: "4032651113029", Batch: "H24-77", SKU: "HY-DES-1L",
		},
		{
			ID: "8", Name: "Blutdruckmanschette Erwachsene", Category: "Geräte",
			Description: "Wiederverwendbare Manschette, Klettverschluss", Location: "Station 1, Geräteraum",
			CurrentStock: 14, MinStock: 5, Unit: "Stück", Price: decimal.RequireFromString("18.90"),
			Supplier: "Klinikbedarf Süd", Manufacturer: "Boso",
			ManufacturerNumber: "BO-112-A", Barcode: "4045178130074", SKU: "GE-BDM-ERW",
		},
	}
	for i := range items {
		items[i].LastUpdated = now.Add(-time.Duration(i+1) * 6 * time.Hour)
		items[i].UpdatedBy = "Thomas Müller"
	}

	alerts := []model.StockAlert{
		{
			ID: "alert-1", Type: model.AlertLowStock, ItemID: "2", ItemName: "Paracetamol 500 mg",
			Message: "Bestand unter Mindestmenge (35/50)", CreatedAt: now.Add(-26 * time.Hour),
			Priority: model.PriorityHigh,
		},
		{
			ID: "alert-2", Type: model.AlertLowStock, ItemID: "4", ItemName: "Kochsalzlösung 0,9 % 500 ml",
			Message: "Bestand unter Mindestmenge (18/40)", CreatedAt: now.Add(-5 * time.Hour),
			Priority: model.PriorityHigh,
		},
		{
			ID: "alert-3", Type: model.AlertExpiringSoon, ItemID: "4", ItemName: "Kochsalzlösung 0,9 % 500 ml",
			Message: "Läuft in 12 Tagen ab", CreatedAt: now.Add(-3 * time.Hour),
			Priority: model.PriorityMedium,
		},
		{
			ID: "alert-4", Type: model.AlertOrderStatus, OrderID: "order-2",
			Message: "Bestellung wurde genehmigt", CreatedAt: now.Add(-48 * time.Hour),
			IsRead: true, Priority: model.PriorityLow,
		},
	}

	transactions := []model.StockTransaction{
		{
			ID: "trans-3", ItemID: "7", ItemName: "Desinfektionsmittel 1 l", Type: model.TransactionWithdrawal,
			Quantity: 4, Timestamp: now.Add(-2 * time.Hour), UserID: "2", UserName: "Thomas Müller",
			Notes: "Station 3",
		},
		{
			ID: "trans-2", ItemID: "1", ItemName: "Einmalhandschuhe Nitril M", Type: model.TransactionRestock,
			Quantity: 300, Timestamp: now.Add(-20 * time.Hour), UserID: "6", UserName: "Anna Hoffmann",
		},
		{
			ID: "trans-1", ItemID: "2", ItemName: "Paracetamol 500 mg", Type: model.TransactionWithdrawal,
			Quantity: 15, Timestamp: now.Add(-27 * time.Hour), UserID: "4", UserName: "Julia Becker",
		},
	}

	return catalog{Items: items, Alerts: alerts, Transactions: transactions}
}
