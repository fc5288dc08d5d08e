package usecase

import (
	"time"

	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/shopspring/decimal"
)

type orderBook struct {
	Orders []model.Order `json:"orders"`
}

func seedOrders(now time.Time) orderBook {
	at := func(d time.Duration) *time.Time {
		t := now.Add(-d)
		return &t
	}
	orders := []model.Order{
		{
			ID: "order-4", Status: model.OrderPending, CreatedAt: now.Add(-3 * time.Hour),
			CreatedBy: "Thomas Müller", CreatedByID: "2", Supplier: "Fresenius Kabi",
			Notes: "Dringend für Station 3",
			Items: []model.OrderItem{
				{ItemID: "4", Name: "Kochsalzlösung 0,9 % 500 ml", Quantity: 60, Unit: "Flasche", Price: decimal.RequireFromString("1.35")},
			},
		},
		{
			ID: "order-3", Status: model.OrderPending, CreatedAt: now.Add(-26 * time.Hour),
			CreatedBy: "Julia Becker", CreatedByID: "4", Supplier: "Pharma Nord",
			Items: []model.OrderItem{
				{ItemID: "2", Name: "Paracetamol 500 mg", Quantity: 40, Unit: "Packung", Price: decimal.RequireFromString("2.49")},
				{ItemID: "6", Name: "Ibuprofen 400 mg", Quantity: 20, Unit: "Packung", Price: decimal.RequireFromString("4.95")},
			},
		},
		{
			ID: "order-2", Status: model.OrderApproved, CreatedAt: now.Add(-3 * 24 * time.Hour),
			CreatedBy: "Anna Hoffmann", CreatedByID: "6", ApprovedBy: "Markus Schneider", ApprovedByID: "5",
			ApprovedAt: at(2 * 24 * time.Hour), Supplier: "Hygiene Plus",
			Items: []model.OrderItem{
				{ItemID: "7", Name: "Desinfektionsmittel 1 l", Quantity: 30, Unit: "Flasche", Price: decimal.RequireFromString("6.80")},
			},
		},
		{
			ID: "order-1", Status: model.OrderDelivered, CreatedAt: now.Add(-10 * 24 * time.Hour),
			CreatedBy: "Anna Hoffmann", CreatedByID: "6", ApprovedBy: "Markus Schneider", ApprovedByID: "5",
			ApprovedAt: at(9 * 24 * time.Hour), DeliveryDate: at(6 * 24 * time.Hour), Supplier: "MedSupply GmbH",
			Items: []model.OrderItem{
				{ItemID: "1", Name: "Einmalhandschuhe Nitril M", Quantity: 300, Unit: "Stück", Price: decimal.RequireFromString("0.12")},
				{ItemID: "3", Name: "Spritzen 5 ml", Quantity: 500, Unit: "Stück", Price: decimal.RequireFromString("0.08")},
			},
		},
	}
	for i := range orders {
		orders[i].TotalPrice = model.OrderTotal(orders[i].Items)
	}
	return orderBook{Orders: orders}
}
