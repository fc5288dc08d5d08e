package usecase

import (
	"time"

	"github.com/fekuna/omnipos-clinic-service/internal/model"
)

// demoAccounts can always sign in, even when the directory has been
// emptied. Directory entries with the same id are shadowed by these.
var demoAccounts = []model.User{
	{
		ID:         "1",
		Name:       "Dr. Sarah Schmidt",
		Email:      "sarah.schmidt@klinik.de",
		Department: "Kardiologie",
		Role:       model.RoleDoctor,
		IsActive:   true,
		CreatedAt:  time.Date(2023, 1, 15, 8, 30, 0, 0, time.UTC),
		Phone:      "+49 123 456789",
		Address:    "Musterstraße 1, 10115 Berlin",
		Avatar:     "https://images.unsplash.com/photo-1494790108377-be9c29b29330?q=80&w=200&auto=format&fit=crop",
	},
	{
		ID:         "2",
		Name:       "Thomas Müller",
		Email:      "thomas.mueller@klinik.de",
		Department: "Pflege",
		Role:       model.RoleNurse,
		IsActive:   true,
		CreatedAt:  time.Date(2023, 2, 10, 10, 15, 0, 0, time.UTC),
		Phone:      "+49 123 456790",
		Address:    "Hauptstraße 42, 10559 Berlin",
		Avatar:     "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?q=80&w=200&auto=format&fit=crop",
	},
	{
		ID:         "5",
		Name:       "Markus Schneider",
		Email:      "markus.schneider@klinik.de",
		Department: "IT",
		Role:       model.RoleAdmin,
		IsActive:   true,
		CreatedAt:  time.Date(2022, 9, 1, 11, 30, 0, 0, time.UTC),
		Phone:      "+49 123 456791",
		Address:    "Technikstraße 5, 10997 Berlin",
		Avatar:     "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?q=80&w=200&auto=format&fit=crop",
	},
}
