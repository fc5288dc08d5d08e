package usecase

import (
	"time"

	"github.com/fekuna/omnipos-clinic-service/internal/model"
)

type seedUser struct {
	model.User
	lastLoginAgo time.Duration // zero means never logged in
}

// demoStaff is the directory a fresh installation starts with. Every
// account uses the demo password.
var demoStaff = []seedUser{
	{User: model.User{ID: "1", Name: "Dr. Sarah Schmidt", Email: "sarah.schmidt@klinik.de", Department: "Kardiologie", Role: model.RoleDoctor, IsActive: true, CreatedAt: mustTime("2023-01-15T08:30:00Z")}, lastLoginAgo: time.Minute},
	{User: model.User{ID: "2", Name: "Thomas Müller", Email: "thomas.mueller@klinik.de", Department: "Pflege", Role: model.RoleNurse, IsActive: true, CreatedAt: mustTime("2023-02-10T10:15:00Z")}, lastLoginAgo: 2 * 24 * time.Hour},
	{User: model.User{ID: "3", Name: "Dr. Michael Weber", Email: "michael.weber@klinik.de", Department: "Neurologie", Role: model.RoleDoctor, IsActive: false, CreatedAt: mustTime("2022-11-05T14:20:00Z")}, lastLoginAgo: 30 * 24 * time.Hour},
	{User: model.User{ID: "4", Name: "Julia Becker", Email: "julia.becker@klinik.de", Department: "Apotheke", Role: model.RolePharmacist, IsActive: true, CreatedAt: mustTime("2023-03-20T09:45:00Z")}, lastLoginAgo: 24 * time.Hour},
	{User: model.User{ID: "5", Name: "Markus Schneider", Email: "markus.schneider@klinik.de", Department: "IT", Role: model.RoleAdmin, IsActive: true, CreatedAt: mustTime("2022-09-01T11:30:00Z")}, lastLoginAgo: 4 * time.Hour},
	{User: model.User{ID: "6", Name: "Anna Hoffmann", Email: "anna.hoffmann@klinik.de", Department: "Logistik", Role: model.RoleLogistics, IsActive: true, CreatedAt: mustTime("2023-04-12T13:10:00Z")}, lastLoginAgo: 3 * 24 * time.Hour},
	{User: model.User{ID: "7", Name: "Klaus Wagner", Email: "klaus.wagner@klinik.de", Department: "Einkauf", Role: model.RoleLogistics, IsActive: false, CreatedAt: mustTime("2023-05-18T15:25:00Z")}},
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
