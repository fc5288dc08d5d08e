package model

type Permission string

const (
	CanViewInventory    Permission = "canViewInventory"
	CanModifyInventory  Permission = "canModifyInventory"
	CanCreateOrders     Permission = "canCreateOrders"
	CanApproveOrders    Permission = "canApproveOrders"
	CanViewReports      Permission = "canViewReports"
	CanExportReports    Permission = "canExportReports"
	CanManageUsers      Permission = "canManageUsers"
	CanManageRoles      Permission = "canManageRoles"
	CanAccessAdminPanel Permission = "canAccessAdminPanel"
	CanConfigureSystem  Permission = "canConfigureSystem"
	CanAccessAPI        Permission = "canAccessAPI"
	CanConfigureSAP     Permission = "canConfigureSAP"
)

var Permissions = []Permission{
	CanViewInventory, CanModifyInventory, CanCreateOrders, CanApproveOrders,
	CanViewReports, CanExportReports, CanManageUsers, CanManageRoles,
	CanAccessAdminPanel, CanConfigureSystem, CanAccessAPI, CanConfigureSAP,
}

// RolePermissions is the static capability table. Keep it as data: adding a
// role means adding a row.
var RolePermissions = map[Role]map[Permission]bool{
	RoleAdmin: {
		CanViewInventory:    true,
		CanModifyInventory:  true,
		CanCreateOrders:     true,
		CanApproveOrders:    true,
		CanViewReports:      true,
		CanExportReports:    true,
		CanManageUsers:      true,
		CanManageRoles:      true,
		CanAccessAdminPanel: true,
		CanConfigureSystem:  true,
		CanAccessAPI:        true,
		CanConfigureSAP:     true,
	},
	RoleDoctor: {
		CanViewInventory: true,
		CanCreateOrders:  true,
		CanViewReports:   true,
	},
	RoleNurse: {
		CanViewInventory:   true,
		CanModifyInventory: true,
		CanCreateOrders:    true,
	},
	RolePharmacist: {
		CanViewInventory:   true,
		CanModifyInventory: true,
		CanCreateOrders:    true,
		CanApproveOrders:   true,
		CanViewReports:     true,
		CanExportReports:   true,
	},
	RoleLogistics: {
		CanViewInventory:   true,
		CanModifyInventory: true,
		CanCreateOrders:    true,
		CanViewReports:     true,
		CanExportReports:   true,
	},
}

// PermissionAliases maps the permission ids used by the client's role
// editor onto capability flags.
var PermissionAliases = map[string]Permission{
	"inventar_ansehen":      CanViewInventory,
	"inventar_anpassen":     CanModifyInventory,
	"bestellung_erstellen":  CanCreateOrders,
	"bestellung_genehmigen": CanApproveOrders,
	"berichte_ansehen":      CanViewReports,
	"berichte_exportieren":  CanExportReports,
	"benutzer_verwalten":    CanManageUsers,
	"rollen_verwalten":      CanManageRoles,
	"einstellungen_aendern": CanConfigureSystem,
	"api_zugriff":           CanAccessAPI,
	"sap_integration":       CanConfigureSAP,
}

// ResolvePermission accepts either a capability flag or one of its aliases.
func ResolvePermission(id string) (Permission, bool) {
	if p, ok := PermissionAliases[id]; ok {
		return p, true
	}
	for _, p := range Permissions {
		if string(p) == id {
			return p, true
		}
	}
	return "", false
}

// EffectivePermission checks overrides first, then the role table. An
// unknown role has no permissions.
func EffectivePermission(role Role, overrides map[Permission]bool, p Permission) bool {
	if v, ok := overrides[p]; ok {
		return v
	}
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	return perms[p]
}
