package rbac

import "encoding/json"

// Permission identifiers consumed by route guards. Wildcard grants everything.
const (
	Wildcard          = "*"
	CreateOrder       = "create_order"
	ViewOwnOrders     = "view_own_orders"
	TrackOrder        = "track_order"
	ViewAllOrders     = "view_all_orders"
	UpdateOrderStatus = "update_order_status"
	UpdateLocation    = "update_location"
	ManageOrders      = "manage_orders"
	ManageVehicles    = "manage_vehicles"
	ManageUsers       = "manage_users"
	ManageRoles       = "manage_roles"
	ViewLogs          = "view_logs"
	ViewAnalytics     = "view_analytics"
	AdminAccess       = "admin_access"
)

// ParsePermissions normalizes the stored permission column to a string list.
// The column historically holds either a JSON array of strings or a
// JSON-encoded string wrapping such an array (double-encoded rows exist in
// old data). Any other shape yields an empty set.
func ParsePermissions(raw string) []string {
	if raw == "" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list
	}
	var inner string
	if err := json.Unmarshal([]byte(raw), &inner); err == nil {
		if err := json.Unmarshal([]byte(inner), &list); err == nil {
			return list
		}
	}
	return nil
}

// Allowed decides whether a role grants the requested permission.
// The admin role is a superuser and passes regardless of its stored list.
func Allowed(roleName, rawPermissions, permission string) bool {
	if roleName == "admin" {
		return true
	}
	for _, p := range ParsePermissions(rawPermissions) {
		if p == Wildcard || p == permission {
			return true
		}
	}
	return false
}
