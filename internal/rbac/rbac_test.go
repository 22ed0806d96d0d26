package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePermissions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"json array", `["create_order","track_order"]`, []string{"create_order", "track_order"}},
		{"wildcard array", `["*"]`, []string{"*"}},
		{"double encoded", `"[\"create_order\"]"`, []string{"create_order"}},
		{"empty string", "", nil},
		{"empty array", `[]`, []string{}},
		{"garbage", "not json", nil},
		{"json object", `{"create_order":true}`, nil},
		{"double encoded garbage", `"still not an array"`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePermissions(tt.raw))
		})
	}
}

func TestAllowed(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		raw        string
		permission string
		want       bool
	}{
		{"admin bypasses empty list", "admin", "", CreateOrder, true},
		{"admin bypasses garbage list", "admin", "broken", ManageRoles, true},
		{"wildcard grants anything", "dispatcher", `["*"]`, ManageOrders, true},
		{"exact match", "customer", `["create_order","track_order"]`, CreateOrder, true},
		{"missing permission", "customer", `["create_order"]`, ManageOrders, false},
		{"empty list denies", "courier", `[]`, UpdateLocation, false},
		{"garbage denies", "courier", "broken", UpdateLocation, false},
		{"double encoded list", "customer", `"[\"track_order\"]"`, TrackOrder, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.role, tt.raw, tt.permission))
		})
	}
}
