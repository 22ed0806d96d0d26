package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderDBToFront(t *testing.T) {
	tests := []struct {
		db   string
		want string
	}{
		{"pending", "pending"},
		{"confirmed", "processing"},
		{"assigned", "processing"},
		{"picked_up", "shipped"},
		{"in_transit", "shipped"},
		{"delivered", "delivered"},
		{"cancelled", "cancelled"},
		{"", "processing"},
		{"unknown_status", "processing"},
	}

	for _, tt := range tests {
		t.Run(tt.db, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderDBToFront(tt.db))
		})
	}
}

func TestOrderFrontToDB(t *testing.T) {
	tests := []struct {
		front string
		want  string
	}{
		{"pending", "pending"},
		{"processing", "confirmed"},
		{"shipped", "in_transit"},
		{"delivered", "delivered"},
		{"cancelled", "cancelled"},
		{"", "confirmed"},
		{"bogus", "confirmed"},
	}

	for _, tt := range tests {
		t.Run(tt.front, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderFrontToDB(tt.front))
		})
	}
}

// Every client status must survive a front→db→front round trip unchanged.
func TestOrderStatusRoundTripStable(t *testing.T) {
	for _, front := range []string{FrontPending, FrontProcessing, FrontShipped, FrontDelivered, FrontCancelled} {
		assert.Equal(t, front, OrderDBToFront(OrderFrontToDB(front)), "round trip for %s", front)
	}
}

func TestVehicleTypeMapping(t *testing.T) {
	for _, typ := range []string{"car", "motorcycle", "van", "truck", "bicycle", "scooter"} {
		assert.Equal(t, typ, VehicleTypeDBToFront(typ))
		assert.Equal(t, typ, VehicleTypeFrontToDB(typ))
	}
	assert.Equal(t, "car", VehicleTypeDBToFront("hovercraft"))
	assert.Equal(t, "car", VehicleTypeFrontToDB(""))
}

func TestVehicleStatusDBToFront(t *testing.T) {
	tests := []struct {
		db   string
		want string
	}{
		{"active", "available"},
		{"busy", "in_delivery"},
		{"maintenance", "maintenance"},
		{"inactive", "offline"},
		{"", "available"},
		{"unknown", "available"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VehicleStatusDBToFront(tt.db))
	}
}

func TestVehicleStatusFrontToDB(t *testing.T) {
	tests := []struct {
		front string
		want  string
	}{
		{"available", "active"},
		{"in_delivery", "busy"},
		{"maintenance", "maintenance"},
		{"offline", "inactive"},
		{"busy", "busy"},
		{"", "active"},
		{"unknown", "active"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VehicleStatusFrontToDB(tt.front))
	}
}
