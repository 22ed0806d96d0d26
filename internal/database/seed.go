package database

import (
	"log"

	"delivery-backend/internal/model"

	"gorm.io/gorm"
)

var systemRoles = []model.Role{
	{
		Name:        model.RoleAdmin,
		Description: "Full system access",
		Permissions: `["*"]`,
	},
	{
		Name:        model.RoleCustomer,
		Description: "Places and tracks own orders",
		Permissions: `["create_order","view_own_orders","track_order"]`,
	},
	{
		Name:        model.RoleCourier,
		Description: "Delivers assigned orders",
		Permissions: `["view_orders","update_order_status","update_location"]`,
	},
}

var orderStatuses = []model.Status{
	{Name: model.OrderStatusPending, Type: model.StatusTypeOrder, Description: "Order received, awaiting confirmation", Color: "#f59e0b"},
	{Name: model.OrderStatusConfirmed, Type: model.StatusTypeOrder, Description: "Order confirmed and being prepared", Color: "#3b82f6"},
	{Name: model.OrderStatusAssigned, Type: model.StatusTypeOrder, Description: "Courier assigned", Color: "#8b5cf6"},
	{Name: model.OrderStatusPickedUp, Type: model.StatusTypeOrder, Description: "Picked up from warehouse", Color: "#06b6d4"},
	{Name: model.OrderStatusInTransit, Type: model.StatusTypeOrder, Description: "On the way to the customer", Color: "#0ea5e9"},
	{Name: model.OrderStatusDelivered, Type: model.StatusTypeOrder, Description: "Delivered to the customer", Color: "#22c55e", IsFinal: true},
	{Name: model.OrderStatusCancelled, Type: model.StatusTypeOrder, Description: "Order cancelled", Color: "#ef4444", IsFinal: true},
}

// Seed inserts the system roles and the order status dictionary.
// It is idempotent: existing rows are left untouched.
func Seed(db *gorm.DB) error {
	for _, role := range systemRoles {
		var existing model.Role
		if err := db.First(&existing, "name = ?", role.Name).Error; err == nil {
			continue
		}
		if err := db.Create(&role).Error; err != nil {
			return err
		}
		log.Printf("Seeded role %s", role.Name)
	}

	for _, status := range orderStatuses {
		var existing model.Status
		if err := db.First(&existing, "name = ?", status.Name).Error; err == nil {
			continue
		}
		if err := db.Create(&status).Error; err != nil {
			return err
		}
		log.Printf("Seeded status %s", status.Name)
	}

	return nil
}
