package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Internal order status names (DB vocabulary)
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusAssigned  = "assigned"
	OrderStatusPickedUp  = "picked_up"
	OrderStatusInTransit = "in_transit"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Status type enum constants
const (
	StatusTypeOrder    = "order"
	StatusTypeDelivery = "delivery"
	StatusTypeVehicle  = "vehicle"
)

// Status is a reference record shared by orders and deliveries.
// Orders point at a status row rather than carrying a bare string.
type Status struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Type        string    `gorm:"type:varchar(20);not null;index" json:"type"` // order, delivery, vehicle
	Description string    `gorm:"type:text" json:"description"`
	Color       string    `gorm:"type:varchar(10)" json:"color"`
	IsFinal     bool      `gorm:"default:false" json:"is_final"`
	CreatedAt   time.Time `json:"created_at"`
}

// Order represents a customer delivery order. Items is a JSON-encoded array of
// {name, quantity, price} tuples; Price is the stored aggregate and may be null
// for legacy rows, in which case the client total is recomputed from items.
type Order struct {
	ID                   uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderNumber          string           `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_number"` // human-facing TTN
	CustomerID           uuid.UUID        `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer             *Customer        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	StatusID             uuid.UUID        `gorm:"type:uuid;not null;index" json:"status_id"`
	Status               *Status          `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	PickupAddress        string           `gorm:"type:text" json:"pickup_address"`
	DeliveryAddress      string           `gorm:"type:text;not null" json:"delivery_address"`
	DeliveryContactName  string           `gorm:"type:varchar(255)" json:"delivery_contact_name"`
	DeliveryContactPhone string           `gorm:"type:varchar(20)" json:"delivery_contact_phone"`
	Items                string           `gorm:"type:text" json:"items"`
	Price                *decimal.Decimal `gorm:"type:decimal(18,2)" json:"price"`
	PaymentStatus        string           `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	DeliveryLatitude     *float64         `gorm:"type:decimal(10,7)" json:"delivery_latitude"`
	DeliveryLongitude    *float64         `gorm:"type:decimal(10,7)" json:"delivery_longitude"`
	Weight               *float64         `json:"weight"`
	Volume               *float64         `json:"volume"`
	Delivery             *Delivery        `gorm:"foreignKey:OrderID" json:"delivery,omitempty"`
	CreatedAt            time.Time        `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt            time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

// Delivery links exactly one order to exactly one courier once assigned.
// It carries its own sub-status distinct from the order's status.
type Delivery struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"order_id"`
	CourierID uuid.UUID `gorm:"type:uuid;not null;index" json:"courier_id"`
	Courier   *Courier  `gorm:"foreignKey:CourierID" json:"courier,omitempty"`
	StatusID  uuid.UUID `gorm:"type:uuid;not null" json:"status_id"`
	Status    *Status   `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
