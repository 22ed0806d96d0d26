package model

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle type constants (DB vocabulary, canonical 6-type scheme)
const (
	VehicleTypeCar        = "car"
	VehicleTypeMotorcycle = "motorcycle"
	VehicleTypeVan        = "van"
	VehicleTypeTruck      = "truck"
	VehicleTypeBicycle    = "bicycle"
	VehicleTypeScooter    = "scooter"
)

// Vehicle status constants (DB vocabulary)
const (
	VehicleStatusActive      = "active"
	VehicleStatusBusy        = "busy"
	VehicleStatusMaintenance = "maintenance"
	VehicleStatusInactive    = "inactive"
)

// Vehicle represents a fleet vehicle, optionally assigned to couriers.
// Last known position lives on the vehicle but the first assigned courier's
// position takes precedence in the client representation.
type Vehicle struct {
	ID                 uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Type               string     `gorm:"type:varchar(20);not null" json:"type"`
	Model              string     `gorm:"type:varchar(100)" json:"model"`
	LicensePlate       string     `gorm:"type:varchar(20)" json:"license_plate"`
	MaxWeight          *float64   `json:"max_weight"`
	Status             string     `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CurrentLatitude    *float64   `gorm:"type:decimal(10,7)" json:"current_latitude"`
	CurrentLongitude   *float64   `gorm:"type:decimal(10,7)" json:"current_longitude"`
	LastLocationUpdate *time.Time `json:"last_location_update"`
	Couriers           []Courier  `gorm:"foreignKey:VehicleID" json:"couriers,omitempty"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
