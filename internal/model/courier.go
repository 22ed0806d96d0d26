package model

import (
	"time"

	"github.com/google/uuid"
)

// Courier availability states, independent of any single order's status
const (
	CourierAvailable = "available"
	CourierBusy      = "busy"
	CourierOffline   = "offline"
)

// Courier links a user to their courier profile and tracks last known position
type Courier struct {
	ID                 uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID             uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User               *User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`
	VehicleID          *uuid.UUID `gorm:"type:uuid;index" json:"vehicle_id"`
	Vehicle            *Vehicle   `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Availability       string     `gorm:"type:varchar(20);not null;default:'offline'" json:"availability"`
	CurrentLatitude    *float64   `gorm:"type:decimal(10,7)" json:"current_latitude"`
	CurrentLongitude   *float64   `gorm:"type:decimal(10,7)" json:"current_longitude"`
	LastLocationUpdate *time.Time `json:"last_location_update"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
