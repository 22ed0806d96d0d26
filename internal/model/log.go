package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionLogin              = "login"
	ActionOrderCreated       = "order_created"
	ActionOrderStatusUpdated = "order_status_updated"
	ActionOrderAssigned      = "order_assigned"
	ActionVehicleCreated     = "vehicle_created"
	ActionVehicleUpdated     = "vehicle_updated"
	ActionVehicleDeleted     = "vehicle_deleted"
	ActionUserCreated        = "user_created"
	ActionRoleCreated        = "role_created"
	ActionRoleUpdated        = "role_updated"
	ActionRoleDeleted        = "role_deleted"
	ActionProfileUpdated     = "profile_updated"
)

// ActivityLog tracks Who, What, and When for critical system changes
type ActivityLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // Nullable for anonymous actions
	User       *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Action     string     `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityType string     `gorm:"type:varchar(50);index" json:"entity_type"`
	EntityID   string     `gorm:"type:varchar(50);index" json:"entity_id"`
	Data       string     `gorm:"type:jsonb" json:"data"` // Serialized JSON payload of the action
	IPAddress  string     `gorm:"type:varchar(45)" json:"ip_address"`
	UserAgent  string     `gorm:"type:text" json:"user_agent"`
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}
