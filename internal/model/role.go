package model

import (
	"time"

	"github.com/google/uuid"
)

// System roles that must never be deleted
const (
	RoleCustomer = "customer"
	RoleCourier  = "courier"
	RoleAdmin    = "admin"
)

// Role represents a user role with its permission list.
// Permissions is stored as a JSON-encoded array of permission strings,
// e.g. `["create_order","track_order"]` or `["*"]` for full access.
type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Permissions string    `gorm:"type:text" json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsSystem reports whether the role is one of the built-in roles
func (r Role) IsSystem() bool {
	return r.Name == RoleCustomer || r.Name == RoleCourier || r.Name == RoleAdmin
}
