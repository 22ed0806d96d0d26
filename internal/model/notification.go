package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification delivery channels
const (
	NotificationInApp = "in_app"
	NotificationEmail = "email"
	NotificationSMS   = "sms"
	NotificationPush  = "push"
)

// Notification is an in-app message addressed to a single user
type Notification struct {
	ID                uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Type              string     `gorm:"type:varchar(20);not null;default:'in_app'" json:"type"`
	Title             string     `gorm:"type:varchar(255);not null" json:"title"`
	Content           string     `gorm:"type:text" json:"content"`
	RelatedEntityType string     `gorm:"type:varchar(50)" json:"related_entity_type"`
	RelatedEntityID   string     `gorm:"type:varchar(50)" json:"related_entity_id"`
	IsRead            bool       `gorm:"default:false;index" json:"is_read"`
	ReadAt            *time.Time `json:"read_at"`
	SentAt            *time.Time `json:"sent_at"`
	CreatedAt         time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}
