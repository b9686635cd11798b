package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	KindInfo     = "info"
	KindSecurity = "security"
	KindDonation = "donation"
)

// NotificationModel is a per-user inbox entry written by the services,
// fire-and-forget from the workflows' point of view.
type NotificationModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind      string            `gorm:"type:varchar(20);not null;default:'info'" json:"kind"`
	Message   string            `gorm:"type:text;not null" json:"message"`
	Data      datatypes.JSONMap `gorm:"type:jsonb" json:"data,omitempty"`
	ReadAt    *time.Time        `json:"read_at,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
