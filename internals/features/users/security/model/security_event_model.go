package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Audit event names used across the auth flows.
const (
	EventUserRegistered     = "user_registered"
	EventUserLogin          = "user_login"
	EventLoginFailed        = "login_failed"
	EventProfileUpdated     = "profile_updated"
	EventPasswordChanged    = "password_changed"
	EventAccountDeactivated = "account_deactivated"
	EventAccountDeleted     = "account_deleted"
	EventUserSuspended      = "user_suspended"
	EventUserActivated      = "user_activated"
	EventDonationConfirmed  = "donation_confirmed"
)

// SecurityEventModel is the append-only security/audit trail. Failed logins
// are keyed by email + IP even when no user row matches.
type SecurityEventModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Event     string            `gorm:"size:100;not null;index" json:"event"`
	UserID    *uuid.UUID        `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Email     *string           `gorm:"size:255;index" json:"email,omitempty"`
	IP        string            `gorm:"size:64" json:"ip"`
	UserAgent *string           `gorm:"size:500" json:"user_agent,omitempty"`
	Meta      datatypes.JSONMap `gorm:"type:jsonb" json:"meta,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
}

func (SecurityEventModel) TableName() string {
	return "security_events"
}
