package model

import (
	"time"

	"github.com/google/uuid"

	"bayanihan_backend/internals/constants"
)

// UserModel represents the users table. Role is set at registration and never
// changes afterwards.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"size:255;unique;not null" json:"email"`
	Password     string    `gorm:"not null" json:"-"`
	Phone        *string   `gorm:"size:30" json:"phone,omitempty"`
	Address      *string   `gorm:"size:500" json:"address,omitempty"`
	ProfileImage *string   `gorm:"size:500" json:"profile_image,omitempty"`
	Role         string    `gorm:"type:varchar(20);not null;default:'donor'" json:"role"`
	Status       string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) IsActive() bool {
	return u.Status == constants.StatusActive
}
