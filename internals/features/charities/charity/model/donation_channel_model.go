package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ChannelGcash  = "gcash"
	ChannelPaypal = "paypal"
	ChannelBank   = "bank"
	ChannelOther  = "other"
)

// DonationChannelModel describes where donors can send off-platform payments
// (account numbers, wallet handles, ...) as an opaque details map.
type DonationChannelModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CharityID uuid.UUID         `gorm:"type:uuid;not null;index" json:"charity_id"`
	Type      string            `gorm:"type:varchar(20);not null" json:"type"`
	Label     string            `gorm:"size:255;not null" json:"label"`
	Details   datatypes.JSONMap `gorm:"type:jsonb" json:"details"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DonationChannelModel) TableName() string {
	return "donation_channels"
}
