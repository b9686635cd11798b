package model

import (
	"time"

	"github.com/google/uuid"
)

// CharityFollowModel links a donor to a charity they follow. One row per pair.
type CharityFollowModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DonorID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follow_pair" json:"donor_id"`
	CharityID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follow_pair" json:"charity_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CharityFollowModel) TableName() string {
	return "charity_follows"
}
