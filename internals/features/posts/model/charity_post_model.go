package model

import (
	"time"

	"github.com/google/uuid"
)

// CharityPostModel is a news/update post shown on the public feed and the
// charity profile.
type CharityPostModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CharityID uuid.UUID `gorm:"type:uuid;not null;index" json:"charity_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	ImagePath *string   `gorm:"size:500" json:"image_path,omitempty"`
	Published bool      `gorm:"not null;default:true;index" json:"published"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CharityPostModel) TableName() string {
	return "charity_posts"
}
