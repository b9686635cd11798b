package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Campaign lifecycle. The status column used to be a free-form enum; the
// server now validates every change against this graph before persisting.
const (
	CampaignDraft     = "draft"
	CampaignPublished = "published"
	CampaignClosed    = "closed"
	CampaignArchived  = "archived"
)

var campaignTransitions = map[string][]string{
	CampaignDraft:     {CampaignPublished, CampaignArchived},
	CampaignPublished: {CampaignClosed},
	CampaignClosed:    {CampaignArchived},
}

func IsCampaignStatus(s string) bool {
	switch s {
	case CampaignDraft, CampaignPublished, CampaignClosed, CampaignArchived:
		return true
	}
	return false
}

func CanTransitionCampaign(from, to string) bool {
	if from == to {
		return true
	}
	for _, allowed := range campaignTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CampaignModel is a fundraising campaign scoped to one charity. CharityID is
// immutable after creation.
type CampaignModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CharityID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"charity_id"`
	Title          string           `gorm:"size:255;not null" json:"title"`
	Description    *string          `gorm:"type:text" json:"description,omitempty"`
	TargetAmount   *decimal.Decimal `gorm:"type:numeric(14,2)" json:"target_amount,omitempty"`
	DeadlineAt     *time.Time       `json:"deadline_at,omitempty"`
	CoverImagePath *string          `gorm:"size:500" json:"cover_image_path,omitempty"`
	Status         string           `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	CreatedAt      time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CampaignModel) TableName() string {
	return "campaigns"
}
