package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// RecurringDonationModel is a schedule, not a ledger row. The admin-triggered
// batch job materializes due schedules into fresh pending donations.
type RecurringDonationModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DonorID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"donor_id"`
	CharityID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"charity_id"`
	CampaignID *uuid.UUID      `gorm:"type:uuid" json:"campaign_id,omitempty"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Frequency  string          `gorm:"type:varchar(20);not null" json:"frequency"`
	NextRunAt  time.Time       `gorm:"not null;index" json:"next_run_at"`
	Active     bool            `gorm:"not null;default:true;index" json:"active"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RecurringDonationModel) TableName() string {
	return "recurring_donations"
}

func (r *RecurringDonationModel) IsDue(now time.Time) bool {
	return r.Active && !r.NextRunAt.After(now)
}

// NextAfter returns the schedule's next run after the given materialization.
func (r *RecurringDonationModel) NextAfter(now time.Time) time.Time {
	switch r.Frequency {
	case FrequencyWeekly:
		return r.NextRunAt.AddDate(0, 0, 7)
	default:
		return r.NextRunAt.AddDate(0, 1, 0)
	}
}
