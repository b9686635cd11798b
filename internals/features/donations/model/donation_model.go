package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Donation lifecycle. Confirmed and rejected are terminal: there is no
// un-confirm or re-open path. Only confirmed donations count toward public
// totals.
const (
	DonationPending   = "pending"
	DonationConfirmed = "confirmed"
	DonationRejected  = "rejected"
)

var donationTransitions = map[string][]string{
	DonationPending: {DonationConfirmed, DonationRejected},
}

func CanTransitionDonation(from, to string) bool {
	for _, allowed := range donationTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// DonationModel is the ledger row. The donor owns creation and proof upload;
// the charity's owner owns the confirm/reject decision.
type DonationModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DonorID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"donor_id"`
	CharityID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"charity_id"`
	CampaignID  *uuid.UUID      `gorm:"type:uuid;index" json:"campaign_id,omitempty"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Status      string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Message     *string         `gorm:"type:text" json:"message,omitempty"`
	Anonymous   bool            `gorm:"not null;default:false" json:"anonymous"`
	ProofPath   *string         `gorm:"size:500" json:"proof_path,omitempty"`
	ConfirmedAt *time.Time      `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DonationModel) TableName() string {
	return "donations"
}
