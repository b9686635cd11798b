package model

import (
	"time"

	"github.com/google/uuid"
)

// Verification lifecycle. Pending is the only source state: once an admin has
// decided, the decision is terminal. Re-approving a rejected charity is not a
// legal transition.
const (
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)

var verificationTransitions = map[string][]string{
	VerificationPending: {VerificationApproved, VerificationRejected},
}

func CanTransitionVerification(from, to string) bool {
	for _, allowed := range verificationTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CharityModel represents a registered organization. Exactly one owner, whose
// role is charity_admin.
type CharityModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerID            uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name               string    `gorm:"size:255;not null" json:"name"`
	LegalTradingName   *string   `gorm:"size:255" json:"legal_trading_name,omitempty"`
	RegNo              *string   `gorm:"size:255" json:"reg_no,omitempty"`
	TaxID              *string   `gorm:"size:255" json:"tax_id,omitempty"`
	Mission            *string   `gorm:"type:text" json:"mission,omitempty"`
	Vision             *string   `gorm:"type:text" json:"vision,omitempty"`
	Website            *string   `gorm:"size:500" json:"website,omitempty"`
	ContactEmail       *string   `gorm:"size:255" json:"contact_email,omitempty"`
	ContactPhone       *string   `gorm:"size:30" json:"contact_phone,omitempty"`
	Address            *string   `gorm:"size:500" json:"address,omitempty"`
	Region             *string   `gorm:"size:100;index" json:"region,omitempty"`
	Municipality       *string   `gorm:"size:100;index" json:"municipality,omitempty"`
	Category           *string   `gorm:"size:100;index" json:"category,omitempty"`
	LogoPath           *string   `gorm:"size:500" json:"logo_path,omitempty"`
	CoverImage         *string   `gorm:"size:500" json:"cover_image,omitempty"`
	VerificationStatus string    `gorm:"type:varchar(20);not null;default:'pending';index" json:"verification_status"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CharityModel) TableName() string {
	return "charities"
}

func (ch *CharityModel) IsApproved() bool {
	return ch.VerificationStatus == VerificationApproved
}
