package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	UsageSupplies   = "supplies"
	UsageStaffing   = "staffing"
	UsageTransport  = "transport"
	UsageOperations = "operations"
	UsageOther      = "other"
)

// FundUsageLogModel is an append-only expenditure record. No update path is
// exposed once a row is written.
type FundUsageLogModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CharityID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"charity_id"`
	CampaignID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"campaign_id"`
	Amount         decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Category       string          `gorm:"type:varchar(20);not null" json:"category"`
	Description    *string         `gorm:"type:text" json:"description,omitempty"`
	SpentAt        time.Time       `gorm:"not null;index" json:"spent_at"`
	AttachmentPath *string         `gorm:"size:500" json:"attachment_path,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (FundUsageLogModel) TableName() string {
	return "fund_usage_logs"
}
