package dto

import "github.com/shopspring/decimal"

type CreateDonationRequest struct {
	CharityID  string          `json:"charity_id" validate:"required,uuid4"`
	CampaignID *string         `json:"campaign_id" validate:"omitempty,uuid4"`
	Amount     decimal.Decimal `json:"amount" validate:"required"`
	Message    *string         `json:"message"`
	Anonymous  bool            `json:"anonymous"`
}

type CreateRecurringDonationRequest struct {
	CharityID  string          `json:"charity_id" validate:"required,uuid4"`
	CampaignID *string         `json:"campaign_id" validate:"omitempty,uuid4"`
	Amount     decimal.Decimal `json:"amount" validate:"required"`
	Frequency  string          `json:"frequency" validate:"required,oneof=weekly monthly"`
	StartAt    *string         `json:"start_at"` // RFC 3339, defaults to now
}
