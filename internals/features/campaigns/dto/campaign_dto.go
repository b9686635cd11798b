package dto

import "github.com/shopspring/decimal"

type CreateCampaignRequest struct {
	Title        string           `json:"title" validate:"required,max=255"`
	Description  *string          `json:"description"`
	TargetAmount *decimal.Decimal `json:"target_amount"`
	DeadlineAt   *string          `json:"deadline_at"` // RFC 3339
	// a campaign is born draft or published; closed and archived are only
	// reachable through the lifecycle transitions on update
	Status string `json:"status" validate:"omitempty,oneof=draft published"`
}

type UpdateCampaignRequest struct {
	Title        *string          `json:"title" validate:"omitempty,max=255"`
	Description  *string          `json:"description"`
	TargetAmount *decimal.Decimal `json:"target_amount"`
	DeadlineAt   *string          `json:"deadline_at"`
	Status       *string          `json:"status" validate:"omitempty,oneof=draft published closed archived"`
}
