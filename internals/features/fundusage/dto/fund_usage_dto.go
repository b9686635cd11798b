package dto

import "github.com/shopspring/decimal"

// StoreFundUsageRequest arrives as multipart form data so an optional
// attachment (receipt photo, invoice scan) can ride along. The campaign comes
// from the URL.
type StoreFundUsageRequest struct {
	Amount      decimal.Decimal `form:"amount" validate:"required"`
	Category    string          `form:"category" validate:"required,oneof=supplies staffing transport operations other"`
	Description *string         `form:"description" validate:"omitempty,max=2000"`
	SpentAt     string          `form:"spent_at" validate:"omitempty"` // defaults to the time of recording
}
