package dto

type UpdateCharityRequest struct {
	Name             *string `json:"name" form:"name" validate:"omitempty,max=255"`
	LegalTradingName *string `json:"legal_trading_name" form:"legal_trading_name" validate:"omitempty,max=255"`
	Mission          *string `json:"mission" form:"mission"`
	Vision           *string `json:"vision" form:"vision"`
	Website          *string `json:"website" form:"website" validate:"omitempty,max=500"`
	ContactEmail     *string `json:"contact_email" form:"contact_email" validate:"omitempty,email"`
	ContactPhone     *string `json:"contact_phone" form:"contact_phone" validate:"omitempty,max=30"`
	Address          *string `json:"address" form:"address" validate:"omitempty,max=500"`
	Region           *string `json:"region" form:"region" validate:"omitempty,max=100"`
	Municipality     *string `json:"municipality" form:"municipality" validate:"omitempty,max=100"`
	Category         *string `json:"category" form:"category" validate:"omitempty,max=100"`
}

type UploadDocumentRequest struct {
	DocType string `json:"doc_type" form:"doc_type" validate:"required,max=255"`
}

type StoreChannelRequest struct {
	Type    string                 `json:"type" validate:"required,oneof=gcash paypal bank other"`
	Label   string                 `json:"label" validate:"required,max=255"`
	Details map[string]interface{} `json:"details" validate:"required"`
}
