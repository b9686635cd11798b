package dto

type RegisterDonorRequest struct {
	Name     string  `json:"name" form:"name" validate:"required,max=255"`
	Email    string  `json:"email" form:"email" validate:"required,email"`
	Password string  `json:"password" form:"password" validate:"required,min=6"`
	Phone    *string `json:"phone" form:"phone"`
	Address  *string `json:"address" form:"address"`
}

// RegisterCharityAdminRequest carries both the representative and the
// organization fields; the endpoint is multipart because of logo/cover/docs.
type RegisterCharityAdminRequest struct {
	// Representative
	ContactPersonName string  `json:"contact_person_name" form:"contact_person_name" validate:"required,max=255"`
	ContactEmail      string  `json:"contact_email" form:"contact_email" validate:"required,email"`
	ContactPhone      *string `json:"contact_phone" form:"contact_phone"`
	Password          string  `json:"password" form:"password" validate:"required,min=6"`

	// Organization
	OrganizationName   string  `json:"organization_name" form:"organization_name" validate:"required,max=255"`
	RegistrationNumber *string `json:"registration_number" form:"registration_number" validate:"omitempty,max=255"`
	TaxID              *string `json:"tax_id" form:"tax_id" validate:"omitempty,max=255"`
	MissionStatement   *string `json:"mission_statement" form:"mission_statement"`
	Description        *string `json:"description" form:"description"`
	Website            *string `json:"website" form:"website"`
	Address            *string `json:"address" form:"address"`
	Region             *string `json:"region" form:"region"`
	Municipality       *string `json:"municipality" form:"municipality"`
	NonprofitCategory  *string `json:"nonprofit_category" form:"nonprofit_category"`
	LegalTradingName   *string `json:"legal_trading_name" form:"legal_trading_name"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name              *string `json:"name" form:"name" validate:"omitempty,max=255"`
	Phone             *string `json:"phone" form:"phone" validate:"omitempty,max=30"`
	Address           *string `json:"address" form:"address" validate:"omitempty,max=500"`
	ContactPersonName *string `json:"contact_person_name" form:"contact_person_name" validate:"omitempty,max=255"`
	ContactEmail      *string `json:"contact_email" form:"contact_email" validate:"omitempty,email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

type DeleteAccountRequest struct {
	Password string  `json:"password" validate:"required"`
	Reason   *string `json:"reason" validate:"omitempty,max=500"`
}
