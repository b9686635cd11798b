package model

import (
	"time"

	"github.com/google/uuid"
)

// Conventional doc types. The column stays free-form varchar so new document
// kinds don't need a schema change.
const (
	DocTypeRegistration = "registration"
	DocTypeTax          = "tax"
	DocTypeBylaws       = "bylaws"
	DocTypeAudit        = "audit"
	DocTypeOther        = "other"
)

// CharityDocumentModel is an append-only verification artifact. The sha256 is
// computed over the stored bytes at upload time and never changes.
type CharityDocumentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CharityID  uuid.UUID `gorm:"type:uuid;not null;index" json:"charity_id"`
	DocType    string    `gorm:"size:255;not null" json:"doc_type"`
	FilePath   string    `gorm:"size:500;not null" json:"file_path"`
	Sha256     string    `gorm:"size:64;not null" json:"sha256"`
	UploadedBy uuid.UUID `gorm:"type:uuid;not null" json:"uploaded_by"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CharityDocumentModel) TableName() string {
	return "charity_documents"
}
