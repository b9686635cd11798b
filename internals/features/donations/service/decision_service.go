package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	donationModel "bayanihan_backend/internals/features/donations/model"
)

// ApplyDecision flips a pending donation to its terminal status. The update
// carries a source-state guard so that when two decisions race, the loser
// matches zero rows instead of overwriting a status that is already terminal.
// Returns false when the donation was no longer pending.
func ApplyDecision(db *gorm.DB, donationID uuid.UUID, target string) (bool, error) {
	updates := map[string]interface{}{"status": target}
	if target == donationModel.DonationConfirmed {
		now := time.Now()
		updates["confirmed_at"] = &now
	}

	res := db.Model(&donationModel.DonationModel{}).
		Where("id = ? AND status = ?", donationID, donationModel.DonationPending).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
