package service

import (
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	donationModel "bayanihan_backend/internals/features/donations/model"
)

// ProcessDueSchedules materializes every due active schedule into a fresh
// pending donation and advances it to its next run. A broken schedule is
// logged and skipped; it must not stall the whole batch.
func ProcessDueSchedules(db *gorm.DB, now time.Time) (due int, created int, err error) {
	var schedules []donationModel.RecurringDonationModel
	if err := db.
		Where("active = ? AND next_run_at <= ?", true, now).
		Find(&schedules).Error; err != nil {
		return 0, 0, err
	}

	for i := range schedules {
		schedule := &schedules[i]
		txErr := db.Transaction(func(tx *gorm.DB) error {
			donation := donationModel.DonationModel{
				DonorID:    schedule.DonorID,
				CharityID:  schedule.CharityID,
				CampaignID: schedule.CampaignID,
				Amount:     schedule.Amount,
				Status:     donationModel.DonationPending,
			}
			if err := tx.Create(&donation).Error; err != nil {
				return err
			}
			return tx.Model(schedule).Update("next_run_at", schedule.NextAfter(now)).Error
		})
		if txErr != nil {
			log.WithFields(log.Fields{"schedule_id": schedule.ID, "err": txErr}).
				Error("recurring schedule failed")
			continue
		}
		created++
	}
	return len(schedules), created, nil
}
