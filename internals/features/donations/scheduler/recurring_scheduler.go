package scheduler

import (
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	donationService "bayanihan_backend/internals/features/donations/service"
)

// StartRecurringDonationScheduler runs the due-schedule batch every hour in
// the background. The admin endpoint stays available for manual runs.
func StartRecurringDonationScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		log.Println("⏱ Recurring donation scheduler started (hourly)")
		for range ticker.C {
			due, created, err := donationService.ProcessDueSchedules(db, time.Now())
			if err != nil {
				log.Printf("[ERROR] recurring scheduler: %v", err)
				continue
			}
			if due > 0 {
				log.WithFields(log.Fields{"due": due, "created": created}).
					Info("recurring donations processed")
			}
		}
	}()
}
