package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	verificationController "bayanihan_backend/internals/features/charities/verification/controller"
	donationController "bayanihan_backend/internals/features/donations/controller"
	securityController "bayanihan_backend/internals/features/users/security/controller"
	"bayanihan_backend/internals/helpers/storage"
)

func AdminRoutes(r fiber.Router, db *gorm.DB, store *storage.LocalStore) {
	verification := verificationController.NewVerificationController(db)
	security := securityController.NewSecurityController(db)
	donations := donationController.NewDonationController(db, store)

	// charity verification workflow
	r.Get("/verifications", verification.Index)
	r.Get("/charities", verification.AllCharities)
	r.Patch("/charities/:id/approve", verification.Approve)
	r.Patch("/charities/:id/reject", verification.Reject)

	// user management
	r.Get("/users", verification.Users)
	r.Patch("/users/:id/suspend", verification.SuspendUser)
	r.Patch("/users/:id/activate", verification.ActivateUser)

	// audit and reporting
	r.Get("/activity-logs", security.ActivityLogs)
	r.Get("/compliance-report", security.ComplianceReport)

	// maintenance: materialize due recurring schedules into pending donations
	r.Post("/recurring-donations/process", donations.ProcessRecurring)
}
