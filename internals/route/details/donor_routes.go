package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationController "bayanihan_backend/internals/features/donations/controller"
	followController "bayanihan_backend/internals/features/follows/controller"
	transparencyController "bayanihan_backend/internals/features/transparency/controller"
	"bayanihan_backend/internals/helpers/storage"
)

func DonorRoutes(r fiber.Router, db *gorm.DB, store *storage.LocalStore) {
	donations := donationController.NewDonationController(db, store)
	follows := followController.NewCharityFollowController(db)
	transparency := transparencyController.NewTransparencyController(db)

	r.Post("/donations", donations.Store)
	r.Post("/donations/:id/proof", donations.UploadProof)
	r.Get("/donations/:id/receipt", donations.DownloadReceipt)
	r.Get("/my/donations", donations.MyDonations)

	r.Post("/recurring-donations", donations.StoreRecurring)
	r.Get("/my/recurring-donations", donations.MyRecurring)
	r.Delete("/recurring-donations/:id", donations.CancelRecurring)

	r.Post("/charities/:id/follow", follows.Toggle)
	r.Get("/charities/:id/follow-status", follows.Status)
	r.Get("/my/followed-charities", follows.MyFollowed)

	r.Get("/my/impact", transparency.MyImpact)
}
