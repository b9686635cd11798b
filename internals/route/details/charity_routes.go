package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campaignController "bayanihan_backend/internals/features/campaigns/controller"
	charityController "bayanihan_backend/internals/features/charities/charity/controller"
	donationController "bayanihan_backend/internals/features/donations/controller"
	usageController "bayanihan_backend/internals/features/fundusage/controller"
	postController "bayanihan_backend/internals/features/posts/controller"
	transparencyController "bayanihan_backend/internals/features/transparency/controller"
	"bayanihan_backend/internals/helpers/storage"
)

func CharityRoutes(r fiber.Router, db *gorm.DB, store *storage.LocalStore) {
	charities := charityController.NewCharityController(db, store)
	campaigns := campaignController.NewCampaignController(db)
	donations := donationController.NewDonationController(db, store)
	usage := usageController.NewFundUsageController(db, store)
	posts := postController.NewCharityPostController(db, store)
	transparency := transparencyController.NewTransparencyController(db)

	// charity profile management (owner-guarded by :id inside the handlers)
	r.Put("/charities/:id", charities.Update)
	r.Post("/charities/:id/documents", charities.UploadDocument)
	r.Post("/charities/:id/channels", charities.StoreChannel)

	// campaigns
	r.Post("/charities/:id/campaigns", campaigns.Store)
	r.Put("/campaigns/:id", campaigns.Update)
	r.Delete("/campaigns/:id", campaigns.Destroy)

	// donation review inbox
	r.Get("/charities/:id/donations", donations.CharityInbox)
	r.Patch("/donations/:id/confirm", donations.Confirm)
	r.Patch("/donations/:id/reject", donations.Reject)

	// spending log (append-only)
	r.Post("/campaigns/:id/fund-usage", usage.Store)

	// posts
	r.Get("/my/posts", posts.GetMyPosts)
	r.Post("/posts", posts.Store)
	r.Put("/posts/:id", posts.Update)
	r.Delete("/posts/:id", posts.Destroy)

	// owner dashboard
	r.Get("/my/dashboard", transparency.Dashboard)
}
