package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campaignController "bayanihan_backend/internals/features/campaigns/controller"
	charityController "bayanihan_backend/internals/features/charities/charity/controller"
	followController "bayanihan_backend/internals/features/follows/controller"
	usageController "bayanihan_backend/internals/features/fundusage/controller"
	homeController "bayanihan_backend/internals/features/home/controller"
	postController "bayanihan_backend/internals/features/posts/controller"
	transparencyController "bayanihan_backend/internals/features/transparency/controller"
)

// PublicRoutes is the read-only surface: the charity directory, campaign
// pages, spending logs, and transparency aggregates need no login.
func PublicRoutes(r fiber.Router, db *gorm.DB) {
	charities := charityController.NewCharityController(db, nil)
	campaigns := campaignController.NewCampaignController(db)
	usage := usageController.NewFundUsageController(db, nil)
	transparency := transparencyController.NewTransparencyController(db)
	posts := postController.NewCharityPostController(db, nil)
	follows := followController.NewCharityFollowController(db)
	metrics := homeController.NewMetricsController(db)

	r.Get("/metrics", metrics.PlatformMetrics)

	r.Get("/charities", charities.Index)
	r.Get("/charities/:id", charities.Show)
	r.Get("/charities/:id/documents", charities.GetDocuments)
	r.Get("/charities/:id/channels", charities.GetChannels)
	r.Get("/charities/:id/campaigns", campaigns.Index)
	r.Get("/charities/:id/fund-usage", usage.CharityIndex)
	r.Get("/charities/:id/transparency", transparency.Summary)
	r.Get("/charities/:id/posts", posts.GetCharityPosts)
	r.Get("/charities/:id/followers-count", follows.FollowersCount)

	r.Get("/campaigns/:id", campaigns.Show)
	r.Get("/campaigns/:id/fund-usage", usage.CampaignIndex)
	r.Get("/posts", posts.Feed)
}
