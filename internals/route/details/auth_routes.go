package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "bayanihan_backend/internals/features/users/auth/controller"
	"bayanihan_backend/internals/helpers/storage"
	"bayanihan_backend/internals/middlewares"
)

// AuthRoutes are mounted on the bare app so the stricter per-route rate
// limiters apply before anything else.
func AuthRoutes(app *fiber.App, db *gorm.DB, store *storage.LocalStore) {
	ctrl := authController.NewAuthController(db, store)

	api := app.Group("/api")
	api.Post("/register/donor", middlewares.RegisterRateLimiter(), ctrl.RegisterDonor)
	api.Post("/register/charity-admin", middlewares.RegisterRateLimiter(), ctrl.RegisterCharityAdmin)
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
