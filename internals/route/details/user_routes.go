package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "bayanihan_backend/internals/features/notifications/controller"
	authController "bayanihan_backend/internals/features/users/auth/controller"
	"bayanihan_backend/internals/helpers/storage"
)

// UserRoutes are shared by every authenticated role: account management and
// the notification inbox.
func UserRoutes(r fiber.Router, db *gorm.DB, store *storage.LocalStore) {
	auth := authController.NewAuthController(db, store)
	notifications := notificationController.NewNotificationController(db)

	r.Post("/logout", auth.Logout)
	r.Get("/me", auth.Me)
	r.Put("/me", auth.UpdateProfile)
	r.Put("/me/password", auth.ChangePassword)
	r.Post("/me/deactivate", auth.DeactivateAccount)
	r.Delete("/me", auth.DeleteAccount)

	r.Get("/notifications", notifications.Index)
	r.Get("/notifications/unread-count", notifications.UnreadCount)
	r.Patch("/notifications/:id/read", notifications.MarkAsRead)
	r.Post("/notifications/read-all", notifications.MarkAllAsRead)
	r.Delete("/notifications/:id", notifications.Destroy)
}
