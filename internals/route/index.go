package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"bayanihan_backend/internals/constants"
	authMiddleware "bayanihan_backend/internals/middlewares/auth"
	routeDetails "bayanihan_backend/internals/route/details"

	"bayanihan_backend/internals/helpers/storage"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, store *storage.LocalStore) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db, store)

	// ===================== GROUPS =====================

	// PUBLIC → no JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")

	// PRIVATE → any authenticated role
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api",
		authMiddleware.AuthMiddleware(db),
	)

	// DONOR group
	log.Println("[INFO] Setting up DONOR group...")
	donor := app.Group("/api",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.ErrOnlyDonorsCanAccess, constants.DonorOnly...),
	)

	// CHARITY ADMIN group
	log.Println("[INFO] Setting up CHARITY ADMIN group...")
	charity := app.Group("/api",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.ErrOnlyCharityAdminsCanAccess, constants.CharityAdminOnly...),
	)

	// PLATFORM ADMIN group
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/admin",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.ErrOnlyAdminsCanAccess, constants.AdminOnly...),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Public routes...")
	routeDetails.PublicRoutes(public, db)

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(private, db, store)

	log.Println("[INFO] Mounting Donor routes...")
	routeDetails.DonorRoutes(donor, db, store)

	log.Println("[INFO] Mounting Charity routes...")
	routeDetails.CharityRoutes(charity, db, store)

	log.Println("[INFO] Mounting Admin routes...")
	routeDetails.AdminRoutes(admin, db, store)
}
