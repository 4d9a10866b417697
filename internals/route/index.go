// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "kisahsukses_backend/internals/middlewares/auth"
	routeDetails "kisahsukses_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	// Halaman & feed publik di-mount di root (bukan /api) karena path-nya
	// kontrak dengan website + sitemap.
	log.Println("[INFO] Mounting public story routes...")
	routeDetails.StoryPublicRoutes(app, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (JWT + role)...")
	admin := app.Group("/api/a", authMiddleware.AdminAuth())

	log.Println("[INFO] Mounting story admin routes...")
	routeDetails.StoryAdminRoutes(admin, db)

	log.Println("[INFO] Mounting catalog admin routes...")
	routeDetails.CatalogAdminRoutes(admin, db)
}
