package details

import (
	StoryRoutes "kisahsukses_backend/internals/features/stories/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ✅ Route publik tanpa token (halaman + feed slider + gambar)
func StoryPublicRoutes(api fiber.Router, db *gorm.DB) {
	StoryRoutes.AllStoryRoutes(api, db)
}

// ✅ Route admin (token + role), contoh akses: /api/a/success-stories
func StoryAdminRoutes(api fiber.Router, db *gorm.DB) {
	StoryRoutes.StoryAdminRoutes(api, db)
}
