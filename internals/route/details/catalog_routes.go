package details

import (
	ClientRoutes "kisahsukses_backend/internals/features/clients/route"
	ProductRoutes "kisahsukses_backend/internals/features/products/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ✅ Route admin katalog pendukung (client & product), contoh: /api/a/clients
func CatalogAdminRoutes(api fiber.Router, db *gorm.DB) {
	ClientRoutes.ClientAdminRoutes(api, db)
	ProductRoutes.ProductAdminRoutes(api, db)
}
