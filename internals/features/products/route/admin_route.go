package route

import (
	"kisahsukses_backend/internals/features/products/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ProductAdminRoutes(api fiber.Router, db *gorm.DB) {
	productCtrl := controller.NewProductController(db)

	// === ADMIN ROUTES ===
	product := api.Group("/products")
	product.Post("/", productCtrl.CreateProduct)      // ➕ Buat product baru
	product.Get("/", productCtrl.GetAllProducts)      // 📄 Semua product
	product.Get("/:id", productCtrl.GetProductByID)   // 🔍 Detail product
	product.Put("/:id", productCtrl.UpdateProduct)    // 🔄 Perbarui product
	product.Delete("/:id", productCtrl.DeleteProduct) // 🗑️ Hapus product
}
