package route

import (
	"kisahsukses_backend/internals/features/clients/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ClientAdminRoutes(api fiber.Router, db *gorm.DB) {
	clientCtrl := controller.NewClientController(db)

	// === ADMIN ROUTES ===
	client := api.Group("/clients")
	client.Post("/", clientCtrl.CreateClient)      // ➕ Buat client baru
	client.Get("/", clientCtrl.GetAllClients)      // 📄 Semua client
	client.Get("/:id", clientCtrl.GetClientByID)   // 🔍 Detail client
	client.Put("/:id", clientCtrl.UpdateClient)    // 🔄 Perbarui client
	client.Delete("/:id", clientCtrl.DeleteClient) // 🗑️ Hapus client
}
