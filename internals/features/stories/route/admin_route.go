package route

import (
	"kisahsukses_backend/internals/features/stories/controller"
	middlewares "kisahsukses_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func StoryAdminRoutes(api fiber.Router, db *gorm.DB) {
	storyCtrl := controller.NewStoryAdminController(db)

	// === ADMIN ROUTES ===
	story := api.Group("/success-stories")
	story.Post("/", storyCtrl.CreateStory)                 // ➕ Buat story baru (draft)
	story.Get("/", storyCtrl.GetAllStories)                // 📄 Semua story termasuk draft
	story.Get("/:id", storyCtrl.GetStoryByID)              // 🔍 Detail story
	story.Put("/:id", storyCtrl.UpdateStory)               // 🔄 Perbarui story
	story.Delete("/:id", storyCtrl.DeleteStory)            // 🗑️ Hapus story
	story.Post("/:id/publish", storyCtrl.PublishStory)     // 🚀 Publish
	story.Post("/:id/unpublish", storyCtrl.UnpublishStory) // 📴 Unpublish
	story.Post("/:id/images/:field",                       // 🖼️ Upload gambar
		middlewares.ImageUploadRateLimiter(), storyCtrl.UploadStoryImage)
}
