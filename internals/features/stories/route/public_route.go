package route

import (
	"kisahsukses_backend/internals/features/stories/controller"
	middlewares "kisahsukses_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AllStoryRoutes: route publik anonim. Path-nya kontrak dengan website
// (sitemap + widget slider), jangan diganti sembarangan.
func AllStoryRoutes(app fiber.Router, db *gorm.DB) {
	publicCtrl := controller.NewStoryPublicController(db)

	app.Get("/success-story/:slug", publicCtrl.GetStoryBySlug)                   // 🔍 Halaman detail
	app.Get("/success-stories", publicCtrl.ListStories)                          // 📄 Halaman list
	app.Get("/success-stories/category/:category", publicCtrl.ListStories)       // 📄 List terfilter
	app.Post("/success-stories/get-stories",                                     // 🎠 Feed slider (JSON-RPC style)
		middlewares.SliderFeedRateLimiter(), publicCtrl.GetSliderStories)
	app.Get("/web/image/success-story/:id/:field", publicCtrl.GetStoryImage)     // 🖼️ Byte gambar
}
