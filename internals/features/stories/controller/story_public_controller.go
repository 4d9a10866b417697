package controller

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kisahsukses_backend/internals/features/stories/dto"
	"kisahsukses_backend/internals/features/stories/model"
	"kisahsukses_backend/internals/features/stories/service"
	helperOSS "kisahsukses_backend/internals/helpers/oss"
)

type StoryPublicController struct {
	DB *gorm.DB
}

func NewStoryPublicController(db *gorm.DB) *StoryPublicController {
	return &StoryPublicController{DB: db}
}

// mapping nama field gambar publik → kolom object key di record
var publicImageFields = map[string]func(*model.StoryModel) string{
	"logo":          func(m *model.StoryModel) string { return m.StoryLogoKey },
	"main_image":    func(m *model.StoryModel) string { return m.StoryMainImageKey },
	"extra_image_1": func(m *model.StoryModel) string { return m.StoryExtraImage1Key },
	"extra_image_2": func(m *model.StoryModel) string { return m.StoryExtraImage2Key },
	"extra_image_3": func(m *model.StoryModel) string { return m.StoryExtraImage3Key },
	"extra_image_4": func(m *model.StoryModel) string { return m.StoryExtraImage4Key },
}

// =============================
// 🔍 Detail story by slug
// =============================
// GET /success-story/:slug
// Story unpublished tidak pernah ketemu lewat sini walau slug-nya valid.
func (ctrl *StoryPublicController) GetStoryBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	lang := c.Query("lang")

	story, err := service.FindBySlug(ctrl.DB, service.ScopePublic, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Story not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve story")
	}

	related, err := service.RelatedStories(ctrl.DB, service.ScopePublic, story, 3)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve related stories")
	}

	relatedDTOs := make([]dto.StoryDTO, 0, len(related))
	for i := range related {
		relatedDTOs = append(relatedDTOs, dto.ToStoryDTO(&related[i], lang))
	}

	return c.JSON(fiber.Map{
		"story":           dto.ToStoryDTO(story, lang),
		"related_stories": relatedDTOs,
	})
}

// =============================
// 📄 List + filter kategori
// =============================
// GET /success-stories
// GET /success-stories/category/:category
// Daftar kategori SELALU dihitung dari semua story publish, terlepas dari
// filter yang sedang aktif (untuk mengisi kontrol filter di halaman).
func (ctrl *StoryPublicController) ListStories(c *fiber.Ctx) error {
	category := c.Params("category")
	if category != "" {
		// path param ter-escape (mis. spasi jadi %20)
		if unescaped, err := url.PathUnescape(category); err == nil {
			category = unescaped
		}
	}
	lang := c.Query("lang")

	stories, err := service.ListStories(ctrl.DB, service.ScopePublic, category)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve stories")
	}

	categories, err := service.PublishedCategories(ctrl.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve categories")
	}

	result := make([]dto.StoryDTO, 0, len(stories))
	for i := range stories {
		result = append(result, dto.ToStoryDTO(&stories[i], lang))
	}

	return c.JSON(fiber.Map{
		"stories":          result,
		"categories":       categories,
		"current_category": category,
	})
}

// =============================
// 🎠 JSON feed untuk slider widget
// =============================
// POST /success-stories/get-stories
// Body: {"category": "...", "limit": 10}. Sentinel "all" = tanpa filter —
// HANYA berlaku di feed ini, route halaman list tidak mengenalnya
// (asimetri disengaja, mengikuti perilaku lama; jangan disamakan diam-diam).
func (ctrl *StoryPublicController) GetSliderStories(c *fiber.Ctx) error {
	var body struct {
		Category string `json:"category"`
		Limit    int    `json:"limit"`
	}
	// body opsional; widget lama kadang kirim form kosong
	_ = c.BodyParser(&body)

	if body.Category == "" {
		body.Category = c.Query("category")
	}
	if body.Limit == 0 {
		body.Limit, _ = strconv.Atoi(c.Query("limit", "10"))
	}
	if body.Limit <= 0 {
		body.Limit = 10
	}
	if body.Category == "all" {
		body.Category = ""
	}
	lang := c.Query("lang")

	stories, err := service.SliderStories(ctrl.DB, service.ScopePublic, body.Category, body.Limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve stories")
	}

	// Kontrak frozen: array polos, tanpa envelope.
	result := make([]dto.SliderStoryDTO, 0, len(stories))
	for i := range stories {
		result = append(result, dto.ToSliderStoryDTO(&stories[i], lang))
	}
	return c.JSON(result)
}

// =============================
// 🖼️ Serve gambar story
// =============================
// GET /web/image/success-story/:id/:field
// Stream byte dari object store; field kosong / story tidak publish → 404.
func (ctrl *StoryPublicController) GetStoryImage(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusNotFound, "Image not found")
	}
	keyFn, ok := publicImageFields[c.Params("field")]
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Image not found")
	}

	var story model.StoryModel
	if err := service.Stories(ctrl.DB, service.ScopePublic).
		Where("story_id = ?", id).
		First(&story).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Image not found")
	}

	key := keyFn(&story)
	if key == "" {
		return fiber.NewError(fiber.StatusNotFound, "Image not found")
	}

	rc, err := helperOSS.GetObject(key)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Image not found")
	}

	c.Set(fiber.HeaderContentType, "image/webp")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.SendStream(rc)
}
