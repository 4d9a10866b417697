package controller

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clientModel "kisahsukses_backend/internals/features/clients/model"
	productModel "kisahsukses_backend/internals/features/products/model"
	"kisahsukses_backend/internals/features/stories/dto"
	"kisahsukses_backend/internals/features/stories/model"
	"kisahsukses_backend/internals/features/stories/service"
	helper "kisahsukses_backend/internals/helpers"
	helperOSS "kisahsukses_backend/internals/helpers/oss"
)

var validateStory = validator.New()

type StoryAdminController struct {
	DB *gorm.DB
}

func NewStoryAdminController(db *gorm.DB) *StoryAdminController {
	return &StoryAdminController{DB: db}
}

// kolom object key per nama field upload
var adminImageColumns = map[string]string{
	"logo":          "story_logo_key",
	"main_image":    "story_main_image_key",
	"extra_image_1": "story_extra_image_1_key",
	"extra_image_2": "story_extra_image_2_key",
	"extra_image_3": "story_extra_image_3_key",
	"extra_image_4": "story_extra_image_4_key",
}

// =============================
// ➕ Create Story
// =============================
// Story baru selalu draft (is_published=false); derived field dihitung dua
// tahap: sebelum insert (tanpa id) lalu sekali lagi setelah id keluar,
// karena slug menyertakan id record.
func (ctrl *StoryAdminController) CreateStory(c *fiber.Ctx) error {
	var body dto.CreateStoryRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStory.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := ctrl.checkReferences(body.StoryClientID, body.StoryProductID); err != nil {
		return err
	}

	pubDate := time.Now()
	if body.StoryPublicationDate != "" {
		if d, err := time.Parse("2006-01-02", body.StoryPublicationDate); err == nil {
			pubDate = d
		}
	}

	linkText := body.StoryProductLinkText
	if linkText == "" {
		linkText = "View Product"
	}

	story := model.StoryModel{
		StoryTitle:            body.StoryTitle,
		StoryClientID:         body.StoryClientID,
		StoryCategory:         body.StoryCategory,
		StoryPublicationDate:  pubDate,
		StoryVideoURL:         body.StoryVideoURL,
		StoryShortDescription: body.StoryShortDescription,
		StoryMainText:         body.StoryMainText,
		StoryExtraText1:       body.StoryExtraText1,
		StoryExtraText2:       body.StoryExtraText2,
		StoryExtraText3:       body.StoryExtraText3,
		StoryExtraText4:       body.StoryExtraText4,
		StoryExtraText5:       body.StoryExtraText5,
		StoryProductID:        body.StoryProductID,
		StoryProductLinkText:  linkText,
		StoryMetaTitle:        body.StoryMetaTitle,
		StoryMetaDescription:  body.StoryMetaDescription,
		StoryMetaKeywords:     body.StoryMetaKeywords,
		StoryIsPublished:      false,
	}
	service.ApplyDerived(&story)

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&story).Error; err != nil {
			return err
		}
		// id sudah ada → slug final
		service.ApplyDerived(&story)
		return tx.Model(&story).Updates(map[string]interface{}{
			"story_url_slug":    story.StoryURLSlug,
			"story_website_url": story.StoryWebsiteURL,
		}).Error
	})
	if err != nil {
		log.Printf("[ERROR] create story: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create story")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Story berhasil dibuat", dto.ToStoryDTO(&story, ""))
}

// =============================
// 🔄 Update Story
// =============================
func (ctrl *StoryAdminController) UpdateStory(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateStoryRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStory.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := ctrl.checkReferences(body.StoryClientID, body.StoryProductID); err != nil {
		return err
	}

	var story model.StoryModel
	if err := ctrl.DB.First(&story, "story_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Story not found")
	}

	story.StoryTitle = body.StoryTitle
	story.StoryClientID = body.StoryClientID
	story.StoryCategory = body.StoryCategory
	if body.StoryPublicationDate != "" {
		if d, err := time.Parse("2006-01-02", body.StoryPublicationDate); err == nil {
			story.StoryPublicationDate = d
		}
	}
	story.StoryVideoURL = body.StoryVideoURL
	story.StoryShortDescription = body.StoryShortDescription
	story.StoryMainText = body.StoryMainText
	story.StoryExtraText1 = body.StoryExtraText1
	story.StoryExtraText2 = body.StoryExtraText2
	story.StoryExtraText3 = body.StoryExtraText3
	story.StoryExtraText4 = body.StoryExtraText4
	story.StoryExtraText5 = body.StoryExtraText5
	story.StoryProductID = body.StoryProductID
	if body.StoryProductLinkText != "" {
		story.StoryProductLinkText = body.StoryProductLinkText
	}
	story.StoryMetaTitle = body.StoryMetaTitle
	story.StoryMetaDescription = body.StoryMetaDescription
	story.StoryMetaKeywords = body.StoryMetaKeywords
	story.StoryUpdatedAt = time.Now()

	// dependency derived field mungkin berubah → hitung ulang semua (O(1))
	service.ApplyDerived(&story)

	if err := ctrl.DB.Save(&story).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update story")
	}

	return helper.Success(c, "Story berhasil diperbarui", dto.ToStoryDTO(&story, ""))
}

// =============================
// 📄 List + detail (draft ikut tampil)
// =============================
func (ctrl *StoryAdminController) GetAllStories(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := service.Stories(ctrl.DB, service.ScopeAdmin).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count stories")
	}

	var stories []model.StoryModel
	if err := service.Stories(ctrl.DB, service.ScopeAdmin).
		Preload("Client").
		Order(service.RecencyOrder).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&stories).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve stories")
	}

	result := make([]dto.StoryDTO, 0, len(stories))
	for i := range stories {
		result = append(result, dto.ToStoryDTO(&stories[i], ""))
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pagination.Count = len(result)

	return helper.Success(c, "OK", fiber.Map{
		"stories":    result,
		"pagination": pagination,
	})
}

func (ctrl *StoryAdminController) GetStoryByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var story model.StoryModel
	if err := ctrl.DB.Preload("Client").Preload("Product").
		First(&story, "story_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Story not found")
	}

	return helper.Success(c, "OK", dto.ToStoryDTO(&story, ""))
}

// =============================
// 🚀 Publish / Unpublish
// =============================
// Idempotent: hanya menyentuh flag publikasi, field lain tidak berubah.
func (ctrl *StoryAdminController) PublishStory(c *fiber.Ctx) error {
	return ctrl.setPublished(c, true)
}

func (ctrl *StoryAdminController) UnpublishStory(c *fiber.Ctx) error {
	return ctrl.setPublished(c, false)
}

func (ctrl *StoryAdminController) setPublished(c *fiber.Ctx, published bool) error {
	id := c.Params("id")

	var story model.StoryModel
	if err := ctrl.DB.First(&story, "story_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Story not found")
	}

	story.SetPublished(published)
	if err := ctrl.DB.Model(&story).
		Update("story_is_published", published).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update publish state")
	}

	msg := "Story di-unpublish"
	if published {
		msg = "Story dipublish"
	}
	return helper.Success(c, msg, dto.ToStoryDTO(&story, ""))
}

// =============================
// 🗑️ Delete Story
// =============================
func (ctrl *StoryAdminController) DeleteStory(c *fiber.Ctx) error {
	id := c.Params("id")

	var story model.StoryModel
	if err := ctrl.DB.First(&story, "story_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Story not found")
	}

	if err := ctrl.DB.Delete(&story).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete story")
	}

	// bersihkan objek gambar, best-effort
	for _, key := range []string{
		story.StoryLogoKey, story.StoryMainImageKey,
		story.StoryExtraImage1Key, story.StoryExtraImage2Key,
		story.StoryExtraImage3Key, story.StoryExtraImage4Key,
	} {
		if err := helperOSS.DeleteObject(key); err != nil {
			log.Printf("[WARN] hapus objek %s: %v", key, err)
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// =============================
// 🖼️ Upload gambar (logo / main_image / extra_image_1..4)
// =============================
// POST /api/a/success-stories/:id/images/:field (multipart, field form "image")
func (ctrl *StoryAdminController) UploadStoryImage(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusNotFound, "Story not found")
	}
	field := c.Params("field")
	column, ok := adminImageColumns[field]
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown image field")
	}

	var story model.StoryModel
	if err := ctrl.DB.First(&story, "story_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Story not found")
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing image file")
	}

	key, err := helperOSS.UploadImageWebP(
		"success-story/"+strconv.Itoa(id)+"/"+field, fh)
	if err != nil {
		log.Printf("[ERROR] upload gambar: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store image")
	}

	// simpan key baru, hapus objek lama
	var oldKey string
	for f, fn := range publicImageFields {
		if f == field {
			oldKey = fn(&story)
		}
	}
	if err := ctrl.DB.Model(&story).Update(column, key).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save image reference")
	}
	if oldKey != "" {
		if err := helperOSS.DeleteObject(oldKey); err != nil {
			log.Printf("[WARN] hapus objek lama %s: %v", oldKey, err)
		}
	}

	return helper.Success(c, "Gambar tersimpan", fiber.Map{
		"field": field,
		"url":   dto.StoryImageURL(story.StoryID, field),
	})
}

// checkReferences memastikan client resolve ke kontak perusahaan dan
// product (kalau diisi) memang ada.
func (ctrl *StoryAdminController) checkReferences(clientID uint, productID *uint) error {
	var client clientModel.ClientModel
	if err := ctrl.DB.First(&client, "client_id = ?", clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Client tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check client")
	}
	if !client.ClientIsCompany {
		return fiber.NewError(fiber.StatusBadRequest, "Client harus kontak perusahaan")
	}

	if productID != nil && *productID != 0 {
		var product productModel.ProductModel
		if err := ctrl.DB.First(&product, "product_id = ?", *productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "Product tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check product")
		}
	}
	return nil
}
