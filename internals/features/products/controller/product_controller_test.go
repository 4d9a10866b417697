package controller_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	clientModel "kisahsukses_backend/internals/features/clients/model"
	productModel "kisahsukses_backend/internals/features/products/model"
	productRoute "kisahsukses_backend/internals/features/products/route"
	storyModel "kisahsukses_backend/internals/features/stories/model"
	"kisahsukses_backend/internals/features/stories/service"
)

func newProductApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&clientModel.ClientModel{},
		&productModel.ProductModel{},
		&storyModel.StoryModel{},
	))

	app := fiber.New()
	productRoute.ProductAdminRoutes(app, db)
	return app, db
}

// Hapus product tidak boleh menggagalkan story yang merujuknya:
// rujukan + link CTA turunan ikut dikosongkan.
func TestDeleteProductDetachesStories(t *testing.T) {
	app, db := newProductApp(t)

	cl := clientModel.ClientModel{
		ClientName: "PT Maju", ClientSlug: "pt-maju", ClientIsCompany: true,
	}
	require.NoError(t, db.Create(&cl).Error)
	prod := productModel.ProductModel{
		ProductName: "Widget", ProductSlug: "widget", ProductIsPublished: true,
	}
	require.NoError(t, db.Create(&prod).Error)

	story := storyModel.StoryModel{
		StoryTitle:            "Pakai Widget",
		StoryClientID:         cl.ClientID,
		StoryCategory:         "A",
		StoryPublicationDate:  time.Now(),
		StoryShortDescription: "ringkas",
		StoryMainText:         "isi",
		StoryProductID:        &prod.ProductID,
		StoryProductLinkText:  "View Product",
		StoryIsPublished:      true,
	}
	require.NoError(t, db.Create(&story).Error)
	service.ApplyDerived(&story)
	require.NoError(t, db.Save(&story).Error)
	require.Equal(t,
		fmt.Sprintf("/shop/product/%d", prod.ProductID), story.StoryProductLinkURL)

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/products/%d", prod.ProductID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	var after storyModel.StoryModel
	require.NoError(t, db.First(&after, "story_id = ?", story.StoryID).Error)
	assert.Nil(t, after.StoryProductID)
	assert.Empty(t, after.StoryProductLinkURL)
	assert.Equal(t, "Pakai Widget", after.StoryTitle) // konten lain utuh

	var gone int64
	require.NoError(t, db.Model(&productModel.ProductModel{}).
		Where("product_id = ?", prod.ProductID).Count(&gone).Error)
	assert.Zero(t, gone)
}
