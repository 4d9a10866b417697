package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kisahsukses_backend/internals/features/products/dto"
	"kisahsukses_backend/internals/features/products/model"
	helper "kisahsukses_backend/internals/helpers"
)

var validateProduct = validator.New()

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// =============================
// ➕ Create Product
// =============================
func (ctrl *ProductController) CreateProduct(c *fiber.Ctx) error {
	var body dto.CreateProductRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProduct.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), ctrl.DB,
		"products", "product_slug", helper.Slugify(body.ProductName, 120), nil, 120)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
	}

	product := model.ProductModel{
		ProductName:        body.ProductName,
		ProductSlug:        slug,
		ProductListPrice:   body.ProductListPrice,
		ProductIsPublished: body.ProductIsPublished,
	}

	if err := ctrl.DB.Create(&product).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create product")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Product berhasil dibuat", dto.ToProductDTO(product))
}

// =============================
// 🔄 Update Product
// =============================
func (ctrl *ProductController) UpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateProductRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProduct.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var product model.ProductModel
	if err := ctrl.DB.First(&product, "product_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Product not found")
	}

	product.ProductName = body.ProductName
	product.ProductListPrice = body.ProductListPrice
	product.ProductIsPublished = body.ProductIsPublished
	product.ProductUpdatedAt = time.Now()

	if err := ctrl.DB.Save(&product).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update product")
	}

	return helper.Success(c, "Product berhasil diperbarui", dto.ToProductDTO(product))
}

// =============================
// 🗑️ Delete Product
// =============================
func (ctrl *ProductController) DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	// story yang menunjuk product ini kehilangan CTA-nya, bukan error
	if err := ctrl.DB.Table("success_stories").
		Where("story_product_id = ?", id).
		Updates(map[string]interface{}{
			"story_product_id":       nil,
			"story_product_link_url": "",
		}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to detach stories")
	}

	if err := ctrl.DB.Delete(&model.ProductModel{}, "product_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete product")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// =============================
// 📄 Get All Products
// =============================
func (ctrl *ProductController) GetAllProducts(c *fiber.Ctx) error {
	var products []model.ProductModel
	if err := ctrl.DB.Order("product_name ASC").Find(&products).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve products")
	}

	result := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		result = append(result, dto.ToProductDTO(p))
	}

	return helper.Success(c, "OK", result)
}

// =============================
// 🔍 Get Product By ID
// =============================
func (ctrl *ProductController) GetProductByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var product model.ProductModel
	if err := ctrl.DB.First(&product, "product_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Product not found")
	}

	return helper.Success(c, "OK", dto.ToProductDTO(product))
}
