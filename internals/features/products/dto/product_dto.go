package dto

import (
	"kisahsukses_backend/internals/features/products/model"
	"time"
)

// ============================
// Response DTO
// ============================

type ProductDTO struct {
	ProductID          uint      `json:"product_id"`
	ProductName        string    `json:"product_name"`
	ProductSlug        string    `json:"product_slug"`
	ProductListPrice   float64   `json:"product_list_price"`
	ProductIsPublished bool      `json:"product_is_published"`
	ProductCreatedAt   time.Time `json:"product_created_at"`
	ProductUpdatedAt   time.Time `json:"product_updated_at"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateProductRequest struct {
	ProductName        string  `json:"product_name" validate:"required,min=2"`
	ProductListPrice   float64 `json:"product_list_price" validate:"gte=0"`
	ProductIsPublished bool    `json:"product_is_published"`
}

type UpdateProductRequest struct {
	ProductName        string  `json:"product_name" validate:"required,min=2"`
	ProductListPrice   float64 `json:"product_list_price" validate:"gte=0"`
	ProductIsPublished bool    `json:"product_is_published"`
}

// ============================
// Converter
// ============================

func ToProductDTO(m model.ProductModel) ProductDTO {
	return ProductDTO{
		ProductID:          m.ProductID,
		ProductName:        m.ProductName,
		ProductSlug:        m.ProductSlug,
		ProductListPrice:   m.ProductListPrice,
		ProductIsPublished: m.ProductIsPublished,
		ProductCreatedAt:   m.ProductCreatedAt,
		ProductUpdatedAt:   m.ProductUpdatedAt,
	}
}
