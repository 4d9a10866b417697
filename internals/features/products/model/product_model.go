package model

import "time"

// ProductModel: produk yang ditautkan sebagai CTA di success story.
// Halaman shop-nya sendiri di luar service ini; di sini cukup katalog minimal.
type ProductModel struct {
	ProductID          uint      `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	ProductName        string    `gorm:"column:product_name;type:varchar(255);not null" json:"product_name"`
	ProductSlug        string    `gorm:"column:product_slug;type:varchar(120);uniqueIndex" json:"product_slug"`
	ProductListPrice   float64   `gorm:"column:product_list_price;not null;default:0" json:"product_list_price"`
	ProductIsPublished bool      `gorm:"column:product_is_published;not null;default:false" json:"product_is_published"`
	ProductCreatedAt   time.Time `gorm:"column:product_created_at;autoCreateTime" json:"product_created_at"`
	ProductUpdatedAt   time.Time `gorm:"column:product_updated_at;autoUpdateTime" json:"product_updated_at"`
}

// TableName sets the table name for ProductModel
func (ProductModel) TableName() string {
	return "products"
}
