package model

import (
	"time"

	"gorm.io/datatypes"

	clientModel "kisahsukses_backend/internals/features/clients/model"
	productModel "kisahsukses_backend/internals/features/products/model"
)

type StoryModel struct {
	StoryID uint `gorm:"column:story_id;primaryKey;autoIncrement" json:"story_id"`

	// ===== Informasi dasar =====
	StoryTitle           string    `gorm:"column:story_title;type:varchar(255);not null" json:"story_title"`
	StoryClientID        uint      `gorm:"column:story_client_id;not null;index" json:"story_client_id"`
	StoryCategory        string    `gorm:"column:story_category;type:varchar(100);not null;index" json:"story_category"`
	StoryPublicationDate time.Time `gorm:"column:story_publication_date;type:date;not null" json:"story_publication_date"`

	// ===== Gambar (object key di OSS; URL publik diturunkan dari id + nama field) =====
	StoryLogoKey        string `gorm:"column:story_logo_key;type:text" json:"story_logo_key"`
	StoryMainImageKey   string `gorm:"column:story_main_image_key;type:text" json:"story_main_image_key"`
	StoryExtraImage1Key string `gorm:"column:story_extra_image_1_key;type:text" json:"story_extra_image_1_key"`
	StoryExtraImage2Key string `gorm:"column:story_extra_image_2_key;type:text" json:"story_extra_image_2_key"`
	StoryExtraImage3Key string `gorm:"column:story_extra_image_3_key;type:text" json:"story_extra_image_3_key"`
	StoryExtraImage4Key string `gorm:"column:story_extra_image_4_key;type:text" json:"story_extra_image_4_key"`

	// ===== Video =====
	StoryVideoURL       string `gorm:"column:story_video_url;type:text" json:"story_video_url"`
	StoryVideoEmbedCode string `gorm:"column:story_video_embed_code;type:text" json:"story_video_embed_code"` // derived

	// ===== Konten teks =====
	StoryShortDescription string `gorm:"column:story_short_description;type:varchar(300);not null" json:"story_short_description"`
	StoryMainText         string `gorm:"column:story_main_text;type:text;not null" json:"story_main_text"`
	StoryExtraText1       string `gorm:"column:story_extra_text_1;type:text" json:"story_extra_text_1"`
	StoryExtraText2       string `gorm:"column:story_extra_text_2;type:text" json:"story_extra_text_2"`
	StoryExtraText3       string `gorm:"column:story_extra_text_3;type:text" json:"story_extra_text_3"`
	StoryExtraText4       string `gorm:"column:story_extra_text_4;type:text" json:"story_extra_text_4"`
	StoryExtraText5       string `gorm:"column:story_extra_text_5;type:text" json:"story_extra_text_5"`

	// ===== Product CTA =====
	StoryProductID       *uint  `gorm:"column:story_product_id;index" json:"story_product_id"`
	StoryProductLinkText string `gorm:"column:story_product_link_text;type:varchar(100);not null;default:'View Product'" json:"story_product_link_text"`
	StoryProductLinkURL  string `gorm:"column:story_product_link_url;type:text" json:"story_product_link_url"` // derived

	// ===== Website & SEO =====
	StoryURLSlug         string `gorm:"column:story_url_slug;type:varchar(300);index" json:"story_url_slug"`    // derived: title + id
	StoryWebsiteURL      string `gorm:"column:story_website_url;type:text" json:"story_website_url"`            // derived: /success-story/<slug>
	StoryMetaTitle       string `gorm:"column:story_meta_title;type:varchar(255)" json:"story_meta_title"`
	StoryMetaDescription string `gorm:"column:story_meta_description;type:varchar(300)" json:"story_meta_description"`
	StoryMetaKeywords    string `gorm:"column:story_meta_keywords;type:varchar(255)" json:"story_meta_keywords"`

	// ===== Publikasi =====
	StoryIsPublished bool `gorm:"column:story_is_published;not null;default:false;index" json:"story_is_published"`

	// Override teks per-locale: {"id": {"story_title": "...", ...}, "ar": {...}}
	StoryTranslations datatypes.JSONMap `gorm:"column:story_translations;type:jsonb" json:"story_translations"`

	StoryCreatedAt time.Time `gorm:"column:story_created_at;autoCreateTime" json:"story_created_at"`
	StoryUpdatedAt time.Time `gorm:"column:story_updated_at;autoUpdateTime" json:"story_updated_at"`

	// Relasi (Preload)
	Client  *clientModel.ClientModel   `gorm:"foreignKey:StoryClientID;references:ClientID" json:"client,omitempty"`
	Product *productModel.ProductModel `gorm:"foreignKey:StoryProductID;references:ProductID" json:"product,omitempty"`
}

// TableName sets the table name for StoryModel
func (StoryModel) TableName() string {
	return "success_stories"
}
