package dto

import (
	"fmt"
	"time"

	"kisahsukses_backend/internals/features/stories/model"
)

// ============================
// Response DTO
// ============================

type StoryDTO struct {
	StoryID              uint      `json:"story_id"`
	StoryTitle           string    `json:"story_title"`
	StoryClientID        uint      `json:"story_client_id"`
	StoryClientName      string    `json:"story_client_name,omitempty"`
	StoryCategory        string    `json:"story_category"`
	StoryPublicationDate time.Time `json:"story_publication_date"`
	StoryLogoURL         string    `json:"story_logo_url,omitempty"`
	StoryMainImageURL    string    `json:"story_main_image_url,omitempty"`
	StoryExtraImageURLs  []string  `json:"story_extra_image_urls,omitempty"`
	StoryVideoURL        string    `json:"story_video_url,omitempty"`
	StoryVideoEmbedCode  string    `json:"story_video_embed_code,omitempty"`
	StoryShortDescription string   `json:"story_short_description"`
	StoryMainText        string    `json:"story_main_text"`
	StoryExtraTexts      []string  `json:"story_extra_texts,omitempty"`
	StoryProductID       *uint     `json:"story_product_id,omitempty"`
	StoryProductLinkText string    `json:"story_product_link_text"`
	StoryProductLinkURL  string    `json:"story_product_link_url,omitempty"`
	StoryURLSlug         string    `json:"story_url_slug"`
	StoryWebsiteURL      string    `json:"story_website_url"`
	StoryMetaTitle       string    `json:"story_meta_title,omitempty"`
	StoryMetaDescription string    `json:"story_meta_description,omitempty"`
	StoryIsPublished     bool      `json:"story_is_published"`
	StoryCreatedAt       time.Time `json:"story_created_at"`
	StoryUpdatedAt       time.Time `json:"story_updated_at"`
}

// SliderStoryDTO: bentuk kompak yang dikonsumsi widget slider di frontend.
// Nama field ini kontrak publik — JANGAN diubah tanpa koordinasi dengan
// pemilik widget.
type SliderStoryDTO struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	ClientName       string  `json:"client_name"`
	Category         string  `json:"category"`
	ShortDescription string  `json:"short_description"`
	Logo             *string `json:"logo"`
	MainImage        *string `json:"main_image"`
	URL              string  `json:"url"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateStoryRequest struct {
	StoryTitle            string `json:"story_title" validate:"required,min=3"`
	StoryClientID         uint   `json:"story_client_id" validate:"required"`
	StoryCategory         string `json:"story_category" validate:"required"`
	StoryPublicationDate  string `json:"story_publication_date" validate:"omitempty,datetime=2006-01-02"`
	StoryVideoURL         string `json:"story_video_url" validate:"omitempty,url"`
	StoryShortDescription string `json:"story_short_description" validate:"required,max=300"`
	StoryMainText         string `json:"story_main_text" validate:"required"`
	StoryExtraText1       string `json:"story_extra_text_1"`
	StoryExtraText2       string `json:"story_extra_text_2"`
	StoryExtraText3       string `json:"story_extra_text_3"`
	StoryExtraText4       string `json:"story_extra_text_4"`
	StoryExtraText5       string `json:"story_extra_text_5"`
	StoryProductID        *uint  `json:"story_product_id"`
	StoryProductLinkText  string `json:"story_product_link_text"`
	StoryMetaTitle        string `json:"story_meta_title" validate:"omitempty,max=255"`
	StoryMetaDescription  string `json:"story_meta_description" validate:"omitempty,max=300"`
	StoryMetaKeywords     string `json:"story_meta_keywords" validate:"omitempty,max=255"`
}

type UpdateStoryRequest struct {
	StoryTitle            string `json:"story_title" validate:"required,min=3"`
	StoryClientID         uint   `json:"story_client_id" validate:"required"`
	StoryCategory         string `json:"story_category" validate:"required"`
	StoryPublicationDate  string `json:"story_publication_date" validate:"omitempty,datetime=2006-01-02"`
	StoryVideoURL         string `json:"story_video_url" validate:"omitempty,url"`
	StoryShortDescription string `json:"story_short_description" validate:"required,max=300"`
	StoryMainText         string `json:"story_main_text" validate:"required"`
	StoryExtraText1       string `json:"story_extra_text_1"`
	StoryExtraText2       string `json:"story_extra_text_2"`
	StoryExtraText3       string `json:"story_extra_text_3"`
	StoryExtraText4       string `json:"story_extra_text_4"`
	StoryExtraText5       string `json:"story_extra_text_5"`
	StoryProductID        *uint  `json:"story_product_id"`
	StoryProductLinkText  string `json:"story_product_link_text"`
	StoryMetaTitle        string `json:"story_meta_title" validate:"omitempty,max=255"`
	StoryMetaDescription  string `json:"story_meta_description" validate:"omitempty,max=300"`
	StoryMetaKeywords     string `json:"story_meta_keywords" validate:"omitempty,max=255"`
}

// ============================
// Image URL & translation helpers
// ============================

// StoryImageURL membentuk URL relatif gambar dari id record + nama field.
// Byte-nya sendiri disajikan endpoint /web/image/success-story/:id/:field.
func StoryImageURL(storyID uint, field string) string {
	return fmt.Sprintf("/web/image/success-story/%d/%s", storyID, field)
}

// TranslatedField ambil override per-locale dari story_translations;
// tidak ada → fallback ke nilai dasar.
func TranslatedField(m *model.StoryModel, lang, field, base string) string {
	if lang == "" || m.StoryTranslations == nil {
		return base
	}
	locale, ok := m.StoryTranslations[lang].(map[string]interface{})
	if !ok {
		return base
	}
	if v, ok := locale[field].(string); ok && v != "" {
		return v
	}
	return base
}

// ============================
// Converter
// ============================

func ToStoryDTO(m *model.StoryModel, lang string) StoryDTO {
	d := StoryDTO{
		StoryID:               m.StoryID,
		StoryTitle:            TranslatedField(m, lang, "story_title", m.StoryTitle),
		StoryClientID:         m.StoryClientID,
		StoryCategory:         m.StoryCategory,
		StoryPublicationDate:  m.StoryPublicationDate,
		StoryVideoURL:         m.StoryVideoURL,
		StoryVideoEmbedCode:   m.StoryVideoEmbedCode,
		StoryShortDescription: TranslatedField(m, lang, "story_short_description", m.StoryShortDescription),
		StoryMainText:         TranslatedField(m, lang, "story_main_text", m.StoryMainText),
		StoryProductID:        m.StoryProductID,
		StoryProductLinkText:  TranslatedField(m, lang, "story_product_link_text", m.StoryProductLinkText),
		StoryProductLinkURL:   m.StoryProductLinkURL,
		StoryURLSlug:          m.StoryURLSlug,
		StoryWebsiteURL:       m.StoryWebsiteURL,
		StoryMetaTitle:        m.SeoTitle(),
		StoryMetaDescription:  m.SeoDescription(),
		StoryIsPublished:      m.StoryIsPublished,
		StoryCreatedAt:        m.StoryCreatedAt,
		StoryUpdatedAt:        m.StoryUpdatedAt,
	}

	if m.Client != nil {
		d.StoryClientName = m.Client.ClientName
	}
	if m.StoryLogoKey != "" {
		d.StoryLogoURL = StoryImageURL(m.StoryID, "logo")
	}
	if m.StoryMainImageKey != "" {
		d.StoryMainImageURL = StoryImageURL(m.StoryID, "main_image")
	}
	extraKeys := []string{m.StoryExtraImage1Key, m.StoryExtraImage2Key, m.StoryExtraImage3Key, m.StoryExtraImage4Key}
	for i, key := range extraKeys {
		if key != "" {
			d.StoryExtraImageURLs = append(d.StoryExtraImageURLs, StoryImageURL(m.StoryID, fmt.Sprintf("extra_image_%d", i+1)))
		}
	}
	extraTexts := []string{
		TranslatedField(m, lang, "story_extra_text_1", m.StoryExtraText1),
		TranslatedField(m, lang, "story_extra_text_2", m.StoryExtraText2),
		TranslatedField(m, lang, "story_extra_text_3", m.StoryExtraText3),
		TranslatedField(m, lang, "story_extra_text_4", m.StoryExtraText4),
		TranslatedField(m, lang, "story_extra_text_5", m.StoryExtraText5),
	}
	for _, t := range extraTexts {
		if t != "" {
			d.StoryExtraTexts = append(d.StoryExtraTexts, t)
		}
	}
	return d
}

// ToSliderStoryDTO proyeksi kompak untuk feed slider.
// logo / main_image = null kalau story tidak punya gambar tsb.
func ToSliderStoryDTO(m *model.StoryModel, lang string) SliderStoryDTO {
	d := SliderStoryDTO{
		ID:               m.StoryID,
		Name:             TranslatedField(m, lang, "story_title", m.StoryTitle),
		Category:         m.StoryCategory,
		ShortDescription: TranslatedField(m, lang, "story_short_description", m.StoryShortDescription),
		URL:              m.StoryWebsiteURL,
	}
	if m.Client != nil {
		d.ClientName = m.Client.ClientName
	}
	if m.StoryLogoKey != "" {
		u := StoryImageURL(m.StoryID, "logo")
		d.Logo = &u
	}
	if m.StoryMainImageKey != "" {
		u := StoryImageURL(m.StoryID, "main_image")
		d.MainImage = &u
	}
	return d
}
