// internals/features/stories/service/query.go
//
// Query layer sisi baca. Scope baca (Public / Admin) diputuskan sekali di
// boundary route, bukan lewat escape hatch di dalam query: handler publik
// selalu memanggil ScopePublic, grup admin memanggil ScopeAdmin.
package service

import (
	"gorm.io/gorm"

	"kisahsukses_backend/internals/features/stories/model"
)

// ReadScope menentukan record mana yang boleh terlihat oleh pemanggil.
type ReadScope int

const (
	// ScopePublic: hanya story yang sudah dipublish (pengunjung anonim).
	ScopePublic ReadScope = iota
	// ScopeAdmin: semua story termasuk draft (editor di panel admin).
	ScopeAdmin
)

// RecencyOrder: urutan "terbaru dulu" yang dipakai SEMUA operasi baca
// (detail-related, list, feed) supaya semantik latest-first konsisten.
// Tie-break pakai id DESC agar urutan deterministik & pagination stabil.
const RecencyOrder = "story_publication_date DESC, story_id DESC"

// Stories membangun query dasar sesuai scope.
func Stories(db *gorm.DB, scope ReadScope) *gorm.DB {
	q := db.Model(&model.StoryModel{})
	if scope == ScopePublic {
		q = q.Where("story_is_published = ?", true)
	}
	return q
}

// FindBySlug mencari satu story berdasarkan url_slug dalam scope yang
// diberikan. Tidak ketemu → gorm.ErrRecordNotFound (handler memetakan ke 404).
func FindBySlug(db *gorm.DB, scope ReadScope, slug string) (*model.StoryModel, error) {
	var story model.StoryModel
	err := Stories(db, scope).
		Preload("Client").
		Preload("Product").
		Where("story_url_slug = ?", slug).
		First(&story).Error
	if err != nil {
		return nil, err
	}
	return &story, nil
}

// RelatedStories: maksimal `limit` story lain yang sekategori, terbaru dulu,
// story yang sedang dibuka selalu dikecualikan.
func RelatedStories(db *gorm.DB, scope ReadScope, story *model.StoryModel, limit int) ([]model.StoryModel, error) {
	if limit <= 0 {
		limit = 3
	}
	var related []model.StoryModel
	err := Stories(db, scope).
		Where("story_category = ?", story.StoryCategory).
		Where("story_id <> ?", story.StoryID).
		Order(RecencyOrder).
		Limit(limit).
		Find(&related).Error
	return related, err
}

// ListStories: semua story dalam scope, opsional difilter kategori,
// terbaru dulu. category kosong = tanpa filter.
func ListStories(db *gorm.DB, scope ReadScope, category string) ([]model.StoryModel, error) {
	q := Stories(db, scope).Preload("Client")
	if category != "" {
		q = q.Where("story_category = ?", category)
	}
	var stories []model.StoryModel
	err := q.Order(RecencyOrder).Find(&stories).Error
	return stories, err
}

// PublishedCategories: himpunan kategori distinct dari seluruh story publish,
// urut alfabet. Sengaja TIDAK terpengaruh filter yang sedang aktif —
// dipakai mengisi kontrol filter di halaman list.
func PublishedCategories(db *gorm.DB) ([]string, error) {
	var categories []string
	err := Stories(db, ScopePublic).
		Distinct("story_category").
		Order("story_category ASC").
		Pluck("story_category", &categories).Error
	return categories, err
}

// SliderStories: potongan list untuk widget slider. category kosong = semua;
// sentinel "all" sudah dinormalisasi di boundary handler feed (dan HANYA di
// sana — route halaman list tidak mengenal sentinel itu).
func SliderStories(db *gorm.DB, scope ReadScope, category string, limit int) ([]model.StoryModel, error) {
	if limit <= 0 {
		limit = 10
	}
	q := Stories(db, scope).Preload("Client")
	if category != "" {
		q = q.Where("story_category = ?", category)
	}
	var stories []model.StoryModel
	err := q.Order(RecencyOrder).Limit(limit).Find(&stories).Error
	return stories, err
}
