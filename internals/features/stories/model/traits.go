package model

// Publishable: kontrak eksplisit untuk record yang punya flag publikasi.
type Publishable interface {
	Published() bool
	SetPublished(v bool)
}

// SeoDescribable: kontrak untuk record yang punya metadata SEO
// (dipakai renderer saat mengisi <head> halaman publik).
type SeoDescribable interface {
	SeoTitle() string
	SeoDescription() string
	SeoKeywords() string
}

func (m *StoryModel) Published() bool     { return m.StoryIsPublished }
func (m *StoryModel) SetPublished(v bool) { m.StoryIsPublished = v }

func (m *StoryModel) SeoTitle() string {
	if m.StoryMetaTitle != "" {
		return m.StoryMetaTitle
	}
	return m.StoryTitle
}

func (m *StoryModel) SeoDescription() string {
	if m.StoryMetaDescription != "" {
		return m.StoryMetaDescription
	}
	return m.StoryShortDescription
}

func (m *StoryModel) SeoKeywords() string { return m.StoryMetaKeywords }
