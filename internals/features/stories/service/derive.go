// internals/features/stories/service/derive.go
//
// Derivasi field turunan story (slug, website URL, embed video, link produk).
// Semua pure function: tidak pernah error, input yang tidak memenuhi syarat
// menghasilkan string kosong — renderer/feed memperlakukan kosong sebagai
// "elemen di-skip" (tanpa iframe, tanpa tombol CTA, dst).
package service

import (
	"fmt"
	"regexp"
	"strings"

	"kisahsukses_backend/internals/features/stories/model"
)

const (
	// prefix halaman publik story
	storyPathPrefix = "/success-story/"
	// prefix halaman produk di shop
	productPathPrefix = "/shop/product/"
)

var (
	reSlugStrip   = regexp.MustCompile(`[^a-z0-9\s-]`)
	reSlugSpaces  = regexp.MustCompile(`\s+`)
	reSlugHyphens = regexp.MustCompile(`-+`)

	// Dua bentuk URL YouTube yang dikenali, dicoba berurutan.
	// ID video = run karakter sampai ketemu '&', newline, '?' atau '#'.
	reYoutubeWatch = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&\n?#]+)`)
	reYoutubeEmbed = regexp.MustCompile(`youtube\.com/embed/([^&\n?#]+)`)
)

// SlugifyTitle menormalkan judul jadi slug [a-z0-9-]:
// lowercase → buang karakter di luar [a-z0-9 spasi -] → run spasi jadi "-"
// → run "-" jadi satu → trim "-" di ujung.
// Judul kosong / tinggal simbol semua → slug kosong (halaman tidak dibuat).
func SlugifyTitle(title string) string {
	s := strings.ToLower(title)
	s = reSlugStrip.ReplaceAllString(s, "")
	s = reSlugSpaces.ReplaceAllString(s, "-")
	s = reSlugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// StorySlug menambahkan suffix "-<id>" ke slug judul untuk record yang sudah
// tersimpan. Dua judul identik tetap menghasilkan slug berbeda karena id-nya
// ikut di dalam slug (unik by construction, bukan unique constraint).
// Record belum punya id (id == 0) → slug polos, dihitung ulang setelah insert.
func StorySlug(title string, id uint) string {
	slug := SlugifyTitle(title)
	if slug == "" {
		return ""
	}
	if id > 0 {
		return fmt.Sprintf("%s-%d", slug, id)
	}
	return slug
}

// YoutubeEmbedURL ekstrak ID video dari URL YouTube dan kembalikan URL embed
// siap pakai di iframe. Murni sintaktis: tidak ada fetch, tidak ada validasi
// bahwa ID-nya beneran ada di YouTube. URL tidak dikenali → kosong.
func YoutubeEmbedURL(videoURL string) string {
	if videoURL == "" {
		return ""
	}
	for _, re := range []*regexp.Regexp{reYoutubeWatch, reYoutubeEmbed} {
		if m := re.FindStringSubmatch(videoURL); m != nil {
			return "https://www.youtube.com/embed/" + m[1]
		}
	}
	return ""
}

// ProductLinkURL: URL CTA ke halaman produk, kosong kalau tidak ada produk.
func ProductLinkURL(productID *uint) string {
	if productID == nil || *productID == 0 {
		return ""
	}
	return fmt.Sprintf("%s%d", productPathPrefix, *productID)
}

// WebsiteURL: URL halaman story, kosong kalau slug kosong.
func WebsiteURL(slug string) string {
	if slug == "" {
		return ""
	}
	return storyPathPrefix + slug
}

// ApplyDerived menghitung ulang keempat field turunan dari field sumbernya.
// Dipanggil write path setiap kali dependency berubah (dan sekali lagi
// setelah insert pertama, karena slug butuh id).
func ApplyDerived(s *model.StoryModel) {
	s.StoryURLSlug = StorySlug(s.StoryTitle, s.StoryID)
	s.StoryWebsiteURL = WebsiteURL(s.StoryURLSlug)
	s.StoryVideoEmbedCode = YoutubeEmbedURL(s.StoryVideoURL)
	s.StoryProductLinkURL = ProductLinkURL(s.StoryProductID)
}
