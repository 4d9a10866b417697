package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"kisahsukses_backend/internals/configs"
	clientModel "kisahsukses_backend/internals/features/clients/model"
	productModel "kisahsukses_backend/internals/features/products/model"
	storyModel "kisahsukses_backend/internals/features/stories/model"
	storyRoute "kisahsukses_backend/internals/features/stories/route"
	"kisahsukses_backend/internals/features/stories/service"
	authMiddleware "kisahsukses_backend/internals/middlewares/auth"
)

// newTestApp: fiber app + sqlite in-memory dengan route story lengkap
// (publik di root, admin di /api/a seperti produksi).
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
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
	storyRoute.AllStoryRoutes(app, db)
	admin := app.Group("/api/a", authMiddleware.AdminAuth())
	storyRoute.StoryAdminRoutes(admin, db)

	return app, db
}

func adminToken(t *testing.T) string {
	t.Helper()
	configs.JWTSecret = "test-secret"
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role":    "admin",
		"user_id": "tester",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte(configs.JWTSecret))
	require.NoError(t, err)
	return s
}

func seedClient(t *testing.T, db *gorm.DB, name string) clientModel.ClientModel {
	t.Helper()
	cl := clientModel.ClientModel{
		ClientName:      name,
		ClientSlug:      strings.ToLower(strings.ReplaceAll(name, " ", "-")),
		ClientIsCompany: true,
	}
	require.NoError(t, db.Create(&cl).Error)
	return cl
}

// seedStory meniru write path produksi: insert → derived dihitung ulang
// setelah id keluar → simpan.
func seedStory(t *testing.T, db *gorm.DB, clientID uint, title, category string, pubDate time.Time, published bool) storyModel.StoryModel {
	t.Helper()
	s := storyModel.StoryModel{
		StoryTitle:            title,
		StoryClientID:         clientID,
		StoryCategory:         category,
		StoryPublicationDate:  pubDate,
		StoryShortDescription: "ringkasan " + title,
		StoryMainText:         "<p>isi " + title + "</p>",
		StoryProductLinkText:  "View Product",
		StoryIsPublished:      published,
	}
	require.NoError(t, db.Create(&s).Error)
	service.ApplyDerived(&s)
	require.NoError(t, db.Save(&s).Error)
	return s
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw := make([]byte, 0)
	if resp.Body != nil {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		raw = buf.Bytes()
	}
	return resp, raw
}

func day(n int) time.Time {
	return time.Date(2026, 1, n, 0, 0, 0, 0, time.UTC)
}

// =============================
// List + filter kategori
// =============================

func TestListOrderingAndCategoryFilter(t *testing.T) {
	app, db := newTestApp(t)
	cl := seedClient(t, db, "PT Maju")

	s0 := seedStory(t, db, cl.ClientID, "Story Nol", "A", day(3), true)
	s1 := seedStory(t, db, cl.ClientID, "Story Satu", "A", day(1), true)
	s2 := seedStory(t, db, cl.ClientID, "Story Dua", "B", day(2), true)

	var out struct {
		Stories []struct {
			StoryID uint `json:"story_id"`
		} `json:"stories"`
		Categories      []string `json:"categories"`
		CurrentCategory string   `json:"current_category"`
	}

	resp, raw := doJSON(t, app, "GET", "/success-stories", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &out))

	// terbaru dulu: date3, date2, date1
	require.Len(t, out.Stories, 3)
	assert.Equal(t, s0.StoryID, out.Stories[0].StoryID)
	assert.Equal(t, s2.StoryID, out.Stories[1].StoryID)
	assert.Equal(t, s1.StoryID, out.Stories[2].StoryID)
	assert.Equal(t, []string{"A", "B"}, out.Categories)
	assert.Equal(t, "", out.CurrentCategory)

	// filter kategori A — set kategori tetap lengkap (independen dari filter)
	resp, raw = doJSON(t, app, "GET", "/success-stories/category/A", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Stories, 2)
	assert.Equal(t, s0.StoryID, out.Stories[0].StoryID)
	assert.Equal(t, s1.StoryID, out.Stories[1].StoryID)
	assert.Equal(t, []string{"A", "B"}, out.Categories)
	assert.Equal(t, "A", out.CurrentCategory)
}

func TestListTieBreakByIDDesc(t *testing.T) {
	app, db := newTestApp(t)
	cl := seedClient(t, db, "PT Maju")

	// tanggal sama → id lebih besar duluan (deterministik utk pagination)
	sa := seedStory(t, db, cl.ClientID, "Cerita Pagi", "A", day(5), true)
	sb := seedStory(t, db, cl.ClientID, "Cerita Sore", "A", day(5), true)

	var out struct {
		Stories []struct {
			StoryID uint `json:"story_id"`
		} `json:"stories"`
	}
	_, raw := doJSON(t, app, "GET", "/success-stories", "", nil)
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Stories, 2)
	assert.Equal(t, sb.StoryID, out.Stories[0].StoryID)
	assert.Equal(t, sa.StoryID, out.Stories[1].StoryID)
}

// =============================
// Detail by slug + related panel
// =============================

func TestDetailBySlug(t *testing.T) {
	app, db := newTestApp(t)
	cl := seedClient(t, db, "PT Maju")

	target := seedStory(t, db, cl.ClientID, "Cerita Utama", "Tech", day(10), true)
	rel1 := seedStory(t, db, cl.ClientID, "Rel Satu", "Tech", day(9), true)
	rel2 := seedStory(t, db, cl.ClientID, "Rel Dua", "Tech", day(8), true)
	rel3 := seedStory(t, db, cl.ClientID, "Rel Tiga", "Tech", day(7), true)
	_ = seedStory(t, db, cl.ClientID, "Rel Empat", "Tech", day(6), true) // >3, tidak ikut
	_ = seedStory(t, db, cl.ClientID, "Beda Kategori", "Health", day(11), true)
	_ = seedStory(t, db, cl.ClientID, "Draft Tech", "Tech", day(12), false) // unpublished

	var out struct {
		Story struct {
			StoryID      uint   `json:"story_id"`
			StoryURLSlug string `json:"story_url_slug"`
		} `json:"story"`
		RelatedStories []struct {
			StoryID uint `json:"story_id"`
		} `json:"related_stories"`
	}

	resp, raw := doJSON(t, app, "GET", "/success-story/"+target.StoryURLSlug, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, target.StoryID, out.Story.StoryID)

	// related: max 3, sekategori, terbaru dulu, story sendiri tidak ikut
	require.Len(t, out.RelatedStories, 3)
	assert.Equal(t, rel1.StoryID, out.RelatedStories[0].StoryID)
	assert.Equal(t, rel2.StoryID, out.RelatedStories[1].StoryID)
	assert.Equal(t, rel3.StoryID, out.RelatedStories[2].StoryID)
	for _, r := range out.RelatedStories {
		assert.NotEqual(t, target.StoryID, r.StoryID)
	}
}

func TestDetailUnpublishedIs404(t *testing.T) {
	app, db := newTestApp(t)
	cl := seedClient(t, db, "PT Maju")

	draft := seedStory(t, db, cl.ClientID, "Masih Draft", "Tech", day(1), false)
	require.NotEmpty(t, draft.StoryURLSlug) // slug valid, tapi tidak publish

	resp, _ := doJSON(t, app, "GET", "/success-story/"+draft.StoryURLSlug, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/success-story/tidak-ada-999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// =============================
// Feed slider (kontrak frozen)
// =============================

func TestSliderFeedLimitAndOrder(t *testing.T) {
	app, db := newTestApp(t)
	cl := seedClient(t, db, "PT Maju")

	ids := make([]uint, 0, 5)
	for i := 1; i <= 5; i++ {
		s := seedStory(t, db, cl.ClientID, fmt.Sprintf("Feed %d", i), "A", day(i), true)
		ids = append(ids, s.StoryID)
	}

	var out []struct {
		ID               uint    `json:"id"`
		Name             string  `json:"name"`
		ClientName       string  `json:"client_name"`
		Category         string  `json:"category"`
		ShortDescription string  `json:"short_description"`
		Logo             *string `json:"logo"`
		MainImage        *string `json:"main_image"`
		URL              string  `json:"url"`
	}

	resp, raw := doJSON(t, app, "POST", "/success-stories/get-stories",
		"", map[string]interface{}{"limit": 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &out))

	// limit dihormati + urutan sama dengan list (terbaru dulu)
	require.Len(t, out, 2)
	assert.Equal(t, ids[4], out[0].ID)
	assert.Equal(t, ids[3], out[1].ID)
	assert.Equal(t, "PT Maju", out[0].ClientName)
	assert.Equal(t, "/success-story/feed-5-"+fmt.Sprint(ids[4]), out[0].URL)
	assert.Nil(t, out[0].Logo) // tanpa logo → null, bukan string kosong

	// nama field kontrak widget harus utuh di raw JSON
	for _, key := range []string{`"id"`, `"name"`, `"client_name"`, `"category"`,
		`"short_description"`, `"logo"`, `"main_image"`, `"url"`} {
		assert.Contains(t, string(raw), key)
	}
}

func TestSliderFeedAllSentinel(t *testing.T) {
	app, db := newTestApp(t)
	cl := seedClient(t, db, "PT Maju")
	seedStory(t, db, cl.ClientID, "Satu", "A", day(1), true)
	seedStory(t, db, cl.ClientID, "Dua", "B", day(2), true)

	var all, none []struct {
		ID uint `json:"id"`
	}

	// "all" HANYA sentinel di feed: sama dengan tanpa filter
	_, raw := doJSON(t, app, "POST", "/success-stories/get-stories",
		"", map[string]interface{}{"category": "all"})
	require.NoError(t, json.Unmarshal(raw, &all))
	_, raw = doJSON(t, app, "POST", "/success-stories/get-stories", "", nil)
	require.NoError(t, json.Unmarshal(raw, &none))
	assert.Equal(t, none, all)
	assert.Len(t, all, 2)

	// sebaliknya, route halaman list memperlakukan "all" sebagai kategori biasa
	var page struct {
		Stories []struct {
			StoryID uint `json:"story_id"`
		} `json:"stories"`
	}
	_, raw = doJSON(t, app, "GET", "/success-stories/category/all", "", nil)
	require.NoError(t, json.Unmarshal(raw, &page))
	assert.Len(t, page.Stories, 0)
}

func TestSliderFeedSkipsUnpublished(t *testing.T) {
	app, db := newTestApp(t)
	cl := seedClient(t, db, "PT Maju")
	pub := seedStory(t, db, cl.ClientID, "Publik", "A", day(1), true)
	seedStory(t, db, cl.ClientID, "Draft", "A", day(2), false)

	var out []struct {
		ID uint `json:"id"`
	}
	_, raw := doJSON(t, app, "POST", "/success-stories/get-stories", "", nil)
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out, 1)
	assert.Equal(t, pub.StoryID, out[0].ID)
}

// =============================
// Admin: create + validasi + publish toggle
// =============================

func TestAdminCreateStoryDerivesSlug(t *testing.T) {
	app, db := newTestApp(t)
	cl := seedClient(t, db, "PT Maju")
	token := adminToken(t)

	body := map[string]interface{}{
		"story_title":             "Kisah Sukses Baru",
		"story_client_id":         cl.ClientID,
		"story_category":          "Tech",
		"story_short_description": "ringkas",
		"story_main_text":         "<p>isi</p>",
		"story_video_url":         "https://www.youtube.com/watch?v=abc123&t=30",
	}
	resp, raw := doJSON(t, app, "POST", "/api/a/success-stories", token, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var out struct {
		Data struct {
			StoryID             uint   `json:"story_id"`
			StoryURLSlug        string `json:"story_url_slug"`
			StoryWebsiteURL     string `json:"story_website_url"`
			StoryVideoEmbedCode string `json:"story_video_embed_code"`
			StoryIsPublished    bool   `json:"story_is_published"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))

	wantSlug := fmt.Sprintf("kisah-sukses-baru-%d", out.Data.StoryID)
	assert.Equal(t, wantSlug, out.Data.StoryURLSlug)
	assert.Equal(t, "/success-story/"+wantSlug, out.Data.StoryWebsiteURL)
	assert.Equal(t, "https://www.youtube.com/embed/abc123", out.Data.StoryVideoEmbedCode)
	assert.False(t, out.Data.StoryIsPublished) // selalu draft dulu
}

func TestAdminCreateShortDescriptionBoundary(t *testing.T) {
	app, db := newTestApp(t)
	cl := seedClient(t, db, "PT Maju")
	token := adminToken(t)

	mk := func(n int) map[string]interface{} {
		return map[string]interface{}{
			"story_title":             "Batas Deskripsi",
			"story_client_id":         cl.ClientID,
			"story_category":          "Tech",
			"story_short_description": strings.Repeat("x", n),
			"story_main_text":         "<p>isi</p>",
		}
	}

	// 300 karakter pas → diterima
	resp, raw := doJSON(t, app, "POST", "/api/a/success-stories", token, mk(300))
	assert.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	// 301 karakter → ditolak sebagai error validasi
	resp, raw = doJSON(t, app, "POST", "/api/a/success-stories", token, mk(301))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "StoryShortDescription")
}

func TestAdminCreateRejectsNonCompanyClient(t *testing.T) {
	app, db := newTestApp(t)
	token := adminToken(t)

	person := clientModel.ClientModel{
		ClientName: "Budi Perorangan", ClientSlug: "budi", ClientIsCompany: false,
	}
	require.NoError(t, db.Create(&person).Error)

	body := map[string]interface{}{
		"story_title":             "Tanpa Perusahaan",
		"story_client_id":         person.ClientID,
		"story_category":          "Tech",
		"story_short_description": "ringkas",
		"story_main_text":         "<p>isi</p>",
	}
	resp, _ := doJSON(t, app, "POST", "/api/a/success-stories", token, body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	app, db := newTestApp(t)
	_ = db
	configs.JWTSecret = "test-secret"

	resp, _ := doJSON(t, app, "GET", "/api/a/success-stories", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPublishToggleIdempotent(t *testing.T) {
	app, db := newTestApp(t)
	cl := seedClient(t, db, "PT Maju")
	token := adminToken(t)

	story := seedStory(t, db, cl.ClientID, "Toggle Me", "A", day(1), false)
	publishPath := fmt.Sprintf("/api/a/success-stories/%d/publish", story.StoryID)
	unpublishPath := fmt.Sprintf("/api/a/success-stories/%d/unpublish", story.StoryID)

	// publish → tampil publik
	resp, _ := doJSON(t, app, "POST", publishPath, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, "GET", "/success-story/"+story.StoryURLSlug, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// publish dua kali: tetap publish, field lain tidak berubah
	resp, _ = doJSON(t, app, "POST", publishPath, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var after storyModel.StoryModel
	require.NoError(t, db.First(&after, "story_id = ?", story.StoryID).Error)
	assert.True(t, after.StoryIsPublished)
	assert.Equal(t, story.StoryTitle, after.StoryTitle)
	assert.Equal(t, story.StoryURLSlug, after.StoryURLSlug)
	assert.Equal(t, story.StoryShortDescription, after.StoryShortDescription)

	// unpublish → hilang dari publik, konten tetap utuh
	resp, _ = doJSON(t, app, "POST", unpublishPath, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, "GET", "/success-story/"+story.StoryURLSlug, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	require.NoError(t, db.First(&after, "story_id = ?", story.StoryID).Error)
	assert.False(t, after.StoryIsPublished)
	assert.Equal(t, story.StoryTitle, after.StoryTitle)
}
