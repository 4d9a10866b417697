package helper

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"PT Maju Jaya", "pt-maju-jaya"},
		{"  Spasi  Ganda  ", "spasi-ganda"},
		{"Café Résumé", "cafe-resume"}, // diakritik di-fold, bukan dibuang
		{"100% Teruji!", "100-teruji"},
		{"---", "item"},
		{"", "item"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in, 0), "input: %q", tc.in)
	}
}

func TestSlugifyMaxLen(t *testing.T) {
	long := strings.Repeat("abc ", 50)
	got := Slugify(long, 20)
	assert.LessOrEqual(t, len(got), 20)
	assert.NotEqual(t, "-", got[len(got)-1:]) // tidak boleh berakhir '-'
}

func TestEnsureUniqueSlugCI(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	type row struct {
		ID   uint   `gorm:"primaryKey"`
		Slug string `gorm:"column:slug"`
	}
	require.NoError(t, db.Table("rows").AutoMigrate(&row{}))

	ctx := context.Background()

	// tabel kosong → base dipakai apa adanya
	got, err := EnsureUniqueSlugCI(ctx, db, "rows", "slug", "pt-maju", nil, 100)
	require.NoError(t, err)
	assert.Equal(t, "pt-maju", got)
	require.NoError(t, db.Table("rows").Create(&row{Slug: got}).Error)

	// tabrakan → suffix -2
	got, err = EnsureUniqueSlugCI(ctx, db, "rows", "slug", "pt-maju", nil, 100)
	require.NoError(t, err)
	assert.Equal(t, "pt-maju-2", got)
	require.NoError(t, db.Table("rows").Create(&row{Slug: got}).Error)

	// tabrakan lagi → -3
	got, err = EnsureUniqueSlugCI(ctx, db, "rows", "slug", "pt-maju", nil, 100)
	require.NoError(t, err)
	assert.Equal(t, "pt-maju-3", got)

	// case-insensitive: "SLUG-CI" tetap dianggap tabrakan
	require.NoError(t, db.Table("rows").Create(&row{Slug: "SLUG-CI"}).Error)
	got, err = EnsureUniqueSlugCI(ctx, db, "rows", "slug", "slug-ci", nil, 100)
	require.NoError(t, err)
	assert.Equal(t, "slug-ci-2", got)
}

func TestEnsureUniqueSlugCIRespectsMaxLen(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	type row struct {
		ID   uint   `gorm:"primaryKey"`
		Slug string `gorm:"column:slug"`
	}
	require.NoError(t, db.Table("rows").AutoMigrate(&row{}))

	base := strings.Repeat("a", 20)
	require.NoError(t, db.Table("rows").Create(&row{Slug: base}).Error)

	got, err := EnsureUniqueSlugCI(context.Background(), db, "rows", "slug", base, nil, 20)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(got), 20)
	assert.True(t, strings.HasSuffix(got, "-2"))
}
