package helper

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kisahsukses_backend/internals/configs"
)

func resetOSSState(t *testing.T) {
	t.Helper()
	prevBucket, prevDir := ossBucket, localDir
	prevEndpoint, prevName := configs.OSSEndpoint, configs.OSSBucketName
	t.Cleanup(func() {
		ossBucket, localDir = prevBucket, prevDir
		configs.OSSEndpoint, configs.OSSBucketName = prevEndpoint, prevName
	})
	ossBucket = nil
	localDir = ""
}

// Konfigurasi OSS lengkap (endpoint + bucket dari configs, credential dari
// ENV) → client bucket siap, tanpa fallback lokal.
func TestInitOSSUsesConfigValues(t *testing.T) {
	resetOSSState(t)

	configs.OSSEndpoint = "oss-ap-southeast-5.aliyuncs.com"
	configs.OSSBucketName = "kisahsukses-img"
	t.Setenv("OSS_ACCESS_KEY_ID", "test-key")
	t.Setenv("OSS_ACCESS_KEY_SECRET", "test-secret")

	require.NoError(t, InitOSS())
	assert.NotNil(t, ossBucket)
}

// Tanpa konfigurasi OSS → fallback direktori lokal tetap bisa
// simpan / baca / hapus objek.
func TestInitOSSLocalFallbackRoundtrip(t *testing.T) {
	resetOSSState(t)

	configs.OSSEndpoint = ""
	configs.OSSBucketName = ""
	t.Setenv("OSS_ACCESS_KEY_ID", "")
	t.Setenv("OSS_ACCESS_KEY_SECRET", "")
	t.Setenv("LOCAL_IMAGE_DIR", t.TempDir())

	// error di sini sinyal "pakai lokal", bukan kegagalan fatal
	require.Error(t, InitOSS())
	require.NotEmpty(t, localDir)

	key := "success-story/1/logo/abc.webp"
	payload := []byte("webp-bytes")
	require.NoError(t, UploadBytes(key, payload, "image/webp"))

	rc, err := GetObject(key)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, payload, got)

	require.NoError(t, DeleteObject(key))
	_, err = GetObject(key)
	assert.Error(t, err)

	// hapus objek yang sudah tidak ada harus tetap aman
	assert.NoError(t, DeleteObject(key))
}
