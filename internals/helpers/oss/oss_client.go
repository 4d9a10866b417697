// internals/helpers/oss/oss_client.go
package helper

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"kisahsukses_backend/internals/configs"
)

var (
	ossBucket *oss.Bucket

	// fallback lokal kalau OSS belum dikonfigurasi (dev / CI)
	localDir string
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// InitOSS menyiapkan koneksi bucket. Endpoint + nama bucket diambil dari
// configs (dimuat LoadEnv), credential dari ENV OSS_ACCESS_KEY_ID /
// OSS_ACCESS_KEY_SECRET. Kalau konfigurasi tidak lengkap, pakai fallback
// direktori lokal (LOCAL_IMAGE_DIR, default ./storage/images) supaya dev
// tetap jalan tanpa cloud.
func InitOSS() error {
	endpoint := configs.OSSEndpoint
	keyID := getEnv("OSS_ACCESS_KEY_ID")
	keySecret := getEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := configs.OSSBucketName

	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		localDir = getEnv("LOCAL_IMAGE_DIR")
		if localDir == "" {
			localDir = "./storage/images"
		}
		if err := os.MkdirAll(localDir, 0o755); err != nil {
			return fmt.Errorf("fallback lokal gagal dibuat: %w", err)
		}
		return errors.New("OSS env belum lengkap, pakai penyimpanan lokal")
	}

	client, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return fmt.Errorf("oss client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return fmt.Errorf("oss bucket: %w", err)
	}
	ossBucket = bucket
	return nil
}

// UploadBytes menyimpan objek (dipakai service gambar setelah konversi WebP).
func UploadBytes(key string, data []byte, contentType string) error {
	if ossBucket != nil {
		return ossBucket.PutObject(key, bytes.NewReader(data),
			oss.ContentType(contentType))
	}
	if localDir == "" {
		return errors.New("object store belum diinisialisasi")
	}
	path := filepath.Join(localDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// GetObject membuka stream objek berdasarkan key.
func GetObject(key string) (io.ReadCloser, error) {
	if ossBucket != nil {
		return ossBucket.GetObject(key)
	}
	if localDir == "" {
		return nil, errors.New("object store belum diinisialisasi")
	}
	return os.Open(filepath.Join(localDir, filepath.FromSlash(key)))
}

// DeleteObject menghapus objek (dipanggil saat story dihapus / gambar diganti).
func DeleteObject(key string) error {
	if key == "" {
		return nil
	}
	if ossBucket != nil {
		return ossBucket.DeleteObject(key)
	}
	if localDir == "" {
		return nil
	}
	err := os.Remove(filepath.Join(localDir, filepath.FromSlash(key)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
