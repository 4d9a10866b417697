// internals/helpers/oss/oss_image_service.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	"mime/multipart"
	"strconv"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

var (
	// batas ukuran uploader di controller (guard ringan)
	maxUploadSize = int64(5 * 1024 * 1024)
)

/* =======================================================================
   Konfigurasi WebP (ENV-Driven)
======================================================================= */

type WebPOptions struct {
	MaxW    int     // batas lebar (resize keep-aspect)
	MaxH    int     // batas tinggi
	Quality float32 // kualitas lossy
}

func defaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:    envInt("IMG_MAX_W", 1600),
		MaxH:    envInt("IMG_MAX_H", 1600),
		Quality: envFloat("IMG_WEBP_QUALITY", 80),
	}
}

func envInt(key string, def int) int {
	if v := getEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := getEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f > 0 {
			return float32(f)
		}
	}
	return def
}

/* =======================================================================
   Pipeline: decode → resize → encode WebP → upload
======================================================================= */

// UploadImageWebP menerima file multipart dari form admin, konversi ke WebP
// (resize keep-aspect bila melebihi batas), lalu simpan ke object store.
// Return object key yang dipersist di kolom gambar record.
func UploadImageWebP(prefix string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("ukuran file melebihi batas %d byte", maxUploadSize)
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	// imaging.AutoOrientation: foto dari HP sering bawa EXIF rotate
	src, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode gambar: %w", err)
	}

	opt := defaultWebPOptionsFromEnv()
	src = resizeToFit(src, opt.MaxW, opt.MaxH)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: opt.Quality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("%s/%s.webp", prefix, uuid.NewString())
	if err := UploadBytes(key, buf.Bytes(), "image/webp"); err != nil {
		return "", err
	}
	return key, nil
}

// resizeToFit menurunkan dimensi keep-aspect kalau melebihi maxW/maxH.
func resizeToFit(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}

	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
