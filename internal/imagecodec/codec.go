// Package imagecodec prepares card images for the local store and for the
// cloud document, whose fields are limited in size.
package imagecodec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif" // регистрация декодера
	"image/jpeg"
	_ "image/png" // регистрация декодера
	"math"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // регистрация декодера
)

const (
	// DefaultMaxBytes - верхняя граница размера изображения в документе
	DefaultMaxBytes = 700_000

	DefaultStartQuality  = 50
	DefaultQualityStep   = 10
	DefaultMinQuality    = 10
	DefaultResizeQuality = 50

	// LocalQuality - качество JPEG для изображения, сохраняемого на устройстве
	LocalQuality = 80
)

// Options настраивает Compress. Нулевые значения заменяются значениями по умолчанию.
type Options struct {
	MaxBytes      int
	StartQuality  int
	QualityStep   int
	MinQuality    int
	ResizeQuality int
}

func (o Options) withDefaults() Options {
	if o.MaxBytes <= 0 {
		o.MaxBytes = DefaultMaxBytes
	}
	if o.StartQuality <= 0 {
		o.StartQuality = DefaultStartQuality
	}
	if o.QualityStep <= 0 {
		o.QualityStep = DefaultQualityStep
	}
	if o.MinQuality <= 0 {
		o.MinQuality = DefaultMinQuality
	}
	if o.ResizeQuality <= 0 {
		o.ResizeQuality = DefaultResizeQuality
	}
	return o
}

// Compress returns the base64 text of an image that fits opts.MaxBytes.
//
// Inputs already within the bound are encoded unchanged. Larger inputs are
// re-encoded as JPEG with decreasing quality, and if that is not enough the
// raster is downscaled by sqrt(MaxBytes/size) and encoded once more. The
// resized output is returned as is, even if it still exceeds the bound.
// The second result is false when the image could not be decoded.
func Compress(raw []byte, opts Options) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}

	o := opts.withDefaults()
	if len(raw) <= o.MaxBytes {
		return base64.StdEncoding.EncodeToString(raw), true
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", false
	}

	quality := o.StartQuality
	out, err := encodeJPEG(img, quality)
	if err != nil {
		return "", false
	}

	for len(out) > o.MaxBytes && quality > o.MinQuality {
		quality -= o.QualityStep
		if quality < 1 {
			quality = 1
		}
		out, err = encodeJPEG(img, quality)
		if err != nil {
			return "", false
		}
	}

	if len(out) > o.MaxBytes {
		scale := math.Sqrt(float64(o.MaxBytes) / float64(len(out)))
		out, err = encodeJPEG(resize(img, scale), o.ResizeQuality)
		if err != nil {
			return "", false
		}
	}

	return base64.StdEncoding.EncodeToString(out), true
}

// Reencode normalises a captured photo to JPEG at the given quality.
// Undecodable input is returned unchanged.
func Reencode(raw []byte, quality int) []byte {
	if len(raw) == 0 {
		return nil
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return raw
	}

	out, err := encodeJPEG(img, quality)
	if err != nil {
		return raw
	}
	return out
}

// DecodeBase64 decodes the image field of a cloud document
func DecodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data: %w", err)
	}
	return data, nil
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// resize масштабирует растр по линейному коэффициенту scale (Catmull-Rom)
func resize(img image.Image, scale float64) image.Image {
	b := img.Bounds()
	w := max(1, int(math.Round(float64(b.Dx())*scale)))
	h := max(1, int(math.Round(float64(b.Dy())*scale)))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
