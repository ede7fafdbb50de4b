package imagecodec

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noisePNG генерирует PNG со случайным шумом, который плохо сжимается
func noisePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	rng := rand.New(rand.NewPCG(1, 2))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(rng.IntN(256)),
				G: uint8(rng.IntN(256)),
				B: uint8(rng.IntN(256)),
				A: 255,
			})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeResult(t *testing.T, encoded string) ([]byte, image.Config) {
	t.Helper()

	data, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return data, cfg
}

func TestCompress_SmallInputUnchanged(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "arbitrary bytes", raw: []byte("not really an image")},
		{name: "exactly at bound", raw: bytes.Repeat([]byte{0xAB}, 1024)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, ok := Compress(tt.raw, Options{MaxBytes: 1024})
			require.True(t, ok)

			decoded, err := DecodeBase64(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.raw, decoded)
		})
	}
}

func TestCompress_DecodeFailure(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "empty", raw: nil},
		{name: "garbage over bound", raw: bytes.Repeat([]byte{0x01}, 4096)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, ok := Compress(tt.raw, Options{MaxBytes: 1024})
			assert.False(t, ok)
			assert.Empty(t, encoded)
		})
	}
}

func TestCompress_QualityStepFitsWithoutResize(t *testing.T) {
	raw := noisePNG(t, 320, 320)
	require.Greater(t, len(raw), 300_000)

	encoded, ok := Compress(raw, Options{MaxBytes: 300_000})
	require.True(t, ok)

	data, cfg := decodeResult(t, encoded)
	assert.LessOrEqual(t, len(data), 300_000)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 320, cfg.Height)
}

func TestCompress_ResizeWhenQualityIsNotEnough(t *testing.T) {
	raw := noisePNG(t, 400, 400)

	encoded, ok := Compress(raw, Options{MaxBytes: 5_000})
	require.True(t, ok)

	_, cfg := decodeResult(t, encoded)
	assert.Less(t, cfg.Width, 400)
	assert.Less(t, cfg.Height, 400)
	assert.Equal(t, cfg.Width, cfg.Height)
}

func TestCompress_LargeImageAgainstDefaultBound(t *testing.T) {
	raw := noisePNG(t, 1200, 1200)
	require.Greater(t, len(raw), DefaultMaxBytes)

	encoded, ok := Compress(raw, Options{})
	require.True(t, ok)

	data, cfg := decodeResult(t, encoded)
	resized := cfg.Width < 1200 && cfg.Height < 1200
	assert.True(t, len(data) <= DefaultMaxBytes || resized,
		"output must fit the bound or come from the resize step (size %d, %dx%d)", len(data), cfg.Width, cfg.Height)
}

func TestReencode(t *testing.T) {
	t.Run("png becomes jpeg", func(t *testing.T) {
		out := Reencode(noisePNG(t, 32, 32), LocalQuality)

		cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
		assert.Equal(t, 32, cfg.Width)
	})

	t.Run("undecodable kept as is", func(t *testing.T) {
		raw := []byte("plain bytes")
		assert.Equal(t, raw, Reencode(raw, LocalQuality))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, Reencode(nil, LocalQuality))
	})
}

func TestDecodeBase64_Invalid(t *testing.T) {
	_, err := DecodeBase64("%%%")
	assert.Error(t, err)
}
