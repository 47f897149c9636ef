package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestNormalizeFotoScalesDown(t *testing.T) {
	out, err := NormalizeFoto(encodeJPEG(t, 2400, 1200), 1200, 85)
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1200, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestNormalizeFotoKeepsSmallImages(t *testing.T) {
	out, err := NormalizeFoto(encodeJPEG(t, 400, 300), 1200, 85)
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestNormalizeFotoAcceptsPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 10, 10))))

	_, err := NormalizeFoto(buf.Bytes(), 1200, 85)
	assert.NoError(t, err)
}

func TestNormalizeFotoRejectsGarbage(t *testing.T) {
	_, err := NormalizeFoto([]byte("not an image"), 1200, 85)
	assert.Error(t, err)

	_, err = NormalizeFoto(nil, 1200, 85)
	assert.Error(t, err)
}

func TestReadAllLimit(t *testing.T) {
	b, err := ReadAllLimit(strings.NewReader("abcdef"), 10)
	require.NoError(t, err)
	assert.Equal(t, "abcdef", string(b))

	_, err = ReadAllLimit(strings.NewReader("abcdef"), 5)
	assert.Error(t, err)
}
