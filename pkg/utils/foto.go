package utils

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// NormalizeFoto prepares an uploaded mugshot for storage: decodes
// jpeg/png/webp, applies the EXIF orientation, scales down to maxWidth
// (keeping aspect) and re-encodes as JPEG with the given quality.
func NormalizeFoto(input []byte, maxWidth, quality int) ([]byte, error) {
	if len(input) == 0 {
		return nil, errors.New("empty image")
	}
	if quality <= 0 || quality > 100 {
		quality = 85
	}

	img, err := decodeFoto(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}

	img = applyOrientation(img, readOrientation(bytes.NewReader(input)))

	if maxWidth > 0 {
		img = scaleToWidth(img, maxWidth)
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func decodeFoto(r *bytes.Reader) (image.Image, error) {
	if img, err := jpeg.Decode(r); err == nil {
		return img, nil
	}
	r.Seek(0, io.SeekStart)
	if img, err := png.Decode(r); err == nil {
		return img, nil
	}
	r.Seek(0, io.SeekStart)
	if img, err := webp.Decode(r); err == nil {
		return img, nil
	}
	return nil, errors.New("unsupported image format (jpeg/png/webp)")
}

func readOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	ori, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return ori
}

// applyOrientation undoes the camera rotation recorded in EXIF tag 274.
func applyOrientation(src image.Image, ori int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	switch ori {
	case 2: // flip horizontal
		return mapPixels(src, w, h, func(x, y int) (int, int) { return w - 1 - x, y })
	case 3: // rotate 180
		return mapPixels(src, w, h, func(x, y int) (int, int) { return w - 1 - x, h - 1 - y })
	case 4: // flip vertical
		return mapPixels(src, w, h, func(x, y int) (int, int) { return x, h - 1 - y })
	case 5: // transpose
		return mapPixels(src, h, w, func(x, y int) (int, int) { return y, x })
	case 6: // rotate 90 CW
		return mapPixels(src, h, w, func(x, y int) (int, int) { return h - 1 - y, x })
	case 7: // transverse
		return mapPixels(src, h, w, func(x, y int) (int, int) { return h - 1 - y, w - 1 - x })
	case 8: // rotate 90 CCW
		return mapPixels(src, h, w, func(x, y int) (int, int) { return y, w - 1 - x })
	default:
		return src
	}
}

// mapPixels copies src into a dstW x dstH image, placing each source pixel
// (x, y) at the coordinates returned by dest.
func mapPixels(src image.Image, dstW, dstH int, dest func(x, y int) (int, int)) image.Image {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dx, dy := dest(x, y)
			dst.Set(dx, dy, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

func scaleToWidth(src image.Image, maxW int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 || w <= maxW {
		return src
	}

	newH := int(math.Round(float64(h) * float64(maxW) / float64(w)))
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
