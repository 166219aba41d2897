package screenshot

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// encodeImage converts a raw bitmap into an encoded byte stream.
//
// PNG encoding is lossless and ignores quality entirely. JPEG encoding
// maps quality (1-100) directly to the compressor, after flattening any
// transparency onto a white background since JPEG has no alpha channel.
func encodeImage(img image.Image, format Format, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatPNG:
		if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncode, err)
		}
	case FormatJPEG:
		if err := imaging.Encode(&buf, flattenAlpha(img), imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncode, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return buf.Bytes(), nil
}

// flattenAlpha composites the image over a white background, discarding
// the alpha channel.
func flattenAlpha(img image.Image) image.Image {
	if opaque(img) {
		return img
	}

	bounds := img.Bounds()
	flat := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(flat, flat.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), img, bounds.Min, draw.Over)
	return flat
}

// opaque reports whether the image is known to have no transparency.
func opaque(img image.Image) bool {
	type opaquer interface{ Opaque() bool }
	if o, ok := img.(opaquer); ok {
		return o.Opaque()
	}
	return false
}
