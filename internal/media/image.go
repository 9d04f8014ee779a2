package media

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	apperrors "coursehub/internal/errors"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// ImageOptions bounds re-encoded images.
type ImageOptions struct {
	MaxWidth  int
	MaxHeight int
	Quality   float32
}

func (o ImageOptions) withDefaults() ImageOptions {
	if o.MaxWidth <= 0 {
		o.MaxWidth = 1280
	}
	if o.MaxHeight <= 0 {
		o.MaxHeight = 720
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = 80
	}
	return o
}

// Convert decodes a JPEG, PNG, GIF or WebP image, shrinks it to fit the
// bounds (never enlarging) and encodes it as lossy WebP.
func (o ImageOptions) Convert(raw []byte) ([]byte, error) {
	o = o.withDefaults()

	img, err := decodeImage(raw)
	if err != nil {
		return nil, err
	}

	img = imaging.Fit(img, o.MaxWidth, o.MaxHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: false, Quality: o.Quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeImage(raw []byte) (image.Image, error) {
	if len(raw) == 0 {
		return nil, apperrors.ErrUnsupportedMediaType
	}

	ct := sniff(raw)
	switch {
	case strings.Contains(ct, "webp"):
		img, err := webp.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, apperrors.ErrUnsupportedMediaType
		}
		return img, nil
	case strings.HasPrefix(ct, "image/"):
		img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
		if err != nil {
			return nil, apperrors.ErrUnsupportedMediaType
		}
		return img, nil
	default:
		return nil, apperrors.ErrUnsupportedMediaType
	}
}
