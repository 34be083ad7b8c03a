// Package facial decodes user-supplied images and sends them to a
// DeepFace-compatible analysis service to find the dominant facial emotion.
package facial

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"strings"

	// Registered decoders for the formats browsers produce from canvas and uploads.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ErrInvalidImage is returned when an image payload cannot be decoded.
var ErrInvalidImage = errors.New("invalid image")

// Image is a decoded, validated image ready to be analyzed.
type Image struct {
	Data   []byte // Raw encoded bytes
	Format string // "jpeg", "png" or "gif"
	Width  int
	Height int
}

// DataURL re-encodes the image as a base64 data URL.
func (img Image) DataURL() string {
	return "data:image/" + img.Format + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}

// DecodeDataURL decodes a "data:image/...;base64,<payload>" string.
// Everything after the first comma is treated as the base64 payload, so the
// header is not validated. The payload must decode to a supported image.
func DecodeDataURL(s string) (Image, error) {
	_, payload, found := strings.Cut(s, ",")
	if !found {
		return Image{}, fmt.Errorf("%w: missing data URL separator", ErrInvalidImage)
	}

	data, err := decodeBase64(strings.TrimSpace(payload))
	if err != nil {
		return Image{}, fmt.Errorf("%w: decoding base64: %w", ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return Image{}, fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}

	return Decode(data)
}

// Decode validates raw image bytes by fully decoding them.
func Decode(data []byte) (Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return Image{}, fmt.Errorf("%w: image has no pixels", ErrInvalidImage)
	}

	return Image{
		Data:   data,
		Format: format,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// decodeBase64 accepts both padded and unpadded standard base64.
func decodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}
	if raw, rawErr := base64.RawStdEncoding.DecodeString(s); rawErr == nil {
		return raw, nil
	}
	return nil, err
}
