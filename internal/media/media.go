// Package media validates uploaded images and inlines them as data URLs so
// the media library needs no separate blob storage.
package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultMaxBytes is the upload ceiling used when none is configured.
const DefaultMaxBytes = 800000

var (
	ErrEmpty      = errors.New("media: empty upload")
	ErrTooLarge   = errors.New("media: file too large")
	ErrNotImage   = errors.New("media: not a supported image")
	ErrInvalidURL = errors.New("media: url must be http(s) or an image data url")
)

// Image describes a validated upload.
type Image struct {
	Format string
	Width  int
	Height int
	URL    string
}

// Inline checks that data is a decodable image no larger than maxBytes and
// returns it as a base64 data URL. maxBytes <= 0 selects DefaultMaxBytes.
func Inline(data []byte, maxBytes int) (Image, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if len(data) == 0 {
		return Image{}, ErrEmpty
	}
	if len(data) > maxBytes {
		return Image{}, fmt.Errorf("%w: %d bytes exceeds %d", ErrTooLarge, len(data), maxBytes)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	return Image{
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
		URL:    "data:" + mimeType(format) + ";base64," + base64.StdEncoding.EncodeToString(data),
	}, nil
}

func mimeType(format string) string {
	if format == "jpeg" {
		return "image/jpeg"
	}
	return "image/" + format
}

// ValidateURL accepts absolute http(s) links and image data URLs. Data URLs
// go through the same checks as uploads: they must decode to a supported
// image no larger than maxBytes, and the returned URL is re-encoded from the
// decoded bytes.
func ValidateURL(raw string, maxBytes int) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if IsDataURL(trimmed) {
		img, err := InlineDataURL(trimmed, maxBytes)
		if err != nil {
			return "", err
		}
		return img.URL, nil
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", ErrInvalidURL
	}
	return trimmed, nil
}

// InlineDataURL decodes a base64 image data URL and validates the payload
// with Inline. Oversized payloads are rejected before decoding.
func InlineDataURL(raw string, maxBytes int) (Image, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	header, payload, ok := strings.Cut(strings.TrimPrefix(raw, "data:"), ",")
	if !ok || !strings.HasSuffix(header, ";base64") {
		return Image{}, fmt.Errorf("%w: data url must be base64 encoded", ErrNotImage)
	}
	// DecodedLen over-counts by at most the two padding bytes.
	if n := base64.StdEncoding.DecodedLen(len(payload)) - 2; n > maxBytes {
		return Image{}, fmt.Errorf("%w: %d bytes exceeds %d", ErrTooLarge, n, maxBytes)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	return Inline(data, maxBytes)
}

// IsDataURL reports whether raw is an inlined image.
func IsDataURL(raw string) bool {
	return strings.HasPrefix(raw, "data:image/")
}
