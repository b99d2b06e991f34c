package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/stylencms/internal/content"
	"github.com/stylencms/internal/mapper"
	"github.com/stylencms/internal/media"
	"github.com/stylencms/internal/store"
)

// ErrMediaNotFound is returned when a media id does not exist.
var ErrMediaNotFound = errors.New("media not found")

// MediaService manages the media library.
type MediaService struct {
	store    *store.Store
	maxBytes int
}

// NewMediaService returns a MediaService that rejects uploads larger than
// maxBytes. Zero selects media.DefaultMaxBytes.
func NewMediaService(st *store.Store, maxBytes int) *MediaService {
	if maxBytes <= 0 {
		maxBytes = media.DefaultMaxBytes
	}
	return &MediaService{store: st, maxBytes: maxBytes}
}

// MaxBytes reports the upload ceiling.
func (s *MediaService) MaxBytes() int {
	return s.maxBytes
}

// ListMedia returns the library newest first.
func (s *MediaService) ListMedia(ctx context.Context) []content.MediaItem {
	items, _ := loadOrDefault(ctx, content.KindMedia,
		func(ctx context.Context) ([]content.MediaItem, error) {
			rows, err := s.store.Media.All(ctx)
			if err != nil {
				return nil, err
			}
			items := make([]content.MediaItem, 0, len(rows))
			for _, row := range rows {
				items = append(items, mapper.MediaToEntity(row))
			}
			return items, nil
		},
		always(func() []content.MediaItem { return []content.MediaItem{} }),
	)
	return items
}

// GetMedia returns one library item.
func (s *MediaService) GetMedia(ctx context.Context, id string) (content.MediaItem, error) {
	row, err := s.store.Media.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return content.MediaItem{}, ErrMediaNotFound
		}
		return content.MediaItem{}, fmt.Errorf("get media: %w", err)
	}
	return mapper.MediaToEntity(*row), nil
}

// AddMediaURL registers an external image link or an inline data URL. Data
// URLs are held to the upload ceiling.
func (s *MediaService) AddMediaURL(ctx context.Context, name, rawURL string) (content.MediaItem, error) {
	url, err := media.ValidateURL(rawURL, s.maxBytes)
	if err != nil {
		return content.MediaItem{}, err
	}
	if strings.TrimSpace(name) == "" && !media.IsDataURL(url) {
		name = path.Base(url)
	}
	return s.save(ctx, name, url)
}

// UploadMedia validates data as an image within the size ceiling and stores
// it inline as a data URL.
func (s *MediaService) UploadMedia(ctx context.Context, name string, data []byte) (content.MediaItem, error) {
	img, err := media.Inline(data, s.maxBytes)
	if err != nil {
		return content.MediaItem{}, err
	}
	return s.save(ctx, name, img.URL)
}

func (s *MediaService) save(ctx context.Context, name, url string) (content.MediaItem, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == "/" {
		name = "image"
	}
	item := content.MediaItem{
		ID:   uuid.NewString(),
		Name: name,
		Type: content.MediaTypeImage,
		URL:  url,
	}
	row := mapper.MediaToRow(item)
	if err := s.store.Media.Insert(ctx, &row); err != nil {
		return content.MediaItem{}, fmt.Errorf("save media: %w", err)
	}
	return item, nil
}

// DeleteMedia removes a library item.
func (s *MediaService) DeleteMedia(ctx context.Context, id string) error {
	if err := s.store.Media.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}
