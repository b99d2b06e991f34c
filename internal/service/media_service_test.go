package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stylencms/internal/media"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestUploadMediaInlinesImage(t *testing.T) {
	svc := NewMediaService(setupServiceTestStore(t), 0)
	ctx := context.Background()

	item, err := svc.UploadMedia(ctx, "swatch.png", pngBytes(t))
	if err != nil {
		t.Fatalf("UploadMedia returned error: %v", err)
	}
	if !strings.HasPrefix(item.URL, "data:image/png;base64,") || item.Type != "image" {
		t.Fatalf("unexpected media item: %+v", item)
	}

	got, err := svc.GetMedia(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetMedia returned error: %v", err)
	}
	if got != item {
		t.Fatalf("expected stored item to match, got %+v", got)
	}
}

func TestUploadMediaRejectsOversized(t *testing.T) {
	data := pngBytes(t)
	st := setupServiceTestStore(t)
	svc := NewMediaService(st, len(data)-1)

	if _, err := svc.UploadMedia(context.Background(), "big.png", data); !errors.Is(err, media.ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if n, _ := st.Media.Count(context.Background()); n != 0 {
		t.Fatalf("expected nothing stored, got %d rows", n)
	}
}

func TestAddMediaURLAndDelete(t *testing.T) {
	svc := NewMediaService(setupServiceTestStore(t), 0)
	ctx := context.Background()

	if _, err := svc.AddMediaURL(ctx, "", "not a url"); !errors.Is(err, media.ErrInvalidURL) {
		t.Fatalf("expected ErrInvalidURL, got %v", err)
	}

	item, err := svc.AddMediaURL(ctx, "", "https://images.example.com/sheets/cork.jpg")
	if err != nil {
		t.Fatalf("AddMediaURL returned error: %v", err)
	}
	if item.Name != "cork.jpg" {
		t.Fatalf("expected name from url, got %s", item.Name)
	}
	if items := svc.ListMedia(ctx); len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}

	if err := svc.DeleteMedia(ctx, item.ID); err != nil {
		t.Fatalf("DeleteMedia returned error: %v", err)
	}
	if _, err := svc.GetMedia(ctx, item.ID); !errors.Is(err, ErrMediaNotFound) {
		t.Fatalf("expected ErrMediaNotFound, got %v", err)
	}
}

func TestAddMediaURLHoldsDataURLsToCeiling(t *testing.T) {
	st := setupServiceTestStore(t)
	svc := NewMediaService(st, 0)
	ctx := context.Background()

	huge := "data:image/png;base64," + strings.Repeat("A", 5000000)
	if _, err := svc.AddMediaURL(ctx, "big", huge); !errors.Is(err, media.ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if _, err := svc.AddMediaURL(ctx, "vector", "data:image/svg+xml,<svg/>"); !errors.Is(err, media.ErrNotImage) {
		t.Fatalf("expected ErrNotImage for svg, got %v", err)
	}
	if n, _ := st.Media.Count(ctx); n != 0 {
		t.Fatalf("expected nothing stored, got %d rows", n)
	}

	item, err := svc.AddMediaURL(ctx, "swatch", "data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngBytes(t)))
	if err != nil {
		t.Fatalf("AddMediaURL returned error: %v", err)
	}
	if item.Name != "swatch" || !strings.HasPrefix(item.URL, "data:image/png;base64,") {
		t.Fatalf("unexpected media item: %+v", item)
	}
}
