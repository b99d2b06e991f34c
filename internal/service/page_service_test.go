package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stylencms/internal/content"
	"github.com/stylencms/internal/db"
)

func TestGetPageBySlugFallsBackToHome(t *testing.T) {
	st := setupServiceTestStore(t)
	svc := NewPageService(st, testCatalog)

	page, err := svc.GetPageBySlug(context.Background(), "/")
	if err != nil {
		t.Fatalf("GetPageBySlug returned error: %v", err)
	}
	if page.Template != content.TemplateHome {
		t.Fatalf("expected home template, got %s", page.Template)
	}
	if got := content.GetSectionContent(page, "hero")["title"]; got != content.DefaultHeroTitle {
		t.Fatalf("expected default hero title, got %v", got)
	}

	if _, err := svc.GetPageBySlug(context.Background(), "/missing"); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
}

func TestGetPageBySlugNormalizesTrailingSlash(t *testing.T) {
	st := setupServiceTestStore(t)
	svc := NewPageService(st, testCatalog)
	ctx := context.Background()

	if _, err := svc.SavePage(ctx, content.Page{Slug: "/about", Template: content.TemplateContent, Title: "About"}); err != nil {
		t.Fatalf("SavePage returned error: %v", err)
	}

	a, err := svc.GetPageBySlug(ctx, "/about/")
	if err != nil {
		t.Fatalf("lookup with trailing slash failed: %v", err)
	}
	b, err := svc.GetPageBySlug(ctx, "/about")
	if err != nil {
		t.Fatalf("lookup without trailing slash failed: %v", err)
	}
	if a.ID != b.ID {
		t.Fatalf("expected the same page, got %s and %s", a.ID, b.ID)
	}
}

func TestSavePageValidation(t *testing.T) {
	st := setupServiceTestStore(t)
	svc := NewPageService(st, testCatalog)
	ctx := context.Background()

	cases := []struct {
		name string
		page content.Page
		want error
	}{
		{"bad template", content.Page{Slug: "/x", Template: "landing"}, ErrInvalidTemplate},
		{"missing slug", content.Page{Slug: "  ", Template: content.TemplateContent}, ErrSlugMissing},
		{"reserved slug", content.Page{Slug: "/", Template: content.TemplateContent}, ErrSlugReserved},
	}
	for _, tc := range cases {
		if _, err := svc.SavePage(ctx, tc.page); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	if _, err := svc.SavePage(ctx, content.Page{ID: "a", Slug: "/cork", Template: content.TemplateProduct, Title: "Cork"}); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if _, err := svc.SavePage(ctx, content.Page{ID: "b", Slug: "cork/", Template: content.TemplateProduct, Title: "Cork 2"}); !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
}

func TestSavePageRefreshesUpdatedAtAndOverwrites(t *testing.T) {
	st := setupServiceTestStore(t)
	svc := NewPageService(st, testCatalog)
	ctx := context.Background()

	first := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = fixedClock(first)
	saved, err := svc.SavePage(ctx, content.Page{Slug: "/about", Template: content.TemplateContent, Title: "About"})
	if err != nil {
		t.Fatalf("SavePage returned error: %v", err)
	}
	if !saved.UpdatedAt.Equal(first) {
		t.Fatalf("expected updatedAt %v, got %v", first, saved.UpdatedAt)
	}

	second := first.Add(time.Hour)
	svc.now = fixedClock(second)
	saved.Title = "About Us"
	saved.UpdatedAt = time.Time{}
	if _, err := svc.SavePage(ctx, saved); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	loaded, err := svc.GetPage(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetPage returned error: %v", err)
	}
	if loaded.Title != "About Us" || !loaded.UpdatedAt.Equal(second) {
		t.Fatalf("unexpected stored page: %+v", loaded)
	}
	if n, _ := st.Pages.Count(ctx); n != 1 {
		t.Fatalf("expected one stored page, got %d", n)
	}
}

func TestDuplicatePage(t *testing.T) {
	st := setupServiceTestStore(t)
	svc := NewPageService(st, testCatalog)
	ctx := context.Background()

	src, err := svc.SavePage(ctx, content.Page{
		Slug:        "/about",
		Template:    content.TemplateContent,
		Title:       "About",
		IsPublished: true,
		Sections:    []content.Section{{ID: "main-content", Type: content.SectionHTML, Content: content.Content{"html": "<p>Hi</p>"}}},
	})
	if err != nil {
		t.Fatalf("SavePage returned error: %v", err)
	}

	dup, err := svc.DuplicatePage(ctx, src.ID)
	if err != nil {
		t.Fatalf("DuplicatePage returned error: %v", err)
	}
	if dup.ID == src.ID {
		t.Fatal("expected a fresh id")
	}
	if dup.Slug != "/about-copy" || dup.Title != "About (Copy)" || dup.IsPublished {
		t.Fatalf("unexpected duplicate: %+v", dup)
	}
	if got := content.GetSectionContent(dup, "main-content")["html"]; got != "<p>Hi</p>" {
		t.Fatalf("expected sections to be copied, got %v", got)
	}

	again, err := svc.GetPage(ctx, src.ID)
	if err != nil {
		t.Fatalf("GetPage returned error: %v", err)
	}
	if again.Slug != "/about" || again.Title != "About" || !again.IsPublished {
		t.Fatalf("source page changed: %+v", again)
	}

	if _, err := svc.DuplicatePage(ctx, "missing"); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
	if n, _ := st.Pages.Count(ctx); n != 2 {
		t.Fatalf("expected two pages after duplicate, got %d", n)
	}
}

func TestUpdateSectionAppendsTrustAsFeatures(t *testing.T) {
	st := setupServiceTestStore(t)
	svc := NewPageService(st, testCatalog)
	ctx := context.Background()

	page, err := svc.SavePage(ctx, content.Page{Slug: "/acrylic", Template: content.TemplateProduct, Title: "Acrylic"})
	if err != nil {
		t.Fatalf("SavePage returned error: %v", err)
	}

	updated, err := svc.UpdateSection(ctx, page.ID, "trust", content.Content{"title": "Why us"})
	if err != nil {
		t.Fatalf("UpdateSection returned error: %v", err)
	}
	if len(updated.Sections) != 1 || updated.Sections[0].Type != content.SectionFeatures {
		t.Fatalf("expected one features section, got %+v", updated.Sections)
	}

	stored, err := svc.GetSectionContent(ctx, page.ID, "trust")
	if err != nil {
		t.Fatalf("GetSectionContent returned error: %v", err)
	}
	if stored["title"] != "Why us" {
		t.Fatalf("expected patch to be stored, got %v", stored)
	}
}

func TestUpdateSectionMaterializesHomePage(t *testing.T) {
	st := setupServiceTestStore(t)
	svc := NewPageService(st, testCatalog)
	ctx := context.Background()

	updated, err := svc.UpdateSection(ctx, content.HomePageID, "hero", content.Content{"title": "Sheets for every project"})
	if err != nil {
		t.Fatalf("UpdateSection returned error: %v", err)
	}

	hero := content.GetSectionContent(updated, "hero")
	if hero["title"] != "Sheets for every project" {
		t.Fatalf("unexpected title %v", hero["title"])
	}
	if hero["subtitle"] == nil {
		t.Fatal("expected untouched hero fields to be preserved")
	}

	var row db.Page
	if err := st.DB.First(&row, "slug = ?", "/").Error; err != nil {
		t.Fatalf("expected home page to be stored: %v", err)
	}
}

func TestResolveSectionFillsBlankFields(t *testing.T) {
	svc := NewPageService(setupServiceTestStore(t), testCatalog)
	page := content.Page{
		Template: content.TemplateHome,
		Sections: []content.Section{{ID: "hero", Type: content.SectionHero, Content: content.Content{"title": "", "badge": "New"}}},
	}

	got := svc.ResolveSection(page, "hero")
	if got["title"] != content.DefaultHeroTitle {
		t.Fatalf("expected blank title to fall back, got %v", got["title"])
	}
	if got["badge"] != "New" {
		t.Fatalf("expected stored extra key to survive, got %v", got["badge"])
	}

	other := content.Page{Template: content.TemplateContent}
	if got := svc.ResolveSection(other, "hero"); len(got) != 0 {
		t.Fatalf("expected no defaults for content pages, got %v", got)
	}
}

func TestCreateListDeletePages(t *testing.T) {
	st := setupServiceTestStore(t)
	svc := NewPageService(st, testCatalog)
	ctx := context.Background()

	svc.now = fixedClock(time.UnixMilli(1700000000000))
	created, err := svc.CreatePage(ctx)
	if err != nil {
		t.Fatalf("CreatePage returned error: %v", err)
	}
	if created.Slug != "/new-page-1700000000000" || created.IsPublished || created.Template != content.TemplateContent {
		t.Fatalf("unexpected new page: %+v", created)
	}

	if pages := svc.ListPages(ctx); len(pages) != 1 {
		t.Fatalf("expected one page, got %d", len(pages))
	}
	if err := svc.DeletePage(ctx, created.ID); err != nil {
		t.Fatalf("DeletePage returned error: %v", err)
	}
	if pages := svc.ListPages(ctx); len(pages) != 0 {
		t.Fatalf("expected no pages, got %d", len(pages))
	}
}
