package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stylencms/internal/content"
	"github.com/stylencms/internal/mapper"
	"github.com/stylencms/internal/store"
)

var (
	ErrPageNotFound    = errors.New("page not found")
	ErrSlugMissing     = errors.New("page slug is required")
	ErrSlugTaken       = errors.New("page slug is already in use")
	ErrSlugReserved    = errors.New("slug / is reserved for the home page")
	ErrInvalidTemplate = errors.New("page template is invalid")
)

// PageService 负责页面的读取、保存以及区块级编辑。
type PageService struct {
	store   *store.Store
	catalog *content.Catalog
	now     func() time.Time
}

// NewPageService returns a PageService reading defaults from catalog.
func NewPageService(st *store.Store, catalog *content.Catalog) *PageService {
	return &PageService{store: st, catalog: catalog, now: time.Now}
}

// GetPageBySlug returns the stored page for slug. When nothing is stored the
// built-in page for that slug is returned, so "/" always resolves.
func (s *PageService) GetPageBySlug(ctx context.Context, slug string) (content.Page, error) {
	normalized := content.NormalizeSlug(slug)
	page, ok := loadOrDefault(ctx, content.KindPage,
		func(ctx context.Context) (content.Page, error) {
			row, err := s.store.Pages.GetBy(ctx, "slug", normalized)
			if err != nil {
				return content.Page{}, err
			}
			return mapper.PageToEntity(*row), nil
		},
		func() (content.Page, bool) { return s.catalog.Page(normalized) },
	)
	if !ok {
		return content.Page{}, ErrPageNotFound
	}
	return page, nil
}

// GetPage returns a page by id for editing, falling back to a built-in page
// with that id only when nothing is stored. Storage errors are returned: an
// edit applied to a default page would overwrite the stored sections.
func (s *PageService) GetPage(ctx context.Context, id string) (content.Page, error) {
	row, err := s.store.Pages.Get(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		if page, ok := s.defaultPageByID(id); ok {
			return page, nil
		}
		return content.Page{}, ErrPageNotFound
	case err != nil:
		return content.Page{}, fmt.Errorf("load page: %w", err)
	}
	return mapper.PageToEntity(*row), nil
}

func (s *PageService) defaultPageByID(id string) (content.Page, bool) {
	for _, page := range s.catalog.Pages() {
		if page.ID == id {
			return page, true
		}
	}
	return content.Page{}, false
}

// ListPages returns stored pages in creation order. Read errors yield an
// empty list.
func (s *PageService) ListPages(ctx context.Context) []content.Page {
	pages, _ := loadOrDefault(ctx, content.KindPage,
		func(ctx context.Context) ([]content.Page, error) {
			rows, err := s.store.Pages.All(ctx)
			if err != nil {
				return nil, err
			}
			pages := make([]content.Page, 0, len(rows))
			for _, row := range rows {
				pages = append(pages, mapper.PageToEntity(row))
			}
			return pages, nil
		},
		always(func() []content.Page { return []content.Page{} }),
	)
	return pages
}

// CreatePage stores a blank, unpublished content page under a generated slug.
func (s *PageService) CreatePage(ctx context.Context) (content.Page, error) {
	page := content.Page{
		ID:       uuid.NewString(),
		Slug:     fmt.Sprintf("/new-page-%d", s.now().UnixMilli()),
		Template: content.TemplateContent,
		Title:    "New Page",
		Sections: []content.Section{},
	}
	return s.SavePage(ctx, page)
}

// SavePage validates page, refreshes UpdatedAt and writes the whole row in a
// single upsert keyed by id. The last save wins.
func (s *PageService) SavePage(ctx context.Context, page content.Page) (content.Page, error) {
	if !page.Template.Valid() {
		return content.Page{}, ErrInvalidTemplate
	}

	slug := content.NormalizeSlug(page.Slug)
	if slug == "" {
		return content.Page{}, ErrSlugMissing
	}
	if !strings.HasPrefix(slug, "/") {
		slug = "/" + slug
	}
	if slug == content.HomeSlug && page.Template != content.TemplateHome {
		return content.Page{}, ErrSlugReserved
	}

	out := page.Clone()
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	out.Slug = slug
	if strings.TrimSpace(out.Title) == "" {
		out.Title = "Untitled"
	}

	if err := s.ensureSlugFree(ctx, slug, out.ID); err != nil {
		return content.Page{}, err
	}

	out.UpdatedAt = s.now().UTC()
	row, err := mapper.PageToRow(out)
	if err != nil {
		return content.Page{}, fmt.Errorf("save page: %w", err)
	}
	if err := s.store.Pages.Upsert(ctx, &row); err != nil {
		return content.Page{}, fmt.Errorf("save page: %w", err)
	}

	slog.InfoContext(ctx, "page saved", "id", out.ID, "slug", out.Slug)
	return out, nil
}

func (s *PageService) ensureSlugFree(ctx context.Context, slug, ownerID string) error {
	existing, err := s.store.Pages.GetBy(ctx, "slug", slug)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("check slug: %w", err)
	case existing.ID != ownerID:
		return ErrSlugTaken
	}
	return nil
}

// DeletePage removes a page. Deleting an unknown id succeeds.
func (s *PageService) DeletePage(ctx context.Context, id string) error {
	if err := s.store.Pages.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}

// DuplicatePage stores an unpublished copy of page id with a fresh id, the
// slug suffixed "-copy" and the title suffixed " (Copy)". The source row is
// left untouched.
func (s *PageService) DuplicatePage(ctx context.Context, id string) (content.Page, error) {
	row, err := s.store.Pages.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return content.Page{}, ErrPageNotFound
		}
		return content.Page{}, fmt.Errorf("duplicate page: %w", err)
	}

	dup := mapper.PageToEntity(*row).Clone()
	dup.ID = uuid.NewString()
	dup.Slug = dup.Slug + "-copy"
	dup.Title = dup.Title + " (Copy)"
	dup.IsPublished = false
	dup.UpdatedAt = s.now().UTC()

	if err := s.ensureSlugFree(ctx, dup.Slug, dup.ID); err != nil {
		return content.Page{}, err
	}

	copyRow, err := mapper.PageToRow(dup)
	if err != nil {
		return content.Page{}, fmt.Errorf("duplicate page: %w", err)
	}
	if err := s.store.Pages.Insert(ctx, &copyRow); err != nil {
		return content.Page{}, fmt.Errorf("duplicate page: %w", err)
	}
	return dup, nil
}

// GetSectionContent returns a copy of one section's stored content, or an
// empty map when the page has no such section.
func (s *PageService) GetSectionContent(ctx context.Context, pageID, sectionID string) (content.Content, error) {
	page, err := s.GetPage(ctx, pageID)
	if err != nil {
		return nil, err
	}
	return content.GetSectionContent(page, sectionID), nil
}

// UpdateSection merges patch into one section of page pageID and saves the
// page. A built-in page that was never stored is saved for the first time.
func (s *PageService) UpdateSection(ctx context.Context, pageID, sectionID string, patch content.Content) (content.Page, error) {
	page, err := s.GetPage(ctx, pageID)
	if err != nil {
		return content.Page{}, err
	}
	return s.SavePage(ctx, content.UpdateSection(page, sectionID, patch))
}

// ResolveSection returns what a renderer should show for section id: the
// stored content layered over the built-in default for the page template.
// Stored keys that are missing or blank fall back to the default value.
func (s *PageService) ResolveSection(page content.Page, id string) content.Content {
	stored := content.GetSectionContent(page, id)
	defaults, ok := s.catalog.SectionDefault(page.Template, id)
	if !ok {
		return stored
	}

	out := content.Merge(defaults, stored)
	for key, value := range stored {
		if str, isString := value.(string); isString && strings.TrimSpace(str) == "" {
			if def, has := defaults[key]; has {
				out[key] = def
			}
		}
	}
	return out
}
