package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/stylencms/internal/content"
	"github.com/stylencms/internal/mapper"
	"github.com/stylencms/internal/store"
)

// ErrMenuUnknown is returned for menu names other than header and footer.
var ErrMenuUnknown = errors.New("menu name must be header or footer")

// MenuService reads and writes the header and footer navigation.
type MenuService struct {
	store   *store.Store
	catalog *content.Catalog
}

// NewMenuService returns a MenuService.
func NewMenuService(st *store.Store, catalog *content.Catalog) *MenuService {
	return &MenuService{store: st, catalog: catalog}
}

// GetMenus returns both menus. Each menu falls back to its built-in items on
// its own when no row exists for it.
func (s *MenuService) GetMenus(ctx context.Context) content.Menus {
	defaults := s.catalog.Menus()
	stored, _ := loadOrDefault(ctx, content.KindMenus,
		func(ctx context.Context) (map[content.MenuName][]content.MenuItem, error) {
			rows, err := s.store.Menus.All(ctx)
			if err != nil {
				return nil, err
			}
			out := make(map[content.MenuName][]content.MenuItem, len(rows))
			for _, row := range rows {
				name, items := mapper.MenuToEntity(row)
				out[name] = items
			}
			return out, nil
		},
		always(func() map[content.MenuName][]content.MenuItem { return nil }),
	)

	menus := defaults
	if items, ok := stored[content.MenuHeader]; ok {
		menus.Header = items
	}
	if items, ok := stored[content.MenuFooter]; ok {
		menus.Footer = items
	}
	return menus
}

// SaveMenu replaces one menu.
func (s *MenuService) SaveMenu(ctx context.Context, name content.MenuName, items []content.MenuItem) ([]content.MenuItem, error) {
	if name != content.MenuHeader && name != content.MenuFooter {
		return nil, ErrMenuUnknown
	}

	cleaned := sanitizeMenuItems(items)
	row, err := mapper.MenuToRow(name, cleaned)
	if err != nil {
		return nil, fmt.Errorf("save menu: %w", err)
	}
	if err := s.store.Menus.Upsert(ctx, &row); err != nil {
		return nil, fmt.Errorf("save menu %s: %w", name, err)
	}
	return cleaned, nil
}

// SaveMenus writes the header and then the footer.
func (s *MenuService) SaveMenus(ctx context.Context, menus content.Menus) (content.Menus, error) {
	header, err := s.SaveMenu(ctx, content.MenuHeader, menus.Header)
	if err != nil {
		return content.Menus{}, err
	}
	footer, err := s.SaveMenu(ctx, content.MenuFooter, menus.Footer)
	if err != nil {
		return content.Menus{}, err
	}
	return content.Menus{Header: header, Footer: footer}, nil
}

// sanitizeMenuItems drops items without a label or url, assigns ids to new
// items and clears unsupported link targets.
func sanitizeMenuItems(items []content.MenuItem) []content.MenuItem {
	out := make([]content.MenuItem, 0, len(items))
	for _, item := range items {
		item.Label = strings.TrimSpace(item.Label)
		item.URL = strings.TrimSpace(item.URL)
		if item.Label == "" || item.URL == "" {
			continue
		}
		if strings.TrimSpace(item.ID) == "" {
			item.ID = uuid.NewString()
		}
		if item.Target != content.TargetSelf && item.Target != content.TargetBlank {
			item.Target = ""
		}
		out = append(out, item)
	}
	return out
}
