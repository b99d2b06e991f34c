package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stylencms/internal/content"
	"github.com/stylencms/internal/db"
	"github.com/stylencms/internal/mapper"
	"github.com/stylencms/internal/store"
)

// KindResult is the outcome of seeding one entity kind.
type KindResult struct {
	Kind     content.Kind `json:"kind"`
	Inserted int          `json:"inserted"`
	Skipped  bool         `json:"skipped"`
	Error    string       `json:"error,omitempty"`
	err      error
}

// SeedReport collects the per-kind outcomes of one Seed run.
type SeedReport struct {
	Results []KindResult `json:"results"`
}

// Err joins the failures of all kinds, or returns nil.
func (r SeedReport) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.err != nil {
			errs = append(errs, fmt.Errorf("seed %s: %w", res.Kind, res.err))
		}
	}
	return errors.Join(errs...)
}

// Result returns the outcome for kind.
func (r SeedReport) Result(kind content.Kind) (KindResult, bool) {
	for _, res := range r.Results {
		if res.Kind == kind {
			return res, true
		}
	}
	return KindResult{}, false
}

// SeedService 把内置默认内容写入空的存储。
type SeedService struct {
	store   *store.Store
	catalog *content.Catalog
	now     func() time.Time
}

// NewSeedService returns a SeedService.
func NewSeedService(st *store.Store, catalog *content.Catalog) *SeedService {
	return &SeedService{store: st, catalog: catalog, now: time.Now}
}

// Seed inserts the built-in records of every kind that currently has no rows
// at all. Kinds are handled independently: a failure in one is recorded in
// the report and the others still run. Running Seed again is a no-op.
func (s *SeedService) Seed(ctx context.Context) SeedReport {
	report := SeedReport{Results: []KindResult{
		seedKind(ctx, content.KindSettings, s.store.Settings, s.settingsRows),
		seedKind(ctx, content.KindMenus, s.store.Menus, s.menuRows),
		seedKind(ctx, content.KindProduct, s.store.Products, s.productRows),
		seedKind(ctx, content.KindPage, s.store.Pages, s.pageRows),
	}}

	for _, res := range report.Results {
		if res.err != nil {
			slog.WarnContext(ctx, "seed failed", "kind", res.Kind, "err", res.err)
			continue
		}
		slog.InfoContext(ctx, "seed done", "kind", res.Kind, "inserted", res.Inserted, "skipped", res.Skipped)
	}
	return report
}

func seedKind[R any](ctx context.Context, kind content.Kind, table *store.Table[R], build func() ([]R, error)) KindResult {
	result := KindResult{Kind: kind}
	fail := func(err error) KindResult {
		result.err = err
		result.Error = err.Error()
		return result
	}

	n, err := table.Count(ctx)
	if err != nil {
		return fail(err)
	}
	if n > 0 {
		result.Skipped = true
		return result
	}

	rows, err := build()
	if err != nil {
		return fail(err)
	}
	if err := table.InsertAll(ctx, rows); err != nil {
		return fail(err)
	}
	result.Inserted = len(rows)
	return result
}

func (s *SeedService) settingsRows() ([]db.Settings, error) {
	row, err := mapper.SettingsToRow(s.catalog.Settings())
	if err != nil {
		return nil, err
	}
	return []db.Settings{row}, nil
}

func (s *SeedService) menuRows() ([]db.Menu, error) {
	menus := s.catalog.Menus()
	rows := make([]db.Menu, 0, 2)
	for _, name := range []content.MenuName{content.MenuHeader, content.MenuFooter} {
		row, err := mapper.MenuToRow(name, menus.Items(name))
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *SeedService) productRows() ([]db.Product, error) {
	products := s.catalog.Products()
	rows := make([]db.Product, 0, len(products))
	for _, p := range products {
		row, err := mapper.ProductToRow(p)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *SeedService) pageRows() ([]db.Page, error) {
	pages := s.catalog.Pages()
	rows := make([]db.Page, 0, len(pages))
	for _, p := range pages {
		p.UpdatedAt = s.now().UTC()
		row, err := mapper.PageToRow(p)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
