package service

import (
	"context"
	"testing"

	"github.com/stylencms/internal/content"
	"github.com/stylencms/internal/db"
)

func TestSeedPopulatesEmptyStore(t *testing.T) {
	st := setupServiceTestStore(t)
	svc := NewSeedService(st, testCatalog)
	ctx := context.Background()

	report := svc.Seed(ctx)
	if err := report.Err(); err != nil {
		t.Fatalf("seed returned error: %v", err)
	}

	want := map[content.Kind]int{
		content.KindSettings: 1,
		content.KindMenus:    2,
		content.KindProduct:  4,
		content.KindPage:     1,
	}
	for kind, n := range want {
		res, ok := report.Result(kind)
		if !ok {
			t.Fatalf("missing result for %s", kind)
		}
		if res.Inserted != n || res.Skipped {
			t.Fatalf("%s: expected %d inserted, got %+v", kind, n, res)
		}
	}

	page, err := NewPageService(st, testCatalog).GetPageBySlug(ctx, "/")
	if err != nil {
		t.Fatalf("home page lookup failed: %v", err)
	}
	if page.ID != content.HomePageID {
		t.Fatalf("expected seeded home page, got %s", page.ID)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	st := setupServiceTestStore(t)
	svc := NewSeedService(st, testCatalog)
	ctx := context.Background()

	svc.Seed(ctx)
	counts := func() [4]int64 {
		var out [4]int64
		out[0], _ = st.Settings.Count(ctx)
		out[1], _ = st.Menus.Count(ctx)
		out[2], _ = st.Products.Count(ctx)
		out[3], _ = st.Pages.Count(ctx)
		return out
	}
	before := counts()

	report := svc.Seed(ctx)
	if err := report.Err(); err != nil {
		t.Fatalf("second seed returned error: %v", err)
	}
	for _, res := range report.Results {
		if !res.Skipped || res.Inserted != 0 {
			t.Fatalf("expected %s to be skipped, got %+v", res.Kind, res)
		}
	}
	if after := counts(); after != before {
		t.Fatalf("row counts changed: %v -> %v", before, after)
	}
}

func TestSeedKindsAreIndependent(t *testing.T) {
	st := setupServiceTestStore(t)
	ctx := context.Background()

	custom := db.Product{ID: "custom", Name: "Custom board", Category: "other"}
	if err := st.Products.Insert(ctx, &custom); err != nil {
		t.Fatalf("insert product failed: %v", err)
	}
	if err := st.DB.Migrator().DropTable(&db.Menu{}); err != nil {
		t.Fatalf("drop menus failed: %v", err)
	}

	report := NewSeedService(st, testCatalog).Seed(ctx)
	if report.Err() == nil {
		t.Fatal("expected menus failure to be reported")
	}

	if res, _ := report.Result(content.KindMenus); res.Error == "" {
		t.Fatalf("expected menus error, got %+v", res)
	}
	if res, _ := report.Result(content.KindProduct); !res.Skipped {
		t.Fatalf("expected products to be skipped, got %+v", res)
	}
	if res, _ := report.Result(content.KindSettings); res.Inserted != 1 {
		t.Fatalf("expected settings to be seeded, got %+v", res)
	}
	if res, _ := report.Result(content.KindPage); res.Inserted != 1 {
		t.Fatalf("expected pages to be seeded, got %+v", res)
	}
	if n, _ := st.Products.Count(ctx); n != 1 {
		t.Fatalf("expected existing products to be untouched, got %d rows", n)
	}
}
