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

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductNameMissing = errors.New("product name is required")
)

// ProductService manages the product catalogue.
type ProductService struct {
	store   *store.Store
	catalog *content.Catalog
}

// NewProductService returns a ProductService.
func NewProductService(st *store.Store, catalog *content.Catalog) *ProductService {
	return &ProductService{store: st, catalog: catalog}
}

// ListProducts returns stored products, or the built-in products when none
// are stored or storage cannot be read.
func (s *ProductService) ListProducts(ctx context.Context) []content.Product {
	products, _ := loadOrDefault(ctx, content.KindProduct,
		func(ctx context.Context) ([]content.Product, error) {
			rows, err := s.store.Products.All(ctx)
			if err != nil {
				return nil, err
			}
			if len(rows) == 0 {
				return nil, errEmpty
			}
			products := make([]content.Product, 0, len(rows))
			for _, row := range rows {
				products = append(products, mapper.ProductToEntity(row))
			}
			return products, nil
		},
		always(s.catalog.Products),
	)
	return products
}

// ListByCategory filters ListProducts. An empty category returns everything.
func (s *ProductService) ListByCategory(ctx context.Context, category content.Category) []content.Product {
	all := s.ListProducts(ctx)
	if category == "" {
		return all
	}
	filtered := make([]content.Product, 0, len(all))
	for _, p := range all {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// GetProduct looks id up in storage, then among the built-in products.
func (s *ProductService) GetProduct(ctx context.Context, id string) (content.Product, error) {
	product, ok := loadOrDefault(ctx, content.KindProduct,
		func(ctx context.Context) (content.Product, error) {
			row, err := s.store.Products.Get(ctx, id)
			if err != nil {
				return content.Product{}, err
			}
			return mapper.ProductToEntity(*row), nil
		},
		func() (content.Product, bool) { return s.catalog.Product(id) },
	)
	if !ok {
		return content.Product{}, ErrProductNotFound
	}
	return product, nil
}

// SaveProduct validates and upserts p. Unknown categories are stored as
// "other" and an empty id is replaced with a new uuid.
func (s *ProductService) SaveProduct(ctx context.Context, p content.Product) (content.Product, error) {
	out := p.Clone()
	out.Name = strings.TrimSpace(out.Name)
	if out.Name == "" {
		return content.Product{}, ErrProductNameMissing
	}
	if !out.Category.Valid() {
		out.Category = content.CategoryOther
	}
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	out.Features = compactStrings(out.Features)
	out.Applications = compactStrings(out.Applications)

	row, err := mapper.ProductToRow(out)
	if err != nil {
		return content.Product{}, fmt.Errorf("save product: %w", err)
	}
	if err := s.store.Products.Upsert(ctx, &row); err != nil {
		return content.Product{}, fmt.Errorf("save product: %w", err)
	}
	return out, nil
}

// DeleteProduct removes a stored product.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.store.Products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// compactStrings trims entries and drops blank ones.
func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
