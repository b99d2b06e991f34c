package handler

import (
	"github.com/stylencms/internal/content"
	"github.com/stylencms/internal/service"
	"github.com/stylencms/internal/store"
	"github.com/stylencms/internal/view"
	"gorm.io/gorm"
)

// Options configures NewAPI.
type Options struct {
	MediaMaxBytes int
	Leads         service.LeadOptions
}

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db       *gorm.DB
	pages    *service.PageService
	products *service.ProductService
	menus    *service.MenuService
	settings *service.SettingsService
	media    *service.MediaService
	leads    *service.LeadService
	seed     *service.SeedService
	users    *service.UserService
	renderer *view.Renderer
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, catalog *content.Catalog, opts Options) *API {
	st := store.New(gdb)
	settings := service.NewSettingsService(st, catalog)

	return &API{
		db:       gdb,
		pages:    service.NewPageService(st, catalog),
		products: service.NewProductService(st, catalog),
		menus:    service.NewMenuService(st, catalog),
		settings: settings,
		media:    service.NewMediaService(st, opts.MediaMaxBytes),
		leads:    service.NewLeadService(st, settings, opts.Leads),
		seed:     service.NewSeedService(st, catalog),
		users:    service.NewUserService(gdb),
		renderer: view.NewRenderer(),
	}
}

// Seeder exposes the reconciliation service for startup seeding.
func (a *API) Seeder() *service.SeedService {
	return a.seed
}
