package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stylencms/internal/handler"
)

// Config holds the engine level settings.
type Config struct {
	SessionSecret string
	GinMode       string
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, cfg Config) *gin.Engine {
	var r *gin.Engine
	if cfg.GinMode == gin.DebugMode {
		r = gin.Default()
	} else {
		r = gin.New()
		r.Use(gin.Recovery())
	}

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{Path: "/", MaxAge: 7 * 24 * 3600, HttpOnly: true})
	r.Use(sessions.Sessions("stylencms_session", store))

	r.GET("/healthz", api.HealthCheck)

	// 公开接口
	public := r.Group("/api")
	{
		public.GET("/pages/*slug", api.ShowPage)
		public.GET("/products", api.ListProducts)
		public.GET("/products/:id", api.GetProduct)
		public.GET("/menus", api.GetMenus)
		public.GET("/settings", api.ShowSettings)
		public.POST("/leads", api.SubmitLead)
	}

	admin := r.Group("/admin/api")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/me", api.Me)

			auth.GET("/pages", api.ListPages)
			auth.POST("/pages", api.CreatePage)
			auth.GET("/pages/:id", api.GetPage)
			auth.PUT("/pages/:id", api.SavePage)
			auth.DELETE("/pages/:id", api.DeletePage)
			auth.POST("/pages/:id/duplicate", api.DuplicatePage)
			auth.GET("/pages/:id/sections/:section", api.GetSection)
			auth.PATCH("/pages/:id/sections/:section", api.UpdateSection)

			auth.GET("/products", api.ListProducts)
			auth.POST("/products", api.CreateProduct)
			auth.PUT("/products/:id", api.UpdateProduct)
			auth.DELETE("/products/:id", api.DeleteProduct)

			auth.GET("/menus", api.GetMenus)
			auth.PUT("/menus", api.SaveMenus)

			auth.GET("/settings", api.GetSettings)
			auth.PUT("/settings", api.SaveSettings)

			auth.GET("/media", api.ListMedia)
			auth.POST("/media", api.UploadMedia)
			auth.POST("/media/url", api.AddMediaURL)
			auth.DELETE("/media/:id", api.DeleteMedia)

			auth.GET("/leads", api.ListLeads)
			auth.POST("/leads/:id/sync", api.SyncLead)

			auth.POST("/seed", api.RunSeed)
		}
	}

	return r
}
