package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"elite_cards/internal/controller"
	"elite_cards/internal/middleware"
	"elite_cards/internal/model"

	_ "elite_cards/docs"
)

// Controllers 路由依赖的控制器
type Controllers struct {
	Auth      *controller.AuthController
	Product   *controller.ProductController
	Store     *controller.StoreController
	User      *controller.UserController
	Card      *controller.CardController
	Sync      *controller.SyncController
	Expansion *controller.ExpansionController
}

// Options 路由级配置
type Options struct {
	CORSOrigins []string
	CronSecret  string
	SyncLimiter *middleware.SyncRateLimiter // nil 时使用全局限流器
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, ctl *Controllers, opts Options) {
	controller.UseJSONFieldNames()
	r.Use(middleware.CORS(opts.CORSOrigins))

	// 1. Swagger 文档与健康检查
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// 2. 授权 (无需会话)
	auth := api.Group("/auth")
	{
		// GET /api/auth/install?shop=xxx.myshopify.com
		auth.GET("/install", ctl.Auth.Install)
		auth.GET("/callback", ctl.Auth.Callback)
		auth.POST("/logout", ctl.Auth.Logout)
		auth.GET("/session", middleware.SessionAuth(), ctl.Auth.Session)
	}

	// 3. 外部定时器
	api.GET("/cron/sync-prices", middleware.CronAuth(opts.CronSecret), ctl.Sync.CronSyncPrices)

	// 4. 已登录商户
	authed := api.Group("", middleware.SessionAuth(), middleware.AuditContext())
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	products := authed.Group("/products")
	{
		products.GET("", ctl.Product.ListProducts)
		products.GET("/search", ctl.Product.SearchProducts)
		products.GET("/added", ctl.Product.AddedProducts)
		products.GET("/:id", ctl.Product.GetProduct)

		products.POST("", adminOnly, ctl.Product.CreateProduct)
		products.PUT("/:id", adminOnly, ctl.Product.UpdateProduct)
		products.DELETE("/:id", adminOnly, ctl.Product.DeleteProduct)
	}

	store := authed.Group("/store")
	{
		store.POST("/push", ctl.Store.Push)
		store.POST("/remove", ctl.Store.Remove)
		store.POST("/add-all-from-set", ctl.Store.AddAllFromSet)
		store.POST("/remove-all-from-set", ctl.Store.RemoveAllFromSet)
	}

	authed.GET("/expansions", ctl.Expansion.ListExpansions)

	// 5. 管理员
	admin := authed.Group("/admin", adminOnly)
	{
		admin.GET("/users", ctl.User.ListUsers)
		admin.POST("/users/role", ctl.User.UpdateRole)
		admin.POST("/push-to-user", ctl.Store.PushToUser)
		admin.POST("/sync-prices",
			middleware.GlobalSyncRateLimit(opts.SyncLimiter, middleware.SyncTypePrice, 0),
			ctl.Sync.SyncPrices,
		)
	}

	cards := authed.Group("/cards", adminOnly)
	{
		cards.GET("/search", ctl.Card.SearchCards)
		cards.GET("/sets", ctl.Card.GetSets)
		cards.GET("/:id", ctl.Card.GetCard)
		cards.POST("/import", ctl.Card.ImportCard)
	}
}
