package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"elite_cards/internal/config"
	"elite_cards/internal/controller"
	"elite_cards/internal/middleware"
	"elite_cards/internal/model"
	"elite_cards/internal/repository"
	"elite_cards/internal/router"
	"elite_cards/internal/service"
	"elite_cards/internal/task"
	"elite_cards/pkg/cache"
	"elite_cards/pkg/database"
	applog "elite_cards/pkg/logger"
	"elite_cards/pkg/pokemontcg"
	"elite_cards/pkg/shopify"
)

// @title Elite Cards API
// @version 1.0
// @description 宝可梦卡牌目录与 Shopify 商户店铺同步服务
// @BasePath /
func main() {
	// 1. 加载配置与日志
	cfg, err := config.Load()
	if err != nil {
		_, _ = applog.Init("development", "info")
		applog.L().Fatal("加载配置失败", zap.Error(err))
	}
	if _, err := applog.Init(cfg.Environment, cfg.LogLevel); err != nil {
		applog.L().Fatal("初始化日志失败", zap.Error(err))
	}
	defer applog.Sync()

	initSession(cfg)

	// 2. 初始化数据库
	db := initDatabase(cfg)

	// 3. 初始化依赖
	deps := initDependencies(cfg, db)
	defer deps.Close()

	// 4. 启动定时任务
	deps.Tasks.Start()
	defer deps.Tasks.Stop()

	// 5. 初始化路由
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	router.InitRoutes(r, deps.Controllers, router.Options{
		CORSOrigins: cfg.Server.CORSOrigins,
		CronSecret:  cfg.Cron.Secret,
	})

	// 6. 启动服务
	startServer(r, cfg.Server.Port)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Cache       cache.Store
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
	Tasks       *task.TaskManager

	closers []func() error
}

// Repositories 仓库集合
type Repositories struct {
	User         repository.UserRepository
	Product      repository.ProductRepository
	AddedProduct repository.AddedProductRepository
}

// Services 服务集合
type Services struct {
	Auth      *service.AuthService
	Product   *service.ProductService
	Store     *service.StoreService
	User      *service.UserService
	Card      *service.CardService
	PriceSync *service.PriceSyncService
}

// Close 释放外部连接
func (d *Dependencies) Close() {
	for _, closeFn := range d.closers {
		if err := closeFn(); err != nil {
			applog.L().Warn("释放资源失败", zap.Error(err))
		}
	}
}

// ==================== 初始化函数 ====================

// initSession 会话签名配置
func initSession(cfg *config.Config) {
	secret, fallback := cfg.SessionSecretOrDefault()
	if fallback {
		applog.L().Warn("SESSION_SECRET 未配置，使用不安全的默认密钥，仅限本地开发")
	}
	middleware.SetSessionConfig(&middleware.SessionConfig{
		SecretKey: secret,
		TTL:       cfg.Session.TTL,
	})
}

// initDatabase 初始化数据库
func initDatabase(cfg *config.Config) *gorm.DB {
	db := database.InitDB(cfg.Database.URL, cfg.Environment == "development",
		&model.User{},
		&model.Product{}, &model.ProductVariant{},
		&model.AddedProduct{},
	)
	if err := middleware.RegisterAuditCallbacks(db); err != nil {
		applog.L().Fatal("注册审计回调失败", zap.Error(err))
	}
	return db
}

// initCache Redis 可用时共享 OAuth state 与卡牌系列缓存，否则退化为进程内缓存
func initCache(cfg *config.Config) (cache.Store, func() error) {
	if cfg.Redis.Addr == "" {
		applog.L().Info("未配置 REDIS_ADDR，使用内存缓存")
		mem := cache.NewMemoryStore()
		return mem, mem.Close
	}
	store, err := cache.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		applog.L().Warn("Redis 连接失败，退化为内存缓存", zap.Error(err))
		mem := cache.NewMemoryStore()
		return mem, mem.Close
	}
	return store, store.Close
}

// initDependencies 初始化所有依赖
func initDependencies(cfg *config.Config, db *gorm.DB) *Dependencies {
	deps := &Dependencies{DB: db}

	// -------- 基础设施 --------
	store, closeFn := initCache(cfg)
	deps.Cache = store
	if closeFn != nil {
		deps.closers = append(deps.closers, closeFn)
	}

	shopifyClient := shopify.NewClient(&shopify.Config{
		APIKey:     cfg.Shopify.APIKey,
		APISecret:  cfg.Shopify.APISecret,
		Scopes:     cfg.Shopify.Scopes,
		APIVersion: cfg.Shopify.APIVersion,
		Timeout:    cfg.Shopify.Timeout,
	})
	if !shopifyClient.Configured() {
		applog.L().Warn("Shopify API 凭证未配置，安装授权将失败")
	}
	cardClient := pokemontcg.NewClient(pokemontcg.Config{
		APIKey:  cfg.PokemonTCG.APIKey,
		BaseURL: cfg.PokemonTCG.BaseURL,
		Timeout: cfg.PokemonTCG.Timeout,
	})

	// -------- Repo 层 --------
	deps.Repos = &Repositories{
		User:         repository.NewUserRepository(db),
		Product:      repository.NewProductRepository(db),
		AddedProduct: repository.NewAddedProductRepository(db),
	}

	// -------- 业务服务 --------
	svc := &Services{}
	svc.Auth = service.NewAuthService(deps.Repos.User, shopifyClient, store, middleware.CreateSession, service.AuthConfig{
		RedirectURI:      cfg.ShopifyRedirectURI(),
		VerifyHMAC:       cfg.Shopify.VerifyHMAC,
		AdminShopDomains: cfg.Shopify.AdminShopDomains,
	})
	svc.Product = service.NewProductService(deps.Repos.Product, deps.Repos.AddedProduct)
	svc.Store = service.NewStoreService(deps.Repos.Product, deps.Repos.AddedProduct, deps.Repos.User, shopifyClient)
	svc.Store.SetConcurrency(cfg.Store.BulkConcurrency)
	svc.User = service.NewUserService(deps.Repos.User)
	svc.Card = service.NewCardService(cardClient, svc.Product, store)
	svc.PriceSync = service.NewPriceSyncService(deps.Repos.Product, deps.Repos.AddedProduct, cardClient, shopifyClient)
	deps.Services = svc

	// -------- 定时任务 --------
	taskCfg := task.DefaultConfig()
	taskCfg.PriceSyncEnabled = cfg.Cron.PriceSyncEnable
	if cfg.Cron.PriceSyncSpec != "" {
		taskCfg.PriceSyncSpec = cfg.Cron.PriceSyncSpec
	}
	tasks, err := task.NewTaskManager(&task.TaskManagerDeps{PriceSyncer: svc.PriceSync}, taskCfg)
	if err != nil {
		applog.L().Fatal("初始化定时任务失败", zap.Error(err))
	}
	deps.Tasks = tasks

	// -------- Controller 层 --------
	deps.Controllers = &router.Controllers{
		Auth:      controller.NewAuthController(svc.Auth),
		Product:   controller.NewProductController(svc.Product),
		Store:     controller.NewStoreController(svc.Store),
		User:      controller.NewUserController(svc.User),
		Card:      controller.NewCardController(svc.Card),
		Sync:      controller.NewSyncController(deps.Tasks),
		Expansion: controller.NewExpansionController(),
	}

	return deps
}

// ==================== 服务启动 ====================

// startServer 启动服务并等待退出信号
func startServer(r *gin.Engine, port string) {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		applog.L().Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			applog.L().Fatal("服务启动失败", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	applog.L().Info("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		applog.L().Error("服务强制关闭", zap.Error(err))
		return
	}

	applog.L().Info("服务已退出")
}
