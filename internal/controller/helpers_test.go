package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"elite_cards/internal/middleware"
	"elite_cards/internal/model"
	"elite_cards/internal/repository"
	"elite_cards/internal/service"
	"elite_cards/internal/task"
	"elite_cards/pkg/cache"
	"elite_cards/pkg/pokemontcg"
	"elite_cards/pkg/shopify"
)

func init() {
	gin.SetMode(gin.TestMode)
	UseJSONFieldNames()
	middleware.SetSessionConfig(&middleware.SessionConfig{SecretKey: "ctl-test-secret", TTL: time.Hour})
}

// ==================== 外部依赖桩 ====================

type stubShop struct {
	mu  sync.Mutex
	seq int
}

func (s *stubShop) CreateProduct(context.Context, string, string, shopify.ProductInput) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return fmt.Sprintf("gid-%d", s.seq), nil
}

func (s *stubShop) DeleteProduct(context.Context, string, string, string) error { return nil }

func (s *stubShop) UpdatePrice(context.Context, string, string, string, decimal.Decimal, shopify.VariantPricer) error {
	return nil
}

type busyTrigger struct{}

func (busyTrigger) TriggerPriceSync(context.Context) (*service.SyncResult, error) {
	return nil, service.ErrSyncInProgress
}

type stubOAuth struct{}

func (stubOAuth) AuthURL(shop, redirectURI, state string) string {
	return "https://" + shop + "/admin/oauth/authorize?state=" + url.QueryEscape(state)
}

func (stubOAuth) VerifyHMAC(url.Values) (bool, error) { return true, nil }

func (stubOAuth) ValidateCallback(_ context.Context, p shopify.CallbackParams) (*shopify.Session, error) {
	return &shopify.Session{Shop: p.Shop, AccessToken: "shpat-test"}, nil
}

// stubCards 所有调用返回同一个错误，err 为空时返回固定卡牌
type stubCards struct {
	err error
}

func (s stubCards) SearchCards(_ context.Context, _ string, page, pageSize int) (*pokemontcg.SearchResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &pokemontcg.SearchResult{Cards: []pokemontcg.Card{{ID: "base1-4", Name: "Charizard", Set: "Base"}}, Page: page, PageSize: pageSize}, nil
}

func (s stubCards) GetCardsFromSet(ctx context.Context, _ string, page, pageSize int) (*pokemontcg.SearchResult, error) {
	return s.SearchCards(ctx, "", page, pageSize)
}

func (s stubCards) GetCardByID(_ context.Context, id string) (*pokemontcg.Card, error) {
	if s.err != nil {
		return nil, s.err
	}
	if id != "base1-4" {
		return nil, &pokemontcg.APIError{StatusCode: http.StatusNotFound, Status: "Not Found"}
	}
	return &pokemontcg.Card{ID: id, Name: "Charizard", Set: "Base", ImageURL: "https://img/base1-4.png"}, nil
}

func (s stubCards) GetSets(context.Context) ([]pokemontcg.Set, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []pokemontcg.Set{{ID: "base1", Name: "Base"}}, nil
}

func (s stubCards) MarketPricing(context.Context, string, string) (pokemontcg.Pricing, error) {
	if s.err != nil {
		return pokemontcg.Pricing{}, s.err
	}
	p := decimal.RequireFromString("250")
	return pokemontcg.Pricing{MarketPrice: p, LowPrice: p, MidPrice: p, HighPrice: p}, nil
}

// ==================== 测试应用 ====================

type testApp struct {
	db     *gorm.DB
	router *gin.Engine
	admin  *model.User
	user   *model.User
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.User{}, &model.Product{}, &model.ProductVariant{}, &model.AddedProduct{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

// newTestApp 按生产路由结构注册控制器
func newTestApp(t *testing.T, cards service.CardSource) *testApp {
	db := setupTestDB(t)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	addedRepo := repository.NewAddedProductRepository(db)
	shop := &stubShop{}

	productSvc := service.NewProductService(productRepo, addedRepo)
	authCtl := NewAuthController(service.NewAuthService(userRepo, stubOAuth{}, cache.NewMemoryStore(), middleware.CreateSession, service.AuthConfig{
		RedirectURI: "http://localhost/api/auth/callback",
		VerifyHMAC:  true,
	}))
	productCtl := NewProductController(productSvc)
	storeCtl := NewStoreController(service.NewStoreService(productRepo, addedRepo, userRepo, shop))
	userCtl := NewUserController(service.NewUserService(userRepo))
	cardCtl := NewCardController(service.NewCardService(cards, productSvc, cache.NewMemoryStore()))
	tasks, err := task.NewTaskManager(&task.TaskManagerDeps{
		PriceSyncer: service.NewPriceSyncService(productRepo, addedRepo, cards, shop),
	}, nil)
	require.NoError(t, err)
	syncCtl := NewSyncController(tasks)
	expCtl := NewExpansionController()

	r := gin.New()
	api := r.Group("/api")
	api.GET("/auth/install", authCtl.Install)
	api.GET("/auth/callback", authCtl.Callback)
	api.POST("/auth/logout", authCtl.Logout)
	api.GET("/auth/session", middleware.SessionAuth(), authCtl.Session)
	api.GET("/cron/sync-prices", middleware.CronAuth("cron-secret"), syncCtl.CronSyncPrices)

	authed := api.Group("", middleware.SessionAuth(), middleware.AuditContext())
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	authed.GET("/products", productCtl.ListProducts)
	authed.GET("/products/search", productCtl.SearchProducts)
	authed.GET("/products/added", productCtl.AddedProducts)
	authed.GET("/products/:id", productCtl.GetProduct)
	authed.POST("/products", adminOnly, productCtl.CreateProduct)
	authed.PUT("/products/:id", adminOnly, productCtl.UpdateProduct)
	authed.DELETE("/products/:id", adminOnly, productCtl.DeleteProduct)
	authed.POST("/store/push", storeCtl.Push)
	authed.POST("/store/remove", storeCtl.Remove)
	authed.POST("/store/add-all-from-set", storeCtl.AddAllFromSet)
	authed.POST("/store/remove-all-from-set", storeCtl.RemoveAllFromSet)
	authed.GET("/expansions", expCtl.ListExpansions)

	admin := authed.Group("/admin", adminOnly)
	admin.GET("/users", userCtl.ListUsers)
	admin.POST("/users/role", userCtl.UpdateRole)
	admin.POST("/push-to-user", storeCtl.PushToUser)
	admin.POST("/sync-prices",
		middleware.GlobalSyncRateLimit(middleware.NewSyncRateLimiter(), middleware.SyncTypePrice, 0),
		syncCtl.SyncPrices)

	cardsGroup := authed.Group("/cards", adminOnly)
	cardsGroup.GET("/search", cardCtl.SearchCards)
	cardsGroup.GET("/sets", cardCtl.GetSets)
	cardsGroup.GET("/:id", cardCtl.GetCard)
	cardsGroup.POST("/import", cardCtl.ImportCard)

	app := &testApp{db: db, router: r}
	app.admin = app.seedUser(t, "admin.myshopify.com", model.RoleAdmin)
	app.user = app.seedUser(t, "merchant.myshopify.com", model.RoleEndUser)
	return app
}

func (a *testApp) seedUser(t *testing.T, shop, role string) *model.User {
	u := &model.User{ShopDomain: shop, AccessToken: "tok", Role: role}
	require.NoError(t, a.db.Create(u).Error)
	return u
}

func (a *testApp) seedProduct(t *testing.T, title, set string) *model.Product {
	p := &model.Product{Title: title, Description: title, Price: decimal.NewFromInt(10), Set: set}
	require.NoError(t, a.db.Create(p).Error)
	return p
}

func sessionFor(t *testing.T, u *model.User) string {
	token, err := middleware.CreateSession(u.ID, u.ShopDomain, u.Role)
	require.NoError(t, err)
	return token
}

// ==================== 请求构造辅助 ====================

func performRequest(r http.Handler, method, path string, body interface{}, session string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: session})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}
