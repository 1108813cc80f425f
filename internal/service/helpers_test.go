package service

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"elite_cards/internal/model"
	"elite_cards/pkg/pokemontcg"
	"elite_cards/pkg/shopify"
)

// ==================== 测试辅助 ====================

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

	err = db.AutoMigrate(&model.User{}, &model.Product{}, &model.ProductVariant{}, &model.AddedProduct{})
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, shop, role string) *model.User {
	u := &model.User{ShopDomain: shop, AccessToken: "tok-" + shop, Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedProduct(t *testing.T, db *gorm.DB, title, set, price string) *model.Product {
	p := &model.Product{
		Title:       title,
		Description: title + " desc",
		Price:       decimal.RequireFromString(price),
		Set:         set,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func notFoundErr(op string) error {
	return &shopify.APIError{Op: op, StatusCode: 404, Body: `{"errors":"Not Found"}`}
}

// ==================== Shopify 桩 ====================

type updateCall struct {
	Shop     string
	RemoteID string
	Price    decimal.Decimal
	LPPrice  decimal.Decimal
}

type fakeShop struct {
	mu sync.Mutex

	createErr map[string]error // 按商品标题
	deleteErr map[string]error // 按远端 ID
	updateErr map[string]error // 按店铺域名

	seq     int
	created []shopify.ProductInput
	deleted []string
	updated []updateCall
}

func newFakeShop() *fakeShop {
	return &fakeShop{
		createErr: map[string]error{},
		deleteErr: map[string]error{},
		updateErr: map[string]error{},
	}
}

func (f *fakeShop) CreateProduct(_ context.Context, _, _ string, in shopify.ProductInput) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.createErr[in.Title]; err != nil {
		return "", err
	}
	f.seq++
	f.created = append(f.created, in)
	return fmt.Sprintf("gid-%d", f.seq), nil
}

func (f *fakeShop) DeleteProduct(_ context.Context, _, _, remoteID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.deleteErr[remoteID]; err != nil {
		return err
	}
	f.deleted = append(f.deleted, remoteID)
	return nil
}

func (f *fakeShop) UpdatePrice(_ context.Context, _, shop, remoteID string, price decimal.Decimal, pricer shopify.VariantPricer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.updateErr[shop]; err != nil {
		return err
	}
	f.updated = append(f.updated, updateCall{
		Shop:     shop,
		RemoteID: remoteID,
		Price:    price,
		LPPrice:  pricer(price, "LP"),
	})
	return nil
}

// ==================== OAuth 桩 ====================

type fakeOAuth struct {
	hmacOK      bool
	exchangeErr error
	exchanged   int
}

func (f *fakeOAuth) AuthURL(shop, redirectURI, state string) string {
	q := url.Values{}
	q.Set("redirect_uri", redirectURI)
	q.Set("state", state)
	return "https://" + shop + "/admin/oauth/authorize?" + q.Encode()
}

func (f *fakeOAuth) VerifyHMAC(url.Values) (bool, error) {
	return f.hmacOK, nil
}

func (f *fakeOAuth) ValidateCallback(_ context.Context, p shopify.CallbackParams) (*shopify.Session, error) {
	f.exchanged++
	if f.exchangeErr != nil {
		return nil, f.exchangeErr
	}
	return &shopify.Session{Shop: p.Shop, AccessToken: "shpat-" + p.Code}, nil
}

// ==================== 卡牌数据源桩 ====================

type fakeCards struct {
	mu sync.Mutex

	cards    map[string]*pokemontcg.Card
	prices   map[string]pokemontcg.Pricing // 按卡名
	cardErr  map[string]error
	priceErr map[string]error // 按卡名，行情查询失败

	sets      []pokemontcg.Set
	setsCalls int

	lastQuery string
	lastSetID string
}

func newFakeCards() *fakeCards {
	return &fakeCards{
		cards:    map[string]*pokemontcg.Card{},
		prices:   map[string]pokemontcg.Pricing{},
		cardErr:  map[string]error{},
		priceErr: map[string]error{},
	}
}

func (f *fakeCards) addCard(id, name, set, market string) {
	f.cards[id] = &pokemontcg.Card{ID: id, Name: name, Set: set, Rarity: "Rare Holo", ImageURL: "https://img/" + id + ".png"}
	m := decimal.RequireFromString(market)
	f.prices[name] = pokemontcg.Pricing{MarketPrice: m, LowPrice: m, MidPrice: m, HighPrice: m}
}

func (f *fakeCards) SearchCards(_ context.Context, q string, page, pageSize int) (*pokemontcg.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastQuery = q
	var out []pokemontcg.Card
	for _, c := range f.cards {
		out = append(out, *c)
	}
	return &pokemontcg.SearchResult{Cards: out, Page: page, PageSize: pageSize, Count: len(out), TotalCount: len(out)}, nil
}

func (f *fakeCards) GetCardsFromSet(_ context.Context, setID string, page, pageSize int) (*pokemontcg.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastSetID = setID
	return &pokemontcg.SearchResult{Page: page, PageSize: pageSize}, nil
}

func (f *fakeCards) GetCardByID(_ context.Context, id string) (*pokemontcg.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.cardErr[id]; err != nil {
		return nil, err
	}
	c, ok := f.cards[id]
	if !ok {
		return nil, &pokemontcg.APIError{StatusCode: 404, Status: "Not Found"}
	}
	return c, nil
}

func (f *fakeCards) GetSets(context.Context) ([]pokemontcg.Set, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setsCalls++
	return f.sets, nil
}

func (f *fakeCards) MarketPricing(_ context.Context, name, _ string) (pokemontcg.Pricing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.priceErr[name]; err != nil {
		return pokemontcg.Pricing{}, err
	}
	return f.prices[name], nil
}
