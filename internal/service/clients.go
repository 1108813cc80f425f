package service

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"

	"elite_cards/pkg/pokemontcg"
	"elite_cards/pkg/shopify"
)

// ==================== 外部依赖接口 ====================
// 由 pkg/shopify.Client 与 pkg/pokemontcg.Client 实现，测试中替换为桩

// ShopifyOAuth 安装授权
type ShopifyOAuth interface {
	AuthURL(shop, redirectURI, state string) string
	VerifyHMAC(query url.Values) (bool, error)
	ValidateCallback(ctx context.Context, p shopify.CallbackParams) (*shopify.Session, error)
}

// ShopifyProducts 商户店铺商品操作
type ShopifyProducts interface {
	CreateProduct(ctx context.Context, accessToken, shopDomain string, in shopify.ProductInput) (string, error)
	DeleteProduct(ctx context.Context, accessToken, shopDomain, remoteID string) error
	UpdatePrice(ctx context.Context, accessToken, shopDomain, remoteID string, newPrice decimal.Decimal, pricer shopify.VariantPricer) error
}

// CardSource 卡牌数据源
type CardSource interface {
	SearchCards(ctx context.Context, query string, page, pageSize int) (*pokemontcg.SearchResult, error)
	GetCardsFromSet(ctx context.Context, setID string, page, pageSize int) (*pokemontcg.SearchResult, error)
	GetCardByID(ctx context.Context, id string) (*pokemontcg.Card, error)
	GetSets(ctx context.Context) ([]pokemontcg.Set, error)
	MarketPricing(ctx context.Context, cardName, setName string) (pokemontcg.Pricing, error)
}

var (
	_ ShopifyOAuth    = (*shopify.Client)(nil)
	_ ShopifyProducts = (*shopify.Client)(nil)
	_ CardSource      = (*pokemontcg.Client)(nil)
)
