package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"elite_cards/internal/model"
	"elite_cards/internal/repository"
	applog "elite_cards/pkg/logger"
	"elite_cards/pkg/shopify"
)

// PriceChangeThreshold 价格变动超过 5% 才更新
var PriceChangeThreshold = decimal.RequireFromString("0.05")

// SyncResult 一次调价的统计
type SyncResult struct {
	Updated int      `json:"updated"`
	Checked int      `json:"checked"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// Message 结果摘要
func (r *SyncResult) Message() string {
	if r.Checked == 0 {
		return "No products with auto price sync enabled"
	}
	return fmt.Sprintf("Scheduled price sync completed. Updated %d products.", r.Updated)
}

// ==================== PriceSyncService 行情调价 ====================

// PriceSyncService 按卡牌行情更新目录价格，并推送到所有已上架的商户店铺
// 定时任务、cron 接口与管理员手动触发共用同一实例，同一时间只允许一次执行
type PriceSyncService struct {
	productRepo repository.ProductRepository
	addedRepo   repository.AddedProductRepository
	cards       CardSource
	shop        ShopifyProducts

	mu  sync.Mutex
	now func() time.Time
}

// NewPriceSyncService 工厂方法
func NewPriceSyncService(
	productRepo repository.ProductRepository,
	addedRepo repository.AddedProductRepository,
	cards CardSource,
	shop ShopifyProducts,
) *PriceSyncService {
	return &PriceSyncService{
		productRepo: productRepo,
		addedRepo:   addedRepo,
		cards:       cards,
		shop:        shop,
		now:         time.Now,
	}
}

// ShouldUpdate |new-old|/old 超过阈值时返回 true；原价为 0 时任何正价都更新
func ShouldUpdate(oldPrice, newPrice decimal.Decimal) bool {
	if !oldPrice.IsPositive() {
		return newPrice.IsPositive()
	}
	diff := newPrice.Sub(oldPrice).Abs().Div(oldPrice)
	return diff.GreaterThan(PriceChangeThreshold)
}

// SyncPrices 逐个商品检查行情，单个商品或商户失败只记录错误
func (s *PriceSyncService) SyncPrices(ctx context.Context) (*SyncResult, error) {
	if !s.mu.TryLock() {
		return nil, ErrSyncInProgress
	}
	defer s.mu.Unlock()

	products, err := s.productRepo.ListAutoSync(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询自动调价商品失败: %w", err)
	}

	result := &SyncResult{Errors: []string{}}
	if len(products) == 0 {
		applog.L().Info("[PriceSync] 没有开启自动调价的商品")
		return result, nil
	}

	applog.L().Info("[PriceSync] 开始调价", zap.Int("products", len(products)))
	start := time.Now()

	for i := range products {
		if ctx.Err() != nil {
			applog.L().Warn("[PriceSync] 任务被取消", zap.Error(ctx.Err()))
			result.Errors = append(result.Errors, fmt.Sprintf("sync aborted: %v", ctx.Err()))
			break
		}
		result.Checked++
		s.syncProduct(ctx, &products[i], result)
	}

	applog.L().Info("[PriceSync] 调价完成",
		zap.Int("checked", result.Checked),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", len(result.Errors)),
		zap.Duration("elapsed", time.Since(start)))

	return result, nil
}

func (s *PriceSyncService) syncProduct(ctx context.Context, product *model.Product, result *SyncResult) {
	log := applog.L().With(zap.String("product_id", product.ID), zap.String("title", product.Title))

	if product.PokemonCardID == "" {
		log.Warn("[PriceSync] 开启了自动调价但没有卡牌 ID，跳过")
		result.Skipped++
		return
	}

	// 1. 最新行情
	card, err := s.cards.GetCardByID(ctx, product.PokemonCardID)
	if err != nil {
		log.Error("[PriceSync] 获取卡牌失败", zap.Error(err))
		result.Errors = append(result.Errors, fmt.Sprintf("Product %s: %v", product.Title, err))
		return
	}
	pricing, err := s.cards.MarketPricing(ctx, card.Name, card.Set)
	if err != nil {
		log.Error("[PriceSync] 获取行情失败", zap.Error(err))
		result.Errors = append(result.Errors, fmt.Sprintf("Product %s: %v", product.Title, err))
		return
	}
	// 估算价只用于导入定价，不覆盖已有价格
	if pricing.Estimated {
		log.Warn("[PriceSync] 没有实时行情，跳过")
		result.Skipped++
		return
	}
	if !pricing.MarketPrice.IsPositive() {
		log.Warn("[PriceSync] 行情价无效，跳过", zap.String("market_price", pricing.MarketPrice.String()))
		result.Skipped++
		return
	}

	// 2. 死区判断
	if !ShouldUpdate(product.Price, pricing.MarketPrice) {
		log.Debug("[PriceSync] 价格变化未超过阈值",
			zap.String("price", product.Price.String()),
			zap.String("market_price", pricing.MarketPrice.String()))
		return
	}

	oldPrice := product.Price
	newPrice := pricing.MarketPrice.Round(2)

	// 3. 本地落库 (价格、行情快照、变体)
	if err := s.persistPrice(ctx, product, newPrice, &model.MarketData{
		LowPrice:    pricing.LowPrice,
		MidPrice:    pricing.MidPrice,
		HighPrice:   pricing.HighPrice,
		LastUpdated: pricing.LastUpdated,
	}); err != nil {
		log.Error("[PriceSync] 保存价格失败", zap.Error(err))
		result.Errors = append(result.Errors, fmt.Sprintf("Product %s: %v", product.Title, err))
		return
	}
	result.Updated++
	log.Info("[PriceSync] 价格已更新",
		zap.String("old", oldPrice.String()),
		zap.String("new", newPrice.String()))

	// 4. 推送到每个已上架的商户
	s.fanOut(ctx, product, newPrice, result)
}

func (s *PriceSyncService) persistPrice(ctx context.Context, product *model.Product, price decimal.Decimal, md *model.MarketData) error {
	product.Price = price
	if err := product.SetMarketData(md); err != nil {
		return err
	}

	return s.productRepo.Transaction(ctx, func(txRepo repository.ProductRepository) error {
		if err := txRepo.Update(ctx, product); err != nil {
			return err
		}
		if !product.IsSingle {
			return nil
		}
		return txRepo.ReplaceVariants(ctx, product.ID, model.BuildVariants(product))
	})
}

// fanOut 每个商户独立更新，某个商户 token 失效不影响其他商户
func (s *PriceSyncService) fanOut(ctx context.Context, product *model.Product, price decimal.Decimal, result *SyncResult) {
	linkages, err := s.addedRepo.ListActiveByProduct(ctx, product.ID)
	if err != nil {
		applog.L().Error("[PriceSync] 查询商户关联失败", zap.String("product_id", product.ID), zap.Error(err))
		result.Errors = append(result.Errors, fmt.Sprintf("Product %s: %v", product.Title, err))
		return
	}

	for i := range linkages {
		ap := &linkages[i]
		if ap.User == nil {
			applog.L().Error("[PriceSync] 关联的商户不存在",
				zap.String("linkage_id", ap.ID),
				zap.String("user_id", ap.UserID))
			result.Errors = append(result.Errors, fmt.Sprintf("user %s: %s: merchant not found", ap.UserID, product.Title))
			continue
		}
		shop := ap.User.ShopDomain

		err := s.shop.UpdatePrice(ctx, ap.User.AccessToken, shop, ap.ShopifyProductID, price, model.ConditionPrice)
		switch {
		case err == nil:
			if err := s.addedRepo.MarkSynced(ctx, ap.ID, s.now()); err != nil {
				applog.L().Warn("[PriceSync] 记录同步时间失败", zap.String("linkage_id", ap.ID), zap.Error(err))
			}
		case shopify.IsNotFound(err):
			// 商户已在店铺中删除该商品，关联退役，不再推送
			applog.L().Warn("[PriceSync] 远端商品不存在，关联已退役",
				zap.String("shop", shop),
				zap.String("shopify_product_id", ap.ShopifyProductID))
			if markErr := s.addedRepo.MarkRemoteDeleted(ctx, ap.ID, s.now()); markErr != nil {
				applog.L().Error("[PriceSync] 关联退役失败", zap.String("linkage_id", ap.ID), zap.Error(markErr))
			}
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s: %v", shop, product.Title, err))
		default:
			applog.L().Error("[PriceSync] 更新商户价格失败", zap.String("shop", shop), zap.Error(err))
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s: %v", shop, product.Title, err))
		}
	}
}
