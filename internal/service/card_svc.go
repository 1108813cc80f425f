package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"elite_cards/internal/api/dto"
	"elite_cards/internal/model"
	"elite_cards/pkg/cache"
	applog "elite_cards/pkg/logger"
	"elite_cards/pkg/pokemontcg"
)

const (
	defaultCardPageSize = 50
	cardSetsCacheKey    = "pokemontcg:sets"
	cardSetsCacheTTL    = time.Hour
)

// ==================== CardService 卡牌数据 ====================

type CardService struct {
	cards    CardSource
	products *ProductService
	cache    cache.Store
}

// NewCardService 工厂方法
func NewCardService(cards CardSource, products *ProductService, store cache.Store) *CardService {
	return &CardService{
		cards:    cards,
		products: products,
		cache:    store,
	}
}

// SearchCards 按系列或关键字搜索，setId 优先
func (s *CardService) SearchCards(ctx context.Context, req *dto.SearchCardsReq) (*dto.SearchCardsResp, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultCardPageSize
	}
	if pageSize > pokemontcg.DefaultPageSize {
		pageSize = pokemontcg.DefaultPageSize
	}

	var (
		res *pokemontcg.SearchResult
		err error
	)
	if req.SetID != "" {
		res, err = s.cards.GetCardsFromSet(ctx, req.SetID, page, pageSize)
	} else {
		res, err = s.cards.SearchCards(ctx, BuildCardQuery(req.Q), page, pageSize)
	}
	if err != nil {
		return nil, err
	}

	cards := res.Cards
	if cards == nil {
		cards = []pokemontcg.Card{}
	}
	return &dto.SearchCardsResp{
		Cards: cards,
		Pagination: dto.CardPagination{
			Page:     page,
			PageSize: pageSize,
			Total:    len(cards),
		},
	}, nil
}

// BuildCardQuery 纯文本按卡名前缀匹配，已是查询语法的原样透传
func BuildCardQuery(q string) string {
	q = strings.TrimSpace(q)
	switch {
	case q == "", strings.Contains(q, ":"):
		return q
	case strings.Contains(q, " "):
		return fmt.Sprintf(`name:"%s"`, q)
	default:
		return fmt.Sprintf("name:%s*", q)
	}
}

// GetSets 系列列表，缓存 1 小时
func (s *CardService) GetSets(ctx context.Context) ([]pokemontcg.Set, error) {
	if raw, err := s.cache.Get(ctx, cardSetsCacheKey); err == nil {
		var sets []pokemontcg.Set
		if json.Unmarshal([]byte(raw), &sets) == nil {
			return sets, nil
		}
	} else if !errors.Is(err, cache.ErrMiss) {
		applog.L().Warn("[Card] 读取系列缓存失败", zap.Error(err))
	}

	sets, err := s.cards.GetSets(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(sets); err == nil {
		if err := s.cache.Set(ctx, cardSetsCacheKey, string(raw), cardSetsCacheTTL); err != nil {
			applog.L().Warn("[Card] 写入系列缓存失败", zap.Error(err))
		}
	}
	return sets, nil
}

// GetCard 单卡详情 (含行情)
func (s *CardService) GetCard(ctx context.Context, id string) (*pokemontcg.Card, error) {
	card, err := s.cards.GetCardByID(ctx, id)
	if errors.Is(err, pokemontcg.ErrNotFound) {
		return nil, ErrCardNotFound
	}
	return card, err
}

// ImportCard 把卡牌导入目录，默认开启自动调价
func (s *CardService) ImportCard(ctx context.Context, req *dto.ImportCardReq, createdBy string) (*model.Product, error) {
	cardID := strings.TrimSpace(req.PokemonCardID)
	if cardID == "" {
		return nil, invalidField("pokemonCardId", "Pokemon card ID is required")
	}

	card, err := s.GetCard(ctx, cardID)
	if err != nil {
		return nil, err
	}

	// 行情查询失败时退回卡牌详情自带的行情
	pricing, err := s.cards.MarketPricing(ctx, card.Name, card.Set)
	if err != nil {
		applog.L().Warn("[Card] 查询行情失败，使用卡牌详情中的价格",
			zap.String("card_id", cardID), zap.Error(err))
		pricing = card.Pricing
	}
	if !pricing.MarketPrice.IsPositive() {
		pricing = pokemontcg.FallbackPricing(card.Name, card.Set, time.Now())
	}
	draft := pokemontcg.ConvertToProduct(card, pricing)

	product := &model.Product{
		Title:         draft.Title,
		Description:   draft.Description,
		Price:         draft.Price.Round(2),
		ImageURL:      draft.ImageURL,
		Set:           draft.Set,
		CreatedBy:     createdBy,
		IsSingle:      draft.IsSingle,
		PokemonCardID: draft.PokemonCardID,
		AutoPriceSync: true,
	}
	if req.CreateVariants != nil && !*req.CreateVariants {
		product.IsSingle = false
	}
	if err := product.SetMarketData(&model.MarketData{
		LowPrice:    pricing.LowPrice,
		MidPrice:    pricing.MidPrice,
		HighPrice:   pricing.HighPrice,
		LastUpdated: pricing.LastUpdated,
	}); err != nil {
		return nil, err
	}

	if err := s.products.saveNew(ctx, product); err != nil {
		return nil, err
	}

	applog.L().Info("[Card] 卡牌已导入目录",
		zap.String("card_id", cardID),
		zap.String("product_id", product.ID),
		zap.String("price", product.Price.String()))
	return product, nil
}
