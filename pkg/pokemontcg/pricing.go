package pokemontcg

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Pricing 单卡行情
type Pricing struct {
	MarketPrice decimal.Decimal `json:"marketPrice"`
	LowPrice    decimal.Decimal `json:"lowPrice"`
	MidPrice    decimal.Decimal `json:"midPrice"`
	HighPrice   decimal.Decimal `json:"highPrice"`
	LastUpdated time.Time       `json:"lastUpdated"`
	Estimated   bool            `json:"estimated,omitempty"` // 无实时行情，按稀有度估算
}

var (
	minFallbackPrice = decimal.RequireFromString("0.1")
	lowFactor        = decimal.RequireFromString("0.7")
	highFactor       = decimal.RequireFromString("1.3")
)

// 估算价系数
var rarityMultipliers = map[string]decimal.Decimal{
	"Common":       decimal.RequireFromString("0.1"),
	"Uncommon":     decimal.RequireFromString("0.25"),
	"Rare":         decimal.RequireFromString("0.5"),
	"Rare Holo":    decimal.NewFromInt(1),
	"Rare Ultra":   decimal.NewFromInt(2),
	"Rare Secret":  decimal.NewFromInt(5),
	"Amazing Rare": decimal.NewFromInt(3),
	"Radiant Rare": decimal.RequireFromString("2.5"),
}

var setMultipliers = map[string]decimal.Decimal{
	"base":           decimal.NewFromInt(10),
	"jungle":         decimal.NewFromInt(8),
	"fossil":         decimal.NewFromInt(7),
	"team-rocket":    decimal.NewFromInt(6),
	"gym-heroes":     decimal.NewFromInt(5),
	"gym-challenge":  decimal.NewFromInt(5),
	"neo-genesis":    decimal.NewFromInt(4),
	"neo-discovery":  decimal.NewFromInt(4),
	"neo-revelation": decimal.NewFromInt(4),
	"neo-destiny":    decimal.NewFromInt(4),
}

// extractPricing 依次取 TCGPlayer、Cardmarket，都没有时估算
func extractPricing(card *rawCard, now time.Time) Pricing {
	if tp := card.TCGPlayer; tp != nil {
		tier := tp.Prices.Normal
		if tier == nil {
			tier = tp.Prices.Holofoil
		}
		if tier == nil {
			tier = tp.Prices.ReverseHolofoil
		}
		if tier != nil {
			return Pricing{
				MarketPrice: firstNonZero(tier.Market, tier.Mid),
				LowPrice:    tier.Low,
				MidPrice:    tier.Mid,
				HighPrice:   tier.High,
				LastUpdated: parseUpdatedAt(tp.UpdatedAt, now),
			}
		}
	}

	if cm := card.Cardmarket; cm != nil && cm.Prices != nil {
		p := cm.Prices
		return Pricing{
			MarketPrice: firstNonZero(p.AverageSellPrice, p.TrendPrice),
			LowPrice:    p.LowPrice,
			MidPrice:    p.AverageSellPrice,
			HighPrice:   firstNonZero(p.SuggestedPrice, p.TrendPrice),
			LastUpdated: parseUpdatedAt(cm.UpdatedAt, now),
		}
	}

	return FallbackPricing(card.Name, card.Set.Name, now)
}

// FallbackPricing 按卡名推断稀有度，结合系列系数估算价格
func FallbackPricing(cardName, setName string, now time.Time) Pricing {
	base := fallbackPrice(cardName, setName)
	return Pricing{
		MarketPrice: base,
		LowPrice:    base.Mul(lowFactor),
		MidPrice:    base,
		HighPrice:   base.Mul(highFactor),
		LastUpdated: now,
		Estimated:   true,
	}
}

func fallbackPrice(cardName, setName string) decimal.Decimal {
	rarity, ok := rarityMultipliers[ExtractRarity(cardName)]
	if !ok {
		rarity = decimal.NewFromInt(1)
	}
	set, ok := setMultipliers[strings.ToLower(setName)]
	if !ok {
		set = decimal.NewFromInt(1)
	}
	return decimal.Max(minFallbackPrice, rarity.Mul(set))
}

// ExtractRarity 从卡名关键字推断稀有度，默认 Rare
func ExtractRarity(cardName string) string {
	switch {
	case strings.Contains(cardName, "Secret"), strings.Contains(cardName, "Rainbow"):
		return "Rare Secret"
	case strings.Contains(cardName, "Ultra"), strings.Contains(cardName, "GX"), strings.Contains(cardName, "VMAX"):
		return "Rare Ultra"
	case strings.Contains(cardName, "Holo"):
		return "Rare Holo"
	case strings.Contains(cardName, "Amazing"):
		return "Amazing Rare"
	case strings.Contains(cardName, "Radiant"):
		return "Radiant Rare"
	}
	return "Rare"
}

func firstNonZero(values ...decimal.Decimal) decimal.Decimal {
	for _, v := range values {
		if !v.IsZero() {
			return v
		}
	}
	return decimal.Zero
}

// 接口返回的日期格式为 2006/01/02
func parseUpdatedAt(s string, now time.Time) time.Time {
	for _, layout := range []string{"2006/01/02", time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return now
}

// ==================== 商品转换 ====================

// ProductDraft 由卡牌生成的目录商品草稿
type ProductDraft struct {
	Title         string
	Description   string
	Price         decimal.Decimal
	ImageURL      string
	Set           string
	IsSingle      bool
	PokemonCardID string
	Pricing       Pricing
}

// ConvertToProduct 卡牌转目录商品，价格取行情市场价
func ConvertToProduct(card *Card, pricing Pricing) ProductDraft {
	return ProductDraft{
		Title:         fmt.Sprintf("%s (%s)", card.Name, card.Set),
		Description:   fmt.Sprintf("Pokemon TCG %s from %s set. %s rarity card.", card.Name, card.Set, card.Rarity),
		Price:         pricing.MarketPrice,
		ImageURL:      card.ImageURL,
		Set:           card.Set,
		IsSingle:      true,
		PokemonCardID: card.ID,
		Pricing:       pricing,
	}
}
