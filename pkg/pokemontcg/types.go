package pokemontcg

import (
	"github.com/shopspring/decimal"
)

// Card 整理后的卡牌数据
type Card struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Set      string  `json:"set"`
	SetID    string  `json:"setId"`
	Number   string  `json:"number"`
	Rarity   string  `json:"rarity"`
	ImageURL string  `json:"imageUrl"`
	Pricing  Pricing `json:"pricing"`
}

// SearchResult 分页搜索结果
type SearchResult struct {
	Cards      []Card `json:"data"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	Count      int    `json:"count"`
	TotalCount int    `json:"totalCount"`
}

// Set 卡牌系列
type Set struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Series      string `json:"series"`
	Total       int    `json:"total"`
	ReleaseDate string `json:"releaseDate"`
	SymbolURL   string `json:"symbolUrl"`
	LogoURL     string `json:"logoUrl"`
}

// ==================== 接口原始结构 ====================

type cardListResp struct {
	Data       []rawCard `json:"data"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	Count      int       `json:"count"`
	TotalCount int       `json:"totalCount"`
}

type rawCard struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
	Rarity string `json:"rarity"`
	Set    struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"set"`
	Images struct {
		Small string `json:"small"`
		Large string `json:"large"`
	} `json:"images"`
	TCGPlayer  *tcgplayerData  `json:"tcgplayer"`
	Cardmarket *cardmarketData `json:"cardmarket"`
}

type tcgplayerData struct {
	UpdatedAt string `json:"updatedAt"`
	Prices    struct {
		Normal          *priceTier `json:"normal"`
		Holofoil        *priceTier `json:"holofoil"`
		ReverseHolofoil *priceTier `json:"reverseHolofoil"`
	} `json:"prices"`
}

type priceTier struct {
	Low    decimal.Decimal `json:"low"`
	Mid    decimal.Decimal `json:"mid"`
	High   decimal.Decimal `json:"high"`
	Market decimal.Decimal `json:"market"`
}

type cardmarketData struct {
	UpdatedAt string            `json:"updatedAt"`
	Prices    *cardmarketPrices `json:"prices"`
}

type cardmarketPrices struct {
	AverageSellPrice decimal.Decimal `json:"averageSellPrice"`
	LowPrice         decimal.Decimal `json:"lowPrice"`
	TrendPrice       decimal.Decimal `json:"trendPrice"`
	SuggestedPrice   decimal.Decimal `json:"suggestedPrice"`
}

type rawSet struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Series      string `json:"series"`
	Total       int    `json:"total"`
	ReleaseDate string `json:"releaseDate"`
	Images      struct {
		Symbol string `json:"symbol"`
		Logo   string `json:"logo"`
	} `json:"images"`
}

func (s rawSet) toSet() Set {
	return Set{
		ID:          s.ID,
		Name:        s.Name,
		Series:      s.Series,
		Total:       s.Total,
		ReleaseDate: s.ReleaseDate,
		SymbolURL:   s.Images.Symbol,
		LogoURL:     s.Images.Logo,
	}
}
