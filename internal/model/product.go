package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Product 目录商品 (由管理员创建或从卡牌数据库导入)
type Product struct {
	BaseModel
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,4);not null" json:"price"`
	ImageURL    string          `gorm:"size:1024" json:"image_url"`
	Set         string          `gorm:"column:set;size:255;index;not null" json:"set"`
	Expansion   string          `gorm:"size:255" json:"expansion,omitempty"`
	CreatedBy   string          `gorm:"type:varchar(36);index" json:"created_by"`

	// 单卡会生成品相变体
	IsSingle bool `gorm:"default:false" json:"is_single"`

	// --- 卡牌数据源 ---
	PokemonCardID string         `gorm:"size:100;index" json:"pokemon_card_id,omitempty"`
	MarketData    datatypes.JSON `gorm:"type:jsonb" json:"market_data,omitempty" swaggertype:"object"`
	AutoPriceSync bool           `gorm:"default:false;index" json:"auto_price_sync"`

	// --- 关联 ---
	Variants []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"variants,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// MarketData 市场价格快照
type MarketData struct {
	LowPrice    decimal.Decimal `json:"low_price"`
	MidPrice    decimal.Decimal `json:"mid_price"`
	HighPrice   decimal.Decimal `json:"high_price"`
	LastUpdated time.Time       `json:"last_updated"`
}

// GetMarketData 解析市场价格快照，未设置时返回 nil
func (p *Product) GetMarketData() (*MarketData, error) {
	if len(p.MarketData) == 0 || string(p.MarketData) == "null" {
		return nil, nil
	}
	var md MarketData
	if err := json.Unmarshal(p.MarketData, &md); err != nil {
		return nil, err
	}
	return &md, nil
}

// SetMarketData 写入市场价格快照
func (p *Product) SetMarketData(md *MarketData) error {
	if md == nil {
		p.MarketData = nil
		return nil
	}
	raw, err := json.Marshal(md)
	if err != nil {
		return err
	}
	p.MarketData = datatypes.JSON(raw)
	return nil
}

// ProductVariant 单卡品相变体
type ProductVariant struct {
	BaseModel
	ProductID string          `gorm:"type:varchar(36);index;not null" json:"product_id"`
	Option1   string          `gorm:"size:100;not null" json:"option1"` // 品相
	Price     decimal.Decimal `gorm:"type:decimal(12,4);not null" json:"price"`
	SKU       string          `gorm:"column:sku;size:100" json:"sku"`
}

func (ProductVariant) TableName() string {
	return "product_variants"
}
