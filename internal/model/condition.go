package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Condition 单卡品相及其相对基础价的折扣系数
type Condition struct {
	Label    string
	Code     string
	Fraction decimal.Decimal
}

// Conditions 单卡品相表，顺序即变体顺序
var Conditions = []Condition{
	{Label: "Near Mint", Code: "NM", Fraction: decimal.NewFromInt(1)},
	{Label: "Lightly Played", Code: "LP", Fraction: decimal.RequireFromString("0.8")},
	{Label: "Moderately Played", Code: "MP", Fraction: decimal.RequireFromString("0.6")},
}

// ConditionByLabel 按品相名查找 (忽略大小写)
func ConditionByLabel(label string) (Condition, bool) {
	for _, c := range Conditions {
		if strings.EqualFold(c.Label, strings.TrimSpace(label)) {
			return c, true
		}
	}
	return Condition{}, false
}

// ConditionPrice 计算某品相的价格，未知品相按基础价
func ConditionPrice(base decimal.Decimal, label string) decimal.Decimal {
	if c, ok := ConditionByLabel(label); ok {
		return base.Mul(c.Fraction)
	}
	return base
}

// BuildVariants 按品相表生成变体 (未落库)
func BuildVariants(p *Product) []ProductVariant {
	variants := make([]ProductVariant, 0, len(Conditions))
	for _, c := range Conditions {
		variants = append(variants, ProductVariant{
			ProductID: p.ID,
			Option1:   c.Label,
			Price:     p.Price.Mul(c.Fraction),
			SKU:       variantSKU(p, c),
		})
	}
	return variants
}

func variantSKU(p *Product, c Condition) string {
	prefix := p.PokemonCardID
	if prefix == "" && len(p.ID) >= 8 {
		prefix = p.ID[:8]
	}
	return strings.ToUpper("EC-" + prefix + "-" + c.Code)
}
