package dto

import (
	"elite_cards/pkg/pokemontcg"
)

// SearchCardsReq 卡牌搜索，setId 优先于 q
type SearchCardsReq struct {
	Q        string `form:"q"`
	SetID    string `form:"setId"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

// ImportCardReq 导入卡牌到目录
type ImportCardReq struct {
	PokemonCardID  string `json:"pokemonCardId" binding:"required"`
	CreateVariants *bool  `json:"createVariants"` // 默认生成品相变体
}

// CardPagination 卡牌分页信息
type CardPagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

// SearchCardsResp 卡牌搜索结果
type SearchCardsResp struct {
	Cards      []pokemontcg.Card `json:"cards"`
	Pagination CardPagination    `json:"pagination"`
}
