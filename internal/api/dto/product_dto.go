package dto

import (
	"github.com/shopspring/decimal"

	"elite_cards/internal/model"
)

// ==================== 请求 DTO ====================

// CreateProductReq 管理员创建目录商品
type CreateProductReq struct {
	Title       string          `json:"title" binding:"required,max=255"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price" swaggertype:"string"`
	ImageURL    string          `json:"imageUrl" binding:"required"`
	Set         string          `json:"set" binding:"required"`
	Expansion   string          `json:"expansion"`
	IsSingle    bool            `json:"isSingle"` // 单卡会生成品相变体
}

// UpdateProductReq 部分更新，未传字段保持不变
type UpdateProductReq struct {
	Title         *string          `json:"title"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price" swaggertype:"string"`
	ImageURL      *string          `json:"imageUrl"`
	Set           *string          `json:"set"`
	Expansion     *string          `json:"expansion"`
	IsSingle      *bool            `json:"isSingle"`
	AutoPriceSync *bool            `json:"autoPriceSync"`
}

// Empty 是否没有任何字段
func (r *UpdateProductReq) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Price == nil && r.ImageURL == nil &&
		r.Set == nil && r.Expansion == nil && r.IsSingle == nil && r.AutoPriceSync == nil
}

// SearchProductsReq 商品搜索
type SearchProductsReq struct {
	Q     string `form:"q"`
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
}

// ==================== 响应 DTO ====================

// Pagination 分页信息
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

// NewPagination 由总数计算分页信息
func NewPagination(page, perPage int, total int64) Pagination {
	totalPages := 0
	if perPage > 0 {
		totalPages = int((total + int64(perPage) - 1) / int64(perPage))
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: perPage,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

// SearchProductsResp 搜索结果
type SearchProductsResp struct {
	Products   []model.Product `json:"products"`
	Pagination Pagination      `json:"pagination"`
}
