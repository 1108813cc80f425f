package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"elite_cards/internal/api/dto"
	"elite_cards/internal/model"
	"elite_cards/internal/repository"
	applog "elite_cards/pkg/logger"
)

const defaultSearchLimit = 25

type ProductService struct {
	productRepo repository.ProductRepository
	addedRepo   repository.AddedProductRepository
}

// NewProductService 工厂方法
func NewProductService(productRepo repository.ProductRepository, addedRepo repository.AddedProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		addedRepo:   addedRepo,
	}
}

// ==================== 创建 ====================

// CreateProduct 创建目录商品，单卡同时生成品相变体
func (s *ProductService) CreateProduct(ctx context.Context, req *dto.CreateProductReq, createdBy string) (*model.Product, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	product := &model.Product{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Set:         strings.TrimSpace(req.Set),
		Expansion:   req.Expansion,
		CreatedBy:   createdBy,
		IsSingle:    req.IsSingle,
	}

	if err := s.saveNew(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// saveNew 商品与变体在同一事务中落库
func (s *ProductService) saveNew(ctx context.Context, product *model.Product) error {
	err := s.productRepo.Transaction(ctx, func(txRepo repository.ProductRepository) error {
		if err := txRepo.Create(ctx, product); err != nil {
			return err
		}
		if !product.IsSingle {
			return nil
		}
		variants := model.BuildVariants(product)
		if err := txRepo.ReplaceVariants(ctx, product.ID, variants); err != nil {
			return err
		}
		product.Variants = variants
		return nil
	})
	if err != nil {
		return fmt.Errorf("创建商品失败: %w", err)
	}
	return nil
}

func validateCreate(req *dto.CreateProductReq) error {
	switch {
	case strings.TrimSpace(req.Title) == "":
		return invalidField("title", "title is required")
	case strings.TrimSpace(req.Description) == "":
		return invalidField("description", "description is required")
	case !req.Price.IsPositive():
		return invalidField("price", "price must be greater than 0")
	case strings.TrimSpace(req.ImageURL) == "":
		return invalidField("imageUrl", "imageUrl is required")
	case strings.TrimSpace(req.Set) == "":
		return invalidField("set", "set is required")
	}
	return nil
}

// ==================== 更新 ====================

// UpdateProduct 部分更新
// 价格或单卡标记变化时重建变体，取消单卡时删除变体
func (s *ProductService) UpdateProduct(ctx context.Context, id string, req *dto.UpdateProductReq) (*model.Product, error) {
	if req.Empty() {
		return nil, ErrNoFieldsToUpdate
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询商品失败: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	rebuild := false
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, invalidField("title", "title cannot be empty")
		}
		product.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if !req.Price.IsPositive() {
			return nil, invalidField("price", "price must be greater than 0")
		}
		rebuild = rebuild || !req.Price.Equal(product.Price)
		product.Price = *req.Price
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Set != nil {
		if strings.TrimSpace(*req.Set) == "" {
			return nil, invalidField("set", "set cannot be empty")
		}
		product.Set = strings.TrimSpace(*req.Set)
	}
	if req.Expansion != nil {
		product.Expansion = *req.Expansion
	}
	if req.IsSingle != nil {
		rebuild = rebuild || *req.IsSingle != product.IsSingle
		product.IsSingle = *req.IsSingle
	}
	if req.AutoPriceSync != nil {
		product.AutoPriceSync = *req.AutoPriceSync
	}

	err = s.productRepo.Transaction(ctx, func(txRepo repository.ProductRepository) error {
		if err := txRepo.Update(ctx, product); err != nil {
			return err
		}
		if !rebuild {
			return nil
		}
		var variants []model.ProductVariant
		if product.IsSingle {
			variants = model.BuildVariants(product)
		}
		if err := txRepo.ReplaceVariants(ctx, product.ID, variants); err != nil {
			return err
		}
		product.Variants = variants
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("更新商品失败: %w", err)
	}
	return product, nil
}

// ==================== 删除 ====================

// DeleteProduct 删除商品，级联删除变体与商户关联 (不删除商户店铺中的远端商品)
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("查询商品失败: %w", err)
	}
	if product == nil {
		return ErrProductNotFound
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("删除商品失败: %w", err)
	}

	applog.L().Info("[Product] 商品已删除", zap.String("id", id), zap.String("title", product.Title))
	return nil
}

// ==================== 查询 ====================

// GetProduct 商品详情 (含变体)
func (s *ProductService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询商品失败: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListGroupedBySet 按系列分组，set 非空时只返回该系列
func (s *ProductService) ListGroupedBySet(ctx context.Context, set string) (map[string][]model.Product, error) {
	var (
		products []model.Product
		err      error
	)
	if set != "" {
		products, err = s.productRepo.ListBySet(ctx, set)
	} else {
		products, err = s.productRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("查询商品失败: %w", err)
	}

	grouped := make(map[string][]model.Product)
	for _, p := range products {
		grouped[p.Set] = append(grouped[p.Set], p)
	}
	return grouped, nil
}

// SearchProducts 关键字搜索，默认每页 25 条
func (s *ProductService) SearchProducts(ctx context.Context, req *dto.SearchProductsReq) (*dto.SearchProductsResp, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultSearchLimit
	}
	if limit > 250 {
		limit = 250
	}

	products, total, err := s.productRepo.Search(ctx, repository.ProductFilter{
		Keyword:  req.Q,
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("搜索商品失败: %w", err)
	}
	if products == nil {
		products = []model.Product{}
	}

	return &dto.SearchProductsResp{
		Products:   products,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

// AddedProductIDs 当前商户已上架的商品 ID
func (s *ProductService) AddedProductIDs(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.addedRepo.ListActiveProductIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("查询已上架商品失败: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
