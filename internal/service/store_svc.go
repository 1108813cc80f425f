package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"elite_cards/internal/api/dto"
	"elite_cards/internal/model"
	"elite_cards/internal/repository"
	applog "elite_cards/pkg/logger"
	"elite_cards/pkg/shopify"
)

// ==================== StoreService 商户店铺上下架 ====================

type StoreService struct {
	productRepo repository.ProductRepository
	addedRepo   repository.AddedProductRepository
	userRepo    repository.UserRepository
	shop        ShopifyProducts

	// 批量操作并发数，1 为串行
	concurrencyLimit int
}

// NewStoreService 工厂方法
func NewStoreService(
	productRepo repository.ProductRepository,
	addedRepo repository.AddedProductRepository,
	userRepo repository.UserRepository,
	shop ShopifyProducts,
) *StoreService {
	return &StoreService{
		productRepo:      productRepo,
		addedRepo:        addedRepo,
		userRepo:         userRepo,
		shop:             shop,
		concurrencyLimit: 1,
	}
}

// SetConcurrency 设置批量操作并发数
func (s *StoreService) SetConcurrency(limit int) {
	if limit < 1 {
		limit = 1
	}
	s.concurrencyLimit = limit
}

// ==================== 单个商品 ====================

// PushProductToUser 推送商品到商户店铺
// 已有有效关联时返回 ErrAlreadyAdded；远端创建失败时不写关联
func (s *StoreService) PushProductToUser(ctx context.Context, productID, userID string) (*model.AddedProduct, error) {
	product, err := s.loadProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.push(ctx, product, user)
}

// PushProductToShop 管理员代商户上架
func (s *StoreService) PushProductToShop(ctx context.Context, productID, targetUserID string) (*model.AddedProduct, error) {
	ap, err := s.PushProductToUser(ctx, productID, targetUserID)
	if err == nil {
		applog.L().Info("[Store] 管理员代商户上架",
			zap.String("product_id", productID),
			zap.String("user_id", targetUserID))
	}
	return ap, err
}

// RemoveProductFromUser 从商户店铺下架
// 远端返回 404 视为已删除；其他远端错误保留本地关联
func (s *StoreService) RemoveProductFromUser(ctx context.Context, userID, productID string) error {
	linkage, err := s.addedRepo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return fmt.Errorf("查询关联失败: %w", err)
	}
	if linkage == nil {
		return ErrLinkageNotFound
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}
	return s.removeLinkage(ctx, user, linkage)
}

func (s *StoreService) push(ctx context.Context, product *model.Product, user *model.User) (*model.AddedProduct, error) {
	// 1. 检查是否已上架
	existing, err := s.addedRepo.GetByUserAndProduct(ctx, user.ID, product.ID)
	if err != nil {
		return nil, fmt.Errorf("查询关联失败: %w", err)
	}
	if existing != nil && existing.IsActive() {
		return nil, ErrAlreadyAdded
	}

	// 2. 单卡带上品相变体
	input, err := s.shopifyInput(ctx, product)
	if err != nil {
		return nil, err
	}

	// 3. 远端创建
	remoteID, err := s.shop.CreateProduct(ctx, user.AccessToken, user.ShopDomain, input)
	if err != nil {
		applog.L().Warn("[Store] 推送商品失败",
			zap.String("shop", user.ShopDomain),
			zap.String("product", product.Title),
			zap.Error(err))
		return nil, fmt.Errorf("推送到 Shopify 失败: %w", err)
	}

	// 4. 写关联，已下线的关联原地恢复
	if existing != nil {
		if err := s.addedRepo.Revive(ctx, existing.ID, remoteID); err != nil {
			s.compensate(ctx, user, remoteID)
			return nil, fmt.Errorf("恢复关联失败: %w", err)
		}
		existing.ShopifyProductID = remoteID
		existing.SyncStatus = model.SyncStatusActive
		existing.DeletedAt = nil
		existing.User = user
		return existing, nil
	}

	linkage := &model.AddedProduct{
		UserID:           user.ID,
		ProductID:        product.ID,
		ShopifyProductID: remoteID,
	}
	if err := s.addedRepo.Create(ctx, linkage); err != nil {
		// 并发推送被唯一索引拦截，撤销刚创建的远端商品
		s.compensate(ctx, user, remoteID)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyAdded
		}
		return nil, fmt.Errorf("写入关联失败: %w", err)
	}
	linkage.User = user
	return linkage, nil
}

// compensate 本地关联写入失败时删除远端商品，失败只记日志
func (s *StoreService) compensate(ctx context.Context, user *model.User, remoteID string) {
	if err := s.shop.DeleteProduct(ctx, user.AccessToken, user.ShopDomain, remoteID); err != nil && !shopify.IsNotFound(err) {
		applog.L().Error("[Store] 撤销远端商品失败，需人工清理",
			zap.String("shop", user.ShopDomain),
			zap.String("shopify_product_id", remoteID),
			zap.Error(err))
	}
}

func (s *StoreService) removeLinkage(ctx context.Context, user *model.User, linkage *model.AddedProduct) error {
	// 调价时已确认远端不存在的关联直接清理
	if linkage.IsActive() && linkage.ShopifyProductID != "" {
		err := s.shop.DeleteProduct(ctx, user.AccessToken, user.ShopDomain, linkage.ShopifyProductID)
		switch {
		case err == nil:
		case shopify.IsNotFound(err):
			applog.L().Info("[Store] 远端商品已不存在，清理本地关联",
				zap.String("shop", user.ShopDomain),
				zap.String("shopify_product_id", linkage.ShopifyProductID))
		default:
			return fmt.Errorf("从 Shopify 删除失败: %w", err)
		}
	}

	if err := s.addedRepo.Delete(ctx, linkage.ID); err != nil {
		return fmt.Errorf("删除关联失败: %w", err)
	}
	return nil
}

func (s *StoreService) shopifyInput(ctx context.Context, product *model.Product) (shopify.ProductInput, error) {
	input := shopify.ProductInput{
		Title:       product.Title,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		Set:         product.Set,
	}
	if !product.IsSingle {
		return input, nil
	}

	variants := product.Variants
	if len(variants) == 0 {
		var err error
		if variants, err = s.productRepo.GetVariants(ctx, product.ID); err != nil {
			return input, fmt.Errorf("查询变体失败: %w", err)
		}
	}
	for _, v := range variants {
		input.Variants = append(input.Variants, shopify.VariantInput{
			Option1: v.Option1,
			Price:   v.Price,
			SKU:     v.SKU,
		})
	}
	return input, nil
}

// ==================== 按系列批量 ====================

// AddAllFromSet 上架某系列全部商品，单项失败不影响其他商品
func (s *StoreService) AddAllFromSet(ctx context.Context, userID, set string) (*dto.BulkAddResp, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.ListBySet(ctx, set)
	if err != nil {
		return nil, fmt.Errorf("查询系列商品失败: %w", err)
	}
	if len(products) == 0 {
		return nil, ErrSetEmpty
	}

	results := dto.BulkAddResults{
		Successful:   []string{},
		Failed:       []dto.BulkFailure{},
		AlreadyAdded: []string{},
	}
	var mu sync.Mutex

	s.forEach(ctx, len(products), func(i int) {
		product := &products[i]
		_, err := s.push(ctx, product, user)

		mu.Lock()
		defer mu.Unlock()
		switch {
		case err == nil:
			results.Successful = append(results.Successful, product.Title)
		case errors.Is(err, ErrAlreadyAdded):
			results.AlreadyAdded = append(results.AlreadyAdded, product.Title)
		default:
			applog.L().Warn("[Store] 批量上架单项失败",
				zap.String("shop", user.ShopDomain),
				zap.String("product", product.Title),
				zap.Error(err))
			results.Failed = append(results.Failed, dto.BulkFailure{ProductID: product.ID, Error: err.Error()})
		}
	})

	return &dto.BulkAddResp{Success: true, Message: addAllMessage(results), Results: results}, nil
}

// RemoveAllFromSet 下架某系列中已上架的商品
// notFound 记录系列中该商户未上架的商品
func (s *StoreService) RemoveAllFromSet(ctx context.Context, userID, set string) (*dto.BulkRemoveResp, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.ListBySet(ctx, set)
	if err != nil {
		return nil, fmt.Errorf("查询系列商品失败: %w", err)
	}
	if len(products) == 0 {
		return nil, ErrSetEmpty
	}

	linkages, err := s.addedRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("查询已上架商品失败: %w", err)
	}
	byProduct := make(map[string]*model.AddedProduct, len(linkages))
	for i := range linkages {
		byProduct[linkages[i].ProductID] = &linkages[i]
	}

	results := dto.BulkRemoveResults{
		Successful: []string{},
		Failed:     []dto.BulkFailure{},
		NotFound:   []string{},
	}
	type target struct {
		product *model.Product
		linkage *model.AddedProduct
	}
	var targets []target
	for i := range products {
		if ap, ok := byProduct[products[i].ID]; ok {
			targets = append(targets, target{product: &products[i], linkage: ap})
		} else {
			results.NotFound = append(results.NotFound, products[i].Title)
		}
	}
	if len(targets) == 0 {
		return nil, ErrNothingLinkedInSet
	}

	var mu sync.Mutex
	s.forEach(ctx, len(targets), func(i int) {
		t := targets[i]
		err := s.removeLinkage(ctx, user, t.linkage)

		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			applog.L().Warn("[Store] 批量下架单项失败",
				zap.String("shop", user.ShopDomain),
				zap.String("product", t.product.Title),
				zap.Error(err))
			results.Failed = append(results.Failed, dto.BulkFailure{ProductID: t.product.ID, Error: err.Error()})
			return
		}
		results.Successful = append(results.Successful, t.product.Title)
	})

	return &dto.BulkRemoveResp{Success: true, Message: removeAllMessage(results), Results: results}, nil
}

// forEach 信号量限制并发，ctx 取消后不再派发新任务
func (s *StoreService) forEach(ctx context.Context, count int, fn func(i int)) {
	sem := make(chan struct{}, s.concurrencyLimit)
	var wg sync.WaitGroup

	for i := 0; i < count; i++ {
		select {
		case <-ctx.Done():
			wg.Wait()
			return
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			fn(i)
		}(i)
	}
	wg.Wait()
}

func addAllMessage(r dto.BulkAddResults) string {
	msg := fmt.Sprintf("Successfully added %d products to your store.", len(r.Successful))
	if len(r.AlreadyAdded) > 0 {
		msg += fmt.Sprintf(" %d products were already in your store.", len(r.AlreadyAdded))
	}
	if len(r.Failed) > 0 {
		msg += fmt.Sprintf(" %d products failed to add.", len(r.Failed))
	}
	return msg
}

func removeAllMessage(r dto.BulkRemoveResults) string {
	msg := fmt.Sprintf("Successfully removed %d products from your store.", len(r.Successful))
	if len(r.Failed) > 0 {
		msg += fmt.Sprintf(" %d products failed to remove.", len(r.Failed))
	}
	return msg
}

// ==================== 辅助 ====================

func (s *StoreService) loadProduct(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询商品失败: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *StoreService) loadUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询商户失败: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
