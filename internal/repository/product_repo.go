package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"elite_cards/internal/model"
)

// ==================== 接口定义 ====================

// ProductRepository 目录商品仓储接口
type ProductRepository interface {
	// 基础 CRUD
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error

	// 列表查询
	ListAll(ctx context.Context) ([]model.Product, error)
	ListBySet(ctx context.Context, set string) ([]model.Product, error)
	ListAutoSync(ctx context.Context) ([]model.Product, error)
	Search(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error)

	// 变体操作
	GetVariants(ctx context.Context, productID string) ([]model.ProductVariant, error)
	ReplaceVariants(ctx context.Context, productID string, variants []model.ProductVariant) error

	// 事务
	WithTx(tx *gorm.DB) ProductRepository
	Transaction(ctx context.Context, fn func(txRepo ProductRepository) error) error
}

// ==================== 过滤条件 ====================

// ProductFilter 商品搜索条件
type ProductFilter struct {
	Keyword  string // 匹配 title / description / set / expansion
	Page     int
	PageSize int
}

// ==================== 仓储实现 ====================

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("price DESC")
		}).
		Where("id = ?", id).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(product).Error
}

func (r *productRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete 删除商品及其变体、商户关联
func (r *productRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductVariant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.AddedProduct{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Product{}).Error
	})
}

func (r *productRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "set"}}).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) ListBySet(ctx context.Context, set string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where(map[string]interface{}{"set": set}).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

// ListAutoSync 开启自动调价的商品
func (r *productRepo) ListAutoSync(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("auto_price_sync = ?", true).
		Order("created_at ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) Search(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Product{})

	if filter.Keyword != "" {
		kw := likePattern(filter.Keyword)
		query = query.Where(
			`LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER("set") LIKE ? OR LOWER(expansion) LIKE ?`,
			kw, kw, kw, kw,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize := normalizePage(filter.Page, filter.PageSize, 25)

	err := query.
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&products).Error

	return products, total, err
}

// ==================== 变体操作 ====================

func (r *productRepo) GetVariants(ctx context.Context, productID string) ([]model.ProductVariant, error) {
	var variants []model.ProductVariant
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("price DESC").
		Find(&variants).Error
	return variants, err
}

// ReplaceVariants 删除旧变体并写入新变体
func (r *productRepo) ReplaceVariants(ctx context.Context, productID string, variants []model.ProductVariant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&model.ProductVariant{}).Error; err != nil {
			return err
		}
		if len(variants) == 0 {
			return nil
		}
		for i := range variants {
			variants[i].ProductID = productID
		}
		return tx.Create(&variants).Error
	})
}

// ==================== 事务 ====================

func (r *productRepo) WithTx(tx *gorm.DB) ProductRepository {
	return &productRepo{db: tx}
}

func (r *productRepo) Transaction(ctx context.Context, fn func(txRepo ProductRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
