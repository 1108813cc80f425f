package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"elite_cards/internal/model"
)

// ==================== AddedProductRepository 商户商品关联仓库 ====================

// AddedProductRepository 商户已上架商品的关联仓库
type AddedProductRepository interface {
	Create(ctx context.Context, ap *model.AddedProduct) error
	GetByUserAndProduct(ctx context.Context, userID, productID string) (*model.AddedProduct, error)
	ListByUser(ctx context.Context, userID string) ([]model.AddedProduct, error)
	ListActiveByProduct(ctx context.Context, productID string) ([]model.AddedProduct, error)
	ListActiveProductIDsByUser(ctx context.Context, userID string) ([]string, error)
	Revive(ctx context.Context, id, shopifyProductID string) error
	MarkSynced(ctx context.Context, id string, at time.Time) error
	MarkRemoteDeleted(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type addedProductRepo struct {
	db *gorm.DB
}

// NewAddedProductRepository 创建关联仓库
func NewAddedProductRepository(db *gorm.DB) AddedProductRepository {
	return &addedProductRepo{db: db}
}

func (r *addedProductRepo) Create(ctx context.Context, ap *model.AddedProduct) error {
	if ap.AddedAt.IsZero() {
		ap.AddedAt = time.Now()
	}
	if ap.SyncStatus == "" {
		ap.SyncStatus = model.SyncStatusActive
	}
	return r.db.WithContext(ctx).Create(ap).Error
}

// GetByUserAndProduct 查询关联 (任意状态)，不存在返回 nil
func (r *addedProductRepo) GetByUserAndProduct(ctx context.Context, userID, productID string) (*model.AddedProduct, error) {
	var ap model.AddedProduct
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&ap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ap, err
}

// ListByUser 商户的有效关联
func (r *addedProductRepo) ListByUser(ctx context.Context, userID string) ([]model.AddedProduct, error) {
	var list []model.AddedProduct
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND sync_status = ?", userID, model.SyncStatusActive).
		Order("added_at DESC").
		Find(&list).Error
	return list, err
}

// ListActiveByProduct 某商品的全部有效关联 (带商户信息，用于调价扇出)
func (r *addedProductRepo) ListActiveByProduct(ctx context.Context, productID string) ([]model.AddedProduct, error) {
	var list []model.AddedProduct
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("product_id = ? AND sync_status = ?", productID, model.SyncStatusActive).
		Order("added_at ASC").
		Find(&list).Error
	return list, err
}

func (r *addedProductRepo) ListActiveProductIDsByUser(ctx context.Context, userID string) ([]string, error) {
	ids := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&model.AddedProduct{}).
		Where("user_id = ? AND sync_status = ?", userID, model.SyncStatusActive).
		Order("added_at DESC").
		Pluck("product_id", &ids).Error
	return ids, err
}

// Revive 重新上架已失效的关联
func (r *addedProductRepo) Revive(ctx context.Context, id, shopifyProductID string) error {
	return r.db.WithContext(ctx).
		Model(&model.AddedProduct{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"shopify_product_id": shopifyProductID,
			"sync_status":        model.SyncStatusActive,
			"added_at":           time.Now(),
			"deleted_at":         nil,
			"last_synced_at":     nil,
		}).Error
}

func (r *addedProductRepo) MarkSynced(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.AddedProduct{}).
		Where("id = ?", id).
		Update("last_synced_at", at).Error
}

// MarkRemoteDeleted 远端商品已不存在，关联退役
func (r *addedProductRepo) MarkRemoteDeleted(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.AddedProduct{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"sync_status": model.SyncStatusDeleted,
			"deleted_at":  at,
		}).Error
}

func (r *addedProductRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AddedProduct{}).Error
}
