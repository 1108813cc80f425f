package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"elite_cards/internal/model"
)

// ==================== UserRepository 商户仓库 ====================

// UserRepository 商户仓库接口
type UserRepository interface {
	UpsertOnInstall(ctx context.Context, shopDomain, accessToken, role string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByShopDomain(ctx context.Context, shopDomain string) (*model.User, error)
	UpdateRoleByShopDomain(ctx context.Context, shopDomain, role string) (*model.User, error)
	List(ctx context.Context, filter UserFilter) ([]model.User, int64, error)
}

// UserFilter 商户筛选条件
type UserFilter struct {
	Keyword  string
	Role     string
	Page     int
	PageSize int
}

// ==================== 实现 ====================

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建商户仓库
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// UpsertOnInstall 安装/重装时写入商户
// 已是 admin 的商户不会被降级
func (r *userRepository) UpsertOnInstall(ctx context.Context, shopDomain, accessToken, role string) (*model.User, error) {
	if role == "" {
		role = model.RoleEndUser
	}

	user := &model.User{
		ShopDomain:  shopDomain,
		AccessToken: accessToken,
		Role:        role,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "shop_domain"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"access_token": gorm.Expr("excluded.access_token"),
			"role":         gorm.Expr("CASE WHEN users.role = ? THEN ? ELSE excluded.role END", model.RoleAdmin, model.RoleAdmin),
			"updated_at":   time.Now(),
		}),
	}).Create(user).Error
	if err != nil {
		return nil, err
	}

	// 冲突更新时 user.ID 为新生成的值，需回查
	return r.GetByShopDomain(ctx, shopDomain)
}

// GetByID 根据 ID 获取商户
func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

// GetByShopDomain 根据店铺域名获取商户
func (r *userRepository) GetByShopDomain(ctx context.Context, shopDomain string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("shop_domain = ?", shopDomain).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

// UpdateRoleByShopDomain 修改商户角色，商户不存在返回 nil
func (r *userRepository) UpdateRoleByShopDomain(ctx context.Context, shopDomain, role string) (*model.User, error) {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("shop_domain = ?", shopDomain).
		Update("role", role)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByShopDomain(ctx, shopDomain)
}

// List 商户列表
func (r *userRepository) List(ctx context.Context, filter UserFilter) ([]model.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.User{})

	if filter.Keyword != "" {
		query = query.Where("LOWER(shop_domain) LIKE ?", likePattern(filter.Keyword))
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize := normalizePage(filter.Page, filter.PageSize, 20)

	var users []model.User
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&users).Error

	return users, total, err
}
