package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"elite_cards/internal/model"
)

// ==================== 测试辅助 ====================

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	// :memory: 每个连接独立，限制为单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&model.User{}, &model.Product{}, &model.ProductVariant{}, &model.AddedProduct{})
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, title, set string) *model.Product {
	p := &model.Product{
		Title:       title,
		Description: title + " desc",
		Price:       decimal.RequireFromString("10"),
		Set:         set,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

// ==================== UserRepository ====================

func TestUserRepository_UpsertOnInstall(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user, err := repo.UpsertOnInstall(ctx, "s1.myshopify.com", "tok-1", "")
	require.NoError(t, err)
	assert.Equal(t, model.RoleEndUser, user.Role)
	assert.Equal(t, "tok-1", user.AccessToken)
	firstID := user.ID

	// 重装只刷新 token，ID 不变
	user, err = repo.UpsertOnInstall(ctx, "s1.myshopify.com", "tok-2", model.RoleEndUser)
	require.NoError(t, err)
	assert.Equal(t, firstID, user.ID)
	assert.Equal(t, "tok-2", user.AccessToken)

	var count int64
	db.Model(&model.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_UpsertPreservesAdmin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.UpsertOnInstall(ctx, "boss.myshopify.com", "tok-1", model.RoleAdmin)
	require.NoError(t, err)

	user, err := repo.UpsertOnInstall(ctx, "boss.myshopify.com", "tok-2", model.RoleEndUser)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role, "重装不能降级管理员")
	assert.Equal(t, "tok-2", user.AccessToken)
}

func TestUserRepository_UpdateRole(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.UpsertOnInstall(ctx, "s1.myshopify.com", "tok", "")
	require.NoError(t, err)

	user, err := repo.UpdateRoleByShopDomain(ctx, "s1.myshopify.com", model.RoleAdmin)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, model.RoleAdmin, user.Role)

	missing, err := repo.UpdateRoleByShopDomain(ctx, "ghost.myshopify.com", model.RoleAdmin)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for _, d := range []string{"alpha.myshopify.com", "beta.myshopify.com", "gamma.myshopify.com"} {
		_, err := repo.UpsertOnInstall(ctx, d, "tok", "")
		require.NoError(t, err)
	}

	users, total, err := repo.List(ctx, UserFilter{Keyword: "BETA"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "beta.myshopify.com", users[0].ShopDomain)

	users, total, err = repo.List(ctx, UserFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, users, 2)
}

// ==================== ProductRepository ====================

func TestProductRepository_CreateWithVariantsAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p := &model.Product{Title: "Charizard", Price: decimal.RequireFromString("29.99"), Set: "Base", IsSingle: true}
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.ReplaceVariants(ctx, p.ID, model.BuildVariants(p)))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Variants, 3)

	require.NoError(t, db.Create(&model.AddedProduct{UserID: "u1", ProductID: p.ID, ShopifyProductID: "1"}).Error)

	require.NoError(t, repo.Delete(ctx, p.ID))

	got, err = repo.GetByID(ctx, p.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	var variants, links int64
	db.Model(&model.ProductVariant{}).Count(&variants)
	db.Model(&model.AddedProduct{}).Count(&links)
	assert.Zero(t, variants, "变体应级联删除")
	assert.Zero(t, links, "关联应级联删除")
}

func TestProductRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seedProduct(t, db, "Pikachu", "Jungle")
	seedProduct(t, db, "Raichu", "Fossil")
	seedProduct(t, db, "Blastoise", "Base")

	tests := []struct {
		name      string
		keyword   string
		wantTotal int64
	}{
		{"匹配标题", "pika", 1},
		{"匹配系列", "fossil", 1},
		{"匹配描述", "desc", 3},
		{"空关键词返回全部", "", 3},
		{"无匹配", "mewtwo", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, total, err := repo.Search(ctx, ProductFilter{Keyword: tt.keyword})
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)
		})
	}

	page, total, err := repo.Search(ctx, ProductFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, page, 1)
}

func TestProductRepository_ListBySetAndAutoSync(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seedProduct(t, db, "A", "Jungle")
	seedProduct(t, db, "B", "Jungle")
	p := seedProduct(t, db, "C", "Fossil")
	require.NoError(t, repo.UpdateFields(ctx, p.ID, map[string]interface{}{"auto_price_sync": true}))

	jungle, err := repo.ListBySet(ctx, "Jungle")
	require.NoError(t, err)
	assert.Len(t, jungle, 2)

	auto, err := repo.ListAutoSync(ctx)
	require.NoError(t, err)
	require.Len(t, auto, 1)
	assert.Equal(t, "C", auto[0].Title)
}

// ==================== AddedProductRepository ====================

func TestAddedProductRepository_UniquePair(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAddedProductRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.AddedProduct{UserID: "u1", ProductID: "p1", ShopifyProductID: "100"}))

	err := repo.Create(ctx, &model.AddedProduct{UserID: "u1", ProductID: "p1", ShopifyProductID: "101"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// 其他商户可以关联同一商品
	assert.NoError(t, repo.Create(ctx, &model.AddedProduct{UserID: "u2", ProductID: "p1", ShopifyProductID: "200"}))
}

func TestAddedProductRepository_Lifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAddedProductRepository(db)
	ctx := context.Background()

	ap := &model.AddedProduct{UserID: "u1", ProductID: "p1", ShopifyProductID: "100"}
	require.NoError(t, repo.Create(ctx, ap))
	assert.Equal(t, model.SyncStatusActive, ap.SyncStatus)

	ids, err := repo.ListActiveProductIDsByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, ids)

	require.NoError(t, repo.MarkRemoteDeleted(ctx, ap.ID, ap.AddedAt))
	ids, err = repo.ListActiveProductIDsByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, ids)

	got, err := repo.GetByUserAndProduct(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, model.SyncStatusDeleted, got.SyncStatus)
	assert.NotNil(t, got.DeletedAt)

	require.NoError(t, repo.Revive(ctx, ap.ID, "300"))
	got, err = repo.GetByUserAndProduct(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.True(t, got.IsActive())
	assert.Equal(t, "300", got.ShopifyProductID)
	assert.Nil(t, got.DeletedAt)

	require.NoError(t, repo.Delete(ctx, ap.ID))
	got, err = repo.GetByUserAndProduct(ctx, "u1", "p1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
