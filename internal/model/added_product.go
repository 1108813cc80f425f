package model

import "time"

// SyncStatus 商户店铺中商品的同步状态
type SyncStatus string

const (
	SyncStatusActive  SyncStatus = "active"
	SyncStatusDeleted SyncStatus = "deleted" // 远端已不存在
	SyncStatusError   SyncStatus = "error"
)

// AddedProduct 商户 -> 目录商品 -> 远端 Shopify 商品 的关联
// (user_id, product_id) 唯一
type AddedProduct struct {
	BaseModel
	UserID           string     `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_product" json:"user_id"`
	ProductID        string     `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_product;index" json:"product_id"`
	ShopifyProductID string     `gorm:"size:64;not null" json:"shopify_product_id"`
	AddedAt          time.Time  `gorm:"not null" json:"added_at"`
	SyncStatus       SyncStatus `gorm:"size:20;default:'active';index" json:"sync_status"`
	LastSyncedAt     *time.Time `json:"last_synced_at,omitempty"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`

	// --- 关联 ---
	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (AddedProduct) TableName() string {
	return "added_products"
}

// IsActive 是否为有效关联
func (a *AddedProduct) IsActive() bool {
	return a.SyncStatus == SyncStatusActive
}
