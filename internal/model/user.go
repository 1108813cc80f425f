package model

// 用户角色
const (
	RoleAdmin   = "admin"
	RoleEndUser = "end_user"
)

// User 安装了 App 的 Shopify 商户
// 每个店铺域名对应唯一一条记录，重新安装只刷新 AccessToken
type User struct {
	BaseModel
	ShopDomain  string `gorm:"size:255;uniqueIndex;not null" json:"shop_domain"`
	AccessToken string `gorm:"size:255;not null" json:"-"`
	Role        string `gorm:"size:20;default:'end_user';not null" json:"role"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidRole 校验角色取值
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEndUser
}
