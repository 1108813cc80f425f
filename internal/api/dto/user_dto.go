package dto

// ListUsersReq 商户列表筛选
type ListUsersReq struct {
	Q        string `form:"q"`
	Role     string `form:"role"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

// PromoteUserReq 修改商户角色
type PromoteUserReq struct {
	ShopDomain string `json:"shopDomain" binding:"required"`
	NewRole    string `json:"newRole" binding:"required"`
}
