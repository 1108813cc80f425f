package dto

// ==================== 商户自助上架 ====================

// ProductIDReq 单个商品操作
type ProductIDReq struct {
	ProductID string `json:"productId" binding:"required"`
}

// SetReq 按系列批量操作
type SetReq struct {
	Set string `json:"set" binding:"required"`
}

// AdminPushReq 管理员推送到指定商户
type AdminPushReq struct {
	ProductID string `json:"productId" binding:"required"`
	UserID    string `json:"userId" binding:"required"`
}

// BulkFailure 单项失败原因
type BulkFailure struct {
	ProductID string `json:"productId"`
	Error     string `json:"error"`
}

// BulkAddResults 批量上架分桶结果
type BulkAddResults struct {
	Successful   []string      `json:"successful"`
	Failed       []BulkFailure `json:"failed"`
	AlreadyAdded []string      `json:"alreadyAdded"`
}

// BulkRemoveResults 批量下架分桶结果
type BulkRemoveResults struct {
	Successful []string      `json:"successful"`
	Failed     []BulkFailure `json:"failed"`
	NotFound   []string      `json:"notFound"`
}

// BulkAddResp 批量上架响应
type BulkAddResp struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Results BulkAddResults `json:"results"`
}

// BulkRemoveResp 批量下架响应
type BulkRemoveResp struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Results BulkRemoveResults `json:"results"`
}
