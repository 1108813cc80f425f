package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"elite_cards/internal/api/dto"
	"elite_cards/internal/middleware"
	"elite_cards/internal/service"
)

// ==================== StoreController 商户店铺上下架 ====================

type StoreController struct {
	storeService *service.StoreService
}

func NewStoreController(storeService *service.StoreService) *StoreController {
	return &StoreController{storeService: storeService}
}

// Push 推送商品到当前商户店铺
// @Summary 上架到我的店铺
// @Tags Store
// @Accept json
// @Produce json
// @Param request body dto.ProductIDReq true "商品ID"
// @Success 200 {object} map[string]interface{} "{"success": true, "shopifyProductId": "..."}"
// @Failure 400 {object} map[string]string "已上架"
// @Failure 404 {object} map[string]string "商品不存在"
// @Router /api/store/push [post]
func (ctrl *StoreController) Push(c *gin.Context) {
	var req dto.ProductIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ap, err := ctrl.storeService.PushProductToUser(c.Request.Context(), req.ProductID, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, "Failed to push product to Shopify")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"message":          "Product successfully added to your Shopify store",
		"shopifyProductId": ap.ShopifyProductID,
	})
}

// Remove 从当前商户店铺下架
// @Summary 从我的店铺下架
// @Description 远端商品已被手动删除时同样视为成功
// @Tags Store
// @Accept json
// @Produce json
// @Param request body dto.ProductIDReq true "商品ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "未上架"
// @Router /api/store/remove [post]
func (ctrl *StoreController) Remove(c *gin.Context) {
	var req dto.ProductIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := ctrl.storeService.RemoveProductFromUser(c.Request.Context(), middleware.GetUserID(c), req.ProductID); err != nil {
		respondError(c, err, "Failed to remove product from Shopify")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product successfully removed from your Shopify store",
	})
}

// AddAllFromSet 上架整个系列
// @Summary 按系列批量上架
// @Tags Store
// @Accept json
// @Produce json
// @Param request body dto.SetReq true "系列名"
// @Success 200 {object} dto.BulkAddResp
// @Failure 404 {object} map[string]string "系列为空"
// @Router /api/store/add-all-from-set [post]
func (ctrl *StoreController) AddAllFromSet(c *gin.Context) {
	var req dto.SetReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Set) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Set name is required"})
		return
	}

	resp, err := ctrl.storeService.AddAllFromSet(c.Request.Context(), middleware.GetUserID(c), req.Set)
	if err != nil {
		respondError(c, err, "Failed to add products from set")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RemoveAllFromSet 下架整个系列
// @Summary 按系列批量下架
// @Tags Store
// @Accept json
// @Produce json
// @Param request body dto.SetReq true "系列名"
// @Success 200 {object} dto.BulkRemoveResp
// @Failure 400 {object} map[string]string "该系列没有已上架商品"
// @Failure 404 {object} map[string]string "系列为空"
// @Router /api/store/remove-all-from-set [post]
func (ctrl *StoreController) RemoveAllFromSet(c *gin.Context) {
	var req dto.SetReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Set) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Set name is required"})
		return
	}

	resp, err := ctrl.storeService.RemoveAllFromSet(c.Request.Context(), middleware.GetUserID(c), req.Set)
	if err != nil {
		respondError(c, err, "Failed to remove products from set")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PushToUser 管理员代商户上架
// @Summary 推送商品到指定商户 (管理员)
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.AdminPushReq true "商品ID与商户ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/admin/push-to-user [post]
func (ctrl *StoreController) PushToUser(c *gin.Context) {
	var req dto.AdminPushReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ap, err := ctrl.storeService.PushProductToShop(c.Request.Context(), req.ProductID, req.UserID)
	if err != nil {
		respondError(c, err, "Failed to push product to user")
		return
	}

	shop := ""
	if ap.User != nil {
		shop = ap.User.ShopDomain
	}
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"message":          "Product successfully added to " + shop,
		"shopifyProductId": ap.ShopifyProductID,
	})
}
