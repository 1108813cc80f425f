package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"elite_cards/internal/api/dto"
	"elite_cards/internal/middleware"
	"elite_cards/internal/service"
)

type ProductController struct {
	productService *service.ProductService
}

func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// ==================== 查询接口 ====================

// ListProducts 按系列分组的商品目录
// @Summary 商品目录 (按系列分组)
// @Tags Product
// @Produce json
// @Param set query string false "只返回该系列"
// @Success 200 {object} map[string]interface{} "{"products": {"set": [...]}}"
// @Router /api/products [get]
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	grouped, err := ctrl.productService.ListGroupedBySet(c.Request.Context(), c.Query("set"))
	if err != nil {
		respondError(c, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": grouped})
}

// SearchProducts 搜索商品
// @Summary 关键字搜索商品
// @Tags Product
// @Produce json
// @Param q query string false "关键字"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(25)
// @Success 200 {object} dto.SearchProductsResp
// @Router /api/products/search [get]
func (ctrl *ProductController) SearchProducts(c *gin.Context) {
	var req dto.SearchProductsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := ctrl.productService.SearchProducts(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to search products")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddedProducts 当前商户已上架的商品 ID
// @Summary 已上架商品
// @Tags Product
// @Produce json
// @Success 200 {object} map[string]interface{} "{"addedProductIds": [...]}"
// @Router /api/products/added [get]
func (ctrl *ProductController) AddedProducts(c *gin.Context) {
	ids, err := ctrl.productService.AddedProductIDs(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, "Failed to fetch added products")
		return
	}
	c.JSON(http.StatusOK, gin.H{"addedProductIds": ids})
}

// GetProduct 商品详情
// @Summary 商品详情 (含品相变体)
// @Tags Product
// @Produce json
// @Param id path string true "商品ID"
// @Success 200 {object} map[string]interface{} "{"product": {...}}"
// @Failure 404 {object} map[string]string
// @Router /api/products/{id} [get]
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	product, err := ctrl.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// ==================== 管理接口 ====================

// CreateProduct 创建商品
// @Summary 创建目录商品 (管理员)
// @Tags Product
// @Accept json
// @Produce json
// @Param request body dto.CreateProductReq true "商品信息"
// @Success 200 {object} map[string]interface{} "{"success": true, "product": {...}}"
// @Failure 400 {object} map[string]string
// @Router /api/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req dto.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := ctrl.productService.CreateProduct(c.Request.Context(), &req, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, "Failed to add product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// UpdateProduct 部分更新商品
// @Summary 更新目录商品 (管理员)
// @Tags Product
// @Accept json
// @Produce json
// @Param id path string true "商品ID"
// @Param request body dto.UpdateProductReq true "需要修改的字段"
// @Success 200 {object} map[string]interface{} "{"success": true, "product": {...}}"
// @Failure 400 {object} map[string]string "没有需要修改的字段"
// @Failure 404 {object} map[string]string
// @Router /api/products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var req dto.UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBindError(c, err)
		return
	}

	product, err := ctrl.productService.UpdateProduct(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// DeleteProduct 删除商品
// @Summary 删除目录商品 (管理员)
// @Description 级联删除变体与商户关联，不删除商户店铺中已上架的商品
// @Tags Product
// @Param id path string true "商品ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	if err := ctrl.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
}
