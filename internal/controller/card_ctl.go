package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"elite_cards/internal/api/dto"
	"elite_cards/internal/middleware"
	"elite_cards/internal/service"
)

// ==================== CardController 卡牌数据 ====================

type CardController struct {
	cardService *service.CardService
}

func NewCardController(cardService *service.CardService) *CardController {
	return &CardController{cardService: cardService}
}

// SearchCards 搜索卡牌
// @Summary 搜索卡牌 (管理员)
// @Description setId 优先于 q；q 为纯文本时按卡名匹配
// @Tags Card
// @Produce json
// @Param q query string false "关键字或查询语法"
// @Param setId query string false "系列ID"
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量" default(50)
// @Success 200 {object} dto.SearchCardsResp
// @Failure 504 {object} map[string]string "卡牌接口超时"
// @Router /api/cards/search [get]
func (ctrl *CardController) SearchCards(c *gin.Context) {
	var req dto.SearchCardsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := ctrl.cardService.SearchCards(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to search Pokemon cards")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSets 卡牌系列
// @Summary 卡牌系列列表 (管理员)
// @Tags Card
// @Produce json
// @Success 200 {object} map[string]interface{} "{"success": true, "sets": [...]}"
// @Router /api/cards/sets [get]
func (ctrl *CardController) GetSets(c *gin.Context) {
	sets, err := ctrl.cardService.GetSets(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch Pokemon sets")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sets": sets})
}

// GetCard 单卡详情
// @Summary 单卡详情与行情 (管理员)
// @Tags Card
// @Produce json
// @Param id path string true "卡牌ID"
// @Success 200 {object} map[string]interface{} "{"card": {...}}"
// @Failure 404 {object} map[string]string
// @Router /api/cards/{id} [get]
func (ctrl *CardController) GetCard(c *gin.Context) {
	card, err := ctrl.cardService.GetCard(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch Pokemon card")
		return
	}
	c.JSON(http.StatusOK, gin.H{"card": card})
}

// ImportCard 导入卡牌到目录
// @Summary 导入卡牌到目录 (管理员)
// @Description 按行情定价并开启自动调价，默认生成品相变体
// @Tags Card
// @Accept json
// @Produce json
// @Param request body dto.ImportCardReq true "卡牌ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "卡牌不存在"
// @Router /api/cards/import [post]
func (ctrl *CardController) ImportCard(c *gin.Context) {
	var req dto.ImportCardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := ctrl.cardService.ImportCard(c.Request.Context(), &req, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, "Failed to add card to catalog")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"product": product,
		"message": "Card added to catalog successfully",
	})
}
