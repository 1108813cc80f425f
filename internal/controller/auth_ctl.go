package controller

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"elite_cards/internal/middleware"
	"elite_cards/internal/service"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(s *service.AuthService) *AuthController {
	return &AuthController{authService: s}
}

// Install
// @Summary 发起 Shopify 安装授权
// @Description 校验店铺域名，生成一次性 state 后跳转到 Shopify 授权页；携带 code 时按回调处理
// @Tags Auth (授权模块)
// @Param shop query string true "店铺域名 xxx.myshopify.com"
// @Success 302 {string} string "跳转到 Shopify 授权页"
// @Failure 400 {object} map[string]string "店铺域名缺失或非法"
// @Router /api/auth/install [get]
func (ctrl *AuthController) Install(c *gin.Context) {
	if c.Query("code") != "" {
		ctrl.Callback(c)
		return
	}

	authURL, err := ctrl.authService.Install(c.Request.Context(), c.Query("shop"))
	if err != nil {
		var authErr *service.AuthError
		if errors.As(err, &authErr) && authErr.Reason == service.ReasonMissingParams {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing shop parameter"})
			return
		}
		if errors.As(err, &authErr) && authErr.Reason == service.ReasonInvalidShop {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shop domain"})
			return
		}
		respondError(c, err, "Failed to start installation")
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// Callback
// @Summary Shopify 授权回调
// @Description 校验 HMAC 与 state，换取 access token，写入商户并签发会话 cookie
// @Tags Auth (授权模块)
// @Param code query string true "授权码"
// @Param shop query string true "店铺域名"
// @Param hmac query string true "签名"
// @Param state query string true "安全校验码"
// @Success 302 {string} string "跳转到 /admin 或 /catalog"
// @Failure 302 {string} string "跳转到 /auth/error?reason="
// @Router /api/auth/callback [get]
func (ctrl *AuthController) Callback(c *gin.Context) {
	res, err := ctrl.authService.Callback(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		reason := service.ReasonInternal
		var authErr *service.AuthError
		if errors.As(err, &authErr) {
			reason = authErr.Reason
		}
		c.Redirect(http.StatusFound, "/auth/error?reason="+url.QueryEscape(reason))
		return
	}

	middleware.SetSessionCookie(c, res.SessionToken)
	c.Redirect(http.StatusFound, res.RedirectPath)
}

// Session
// @Summary 当前会话
// @Tags Auth (授权模块)
// @Produce json
// @Success 200 {object} map[string]interface{} "{"session": {...}}"
// @Failure 401 {object} map[string]string "未登录"
// @Router /api/auth/session [get]
func (ctrl *AuthController) Session(c *gin.Context) {
	claims := middleware.GetSessionClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session": gin.H{
			"userId":     claims.UserID,
			"shopDomain": claims.ShopDomain,
			"role":       claims.Role,
		},
	})
}

// Logout
// @Summary 退出登录
// @Tags Auth (授权模块)
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
