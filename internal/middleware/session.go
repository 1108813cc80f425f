package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ==================== 会话配置 ====================

const (
	SessionCookieName = "session"
	sessionIssuer     = "elite-cards"
)

// SessionConfig 会话配置
type SessionConfig struct {
	SecretKey string        // 签名密钥
	TTL       time.Duration // 会话有效期，同时作为 cookie Max-Age
}

// DefaultSessionConfig 默认配置
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		SecretKey: "elite-cards-secret-key-change-in-production",
		TTL:       7 * 24 * time.Hour,
	}
}

// 全局配置
var sessionConfig = DefaultSessionConfig()

// SetSessionConfig 设置会话配置
func SetSessionConfig(cfg *SessionConfig) {
	sessionConfig = cfg
}

// GetSessionConfig 获取会话配置
func GetSessionConfig() *SessionConfig {
	return sessionConfig
}

// ==================== Claims 定义 ====================

// SessionClaims 会话声明
type SessionClaims struct {
	UserID     string `json:"userId"`
	ShopDomain string `json:"shopDomain"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// ==================== 签发与校验 ====================

// CreateSession 签发会话 Token
func CreateSession(userID, shopDomain, role string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID:     userID,
		ShopDomain: shopDomain,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionConfig.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(sessionConfig.SecretKey))
}

// parseSession 解析 Token，只接受 HMAC 签名
func parseSession(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(sessionConfig.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// VerifySession 校验会话，任何失败都返回 nil
func VerifySession(tokenString string) *SessionClaims {
	if tokenString == "" {
		return nil
	}
	claims, err := parseSession(tokenString)
	if err != nil || claims.UserID == "" {
		return nil
	}
	return claims
}

// ==================== Cookie ====================

// SetSessionCookie 写入会话 cookie
func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(sessionConfig.TTL.Seconds()), "/", "", true, true)
}

// ClearSessionCookie 清除会话 cookie
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", true, true)
}

// ==================== Gin 中间件 ====================

// Context Keys
const (
	ContextKeyUserID     = "user_id"
	ContextKeyShopDomain = "shop_domain"
	ContextKeyRole       = "role"
	ContextKeyClaims     = "claims"
)

// sessionToken 优先读 cookie，其次 Authorization: Bearer
func sessionToken(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
		return token
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// SessionAuth 会话认证中间件
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := VerifySession(sessionToken(c))
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		// 注入用户信息到 Context
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyShopDomain, claims.ShopDomain)
		c.Set(ContextKeyRole, claims.Role)
		c.Set(ContextKeyClaims, claims)

		c.Next()
	}
}

// RequireRole 角色权限校验中间件
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := GetUserRole(c)
		if userRole == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		for _, r := range roles {
			if userRole == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	}
}

// ==================== 辅助函数 ====================

// GetUserID 从 Context 获取用户 ID
func GetUserID(c *gin.Context) string {
	return c.GetString(ContextKeyUserID)
}

// GetShopDomain 从 Context 获取店铺域名
func GetShopDomain(c *gin.Context) string {
	return c.GetString(ContextKeyShopDomain)
}

// GetUserRole 从 Context 获取用户角色
func GetUserRole(c *gin.Context) string {
	return c.GetString(ContextKeyRole)
}

// GetSessionClaims 从 Context 获取完整 Claims
func GetSessionClaims(c *gin.Context) *SessionClaims {
	if claims, exists := c.Get(ContextKeyClaims); exists {
		return claims.(*SessionClaims)
	}
	return nil
}
