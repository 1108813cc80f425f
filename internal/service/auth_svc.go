package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"elite_cards/internal/model"
	"elite_cards/internal/repository"
	"elite_cards/pkg/cache"
	applog "elite_cards/pkg/logger"
	"elite_cards/pkg/shopify"
	"elite_cards/pkg/utils"
)

const (
	oauthStateTTL    = 10 * time.Minute
	oauthStatePrefix = "oauth_state:"
)

// 授权失败原因，回调失败时作为 /auth/error?reason= 参数
const (
	ReasonMissingParams = "missing_params"
	ReasonInvalidShop   = "invalid_shop"
	ReasonInvalidHMAC   = "invalid_hmac"
	ReasonInvalidState  = "invalid_state"
	ReasonNotConfigured = "not_configured"
	ReasonTokenExchange = "token_exchange"
	ReasonInternal      = "internal"
)

// AuthError OAuth 流程错误
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return e.Reason
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// SessionIssuer 签发会话 Token
type SessionIssuer func(userID, shopDomain, role string) (string, error)

// AuthConfig 授权流程配置
type AuthConfig struct {
	RedirectURI      string
	VerifyHMAC       bool
	AdminShopDomains []string // 首次安装即为管理员的店铺
}

// LoginResult 回调成功结果
type LoginResult struct {
	User         *model.User
	SessionToken string
	RedirectPath string
}

type AuthService struct {
	userRepo repository.UserRepository
	oauth    ShopifyOAuth
	states   cache.Store
	issue    SessionIssuer
	cfg      AuthConfig
}

// NewAuthService 工厂方法
func NewAuthService(userRepo repository.UserRepository, oauth ShopifyOAuth, states cache.Store, issue SessionIssuer, cfg AuthConfig) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		oauth:    oauth,
		states:   states,
		issue:    issue,
		cfg:      cfg,
	}
}

// Install 生成授权链接，state 缓存 10 分钟
func (s *AuthService) Install(ctx context.Context, shop string) (string, error) {
	shop = shopify.NormalizeShopDomain(shop)
	if shop == "" {
		return "", &AuthError{Reason: ReasonMissingParams, Err: shopify.ErrMissingParams}
	}
	if !shopify.ValidShopDomain(shop) {
		return "", &AuthError{Reason: ReasonInvalidShop, Err: fmt.Errorf("invalid shop domain %q", shop)}
	}

	state, err := utils.GenerateRandomString(32)
	if err != nil {
		return "", &AuthError{Reason: ReasonInternal, Err: err}
	}
	if err := s.states.Set(ctx, oauthStatePrefix+state, shop, oauthStateTTL); err != nil {
		return "", &AuthError{Reason: ReasonInternal, Err: fmt.Errorf("缓存 state 失败: %w", err)}
	}

	return s.oauth.AuthURL(shop, s.cfg.RedirectURI, state), nil
}

// Callback 处理授权回调 -> 换 Token -> 写入商户 -> 签发会话
// 任一步失败都不会产生会话
func (s *AuthService) Callback(ctx context.Context, query url.Values) (*LoginResult, error) {
	code := query.Get("code")
	shop := shopify.NormalizeShopDomain(query.Get("shop"))
	state := query.Get("state")

	// 1. 参数校验
	if code == "" || shop == "" {
		return nil, &AuthError{Reason: ReasonMissingParams, Err: shopify.ErrMissingParams}
	}
	if !shopify.ValidShopDomain(shop) {
		return nil, &AuthError{Reason: ReasonInvalidShop, Err: fmt.Errorf("invalid shop domain %q", shop)}
	}

	// 2. HMAC 签名
	if s.cfg.VerifyHMAC {
		ok, err := s.oauth.VerifyHMAC(query)
		if errors.Is(err, shopify.ErrCredentialsNotConfigured) {
			return nil, &AuthError{Reason: ReasonNotConfigured, Err: err}
		}
		if err != nil || !ok {
			return nil, &AuthError{Reason: ReasonInvalidHMAC, Err: err}
		}
	}

	// 3. state 一次性消费，且必须与发起时的店铺一致
	if state == "" {
		return nil, &AuthError{Reason: ReasonInvalidState, Err: errors.New("missing state")}
	}
	storedShop, err := s.states.Take(ctx, oauthStatePrefix+state)
	if err != nil {
		return nil, &AuthError{Reason: ReasonInvalidState, Err: err}
	}
	if storedShop != shop {
		return nil, &AuthError{Reason: ReasonInvalidState, Err: fmt.Errorf("state 属于 %s", storedShop)}
	}

	// 4. 换取 access token (单次，不重试)
	sess, err := s.oauth.ValidateCallback(ctx, shopify.CallbackParams{
		Code:  code,
		Shop:  shop,
		HMAC:  query.Get("hmac"),
		State: state,
	})
	if err != nil {
		return nil, s.tokenExchangeError(shop, err)
	}

	// 5. 写入商户，已有管理员不降级
	role := model.RoleEndUser
	if s.isBootstrapAdmin(shop) {
		role = model.RoleAdmin
	}
	user, err := s.userRepo.UpsertOnInstall(ctx, shop, sess.AccessToken, role)
	if err != nil {
		return nil, &AuthError{Reason: ReasonInternal, Err: fmt.Errorf("写入商户失败: %w", err)}
	}

	// 6. 签发会话
	token, err := s.issue(user.ID, user.ShopDomain, user.Role)
	if err != nil {
		return nil, &AuthError{Reason: ReasonInternal, Err: fmt.Errorf("签发会话失败: %w", err)}
	}

	applog.L().Info("[Auth] 店铺安装完成",
		zap.String("shop", user.ShopDomain),
		zap.String("role", user.Role))

	return &LoginResult{
		User:         user,
		SessionToken: token,
		RedirectPath: landingPath(user.Role),
	}, nil
}

func (s *AuthService) tokenExchangeError(shop string, err error) error {
	if errors.Is(err, shopify.ErrCredentialsNotConfigured) {
		applog.L().Error("[Auth] Shopify 凭证未配置")
		return &AuthError{Reason: ReasonNotConfigured, Err: err}
	}

	fields := []zap.Field{zap.String("shop", shop), zap.Error(err)}
	var apiErr *shopify.APIError
	if errors.As(err, &apiErr) {
		fields = append(fields, zap.Int("status", apiErr.StatusCode), zap.String("body", apiErr.Body))
	}
	applog.L().Error("[Auth] access token 交换失败", fields...)

	if errors.Is(err, shopify.ErrMissingParams) {
		return &AuthError{Reason: ReasonMissingParams, Err: err}
	}
	return &AuthError{Reason: ReasonTokenExchange, Err: err}
}

func (s *AuthService) isBootstrapAdmin(shop string) bool {
	for _, d := range s.cfg.AdminShopDomains {
		if shopify.NormalizeShopDomain(d) == shop {
			return true
		}
	}
	return false
}

func landingPath(role string) string {
	if role == model.RoleAdmin {
		return "/admin"
	}
	return "/catalog"
}
