package service

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elite_cards/internal/model"
	"elite_cards/internal/repository"
	"elite_cards/pkg/cache"
	"elite_cards/pkg/shopify"
)

// ==================== 测试辅助 ====================

func newTestAuthService(t *testing.T, oauth *fakeOAuth, admins ...string) (*AuthService, repository.UserRepository) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	issue := func(userID, shop, role string) (string, error) {
		return "session:" + userID + ":" + role, nil
	}
	svc := NewAuthService(userRepo, oauth, cache.NewMemoryStore(), issue, AuthConfig{
		RedirectURI:      "https://app.example.com/auth/callback",
		VerifyHMAC:       true,
		AdminShopDomains: admins,
	})
	return svc, userRepo
}

// install 走一遍安装流程，返回回调参数
func install(t *testing.T, svc *AuthService, shop string) url.Values {
	authURL, err := svc.Install(context.Background(), shop)
	require.NoError(t, err)

	u, err := url.Parse(authURL)
	require.NoError(t, err)
	state := u.Query().Get("state")
	require.NotEmpty(t, state)

	q := url.Values{}
	q.Set("code", "code-1")
	q.Set("shop", shop)
	q.Set("state", state)
	q.Set("hmac", "sig")
	return q
}

func reasonOf(t *testing.T, err error) string {
	var authErr *AuthError
	require.True(t, errors.As(err, &authErr), "应返回 AuthError: %v", err)
	return authErr.Reason
}

// ==================== 单元测试 ====================

func TestAuthService_Install(t *testing.T) {
	svc, _ := newTestAuthService(t, &fakeOAuth{hmacOK: true})

	tests := []struct {
		name   string
		shop   string
		reason string
	}{
		{"完整域名", "demo.myshopify.com", ""},
		{"带协议前缀", "https://Demo.myshopify.com/", ""},
		{"空店铺", "", ReasonMissingParams},
		{"非法域名", "evil.example.com", ReasonInvalidShop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authURL, err := svc.Install(context.Background(), tt.shop)
			if tt.reason != "" {
				assert.Equal(t, tt.reason, reasonOf(t, err))
				return
			}
			require.NoError(t, err)
			assert.Contains(t, authURL, "https://demo.myshopify.com/admin/oauth/authorize")
			assert.Contains(t, authURL, "state=")
		})
	}
}

func TestAuthService_Callback_NewMerchant(t *testing.T) {
	oauth := &fakeOAuth{hmacOK: true}
	svc, userRepo := newTestAuthService(t, oauth)
	ctx := context.Background()

	res, err := svc.Callback(ctx, install(t, svc, "demo.myshopify.com"))
	require.NoError(t, err)

	assert.Equal(t, "/catalog", res.RedirectPath)
	assert.Equal(t, model.RoleEndUser, res.User.Role)
	assert.Equal(t, "session:"+res.User.ID+":end_user", res.SessionToken)

	stored, err := userRepo.GetByShopDomain(ctx, "demo.myshopify.com")
	require.NoError(t, err)
	assert.Equal(t, "shpat-code-1", stored.AccessToken)
}

func TestAuthService_Callback_PreservesAdmin(t *testing.T) {
	oauth := &fakeOAuth{hmacOK: true}
	svc, userRepo := newTestAuthService(t, oauth)
	ctx := context.Background()

	_, err := svc.Callback(ctx, install(t, svc, "boss.myshopify.com"))
	require.NoError(t, err)
	_, err = userRepo.UpdateRoleByShopDomain(ctx, "boss.myshopify.com", model.RoleAdmin)
	require.NoError(t, err)

	// 重新安装不降级
	res, err := svc.Callback(ctx, install(t, svc, "boss.myshopify.com"))
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, res.User.Role)
	assert.Equal(t, "/admin", res.RedirectPath)
}

func TestAuthService_Callback_BootstrapAdmin(t *testing.T) {
	svc, _ := newTestAuthService(t, &fakeOAuth{hmacOK: true}, "Owner.myshopify.com")

	res, err := svc.Callback(context.Background(), install(t, svc, "owner.myshopify.com"))
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, res.User.Role)
}

func TestAuthService_Callback_Failures(t *testing.T) {
	tests := []struct {
		name   string
		oauth  *fakeOAuth
		mutate func(q url.Values)
		reason string
	}{
		{
			name:   "缺少 code",
			oauth:  &fakeOAuth{hmacOK: true},
			mutate: func(q url.Values) { q.Del("code") },
			reason: ReasonMissingParams,
		},
		{
			name:   "HMAC 校验失败",
			oauth:  &fakeOAuth{hmacOK: false},
			mutate: func(url.Values) {},
			reason: ReasonInvalidHMAC,
		},
		{
			name:   "未知 state",
			oauth:  &fakeOAuth{hmacOK: true},
			mutate: func(q url.Values) { q.Set("state", "forged") },
			reason: ReasonInvalidState,
		},
		{
			name:   "state 属于其他店铺",
			oauth:  &fakeOAuth{hmacOK: true},
			mutate: func(q url.Values) { q.Set("shop", "other.myshopify.com") },
			reason: ReasonInvalidState,
		},
		{
			name: "token 交换失败",
			oauth: &fakeOAuth{hmacOK: true, exchangeErr: errors.Join(shopify.ErrTokenExchange,
				&shopify.APIError{Op: "token", StatusCode: 400, Body: "invalid_request"})},
			mutate: func(url.Values) {},
			reason: ReasonTokenExchange,
		},
		{
			name:   "凭证未配置",
			oauth:  &fakeOAuth{hmacOK: true, exchangeErr: shopify.ErrCredentialsNotConfigured},
			mutate: func(url.Values) {},
			reason: ReasonNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, userRepo := newTestAuthService(t, tt.oauth)
			q := install(t, svc, "demo.myshopify.com")
			tt.mutate(q)

			res, err := svc.Callback(context.Background(), q)
			assert.Nil(t, res)
			assert.Equal(t, tt.reason, reasonOf(t, err))

			// 失败时不产生商户记录
			user, err := userRepo.GetByShopDomain(context.Background(), "demo.myshopify.com")
			require.NoError(t, err)
			assert.Nil(t, user)
		})
	}
}

func TestAuthService_Callback_StateIsSingleUse(t *testing.T) {
	oauth := &fakeOAuth{hmacOK: true}
	svc, _ := newTestAuthService(t, oauth)
	q := install(t, svc, "demo.myshopify.com")

	_, err := svc.Callback(context.Background(), q)
	require.NoError(t, err)

	_, err = svc.Callback(context.Background(), q)
	assert.Equal(t, ReasonInvalidState, reasonOf(t, err))
	assert.Equal(t, 1, oauth.exchanged)
}
