package controller

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elite_cards/internal/middleware"
)

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestAuthController_Install(t *testing.T) {
	app := newTestApp(t, stubCards{})

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantError  string
	}{
		{"跳转到授权页", "?shop=demo.myshopify.com", http.StatusFound, ""},
		{"缺少店铺", "", http.StatusBadRequest, "Missing shop parameter"},
		{"非法店铺", "?shop=evil.com", http.StatusBadRequest, "Invalid shop domain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(app.router, "GET", "/api/auth/install"+tt.query, nil, "")
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeBody(t, w)["error"])
				return
			}
			assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "https://demo.myshopify.com/admin/oauth/authorize"))
		})
	}
}

func TestAuthController_CallbackFlow(t *testing.T) {
	app := newTestApp(t, stubCards{})

	w := performRequest(app.router, "GET", "/api/auth/install?shop=new.myshopify.com", nil, "")
	require.Equal(t, http.StatusFound, w.Code)
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	state := loc.Query().Get("state")

	q := url.Values{"code": {"c1"}, "shop": {"new.myshopify.com"}, "state": {state}, "hmac": {"x"}}
	w = performRequest(app.router, "GET", "/api/auth/callback?"+q.Encode(), nil, "")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/catalog", w.Header().Get("Location"))

	cookie := sessionCookie(w.Result())
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)

	// 会话可用
	w = performRequest(app.router, "GET", "/api/auth/session", nil, cookie.Value)
	require.Equal(t, http.StatusOK, w.Code)
	session := decodeBody(t, w)["session"].(map[string]interface{})
	assert.Equal(t, "new.myshopify.com", session["shopDomain"])
	assert.Equal(t, "end_user", session["role"])

	// state 已被消费，重放失败且不下发 cookie
	w = performRequest(app.router, "GET", "/api/auth/callback?"+q.Encode(), nil, "")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/error?reason=invalid_state", w.Header().Get("Location"))
	assert.Nil(t, sessionCookie(w.Result()))
}

func TestAuthController_InstallWithCodeActsAsCallback(t *testing.T) {
	app := newTestApp(t, stubCards{})

	w := performRequest(app.router, "GET", "/api/auth/install?code=c1&shop=demo.myshopify.com", nil, "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/error?reason=invalid_state", w.Header().Get("Location"))
}

func TestAuthController_SessionAndLogout(t *testing.T) {
	app := newTestApp(t, stubCards{})

	w := performRequest(app.router, "GET", "/api/auth/session", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(app.router, "GET", "/api/auth/session", nil, sessionFor(t, app.admin))
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(app.router, "POST", "/api/auth/logout", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(w.Result())
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.MaxAge < 0)
}
