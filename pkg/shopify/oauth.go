package shopify

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var shopDomainPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*\.myshopify\.com$`)

// NormalizeShopDomain 统一小写并去掉协议与尾部斜杠
func NormalizeShopDomain(shop string) string {
	shop = strings.ToLower(strings.TrimSpace(shop))
	shop = strings.TrimPrefix(shop, "https://")
	shop = strings.TrimPrefix(shop, "http://")
	return strings.TrimRight(shop, "/")
}

// ValidShopDomain 校验 xxx.myshopify.com 格式
func ValidShopDomain(shop string) bool {
	return shopDomainPattern.MatchString(shop)
}

// CallbackParams OAuth 回调参数
type CallbackParams struct {
	Code  string
	Shop  string
	HMAC  string
	State string
}

// Session 授权结果
type Session struct {
	Shop        string
	AccessToken string
	Scope       string
}

type accessTokenResp struct {
	AccessToken string `json:"access_token"`
	Scope       string `json:"scope"`
}

// AuthURL 拼接授权地址
func (c *Client) AuthURL(shop, redirectURI, state string) string {
	q := url.Values{}
	q.Set("client_id", c.cfg.APIKey)
	q.Set("scope", strings.Join(c.cfg.Scopes, ","))
	q.Set("redirect_uri", redirectURI)
	q.Set("state", state)
	q.Set("response_type", "code")
	return fmt.Sprintf("%s/admin/oauth/authorize?%s", c.shopBaseURL(shop), q.Encode())
}

// VerifyHMAC 校验回调查询参数签名
func (c *Client) VerifyHMAC(query url.Values) (bool, error) {
	if c.cfg.APISecret == "" {
		return false, ErrCredentialsNotConfigured
	}
	if query.Get("hmac") == "" {
		return false, nil
	}
	u := &url.URL{RawQuery: query.Encode()}
	return c.app.VerifyAuthorizationURL(u)
}

// ValidateCallback 用授权码换取 access token (单次请求，不重试)
func (c *Client) ValidateCallback(ctx context.Context, p CallbackParams) (*Session, error) {
	if p.Code == "" || p.Shop == "" {
		return nil, ErrMissingParams
	}
	if !c.Configured() {
		return nil, ErrCredentialsNotConfigured
	}

	var out accessTokenResp
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"client_id":     c.cfg.APIKey,
			"client_secret": c.cfg.APISecret,
			"code":          p.Code,
		}).
		SetResult(&out).
		Post(c.shopBaseURL(p.Shop) + "/admin/oauth/access_token")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenExchange, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %w", ErrTokenExchange, &APIError{
			Op:         "token exchange",
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		})
	}
	if out.AccessToken == "" {
		return nil, fmt.Errorf("%w: 响应中没有 access_token", ErrTokenExchange)
	}

	return &Session{
		Shop:        p.Shop,
		AccessToken: out.AccessToken,
		Scope:       out.Scope,
	}, nil
}
