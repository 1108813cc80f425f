package shopify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goshopify "github.com/bold-commerce/go-shopify/v4"
	"github.com/go-resty/resty/v2"
)

// ==================== 配置 ====================

// Config Shopify App 配置
type Config struct {
	APIKey     string
	APISecret  string
	Scopes     []string
	APIVersion string        // 默认 2024-10
	Timeout    time.Duration // 默认 30s
	// BaseURL 为空时请求 https://{shop}，测试时指向 httptest 地址
	BaseURL string
}

// ==================== 错误定义 ====================

var (
	ErrMissingParams            = errors.New("缺少 OAuth 回调参数")
	ErrCredentialsNotConfigured = errors.New("Shopify API 凭证未配置")
	ErrTokenExchange            = errors.New("access token 交换失败")
)

// APIError Shopify 返回非 2xx
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("shopify %s 失败: %d - %s", e.Op, e.StatusCode, e.Body)
}

// IsNotFound 远端资源不存在
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// ==================== 客户端 ====================

// Client Shopify OAuth 与 Admin REST 客户端
// 一个进程一个实例，access token 按调用传入
type Client struct {
	cfg  *Config
	http *resty.Client
	app  goshopify.App
}

// NewClient 创建客户端
func NewClient(cfg *Config) *Client {
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-10"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		cfg: cfg,
		http: resty.New().
			SetTimeout(cfg.Timeout).
			SetHeader("User-Agent", "Elite-Cards/1.0").
			SetHeader("Accept", "application/json"),
		app: goshopify.App{
			ApiKey:    cfg.APIKey,
			ApiSecret: cfg.APISecret,
			Scope:     strings.Join(cfg.Scopes, ","),
		},
	}
}

// Configured 凭证是否齐全
func (c *Client) Configured() bool {
	return c.cfg.APIKey != "" && c.cfg.APISecret != ""
}

func (c *Client) shopBaseURL(shop string) string {
	if c.cfg.BaseURL != "" {
		return strings.TrimRight(c.cfg.BaseURL, "/")
	}
	return "https://" + shop
}

func (c *Client) adminURL(shop, path string) string {
	return fmt.Sprintf("%s/admin/api/%s/%s", c.shopBaseURL(shop), c.cfg.APIVersion, strings.TrimLeft(path, "/"))
}

// request 带 access token 的 Admin API 请求
func (c *Client) request(ctx context.Context, accessToken string) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetHeader("X-Shopify-Access-Token", accessToken).
		SetHeader("Content-Type", "application/json")
}

// checkResponse 非 2xx 转为 APIError，保留响应体便于排查
func checkResponse(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("shopify %s 请求失败: %w", op, err)
	}
	if resp.IsError() {
		return &APIError{Op: op, StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}
