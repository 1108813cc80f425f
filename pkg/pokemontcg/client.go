package pokemontcg

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL  = "https://api.pokemontcg.io/v2"
	DefaultPageSize = 250
	defaultTimeout  = 60 * time.Second
)

// ==================== 错误定义 ====================

var (
	ErrTimeout     = errors.New("Request timeout. The Pokemon TCG API is taking too long to respond.")
	ErrRateLimited = errors.New("Rate limit exceeded. Please try again later.")
	ErrUpstream    = errors.New("Pokemon TCG API unavailable")
	ErrNotFound    = errors.New("card not found")
)

// APIError 卡牌接口返回非 2xx
type APIError struct {
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Pokemon TCG API error: %d %s", e.StatusCode, e.Status)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return ErrUpstream
}

// ==================== 客户端 ====================

// Config 卡牌接口配置，APIKey 可选 (无 key 时限流更严)
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client Pokemon TCG 接口客户端
type Client struct {
	http *resty.Client
	now  func() time.Time
}

// NewClient 创建客户端
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	h := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "Elite-Cards/1.0")
	if cfg.APIKey != "" {
		h.SetHeader("X-Api-Key", cfg.APIKey)
	}

	return &Client{http: h, now: time.Now}
}

// get 发起请求并把传输层与状态码错误归类
func (c *Client) get(ctx context.Context, path string, params map[string]string, out interface{}) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(out).
		Get(path)
	if err != nil {
		if isTimeout(err) {
			return ErrTimeout
		}
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if resp.StatusCode() == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	if resp.IsError() {
		return &APIError{StatusCode: resp.StatusCode(), Status: http.StatusText(resp.StatusCode())}
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// ==================== 查询 ====================

// SearchCards 按查询语法搜索卡牌
func (c *Client) SearchCards(ctx context.Context, query string, page, pageSize int) (*SearchResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	var raw cardListResp
	err := c.get(ctx, "/cards", map[string]string{
		"q":        query,
		"page":     strconv.Itoa(page),
		"pageSize": strconv.Itoa(pageSize),
	}, &raw)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{
		Cards:      make([]Card, 0, len(raw.Data)),
		Page:       raw.Page,
		PageSize:   raw.PageSize,
		Count:      raw.Count,
		TotalCount: raw.TotalCount,
	}
	for i := range raw.Data {
		result.Cards = append(result.Cards, c.transform(&raw.Data[i]))
	}
	return result, nil
}

// GetCardsFromSet 列出某个系列的卡牌
func (c *Client) GetCardsFromSet(ctx context.Context, setID string, page, pageSize int) (*SearchResult, error) {
	return c.SearchCards(ctx, "set.id:"+setID, page, pageSize)
}

// GetCardByID 查询单卡
func (c *Client) GetCardByID(ctx context.Context, id string) (*Card, error) {
	var raw struct {
		Data rawCard `json:"data"`
	}
	if err := c.get(ctx, "/cards/"+id, nil, &raw); err != nil {
		return nil, err
	}
	card := c.transform(&raw.Data)
	return &card, nil
}

// GetSets 列出全部系列
func (c *Client) GetSets(ctx context.Context) ([]Set, error) {
	var raw struct {
		Data []rawSet `json:"data"`
	}
	if err := c.get(ctx, "/sets", nil, &raw); err != nil {
		return nil, err
	}

	sets := make([]Set, 0, len(raw.Data))
	for _, s := range raw.Data {
		sets = append(sets, s.toSet())
	}
	return sets, nil
}

// MarketPricing 按卡名和系列名查询行情
// 查询失败时返回错误；查询成功但没有结果时返回估算价 (Estimated)
func (c *Client) MarketPricing(ctx context.Context, cardName, setName string) (Pricing, error) {
	query := fmt.Sprintf(`name:"%s" set.name:"%s"`, cardName, setName)
	result, err := c.SearchCards(ctx, query, 1, 1)
	if err != nil {
		return Pricing{}, fmt.Errorf("查询行情失败: %w", err)
	}
	if len(result.Cards) == 0 {
		return FallbackPricing(cardName, setName, c.now()), nil
	}
	return result.Cards[0].Pricing, nil
}

func (c *Client) transform(raw *rawCard) Card {
	image := raw.Images.Large
	if image == "" {
		image = raw.Images.Small
	}
	return Card{
		ID:       raw.ID,
		Name:     raw.Name,
		Set:      raw.Set.Name,
		SetID:    raw.Set.ID,
		Number:   raw.Number,
		Rarity:   raw.Rarity,
		ImageURL: image,
		Pricing:  extractPricing(raw, c.now()),
	}
}
