package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultSessionSecret 未配置 SESSION_SECRET 时的兜底密钥，仅用于本地开发
const DefaultSessionSecret = "elite-cards-secret-key-change-in-production"

// Config 全局配置
type Config struct {
	Environment string
	LogLevel    string

	Server     ServerConfig
	Database   DatabaseConfig
	Session    SessionConfig
	Shopify    ShopifyConfig
	PokemonTCG PokemonTCGConfig
	Cron       CronConfig
	Redis      RedisConfig
	Store      StoreConfig
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port        string
	AppURL      string   // 应用外部访问地址，用于拼接 OAuth redirect_uri
	CORSOrigins []string // 允许的跨域来源
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	URL string
}

// SessionConfig 会话配置
type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

// ShopifyConfig Shopify App 配置
type ShopifyConfig struct {
	APIKey           string
	APISecret        string
	Scopes           []string
	APIVersion       string
	Timeout          time.Duration
	VerifyHMAC       bool
	AdminShopDomains []string // 首次安装即授予 admin 的店铺
}

// PokemonTCGConfig 卡牌数据 API 配置
type PokemonTCGConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// CronConfig 价格同步调度配置
type CronConfig struct {
	Secret          string // 外部调度器 Bearer 密钥
	PriceSyncEnable bool
	PriceSyncSpec   string
}

// RedisConfig Redis 配置 (为空时使用内存缓存)
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// StoreConfig 商户店铺批量操作配置
type StoreConfig struct {
	BulkConcurrency int
}

// Load 加载配置：.env -> 环境变量 -> 默认值
func Load() (*Config, error) {
	// .env 可选
	_ = godotenv.Load()

	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	cfg := &Config{
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		Server: ServerConfig{
			Port:        getEnvOrViper("SERVER_PORT", "8080"),
			AppURL:      strings.TrimRight(getEnvOrViper("APP_URL", "http://localhost:8080"), "/"),
			CORSOrigins: splitList(getEnvOrViper("CORS_ORIGINS", "")),
		},
		Database: DatabaseConfig{
			URL: strings.TrimSpace(getEnvOrViper("DATABASE_URL", "")),
		},
		Session: SessionConfig{
			Secret: getEnvOrViper("SESSION_SECRET", ""),
			TTL:    7 * 24 * time.Hour,
		},
		Shopify: ShopifyConfig{
			APIKey:           strings.TrimSpace(getEnvOrViper("SHOPIFY_API_KEY", "")),
			APISecret:        strings.TrimSpace(getEnvOrViper("SHOPIFY_API_SECRET", "")),
			Scopes:           splitList(getEnvOrViper("SHOPIFY_SCOPES", "read_products,write_products")),
			APIVersion:       getEnvOrViper("SHOPIFY_API_VERSION", "2024-10"),
			Timeout:          getDuration("SHOPIFY_TIMEOUT", 30*time.Second),
			VerifyHMAC:       getBool("SHOPIFY_VERIFY_HMAC", true),
			AdminShopDomains: splitList(getEnvOrViper("ADMIN_SHOP_DOMAINS", "")),
		},
		PokemonTCG: PokemonTCGConfig{
			APIKey:  strings.TrimSpace(getEnvOrViper("POKEMON_TCG_API_KEY", "")),
			BaseURL: getEnvOrViper("POKEMON_TCG_BASE_URL", "https://api.pokemontcg.io/v2"),
			Timeout: getDuration("POKEMON_TCG_TIMEOUT", 60*time.Second),
		},
		Cron: CronConfig{
			Secret:          strings.TrimSpace(getEnvOrViper("CRON_SECRET", "")),
			PriceSyncEnable: getBool("PRICE_SYNC_ENABLED", false),
			PriceSyncSpec:   getEnvOrViper("PRICE_SYNC_CRON", "0 0 */6 * * *"),
		},
		Redis: RedisConfig{
			Addr:     strings.TrimSpace(getEnvOrViper("REDIS_ADDR", "")),
			Password: getEnvOrViper("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		Store: StoreConfig{
			BulkConcurrency: getInt("STORE_BULK_CONCURRENCY", 1),
		},
	}

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL 未配置")
	}

	return cfg, nil
}

// SessionSecretOrDefault 返回会话密钥；未配置时返回不安全的兜底值
func (c *Config) SessionSecretOrDefault() (secret string, fallback bool) {
	if c.Session.Secret == "" {
		return DefaultSessionSecret, true
	}
	return c.Session.Secret, false
}

// ShopifyRedirectURI OAuth 回调地址
func (c *Config) ShopifyRedirectURI() string {
	return c.Server.AppURL + "/api/auth/callback"
}

// ==================== 工具函数 ====================

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	raw := getEnvOrViper(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return v
}

func getInt(key string, defaultValue int) int {
	raw := getEnvOrViper(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnvOrViper(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return defaultValue
	}
	return v
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
