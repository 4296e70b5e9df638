package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config 应用配置
type Config struct {
	Server    ServerConfig
	Vapi      VapiConfig
	Sheets    SheetsConfig
	Logger    LoggerConfig
	RateLimit RateLimitConfig
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port      string
	PublicURL string // 对外可访问的地址, 仅供 provision 使用
}

// VapiConfig Vapi 平台配置
type VapiConfig struct {
	APIKey        string
	BaseURL       string
	PhoneNumberID string // 发起回访电话所用的号码
	AssistantID   string // 已部署的健康回访助手
	Timeout       time.Duration
}

// SheetsConfig Google Sheets 配置
type SheetsConfig struct {
	ServiceAccountEmail string
	PrivateKey          string
	SpreadsheetID       string
	Range               string
	TokenURL            string
	Endpoint            string // 为空时使用 Google 默认地址
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level   string // 日志级别: debug, info, warn, error
	Verbose bool   // 是否输出外部请求/响应详情
}

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	Enabled         bool
	RequestsPerSec  float64
	Burst           int
	CleanupInterval time.Duration
}

// googleJWTTokenURL mirrors google.JWTTokenURL; config stays free of SDK imports.
const googleJWTTokenURL = "https://oauth2.googleapis.com/token"

// Load 加载配置
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      getEnv("PORT", "3000"),
			PublicURL: strings.TrimRight(getEnv("SERVER_URL", ""), "/"),
		},
		Vapi: VapiConfig{
			APIKey:        getEnv("VAPI_API_KEY", ""),
			BaseURL:       strings.TrimRight(getEnv("VAPI_BASE_URL", "https://api.vapi.ai"), "/"),
			PhoneNumberID: getEnv("VAPI_PHONE_NUMBER_ID", ""),
			AssistantID:   getEnv("VAPI_ASSISTANT_ID", ""),
			Timeout:       getDurationEnv("VAPI_TIMEOUT", 30*time.Second),
		},
		Sheets: SheetsConfig{
			ServiceAccountEmail: getEnv("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
			PrivateKey:          normalizePrivateKey(getEnv("GOOGLE_PRIVATE_KEY", "")),
			SpreadsheetID:       getEnv("SPREADSHEET_ID", ""),
			Range:               getEnv("SHEETS_RANGE", "Sheet1!A:F"),
			TokenURL:            getEnv("GOOGLE_TOKEN_URL", googleJWTTokenURL),
			Endpoint:            getEnv("SHEETS_ENDPOINT", ""),
		},
		Logger: LoggerConfig{
			Level:   getEnv("LOG_LEVEL", "info"),
			Verbose: getBoolEnv("VERBOSE_LOGGING", false),
		},
		RateLimit: RateLimitConfig{
			Enabled:         getBoolEnv("RATE_LIMIT_ENABLED", false),
			RequestsPerSec:  getFloatEnv("RATE_LIMIT_RPS", 5),
			Burst:           getIntEnv("RATE_LIMIT_BURST", 10),
			CleanupInterval: getDurationEnv("RATE_LIMIT_CLEANUP_INTERVAL", 10*time.Minute),
		},
	}
}

// ValidateServer reports every credential the webhook server cannot start without.
func (c *Config) ValidateServer() error {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"VAPI_API_KEY", c.Vapi.APIKey},
		{"VAPI_PHONE_NUMBER_ID", c.Vapi.PhoneNumberID},
		{"GOOGLE_SERVICE_ACCOUNT_EMAIL", c.Sheets.ServiceAccountEmail},
		{"GOOGLE_PRIVATE_KEY", c.Sheets.PrivateKey},
		{"SPREADSHEET_ID", c.Sheets.SpreadsheetID},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateProvision only needs the platform key.
func (c *Config) ValidateProvision() error {
	if strings.TrimSpace(c.Vapi.APIKey) == "" {
		return fmt.Errorf("missing required environment variables: VAPI_API_KEY")
	}
	return nil
}

// normalizePrivateKey 展开 .env 中以字面量 \n 保存的换行
func normalizePrivateKey(key string) string {
	key = strings.Trim(key, "\"")
	return strings.ReplaceAll(key, `\n`, "\n")
}

// getEnv 获取环境变量
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv 获取整数类型的环境变量
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return n
		}
	}
	return defaultValue
}

// getFloatEnv 获取浮点类型的环境变量
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getDurationEnv 获取时长类型的环境变量(支持秒为单位)
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		// 尝试解析为秒数
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
		// 尝试解析为 Go duration 格式 (如 "25s", "10m", "1h")
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getBoolEnv 获取布尔类型的环境变量
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		value = strings.ToLower(strings.TrimSpace(value))
		return value == "true" || value == "1" || value == "yes" || value == "on"
	}
	return defaultValue
}
