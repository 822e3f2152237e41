package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderOpenAI      = "openai"
	ProviderGemini      = "gemini"
	ProviderHuggingFace = "huggingface"
)

var ErrMissingAPIKey = errors.New("AI API key is not set")

type Config struct {
	Server  ServerConfig
	AI      AIConfig
	Log     LogConfig     `mapstructure:"log"`
	Tracing TracingConfig `mapstructure:"tracing"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type AIConfig struct {
	Provider       string `mapstructure:"provider"`
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Timeout 单次上游调用超时时间
func (c AIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type LogConfig struct {
	File string `mapstructure:"file"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// 各提供方默认值: base URL、模型、专用密钥环境变量
var providerDefaults = map[string][3]string{
	ProviderOpenAI:      {"https://api.openai.com/v1", "gpt-4o-mini", "OPENAI_API_KEY"},
	ProviderGemini:      {"https://generativelanguage.googleapis.com/v1beta", "gemini-1.5-flash", "GEMINI_API_KEY"},
	ProviderHuggingFace: {"https://api-inference.huggingface.co/models", "mistralai/Mistral-7B-Instruct-v0.2", "HUGGINGFACE_TOKEN"},
}

// LoadConfig 加载配置文件(可选)和环境变量，存在 .env 时先加载
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("ai.provider", ProviderOpenAI)
	v.SetDefault("ai.timeout_seconds", 60)
	v.SetDefault("log.file", "logs/app.log")

	v.AutomaticEnv()

	// Server
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "SERVER_MODE")

	// AI
	v.BindEnv("ai.provider", "AI_PROVIDER")
	v.BindEnv("ai.base_url", "AI_BASE_URL")
	v.BindEnv("ai.api_key", "AI_API_KEY")
	v.BindEnv("ai.model", "AI_MODEL")
	v.BindEnv("ai.timeout_seconds", "AI_TIMEOUT_SECONDS")

	// Log
	v.BindEnv("log.file", "LOG_FILE")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.AI.Provider = strings.ToLower(strings.TrimSpace(cfg.AI.Provider))
	defaults, ok := providerDefaults[cfg.AI.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown AI provider %q (expected openai, gemini or huggingface)", cfg.AI.Provider)
	}

	if cfg.AI.APIKey == "" {
		v.BindEnv("ai.provider_api_key", defaults[2])
		cfg.AI.APIKey = v.GetString("ai.provider_api_key")
	}
	if cfg.AI.APIKey == "" {
		return nil, fmt.Errorf("%w: set AI_API_KEY or %s", ErrMissingAPIKey, defaults[2])
	}

	if cfg.AI.BaseURL == "" {
		cfg.AI.BaseURL = defaults[0]
	}
	cfg.AI.BaseURL = strings.TrimRight(cfg.AI.BaseURL, "/")
	if cfg.AI.Model == "" {
		cfg.AI.Model = defaults[1]
	}

	return &cfg, nil
}
