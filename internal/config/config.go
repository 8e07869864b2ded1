package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when CONFIG_PATH is unset.
const DefaultPath = "configs/config.yaml"

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken    string `yaml:"bot_token"`
		ChatID      string `yaml:"chat_id"`
		PollTimeout int    `yaml:"poll_timeout" validate:"gte=0,lte=60"`
	} `yaml:"telegram"`
	DataSource struct {
		Provider          string  `yaml:"provider" validate:"oneof=tiingo yahoo mock"`
		BaseURL           string  `yaml:"base_url" validate:"omitempty,url"`
		APIKey            string  `yaml:"api_key"`
		RequestsPerSecond float64 `yaml:"requests_per_second" validate:"gte=0"`
	} `yaml:"data_source"`
	Cache struct {
		Backend       string `yaml:"backend" validate:"oneof=none memory redis"`
		RedisAddr     string `yaml:"redis_addr" validate:"required_if=Backend redis"`
		RedisPassword string `yaml:"redis_password"`
		RedisDB       int    `yaml:"redis_db" validate:"gte=0"`
		TTLMinutes    int    `yaml:"ttl_minutes" validate:"gte=0"`
	} `yaml:"cache"`
	Schedule struct {
		DigestCron string `yaml:"digest_cron"`
		RunOnStart bool   `yaml:"run_on_start"`
	} `yaml:"schedule"`
	Watchlist []string `yaml:"watchlist" validate:"dive,required"`
	Metrics   struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"metrics"`
	Log struct {
		Level string `yaml:"level" validate:"oneof=debug info warn error"`
		Env   string `yaml:"env" validate:"oneof=development production"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy" validate:"omitempty,url"`
}

// envOverrides lists the environment variables that override the YAML file.
// Empty values leave the file setting untouched.
type envOverrides struct {
	TelegramBotToken string   `envconfig:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string   `envconfig:"TELEGRAM_CHAT_ID"`
	Provider         string   `envconfig:"DATA_PROVIDER"`
	TiingoBaseURL    string   `envconfig:"TIINGO_BASE_URL"`
	TiingoAPIKey     string   `envconfig:"TIINGO_API_KEY"`
	CacheBackend     string   `envconfig:"CACHE_BACKEND"`
	RedisAddr        string   `envconfig:"REDIS_ADDR"`
	RedisPassword    string   `envconfig:"REDIS_PASSWORD"`
	DigestCron       string   `envconfig:"CRON_DIGEST"`
	RunOnStart       string   `envconfig:"RUN_ON_START"`
	Watchlist        []string `envconfig:"WATCHLIST"`
	MetricsAddr      string   `envconfig:"METRICS_ADDR"`
	LogLevel         string   `envconfig:"LOG_LEVEL"`
	AppEnv           string   `envconfig:"APP_ENV"`
	Proxy            string   `envconfig:"HTTPS_PROXY"`
}

// PathFromEnv returns CONFIG_PATH or DefaultPath.
func PathFromEnv() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads config from a YAML file, then a .env file in the working
// directory, then applies environment variable overrides and defaults.
// A missing YAML file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.applyEnv(env); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv(env envOverrides) error {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.Telegram.BotToken, env.TelegramBotToken)
	set(&c.Telegram.ChatID, env.TelegramChatID)
	set(&c.DataSource.Provider, env.Provider)
	set(&c.DataSource.BaseURL, env.TiingoBaseURL)
	set(&c.DataSource.APIKey, env.TiingoAPIKey)
	set(&c.Cache.Backend, env.CacheBackend)
	set(&c.Cache.RedisAddr, env.RedisAddr)
	set(&c.Cache.RedisPassword, env.RedisPassword)
	set(&c.Schedule.DigestCron, env.DigestCron)
	set(&c.Metrics.ListenAddr, env.MetricsAddr)
	set(&c.Log.Level, env.LogLevel)
	set(&c.Log.Env, env.AppEnv)
	set(&c.Proxy, env.Proxy)

	if env.RunOnStart != "" {
		v, err := strconv.ParseBool(env.RunOnStart)
		if err != nil {
			return fmt.Errorf("RUN_ON_START: %w", err)
		}
		c.Schedule.RunOnStart = v
	}
	if len(env.Watchlist) > 0 {
		c.Watchlist = env.Watchlist
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.DataSource.Provider == "" {
		if c.DataSource.APIKey != "" {
			c.DataSource.Provider = "tiingo"
		} else {
			c.DataSource.Provider = "yahoo"
		}
	}
	c.DataSource.Provider = strings.ToLower(c.DataSource.Provider)
	if c.DataSource.BaseURL == "" && c.DataSource.Provider == "tiingo" {
		c.DataSource.BaseURL = "https://api.tiingo.com"
	}
	if c.DataSource.RequestsPerSecond == 0 {
		c.DataSource.RequestsPerSecond = 1
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "none"
	}
	if c.Cache.TTLMinutes == 0 {
		c.Cache.TTLMinutes = 15
	}
	if c.Telegram.PollTimeout == 0 {
		c.Telegram.PollTimeout = 30
	}
	if c.Schedule.DigestCron == "" {
		c.Schedule.DigestCron = "0 0 22 * * 1-5"
	}
	if len(c.Watchlist) == 0 {
		c.Watchlist = []string{"SPY", "QQQ", "AAPL", "MSFT", "NVDA"}
	}
	for i, t := range c.Watchlist {
		c.Watchlist[i] = strings.ToUpper(strings.TrimSpace(t))
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Env == "" {
		c.Log.Env = "development"
	}
}

// CacheTTL returns the provider cache lifetime.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLMinutes) * time.Minute
}

// Validate checks the settings every binary needs.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.DataSource.Provider == "tiingo" && c.DataSource.APIKey == "" {
		return fmt.Errorf("data_source.api_key is required for the tiingo provider")
	}
	return nil
}

// ValidateBot additionally checks the Telegram and schedule settings.
func (c *Config) ValidateBot() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.Schedule.DigestCron == "" {
		return fmt.Errorf("schedule.digest_cron is required")
	}
	return nil
}
