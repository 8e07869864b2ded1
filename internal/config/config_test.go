package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "yahoo", cfg.DataSource.Provider)
	assert.Equal(t, "none", cfg.Cache.Backend)
	assert.Equal(t, "0 0 22 * * 1-5", cfg.Schedule.DigestCron)
	assert.Equal(t, []string{"SPY", "QQQ", "AAPL", "MSFT", "NVDA"}, cfg.Watchlist)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 15, cfg.Cache.TTLMinutes)
	require.NoError(t, cfg.Validate())
	assert.Error(t, cfg.ValidateBot())
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, `
telegram:
  bot_token: file-token
  chat_id: "42"
data_source:
  provider: tiingo
  api_key: file-key
cache:
  backend: redis
  redis_addr: localhost:6379
watchlist: [aapl, " msft "]
`)
	t.Setenv("TIINGO_API_KEY", "env-key")
	t.Setenv("RUN_ON_START", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file-token", cfg.Telegram.BotToken)
	assert.Equal(t, "env-key", cfg.DataSource.APIKey)
	assert.Equal(t, "https://api.tiingo.com", cfg.DataSource.BaseURL)
	assert.True(t, cfg.Schedule.RunOnStart)
	assert.Equal(t, []string{"AAPL", "MSFT"}, cfg.Watchlist)
	require.NoError(t, cfg.ValidateBot())
}

func TestLoad_WatchlistFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WATCHLIST", "tsla,nvda")
	cfg, err := Load(DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"TSLA", "NVDA"}, cfg.Watchlist)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("LOG_LEVEL") })

	cfg, err := Load(DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_BadRunOnStart(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RUN_ON_START", "maybe")
	_, err := Load(DefaultPath)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(DefaultPath)
	require.NoError(t, err)

	cfg.DataSource.Provider = "tiingo"
	cfg.DataSource.APIKey = ""
	assert.ErrorContains(t, cfg.Validate(), "api_key")

	cfg.DataSource.Provider = "bloomberg"
	assert.Error(t, cfg.Validate())

	cfg.DataSource.Provider = "mock"
	cfg.Cache.Backend = "redis"
	cfg.Cache.RedisAddr = ""
	assert.Error(t, cfg.Validate())

	cfg.Cache.RedisAddr = "localhost:6379"
	assert.NoError(t, cfg.Validate())
}
