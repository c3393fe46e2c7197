package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: "8080"
  mode: debug

database:
  host: localhost
  port: 3306
  user: root
  password: root
  dbname: interview_prep
  charset: utf8mb4
  parsetime: true

jwt:
  secret: unit-test-secret
  expire_hours: 24

redis:
  host: localhost
  port: 6379
  db: 0

ai:
  base_url: https://api.groq.com/openai/v1
  api_key: test-key
  model: meta-llama/llama-4-scout-17b-16e-instruct
  temperature: 0.7
  max_retries: 3
  retry_delay_ms: 2000

storage:
  type: local
  local_path: uploads

rate_limit:
  max_requests: 100
  window_minutes: 1
`

func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(oldWd))
	})
}

func writeTestConfig(t *testing.T, yaml string) string {
	t.Helper()
	viper.Reset()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeTestConfig(t, testYAML)
	chdir(t, dir)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.AI.BaseURL)
	assert.Equal(t, 0.7, cfg.AI.Temperature)
	assert.Equal(t, 3, cfg.AI.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.AI.RetryDelay)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := writeTestConfig(t, testYAML)
	chdir(t, dir)
	t.Setenv("AI_API_KEY", "env-key")
	t.Setenv("DATABASE_HOST", "db.internal")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.AI.APIKey)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestLoadConfigRejectsShortSecretInRelease(t *testing.T) {
	dir := writeTestConfig(t, testYAML)
	chdir(t, dir)
	t.Setenv("SERVER_MODE", "release")

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret is too short")
}

func TestLoadConfigMissingFile(t *testing.T) {
	viper.Reset()
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
