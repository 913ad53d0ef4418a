package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctranslate/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"http://localhost:8080", "http://127.0.0.1:8080"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, int64(20*1024*1024), cfg.Upload.MaxBytes())
	assert.Equal(t, "openai", cfg.Translator.Provider)
	assert.Equal(t, 0, cfg.Translator.MaxRetries)
	assert.Equal(t, 120*time.Second, cfg.Translator.Timeout())
	assert.False(t, cfg.Storage.Enabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DOCTRANSLATE_SERVER_PORT", ":9000")
	t.Setenv("DOCTRANSLATE_CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("DOCTRANSLATE_UPLOAD_MAX_FILE_SIZE_MB", "5")
	t.Setenv("DOCTRANSLATE_TRANSLATOR_PROVIDER", "ollama")
	t.Setenv("DOCTRANSLATE_TRANSLATOR_MODEL", "qwen2.5")
	t.Setenv("DOCTRANSLATE_TRANSLATOR_TIMEOUT_SECS", "30")
	t.Setenv("DOCTRANSLATE_TRANSLATOR_MAX_RETRIES", "2")
	t.Setenv("DOCTRANSLATE_STORAGE_PROVIDER", "s3")
	t.Setenv("DOCTRANSLATE_STORAGE_S3_BUCKET", "translations")
	t.Setenv("DOCTRANSLATE_STORAGE_S3_ACCESS_KEY", "AKIA-test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxBytes())
	assert.Equal(t, "ollama", cfg.Translator.Provider)
	assert.Equal(t, "qwen2.5", cfg.Translator.Model)
	assert.Equal(t, 30*time.Second, cfg.Translator.Timeout())
	assert.Equal(t, 2, cfg.Translator.MaxRetries)
	assert.True(t, cfg.Storage.Enabled())
	assert.Equal(t, "translations", cfg.Storage.S3.Bucket)
	assert.Equal(t, "AKIA-test", cfg.Storage.S3.AccessKey)
}

func TestLoad_PaaSPort(t *testing.T) {
	t.Setenv("PORT", "3000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Server.Port)
}

func TestLoad_ExplicitPortWinsOverPaaSPort(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("DOCTRANSLATE_SERVER_PORT", ":9000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Port)
}

func TestTranslatorConfig_Timeout_Default(t *testing.T) {
	cfg := config.TranslatorConfig{}
	assert.Equal(t, 120*time.Second, cfg.Timeout())
}
