package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	CORS       CORSConfig
	Upload     UploadConfig
	Translator TranslatorConfig
	Storage    StorageConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig limits what the extract endpoint accepts.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxBytes returns the upload limit in bytes.
func (u *UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// TranslatorConfig selects the LLM provider. The API key is not part of it:
// every request carries the caller's own credential.
type TranslatorConfig struct {
	Provider    string `mapstructure:"provider"`
	Model       string `mapstructure:"model"`
	BaseURL     string `mapstructure:"base_url"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	MaxRetries  int    `mapstructure:"max_retries"`
}

// Timeout returns the per-attempt timeout, defaulting to two minutes.
func (t *TranslatorConfig) Timeout() time.Duration {
	if t.TimeoutSecs <= 0 {
		return 120 * time.Second
	}
	return time.Duration(t.TimeoutSecs) * time.Second
}

// StorageConfig controls the optional archive of translated downloads.
type StorageConfig struct {
	Provider string   `mapstructure:"provider"`
	S3       S3Config `mapstructure:"s3"`
}

// Enabled reports whether translated downloads are archived.
func (s *StorageConfig) Enabled() bool {
	return s.Provider == "s3"
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// Load reads configuration from environment variables with the DOCTRANSLATE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCTRANSLATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "5m")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "http://localhost:8080,http://127.0.0.1:8080")

	v.SetDefault("upload.max_file_size_mb", 20)

	// Translator defaults: one attempt, no retry
	v.SetDefault("translator.provider", "openai")
	v.SetDefault("translator.model", "")
	v.SetDefault("translator.base_url", "")
	v.SetDefault("translator.timeout_secs", 120)
	v.SetDefault("translator.max_retries", 0)

	// Storage defaults: archive disabled
	v.SetDefault("storage.provider", "none")
	v.SetDefault("storage.s3.region", "us-east-1")
	v.SetDefault("storage.s3.bucket", "doctranslate-downloads")
	v.SetDefault("storage.s3.endpoint", "")
	v.SetDefault("storage.s3.presign_expiry", 3600)

	envBindings := map[string]string{
		"server.port":               "DOCTRANSLATE_SERVER_PORT",
		"server.read_timeout":       "DOCTRANSLATE_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "DOCTRANSLATE_SERVER_WRITE_TIMEOUT",
		"server.environment":        "DOCTRANSLATE_SERVER_ENVIRONMENT",
		"log.level":                 "DOCTRANSLATE_LOG_LEVEL",
		"log.format":                "DOCTRANSLATE_LOG_FORMAT",
		"cors.allowed_origins":      "DOCTRANSLATE_CORS_ALLOWED_ORIGINS",
		"upload.max_file_size_mb":   "DOCTRANSLATE_UPLOAD_MAX_FILE_SIZE_MB",
		"translator.provider":       "DOCTRANSLATE_TRANSLATOR_PROVIDER",
		"translator.model":          "DOCTRANSLATE_TRANSLATOR_MODEL",
		"translator.base_url":       "DOCTRANSLATE_TRANSLATOR_BASE_URL",
		"translator.timeout_secs":   "DOCTRANSLATE_TRANSLATOR_TIMEOUT_SECS",
		"translator.max_retries":    "DOCTRANSLATE_TRANSLATOR_MAX_RETRIES",
		"storage.provider":          "DOCTRANSLATE_STORAGE_PROVIDER",
		"storage.s3.region":         "DOCTRANSLATE_STORAGE_S3_REGION",
		"storage.s3.bucket":         "DOCTRANSLATE_STORAGE_S3_BUCKET",
		"storage.s3.endpoint":       "DOCTRANSLATE_STORAGE_S3_ENDPOINT",
		"storage.s3.access_key":     "DOCTRANSLATE_STORAGE_S3_ACCESS_KEY",
		"storage.s3.secret_key":     "DOCTRANSLATE_STORAGE_S3_SECRET_KEY",
		"storage.s3.presign_expiry": "DOCTRANSLATE_STORAGE_S3_PRESIGN_EXPIRY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// PaaS platforms set PORT. Use it if DOCTRANSLATE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DOCTRANSLATE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.Translator = TranslatorConfig{
		Provider:    v.GetString("translator.provider"),
		Model:       v.GetString("translator.model"),
		BaseURL:     v.GetString("translator.base_url"),
		TimeoutSecs: v.GetInt("translator.timeout_secs"),
		MaxRetries:  v.GetInt("translator.max_retries"),
	}
	cfg.Storage = StorageConfig{
		Provider: v.GetString("storage.provider"),
		S3: S3Config{
			Region:        v.GetString("storage.s3.region"),
			Bucket:        v.GetString("storage.s3.bucket"),
			Endpoint:      v.GetString("storage.s3.endpoint"),
			AccessKey:     v.GetString("storage.s3.access_key"),
			SecretKey:     v.GetString("storage.s3.secret_key"),
			PresignExpiry: v.GetInt64("storage.s3.presign_expiry"),
		},
	}

	return cfg, nil
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
