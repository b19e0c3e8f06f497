package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/shouni/gemini-wallpaper-kit/pkg/generator"
)

// APIKeyEnv は Imagen API の認証に使う唯一の環境変数名です。
const APIKeyEnv = "GEMINI_API_KEY"

// Config は環境変数から読み込むアプリケーション設定です。
type Config struct {
	AppEnv           string
	LogLevel         slog.Level
	Port             string
	GeminiAPIKey     string
	ImageModel       string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// Load は .env（存在すれば）を読み込んだ上で環境変数から Config を作成します。
// APIキーが未設定でもエラーにはしません。その場合は生成クライアントが未初期化になります。
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf(".env の読み込みに失敗しました: %w", err)
	}
	return FromEnv()
}

// FromEnv は現在の環境変数だけから Config を作成します。
func FromEnv() (*Config, error) {
	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		LogLevel:         level,
		Port:             getEnv("PORT", "8080"),
		GeminiAPIKey:     strings.TrimSpace(os.Getenv(APIKeyEnv)),
		ImageModel:       getEnv("GEMINI_IMAGE_MODEL", generator.DefaultModel),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 90)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric: %q", cfg.Port)
	}

	return cfg, nil
}

// Addr は HTTP サーバーの待ち受けアドレスを返します。
func (c *Config) Addr() string {
	return ":" + c.Port
}

// IsDevelopment は開発環境かどうかを返します。
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// HasAPIKey は APIキーが設定されているかを返します。
func (c *Config) HasAPIKey() bool {
	return c.GeminiAPIKey != ""
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL が不正です: %w", err)
	}
	return level, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
