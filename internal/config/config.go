package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL      string // 接続文字列。あれば個別項目より優先
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート（5432）
	PostgresSSLMode  string // disable/require

	GoEnv       string   // dev/prod
	CORSOrigins []string // フロントのオリジン（CORSで使う）

	//ページネーション
	DefaultPageSize int // 10
	MaxPageSize     int // 100

	APITitle   string
	APIVersion string

	// DBクエリの上限時間。超えたら500で返す
	QueryTimeout time.Duration
}

// Loadは環境変数から設定を組み立てる。未設定はdev向けデフォルト。
func Load() (Config, error) {
	pgPort, err := atoiEnv("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}

	defaultPageSize, err := atoiEnv("DEFAULT_PAGE_SIZE", 10)
	if err != nil {
		return Config{}, err
	}

	maxPageSize, err := atoiEnv("MAX_PAGE_SIZE", 100)
	if err != nil {
		return Config{}, err
	}

	timeoutSec, err := atoiEnv("QUERY_TIMEOUT_SECONDS", 5)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "customer_db"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		GoEnv:       getenv("GO_ENV", "development"),
		CORSOrigins: splitOrigins(getenv("CORS_ORIGINS", "*")),

		DefaultPageSize: defaultPageSize,
		MaxPageSize:     maxPageSize,

		APITitle:   "Customer API",
		APIVersion: "1.0.0",

		QueryTimeout: time.Duration(timeoutSec) * time.Second,
	}

	//整合チェック
	if cfg.DefaultPageSize < 1 || cfg.DefaultPageSize > cfg.MaxPageSize {
		return Config{}, fmt.Errorf("DEFAULT_PAGE_SIZE must be between 1 and MAX_PAGE_SIZE")
	}
	if cfg.MaxPageSize < 1 {
		return Config{}, fmt.Errorf("MAX_PAGE_SIZE must be 1 or greater")
	}
	if cfg.QueryTimeout <= 0 {
		return Config{}, fmt.Errorf("QUERY_TIMEOUT_SECONDS must be 1 or greater")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

// "a,b,c" → ["a","b","c"]。空要素は捨てる。
func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
