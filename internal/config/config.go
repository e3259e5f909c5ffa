package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config アプリケーション全体の設定
// main で一度だけ構築し、各コンポーネントへ明示的に注入する
type Config struct {
	SupabaseURL        string // SupabaseプロジェクトのURL
	SupabaseKey        string // Supabaseのサービスロールキー
	SupabaseDBPassword string // PostgreSQL直接接続用のパスワード（migrateのみ使用）
	Port               string // HTTPサーバーのポート
	RefugeBaseURL      string // Refuge Restrooms APIのベースURL
	DefaultLatitude    float64
	DefaultLongitude   float64
}

const (
	// DefaultRefugeBaseURL Refuge Restrooms APIのベースURL
	DefaultRefugeBaseURL = "https://www.refugerestrooms.org/api/v1/restrooms"

	// デフォルトの取り込み座標（ボストン）
	defaultLatitude  = 42.3601
	defaultLongitude = -71.0589
)

// Load .envと環境変数から設定を読み込む
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_SERVICE_ROLE")

	if supabaseURL == "" || supabaseKey == "" {
		return nil, fmt.Errorf("SUPABASE_URLとSUPABASE_SERVICE_ROLE環境変数が設定されていません")
	}

	cfg := &Config{
		SupabaseURL:        supabaseURL,
		SupabaseKey:        supabaseKey,
		SupabaseDBPassword: os.Getenv("SUPABASE_DB_PASSWORD"),
		Port:               os.Getenv("PORT"),
		RefugeBaseURL:      os.Getenv("REFUGE_RESTROOMS_API_BASE_URL"),
		DefaultLatitude:    defaultLatitude,
		DefaultLongitude:   defaultLongitude,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.RefugeBaseURL == "" {
		cfg.RefugeBaseURL = DefaultRefugeBaseURL
	}

	return cfg, nil
}
