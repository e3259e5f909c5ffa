package database

import (
	"fmt"

	"github.com/supabase-community/supabase-go"

	"SafeRoute-App/internal/config"
)

// SupabaseClient Supabaseクライアントのラッパー
type SupabaseClient struct {
	Client *supabase.Client
}

// NewSupabaseClient 設定から新しいSupabaseクライアントを作成
func NewSupabaseClient(cfg *config.Config) (*SupabaseClient, error) {
	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("SupabaseのURLが設定されていません")
	}
	if cfg.SupabaseKey == "" {
		return nil, fmt.Errorf("Supabaseのキーが設定されていません")
	}

	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("Supabaseクライアントの初期化に失敗: %w", err)
	}

	return &SupabaseClient{
		Client: client,
	}, nil
}

// GetClient Supabaseクライアントを取得
func (sc *SupabaseClient) GetClient() *supabase.Client {
	return sc.Client
}

// HealthCheck データベース接続のヘルスチェック
func (sc *SupabaseClient) HealthCheck() error {
	if sc.Client == nil {
		return fmt.Errorf("Supabaseクライアントが初期化されていません")
	}
	return nil
}
