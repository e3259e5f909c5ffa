package main

import (
	"log"

	"SafeRoute-App/internal/config"
	"SafeRoute-App/internal/infrastructure/database"
	"SafeRoute-App/internal/migrate"
)

// スキーマ適用コマンド
// PostgREST経由ではDDLを実行できないため、PostgreSQLへ直接接続して適用する
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込み失敗: %v", err)
	}

	pgClient, err := database.NewPostgreSQLClient(cfg)
	if err != nil {
		log.Fatalf("PostgreSQLクライアント初期化失敗: %v", err)
	}
	defer pgClient.Close()

	if err := migrate.EnsureSchema(pgClient.DB); err != nil {
		log.Fatalf("スキーマ適用失敗: %v", err)
	}

	log.Println("✅ スキーマ適用が完了しました")
}
