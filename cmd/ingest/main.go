package main

import (
	"context"
	"log"
	"os"

	"SafeRoute-App/internal/application"
	"SafeRoute-App/internal/config"
	"SafeRoute-App/internal/infrastructure/database"
	"SafeRoute-App/internal/infrastructure/refuge"
	"SafeRoute-App/internal/repository"
)

// 施設データ取り込みジョブ
// Refuge Restrooms APIからデフォルト座標周辺の施設を取得してupsertする
// 取得失敗またはバッチ失敗がある場合は非ゼロで終了する
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込み失敗: %v", err)
	}

	supabaseClient, err := database.NewSupabaseClient(cfg)
	if err != nil {
		log.Fatalf("Supabaseクライアント初期化失敗: %v", err)
	}

	bathroomsRepo := repository.NewSupabaseBathroomsRepository(supabaseClient)
	fetcher := refuge.NewClient(cfg)
	ingestService := application.NewIngestService(fetcher, bathroomsRepo)

	ctx := context.Background()
	report, err := ingestService.Run(ctx, cfg.DefaultLatitude, cfg.DefaultLongitude, refuge.FetchOptions{})
	if err != nil {
		log.Printf("施設データ取り込み失敗: %v", err)
		os.Exit(1)
	}

	if report.FailedBatches > 0 {
		log.Printf("一部のバッチが失敗しました (失敗バッチ%d)", report.FailedBatches)
		os.Exit(1)
	}

	log.Printf("施設データ取り込み成功 (取得%d件 / upsert%d件)", report.Fetched, report.Upserted)
}
