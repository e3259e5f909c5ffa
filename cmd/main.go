package main

import (
	"fmt"
	"log"

	"SafeRoute-App/internal/application"
	"SafeRoute-App/internal/config"
	"SafeRoute-App/internal/handler"
	"SafeRoute-App/internal/infrastructure/database"
	"SafeRoute-App/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数: SUPABASE_URL, SUPABASE_SERVICE_ROLE")
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatalf("設定の読み込み失敗: %v", err)
	}

	fmt.Println("Initializing Supabase client...")
	supabaseClient, err := database.NewSupabaseClient(cfg)
	if err != nil {
		log.Fatalf("Supabaseクライアント初期化失敗: %v", err)
	}

	fmt.Println("Performing Supabase health check...")
	if err := supabaseClient.HealthCheck(); err != nil {
		log.Fatalf("Supabaseヘルスチェック失敗: %v", err)
	}
	fmt.Println("✅ Supabase connection successful!")

	// リポジトリ・サービス・ハンドラーの組み立て
	bathroomsRepo := repository.NewSupabaseBathroomsRepository(supabaseClient)
	reviewsRepo := repository.NewSupabaseReviewsRepository(supabaseClient)

	bathroomsService := application.NewBathroomsService(bathroomsRepo)
	reviewsService := application.NewReviewsService(reviewsRepo)

	bathroomsHandler := handler.NewBathroomsHandler(bathroomsService)
	reviewsHandler := handler.NewReviewsHandler(reviewsService)

	r := handler.NewRouter(bathroomsHandler, reviewsHandler)

	fmt.Printf("SafeRoute-App server starting on :%s...\n", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("サーバーの起動失敗: %v", err)
	}
}
