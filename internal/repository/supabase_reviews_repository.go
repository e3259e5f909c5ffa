package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/supabase-community/postgrest-go"

	"SafeRoute-App/internal/domain/model"
	"SafeRoute-App/internal/domain/repository"
	"SafeRoute-App/internal/infrastructure/database"
)

type SupabaseReviewsRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseReviewsRepository(client *database.SupabaseClient) repository.ReviewsRepository {
	return &SupabaseReviewsRepository{
		client: client,
	}
}

// ListByBathroom 指定施設のレビューを投稿日時の降順で取得する
func (r *SupabaseReviewsRepository) ListByBathroom(ctx context.Context, bathroomID int, limit int) ([]model.Review, error) {
	data, count, err := r.client.GetClient().From("reviews").
		Select("*", "exact", false).
		Eq("bathroom_id", strconv.Itoa(bathroomID)).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("レビューデータの取得失敗: %w", err)
	}
	_ = count

	var reviews []model.Review
	if err := json.Unmarshal([]byte(data), &reviews); err != nil {
		return nil, fmt.Errorf("レビューデータのJSONアンマーシャル失敗: %w", err)
	}

	return reviews, nil
}

func (r *SupabaseReviewsRepository) Create(ctx context.Context, req *model.CreateReviewRequest) (*model.Review, error) {
	// postgrest-goが内部でJSONマーシャルするため、構造体をそのまま渡す
	data, _, err := r.client.GetClient().From("reviews").Insert(req, false, "", "representation", "").Execute()
	if err != nil {
		return nil, fmt.Errorf("レビューデータの作成失敗: %w", err)
	}

	var created []model.Review
	if err := json.Unmarshal([]byte(data), &created); err != nil {
		return nil, fmt.Errorf("作成結果のJSONアンマーシャル失敗: %w", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("レビューデータの作成結果が空です")
	}

	return &created[0], nil
}
