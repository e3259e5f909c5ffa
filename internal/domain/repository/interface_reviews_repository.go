package repository

import (
	"context"

	"SafeRoute-App/internal/domain/model"
)

type ReviewsRepository interface {
	// ListByBathroom 指定施設のレビューを投稿日時の降順で取得（最大limit件）
	ListByBathroom(ctx context.Context, bathroomID int, limit int) ([]model.Review, error)
	Create(ctx context.Context, req *model.CreateReviewRequest) (*model.Review, error)
}
