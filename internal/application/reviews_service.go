package application

import (
	"context"
	"fmt"

	"SafeRoute-App/internal/domain/model"
	"SafeRoute-App/internal/domain/repository"
)

// ReviewsService レビューに関するビジネスロジックを提供するサービス
// 更新・削除の操作は公開しない
type ReviewsService interface {
	// ListByBathroom 指定施設のレビュー一覧を投稿日時の降順で取得
	ListByBathroom(ctx context.Context, bathroomID int, limit int) ([]model.Review, error)

	// Create レビューを新規作成（評価は1〜5のみ受け付ける）
	Create(ctx context.Context, req *model.CreateReviewRequest) (*model.Review, error)
}

// reviewsServiceImpl ReviewsServiceの実装
type reviewsServiceImpl struct {
	reviewsRepo repository.ReviewsRepository
}

// NewReviewsService ReviewsServiceの新しいインスタンスを作成
func NewReviewsService(reviewsRepo repository.ReviewsRepository) ReviewsService {
	return &reviewsServiceImpl{
		reviewsRepo: reviewsRepo,
	}
}

// ListByBathroom 指定施設のレビュー一覧を取得
func (s *reviewsServiceImpl) ListByBathroom(ctx context.Context, bathroomID int, limit int) ([]model.Review, error) {
	if bathroomID <= 0 {
		return nil, fmt.Errorf("%w: 施設IDが不正です: %d", model.ErrValidation, bathroomID)
	}
	if limit <= 0 {
		limit = model.DefaultReviewsLimit
	}

	reviews, err := s.reviewsRepo.ListByBathroom(ctx, bathroomID, limit)
	if err != nil {
		return nil, fmt.Errorf("レビュー一覧の取得失敗: %w", err)
	}

	return reviews, nil
}

// Create レビューを新規作成する。評価が範囲外の場合はストアに到達する前に拒否する
func (s *reviewsServiceImpl) Create(ctx context.Context, req *model.CreateReviewRequest) (*model.Review, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("リクエストの検証失敗: %w", err)
	}

	review, err := s.reviewsRepo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("レビューの作成失敗: %w", err)
	}

	return review, nil
}

// validateCreateRequest 作成リクエストのバリデーション
func (s *reviewsServiceImpl) validateCreateRequest(req *model.CreateReviewRequest) error {
	if req.BathroomID <= 0 {
		return fmt.Errorf("%w: 施設IDは必須です", model.ErrValidation)
	}
	if req.Rating < model.RatingMin || req.Rating > model.RatingMax {
		return fmt.Errorf("%w: 評価は%dから%dの範囲内である必要があります: %d", model.ErrValidation, model.RatingMin, model.RatingMax, req.Rating)
	}
	return nil
}
