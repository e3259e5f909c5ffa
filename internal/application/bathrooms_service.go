package application

import (
	"context"
	"fmt"
	"log"

	"SafeRoute-App/internal/domain/model"
	"SafeRoute-App/internal/domain/repository"
	repoImpl "SafeRoute-App/internal/repository"
)

// BathroomsService 施設に関するビジネスロジックを提供するサービス
type BathroomsService interface {
	// GetNearby 指定座標の周辺施設を検索し、任意のフィルタを適用して返す
	GetNearby(ctx context.Context, query *model.NearbySearchQuery) ([]model.NearbyBathroom, error)

	// GetByID 施設をIDで取得
	GetByID(ctx context.Context, id int) (*model.Bathroom, error)

	// Create 施設を新規作成
	Create(ctx context.Context, req *model.CreateBathroomRequest) (*model.Bathroom, error)

	// Update 施設を部分更新（nilでないフィールドのみ適用）
	Update(ctx context.Context, id int, req *model.UpdateBathroomRequest) (*model.Bathroom, error)

	// Delete 施設を削除
	Delete(ctx context.Context, id int) error
}

// bathroomsServiceImpl BathroomsServiceの実装
type bathroomsServiceImpl struct {
	bathroomsRepo repository.BathroomsRepository
}

// NewBathroomsService BathroomsServiceの新しいインスタンスを作成
func NewBathroomsService(bathroomsRepo repository.BathroomsRepository) BathroomsService {
	return &bathroomsServiceImpl{
		bathroomsRepo: bathroomsRepo,
	}
}

// GetNearby 近傍検索を実行する
// 2段階で処理する: (1) ストアドプロシージャで半径・件数制限済みの候補を取得し、
// (2) 指定されたフィルタをメモリ上で順番（rating_min → is_unisex → is_accessible
// → has_changing_table）に適用する。件数制限はフィルタ適用前に効いているため、
// フィルタを指定すると該当施設が他に残っていてもlimit未満の結果になりうる
func (s *bathroomsServiceImpl) GetNearby(ctx context.Context, query *model.NearbySearchQuery) ([]model.NearbyBathroom, error) {
	if err := s.validateNearbyQuery(query); err != nil {
		return nil, fmt.Errorf("検索条件の検証失敗: %w", err)
	}

	if query.RadiusKm <= 0 {
		query.RadiusKm = model.DefaultSearchRadiusKm
	}
	if query.Limit <= 0 {
		query.Limit = model.DefaultSearchLimit
	}

	candidates, err := s.bathroomsRepo.FindNearby(ctx, query.Latitude, query.Longitude, query.RadiusKm, query.Limit)
	if err != nil {
		return nil, fmt.Errorf("近傍施設の取得失敗: %w", err)
	}

	filtered := candidates

	if query.RatingMin != nil {
		filtered = filterNearby(filtered, func(b model.NearbyBathroom) bool {
			return b.AverageRating >= *query.RatingMin
		})
		log.Printf("rating_minフィルタ適用後: %d件", len(filtered))
	}

	if query.IsUnisex != nil {
		filtered = filterNearby(filtered, func(b model.NearbyBathroom) bool {
			return b.IsUnisex == *query.IsUnisex
		})
		log.Printf("is_unisexフィルタ適用後: %d件", len(filtered))
	}

	if query.IsAccessible != nil {
		filtered = filterNearby(filtered, func(b model.NearbyBathroom) bool {
			return b.IsAccessible == *query.IsAccessible
		})
		log.Printf("is_accessibleフィルタ適用後: %d件", len(filtered))
	}

	if query.HasChangingTable != nil {
		filtered = filterNearby(filtered, func(b model.NearbyBathroom) bool {
			return b.HasChangingTable == *query.HasChangingTable
		})
		log.Printf("has_changing_tableフィルタ適用後: %d件", len(filtered))
	}

	log.Printf("近傍検索結果: 候補%d件 → フィルタ後%d件", len(candidates), len(filtered))

	return filtered, nil
}

// GetByID 施設をIDで取得
func (s *bathroomsServiceImpl) GetByID(ctx context.Context, id int) (*model.Bathroom, error) {
	bathroom, err := s.bathroomsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return bathroom, nil
}

// Create 施設を新規作成
func (s *bathroomsServiceImpl) Create(ctx context.Context, req *model.CreateBathroomRequest) (*model.Bathroom, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("リクエストの検証失敗: %w", err)
	}

	bathroom, err := s.bathroomsRepo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("施設の作成失敗: %w", err)
	}

	return bathroom, nil
}

// Update 施設を部分更新する。更新フィールドが空の場合は現在の行をそのまま返す
func (s *bathroomsServiceImpl) Update(ctx context.Context, id int, req *model.UpdateBathroomRequest) (*model.Bathroom, error) {
	if req.Latitude != nil && (*req.Latitude < -90 || *req.Latitude > 90) {
		return nil, fmt.Errorf("%w: 緯度は-90から90の範囲内である必要があります", model.ErrValidation)
	}
	if req.Longitude != nil && (*req.Longitude < -180 || *req.Longitude > 180) {
		return nil, fmt.Errorf("%w: 経度は-180から180の範囲内である必要があります", model.ErrValidation)
	}

	bathroom, err := s.bathroomsRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	return bathroom, nil
}

// Delete 施設を削除する。存在しないIDの削除も成功として扱う
func (s *bathroomsServiceImpl) Delete(ctx context.Context, id int) error {
	if err := s.bathroomsRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("施設の削除失敗: %w", err)
	}
	return nil
}

// validateNearbyQuery 近傍検索条件のバリデーション
func (s *bathroomsServiceImpl) validateNearbyQuery(query *model.NearbySearchQuery) error {
	if query == nil {
		return fmt.Errorf("%w: 検索条件は必須です", model.ErrValidation)
	}
	return repoImpl.ValidateCoordinates(query.Latitude, query.Longitude)
}

// validateCreateRequest 作成リクエストのバリデーション
func (s *bathroomsServiceImpl) validateCreateRequest(req *model.CreateBathroomRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: 施設名は必須です", model.ErrValidation)
	}
	if req.Latitude == nil || req.Longitude == nil {
		return fmt.Errorf("%w: 緯度経度は必須です", model.ErrValidation)
	}
	return repoImpl.ValidateCoordinates(*req.Latitude, *req.Longitude)
}

// filterNearby 述語を満たす施設のみを残す
func filterNearby(bathrooms []model.NearbyBathroom, keep func(model.NearbyBathroom) bool) []model.NearbyBathroom {
	filtered := make([]model.NearbyBathroom, 0, len(bathrooms))
	for _, b := range bathrooms {
		if keep(b) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
