package repository

import (
	"context"

	"SafeRoute-App/internal/domain/model"
)

type BathroomsRepository interface {
	// FindNearby nearby_bathroomsストアドプロシージャで半径内の施設を距離順に取得
	FindNearby(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]model.NearbyBathroom, error)
	GetByID(ctx context.Context, id int) (*model.Bathroom, error)
	Create(ctx context.Context, req *model.CreateBathroomRequest) (*model.Bathroom, error)
	Update(ctx context.Context, id int, req *model.UpdateBathroomRequest) (*model.Bathroom, error)
	Delete(ctx context.Context, id int) error
	// UpsertBatch (external_id, external_source) を競合キーとして一括upsert
	UpsertBatch(ctx context.Context, batch []model.BathroomUpsert) error
}
