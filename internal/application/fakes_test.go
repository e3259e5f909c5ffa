package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"SafeRoute-App/internal/domain/model"
	repoImpl "SafeRoute-App/internal/repository"
)

// fakeBathroomsRepository BathroomsRepositoryのインメモリ実装
// FindNearbyはストアドプロシージャと同じ契約（半径内・距離順・limit件まで）を
// orbの大円距離で再現する
type fakeBathroomsRepository struct {
	bathrooms map[int]model.Bathroom
	nextID    int

	upsertBatches [][]model.BathroomUpsert // UpsertBatchの呼び出し履歴
	failBatches   map[int]bool             // 失敗させるバッチ番号（0始まり）
	findNearbyErr error
}

func newFakeBathroomsRepository() *fakeBathroomsRepository {
	return &fakeBathroomsRepository{
		bathrooms:   make(map[int]model.Bathroom),
		nextID:      1,
		failBatches: make(map[int]bool),
	}
}

func (f *fakeBathroomsRepository) seed(b model.Bathroom) model.Bathroom {
	b.ID = f.nextID
	f.nextID++
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.bathrooms[b.ID] = b
	return b
}

func (f *fakeBathroomsRepository) FindNearby(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]model.NearbyBathroom, error) {
	if f.findNearbyErr != nil {
		return nil, f.findNearbyErr
	}

	center := model.Location{Latitude: lat, Longitude: lng}
	var results []model.NearbyBathroom
	for _, b := range f.bathrooms {
		distKm := repoImpl.DistanceKm(center, model.Location{Latitude: b.Latitude, Longitude: b.Longitude})
		if distKm <= radiusKm {
			results = append(results, model.NearbyBathroom{
				Bathroom:       b,
				DistanceMeters: distKm * 1000,
			})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceMeters < results[j].DistanceMeters
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

func (f *fakeBathroomsRepository) GetByID(ctx context.Context, id int) (*model.Bathroom, error) {
	b, ok := f.bathrooms[id]
	if !ok {
		return nil, fmt.Errorf("施設 ID %d: %w", id, model.ErrBathroomNotFound)
	}
	return &b, nil
}

func (f *fakeBathroomsRepository) Create(ctx context.Context, req *model.CreateBathroomRequest) (*model.Bathroom, error) {
	b := model.Bathroom{
		Name:           req.Name,
		Address:        req.Address,
		Latitude:       *req.Latitude,
		Longitude:      *req.Longitude,
		Directions:     req.Directions,
		Comment:        req.Comment,
		ExternalID:     req.ExternalID,
		ExternalSource: req.ExternalSource,
	}
	if req.IsUnisex != nil {
		b.IsUnisex = *req.IsUnisex
	}
	if req.IsAccessible != nil {
		b.IsAccessible = *req.IsAccessible
	}
	if req.HasChangingTable != nil {
		b.HasChangingTable = *req.HasChangingTable
	}
	created := f.seed(b)
	return &created, nil
}

func (f *fakeBathroomsRepository) Update(ctx context.Context, id int, req *model.UpdateBathroomRequest) (*model.Bathroom, error) {
	b, ok := f.bathrooms[id]
	if !ok {
		return nil, fmt.Errorf("施設 ID %d: %w", id, model.ErrBathroomNotFound)
	}

	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Address != nil {
		b.Address = req.Address
	}
	if req.Latitude != nil {
		b.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		b.Longitude = *req.Longitude
	}
	if req.IsUnisex != nil {
		b.IsUnisex = *req.IsUnisex
	}
	if req.IsAccessible != nil {
		b.IsAccessible = *req.IsAccessible
	}
	if req.HasChangingTable != nil {
		b.HasChangingTable = *req.HasChangingTable
	}
	if req.Directions != nil {
		b.Directions = req.Directions
	}
	if req.Comment != nil {
		b.Comment = req.Comment
	}

	b.UpdatedAt = time.Now()
	f.bathrooms[id] = b
	return &b, nil
}

func (f *fakeBathroomsRepository) Delete(ctx context.Context, id int) error {
	// ストアドプロシージャ同様、存在チェックは行わない
	delete(f.bathrooms, id)
	return nil
}

func (f *fakeBathroomsRepository) UpsertBatch(ctx context.Context, batch []model.BathroomUpsert) error {
	batchIndex := len(f.upsertBatches)
	f.upsertBatches = append(f.upsertBatches, batch)

	if f.failBatches[batchIndex] {
		return fmt.Errorf("simulated upsert failure")
	}

	for _, u := range batch {
		if existing := f.findByExternalKey(u.ExternalID, u.ExternalSource); existing != nil {
			updated := *existing
			updated.Name = u.Name
			updated.Latitude = u.Latitude
			updated.Longitude = u.Longitude
			updated.UpdatedAt = time.Now()
			f.bathrooms[existing.ID] = updated
			continue
		}

		extID, extSource := u.ExternalID, u.ExternalSource
		f.seed(model.Bathroom{
			Name:             u.Name,
			Address:          &u.Address,
			Latitude:         u.Latitude,
			Longitude:        u.Longitude,
			IsUnisex:         u.IsUnisex,
			IsAccessible:     u.IsAccessible,
			HasChangingTable: u.HasChangingTable,
			ExternalID:       &extID,
			ExternalSource:   &extSource,
		})
	}

	return nil
}

func (f *fakeBathroomsRepository) findByExternalKey(externalID, externalSource string) *model.Bathroom {
	for _, b := range f.bathrooms {
		if b.ExternalID != nil && b.ExternalSource != nil &&
			*b.ExternalID == externalID && *b.ExternalSource == externalSource {
			found := b
			return &found
		}
	}
	return nil
}

// fakeReviewsRepository ReviewsRepositoryのインメモリ実装
type fakeReviewsRepository struct {
	reviews []model.Review
	nextID  int
}

func newFakeReviewsRepository() *fakeReviewsRepository {
	return &fakeReviewsRepository{nextID: 1}
}

func (f *fakeReviewsRepository) ListByBathroom(ctx context.Context, bathroomID int, limit int) ([]model.Review, error) {
	var result []model.Review
	for _, r := range f.reviews {
		if r.BathroomID == bathroomID {
			result = append(result, r)
		}
	}

	// 投稿日時の降順
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

func (f *fakeReviewsRepository) Create(ctx context.Context, req *model.CreateReviewRequest) (*model.Review, error) {
	review := model.Review{
		ID:         f.nextID,
		BathroomID: req.BathroomID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Directions: req.Directions,
		UserID:     req.UserID,
		CreatedAt:  time.Now().Add(time.Duration(f.nextID) * time.Millisecond),
	}
	f.nextID++
	f.reviews = append(f.reviews, review)
	return &review, nil
}
