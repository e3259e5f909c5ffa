package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"SafeRoute-App/internal/domain/model"
	"SafeRoute-App/internal/domain/repository"
	"SafeRoute-App/internal/infrastructure/database"
)

// bathroomsUpsertConflictKey upsertの競合解決キー
const bathroomsUpsertConflictKey = "external_id,external_source"

type SupabaseBathroomsRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseBathroomsRepository(client *database.SupabaseClient) repository.BathroomsRepository {
	return &SupabaseBathroomsRepository{
		client: client,
	}
}

// FindNearby nearby_bathroomsストアドプロシージャを呼び出して半径内の施設を取得する
// 距離計算と件数制限はすべてデータベース側で行われる
func (r *SupabaseBathroomsRepository) FindNearby(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]model.NearbyBathroom, error) {
	params := map[string]interface{}{
		"lat":       lat,
		"lng":       lng,
		"radius_km": radiusKm,
		"limit_val": limit,
	}

	// postgrest-goのRpcは失敗時に空のボディを返す
	data := r.client.GetClient().Rpc("nearby_bathrooms", "", params)
	if data == "" {
		return nil, fmt.Errorf("nearby_bathroomsプロシージャの呼び出し失敗")
	}

	var bathrooms []model.NearbyBathroom
	if err := json.Unmarshal([]byte(data), &bathrooms); err != nil {
		return nil, fmt.Errorf("近傍施設データのJSONアンマーシャル失敗: %w", err)
	}

	return bathrooms, nil
}

func (r *SupabaseBathroomsRepository) GetByID(ctx context.Context, id int) (*model.Bathroom, error) {
	var bathrooms []model.Bathroom
	data, count, err := r.client.GetClient().From("bathrooms").Select("*", "exact", false).Eq("id", strconv.Itoa(id)).Execute()
	if err != nil {
		return nil, fmt.Errorf("施設データの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &bathrooms); err != nil {
		return nil, fmt.Errorf("施設データのJSONアンマーシャル失敗: %w", err)
	}

	if len(bathrooms) == 0 {
		return nil, fmt.Errorf("施設 ID %d: %w", id, model.ErrBathroomNotFound)
	}

	return &bathrooms[0], nil
}

func (r *SupabaseBathroomsRepository) Create(ctx context.Context, req *model.CreateBathroomRequest) (*model.Bathroom, error) {
	// postgrest-goが内部でJSONマーシャルするため、構造体をそのまま渡す
	data, _, err := r.client.GetClient().From("bathrooms").Insert(req, false, "", "representation", "").Execute()
	if err != nil {
		return nil, fmt.Errorf("施設データの作成失敗: %w", err)
	}

	var created []model.Bathroom
	if err := json.Unmarshal([]byte(data), &created); err != nil {
		return nil, fmt.Errorf("作成結果のJSONアンマーシャル失敗: %w", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("施設データの作成結果が空です")
	}

	return &created[0], nil
}

// Update 部分更新を行う。reqのnilフィールドはペイロードに含まれないため
// 指定されたフィールドのみが更新される
func (r *SupabaseBathroomsRepository) Update(ctx context.Context, id int, req *model.UpdateBathroomRequest) (*model.Bathroom, error) {
	// 更新フィールドが空の場合、PostgRESTは空のUPDATEを拒否するため
	// 現在の行を読み戻して no-op として扱う
	if req.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	// nilフィールドはomitemptyで落ちるため、設定されたフィールドのみが送信される
	data, _, err := r.client.GetClient().From("bathrooms").Update(req, "representation", "").Eq("id", strconv.Itoa(id)).Execute()
	if err != nil {
		return nil, fmt.Errorf("施設データの更新失敗: %w", err)
	}

	var updated []model.Bathroom
	if err := json.Unmarshal([]byte(data), &updated); err != nil {
		return nil, fmt.Errorf("更新結果のJSONアンマーシャル失敗: %w", err)
	}
	if len(updated) == 0 {
		return nil, fmt.Errorf("施設 ID %d: %w", id, model.ErrBathroomNotFound)
	}

	return &updated[0], nil
}

// Delete 指定IDの施設を削除する。存在チェックは行わない（存在しないIDの削除も成功扱い）
func (r *SupabaseBathroomsRepository) Delete(ctx context.Context, id int) error {
	_, _, err := r.client.GetClient().From("bathrooms").Delete("", "").Eq("id", strconv.Itoa(id)).Execute()
	if err != nil {
		return fmt.Errorf("施設データの削除失敗: %w", err)
	}

	return nil
}

// UpsertBatch (external_id, external_source) を競合キーとして一括upsertする
// 既存行は更新、新規行は挿入される
func (r *SupabaseBathroomsRepository) UpsertBatch(ctx context.Context, batch []model.BathroomUpsert) error {
	if len(batch) == 0 {
		return nil
	}

	_, _, err := r.client.GetClient().From("bathrooms").Insert(batch, true, bathroomsUpsertConflictKey, "", "").Execute()
	if err != nil {
		return fmt.Errorf("施設一括データのupsert失敗: %w", err)
	}

	return nil
}
