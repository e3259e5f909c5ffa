package model

import (
	"time"
)

// Bathroom 公共トイレ施設を表すモデル
type Bathroom struct {
	ID               int       `json:"id" db:"id"`                                 // ユニークな施設ID
	Name             string    `json:"name" db:"name"`                             // 施設名
	Address          *string   `json:"address,omitempty" db:"address"`             // 住所（NULLABLE）
	Latitude         float64   `json:"latitude" db:"latitude"`                     // 緯度（WGS84）
	Longitude        float64   `json:"longitude" db:"longitude"`                   // 経度（WGS84）
	IsUnisex         bool      `json:"is_unisex" db:"is_unisex"`                   // ジェンダーフリー対応
	IsAccessible     bool      `json:"is_accessible" db:"is_accessible"`           // 車椅子対応
	HasChangingTable bool      `json:"has_changing_table" db:"has_changing_table"` // おむつ交換台あり
	Directions       *string   `json:"directions,omitempty" db:"directions"`       // 行き方メモ（NULLABLE）
	Comment          *string   `json:"comment,omitempty" db:"comment"`             // コメント（NULLABLE）
	AverageRating    float64   `json:"average_rating" db:"average_rating"`         // 評価の平均値
	TotalRatings     int       `json:"total_ratings" db:"total_ratings"`           // 評価の件数
	ExternalID       *string   `json:"external_id,omitempty" db:"external_id"`     // 外部データソース上のID
	ExternalSource   *string   `json:"external_source,omitempty" db:"external_source"` // 外部データソース名
	CreatedAt        time.Time `json:"created_at" db:"created_at"`                 // 作成日時
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`                 // 更新日時
}

// NearbyBathroom nearby_bathrooms ストアドプロシージャの結果行
// 通常のカラムに加えてサーバー側で計算済みの距離を持つ
type NearbyBathroom struct {
	Bathroom
	DistanceMeters float64 `json:"distance_meters" db:"distance_meters"`
}

// CreateBathroomRequest POST /bathrooms のリクエストボディ
// 緯度経度は 0 が正当な値のためポインタで必須判定する
type CreateBathroomRequest struct {
	Name             string   `json:"name" binding:"required"`
	Address          *string  `json:"address"`
	Latitude         *float64 `json:"latitude" binding:"required"`
	Longitude        *float64 `json:"longitude" binding:"required"`
	IsUnisex         *bool    `json:"is_unisex"`
	IsAccessible     *bool    `json:"is_accessible"`
	HasChangingTable *bool    `json:"has_changing_table"`
	Directions       *string  `json:"directions"`
	Comment          *string  `json:"comment"`
	ExternalID       *string  `json:"external_id"`
	ExternalSource   *string  `json:"external_source"`
}

// UpdateBathroomRequest PUT /bathrooms/:id のリクエストボディ
// nil のフィールドは更新対象外（部分更新）
type UpdateBathroomRequest struct {
	Name             *string  `json:"name,omitempty"`
	Address          *string  `json:"address,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	IsUnisex         *bool    `json:"is_unisex,omitempty"`
	IsAccessible     *bool    `json:"is_accessible,omitempty"`
	HasChangingTable *bool    `json:"has_changing_table,omitempty"`
	Directions       *string  `json:"directions,omitempty"`
	Comment          *string  `json:"comment,omitempty"`
}

// IsEmpty 更新対象のフィールドが1つも指定されていないかチェック
func (r *UpdateBathroomRequest) IsEmpty() bool {
	return r.Name == nil && r.Address == nil && r.Latitude == nil && r.Longitude == nil &&
		r.IsUnisex == nil && r.IsAccessible == nil && r.HasChangingTable == nil &&
		r.Directions == nil && r.Comment == nil
}

// BathroomUpsert バッチ取り込み用のレコード
// (external_id, external_source) を競合キーとして upsert する
type BathroomUpsert struct {
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	IsUnisex         bool    `json:"is_unisex"`
	IsAccessible     bool    `json:"is_accessible"`
	HasChangingTable bool    `json:"has_changing_table"`
	Directions       string  `json:"directions"`
	Comment          string  `json:"comment"`
	ExternalID       string  `json:"external_id"`
	ExternalSource   string  `json:"external_source"`
}

// NearbySearchQuery 近傍検索のクエリパラメータ
type NearbySearchQuery struct {
	Latitude         float64  // 検索中心の緯度（必須）
	Longitude        float64  // 検索中心の経度（必須）
	RadiusKm         float64  // 検索半径（km）
	Limit            int      // 最大取得件数（フィルタ適用前）
	RatingMin        *float64 // 平均評価の下限フィルタ
	IsUnisex         *bool    // ジェンダーフリーフィルタ
	IsAccessible     *bool    // 車椅子対応フィルタ
	HasChangingTable *bool    // おむつ交換台フィルタ
}

const (
	// DefaultSearchRadiusKm 近傍検索のデフォルト半径（km）
	DefaultSearchRadiusKm = 5.0
	// DefaultSearchLimit 近傍検索のデフォルト最大件数
	DefaultSearchLimit = 50
)
