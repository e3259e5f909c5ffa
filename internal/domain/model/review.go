package model

import (
	"time"
)

// Review 施設に対する評価・コメントを表すモデル
type Review struct {
	ID         int       `json:"id" db:"id"`                           // ユニークなレビューID
	BathroomID int       `json:"bathroom_id" db:"bathroom_id"`         // 対象施設のID
	Rating     int       `json:"rating" db:"rating"`                   // 評価（1〜5）
	Comment    *string   `json:"comment,omitempty" db:"comment"`       // コメント（NULLABLE）
	Directions *string   `json:"directions,omitempty" db:"directions"` // 行き方メモ（NULLABLE）
	UserID     *string   `json:"user_id,omitempty" db:"user_id"`       // 投稿者ID（NULLABLE）
	CreatedAt  time.Time `json:"created_at" db:"created_at"`           // 投稿日時
}

// CreateReviewRequest POST /reviews のリクエストボディ
type CreateReviewRequest struct {
	BathroomID int     `json:"bathroom_id" binding:"required"`
	Rating     int     `json:"rating" binding:"required,min=1,max=5"`
	Comment    *string `json:"comment"`
	Directions *string `json:"directions"`
	UserID     *string `json:"user_id"`
}

const (
	// RatingMin 評価の下限値
	RatingMin = 1
	// RatingMax 評価の上限値
	RatingMax = 5
	// DefaultReviewsLimit レビュー一覧のデフォルト最大件数
	DefaultReviewsLimit = 10
)
