package migrate

import (
	"database/sql"
	"fmt"
	"log"
)

// EnsureSchema 必要なテーブル・インデックス・関数を作成する
// IF NOT EXISTS / CREATE OR REPLACE により何度実行しても安全
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS bathrooms (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT,
			latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
			longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
			is_unisex BOOLEAN NOT NULL DEFAULT FALSE,
			is_accessible BOOLEAN NOT NULL DEFAULT FALSE,
			has_changing_table BOOLEAN NOT NULL DEFAULT FALSE,
			directions TEXT,
			comment TEXT,
			average_rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_ratings INTEGER NOT NULL DEFAULT 0,
			external_id TEXT,
			external_source TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		// (external_id, external_source) が両方存在する行のみ一意制約の対象にする
		// この組がバッチ取り込みのupsert競合キーになる
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_bathrooms_external
			ON bathrooms(external_id, external_source)
			WHERE external_id IS NOT NULL AND external_source IS NOT NULL`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			bathroom_id INTEGER NOT NULL REFERENCES bathrooms(id) ON DELETE CASCADE,
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
			comment TEXT,
			directions TEXT,
			user_id TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_bathroom_created
			ON reviews(bathroom_id, created_at DESC)`,
		// updated_at をUPDATE時に自動更新するトリガー
		`CREATE OR REPLACE FUNCTION set_bathrooms_updated_at() RETURNS TRIGGER AS $$
		BEGIN
			NEW.updated_at = NOW();
			RETURN NEW;
		END;
		$$ LANGUAGE plpgsql`,
		`DROP TRIGGER IF EXISTS trg_bathrooms_updated_at ON bathrooms`,
		`CREATE TRIGGER trg_bathrooms_updated_at
			BEFORE UPDATE ON bathrooms
			FOR EACH ROW EXECUTE FUNCTION set_bathrooms_updated_at()`,
		// レビュー投稿時に施設側の評価集計を更新するトリガー
		`CREATE OR REPLACE FUNCTION refresh_bathroom_rating() RETURNS TRIGGER AS $$
		BEGIN
			UPDATE bathrooms SET
				average_rating = (SELECT AVG(rating)::DOUBLE PRECISION FROM reviews WHERE bathroom_id = NEW.bathroom_id),
				total_ratings  = (SELECT COUNT(*) FROM reviews WHERE bathroom_id = NEW.bathroom_id)
			WHERE id = NEW.bathroom_id;
			RETURN NEW;
		END;
		$$ LANGUAGE plpgsql`,
		`DROP TRIGGER IF EXISTS trg_refresh_bathroom_rating ON reviews`,
		`CREATE TRIGGER trg_refresh_bathroom_rating
			AFTER INSERT ON reviews
			FOR EACH ROW EXECUTE FUNCTION refresh_bathroom_rating()`,
		// 近傍検索のストアドプロシージャ
		// ハーバーサイン距離で半径内の施設を距離順に返す（件数制限はサーバー側で適用）
		`CREATE OR REPLACE FUNCTION nearby_bathrooms(lat DOUBLE PRECISION, lng DOUBLE PRECISION, radius_km DOUBLE PRECISION, limit_val INTEGER)
		RETURNS TABLE (
			id INTEGER,
			name TEXT,
			address TEXT,
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION,
			is_unisex BOOLEAN,
			is_accessible BOOLEAN,
			has_changing_table BOOLEAN,
			directions TEXT,
			comment TEXT,
			average_rating DOUBLE PRECISION,
			total_ratings INTEGER,
			external_id TEXT,
			external_source TEXT,
			created_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ,
			distance_meters DOUBLE PRECISION
		) AS $$
			SELECT b.*,
				2 * 6371000 * asin(sqrt(
					power(sin(radians(b.latitude - lat) / 2), 2) +
					cos(radians(lat)) * cos(radians(b.latitude)) *
					power(sin(radians(b.longitude - lng) / 2), 2)
				)) AS distance_meters
			FROM bathrooms b
			WHERE 2 * 6371000 * asin(sqrt(
					power(sin(radians(b.latitude - lat) / 2), 2) +
					cos(radians(lat)) * cos(radians(b.latitude)) *
					power(sin(radians(b.longitude - lng) / 2), 2)
				)) <= radius_km * 1000
			ORDER BY distance_meters
			LIMIT limit_val
		$$ LANGUAGE sql STABLE`,
	}

	for i, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("スキーマ適用失敗 (ステートメント %d): %w", i, err)
		}
	}

	log.Printf("スキーマ適用完了 (%dステートメント)", len(stmts))
	return nil
}
