package application

import (
	"context"
	"fmt"
	"log"

	"SafeRoute-App/internal/domain/model"
	"SafeRoute-App/internal/domain/repository"
	"SafeRoute-App/internal/infrastructure/refuge"
)

// RestroomFetcher 外部ディレクトリからの施設取得を抽象化するインターフェース
type RestroomFetcher interface {
	FetchByLocation(ctx context.Context, lat, lng float64, opts refuge.FetchOptions) ([]refuge.Restroom, error)
}

// IngestReport 取り込み実行の結果
type IngestReport struct {
	Fetched       int // 外部APIから取得した件数
	Upserted      int // upsertに成功した件数
	FailedBatches int // 失敗したバッチ数
}

// upsertBatchSize 1回のupsertに含める最大件数
const upsertBatchSize = 100

// IngestService 外部ディレクトリからの施設データ取り込みを行うサービス
type IngestService interface {
	// Run 取得→変換→バッチupsertを実行する
	// 取得自体の失敗はエラーとして返し、バッチ単位の失敗はレポートに集計する
	Run(ctx context.Context, lat, lng float64, opts refuge.FetchOptions) (*IngestReport, error)
}

// ingestServiceImpl IngestServiceの実装
type ingestServiceImpl struct {
	fetcher       RestroomFetcher
	bathroomsRepo repository.BathroomsRepository
}

// NewIngestService IngestServiceの新しいインスタンスを作成
func NewIngestService(fetcher RestroomFetcher, bathroomsRepo repository.BathroomsRepository) IngestService {
	return &ingestServiceImpl{
		fetcher:       fetcher,
		bathroomsRepo: bathroomsRepo,
	}
}

// Run 施設データの取り込みを実行する
// 各バッチは独立しており、1つのバッチの失敗はログに残して次のバッチへ進む
// （ロールバックもリトライも行わない）
func (s *ingestServiceImpl) Run(ctx context.Context, lat, lng float64, opts refuge.FetchOptions) (*IngestReport, error) {
	log.Printf("施設データ取り込み開始 (lat=%.4f, lng=%.4f)", lat, lng)

	restrooms, err := s.fetcher.FetchByLocation(ctx, lat, lng, opts)
	if err != nil {
		return nil, fmt.Errorf("外部ディレクトリからの取得失敗: %w", err)
	}

	if len(restrooms) == 0 {
		log.Printf("外部ディレクトリから施設が取得できませんでした")
		return &IngestReport{}, nil
	}

	upserts := make([]model.BathroomUpsert, len(restrooms))
	for i, item := range restrooms {
		upserts[i] = refuge.TransformRestroom(item)
	}

	report := &IngestReport{Fetched: len(restrooms)}

	for start := 0; start < len(upserts); start += upsertBatchSize {
		end := start + upsertBatchSize
		if end > len(upserts) {
			end = len(upserts)
		}
		batch := upserts[start:end]

		if err := s.bathroomsRepo.UpsertBatch(ctx, batch); err != nil {
			log.Printf("バッチのupsert失敗 (%d〜%d件目): %v", start+1, end, err)
			report.FailedBatches++
			continue
		}

		report.Upserted += len(batch)
		log.Printf("%d件の施設をupsertしました", len(batch))
	}

	log.Printf("施設データ取り込み完了 (取得%d件 / upsert%d件 / 失敗バッチ%d)",
		report.Fetched, report.Upserted, report.FailedBatches)

	return report, nil
}
