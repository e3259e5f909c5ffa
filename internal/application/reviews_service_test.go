package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SafeRoute-App/internal/domain/model"
)

func TestReviewsService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("評価1〜5は受け付ける", func(t *testing.T) {
		repo := newFakeReviewsRepository()
		service := NewReviewsService(repo)

		for rating := model.RatingMin; rating <= model.RatingMax; rating++ {
			created, err := service.Create(ctx, &model.CreateReviewRequest{
				BathroomID: 1,
				Rating:     rating,
			})
			require.NoError(t, err)
			assert.Equal(t, rating, created.Rating)
		}

		assert.Len(t, repo.reviews, 5)
	})

	t.Run("評価が範囲外の場合はストアに到達する前に拒否する", func(t *testing.T) {
		repo := newFakeReviewsRepository()
		service := NewReviewsService(repo)

		for _, rating := range []int{0, 6, -1, 100} {
			_, err := service.Create(ctx, &model.CreateReviewRequest{
				BathroomID: 1,
				Rating:     rating,
			})
			require.Error(t, err, "rating=%d", rating)
			assert.True(t, errors.Is(err, model.ErrValidation), "rating=%d", rating)
		}

		assert.Empty(t, repo.reviews)
	})

	t.Run("施設IDがない場合はエラー", func(t *testing.T) {
		repo := newFakeReviewsRepository()
		service := NewReviewsService(repo)

		_, err := service.Create(ctx, &model.CreateReviewRequest{Rating: 3})

		require.Error(t, err)
		assert.Empty(t, repo.reviews)
	})
}

func TestReviewsService_ListByBathroom(t *testing.T) {
	ctx := context.Background()

	t.Run("投稿日時の降順でlimit件まで返す", func(t *testing.T) {
		repo := newFakeReviewsRepository()
		service := NewReviewsService(repo)

		for i := 0; i < 5; i++ {
			_, err := service.Create(ctx, &model.CreateReviewRequest{BathroomID: 1, Rating: 4})
			require.NoError(t, err)
		}
		// 別の施設のレビューは混ざらない
		_, err := service.Create(ctx, &model.CreateReviewRequest{BathroomID: 2, Rating: 5})
		require.NoError(t, err)

		got, err := service.ListByBathroom(ctx, 1, 3)
		require.NoError(t, err)

		require.Len(t, got, 3)
		for _, r := range got {
			assert.Equal(t, 1, r.BathroomID)
		}
		// 新しいレビューが先頭に来る
		assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))
		assert.True(t, got[1].CreatedAt.After(got[2].CreatedAt))
	})

	t.Run("limitが0以下の場合はデフォルト値を使う", func(t *testing.T) {
		repo := newFakeReviewsRepository()
		service := NewReviewsService(repo)

		for i := 0; i < model.DefaultReviewsLimit+5; i++ {
			_, err := service.Create(ctx, &model.CreateReviewRequest{BathroomID: 1, Rating: 3})
			require.NoError(t, err)
		}

		got, err := service.ListByBathroom(ctx, 1, 0)
		require.NoError(t, err)

		assert.Len(t, got, model.DefaultReviewsLimit)
	})

	t.Run("不正な施設IDはエラー", func(t *testing.T) {
		repo := newFakeReviewsRepository()
		service := NewReviewsService(repo)

		_, err := service.ListByBathroom(ctx, 0, 10)

		require.Error(t, err)
	})
}
