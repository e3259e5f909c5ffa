package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SafeRoute-App/internal/domain/model"
)

func TestSupabaseReviewsRepositoryCreate(t *testing.T) {
	t.Run("作成リクエストはJSONオブジェクトとして送信される", func(t *testing.T) {
		client, captured := newFakeRESTServer(t, `[{"id":10,"bathroom_id":3,"rating":5,"created_at":"2026-08-30T12:00:00Z"}]`)
		repo := NewSupabaseReviewsRepository(client)

		req := &model.CreateReviewRequest{
			BathroomID: 3,
			Rating:     5,
			Comment:    ptrStr("清潔でした"),
		}

		created, err := repo.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 10, created.ID)
		assert.Equal(t, 5, created.Rating)

		assert.Equal(t, http.MethodPost, captured.method)
		assert.Equal(t, "/rest/v1/reviews", captured.path)

		// 文字列リテラル（先頭が引用符）ではなくオブジェクトであること
		require.NotEmpty(t, captured.body)
		assert.Equal(t, byte('{'), captured.body[0])

		var sent map[string]interface{}
		require.NoError(t, json.Unmarshal(captured.body, &sent))
		assert.EqualValues(t, 3, sent["bathroom_id"])
		assert.EqualValues(t, 5, sent["rating"])
		assert.Equal(t, "清潔でした", sent["comment"])
	})
}
