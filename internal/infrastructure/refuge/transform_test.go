package refuge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestTransformRestroom(t *testing.T) {
	t.Run("全フィールドが揃っている場合", func(t *testing.T) {
		item := Restroom{
			ID:            9876,
			Name:          "Central Library Restroom",
			Street:        strPtr("700 Boylston St"),
			City:          strPtr("Boston"),
			State:         strPtr("MA"),
			Latitude:      floatPtr(42.3493),
			Longitude:     floatPtr(-71.0782),
			Unisex:        true,
			Accessible:    true,
			ChangingTable: false,
			Directions:    "2階の奥",
			Comment:       "清潔",
		}

		got := TransformRestroom(item)

		assert.Equal(t, "Central Library Restroom", got.Name)
		assert.Equal(t, "700 Boylston St, Boston, MA", got.Address)
		assert.Equal(t, 42.3493, got.Latitude)
		assert.Equal(t, -71.0782, got.Longitude)
		assert.True(t, got.IsUnisex)
		assert.True(t, got.IsAccessible)
		assert.False(t, got.HasChangingTable)
		assert.Equal(t, "9876", got.ExternalID)
		assert.Equal(t, "refuge_restrooms", got.ExternalSource)
	})

	t.Run("住所の一部が欠けている場合は空でない部分のみ連結する", func(t *testing.T) {
		item := Restroom{
			ID:     1,
			Name:   "Rest Stop",
			Street: strPtr("Main St"),
			City:   nil,
			State:  strPtr("MA"),
		}

		got := TransformRestroom(item)

		assert.Equal(t, "Main St, MA", got.Address)
	})

	t.Run("住所の構成要素がすべて空の場合は固定値になる", func(t *testing.T) {
		item := Restroom{
			ID:     2,
			Name:   "Somewhere",
			Street: strPtr(""),
		}

		got := TransformRestroom(item)

		assert.Equal(t, UnknownAddress, got.Address)
	})

	t.Run("緯度経度が欠損している場合は0になる", func(t *testing.T) {
		item := Restroom{ID: 3, Name: "No Coords"}

		got := TransformRestroom(item)

		assert.Equal(t, 0.0, got.Latitude)
		assert.Equal(t, 0.0, got.Longitude)
	})

	t.Run("施設名が空の場合は固定値になる", func(t *testing.T) {
		item := Restroom{ID: 4}

		got := TransformRestroom(item)

		assert.Equal(t, UnknownName, got.Name)
	})

	t.Run("外部IDは文字列化される", func(t *testing.T) {
		item := Restroom{ID: 0, Name: "Zero ID"}

		got := TransformRestroom(item)

		assert.Equal(t, "0", got.ExternalID)
	})
}
