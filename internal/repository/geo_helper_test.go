package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SafeRoute-App/internal/domain/model"
)

func TestLocationPointConversion(t *testing.T) {
	loc := model.Location{Latitude: 42.3601, Longitude: -71.0589}

	point := LocationToPoint(loc)
	assert.Equal(t, -71.0589, point.Lon())
	assert.Equal(t, 42.3601, point.Lat())

	back := PointToLocation(point)
	assert.Equal(t, loc, back)
}

func TestDistanceKm(t *testing.T) {
	t.Run("同一地点の距離は0", func(t *testing.T) {
		loc := model.Location{Latitude: 42.3601, Longitude: -71.0589}
		assert.Equal(t, 0.0, DistanceKm(loc, loc))
	})

	t.Run("ボストン〜ニューヨーク間はおよそ306km", func(t *testing.T) {
		boston := model.Location{Latitude: 42.3601, Longitude: -71.0589}
		newYork := model.Location{Latitude: 40.7128, Longitude: -74.0060}

		dist := DistanceKm(boston, newYork)
		assert.InDelta(t, 306, dist, 5)
	})
}

func TestValidateCoordinates(t *testing.T) {
	require.NoError(t, ValidateCoordinates(42.3601, -71.0589))
	require.NoError(t, ValidateCoordinates(-90, 180))
	require.NoError(t, ValidateCoordinates(90, -180))
	require.NoError(t, ValidateCoordinates(0, 0))

	assert.Error(t, ValidateCoordinates(90.1, 0))
	assert.Error(t, ValidateCoordinates(-90.1, 0))
	assert.Error(t, ValidateCoordinates(0, 180.1))
	assert.Error(t, ValidateCoordinates(0, -180.1))

	t.Run("範囲外の座標はErrValidationとして判定できる", func(t *testing.T) {
		err := ValidateCoordinates(95, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)
	})
}
