package repository

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"SafeRoute-App/internal/domain/model"
)

// LocationToPoint model.Location を orb.Point に変換（経度, 緯度の順）。
// 変換・距離ヘルパーはnearby_bathrooms RPCの距離計算をアプリ側で
// 再現するためのもので、テストフィクスチャの距離検証にも使う
func LocationToPoint(location model.Location) orb.Point {
	return orb.Point{location.Longitude, location.Latitude}
}

// PointToLocation orb.Point を model.Location に変換
func PointToLocation(point orb.Point) model.Location {
	return model.Location{
		Latitude:  point.Lat(),
		Longitude: point.Lon(),
	}
}

// DistanceKm 2地点間の大円距離をkm単位で返す
func DistanceKm(from, to model.Location) float64 {
	return geo.Distance(LocationToPoint(from), LocationToPoint(to)) / 1000.0
}

// ValidateCoordinates 緯度経度がWGS84の有効範囲内かチェック
func ValidateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: 緯度は-90から90の範囲内である必要があります: %f", model.ErrValidation, lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("%w: 経度は-180から180の範囲内である必要があります: %f", model.ErrValidation, lng)
	}
	return nil
}
