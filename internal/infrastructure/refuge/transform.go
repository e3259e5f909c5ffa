package refuge

import (
	"strconv"
	"strings"

	"SafeRoute-App/internal/domain/model"
)

const (
	// ExternalSource 取り込み元を識別するソース名
	ExternalSource = "refuge_restrooms"

	// UnknownAddress 住所の構成要素がすべて空だった場合の固定値
	UnknownAddress = "Unknown Address"

	// UnknownName 施設名が空だった場合の固定値
	UnknownName = "Unknown Restroom"
)

// TransformRestroom Refuge Restroomsのレコードをアプリ内部の形式に変換する
// 全域関数：欠損フィールドはデフォルト値に倒し、決して失敗しない
func TransformRestroom(item Restroom) model.BathroomUpsert {
	// 住所は street, city, state の空でない部分を ", " で連結する
	var addressParts []string
	for _, part := range []*string{item.Street, item.City, item.State} {
		if part != nil && *part != "" {
			addressParts = append(addressParts, *part)
		}
	}

	address := UnknownAddress
	if len(addressParts) > 0 {
		address = strings.Join(addressParts, ", ")
	}

	name := item.Name
	if name == "" {
		name = UnknownName
	}

	var lat, lng float64
	if item.Latitude != nil {
		lat = *item.Latitude
	}
	if item.Longitude != nil {
		lng = *item.Longitude
	}

	return model.BathroomUpsert{
		Name:             name,
		Address:          address,
		Latitude:         lat,
		Longitude:        lng,
		IsUnisex:         item.Unisex,
		IsAccessible:     item.Accessible,
		HasChangingTable: item.ChangingTable,
		Directions:       item.Directions,
		Comment:          item.Comment,
		ExternalID:       strconv.Itoa(item.ID),
		ExternalSource:   ExternalSource,
	}
}
