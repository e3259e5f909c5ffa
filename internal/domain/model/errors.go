package model

import "errors"

// ErrBathroomNotFound 指定されたIDの施設が存在しない場合に返すエラー
var ErrBathroomNotFound = errors.New("bathroom not found")

// ErrReviewNotFound 指定されたIDのレビューが存在しない場合に返すエラー
var ErrReviewNotFound = errors.New("review not found")

// ErrValidation 入力値の検証失敗を表すエラー。ハンドラー層で400に変換される
var ErrValidation = errors.New("validation failed")
