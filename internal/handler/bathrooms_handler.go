package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"SafeRoute-App/internal/application"
	"SafeRoute-App/internal/domain/model"
)

// BathroomsHandler 施設に関するHTTPハンドラー
type BathroomsHandler struct {
	bathroomsService application.BathroomsService
}

// NewBathroomsHandler BathroomsHandlerの新しいインスタンスを作成
func NewBathroomsHandler(bathroomsService application.BathroomsService) *BathroomsHandler {
	return &BathroomsHandler{
		bathroomsService: bathroomsService,
	}
}

// GetNearby GET /bathrooms - 指定座標の周辺施設を検索
func (h *BathroomsHandler) GetNearby(c *gin.Context) {
	// 必須パラメータの解析
	latStr := c.Query("latitude")
	lngStr := c.Query("longitude")
	if latStr == "" || lngStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "latitude and longitude parameters are required",
		})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid latitude value",
		})
		return
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid longitude value",
		})
		return
	}

	query := &model.NearbySearchQuery{
		Latitude:  lat,
		Longitude: lng,
		RadiusKm:  model.DefaultSearchRadiusKm,
		Limit:     model.DefaultSearchLimit,
	}

	// 任意パラメータの解析
	if radiusStr := c.Query("radius"); radiusStr != "" {
		radius, err := strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "Invalid radius value",
			})
			return
		}
		query.RadiusKm = radius
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "Invalid limit value",
			})
			return
		}
		query.Limit = limit
	}

	if ratingMinStr := c.Query("rating_min"); ratingMinStr != "" {
		ratingMin, err := strconv.ParseFloat(ratingMinStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "Invalid rating_min value",
			})
			return
		}
		query.RatingMin = &ratingMin
	}

	var parseErr error
	query.IsUnisex, parseErr = parseOptionalBool(c, "is_unisex")
	if parseErr == nil {
		query.IsAccessible, parseErr = parseOptionalBool(c, "is_accessible")
	}
	if parseErr == nil {
		query.HasChangingTable, parseErr = parseOptionalBool(c, "has_changing_table")
	}
	if parseErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": parseErr.Error(),
		})
		return
	}

	// サービス層で処理
	bathrooms, err := h.bathroomsService.GetNearby(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation_error",
				"message": err.Error(),
			})
			return
		}
		log.Printf("近傍検索失敗: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to search nearby bathrooms",
		})
		return
	}

	c.JSON(http.StatusOK, bathrooms)
}

// GetByID GET /bathrooms/:id - 施設をIDで取得
func (h *BathroomsHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	bathroom, err := h.bathroomsService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrBathroomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "Bathroom not found",
			})
			return
		}
		log.Printf("施設取得失敗 (ID %d): %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get bathroom",
		})
		return
	}

	c.JSON(http.StatusOK, bathroom)
}

// Create POST /bathrooms - 施設の新規作成
func (h *BathroomsHandler) Create(c *gin.Context) {
	var req model.CreateBathroomRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	bathroom, err := h.bathroomsService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation_error",
				"message": err.Error(),
			})
			return
		}
		log.Printf("施設作成失敗: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to create bathroom",
		})
		return
	}

	c.JSON(http.StatusCreated, bathroom)
}

// Update PUT /bathrooms/:id - 施設の部分更新
func (h *BathroomsHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req model.UpdateBathroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	bathroom, err := h.bathroomsService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, model.ErrBathroomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "Bathroom not found",
			})
			return
		}
		if errors.Is(err, model.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation_error",
				"message": err.Error(),
			})
			return
		}
		log.Printf("施設更新失敗 (ID %d): %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to update bathroom",
		})
		return
	}

	c.JSON(http.StatusOK, bathroom)
}

// Delete DELETE /bathrooms/:id - 施設の削除
// 存在しないIDの削除も204を返す（べき等）
func (h *BathroomsHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.bathroomsService.Delete(c.Request.Context(), id); err != nil {
		log.Printf("施設削除失敗 (ID %d): %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to delete bathroom",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// parseIDParam パスパラメータのIDを解析する。失敗時は400を返してfalse
func parseIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid id value",
		})
		return 0, false
	}
	return id, true
}

// parseOptionalBool 任意のboolクエリパラメータを解析する
func parseOptionalBool(c *gin.Context, name string) (*bool, error) {
	value := c.Query(name)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil, errors.New("Invalid " + name + " value")
	}
	return &parsed, nil
}
