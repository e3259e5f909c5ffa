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

// ReviewsHandler レビューに関するHTTPハンドラー
type ReviewsHandler struct {
	reviewsService application.ReviewsService
}

// NewReviewsHandler ReviewsHandlerの新しいインスタンスを作成
func NewReviewsHandler(reviewsService application.ReviewsService) *ReviewsHandler {
	return &ReviewsHandler{
		reviewsService: reviewsService,
	}
}

// ListByBathroom GET /reviews/:bathroom_id - 指定施設のレビュー一覧を取得
func (h *ReviewsHandler) ListByBathroom(c *gin.Context) {
	bathroomID, err := strconv.Atoi(c.Param("bathroom_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid bathroom_id value",
		})
		return
	}

	limit := model.DefaultReviewsLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "Invalid limit value",
			})
			return
		}
	}

	reviews, err := h.reviewsService.ListByBathroom(c.Request.Context(), bathroomID, limit)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation_error",
				"message": err.Error(),
			})
			return
		}
		log.Printf("レビュー一覧取得失敗 (施設ID %d): %v", bathroomID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get reviews",
		})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// Create POST /reviews - レビューの新規作成
func (h *ReviewsHandler) Create(c *gin.Context) {
	var req model.CreateReviewRequest

	// 評価の範囲（1〜5）はバインディングタグでも検証される
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	review, err := h.reviewsService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation_error",
				"message": err.Error(),
			})
			return
		}
		log.Printf("レビュー作成失敗: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to create review",
		})
		return
	}

	c.JSON(http.StatusCreated, review)
}
