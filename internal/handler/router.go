package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIPrefix すべてのAPIルートの共通プレフィックス
const APIPrefix = "/api"

// NewRouter ルーティングとミドルウェアを設定したGinエンジンを作成する
func NewRouter(bathroomsHandler *BathroomsHandler, reviewsHandler *ReviewsHandler) *gin.Engine {
	r := gin.Default()

	r.Use(RequestID())
	r.Use(CORS())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to SafeRoute API",
			"endpoints": gin.H{
				"bathrooms": APIPrefix + "/bathrooms",
				"reviews":   APIPrefix + "/reviews",
			},
		})
	})

	api := r.Group(APIPrefix)
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "SafeRoute-App"})
		})

		api.GET("/bathrooms", bathroomsHandler.GetNearby)
		api.GET("/bathrooms/:id", bathroomsHandler.GetByID)
		api.POST("/bathrooms", bathroomsHandler.Create)
		api.PUT("/bathrooms/:id", bathroomsHandler.Update)
		api.DELETE("/bathrooms/:id", bathroomsHandler.Delete)

		api.GET("/reviews/:bathroom_id", reviewsHandler.ListByBathroom)
		api.POST("/reviews", reviewsHandler.Create)
	}

	return r
}
