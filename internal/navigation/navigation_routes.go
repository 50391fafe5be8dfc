package navigation

import (
	"go-plastindo/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	nav := r.Group("/navigation")
	nav.Use(middleware.ContextLogger(logger))
	{
		nav.GET("", middleware.RateLimitByIP(10, 30), handler.State)
		nav.POST("/navigate", middleware.RateLimitByIP(10, 30), handler.Navigate)
		nav.POST("/back", middleware.RateLimitByIP(10, 30), handler.Back)
	}
}
