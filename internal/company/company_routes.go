package company

import (
	"go-plastindo/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	// konten publik, tanpa auth
	company := r.Group("/company")
	company.Use(middleware.ContextLogger(logger))
	{
		company.GET("/profile",
			middleware.RateLimitByIP(10, 30),
			handler.GetProfile,
		)

		company.GET("/slides",
			middleware.RateLimitByIP(10, 30),
			handler.GetSlides,
		)
	}

	admin := r.Group("/company")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.ContextLogger(logger))
	{
		admin.PUT("/profile",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "profile", "update"),
			handler.UpdateProfile,
		)

		admin.POST("/slides",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "slide", "create"),
			handler.CreateSlide,
		)

		admin.DELETE("/slides/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "slide", "delete"),
			handler.DeleteSlide,
		)
	}
}
