package audit

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
	auditGroup := r.Group("/audit")
	auditGroup.Use(middleware.AuthMiddleware())
	auditGroup.Use(middleware.ContextLogger(logger))
	{
		auditGroup.GET("/recent",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "audit", "read"),
			handler.GetRecent,
		)
	}
}
