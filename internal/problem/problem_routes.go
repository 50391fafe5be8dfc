package problem

import (
	"go-plastindo/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	problems := r.Group("/problems")
	problems.Use(middleware.AuthMiddleware())
	problems.Use(middleware.ContextLogger(logger))
	{
		problems.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "problem", "read"),
			handler.GetAll,
		)

		problems.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "problem", "read"),
			handler.GetById,
		)

		problems.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "problem", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		problems.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "problem", "update"),
			handler.Update,
		)

		problems.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "problem", "delete"),
			handler.Delete,
		)
	}
}
