package app

import (
	"database/sql"

	"go-plastindo/internal/audit"
	"go-plastindo/internal/auth"
	"go-plastindo/internal/company"
	"go-plastindo/internal/employee"
	"go-plastindo/internal/messaging/kafka"
	"go-plastindo/internal/middleware"
	"go-plastindo/internal/navigation"
	"go-plastindo/internal/problem"
	"go-plastindo/internal/rbac"
	"go-plastindo/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	router.Use(middleware.RequestID())

	// --- Repositories ---
	auditRepo := audit.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	problemRepo := problem.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	// --- Services ---
	authCfg, err := auth.ConfigFromEnv()
	if err != nil {
		return err
	}
	auditService := audit.NewService(auditRepo)
	authService := auth.NewService(authCfg)
	companyService := company.NewService(companyRepo, rdb)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	navigationService := navigation.NewService(navigation.NewRedisStore(rdb))
	problemService := problem.NewService(db, problemRepo)

	// --- Handlers ---
	auditHandler := audit.NewHandler(auditService)
	authHandler := auth.NewHandler(authService, navigationService)
	companyHandler := company.NewHandler(companyService)
	employeeHandler := employee.NewHandler(employeeService)
	navigationHandler := navigation.NewHandler(navigationService)
	problemHandler := problem.NewHandler(problemService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		audit.RegisterRoutes(api, auditHandler, rbacService, logger)
		auth.RegisterRoutes(api, authHandler)
		company.RegisterRoutes(api, companyHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, rdb, logger)
		navigation.RegisterRoutes(api, navigationHandler, logger)
		problem.RegisterRoutes(api, problemHandler, rbacService, rdb, logger)
	}

	return nil
}
