package auth

import (
	"net/http"
	"os"

	"go-plastindo/internal/navigation"
	"go-plastindo/internal/shared/apperror"
	"go-plastindo/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service    Service
	navService navigation.Service
	logger     *zap.Logger
}

func NewHandler(service Service, navService navigation.Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, navService: navService, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	token, userResp, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, "AUTH_FAILED", httpErr.Message, nil)
		return
	}

	isProd := os.Getenv("APP_ENV") == "production"
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		MaxAge:   86400, // 1 hari
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})

	// Sinkronkan session navigasi: flag admin nyala, pindah ke dashboard.
	sid := navigation.SessionID(c)
	navState, err := h.navService.Login(c.Request.Context(), sid)
	if err != nil {
		h.logger.Error("promote navigation session failed",
			zap.String("session_id", sid),
			zap.Error(err),
		)
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":         userResp,
		"access_token": token,
		"navigation":   navState,
	}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	username := c.GetString("username")
	role := c.GetString("role")

	userResp, err := h.service.Me(c.Request.Context(), username, role)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	response.Success(c, http.StatusOK, userResp, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	isProd := os.Getenv("APP_ENV") == "production"

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})

	// Session navigasi kembali ke kondisi publik: history direset ke home.
	sid := navigation.SessionID(c)
	navState, err := h.navService.Logout(c.Request.Context(), sid)
	if err != nil {
		h.logger.Error("demote navigation session failed",
			zap.String("session_id", sid),
			zap.Error(err),
		)
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":    "Logout success.",
		"navigation": navState,
	}, nil)
}
