package navigation

import (
	"net/http"
	"os"

	"go-plastindo/internal/shared/apperror"
	"go-plastindo/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const SessionCookieName = "nav_session"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("navigation.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("navigation.handler")
	}
	return &Handler{service: service, logger: l}
}

// SessionID mengambil id session dari cookie, atau membuat yang baru
// untuk pengunjung pertama kali.
func SessionID(c *gin.Context) string {
	if sid, err := c.Cookie(SessionCookieName); err == nil && sid != "" {
		return sid
	}

	sid := uuid.NewString()
	isProd := os.Getenv("APP_ENV") == "production"
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sid,
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("navigation request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) State(c *gin.Context) {
	sid := SessionID(c)

	resp, err := h.service.State(c.Request.Context(), sid)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Navigate(c *gin.Context) {
	sid := SessionID(c)

	var req NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("navigate validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp, err := h.service.Navigate(c.Request.Context(), sid, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Back(c *gin.Context) {
	sid := SessionID(c)

	resp, err := h.service.Back(c.Request.Context(), sid)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
