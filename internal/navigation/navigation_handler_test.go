package navigation_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-plastindo/internal/navigation"
	"go-plastindo/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeNavigationService struct {
	StateFn    func(ctx context.Context, sessionID string) (navigation.StateResponse, error)
	NavigateFn func(ctx context.Context, sessionID string, req navigation.NavigateRequest) (navigation.StateResponse, error)
	BackFn     func(ctx context.Context, sessionID string) (navigation.StateResponse, error)
	LoginFn    func(ctx context.Context, sessionID string) (navigation.StateResponse, error)
	LogoutFn   func(ctx context.Context, sessionID string) (navigation.StateResponse, error)
}

func (f *fakeNavigationService) State(ctx context.Context, sessionID string) (navigation.StateResponse, error) {
	return f.StateFn(ctx, sessionID)
}
func (f *fakeNavigationService) Navigate(ctx context.Context, sessionID string, req navigation.NavigateRequest) (navigation.StateResponse, error) {
	return f.NavigateFn(ctx, sessionID, req)
}
func (f *fakeNavigationService) Back(ctx context.Context, sessionID string) (navigation.StateResponse, error) {
	return f.BackFn(ctx, sessionID)
}
func (f *fakeNavigationService) Login(ctx context.Context, sessionID string) (navigation.StateResponse, error) {
	return f.LoginFn(ctx, sessionID)
}
func (f *fakeNavigationService) Logout(ctx context.Context, sessionID string) (navigation.StateResponse, error) {
	return f.LogoutFn(ctx, sessionID)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	return gin.New()
}

func TestNavigationHandler_State(t *testing.T) {
	t.Run("success with existing cookie", func(t *testing.T) {
		svc := &fakeNavigationService{
			StateFn: func(ctx context.Context, sessionID string) (navigation.StateResponse, error) {
				assert.Equal(t, "sess-abc", sessionID)
				return navigation.StateResponse{
					CurrentPage: navigation.PageAbout,
					History:     []string{navigation.PageMainHero, navigation.PageAbout},
					Visibility:  navigation.VisibilityPublic,
				}, nil
			},
		}

		h := navigation.NewHandler(svc)
		r := setupRouter()
		r.GET("/navigation", h.State)

		req := httptest.NewRequest(http.MethodGet, "/navigation", nil)
		req.AddCookie(&http.Cookie{Name: navigation.SessionCookieName, Value: "sess-abc"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), navigation.PageAbout)
	})

	t.Run("first visit sets session cookie", func(t *testing.T) {
		svc := &fakeNavigationService{
			StateFn: func(ctx context.Context, sessionID string) (navigation.StateResponse, error) {
				assert.NotEmpty(t, sessionID)
				return navigation.StateResponse{
					CurrentPage: navigation.PageMainHero,
					History:     []string{navigation.PageMainHero},
					Visibility:  navigation.VisibilityPublic,
				}, nil
			},
		}

		h := navigation.NewHandler(svc)
		r := setupRouter()
		r.GET("/navigation", h.State)

		req := httptest.NewRequest(http.MethodGet, "/navigation", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var found bool
		for _, c := range w.Result().Cookies() {
			if c.Name == navigation.SessionCookieName && c.Value != "" {
				found = true
			}
		}
		assert.True(t, found, "session cookie should be set")
	})

	t.Run("service error maps to internal error", func(t *testing.T) {
		svc := &fakeNavigationService{
			StateFn: func(ctx context.Context, sessionID string) (navigation.StateResponse, error) {
				return navigation.StateResponse{}, errors.New("redis down")
			},
		}

		h := navigation.NewHandler(svc)
		r := setupRouter()
		r.GET("/navigation", h.State)

		req := httptest.NewRequest(http.MethodGet, "/navigation", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	})
}

func TestNavigationHandler_Navigate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeNavigationService{
			NavigateFn: func(ctx context.Context, sessionID string, req navigation.NavigateRequest) (navigation.StateResponse, error) {
				assert.Equal(t, navigation.PageContact, req.Page)
				assert.False(t, req.IsBack)
				return navigation.StateResponse{
					CurrentPage: navigation.PageContact,
					History:     []string{navigation.PageMainHero, navigation.PageContact},
					Visibility:  navigation.VisibilityPublic,
				}, nil
			},
		}

		h := navigation.NewHandler(svc)
		r := setupRouter()
		r.POST("/navigation/navigate", h.Navigate)

		body := `{"page":"contactPage"}`
		req := httptest.NewRequest(http.MethodPost, "/navigation/navigate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), navigation.PageContact)
	})

	t.Run("missing page rejected", func(t *testing.T) {
		svc := &fakeNavigationService{}

		h := navigation.NewHandler(svc)
		r := setupRouter()
		r.POST("/navigation/navigate", h.Navigate)

		req := httptest.NewRequest(http.MethodPost, "/navigation/navigate", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
		assert.Contains(t, w.Body.String(), "Page is required")
	})
}

func TestNavigationHandler_Back(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeNavigationService{
			BackFn: func(ctx context.Context, sessionID string) (navigation.StateResponse, error) {
				return navigation.StateResponse{
					CurrentPage: navigation.PageAbout,
					History:     []string{navigation.PageMainHero, navigation.PageAbout},
					Visibility:  navigation.VisibilityPublic,
				}, nil
			},
		}

		h := navigation.NewHandler(svc)
		r := setupRouter()
		r.POST("/navigation/back", h.Back)

		req := httptest.NewRequest(http.MethodPost, "/navigation/back", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), navigation.PageAbout)
	})
}
