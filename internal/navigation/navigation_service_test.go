package navigation_test

import (
	"context"
	"errors"
	"testing"

	"go-plastindo/internal/navigation"

	"github.com/stretchr/testify/assert"
)

type fakeStore struct {
	GetFn    func(ctx context.Context, sessionID string) (*navigation.State, error)
	SaveFn   func(ctx context.Context, sessionID string, state navigation.State) error
	DeleteFn func(ctx context.Context, sessionID string) error
}

func (f *fakeStore) Get(ctx context.Context, sessionID string) (*navigation.State, error) {
	return f.GetFn(ctx, sessionID)
}
func (f *fakeStore) Save(ctx context.Context, sessionID string, state navigation.State) error {
	return f.SaveFn(ctx, sessionID, state)
}
func (f *fakeStore) Delete(ctx context.Context, sessionID string) error {
	return f.DeleteFn(ctx, sessionID)
}

// memStore menyimpan state di map, cukup untuk alur multi-call.
type memStore struct {
	states map[string]navigation.State
}

func newMemStore() *memStore {
	return &memStore{states: map[string]navigation.State{}}
}

func (m *memStore) Get(ctx context.Context, sessionID string) (*navigation.State, error) {
	state, ok := m.states[sessionID]
	if !ok {
		return nil, nil
	}
	return &state, nil
}
func (m *memStore) Save(ctx context.Context, sessionID string, state navigation.State) error {
	m.states[sessionID] = state
	return nil
}
func (m *memStore) Delete(ctx context.Context, sessionID string) error {
	delete(m.states, sessionID)
	return nil
}

func TestNavigationService_State(t *testing.T) {
	ctx := context.Background()

	t.Run("new session gets initial state", func(t *testing.T) {
		svc := navigation.NewService(newMemStore())

		resp, err := svc.State(ctx, "sess-1")

		assert.NoError(t, err)
		assert.Equal(t, navigation.PageMainHero, resp.CurrentPage)
		assert.Equal(t, []string{navigation.PageMainHero}, resp.History)
		assert.False(t, resp.AdminAuthenticated)
		assert.Equal(t, navigation.VisibilityPublic, resp.Visibility)
	})

	t.Run("store error surfaces", func(t *testing.T) {
		svc := navigation.NewService(&fakeStore{
			GetFn: func(ctx context.Context, sessionID string) (*navigation.State, error) {
				return nil, errors.New("redis down")
			},
		})

		_, err := svc.State(ctx, "sess-1")

		assert.Error(t, err)
	})
}

func TestNavigationService_Navigate(t *testing.T) {
	ctx := context.Background()

	t.Run("navigate persists and returns new state", func(t *testing.T) {
		store := newMemStore()
		svc := navigation.NewService(store)

		resp, err := svc.Navigate(ctx, "sess-1", navigation.NavigateRequest{Page: navigation.PageAbout})

		assert.NoError(t, err)
		assert.Equal(t, navigation.PageAbout, resp.CurrentPage)
		assert.Equal(t, []string{navigation.PageMainHero, navigation.PageAbout}, resp.History)

		saved, _ := store.Get(ctx, "sess-1")
		assert.Equal(t, navigation.PageAbout, saved.CurrentPage)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		svc := navigation.NewService(newMemStore())

		_, err := svc.Navigate(ctx, "sess-a", navigation.NavigateRequest{Page: navigation.PageContact})
		assert.NoError(t, err)

		resp, err := svc.State(ctx, "sess-b")
		assert.NoError(t, err)
		assert.Equal(t, navigation.PageMainHero, resp.CurrentPage)
	})

	t.Run("save error surfaces", func(t *testing.T) {
		svc := navigation.NewService(&fakeStore{
			GetFn: func(ctx context.Context, sessionID string) (*navigation.State, error) {
				return nil, nil
			},
			SaveFn: func(ctx context.Context, sessionID string, state navigation.State) error {
				return errors.New("redis down")
			},
		})

		_, err := svc.Navigate(ctx, "sess-1", navigation.NavigateRequest{Page: navigation.PageAbout})

		assert.Error(t, err)
	})
}

func TestNavigationService_Back(t *testing.T) {
	ctx := context.Background()

	t.Run("about then contact then back lands on about", func(t *testing.T) {
		svc := navigation.NewService(newMemStore())

		_, err := svc.Navigate(ctx, "sess-1", navigation.NavigateRequest{Page: navigation.PageAbout})
		assert.NoError(t, err)
		_, err = svc.Navigate(ctx, "sess-1", navigation.NavigateRequest{Page: navigation.PageContact})
		assert.NoError(t, err)

		resp, err := svc.Back(ctx, "sess-1")

		assert.NoError(t, err)
		assert.Equal(t, navigation.PageAbout, resp.CurrentPage)
		assert.Equal(t, []string{navigation.PageMainHero, navigation.PageAbout}, resp.History)
	})

	t.Run("back on fresh session stays home", func(t *testing.T) {
		svc := navigation.NewService(newMemStore())

		resp, err := svc.Back(ctx, "sess-1")

		assert.NoError(t, err)
		assert.Equal(t, navigation.PageMainHero, resp.CurrentPage)
		assert.Equal(t, []string{navigation.PageMainHero}, resp.History)
	})
}

func TestNavigationService_LoginLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("login promotes session", func(t *testing.T) {
		svc := navigation.NewService(newMemStore())

		_, err := svc.Navigate(ctx, "sess-1", navigation.NavigateRequest{Page: navigation.PageAdminLogin})
		assert.NoError(t, err)

		resp, err := svc.Login(ctx, "sess-1")

		assert.NoError(t, err)
		assert.True(t, resp.AdminAuthenticated)
		assert.Equal(t, navigation.PageAdminDashboard, resp.CurrentPage)
		assert.Equal(t, navigation.VisibilityAdmin, resp.Visibility)
	})

	t.Run("logout demotes and resets", func(t *testing.T) {
		svc := navigation.NewService(newMemStore())

		_, err := svc.Login(ctx, "sess-1")
		assert.NoError(t, err)

		resp, err := svc.Logout(ctx, "sess-1")

		assert.NoError(t, err)
		assert.False(t, resp.AdminAuthenticated)
		assert.Equal(t, navigation.PageMainHero, resp.CurrentPage)
		assert.Equal(t, []string{navigation.PageMainHero}, resp.History)
	})
}
