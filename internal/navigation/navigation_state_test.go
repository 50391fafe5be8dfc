package navigation_test

import (
	"testing"

	"go-plastindo/internal/navigation"

	"github.com/stretchr/testify/assert"
)

func TestNewState(t *testing.T) {
	state := navigation.NewState()

	assert.Equal(t, navigation.PageMainHero, state.CurrentPage)
	assert.Equal(t, []string{navigation.PageMainHero}, state.History)
	assert.False(t, state.AdminAuthenticated)
	assert.Equal(t, navigation.VisibilityPublic, state.VisibilityMode())
}

func TestState_Navigate(t *testing.T) {
	t.Run("forward navigation appends to history", func(t *testing.T) {
		state := navigation.NewState()

		state.Navigate(navigation.PageAbout, false)
		state.Navigate(navigation.PageContact, false)

		assert.Equal(t, navigation.PageContact, state.CurrentPage)
		assert.Equal(t, []string{
			navigation.PageMainHero,
			navigation.PageAbout,
			navigation.PageContact,
		}, state.History)
	})

	t.Run("history grows by one per forward navigation", func(t *testing.T) {
		state := navigation.NewState()
		pages := []string{
			navigation.PageAbout,
			navigation.PageContact,
			navigation.PageAdminLogin,
			navigation.PageUserMenu,
		}

		for i, page := range pages {
			state.Navigate(page, false)
			assert.Len(t, state.History, i+2)
		}
	})

	t.Run("back navigation does not append", func(t *testing.T) {
		state := navigation.NewState()
		state.Navigate(navigation.PageAbout, false)

		state.Navigate(navigation.PageMainHero, true)

		assert.Equal(t, navigation.PageMainHero, state.CurrentPage)
		assert.Equal(t, []string{
			navigation.PageMainHero,
			navigation.PageAbout,
		}, state.History)
	})

	t.Run("unknown page falls back to home", func(t *testing.T) {
		state := navigation.NewState()

		state.Navigate("nonexistentPage", false)

		assert.Equal(t, navigation.PageMainHero, state.CurrentPage)
		assert.Equal(t, []string{
			navigation.PageMainHero,
			navigation.PageMainHero,
		}, state.History)
	})

	t.Run("navigating to same page still appends", func(t *testing.T) {
		state := navigation.NewState()

		state.Navigate(navigation.PageAbout, false)
		state.Navigate(navigation.PageAbout, false)

		assert.Len(t, state.History, 3)
	})
}

func TestState_GoBack(t *testing.T) {
	t.Run("pops current page and moves to previous", func(t *testing.T) {
		state := navigation.NewState()
		state.Navigate(navigation.PageAbout, false)
		state.Navigate(navigation.PageContact, false)

		state.GoBack()

		assert.Equal(t, navigation.PageAbout, state.CurrentPage)
		assert.Equal(t, []string{
			navigation.PageMainHero,
			navigation.PageAbout,
		}, state.History)
	})

	t.Run("at home stays at home", func(t *testing.T) {
		state := navigation.NewState()

		state.GoBack()

		assert.Equal(t, navigation.PageMainHero, state.CurrentPage)
		assert.Equal(t, []string{navigation.PageMainHero}, state.History)
	})

	t.Run("history never shrinks below one", func(t *testing.T) {
		state := navigation.NewState()
		state.Navigate(navigation.PageAbout, false)

		for i := 0; i < 5; i++ {
			state.GoBack()
		}

		assert.Len(t, state.History, 1)
		assert.Equal(t, navigation.PageMainHero, state.CurrentPage)
	})
}

func TestState_LoginLogout(t *testing.T) {
	t.Run("login lands on dashboard with admin visibility", func(t *testing.T) {
		state := navigation.NewState()
		state.Navigate(navigation.PageAdminLogin, false)

		state.Login()

		assert.True(t, state.AdminAuthenticated)
		assert.Equal(t, navigation.PageAdminDashboard, state.CurrentPage)
		assert.Equal(t, navigation.VisibilityAdmin, state.VisibilityMode())
		assert.Equal(t, []string{
			navigation.PageMainHero,
			navigation.PageAdminLogin,
			navigation.PageAdminDashboard,
		}, state.History)
	})

	t.Run("logout resets history to home", func(t *testing.T) {
		state := navigation.NewState()
		state.Navigate(navigation.PageAdminLogin, false)
		state.Login()
		state.Navigate(navigation.PageEmployeeList, false)

		state.Logout()

		assert.False(t, state.AdminAuthenticated)
		assert.Equal(t, navigation.PageMainHero, state.CurrentPage)
		assert.Equal(t, []string{navigation.PageMainHero}, state.History)
		assert.Equal(t, navigation.VisibilityPublic, state.VisibilityMode())
	})
}

func TestState_VisibilityMode(t *testing.T) {
	t.Run("admin wins over page rules", func(t *testing.T) {
		state := navigation.NewState()
		state.Login()
		state.Navigate(navigation.PageUserMenu, false)

		assert.Equal(t, navigation.VisibilityAdmin, state.VisibilityMode())
	})

	t.Run("user pages get user visibility without admin", func(t *testing.T) {
		userPages := []string{
			navigation.PageUserMenu,
			navigation.PageBiodata,
			navigation.PageUserProblem,
			navigation.PageUserProduction,
		}

		for _, page := range userPages {
			state := navigation.NewState()
			state.Navigate(page, false)
			assert.Equal(t, navigation.VisibilityUser, state.VisibilityMode(), page)
		}
	})

	t.Run("other pages are public", func(t *testing.T) {
		publicPages := []string{
			navigation.PageMainHero,
			navigation.PageAbout,
			navigation.PageContact,
			navigation.PageAdminLogin,
			navigation.PageBiodataSearch,
		}

		for _, page := range publicPages {
			state := navigation.NewState()
			state.Navigate(page, false)
			assert.Equal(t, navigation.VisibilityPublic, state.VisibilityMode(), page)
		}
	})
}
