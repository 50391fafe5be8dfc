package rbac_test

import (
	"testing"

	"go-plastindo/internal/domain"
	"go-plastindo/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func newService(t *testing.T) rbac.Service {
	t.Helper()

	enforcer, err := rbac.NewEnforcer()
	assert.NoError(t, err)

	svc, err := rbac.NewService(enforcer)
	assert.NoError(t, err)
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newService(t)

	t.Run("admin can manage employees", func(t *testing.T) {
		for _, action := range []string{"create", "read", "update", "delete"} {
			allowed, err := svc.Enforce(domain.EnforceRequest{
				Role:     rbac.RoleAdmin,
				Resource: "employee",
				Action:   action,
			})
			assert.NoError(t, err)
			assert.True(t, allowed, action)
		}
	})

	t.Run("admin can manage problems and content", func(t *testing.T) {
		for _, resource := range []string{"problem", "profile", "slide"} {
			allowed, err := svc.Enforce(domain.EnforceRequest{
				Role:     rbac.RoleAdmin,
				Resource: resource,
				Action:   "update",
			})
			assert.NoError(t, err)
			assert.True(t, allowed, resource)
		}
	})

	t.Run("user can only read content", func(t *testing.T) {
		allowed, err := svc.Enforce(domain.EnforceRequest{
			Role:     rbac.RoleUser,
			Resource: "profile",
			Action:   "read",
		})
		assert.NoError(t, err)
		assert.True(t, allowed)

		denied, err := svc.Enforce(domain.EnforceRequest{
			Role:     rbac.RoleUser,
			Resource: "employee",
			Action:   "read",
		})
		assert.NoError(t, err)
		assert.False(t, denied)
	})

	t.Run("unknown role denied", func(t *testing.T) {
		allowed, err := svc.Enforce(domain.EnforceRequest{
			Role:     "guest",
			Resource: "employee",
			Action:   "read",
		})
		assert.NoError(t, err)
		assert.False(t, allowed)
	})
}
