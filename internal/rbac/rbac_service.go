package rbac

import (
	"sync"

	"go-plastindo/internal/domain"

	"github.com/casbin/casbin/v2"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Policy statis: admin boleh semua aksi pada resource yang dikelola situs,
// user hanya membaca konten publik.
var defaultPolicies = [][]string{
	{RoleAdmin, "employee", "*"},
	{RoleAdmin, "problem", "*"},
	{RoleAdmin, "profile", "*"},
	{RoleAdmin, "slide", "*"},
	{RoleAdmin, "audit", "read"},
	{RoleUser, "profile", "read"},
	{RoleUser, "slide", "read"},
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService(enforcer *casbin.Enforcer) (Service, error) {
	for _, p := range defaultPolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(req.Role, req.Resource, req.Action)
}
