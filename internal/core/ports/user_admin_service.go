package ports

import (
	"context"

	"github.com/factoryops/user-admin-api/internal/core/domain"
)

// RoleService assigns one of the fixed roles to an existing identity.
type RoleService interface {
	AssignRole(ctx context.Context, caller domain.Caller, uid, role string) error
}

// ProvisionResult is the outcome of a successful provisioning call. The
// generated credential is deliberately absent: onboarding happens through
// the reset link.
type ProvisionResult struct {
	UID       string
	ResetLink string
}

// UserService creates new identities with an initial role.
type UserService interface {
	ProvisionUser(ctx context.Context, caller domain.Caller, email, role string) (*ProvisionResult, error)
}

// TokenService exchanges a credential for a signed token carrying the
// identity's claims.
type TokenService interface {
	Login(ctx context.Context, email, credential string) (string, *domain.Identity, error)
}
