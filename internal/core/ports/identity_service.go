package ports

import (
	"context"

	"github.com/factoryops/user-admin-api/internal/core/domain"
)

// IdentityService is the identity collaborator consumed by the role and
// provisioning operations: it issues identities, overwrites per-identity
// claims, and mints one-time credential-reset links.
type IdentityService interface {
	CreateIdentity(ctx context.Context, email, credential string) (*domain.Identity, error)
	SetClaims(ctx context.Context, uid string, claims domain.Claims) error
	GenerateResetLink(ctx context.Context, email string) (string, error)
	VerifyCredential(ctx context.Context, email, credential string) (*domain.Identity, error)
	ResetCredential(ctx context.Context, token, credential string) error
}

// IdentityStore is the persistence interface behind the identity service.
type IdentityStore interface {
	Insert(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
	SetClaims(ctx context.Context, uid string, claims domain.Claims) error
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	UpdateCredentialHash(ctx context.Context, uid, hash string) error
}

// ResetTokenStore issues and redeems single-use credential-reset tokens.
// Redeem consumes the token: a second redeem of the same token fails with
// domain.ErrResetTokenInvalid.
type ResetTokenStore interface {
	Issue(ctx context.Context, email string) (string, error)
	Redeem(ctx context.Context, token string) (string, error)
}
