package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/factoryops/user-admin-api/internal/core/domain"
	"github.com/factoryops/user-admin-api/internal/core/ports"
)

// EnsureBootstrapAdmin provisions the first administrator at startup so a
// fresh deployment has a caller able to pass the admin gate. A no-op when
// email is empty or the identity already exists. The admin still onboards
// through a reset link like any provisioned user.
func EnsureBootstrapAdmin(ctx context.Context, identities ports.IdentityService, profiles ports.ProfileStore, email string, logger zerolog.Logger) error {
	if email == "" {
		return nil
	}

	credential, err := domain.GenerateCredential(domain.CredentialLength)
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	identity, err := identities.CreateIdentity(ctx, email, credential)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityExists) {
			logger.Debug().Str("email", email).Msg("bootstrap admin already present")
			return nil
		}
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	if err := identities.SetClaims(ctx, identity.ID, domain.Claims{Admin: true}); err != nil {
		return fmt.Errorf("bootstrap admin claims: %w", err)
	}

	rec := domain.ProfileRecord{
		UID:   identity.ID,
		Email: email,
		Role:  domain.RoleAdmin,
		Owner: false,
	}
	if err := profiles.Create(ctx, rec); err != nil {
		return fmt.Errorf("bootstrap admin profile: %w", err)
	}

	link, err := identities.GenerateResetLink(ctx, email)
	if err != nil {
		return fmt.Errorf("bootstrap admin reset link: %w", err)
	}

	logger.Info().Str("uid", identity.ID).Str("email", email).Str("reset_link", link).Msg("bootstrap admin provisioned")
	return nil
}
