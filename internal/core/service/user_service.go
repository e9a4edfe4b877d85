package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/factoryops/user-admin-api/internal/core/domain"
	"github.com/factoryops/user-admin-api/internal/core/ports"
)

// UserProvisioner creates a new identity with an initial role, mirrors a
// profile record, and mints the credential-reset link used for onboarding.
//
// Steps run in order with no compensation: a failure after identity creation
// leaves the identity in place. The owner claim is never grantable through
// provisioning, even when the requested role is "owner"; the profile still
// stores the literal role string.
type UserProvisioner struct {
	identities ports.IdentityService
	profiles   ports.ProfileStore
	logger     zerolog.Logger
}

func NewUserProvisioner(identities ports.IdentityService, profiles ports.ProfileStore, logger zerolog.Logger) *UserProvisioner {
	return &UserProvisioner{identities: identities, profiles: profiles, logger: logger}
}

// ProvisionUser requires the caller to hold the admin or owner claim, a
// looser gate than role assignment by contract. The generated credential is
// never returned or logged; it only satisfies identity creation.
func (s *UserProvisioner) ProvisionUser(ctx context.Context, caller domain.Caller, email, role string) (*ports.ProvisionResult, error) {
	if !caller.Claims.Admin && !caller.Claims.Owner {
		return nil, fmt.Errorf("%w: only admins or owners can create users", domain.ErrPermissionDenied)
	}

	credential, err := domain.GenerateCredential(domain.CredentialLength)
	if err != nil {
		return nil, fmt.Errorf("generate credential: %v", err)
	}

	identity, err := s.identities.CreateIdentity(ctx, email, credential)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("identity creation failed")
		return nil, fmt.Errorf("create identity: %v", err)
	}

	if err := s.identities.SetClaims(ctx, identity.ID, domain.ClaimsForRole(role)); err != nil {
		s.logger.Error().Err(err).Str("uid", identity.ID).Msg("initial claims write failed")
		return nil, fmt.Errorf("set claims: %v", err)
	}

	rec := domain.ProfileRecord{
		UID:   identity.ID,
		Email: email,
		Role:  role,
		Owner: false,
	}
	if err := s.profiles.Create(ctx, rec); err != nil {
		s.logger.Error().Err(err).Str("uid", identity.ID).Msg("profile creation failed")
		return nil, fmt.Errorf("create profile: %v", err)
	}

	link, err := s.identities.GenerateResetLink(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Str("uid", identity.ID).Msg("reset link generation failed")
		return nil, fmt.Errorf("generate reset link: %v", err)
	}

	s.logger.Info().Str("uid", identity.ID).Str("role", role).Str("caller", caller.Subject).Msg("user provisioned")
	return &ports.ProvisionResult{UID: identity.ID, ResetLink: link}, nil
}
