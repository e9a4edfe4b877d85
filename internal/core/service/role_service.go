package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/factoryops/user-admin-api/internal/core/domain"
	"github.com/factoryops/user-admin-api/internal/core/ports"
)

// RoleAssigner sets an identity's authorization claims from a requested role
// and mirrors the role into the profile store.
//
// The two writes are not transactional: if the claims write succeeds and the
// profile write fails, the stores diverge and are left diverged. Re-running
// AssignRole is the repair path, since it fully overwrites the claim set and
// merge-updates the profile.
type RoleAssigner struct {
	identities ports.IdentityService
	profiles   ports.ProfileStore
	logger     zerolog.Logger
}

func NewRoleAssigner(identities ports.IdentityService, profiles ports.ProfileStore, logger zerolog.Logger) *RoleAssigner {
	return &RoleAssigner{identities: identities, profiles: profiles, logger: logger}
}

// AssignRole overwrites the target's claims to exactly those derived from
// role and merge-updates the profile record. Only callers holding the admin
// claim may invoke it; the check runs before any mutation.
//
// Collaborator failures are flattened with %v so callers only ever observe
// permission-denied or internal: a missing target is indistinguishable from
// any other store failure, matching the operation contract.
func (s *RoleAssigner) AssignRole(ctx context.Context, caller domain.Caller, uid, role string) error {
	if !caller.Claims.Admin {
		return fmt.Errorf("%w: only admins can modify roles", domain.ErrPermissionDenied)
	}

	if err := s.identities.SetClaims(ctx, uid, domain.ClaimsForRole(role)); err != nil {
		s.logger.Error().Err(err).Str("uid", uid).Msg("claims update failed")
		return fmt.Errorf("set claims: %v", err)
	}

	if err := s.profiles.SetRole(ctx, uid, role); err != nil {
		s.logger.Error().Err(err).Str("uid", uid).Msg("profile update failed after claims write")
		return fmt.Errorf("update profile: %v", err)
	}

	s.logger.Info().Str("uid", uid).Str("role", role).Str("caller", caller.Subject).Msg("role assigned")
	return nil
}
