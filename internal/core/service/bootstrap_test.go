package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/factoryops/user-admin-api/internal/core/domain"
)

func TestEnsureBootstrapAdmin_CreatesAdmin(t *testing.T) {
	ids := newFakeIdentityService()
	profiles := newFakeProfileStore()

	if err := EnsureBootstrapAdmin(context.Background(), ids, profiles, "root@b.com", zerolog.Nop()); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}

	if len(ids.claims) != 1 {
		t.Fatalf("expected one identity with claims, got %d", len(ids.claims))
	}
	for uid, claims := range ids.claims {
		if claims != (domain.Claims{Admin: true}) {
			t.Fatalf("expected admin claims, got %+v", claims)
		}
		if profiles.records[uid].Role != domain.RoleAdmin {
			t.Fatalf("expected admin profile, got %+v", profiles.records[uid])
		}
	}
	if len(ids.resetEmails) != 1 {
		t.Fatalf("bootstrap must issue a reset link")
	}
}

func TestEnsureBootstrapAdmin_NoopCases(t *testing.T) {
	ids := newFakeIdentityService()
	profiles := newFakeProfileStore()

	if err := EnsureBootstrapAdmin(context.Background(), ids, profiles, "", zerolog.Nop()); err != nil {
		t.Fatalf("empty email must be a no-op, got %v", err)
	}
	if len(ids.credentials) != 0 {
		t.Fatalf("no identity may be created without a configured email")
	}

	ids.createErr = domain.ErrIdentityExists
	if err := EnsureBootstrapAdmin(context.Background(), ids, profiles, "root@b.com", zerolog.Nop()); err != nil {
		t.Fatalf("existing admin must be a no-op, got %v", err)
	}
}
