package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/factoryops/user-admin-api/internal/core/domain"
)

const credentialAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func TestUserProvisioner_PermissionDenied(t *testing.T) {
	ids := newFakeIdentityService()
	profiles := newFakeProfileStore()
	svc := NewUserProvisioner(ids, profiles, zerolog.Nop())

	callers := []domain.Caller{
		{},
		{Subject: "editor-1", Claims: domain.Claims{Editor: true}},
	}
	for _, caller := range callers {
		_, err := svc.ProvisionUser(context.Background(), caller, "a@b.com", "editor")
		if !errors.Is(err, domain.ErrPermissionDenied) {
			t.Fatalf("caller %+v: expected ErrPermissionDenied, got %v", caller, err)
		}
	}

	if len(ids.credentials) != 0 || len(profiles.records) != 0 {
		t.Fatalf("denied call must perform zero mutations")
	}
}

func TestUserProvisioner_OwnerCallerAllowed(t *testing.T) {
	ids := newFakeIdentityService()
	profiles := newFakeProfileStore()
	svc := NewUserProvisioner(ids, profiles, zerolog.Nop())

	caller := domain.Caller{Subject: "owner-1", Claims: domain.Claims{Owner: true}}
	result, err := svc.ProvisionUser(context.Background(), caller, "a@b.com", "admin")
	if err != nil {
		t.Fatalf("provision failed: %v", err)
	}
	if result.ResetLink == "" {
		t.Fatalf("expected non-empty reset link")
	}

	want := domain.Claims{Admin: true, Editor: false, Owner: false}
	if ids.claims[result.UID] != want {
		t.Fatalf("expected claims %+v, got %+v", want, ids.claims[result.UID])
	}
}

func TestUserProvisioner_OwnerClaimAlwaysFalse(t *testing.T) {
	ids := newFakeIdentityService()
	profiles := newFakeProfileStore()
	svc := NewUserProvisioner(ids, profiles, zerolog.Nop())

	for _, role := range []string{"admin", "editor", "owner", "superadmin"} {
		result, err := svc.ProvisionUser(context.Background(), adminCaller(), role+"@b.com", role)
		if err != nil {
			t.Fatalf("provision %q failed: %v", role, err)
		}
		if ids.claims[result.UID].Owner {
			t.Fatalf("role %q: owner claim must always be false", role)
		}
		rec := profiles.records[result.UID]
		if rec.Role != role || rec.Owner {
			t.Fatalf("role %q: unexpected profile record %+v", role, rec)
		}
	}
}

func TestUserProvisioner_GeneratedCredential(t *testing.T) {
	ids := newFakeIdentityService()
	profiles := newFakeProfileStore()
	svc := NewUserProvisioner(ids, profiles, zerolog.Nop())

	a, err := svc.ProvisionUser(context.Background(), adminCaller(), "a@b.com", "editor")
	if err != nil {
		t.Fatalf("provision failed: %v", err)
	}
	b, err := svc.ProvisionUser(context.Background(), adminCaller(), "b@b.com", "editor")
	if err != nil {
		t.Fatalf("provision failed: %v", err)
	}

	for _, uid := range []string{a.UID, b.UID} {
		cred := ids.credentials[uid]
		if len(cred) != domain.CredentialLength {
			t.Fatalf("expected credential length %d, got %d", domain.CredentialLength, len(cred))
		}
		for _, r := range cred {
			if !strings.ContainsRune(credentialAlphabet, r) {
				t.Fatalf("credential character %q outside alphabet", r)
			}
		}
	}
	if ids.credentials[a.UID] == ids.credentials[b.UID] {
		t.Fatalf("two provisioned credentials are identical")
	}
}

func TestUserProvisioner_CreateFailureStopsPipeline(t *testing.T) {
	ids := newFakeIdentityService()
	ids.createErr = domain.ErrIdentityExists
	profiles := newFakeProfileStore()
	svc := NewUserProvisioner(ids, profiles, zerolog.Nop())

	_, err := svc.ProvisionUser(context.Background(), adminCaller(), "a@b.com", "editor")
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, domain.ErrIdentityExists) {
		t.Fatalf("collaborator sentinel must not leak through: %v", err)
	}
	if len(ids.claims) != 0 || len(profiles.records) != 0 || len(ids.resetEmails) != 0 {
		t.Fatalf("no step may run after identity creation fails")
	}
}

func TestUserProvisioner_ResetLinkFailureLeavesEarlierSteps(t *testing.T) {
	ids := newFakeIdentityService()
	ids.resetLinkErr = errors.New("link service unavailable")
	profiles := newFakeProfileStore()
	svc := NewUserProvisioner(ids, profiles, zerolog.Nop())

	_, err := svc.ProvisionUser(context.Background(), adminCaller(), "a@b.com", "editor")
	if err == nil {
		t.Fatalf("expected error")
	}
	// No compensation: identity, claims, and profile all remain.
	if len(ids.credentials) != 1 || len(ids.claims) != 1 || len(profiles.records) != 1 {
		t.Fatalf("earlier steps must remain committed after reset link failure")
	}
}
