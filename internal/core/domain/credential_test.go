package domain

import (
	"strings"
	"testing"
)

func TestGenerateCredential_Length(t *testing.T) {
	cred, err := GenerateCredential(0)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(cred) != CredentialLength {
		t.Fatalf("expected default length %d, got %d", CredentialLength, len(cred))
	}

	cred, err = GenerateCredential(20)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(cred) != 20 {
		t.Fatalf("expected length 20, got %d", len(cred))
	}
}

func TestGenerateCredential_Alphabet(t *testing.T) {
	cred, err := GenerateCredential(256)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	for _, r := range cred {
		if !strings.ContainsRune(credentialAlphabet, r) {
			t.Fatalf("character %q outside alphabet", r)
		}
	}
}

func TestGenerateCredential_Unique(t *testing.T) {
	a, err := GenerateCredential(CredentialLength)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	b, err := GenerateCredential(CredentialLength)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if a == b {
		t.Fatalf("two generated credentials are identical: %s", a)
	}
}

func TestClaimsForRole(t *testing.T) {
	cases := []struct {
		role string
		want Claims
	}{
		{RoleAdmin, Claims{Admin: true}},
		{RoleEditor, Claims{Editor: true}},
		{RoleOwner, Claims{}},
		{"superadmin", Claims{}},
		{"", Claims{}},
	}
	for _, tc := range cases {
		if got := ClaimsForRole(tc.role); got != tc.want {
			t.Fatalf("role %q: expected %+v, got %+v", tc.role, tc.want, got)
		}
	}
}

func TestClaims_Has(t *testing.T) {
	c := Claims{Admin: true, Editor: false, Owner: true}
	if !c.Has(RoleAdmin) || c.Has(RoleEditor) || !c.Has(RoleOwner) {
		t.Fatalf("unexpected claim lookup results: %+v", c)
	}
	if c.Has("superadmin") {
		t.Fatalf("unknown claim name must be false")
	}
}
