package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/factoryops/user-admin-api/internal/core/domain"
)

func TestTokenService_Login_EmbedsClaims(t *testing.T) {
	store := newFakeIdentityStore()
	ids := newIdentityService(store, newFakeTokenStore())
	svc := NewTokenService(ids, "secret", time.Hour)

	identity, err := ids.CreateIdentity(context.Background(), "carol@b.com", "s3cret-pass1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := ids.SetClaims(context.Background(), identity.ID, domain.Claims{Admin: true}); err != nil {
		t.Fatalf("set claims failed: %v", err)
	}

	token, got, err := svc.Login(context.Background(), "carol@b.com", "s3cret-pass1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if got == nil || got.ID != identity.ID {
		t.Fatalf("unexpected identity: %+v", got)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != identity.ID {
		t.Fatalf("expected sub %s, got %v", identity.ID, claims["sub"])
	}
	if claims["admin"] != true || claims["editor"] != false || claims["owner"] != false {
		t.Fatalf("unexpected claim booleans: %+v", claims)
	}
}

func TestTokenService_Login_InvalidCredential(t *testing.T) {
	ids := newIdentityService(newFakeIdentityStore(), newFakeTokenStore())
	svc := NewTokenService(ids, "secret", time.Hour)

	if _, err := ids.CreateIdentity(context.Background(), "dave@b.com", "goodpass1234"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "dave@b.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty input, got %v", err)
	}
}
