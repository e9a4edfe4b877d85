package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/factoryops/user-admin-api/internal/core/domain"
	"github.com/factoryops/user-admin-api/internal/core/ports"
)

// TokenService issues HS256 tokens embedding the identity's boolean claims.
// Downstream permission gates read the claims from the token, not from the
// profile store.
type TokenService struct {
	identities ports.IdentityService
	jwtSecret  string
	tokenTTL   time.Duration
}

func NewTokenService(identities ports.IdentityService, jwtSecret string, tokenTTL time.Duration) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &TokenService{identities: identities, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *TokenService) Login(ctx context.Context, email, credential string) (string, *domain.Identity, error) {
	if email == "" || credential == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	identity, err := s.identities.VerifyCredential(ctx, email, credential)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(identity)
	if err != nil {
		return "", nil, err
	}
	return token, identity, nil
}

func (s *TokenService) generateToken(identity *domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":    identity.ID,
		"email":  identity.Email,
		"admin":  identity.Claims.Admin,
		"editor": identity.Claims.Editor,
		"owner":  identity.Claims.Owner,
		"exp":    time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
