package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/factoryops/user-admin-api/internal/core/domain"
	"github.com/factoryops/user-admin-api/internal/core/ports"
)

// IdentityService implements the identity collaborator over an identity store
// and a single-use reset-token store. Credentials are bcrypt-hashed before
// they reach the store; the plaintext is never logged.
type IdentityService struct {
	store   ports.IdentityStore
	tokens  ports.ResetTokenStore
	baseURL string
	logger  zerolog.Logger
}

func NewIdentityService(store ports.IdentityStore, tokens ports.ResetTokenStore, baseURL string, logger zerolog.Logger) *IdentityService {
	return &IdentityService{store: store, tokens: tokens, baseURL: baseURL, logger: logger}
}

// CreateIdentity registers a new identity bound to email and credential.
// Claims start all-false; they are set by a separate SetClaims call.
func (s *IdentityService) CreateIdentity(ctx context.Context, email, credential string) (*domain.Identity, error) {
	if email == "" || credential == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash credential: %w", err)
	}

	now := time.Now().UTC()
	identity := &domain.Identity{
		Email:          email,
		CredentialHash: string(hash),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.store.Insert(ctx, identity)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("uid", created.ID).Str("email", email).Msg("identity created")
	return created, nil
}

// SetClaims overwrites the identity's claim set. The write is a full
// replacement: claims absent from the new set are gone afterwards.
func (s *IdentityService) SetClaims(ctx context.Context, uid string, claims domain.Claims) error {
	return s.store.SetClaims(ctx, uid, claims)
}

// GenerateResetLink mints a single-use credential-reset link for email.
// Delivery of the link is the operator's responsibility.
func (s *IdentityService) GenerateResetLink(ctx context.Context, email string) (string, error) {
	if _, err := s.store.FindByEmail(ctx, email); err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(ctx, email)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("email", email).Msg("credential reset link issued")
	return fmt.Sprintf("%s/v1/password/reset?token=%s", s.baseURL, token), nil
}

// VerifyCredential checks email+credential and returns the identity on match.
func (s *IdentityService) VerifyCredential(ctx context.Context, email, credential string) (*domain.Identity, error) {
	identity, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.CredentialHash), []byte(credential)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return identity, nil
}

// ResetCredential redeems a one-time token and replaces the identity's
// credential. The token is consumed even if the subsequent write fails.
func (s *IdentityService) ResetCredential(ctx context.Context, token, credential string) error {
	if credential == "" {
		return domain.ErrInvalidCredentials
	}

	email, err := s.tokens.Redeem(ctx, token)
	if err != nil {
		return err
	}

	identity, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash credential: %w", err)
	}

	if err := s.store.UpdateCredentialHash(ctx, identity.ID, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Str("uid", identity.ID).Msg("credential reset completed")
	return nil
}
