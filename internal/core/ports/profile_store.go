package ports

import (
	"context"

	"github.com/factoryops/user-admin-api/internal/core/domain"
)

// ProfileStore is the document collaborator holding one record per identity.
// Create writes the full record (replaying overwrites, Firestore set
// semantics); SetRole merge-updates only the role and the store-assigned
// updated_at timestamp.
type ProfileStore interface {
	Create(ctx context.Context, rec domain.ProfileRecord) error
	SetRole(ctx context.Context, uid, role string) error
}
