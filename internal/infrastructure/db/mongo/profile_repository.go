package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/factoryops/user-admin-api/internal/core/domain"
)

const collectionProfiles = "user_profiles"

// ProfileRepository mirrors one document per identity into the user_profiles
// collection, keyed by identity id. Timestamps are assigned server-side via
// $currentDate so clock skew between API instances never shows in the data.
type ProfileRepository struct {
	col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{col: db.Collection(collectionProfiles)}
}

// Create writes the full profile document. An upsert keyed by id gives the
// same replay semantics as a document-store set: re-creating overwrites.
func (r *ProfileRepository) Create(ctx context.Context, rec domain.ProfileRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"email": rec.Email,
			"role":  rec.Role,
			"owner": rec.Owner,
		},
		"$currentDate": bson.M{"created_at": true},
	}
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": rec.UID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

// SetRole merge-updates the role and the updated_at timestamp, leaving every
// other field untouched. Updating a missing profile is an error, matching
// update-not-create semantics.
func (r *ProfileRepository) SetRole(ctx context.Context, uid, role string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$set":         bson.M{"role": role},
		"$currentDate": bson.M{"updated_at": true},
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": uid}, update)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
