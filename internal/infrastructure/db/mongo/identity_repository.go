package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/factoryops/user-admin-api/internal/core/domain"
)

const collectionIdentities = "identities"

// IdentityRepository persists identities in the identities collection.
// Claim writes replace the whole claims subdocument, so a claim absent from
// the new set does not survive the write.
type IdentityRepository struct {
	col *mongo.Collection
}

func NewIdentityRepository(db *mongo.Database) *IdentityRepository {
	return &IdentityRepository{col: db.Collection(collectionIdentities)}
}

type mongoIdentity struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Email          string             `bson:"email"`
	CredentialHash string             `bson:"credential_hash"`
	Claims         domain.Claims      `bson:"claims"`
	CreatedAt      int64              `bson:"created_at"`
	UpdatedAt      int64              `bson:"updated_at"`
}

func (r *IdentityRepository) Insert(ctx context.Context, identity *domain.Identity) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoIdentity{
		ID:             primitive.NewObjectID(),
		Email:          identity.Email,
		CredentialHash: identity.CredentialHash,
		Claims:         identity.Claims,
		CreatedAt:      identity.CreatedAt.Unix(),
		UpdatedAt:      identity.UpdatedAt.Unix(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrIdentityExists
		}
		return nil, fmt.Errorf("insert identity: %w", err)
	}

	created := *identity
	created.ID = doc.ID.Hex()
	return &created, nil
}

func (r *IdentityRepository) SetClaims(ctx context.Context, uid string, claims domain.Claims) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(uid)
	if err != nil {
		return domain.ErrIdentityNotFound
	}

	update := bson.M{"$set": bson.M{
		"claims":     claims,
		"updated_at": time.Now().UTC().Unix(),
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("set claims: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrIdentityNotFound
	}
	return nil
}

func (r *IdentityRepository) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mi mongoIdentity
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&mi); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("find identity: %w", err)
	}

	return &domain.Identity{
		ID:             mi.ID.Hex(),
		Email:          mi.Email,
		CredentialHash: mi.CredentialHash,
		Claims:         mi.Claims,
		CreatedAt:      unixToTime(mi.CreatedAt),
		UpdatedAt:      unixToTime(mi.UpdatedAt),
	}, nil
}

func (r *IdentityRepository) UpdateCredentialHash(ctx context.Context, uid, hash string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(uid)
	if err != nil {
		return domain.ErrIdentityNotFound
	}

	update := bson.M{"$set": bson.M{
		"credential_hash": hash,
		"updated_at":      time.Now().UTC().Unix(),
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update credential: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrIdentityNotFound
	}
	return nil
}

// EnsureIndexes creates the unique email index on the identities collection.
func (r *IdentityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	_, err := r.col.Indexes().CreateOne(ctx, index)
	return err
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
