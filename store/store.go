// Package store is the persistence boundary: collection-scoped CRUD over
// MongoDB plus reference expansion for carts and orders.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	Products = "products"
	Users    = "users"
	Comments = "comments"
	Carts    = "carts"
	Orders   = "orders"
)

var (
	// ErrNotFound means no document matched the given id.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID means the id is not a valid ObjectID hex string.
	ErrInvalidID = errors.New("invalid id")
)

// Store wraps a mongo database with the operations the controllers need.
type Store struct {
	db *mongo.Database
}

// New returns a Store backed by db.
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Collection exposes the underlying collection, for counts and aggregations.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Ping checks connectivity to the database.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

// EnsureIndexes creates the unique index on users.email.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(Users).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Insert stores doc and returns the assigned id.
func (s *Store) Insert(ctx context.Context, coll string, doc any) (primitive.ObjectID, error) {
	result, err := s.db.Collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// FindAll decodes every document of the collection into out, which must be
// a pointer to a slice.
func (s *Store) FindAll(ctx context.Context, coll string, out any) error {
	cursor, err := s.db.Collection(coll).Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

// FindByID decodes the document with the given hex id into out.
func (s *Store) FindByID(ctx context.Context, coll string, id string, out any) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	err = s.db.Collection(coll).FindOne(ctx, bson.M{"_id": objID}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

// UpdateByID merges fields into the document with the given hex id.
func (s *Store) UpdateByID(ctx context.Context, coll string, id string, fields bson.M) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	result, err := s.db.Collection(coll).UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes the document with the given hex id.
func (s *Store) DeleteByID(ctx context.Context, coll string, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	result, err := s.db.Collection(coll).DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists reports whether a document with the given id is present.
func (s *Store) Exists(ctx context.Context, coll string, id primitive.ObjectID) (bool, error) {
	count, err := s.db.Collection(coll).CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the number of documents in the collection.
func (s *Store) Count(ctx context.Context, coll string) (int64, error) {
	return s.db.Collection(coll).CountDocuments(ctx, bson.M{})
}

// IsDuplicate reports whether err is a unique-index violation.
func IsDuplicate(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
