package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The driver connects lazily, so id-format checks can be exercised without
// a running MongoDB.
func newOfflineStore(t *testing.T) *Store {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return New(client.Database("shopstack_test"))
}

func TestMalformedIDs(t *testing.T) {
	s := newOfflineStore(t)
	ctx := context.Background()

	var out bson.M
	require.ErrorIs(t, s.FindByID(ctx, Products, "not-a-hex-id", &out), ErrInvalidID)
	require.ErrorIs(t, s.UpdateByID(ctx, Products, "not-a-hex-id", bson.M{"pricing": 1.0}), ErrInvalidID)
	require.ErrorIs(t, s.DeleteByID(ctx, Products, "not-a-hex-id"), ErrInvalidID)
}

func TestIsDuplicate(t *testing.T) {
	require.False(t, IsDuplicate(nil))
	require.False(t, IsDuplicate(errors.New("some other failure")))
	require.True(t, IsDuplicate(mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000}},
	}))
}
