package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// testDB builds a database handle without dialing; the malformed-id paths
// short-circuit before any query is issued.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client.Database("billoza_test")
}

func TestOrderRepository_MalformedID(t *testing.T) {
	repo := NewOrderRepository(testDB(t))

	_, err := repo.FindByID(context.Background(), "BZU111111", "not-a-hex-id")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Update(context.Background(), "BZU111111", "not-a-hex-id",
		map[string]interface{}{"notes": "late"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Delete(context.Background(), "BZU111111", "not-a-hex-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
