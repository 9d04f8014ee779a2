package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestTopologyFromHello(t *testing.T) {
	tests := []struct {
		name         string
		hello        bson.M
		expected     Topology
		transactions bool
		description  string
	}{
		{"standalone", bson.M{"isWritablePrimary": true}, Topology{}, false, "standalone"},
		{"replica set member", bson.M{"setName": "rs0"}, Topology{ReplicaSet: "rs0"}, true, "replica set rs0"},
		{"mongos", bson.M{"msg": "isdbgrid"}, Topology{Sharded: true}, true, "sharded cluster"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topology := topologyFromHello(tt.hello)

			assert.Equal(t, tt.expected, topology)
			assert.Equal(t, tt.transactions, topology.SupportsTransactions())
			assert.Equal(t, tt.description, topology.String())
		})
	}
}

func TestMongoDB_TransactionsEnabled(t *testing.T) {
	ctx := context.Background()
	container, err := mongodb.Run(ctx, "mongo:7.0")
	require.NoError(t, err, "Failed to start MongoDB container")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	db := &MongoDB{Client: client, Database: client.Database("coursehub_topology")}

	t.Run("standalone server is detected", func(t *testing.T) {
		topology, err := db.Topology(ctx)

		require.NoError(t, err)
		assert.False(t, topology.SupportsTransactions())
	})

	t.Run("requested transactions fall back on standalone", func(t *testing.T) {
		assert.False(t, db.TransactionsEnabled(ctx, true))
	})

	t.Run("not requested stays off", func(t *testing.T) {
		assert.False(t, db.TransactionsEnabled(ctx, false))
	})
}
