// Package database connects to MongoDB and groups writes into transactions.
package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	connectTimeout    = 10 * time.Second
	disconnectTimeout = 5 * time.Second
)

// MongoDB holds the client and the coursehub database.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB connects and pings, exiting the process when either fails.
func NewMongoDB(uri, dbName string) *MongoDB {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetAppName("coursehub"))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	log.Printf("Connected to MongoDB: %s", dbName)

	return &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
	}
}

// Topology describes the deployment behind the client.
type Topology struct {
	ReplicaSet string
	Sharded    bool
}

// SupportsTransactions reports whether multi-document transactions are
// available. Standalone servers reject them.
func (t Topology) SupportsTransactions() bool {
	return t.ReplicaSet != "" || t.Sharded
}

func (t Topology) String() string {
	switch {
	case t.Sharded:
		return "sharded cluster"
	case t.ReplicaSet != "":
		return "replica set " + t.ReplicaSet
	default:
		return "standalone"
	}
}

// Topology asks the server which kind of deployment it belongs to.
func (m *MongoDB) Topology(ctx context.Context) (Topology, error) {
	var hello bson.M
	if err := m.Client.Database("admin").RunCommand(ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&hello); err != nil {
		return Topology{}, fmt.Errorf("hello: %w", err)
	}
	return topologyFromHello(hello), nil
}

func topologyFromHello(hello bson.M) Topology {
	var t Topology
	if name, ok := hello["setName"].(string); ok {
		t.ReplicaSet = name
	}
	if msg, ok := hello["msg"].(string); ok && msg == "isdbgrid" {
		t.Sharded = true
	}
	return t
}

// TransactionsEnabled returns requested unless the deployment cannot run
// transactions, in which case writes fall back to the sequential runner.
func (m *MongoDB) TransactionsEnabled(ctx context.Context, requested bool) bool {
	if !requested {
		return false
	}
	topology, err := m.Topology(ctx)
	if err != nil {
		log.Printf("Warning: Failed to detect MongoDB topology, transactions disabled: %v", err)
		return false
	}
	if !topology.SupportsTransactions() {
		log.Printf("Warning: MONGO_TRANSACTIONS is set but MongoDB is %s, transactions disabled", topology)
		return false
	}
	log.Printf("MongoDB transactions enabled on %s", topology)
	return true
}

// Close disconnects from MongoDB.
func (m *MongoDB) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	if err := m.Client.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting from MongoDB: %v", err)
	}
	log.Println("Disconnected from MongoDB")
}
