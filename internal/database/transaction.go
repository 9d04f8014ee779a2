package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// Transactor runs a group of writes as one unit.
// The context handed to fn must be used for every write in the group.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// NewTransactor returns a MongoDB multi-document transactor when enabled.
// Transactions need a replica set; standalone servers get the sequential runner.
func NewTransactor(client *mongo.Client, enabled bool) Transactor {
	if !enabled {
		return SequentialTransactor{}
	}
	return &mongoTransactor{client: client}
}

type mongoTransactor struct {
	client *mongo.Client
}

func (t *mongoTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// SequentialTransactor runs fn directly. Steps that already succeeded
// stay applied when a later step fails.
type SequentialTransactor struct{}

func (SequentialTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
