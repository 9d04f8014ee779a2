//go:build api

package testdb

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// RedisContainer backs the course and catalog caches.
type RedisContainer struct {
	Container testcontainers.Container
	// URI is host:port, the form cache.NewRedis expects.
	URI    string
	Client *redis.Client
}

// SetupRedis starts Redis and waits until it answers PING.
func SetupRedis(ctx context.Context) (*RedisContainer, error) {
	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	container, addr, err := startGeneric(ctx, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}, func(ctx context.Context, c testcontainers.Container) (string, error) {
		return c.PortEndpoint(ctx, "6379/tcp", "")
	})
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &RedisContainer{Container: container, URI: addr, Client: client}, nil
}

// Cleanup closes the client and terminates the container.
func (rc *RedisContainer) Cleanup(ctx context.Context) error {
	if rc.Client != nil {
		_ = rc.Client.Close()
	}
	if rc.Container == nil {
		return nil
	}
	return rc.Container.Terminate(ctx)
}

// FlushDB drops every cached key.
func (rc *RedisContainer) FlushDB(ctx context.Context) error {
	return rc.Client.FlushDB(ctx).Err()
}
