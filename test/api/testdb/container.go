//go:build api

package testdb

import (
	"context"
	"time"

	"github.com/testcontainers/testcontainers-go"
)

const startupTimeout = 2 * time.Minute

// startGeneric runs req and returns the started container together with
// the host:port its service is reachable on. The container is terminated
// if the address cannot be resolved.
func startGeneric(ctx context.Context, req testcontainers.ContainerRequest, endpoint func(context.Context, testcontainers.Container) (string, error)) (testcontainers.Container, string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", err
	}

	addr, err := endpoint(ctx, container)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, "", err
	}
	return container, addr, nil
}
