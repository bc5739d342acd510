package driver

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// GraphDriver abstracts query execution against the backing graph store so
// the domain layer can be exercised without a live database.
type GraphDriver interface {
	ExecuteQuery(ctx context.Context, query string, params map[string]any) (neo4j.EagerResult, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
