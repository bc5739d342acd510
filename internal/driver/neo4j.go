package driver

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/moviegraph/moviegraph/internal/apperr"
)

// Neo4jDriver holds the single long-lived connection handle to the Movies
// database. It is acquired once at startup and reused for every query.
type Neo4jDriver struct {
	Driver   neo4j.DriverWithContext
	Database string
}

// NewNeo4jDriver connects to the store and verifies connectivity before
// returning. A failure here is fatal to the session.
func NewNeo4jDriver(ctx context.Context, uri, username, password, database string) (*Neo4jDriver, error) {
	drv, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeConnection, err, "could not create driver for %s", uri)
	}

	if err := drv.VerifyConnectivity(ctx); err != nil {
		return nil, apperr.Wrap(apperr.CodeConnection, err, "could not reach %s", uri)
	}

	return &Neo4jDriver{Driver: drv, Database: database}, nil
}

func (d *Neo4jDriver) Close(ctx context.Context) error {
	return d.Driver.Close(ctx)
}

// ExecuteQuery runs one parameterized Cypher query and buffers the full
// result. Session and transaction handling is left to the driver.
func (d *Neo4jDriver) ExecuteQuery(ctx context.Context, query string, params map[string]any) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, d.Driver, query, params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(d.Database),
	)
	if err != nil {
		return neo4j.EagerResult{}, apperr.Wrap(apperr.CodeConnection, err, "query execution failed")
	}
	return *result, nil
}

// Ping runs a trivial query to confirm the store answers.
func (d *Neo4jDriver) Ping(ctx context.Context) error {
	_, err := d.ExecuteQuery(ctx, PingQuery, nil)
	return err
}
