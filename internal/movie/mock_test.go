package movie

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type MockDriver struct {
	QueryExecuted string
	QueryParams   map[string]any
	MockResult    neo4j.EagerResult
	Err           error
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]any) (neo4j.EagerResult, error) {
	m.QueryExecuted = query
	m.QueryParams = params
	if m.Err != nil {
		return neo4j.EagerResult{}, m.Err
	}
	return m.MockResult, nil
}

func (m *MockDriver) Ping(ctx context.Context) error {
	return m.Err
}

func (m *MockDriver) Close(ctx context.Context) error {
	return nil
}

func record(keys []string, values []any) *neo4j.Record {
	return &neo4j.Record{Keys: keys, Values: values}
}

func movieRecord(title string, released any, tagline any) *neo4j.Record {
	return record(
		[]string{"title", "released", "tagline"},
		[]any{title, released, tagline},
	)
}

func detailRecord(title string, released any, tagline any, credits []any) *neo4j.Record {
	return record(
		[]string{"title", "released", "tagline", "credits"},
		[]any{title, released, tagline, credits},
	)
}
