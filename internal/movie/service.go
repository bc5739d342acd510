package movie

import (
	"context"
	"log/slog"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/moviegraph/moviegraph/internal/apperr"
	"github.com/moviegraph/moviegraph/internal/driver"
)

// Service runs the read operations against the backing store and shapes the
// raw records into typed domain values at the query boundary.
type Service struct {
	driver driver.GraphDriver
	logger *slog.Logger
}

func NewService(d driver.GraphDriver, logger *slog.Logger) *Service {
	return &Service{driver: d, logger: logger}
}

// Ping reports whether the backing store still answers queries.
func (s *Service) Ping(ctx context.Context) error {
	return s.driver.Ping(ctx)
}

// Search returns movies whose title contains term, case-insensitively.
// An empty result is not an error. Whitespace-only terms are rejected.
func (s *Service) Search(ctx context.Context, term string) ([]MovieRef, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, apperr.New(apperr.CodeValidation, "search term must not be empty")
	}

	result, err := s.driver.ExecuteQuery(ctx, driver.SearchMoviesQuery, map[string]any{"term": term})
	if err != nil {
		return nil, err
	}

	movies := make([]MovieRef, 0, len(result.Records))
	for _, rec := range result.Records {
		ref, err := movieFromRecord(rec)
		if err != nil {
			return nil, err
		}
		movies = append(movies, ref)
	}

	s.logger.Debug("search complete", "term", term, "matches", len(movies))
	return movies, nil
}

// Detail fetches one movie by exact title together with its full credit
// list. A title absent from the store is a NOT_FOUND error.
func (s *Service) Detail(ctx context.Context, title string) (*DetailRecord, error) {
	result, err := s.driver.ExecuteQuery(ctx, driver.MovieDetailQuery, map[string]any{"title": title})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, apperr.New(apperr.CodeNotFound, "no movie titled %q", title)
	}

	rec := result.Records[0]
	ref, err := movieFromRecord(rec)
	if err != nil {
		return nil, err
	}

	credits, err := creditsFromRecord(rec)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("detail fetched", "title", ref.Title, "credits", len(credits))
	return &DetailRecord{Movie: ref, Credits: credits}, nil
}

func movieFromRecord(rec *neo4j.Record) (MovieRef, error) {
	title, err := requiredString(rec, "title")
	if err != nil {
		return MovieRef{}, err
	}
	return MovieRef{
		Title:    title,
		Released: optionalInt(rec, "released"),
		Tagline:  optionalString(rec, "tagline"),
	}, nil
}

func creditsFromRecord(rec *neo4j.Record) ([]Credit, error) {
	raw, ok := rec.Get("credits")
	if !ok {
		return nil, malformed("credits", nil)
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, malformed("credits", raw)
	}

	var credits []Credit
	for _, entry := range entries {
		if entry == nil {
			// A movie with no relationships collects a single NULL.
			continue
		}
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, malformed("credits", entry)
		}
		name, _ := m["name"].(string)
		relType, _ := m["type"].(string)
		if name == "" || relType == "" {
			return nil, malformed("credits", entry)
		}
		credits = append(credits, Credit{
			Person:       PersonRef{Name: name, Role: RoleLabel(relType)},
			Relationship: Relationship{Type: relType, Roles: stringSlice(m["roles"])},
		})
	}
	return credits, nil
}

func requiredString(rec *neo4j.Record, key string) (string, error) {
	v, ok := rec.Get(key)
	if !ok {
		return "", malformed(key, nil)
	}
	s, ok := v.(string)
	if !ok {
		return "", malformed(key, v)
	}
	return s, nil
}

func optionalString(rec *neo4j.Record, key string) string {
	v, _ := rec.Get(key)
	s, _ := v.(string)
	return s
}

func optionalInt(rec *neo4j.Record, key string) int {
	v, _ := rec.Get(key)
	n, _ := v.(int64)
	return int(n)
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func malformed(key string, value any) error {
	return apperr.New(apperr.CodeConnection, "store returned malformed value for %q: %v", key, value)
}
