package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviegraph/moviegraph/internal/apperr"
	"github.com/moviegraph/moviegraph/internal/movie"
)

type mockDriver struct {
	result neo4j.EagerResult
	err    error
}

func (m *mockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]any) (neo4j.EagerResult, error) {
	if m.err != nil {
		return neo4j.EagerResult{}, m.err
	}
	return m.result, nil
}

func (m *mockDriver) Ping(ctx context.Context) error { return m.err }

func (m *mockDriver) Close(ctx context.Context) error { return nil }

func newTestRouter(d *mockDriver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(movie.NewService(d, logger), logger).SetupRouter()
}

func detailResult() neo4j.EagerResult {
	return neo4j.EagerResult{
		Records: []*neo4j.Record{{
			Keys: []string{"title", "released", "tagline", "credits"},
			Values: []any{
				"The Matrix", int64(1999), "Welcome to the Real World",
				[]any{map[string]any{"name": "Keanu Reeves", "type": "ACTED_IN", "roles": []any{"Neo"}}},
			},
		}},
	}
}

func TestSearch_MissingQueryParam(t *testing.T) {
	r := newTestRouter(&mockDriver{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearch_ReturnsMovies(t *testing.T) {
	d := &mockDriver{result: neo4j.EagerResult{
		Records: []*neo4j.Record{{
			Keys:   []string{"title", "released", "tagline"},
			Values: []any{"The Matrix", int64(1999), "Welcome to the Real World"},
		}},
	}}
	r := newTestRouter(d)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?q=matrix", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Movies []movie.MovieRef `json:"movies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Movies, 1)
	assert.Equal(t, "The Matrix", body.Movies[0].Title)
}

func TestDetail_UnknownTitleIs404(t *testing.T) {
	r := newTestRouter(&mockDriver{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/movies/Nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGraph_ServesDocument(t *testing.T) {
	r := newTestRouter(&mockDriver{result: detailResult()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/movies/The%20Matrix/graph", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Nodes []map[string]any `json:"nodes"`
		Links []map[string]any `json:"links"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	require.Len(t, doc.Nodes, 2)
	require.Len(t, doc.Links, 1)
	assert.Equal(t, "movie_The_Matrix", doc.Nodes[0]["id"])
	assert.Equal(t, "person_Keanu_Reeves", doc.Links[0]["source"])
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&mockDriver{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	r = newTestRouter(&mockDriver{err: apperr.New(apperr.CodeConnection, "store unreachable")})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	r := newTestRouter(&mockDriver{result: detailResult()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/movies/The%20Matrix", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/movies/The%20Matrix", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}
