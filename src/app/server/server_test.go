package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bandquiz/src/app/middleware"
	"bandquiz/src/core/domain"
	"bandquiz/src/core/ports"
	"bandquiz/src/infra/config"
	"bandquiz/src/infra/logger"
)

type stubStore struct {
	ports.Store
	bands          []domain.Band
	questions      []domain.Question
	questionFetchs atomic.Int32
	answerCreates  atomic.Int32
	healthErr      error
}

func (s *stubStore) CreateAnswer(_ context.Context, in domain.CreateAnswer) (*domain.Answer, error) {
	s.answerCreates.Add(1)
	now := time.Now()
	return &domain.Answer{ID: uuid.New(), Content: in.Content, CreatedAt: now, UpdatedAt: now}, nil
}

func (s *stubStore) Health(context.Context) error { return s.healthErr }

func (s *stubStore) ListBands(context.Context) ([]domain.Band, error) { return s.bands, nil }

func (s *stubStore) ListQuestionsByBandIDs(_ context.Context, ids []uuid.UUID) ([]domain.Question, error) {
	s.questionFetchs.Add(1)
	var out []domain.Question
	for _, q := range s.questions {
		for _, id := range ids {
			if q.BandID == id {
				out = append(out, q)
			}
		}
	}
	return out, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0, ShutdownTimeout: time.Second},
		Log:    config.LogConfig{Level: "error", Format: "json"},
		Loader: config.LoaderConfig{MaxBatch: 100, YieldCount: 100, Wait: 20 * time.Millisecond},
		Auth:   config.AuthConfig{BcryptCost: 4},
	}
}

func newTestServer(t *testing.T, store *stubStore) *Server {
	t.Helper()
	srv, err := New(testConfig(), logger.Discard(), store)
	require.NoError(t, err)
	return srv
}

func seededStore() *stubStore {
	a := domain.Band{ID: uuid.New(), Name: "Queen"}
	b := domain.Band{ID: uuid.New(), Name: "Wings"}
	return &stubStore{
		bands: []domain.Band{a, b},
		questions: []domain.Question{
			{ID: uuid.New(), Content: "Founded?", BandID: a.ID},
			{ID: uuid.New(), Content: "Formed?", BandID: b.ID},
		},
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &stubStore{})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestDetailedHealthDegraded(t *testing.T) {
	srv := newTestServer(t, &stubStore{healthErr: errors.New("no route to host")})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/detailed", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body struct {
		Status     string
		Components map[string]struct{ Status string }
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "unhealthy", body.Components["database"].Status)
}

func TestGraphQLPostBatchesPerRequest(t *testing.T) {
	store := seededStore()
	srv := newTestServer(t, store)

	for i := 0; i < 2; i++ {
		body := strings.NewReader(`{"query":"{ bands { name questions { content } } }"}`)
		req := httptest.NewRequest(http.MethodPost, "/graphql", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		assert.JSONEq(t, `{"data":{"bands":[
			{"name":"Queen","questions":[{"content":"Founded?"}]},
			{"name":"Wings","questions":[{"content":"Formed?"}]}
		]}}`, w.Body.String())
	}

	// One fetch per request: the cache never outlives a request.
	assert.Equal(t, int32(2), store.questionFetchs.Load())
}

func TestGraphQLGetWithVariables(t *testing.T) {
	srv := newTestServer(t, &stubStore{})

	q := url.Values{}
	q.Set("query", `query Version { apiVersion }`)
	q.Set("operationName", "Version")
	q.Set("variables", `{}`)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/graphql?"+q.Encode(), nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"apiVersion":"1.0"}}`, w.Body.String())
}

func TestGraphQLGetRejectsMutations(t *testing.T) {
	const mutation = `mutation Add { createAnswer(input: {content: "Freddie"}) { content } }`

	tests := []struct {
		name          string
		query         string
		operationName string
	}{
		{"anonymous mutation", `mutation { createAnswer(input: {content: "Freddie"}) { content } }`, ""},
		{"named mutation", mutation, ""},
		{"mutation selected by name", `query Version { apiVersion } ` + mutation, "Add"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubStore{}
			srv := newTestServer(t, store)

			q := url.Values{}
			q.Set("query", tt.query)
			if tt.operationName != "" {
				q.Set("operationName", tt.operationName)
			}
			w := httptest.NewRecorder()
			srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/graphql?"+q.Encode(), nil))

			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
			assert.Contains(t, w.Body.String(), "METHOD_NOT_ALLOWED")
			assert.Zero(t, store.answerCreates.Load())
		})
	}
}

func TestGraphQLGetRunsQuerySelectedBesideMutation(t *testing.T) {
	store := &stubStore{}
	srv := newTestServer(t, store)

	q := url.Values{}
	q.Set("query", `query Version { apiVersion } mutation Add { createAnswer(input: {content: "Freddie"}) { content } }`)
	q.Set("operationName", "Version")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/graphql?"+q.Encode(), nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"apiVersion":"1.0"}}`, w.Body.String())
	assert.Zero(t, store.answerCreates.Load())
}

func TestGraphQLPostRunsMutations(t *testing.T) {
	store := &stubStore{}
	srv := newTestServer(t, store)

	body := strings.NewReader(`{"query":"mutation { createAnswer(input: {content: \"Freddie\"}) { content } }"}`)
	req := httptest.NewRequest(http.MethodPost, "/graphql", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"createAnswer":{"content":"Freddie"}}}`, w.Body.String())
	assert.Equal(t, int32(1), store.answerCreates.Load())
}

func TestGraphQLBadRequests(t *testing.T) {
	srv := newTestServer(t, &stubStore{})

	tests := []struct {
		name string
		req  *http.Request
	}{
		{"post without query", httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{}`))},
		{"post invalid json", httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{`))},
		{"get without query", httptest.NewRequest(http.MethodGet, "/graphql", nil)},
		{"get bad variables", httptest.NewRequest(http.MethodGet, "/graphql?query=%7BapiVersion%7D&variables=%5B", nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Router().ServeHTTP(w, tt.req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "BAD_REQUEST")
		})
	}
}

func TestNoRoute(t *testing.T) {
	srv := newTestServer(t, &stubStore{})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/rounds", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}
