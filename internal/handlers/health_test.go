package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/creatorlabs/creator-platform/internal/handlers"
	"github.com/creatorlabs/creator-platform/internal/server"
	"github.com/creatorlabs/creator-platform/internal/store"
)

// brokenStore is reachable but fails to enumerate collections.
type brokenStore struct{}

func (brokenStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	return "", errors.New("unreachable")
}

func (brokenStore) Find(ctx context.Context, collection string, f store.Filter, limit int64) ([]store.Document, error) {
	return nil, errors.New("unreachable")
}

func (brokenStore) Collections(ctx context.Context) ([]string, error) {
	return nil, errors.New(strings.Repeat("boom ", 40))
}

type diagnostic struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func TestDiagnosticConnected(t *testing.T) {
	app, st := newTestApp(t)
	_, err := st.Insert(req(), "user", map[string]string{"username": "a"})
	require.NoError(t, err)

	resp, raw := doJSON(t, app, http.MethodGet, "/test", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var d diagnostic
	require.NoError(t, json.Unmarshal(raw, &d))
	assert.Equal(t, "running", d.Backend)
	assert.Equal(t, "connected and working", d.Database)
	assert.Equal(t, "testdb", d.DatabaseName)
	assert.Equal(t, "connected", d.ConnectionStatus)
	assert.Equal(t, []string{"user"}, d.Collections)
}

func TestDiagnosticNoStore(t *testing.T) {
	h := handlers.New(nil, nil, nil, "", zap.NewNop().Sugar())
	app := server.New(h)

	resp, raw := doJSON(t, app, http.MethodGet, "/test", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var d diagnostic
	require.NoError(t, json.Unmarshal(raw, &d))
	assert.Equal(t, "not available", d.Database)
	assert.Equal(t, "not connected", d.ConnectionStatus)
	assert.Empty(t, d.Collections)
}

func TestDiagnosticStoreErrorNever5xx(t *testing.T) {
	h := handlers.New(brokenStore{}, nil, nil, "testdb", zap.NewNop().Sugar())
	app := server.New(h)

	resp, raw := doJSON(t, app, http.MethodGet, "/test", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var d diagnostic
	require.NoError(t, json.Unmarshal(raw, &d))
	assert.True(t, strings.HasPrefix(d.Database, "connected but error:"))
	// error detail is truncated
	assert.LessOrEqual(t, len(d.Database), len("connected but error: ")+80)
}

func TestBrokenStoreSurfacesStorageError(t *testing.T) {
	h := handlers.New(brokenStore{}, nil, nil, "testdb", zap.NewNop().Sugar())
	app := server.New(h)

	resp, raw := doJSON(t, app, http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"storage error"}`, string(raw))
}
