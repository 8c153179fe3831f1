package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phatneglo/uac-server/internal/server/handlers"
	"github.com/phatneglo/uac-server/pkg/api"
)

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	h := handlers.NewHealthHandler(testLogger(), env.store)

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.Health(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, handlers.ServiceName, resp.Service)
}

func TestHealth_StoreDown(t *testing.T) {
	env := newTestEnv(t)
	h := handlers.NewHealthHandler(testLogger(), env.store)

	// Closing the store makes the ping fail
	require.NoError(t, env.store.Close())

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.Health(w, r)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRoot(t *testing.T) {
	env := newTestEnv(t)
	h := handlers.NewHealthHandler(testLogger(), env.store)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.Root(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome")
}
