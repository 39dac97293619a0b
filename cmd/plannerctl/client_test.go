package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAnalytics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/users/u1/analytics/daily", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"days":[]}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	require.NoError(t, runAnalytics(srv.URL, "u1", "daily", &out))
	assert.Contains(t, out.String(), "days")

	assert.Error(t, runAnalytics(srv.URL, "u1", "nonsense", &out))
}

func TestRunSetPrefs(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/users/u1/notification-prefs", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"userId":"u1","enabled":true,"leadMinutes":10}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	require.NoError(t, runSetPrefs(srv.URL, "u1", true, 10, &out))
	assert.Equal(t, float64(10), got["leadMinutes"])
}

func TestRunHealthSurfacesErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	var out bytes.Buffer
	assert.Error(t, runHealth(srv.URL, &out))
}
