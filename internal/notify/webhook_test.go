package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookSink_Display(t *testing.T) {
	var got pushPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/notifications", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sink := NewWebhookSink(srv.URL)
	require.True(t, sink.PermissionGranted())
	require.NoError(t, sink.Display("Deep Work", "Starts at 9:00 AM", "block-b1"))

	assert.Equal(t, "Deep Work", got.Title)
	assert.Equal(t, "block-b1", got.Tag)
}

func TestWebhookSink_ErrorStatusSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	sink := NewWebhookSink(srv.URL)
	assert.Error(t, sink.Display("t", "b", "block-x"))
}

func TestWebhookSink_NoURLMeansNoPermission(t *testing.T) {
	sink := NewWebhookSink("")
	assert.False(t, sink.PermissionGranted())
}
