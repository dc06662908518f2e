package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (ts *testServer) postWebhook(t *testing.T, apiKey, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/polka/webhooks", strings.NewReader(body))
	if apiKey != "" {
		req.Header.Set("Authorization", "ApiKey "+apiKey)
	}
	w := httptest.NewRecorder()
	ts.mux.ServeHTTP(w, req)
	return w
}

func TestPolkaWebhookUpgradesUser(t *testing.T) {
	ts := newTestServer(t, "dev")
	created := ts.register(t, "gus@lospolloshermanos.com", "123456789")

	body := `{"event":"user.upgraded","data":{"user_id":"` + created.ID.String() + `"}}`
	w := ts.postWebhook(t, testPolkaKey, body)
	require.Equal(t, http.StatusNoContent, w.Code)

	rec, err := ts.users.GetByID(t.Context(), created.ID)
	require.NoError(t, err)
	assert.True(t, rec.IsChirpyRed)
}

func TestPolkaWebhookRejectsBadKey(t *testing.T) {
	ts := newTestServer(t, "dev")
	created := ts.register(t, "gus@lospolloshermanos.com", "123456789")

	body := `{"event":"user.upgraded","data":{"user_id":"` + created.ID.String() + `"}}`

	w := ts.postWebhook(t, "wrong-key", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.postWebhook(t, "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	rec, err := ts.users.GetByID(t.Context(), created.ID)
	require.NoError(t, err)
	assert.False(t, rec.IsChirpyRed)
}

func TestPolkaWebhookIgnoresOtherEvents(t *testing.T) {
	ts := newTestServer(t, "dev")
	created := ts.register(t, "gus@lospolloshermanos.com", "123456789")

	body := `{"event":"user.downgraded","data":{"user_id":"` + created.ID.String() + `"}}`
	w := ts.postWebhook(t, testPolkaKey, body)
	assert.Equal(t, http.StatusNoContent, w.Code)

	rec, err := ts.users.GetByID(t.Context(), created.ID)
	require.NoError(t, err)
	assert.False(t, rec.IsChirpyRed)
}

func TestPolkaWebhookUnknownUser(t *testing.T) {
	ts := newTestServer(t, "dev")

	body := `{"event":"user.upgraded","data":{"user_id":"` + uuid.NewString() + `"}}`
	w := ts.postWebhook(t, testPolkaKey, body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
