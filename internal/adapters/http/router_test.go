package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/Meet/internal/app"
	"github.com/dkeye/Meet/internal/config"
	"github.com/dkeye/Meet/internal/core"
	"github.com/dkeye/Meet/internal/domain"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Mode:        "release",
		Port:        8080,
		StaticPath:  "./web",
		SendBuffer:  8,
		Secret:      "test-secret",
		StunServers: []string{"stun:stun.l.google.com:19302"},
	}
	meetings := app.NewCore(core.NewMemoryStore())
	return SetupRouter(context.Background(), cfg, meetings)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestCreateAndCheckMeeting(t *testing.T) {
	r := setupTestRouter()

	code, body := doJSON(t, r, http.MethodPost, "/api/meetings")
	require.Equal(t, http.StatusOK, code)
	id, ok := body["meeting_id"].(string)
	require.True(t, ok)
	assert.Len(t, id, domain.MeetingIDLength)
	assert.Contains(t, body["message"], id)

	code, body = doJSON(t, r, http.MethodGet, "/api/meetings/"+id)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["exist"])

	code, body = doJSON(t, r, http.MethodGet, "/api/meetings/missing1")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["exist"])
}

func TestListMeetings(t *testing.T) {
	r := setupTestRouter()

	_, _ = doJSON(t, r, http.MethodPost, "/api/meetings")
	_, _ = doJSON(t, r, http.MethodPost, "/api/meetings")

	code, body := doJSON(t, r, http.MethodGet, "/api/meetings")
	require.Equal(t, http.StatusOK, code)
	meetings, ok := body["meetings"].([]any)
	require.True(t, ok)
	require.Len(t, meetings, 2)
	for _, m := range meetings {
		// Nobody joined over the event channel, so no creator is known.
		assert.Equal(t, "unknown", m.(map[string]any)["creator"])
	}
}

func TestWebRTCConfig(t *testing.T) {
	r := setupTestRouter()

	code, body := doJSON(t, r, http.MethodGet, "/api/webrtc/config")
	require.Equal(t, http.StatusOK, code)

	servers, ok := body["iceServers"].([]any)
	require.True(t, ok)
	require.Len(t, servers, 1)
	urls := servers[0].(map[string]any)["urls"].([]any)
	assert.Equal(t, "stun:stun.l.google.com:19302", urls[0])
}

func TestClientTokenCookieIssued(t *testing.T) {
	r := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/meetings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	found := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "ct" && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "client token cookie should be set")
}
