package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/travelease/travelease-backend/internal/models"
	"github.com/travelease/travelease-backend/internal/store"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend, err := store.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	return NewRouter(store.New(backend), testSecret)
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// registerUser registers an account and returns its token.
func registerUser(t *testing.T, r *gin.Engine, username, email, role string) string {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": "secret123",
		"role":     role,
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// createTransport creates a catalog record as admin and returns it.
func createTransport(t *testing.T, r *gin.Engine, adminToken string, seats int) models.Transport {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/admin/transport", adminToken, gin.H{
		"type":          models.TransportTypeTrain,
		"name":          "Morning Express",
		"from":          "Springfield",
		"to":            "Shelbyville",
		"departureTime": "2026-10-01T08:00:00",
		"arrivalTime":   "2026-10-01T11:30:00",
		"price":         42.5,
		"seats":         seats,
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var transport models.Transport
	decodeBody(t, w, &transport)
	return transport
}
