package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelease/travelease-backend/internal/models"
)

func TestGetTransportsEmptyCatalog(t *testing.T) {
	r := newTestRouter(t)

	// No collection file exists yet; the catalog must still answer with
	// an empty array, not an error.
	w := doRequest(t, r, http.MethodGet, "/api/transport", "", nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetTransportsAnonymous(t *testing.T) {
	r := newTestRouter(t)
	admin := registerUser(t, r, "admin", "admin@example.com", "admin")
	created := createTransport(t, r, admin, 50)

	w := doRequest(t, r, http.MethodGet, "/api/transport", "", nil)
	require.Equal(t, 200, w.Code)

	var transports []models.Transport
	decodeBody(t, w, &transports)
	require.Len(t, transports, 1)
	assert.Equal(t, created.ID, transports[0].ID)
	assert.Equal(t, 50, transports[0].AvailableSeats)
}

func TestAddTransportRequiresAdmin(t *testing.T) {
	r := newTestRouter(t)
	user := registerUser(t, r, "bob", "bob@example.com", "")

	w := doRequest(t, r, http.MethodPost, "/api/admin/transport", user, gin.H{
		"type": "bus", "name": "x", "from": "a", "to": "b",
		"departureTime": "t", "arrivalTime": "t", "price": 1, "seats": 10,
	})
	assert.Equal(t, 403, w.Code)

	// And no token at all is unauthorized, not forbidden.
	w = doRequest(t, r, http.MethodPost, "/api/admin/transport", "", nil)
	assert.Equal(t, 401, w.Code)
}

func TestAddTransportSetsAvailableSeats(t *testing.T) {
	r := newTestRouter(t)
	admin := registerUser(t, r, "admin", "admin@example.com", "admin")

	created := createTransport(t, r, admin, 80)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 80, created.Seats)
	assert.Equal(t, 80, created.AvailableSeats)
}

func TestUpdateTransportPartialMerge(t *testing.T) {
	r := newTestRouter(t)
	admin := registerUser(t, r, "admin", "admin@example.com", "admin")
	created := createTransport(t, r, admin, 50)

	w := doRequest(t, r, http.MethodPut, "/api/admin/transport/"+created.ID, admin, gin.H{
		"price": 99.0,
	})
	require.Equal(t, 200, w.Code)

	var updated models.Transport
	decodeBody(t, w, &updated)
	assert.Equal(t, 99.0, updated.Price)
	// Untouched fields survive the merge.
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Seats, updated.Seats)
	assert.Equal(t, created.AvailableSeats, updated.AvailableSeats)
}

func TestUpdateTransportOverwritesAvailableSeats(t *testing.T) {
	r := newTestRouter(t)
	admin := registerUser(t, r, "admin", "admin@example.com", "admin")
	created := createTransport(t, r, admin, 50)

	// Manual inventory correction: availableSeats is directly settable.
	w := doRequest(t, r, http.MethodPut, "/api/admin/transport/"+created.ID, admin, gin.H{
		"availableSeats": 3,
	})
	require.Equal(t, 200, w.Code)

	var updated models.Transport
	decodeBody(t, w, &updated)
	assert.Equal(t, 3, updated.AvailableSeats)
	assert.Equal(t, 50, updated.Seats)
}

func TestUpdateTransportNotFound(t *testing.T) {
	r := newTestRouter(t)
	admin := registerUser(t, r, "admin", "admin@example.com", "admin")

	w := doRequest(t, r, http.MethodPut, "/api/admin/transport/nope", admin, gin.H{"price": 1.0})
	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "Transport not found")
}

func TestDeleteTransport(t *testing.T) {
	r := newTestRouter(t)
	admin := registerUser(t, r, "admin", "admin@example.com", "admin")
	created := createTransport(t, r, admin, 50)

	w := doRequest(t, r, http.MethodDelete, "/api/admin/transport/"+created.ID, admin, nil)
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "deleted successfully")

	w = doRequest(t, r, http.MethodGet, "/api/transport", "", nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestDeleteTransportNotFound(t *testing.T) {
	r := newTestRouter(t)
	admin := registerUser(t, r, "admin", "admin@example.com", "admin")

	w := doRequest(t, r, http.MethodDelete, "/api/admin/transport/nope", admin, nil)
	assert.Equal(t, 404, w.Code)
}
