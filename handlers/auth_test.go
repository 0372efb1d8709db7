package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{"password": "admin123"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeMap(t, w)
	assert.NotEmpty(t, body["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{"password": "hunter2"}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid password", decodeMap(t, w)["error"])
}

func TestLoginMissingPassword(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerify(t *testing.T) {
	r, cfg := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/verify", nil, adminToken(t, cfg))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeMap(t, w)["valid"])
}

func TestVerifyWithoutToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/verify", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginThenVerifyRoundTrip(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{"password": "admin123"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token, ok := decodeMap(t, w)["token"].(string)
	require.True(t, ok)

	w = doJSON(t, r, http.MethodGet, "/api/auth/verify", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}
