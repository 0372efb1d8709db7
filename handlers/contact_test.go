package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitMessage(t *testing.T, r *gin.Engine, name string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/contact", map[string]string{
		"name":    name,
		"email":   "visitor@example.com",
		"message": "Interested in working together.",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Your message has been sent successfully!", decodeMap(t, w)["message"])
}

func TestContactSubmitAndList(t *testing.T) {
	r, cfg := newTestRouter(t)
	token := adminToken(t, cfg)

	submitMessage(t, r, "Alice")
	submitMessage(t, r, "Bob")

	// listing requires the admin token
	w := doJSON(t, r, http.MethodGet, "/api/contact", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/contact", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 2)
	// newest first
	assert.Equal(t, "Bob", list[0]["name"])
	assert.Equal(t, "Alice", list[1]["name"])
	// messages start unread
	assert.Equal(t, false, list[0]["read"])
	assert.Equal(t, false, list[1]["read"])
}

func TestContactValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Alice",
		"email":   "not-an-email",
		"message": "hello",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactMarkReadAndDelete(t *testing.T) {
	r, cfg := newTestRouter(t)
	token := adminToken(t, cfg)

	submitMessage(t, r, "Alice")

	w := doJSON(t, r, http.MethodGet, "/api/contact", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	id := list[0]["id"].(string)

	w = doJSON(t, r, http.MethodPut, "/api/contact/"+id+"/read", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Message marked as read", decodeMap(t, w)["message"])

	w = doJSON(t, r, http.MethodGet, "/api/contact", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeList(t, w)[0]["read"])

	w = doJSON(t, r, http.MethodDelete, "/api/contact/"+id, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Contact message deleted successfully", decodeMap(t, w)["message"])

	w = doJSON(t, r, http.MethodGet, "/api/contact", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))
}

func TestContactMarkReadNotFound(t *testing.T) {
	r, cfg := newTestRouter(t)
	token := adminToken(t, cfg)

	w := doJSON(t, r, http.MethodPut, "/api/contact/000000000000000000000000/read", nil, token)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Message not found", decodeMap(t, w)["error"])

	w = doJSON(t, r, http.MethodPut, "/api/contact/garbage/read", nil, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid message ID", decodeMap(t, w)["error"])
}
