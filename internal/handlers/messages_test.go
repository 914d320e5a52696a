package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMessages(t *testing.T, app *fiber.App) {
	t.Helper()
	msgs := []fiber.Map{
		{"sender_id": "a", "recipient_id": "b", "body": "a to b"},
		{"sender_id": "b", "recipient_id": "a", "body": "b to a"},
		{"sender_id": "a", "recipient_id": "c", "body": "a to c"},
		{"sender_id": "c", "recipient_id": "b", "body": "c to b"},
	}
	for _, m := range msgs {
		resp, _ := doJSON(t, app, http.MethodPost, "/messages", m)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

func TestListMessagesRequiresUserID(t *testing.T) {
	app, _ := newTestApp(t)
	resp, raw := doJSON(t, app, http.MethodGet, "/messages", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "user_id")
}

func TestListMessagesByParticipant(t *testing.T) {
	app, _ := newTestApp(t)
	seedMessages(t, app)

	resp, raw := doJSON(t, app, http.MethodGet, "/messages?user_id=a", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	docs := decodeList(t, raw)
	require.Len(t, docs, 3)
	for _, d := range docs {
		assert.True(t, d["sender_id"] == "a" || d["recipient_id"] == "a")
	}
}

func TestListMessagesExactPairBothDirections(t *testing.T) {
	app, _ := newTestApp(t)
	seedMessages(t, app)

	resp, raw := doJSON(t, app, http.MethodGet, "/messages?user_id=a&with_user=b", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	docs := decodeList(t, raw)
	require.Len(t, docs, 2)
	bodies := []interface{}{docs[0]["body"], docs[1]["body"]}
	assert.Contains(t, bodies, "a to b")
	assert.Contains(t, bodies, "b to a")
}

func TestCreateMessageMissingBody(t *testing.T) {
	app, _ := newTestApp(t)
	resp, _ := doJSON(t, app, http.MethodPost, "/messages", fiber.Map{
		"sender_id": "a", "recipient_id": "b",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
