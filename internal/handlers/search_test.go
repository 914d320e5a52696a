package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMatchesTextCaseInsensitive(t *testing.T) {
	app, _ := newTestApp(t)
	seedPosts(t, app)

	resp, raw := doJSON(t, app, http.MethodPost, "/search", fiber.Map{"q": "HELLO"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	docs := decodeList(t, raw)
	require.Len(t, docs, 1)
	assert.Equal(t, "hello world", docs[0]["text"])
}

func TestSearchMatchesExactTag(t *testing.T) {
	app, _ := newTestApp(t)
	seedPosts(t, app)

	resp, raw := doJSON(t, app, http.MethodPost, "/search", fiber.Map{"q": "go"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	docs := decodeList(t, raw)
	require.Len(t, docs, 1)
	assert.Equal(t, "second post", docs[0]["text"])
}

func TestSearchRequiresQuery(t *testing.T) {
	app, _ := newTestApp(t)
	resp, _ := doJSON(t, app, http.MethodPost, "/search", fiber.Map{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearchNoMatches(t *testing.T) {
	app, _ := newTestApp(t)
	seedPosts(t, app)

	resp, raw := doJSON(t, app, http.MethodPost, "/search", fiber.Map{"q": "zzz"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeList(t, raw))
}
