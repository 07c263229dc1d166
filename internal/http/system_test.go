package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemController_ResetHistory(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	session, word := seedSession(t, app)
	_, err := app.study.CreateReview(session.ID, word.ID, true)
	require.NoError(t, err)

	w := performRequest(app.router, "POST", "/api/system/reset_history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Study history has been reset", body["message"])

	// Vocabulary survives, history does not.
	wordCount, err := app.words.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), wordCount)
	groupCount, err := app.groups.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), groupCount)

	sessionCount, err := app.study.CountSessions()
	require.NoError(t, err)
	assert.Equal(t, int64(0), sessionCount)
	reviewCount, err := app.study.ReviewCount(session.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), reviewCount)
}

func TestSystemController_FullReset(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	session, word := seedSession(t, app)
	_, err := app.study.CreateReview(session.ID, word.ID, true)
	require.NoError(t, err)

	w := performRequest(app.router, "POST", "/api/system/full_reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "System has been fully reset", body["message"])

	wordCount, err := app.words.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), wordCount)
	groupCount, err := app.groups.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), groupCount)

	// The schema is recreated, so the store is usable right away.
	w = performRequest(app.router, "POST", "/api/groups", map[string]any{"name": "Numbers"})
	assert.Equal(t, http.StatusOK, w.Code)
}
