package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/hunlearn/lang-portal/internal/database"
	"github.com/hunlearn/lang-portal/internal/database/groups"
	"github.com/hunlearn/lang-portal/internal/database/stats"
	"github.com/hunlearn/lang-portal/internal/database/study"
	"github.com/hunlearn/lang-portal/internal/database/words"
)

type testApp struct {
	router *gin.Engine
	db     *database.Database
	words  *words.Repository
	groups *groups.Repository
	study  *study.Repository
	stats  *stats.Repository
}

func setupTestApp(t *testing.T) (*testApp, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	app := &testApp{
		db:     db,
		words:  words.NewRepository(db.DB),
		groups: groups.NewRepository(db.DB),
		study:  study.NewRepository(db.DB),
		stats:  stats.NewRepository(db.DB),
	}
	app.router = NewRouter(RouterConfig{
		Database: db,
		Words:    app.words,
		Groups:   app.groups,
		Study:    app.study,
		Stats:    app.stats,
		Version:  "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return app, cleanup
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
