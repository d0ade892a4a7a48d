package mazeapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, auth gin.HandlerFunc) http.Handler {
	t.Helper()
	l, err := logger.New("TEST", "", &bytes.Buffer{})
	require.NoError(t, err)
	ms, err := service.NewMazeService(&service.Config{Seed: 1, VerifyTrees: true, Logger: l})
	require.NoError(t, err)
	mc, err := NewMazeController(ms)
	require.NoError(t, err)

	return api.NewRouter(api.Config{
		BaseURL:                 "/api",
		Mode:                    gin.TestMode,
		Controllers:             []api_i.Controller{mc},
		AuthorizationMiddleware: auth,
	}).Handler()
}

func get(h http.Handler, url, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestGenerateMaze(t *testing.T) {
	h := newTestRouter(t, identity.Open())

	w := get(h, "/api/v1/mazes?algorithm=dfs&height=9&width=12&seed=8", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp MazeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "DFS", resp.Algorithm)
	assert.Equal(t, int64(8), resp.Seed)
	assert.Equal(t, CellResponse{Row: 0, Col: 1}, resp.Entrance)
	assert.Equal(t, CellResponse{Row: 8, Col: 9}, resp.Exit)
	assert.Len(t, resp.Rows, 9)
	assert.NotEmpty(t, resp.ID)

	parsed, err := render.Parse(strings.Join(resp.Rows, "\n"))
	require.NoError(t, err)
	assert.Equal(t, 12, parsed.Width())

	again := get(h, "/api/v1/mazes?algorithm=dfs&height=9&width=12&seed=8", "")
	var second MazeResponse
	require.NoError(t, json.Unmarshal(again.Body.Bytes(), &second))
	assert.Equal(t, resp.Rows, second.Rows)
	assert.NotEqual(t, resp.ID, second.ID)
}

func TestGenerateMazeBadRequests(t *testing.T) {
	h := newTestRouter(t, identity.Open())

	for _, url := range []string{
		"/api/v1/mazes?height=2&width=3",
		"/api/v1/mazes?height=-2&width=20",
		"/api/v1/mazes?height=12&width=2",
		"/api/v1/mazes?height=12",
		"/api/v1/mazes?height=9&width=9&algorithm=wilson",
		"/api/v1/mazes?height=3&width=4611686018427387904",
		"/api/v1/mazes?height=68719476736&width=3",
		"/api/v1/mazes?height=502&width=502",
		"/api/v1/mazes/solution?height=600&width=9",
	} {
		w := get(h, url, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, url)
	}
}

func TestSolveMaze(t *testing.T) {
	h := newTestRouter(t, identity.Open())

	w := get(h, "/api/v1/mazes/solution?height=10&width=10&seed=3&solver=dfs", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp SolutionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "BFS", resp.Algorithm)
	assert.Equal(t, "DFS", resp.Solver)
	require.NotEmpty(t, resp.Path)
	assert.Equal(t, resp.Entrance, resp.Path[0])
	assert.Equal(t, resp.Exit, resp.Path[len(resp.Path)-1])
	assert.Equal(t, len(resp.Path)-1, resp.Steps)
	assert.Contains(t, strings.Join(resp.Rows, "\n"), render.PathGlyph)

	w = get(h, "/api/v1/mazes/solution?height=10&width=10&solver=astar", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSolveMazeRequiresToken(t *testing.T) {
	ts := token.NewJwtService("secret", "vinom-maze")
	h := newTestRouter(t, identity.Authorize(ts))

	w := get(h, "/api/v1/mazes/solution?height=7&width=7", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	bearer, err := ts.Generate(map[string]interface{}{"sub": "tester"}, time.Minute)
	require.NoError(t, err)
	w = get(h, "/api/v1/mazes/solution?height=7&width=7", bearer)
	assert.Equal(t, http.StatusOK, w.Code)

	// Generation stays public.
	w = get(h, "/api/v1/mazes?height=7&width=7", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
