package web

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiError {
	t.Helper()
	var e apiError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func TestHealthz(t *testing.T) {
	rec := get(t, NewMux(APIV1Config{}), http.MethodGet, "/api/v1/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestScenePNGDefault(t *testing.T) {
	rec := get(t, NewMux(APIV1Config{}), http.MethodGet, "/api/v1/scene.png")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "4", rec.Header().Get("X-Scene-Motifs"))
	assert.Equal(t, "2", rec.Header().Get("X-Scene-Lines"))

	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 240, 160), img.Bounds())
}

func TestScenePNGScaled(t *testing.T) {
	rec := get(t, NewMux(APIV1Config{}), http.MethodGet, "/api/v1/scene.png?scale=3")
	require.Equal(t, http.StatusOK, rec.Code)
	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 720, 480), img.Bounds())
}

func TestScenePNGIsDeterministicPerSeed(t *testing.T) {
	mux := NewMux(APIV1Config{})
	a := get(t, mux, http.MethodGet, "/api/v1/scene.png?seed=7")
	b := get(t, mux, http.MethodGet, "/api/v1/scene.png?seed=7")
	c := get(t, mux, http.MethodGet, "/api/v1/scene.png?seed=8")
	require.Equal(t, http.StatusOK, a.Code)
	assert.True(t, bytes.Equal(a.Body.Bytes(), b.Body.Bytes()))
	assert.False(t, bytes.Equal(a.Body.Bytes(), c.Body.Bytes()))
}

func TestScenePNGRejectsBadQuery(t *testing.T) {
	mux := NewMux(APIV1Config{})
	for _, target := range []string{
		"/api/v1/scene.png?scale=4",
		"/api/v1/scene.png?scale=x",
		"/api/v1/scene.png?seed=abc",
		"/api/v1/scene.png?density=0",
		"/api/v1/scene.png?pathY=150",
		"/api/v1/scene.png?pathY=36028797018963968&pathHeight=9187343239835811849",
		"/api/v1/scene.png?density=2305843009213693952",
		"/api/v1/layout?pathY=36028797018963968&pathHeight=9187343239835811849",
	} {
		rec := get(t, mux, http.MethodGet, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "bad_request", decodeError(t, rec).Error, target)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := NewMux(APIV1Config{})
	for _, target := range []string{"/api/v1/scene.png", "/api/v1/layout", "/api/v1/healthz"} {
		rec := get(t, mux, http.MethodPost, target)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, target)
		assert.Equal(t, apiError{Error: "method_not_allowed", Message: "method not allowed"}, decodeError(t, rec))
	}
}

func TestLayoutJSON(t *testing.T) {
	rec := get(t, NewMux(APIV1Config{}), http.MethodGet, "/api/v1/layout")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Options struct {
			Seed    int64 `json:"seed"`
			Density int   `json:"density"`
		} `json:"options"`
		Layout struct {
			Trees []struct{ X, Y int } `json:"trees"`
			NPC   struct{ X, Y int }   `json:"npc"`
		} `json:"layout"`
		Stats struct {
			Motifs    int `json:"motifs"`
			TextLines int `json:"textLines"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(1337), body.Options.Seed)
	assert.Equal(t, 14, body.Options.Density)
	assert.Len(t, body.Layout.Trees, 48)
	assert.Equal(t, 120, body.Layout.NPC.X)
	assert.Equal(t, 72, body.Layout.NPC.Y)
	assert.Equal(t, 4, body.Stats.Motifs)
	assert.Equal(t, 2, body.Stats.TextLines)
}

func TestLayoutFollowsPath(t *testing.T) {
	rec := get(t, NewMux(APIV1Config{}), http.MethodGet, "/api/v1/layout?pathY=80&pathHeight=24")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Layout struct {
			NPC struct{ X, Y int } `json:"npc"`
		} `json:"layout"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 84, body.Layout.NPC.Y)
}

func TestRootRedirectsToScene(t *testing.T) {
	mux := NewMux(APIV1Config{})
	rec := get(t, mux, http.MethodGet, "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/api/v1/scene.png?scale=3", rec.Header().Get("Location"))

	rec = get(t, mux, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSpritePNG(t *testing.T) {
	mux := NewMux(APIV1Config{})
	rec := get(t, mux, http.MethodGet, "/api/v1/sprite?name=tree&scale=2")
	require.Equal(t, http.StatusOK, rec.Code)
	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 56, 60), img.Bounds())

	rec = get(t, mux, http.MethodGet, "/api/v1/sprite?name=house")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "unknown_sprite", decodeError(t, rec).Error)
}
