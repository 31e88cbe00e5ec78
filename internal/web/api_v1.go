package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/rook-computer/gbascene/internal/export"
	"github.com/rook-computer/gbascene/internal/palette"
	"github.com/rook-computer/gbascene/internal/render"
	"github.com/rook-computer/gbascene/internal/scene"
	"github.com/rook-computer/gbascene/internal/sprite"
)

// APIV1Config holds the defaults every request starts from. Zero fields fall
// back to scene.DefaultOptions and palette.Default.
type APIV1Config struct {
	Base    scene.Options
	Palette palette.Palette
	Logger  logger
}

func (cfg APIV1Config) withDefaults() APIV1Config {
	if cfg.Base.Width == 0 && cfg.Base.Height == 0 {
		cfg.Base = scene.DefaultOptions()
	}
	if cfg.Palette.Len() == 0 {
		cfg.Palette = palette.Default()
	}
	return cfg
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type layoutResponse struct {
	Options scene.Options `json:"options"`
	Layout  scene.Layout  `json:"layout"`
	Stats   scene.Stats   `json:"stats"`
}

func apiV1Router(cfg APIV1Config) http.Handler {
	cfg = cfg.withDefaults()
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", handleHealthz)
	mux.HandleFunc("/scene.png", func(w http.ResponseWriter, r *http.Request) { handleScene(w, r, cfg) })
	mux.HandleFunc("/layout", func(w http.ResponseWriter, r *http.Request) { handleLayout(w, r, cfg) })
	mux.HandleFunc("/sprite", func(w http.ResponseWriter, r *http.Request) { handleSprite(w, r, cfg) })
	return mux
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func handleScene(w http.ResponseWriter, r *http.Request, cfg APIV1Config) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	q := r.URL.Query()
	opts, err := optionsFromQuery(cfg.Base, q)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	scale, err := scaleFromQuery(q)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	c, stats := scene.Compose(opts, cfg.Palette)
	if cfg.Logger != nil {
		cfg.Logger.Infof("web", "scene seed=%d density=%d scale=%d motifs=%d", opts.Seed, opts.Density, scale, stats.Motifs)
	}
	w.Header().Set("X-Scene-Motifs", strconv.Itoa(stats.Motifs))
	w.Header().Set("X-Scene-Lines", strconv.Itoa(stats.TextLines))
	writePNG(w, c, scale, cfg)
}

// handleSprite renders one sprite alone on grass, for checking shapes.
func handleSprite(w http.ResponseWriter, r *http.Request, cfg APIV1Config) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	q := r.URL.Query()
	s, ok := sprite.ByName(q.Get("name"))
	if !ok {
		writeAPIError(w, http.StatusNotFound, "unknown_sprite", fmt.Sprintf("no sprite named %q", q.Get("name")))
		return
	}
	scale, err := scaleFromQuery(q)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	writePNG(w, sprite.Render(cfg.Palette, s, palette.GrassLight), scale, cfg)
}

func scaleFromQuery(q url.Values) (int, error) {
	raw := q.Get("scale")
	if raw == "" {
		return 1, nil
	}
	scale, err := strconv.Atoi(raw)
	if err != nil || !slices.Contains(render.ExportScales, scale) {
		return 0, fmt.Errorf("scale must be one of %v (got %q)", render.ExportScales, raw)
	}
	return scale, nil
}

func writePNG(w http.ResponseWriter, img image.Image, scale int, cfg APIV1Config) {
	var buf bytes.Buffer
	if err := export.Encode(&buf, img, scale); err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Errorf("web", "encode png: %v", err)
		}
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func handleLayout(w http.ResponseWriter, r *http.Request, cfg APIV1Config) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	opts, err := optionsFromQuery(cfg.Base, r.URL.Query())
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	_, stats := scene.Compose(opts, cfg.Palette)
	writeJSON(w, http.StatusOK, layoutResponse{Options: opts, Layout: scene.NewLayout(opts), Stats: stats})
}

// optionsFromQuery overrides base with the seed, density, text, pathY and
// pathHeight query parameters and validates the result.
func optionsFromQuery(base scene.Options, q url.Values) (scene.Options, error) {
	opts := base
	if raw := q.Get("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return opts, fmt.Errorf("seed must be an integer (got %q)", raw)
		}
		opts.Seed = seed
	}
	ints := []struct {
		name string
		dst  *int
	}{
		{"density", &opts.Density},
		{"pathY", &opts.PathY},
		{"pathHeight", &opts.PathHeight},
	}
	for _, p := range ints {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return opts, fmt.Errorf("%s must be an integer (got %q)", p.name, raw)
		}
		*p.dst = v
	}
	if q.Has("text") {
		opts.Text = q.Get("text")
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
