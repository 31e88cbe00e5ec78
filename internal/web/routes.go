package web

import "net/http"

// RegisterAPIV1 registers the public API routes under /api/v1/.
func RegisterAPIV1(mux *http.ServeMux, cfg APIV1Config) {
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiV1Router(cfg)))
}

// NewMux builds the standard mux: /api/v1/* for the API and a redirect from
// / to the rendered scene.
func NewMux(cfg APIV1Config) *http.ServeMux {
	mux := http.NewServeMux()
	RegisterAPIV1(mux, cfg)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			writeAPIError(w, http.StatusNotFound, "not_found", "not found")
			return
		}
		http.Redirect(w, r, "/api/v1/scene.png?scale=3", http.StatusFound)
	})
	return mux
}
