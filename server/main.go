//go:build !js
// +build !js

package main

import (
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/simukka/sonosphere/audio"
	"github.com/simukka/sonosphere/scene"
)

//go:embed index.html
var indexHTML []byte

// defaultsResponse describes the visualizer's startup settings.
type defaultsResponse struct {
	Params   scene.Params `json:"params"`
	Analyser audio.Config `json:"analyser"`
	Vertices int          `json:"vertices"`
}

// newMux serves the embedded page at the root, the compiled bundle and any
// other assets from staticDir, and two small JSON endpoints.
func newMux(staticDir string) *http.ServeMux {
	mux := http.NewServeMux()
	files := http.FileServer(http.Dir(staticDir))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(indexHTML)
			return
		}
		// Serve other static files from disk
		files.ServeHTTP(w, r)
	})

	mux.HandleFunc("/api/defaults", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(defaultsResponse{
			Params:   scene.DefaultParams(),
			Analyser: audio.DefaultConfig(),
			Vertices: 20 * (scene.SphereDetail + 1) * (scene.SphereDetail + 1) * 3,
		})
	})

	// Health check
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	return mux
}

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	staticDir := flag.String("static", ".", "Directory to serve static files from")
	flag.Parse()

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Sonosphere server starting on http://localhost%s", addr)
	log.Printf("Serving static files from: %s", *staticDir)

	if err := http.ListenAndServe(addr, newMux(*staticDir)); err != nil {
		log.Fatal(err)
	}
}
