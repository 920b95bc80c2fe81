// Command devserver serves the page, the wasm bundle and an in-memory counter
// endpoint on one port for local development.
package main

import (
	"net/http"
	"os"

	"github.com/cloudresume/visitors/config"
	"github.com/cloudresume/visitors/emulator"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	log "github.com/mgutz/logxi/v1"
)

var logger = log.New("devserver")

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("unable to load config", "err", err)
	}

	logger.Info("serving", "url", "http://localhost:"+cfg.Port+"/", "endpoint", "http://localhost:"+cfg.Port+"/api/http_trigger")
	if err := http.ListenAndServe(":"+cfg.Port, newRouter(cfg.WebDir, emulator.New())); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func newRouter(webDir string, em *emulator.Emulator) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Mount("/api/http_trigger", em.Routes())
	r.Handle("/metrics", em.Metrics())
	r.Handle("/*", http.FileServer(http.Dir(webDir)))

	return r
}
