// Package emulator serves the counter contract from memory so the client can
// be exercised locally without the hosted endpoint.
package emulator

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/cloudresume/visitors/models"
	"github.com/go-chi/chi"
	"github.com/go-chi/cors"
	log "github.com/mgutz/logxi/v1"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Emulator struct {
	mu      sync.Mutex // guards count and created
	count   int
	created bool

	registry   *prometheus.Registry
	increments prometheus.Counter
	logger     log.Logger
}

func New() *Emulator {
	e := &Emulator{
		registry: prometheus.NewRegistry(),
		increments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "visitors_emulator_increments_total",
			Help: "Number of increment requests served by the local emulator.",
		}),
		logger: log.New("emulator"),
	}
	e.registry.MustRegister(e.increments)

	return e
}

// Routes returns the handler for the counter endpoint, to be mounted at
// /api/http_trigger.
func (e *Emulator) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}).Handler)

	r.Post("/", e.increment)
	r.Get("/", e.status)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, models.ErrorResponse{Error: "Method not allowed. Use GET or POST."})
	})

	return r
}

// Metrics exposes the emulator's Prometheus registry.
func (e *Emulator) Metrics() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

func (e *Emulator) increment(w http.ResponseWriter, r *http.Request) {
	e.mu.Lock()
	created := !e.created
	e.created = true
	e.count++
	count := e.count
	e.mu.Unlock()

	e.increments.Inc()
	e.logger.Info("visitor counted", "count", count, "remote", r.RemoteAddr)

	if created {
		writeJSON(w, http.StatusCreated, models.IncrementResponse{Message: "Visitor record created", NewCount: count})
		return
	}
	writeJSON(w, http.StatusOK, models.IncrementResponse{Message: "Visitor count incremented", NewCount: count})
}

func (e *Emulator) status(w http.ResponseWriter, r *http.Request) {
	e.mu.Lock()
	created, count := e.created, e.count
	e.mu.Unlock()

	if !created {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Visitor record not found."})
		return
	}
	writeJSON(w, http.StatusOK, models.StatusResponse{Count: count})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
