package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// HealthHandler provides a simple health check endpoint that returns server status.
func (s *Server) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = fmt.Fprintf(w, "Relay server is running!")
}

// AdminRouter configures the admin routes: health check, Prometheus metrics,
// and the WebSocket bridge endpoint.
func (s *Server) AdminRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.HealthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.WebSocketHandler).Methods(http.MethodGet)
	return r
}

// newAdminServer creates the admin HTTP server with production timeout
// settings. WebSocket connections are hijacked at upgrade, so the write
// timeout does not apply to established bridge sessions.
func newAdminServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
