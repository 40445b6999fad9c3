// Package server exposes field extraction as a small JSON API.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/yokitheyo/knife"
)

// Server routes extraction requests to the knife engine. It holds no
// per-request state, every request compiles its own pattern.
type Server struct {
	router *mux.Router
}

func New() *Server {
	s := &Server{router: mux.NewRouter()}
	s.router.Use(loggingMiddleware)
	s.router.HandleFunc("/extract", s.extract).Methods("POST")
	s.router.HandleFunc("/healthz", s.healthz).Methods("GET")
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type extractRequest struct {
	Fields string   `json:"fields"`
	Lines  []string `json:"lines"`
}

type response struct {
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func (s *Server) extract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	k, err := knife.New(req.Fields)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := make([][]string, 0, len(req.Lines))
	for _, line := range req.Lines {
		result = append(result, k.Extract(line))
	}
	writeJSON(w, response{Result: result}, http.StatusOK)
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, response{Result: "ok"}, http.StatusOK)
}

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, errorMsg string, statusCode int) {
	writeJSON(w, response{Error: errorMsg}, statusCode)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
