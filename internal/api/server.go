package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server around a handler
func NewServer(port string, handler *Handler) *Server {
	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check and operational endpoints
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")
	router.HandleFunc("/metrics", handler.GetMetrics).Methods("GET")
	router.HandleFunc("/calendar.ics", handler.GetCalendarFeed).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Tournaments
	api.HandleFunc("/tournaments", handler.GetTournaments).Methods("GET")
	api.HandleFunc("/tournaments/{id}", handler.GetTournament).Methods("GET")
	api.HandleFunc("/tournaments/{id}/calendar.ics", handler.GetTournamentCalendar).Methods("GET")

	// Detail page proxy, addressed by ?id= like the upstream site
	api.HandleFunc("/tournament", handler.GetTournamentDetail).Methods("GET")

	// Rankings and live scores
	api.HandleFunc("/rankings", handler.GetRankings).Methods("GET")
	api.HandleFunc("/livescore", handler.GetLivescore).Methods("GET")

	// Preflight requests need a matched route for the middleware to run
	router.PathPrefix("/").Methods("OPTIONS").HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
