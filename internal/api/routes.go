package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/", s.handleHome)
	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	// The web client also calls these under /api.
	r.Route("/flashcards", s.flashcardRoutes)
	r.Route("/api/flashcards", s.flashcardRoutes)
	return r
}

func (s *Server) flashcardRoutes(r chi.Router) {
	r.Use(s.storeTimeoutMiddleware)

	r.Get("/", s.handleListFlashcards)
	r.Post("/create", s.handleCreateFlashcard)
	r.Patch("/update/{id}", s.handleUpdateFlashcard)
	r.Delete("/delete/{id}", s.handleDeleteFlashcard)
	r.Get("/progress", s.handleListProgress)
	r.Patch("/progress/{id}", s.handleUpdateProgress)
	r.Get("/category/{category}", s.handleFlashcardsByCategory)
	r.Get("/connection-test", s.handleConnectionTest)
}
