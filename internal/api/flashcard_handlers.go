package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/flashdeck/internal/errors"
	"github.com/vytor/flashdeck/internal/logger"
	"github.com/vytor/flashdeck/internal/models"
)

const (
	msgUpdated         = "Flashcard updated successfully in the database"
	msgDeleted         = "Flashcard deleted successfully in the database"
	msgProgressUpdated = "Progress updated"
)

func (s *Server) handleListFlashcards(w http.ResponseWriter, r *http.Request) {
	cards, err := s.FlashcardService.List(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, envelope{"response": cards})
}

func (s *Server) handleCreateFlashcard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var in models.FlashcardInput
	if err := decodeJSON(w, r, &in); err != nil {
		handleError(w, r, err)
		return
	}

	created, err := s.FlashcardService.Create(r.Context(), in)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if len(created) > 0 {
		log.Info("flashcard created: id=%d", created[0].ID)
	}
	writeJSON(w, r, http.StatusOK, envelope{"flashcard": created})
}

func (s *Server) handleUpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var in models.FlashcardInput
	if err := decodeJSON(w, r, &in); err != nil {
		handleError(w, r, err)
		return
	}

	updated, err := s.FlashcardService.Update(r.Context(), id, in)
	if err != nil {
		handleError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("flashcard updated: id=%d", id)
	writeJSON(w, r, http.StatusOK, envelope{"message": msgUpdated, "flashcard": updated})
}

func (s *Server) handleDeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	deleted, err := s.FlashcardService.Delete(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("flashcard deleted: id=%d", id)
	writeJSON(w, r, http.StatusOK, envelope{"message": msgDeleted, "flashcard": deleted})
}

func (s *Server) handleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var in models.ProgressInput
	if err := decodeJSON(w, r, &in); err != nil {
		handleError(w, r, err)
		return
	}

	updated, err := s.FlashcardService.UpdateProgress(r.Context(), id, in)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, envelope{"message": msgProgressUpdated, "flashcard": updated})
}

func (s *Server) handleListProgress(w http.ResponseWriter, r *http.Request) {
	entries, err := s.FlashcardService.ListProgress(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, envelope{"response": entries})
}

// handleFlashcardsByCategory answers with a bare array, unlike the other
// list endpoints.
func (s *Server) handleFlashcardsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	// chi routes on RawPath when it is set, leaving the param escaped.
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(category)
		if err != nil {
			handleError(w, r, errors.NewBadRequestError("invalid category: "+category))
			return
		}
		category = unescaped
	}
	cards, err := s.FlashcardService.ListByCategory(r.Context(), category)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, cards)
}
