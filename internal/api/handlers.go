package api

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/flashdeck/internal/errors"
	"github.com/vytor/flashdeck/internal/logger"
	"github.com/vytor/flashdeck/internal/services"
)

const maxBodyBytes = 1 << 20

type Server struct {
	FlashcardService services.FlashcardService
	AllowedOrigins   []string
	// StoreTimeout bounds the store work of each flashcard request. Zero disables it.
	StoreTimeout time.Duration
}

type envelope map[string]any

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

// decodeJSON reads a single JSON object from the request body into dst.
// Unknown fields are ignored.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case stderrors.Is(err, io.EOF):
			return errors.NewBadRequestError("request body is empty")
		case stderrors.As(err, &maxErr):
			return errors.NewBadRequestError("request body is too large")
		default:
			return errors.NewBadRequestError("malformed JSON body: " + err.Error())
		}
	}
	if dec.More() {
		return errors.NewBadRequestError("request body must contain a single JSON object")
	}
	return nil
}

func parseID(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, errors.NewBadRequestError("invalid flashcard ID: " + idStr)
	}
	return id, nil
}
