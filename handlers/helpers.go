package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/skyfell/obslogbackend/astro"
	"github.com/skyfell/obslogbackend/repository"
)

// writeJSON encodes payload as the response body with the given status
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("Error encoding JSON response: %v", err)
		}
	}
}

// writeError maps domain errors onto HTTP statuses and writes a JSON
// error body. Unrecognized errors are logged and reported as 500
// without leaking internals.
func writeError(w http.ResponseWriter, err error) {
	var resolveErr *astro.ResolveError
	switch {
	case errors.Is(err, repository.ErrValidation):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, repository.ErrDuplicateName),
		errors.Is(err, repository.ErrNameReferenced):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, repository.ErrUnknownReference):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.As(err, &resolveErr):
		switch resolveErr.Kind {
		case astro.ResolveNotFound:
			writeJSON(w, http.StatusNotFound, map[string]string{"error": resolveErr.Error()})
		case astro.ResolveNetwork:
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": resolveErr.Error()})
		default:
			log.Printf("Resolver error: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": resolveErr.Error()})
		}
	default:
		log.Printf("Internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

// parseID reads the {id} URL parameter. It writes a 400 response and
// returns false when the parameter is not a positive integer.
func parseID(w http.ResponseWriter, idStr string) (uint, bool) {
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid ID format"})
		return 0, false
	}
	return uint(id), true
}
