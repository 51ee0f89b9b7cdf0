package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/skyfell/obslogbackend/astro"
	"github.com/skyfell/obslogbackend/models"
	"github.com/skyfell/obslogbackend/repository"
)

type SessionHandler struct {
	Repo repository.SessionRepositoryInterface
	Eph  astro.Ephemeris
}

// applyMoonData computes the moon fields from the session start date.
// A failed computation aborts the write; a session is never stored with
// stale or missing moon data.
func (h *SessionHandler) applyMoonData(session *models.Session) error {
	t, err := time.ParseInLocation("2006-01-02", session.StartDate, time.Local)
	if err != nil {
		return fmt.Errorf("%w: start_date must be YYYY-MM-DD", repository.ErrValidation)
	}
	moon, err := astro.MoonIllumination(h.Eph, t)
	if err != nil {
		return fmt.Errorf("failed to compute moon data for %s: %w", session.StartDate, err)
	}
	session.MoonIllumination = &moon.IlluminationPercent
	session.MoonRA = &moon.RADegrees
	session.MoonDec = &moon.DecDegrees
	return nil
}

func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var session models.Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}
	session.ID = 0
	if err := h.applyMoonData(&session); err != nil {
		writeError(w, err)
		return
	}
	if err := h.Repo.Create(&session); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.Repo.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	if sessions == nil {
		sessions = []models.Session{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	session, err := h.Repo.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *SessionHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var session models.Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}
	session.ID = id
	if err := h.applyMoonData(&session); err != nil {
		writeError(w, err)
		return
	}
	if err := h.Repo.Update(&session); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	if err := h.Repo.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
