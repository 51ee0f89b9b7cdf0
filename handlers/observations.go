package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skyfell/obslogbackend/astro"
	"github.com/skyfell/obslogbackend/models"
	"github.com/skyfell/obslogbackend/repository"
	"github.com/skyfell/obslogbackend/settings"
)

type ObservationHandler struct {
	Repo        repository.ObservationRepositoryInterface
	SessionRepo repository.SessionRepositoryInterface
	ObjectRepo  repository.ObjectRepositoryInterface
	Settings    *settings.Store
}

// ObservationView is an observation row enriched with the moon
// conditions of its session. The warning flags compare against the
// configured thresholds; a flag is false when the underlying data is
// unavailable rather than omitted.
type ObservationView struct {
	models.Observation
	MoonIllumination      *float64 `json:"moon_illumination,omitempty"`
	MoonSeparationDegrees *float64 `json:"moon_separation_deg,omitempty"`
	MoonIlluminationWarn  bool     `json:"moon_illumination_warning"`
	MoonSeparationWarn    bool     `json:"moon_separation_warning"`
}

func (h *ObservationHandler) CreateObservation(w http.ResponseWriter, r *http.Request) {
	var obs models.Observation
	if err := json.NewDecoder(r.Body).Decode(&obs); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}
	obs.ID = 0
	if err := h.Repo.Create(&obs); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, obs)
}

func (h *ObservationHandler) ListObservations(w http.ResponseWriter, r *http.Request) {
	observations, err := h.Repo.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}

	sessions, err := h.SessionRepo.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	objects, err := h.ObjectRepo.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}

	sessionsByName := make(map[string]*models.Session, len(sessions))
	for i := range sessions {
		sessionsByName[sessions[i].Name] = &sessions[i]
	}
	objectsByName := make(map[string]*models.CelestialObject, len(objects))
	for i := range objects {
		objectsByName[objects[i].Name] = &objects[i]
	}

	cfg, err := h.Settings.Load()
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]ObservationView, 0, len(observations))
	for _, obs := range observations {
		view := ObservationView{Observation: obs}
		session := sessionsByName[obs.SessionName]
		if session != nil && session.MoonIllumination != nil {
			view.MoonIllumination = session.MoonIllumination
			view.MoonIlluminationWarn = *session.MoonIllumination > cfg.MoonIlluminationWarningPercent
		}
		obj := objectsByName[obs.ObjectName]
		if session != nil && obj != nil &&
			session.MoonRA != nil && session.MoonDec != nil &&
			obj.RAHours != nil && obj.DecDegrees != nil {
			sep := astro.AngularSeparation(*obj.RAHours*15, *obj.DecDegrees, *session.MoonRA, *session.MoonDec)
			view.MoonSeparationDegrees = &sep
			view.MoonSeparationWarn = sep < cfg.MoonSeparationWarningDegrees
		}
		views = append(views, view)
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *ObservationHandler) GetObservation(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	obs, err := h.Repo.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, obs)
}

func (h *ObservationHandler) UpdateObservation(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var obs models.Observation
	if err := json.NewDecoder(r.Body).Decode(&obs); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}
	obs.ID = id
	if err := h.Repo.Update(&obs); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, obs)
}

func (h *ObservationHandler) DeleteObservation(w http.ResponseWriter, r *http.Request) {
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
