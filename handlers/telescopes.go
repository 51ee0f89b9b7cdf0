package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skyfell/obslogbackend/models"
	"github.com/skyfell/obslogbackend/repository"
)

type TelescopeHandler struct {
	Repo repository.TelescopeRepositoryInterface
}

func (h *TelescopeHandler) CreateTelescope(w http.ResponseWriter, r *http.Request) {
	var telescope models.Telescope
	if err := json.NewDecoder(r.Body).Decode(&telescope); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}
	telescope.ID = 0
	if err := h.Repo.Create(&telescope); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, telescope)
}

func (h *TelescopeHandler) ListTelescopes(w http.ResponseWriter, r *http.Request) {
	telescopes, err := h.Repo.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	if telescopes == nil {
		telescopes = []models.Telescope{}
	}
	writeJSON(w, http.StatusOK, telescopes)
}

func (h *TelescopeHandler) GetTelescope(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	telescope, err := h.Repo.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, telescope)
}

func (h *TelescopeHandler) UpdateTelescope(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var telescope models.Telescope
	if err := json.NewDecoder(r.Body).Decode(&telescope); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}
	telescope.ID = id
	if err := h.Repo.Update(&telescope); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, telescope)
}

func (h *TelescopeHandler) DeleteTelescope(w http.ResponseWriter, r *http.Request) {
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
