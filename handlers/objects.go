package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skyfell/obslogbackend/models"
	"github.com/skyfell/obslogbackend/repository"
)

type ObjectHandler struct {
	Repo repository.ObjectRepositoryInterface
}

func (h *ObjectHandler) CreateObject(w http.ResponseWriter, r *http.Request) {
	var obj models.CelestialObject
	if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}
	obj.ID = 0
	if err := h.Repo.Create(&obj); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, obj)
}

func (h *ObjectHandler) ListObjects(w http.ResponseWriter, r *http.Request) {
	objects, err := h.Repo.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	if objects == nil {
		objects = []models.CelestialObject{}
	}
	writeJSON(w, http.StatusOK, objects)
}

func (h *ObjectHandler) GetObject(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	obj, err := h.Repo.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, obj)
}

func (h *ObjectHandler) UpdateObject(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var obj models.CelestialObject
	if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}
	obj.ID = id
	if err := h.Repo.Update(&obj); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, obj)
}

func (h *ObjectHandler) DeleteObject(w http.ResponseWriter, r *http.Request) {
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
