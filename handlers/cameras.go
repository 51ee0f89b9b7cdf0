package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skyfell/obslogbackend/models"
	"github.com/skyfell/obslogbackend/repository"
)

type CameraHandler struct {
	Repo repository.CameraRepositoryInterface
}

func (h *CameraHandler) CreateCamera(w http.ResponseWriter, r *http.Request) {
	var camera models.Camera
	if err := json.NewDecoder(r.Body).Decode(&camera); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}
	camera.ID = 0
	if err := h.Repo.Create(&camera); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, camera)
}

func (h *CameraHandler) ListCameras(w http.ResponseWriter, r *http.Request) {
	cameras, err := h.Repo.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	if cameras == nil {
		cameras = []models.Camera{}
	}
	writeJSON(w, http.StatusOK, cameras)
}

func (h *CameraHandler) GetCamera(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	camera, err := h.Repo.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, camera)
}

func (h *CameraHandler) UpdateCamera(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var camera models.Camera
	if err := json.NewDecoder(r.Body).Decode(&camera); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}
	camera.ID = id
	if err := h.Repo.Update(&camera); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, camera)
}

func (h *CameraHandler) DeleteCamera(w http.ResponseWriter, r *http.Request) {
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
