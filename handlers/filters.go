package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skyfell/obslogbackend/models"
	"github.com/skyfell/obslogbackend/repository"
)

type FilterTypeHandler struct {
	Repo repository.FilterTypeRepositoryInterface
}

func (h *FilterTypeHandler) CreateFilterType(w http.ResponseWriter, r *http.Request) {
	var ft models.FilterType
	if err := json.NewDecoder(r.Body).Decode(&ft); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}
	ft.ID = 0
	if err := h.Repo.Create(&ft); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ft)
}

func (h *FilterTypeHandler) ListFilterTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Repo.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	if types == nil {
		types = []models.FilterType{}
	}
	writeJSON(w, http.StatusOK, types)
}

func (h *FilterTypeHandler) GetFilterType(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	ft, err := h.Repo.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ft)
}

func (h *FilterTypeHandler) UpdateFilterType(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var ft models.FilterType
	if err := json.NewDecoder(r.Body).Decode(&ft); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}
	ft.ID = id
	if err := h.Repo.Update(&ft); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ft)
}

func (h *FilterTypeHandler) DeleteFilterType(w http.ResponseWriter, r *http.Request) {
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

type FilterHandler struct {
	Repo repository.FilterRepositoryInterface
}

func (h *FilterHandler) CreateFilter(w http.ResponseWriter, r *http.Request) {
	var filter models.Filter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}
	filter.ID = 0
	if err := h.Repo.Create(&filter); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, filter)
}

func (h *FilterHandler) ListFilters(w http.ResponseWriter, r *http.Request) {
	filters, err := h.Repo.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	if filters == nil {
		filters = []models.Filter{}
	}
	writeJSON(w, http.StatusOK, filters)
}

func (h *FilterHandler) GetFilter(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	filter, err := h.Repo.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, filter)
}

func (h *FilterHandler) UpdateFilter(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var filter models.Filter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}
	filter.ID = id
	if err := h.Repo.Update(&filter); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, filter)
}

func (h *FilterHandler) DeleteFilter(w http.ResponseWriter, r *http.Request) {
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
