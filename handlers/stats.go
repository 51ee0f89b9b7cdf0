package handlers

import (
	"net/http"

	"github.com/skyfell/obslogbackend/repository"
)

type StatsHandler struct {
	Repo repository.StatsRepositoryInterface
}

// GetObjectStats returns total exposure per object and filter type
func (h *StatsHandler) GetObjectStats(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Repo.ObjectStats()
	if err != nil {
		writeError(w, err)
		return
	}
	if rows == nil {
		rows = []repository.ObjectFilterExposure{}
	}
	writeJSON(w, http.StatusOK, rows)
}

// GetMonthlyStats returns total imaging hours per calendar month
func (h *StatsHandler) GetMonthlyStats(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Repo.MonthlyStats()
	if err != nil {
		writeError(w, err)
		return
	}
	if rows == nil {
		rows = []repository.MonthlyExposure{}
	}
	writeJSON(w, http.StatusOK, rows)
}
