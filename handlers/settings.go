package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/skyfell/obslogbackend/repository"
	"github.com/skyfell/obslogbackend/settings"
)

type SettingsHandler struct {
	Store *settings.Store
}

func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Store.Load()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var cfg settings.Settings
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := cfg.Validate(); err != nil {
		writeError(w, fmt.Errorf("%w: %v", repository.ErrValidation, err))
		return
	}
	if err := h.Store.Save(cfg); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}
