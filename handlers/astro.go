package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/skyfell/obslogbackend/astro"
	"github.com/skyfell/obslogbackend/repository"
	"github.com/skyfell/obslogbackend/settings"
	"github.com/skyfell/obslogbackend/workers"
)

type AstroHandler struct {
	Resolver   *astro.Resolver
	Scheduler  *workers.TransitScheduler
	ObjectRepo repository.ObjectRepositoryInterface
	Settings   *settings.Store
}

// ResolveName looks up an object name against the CDS Sesame service
// and returns its ICRS coordinates
func (h *AstroHandler) ResolveName(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing required query parameter: name"})
		return
	}

	raDeg, decDeg, err := h.Resolver.Resolve(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":        name,
		"ra_hours":    raDeg / 15,
		"ra_degrees":  raDeg,
		"dec_degrees": decDeg,
	})
}

// StartTransits kicks off a background transit computation for every
// catalogued object at the configured site. Any batch still running is
// superseded.
func (h *AstroHandler) StartTransits(w http.ResponseWriter, r *http.Request) {
	objects, err := h.ObjectRepo.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	cfg, err := h.Settings.Load()
	if err != nil {
		writeError(w, err)
		return
	}

	batchID := h.Scheduler.Submit(objects, cfg.Latitude, cfg.Longitude, 0, time.Now().UTC())
	writeJSON(w, http.StatusAccepted, map[string]string{"batch_id": batchID})
}

// GetTransits returns the most recently completed transit batch
func (h *AstroHandler) GetTransits(w http.ResponseWriter, r *http.Request) {
	batch := h.Scheduler.Latest()
	if batch == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no transit batch has completed yet"})
		return
	}
	writeJSON(w, http.StatusOK, batch)
}
