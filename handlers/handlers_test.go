package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/skyfell/obslogbackend/astro"
	"github.com/skyfell/obslogbackend/database"
	"github.com/skyfell/obslogbackend/models"
	"github.com/skyfell/obslogbackend/repository"
	"github.com/skyfell/obslogbackend/settings"
)

// fixedEphemeris returns constant positions so session creation does not
// depend on planetary theory.
type fixedEphemeris struct{}

func (fixedEphemeris) SunPosition(t time.Time) (astro.EquatorialPosition, error) {
	return astro.EquatorialPosition{RADegrees: 0, DecDegrees: 0, DistanceKm: 149597870.7}, nil
}

func (fixedEphemeris) MoonPosition(t time.Time) (astro.EquatorialPosition, error) {
	return astro.EquatorialPosition{RADegrees: 180, DecDegrees: 5, DistanceKm: 384400}, nil
}

func (fixedEphemeris) ApparentSiderealTime(t time.Time) (float64, error) {
	return 0, nil
}

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	dir := t.TempDir()
	db, err := database.InitDB(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	store := settings.NewStore(filepath.Join(dir, "settings.json"))

	objectHandler := &ObjectHandler{Repo: repository.NewObjectRepository(db)}
	sessionHandler := &SessionHandler{Repo: repository.NewSessionRepository(db), Eph: fixedEphemeris{}}
	observationHandler := &ObservationHandler{
		Repo:        repository.NewObservationRepository(db),
		SessionRepo: repository.NewSessionRepository(db),
		ObjectRepo:  repository.NewObjectRepository(db),
		Settings:    store,
	}
	settingsHandler := &SettingsHandler{Store: store}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/objects", func(r chi.Router) {
			r.Post("/", objectHandler.CreateObject)
			r.Get("/", objectHandler.ListObjects)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", objectHandler.GetObject)
				r.Put("/", objectHandler.UpdateObject)
				r.Delete("/", objectHandler.DeleteObject)
			})
		})
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.CreateSession)
			r.Get("/", sessionHandler.ListSessions)
		})
		r.Route("/observations", func(r chi.Router) {
			r.Post("/", observationHandler.CreateObservation)
			r.Get("/", observationHandler.ListObservations)
		})
		r.Route("/settings", func(r chi.Router) {
			r.Get("/", settingsHandler.GetSettings)
			r.Put("/", settingsHandler.UpdateSettings)
		})
	})
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestObjectEndpoints(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/objects/", map[string]interface{}{
		"name": "M42", "ra_hours": 5.588, "dec_degrees": -5.39,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body)
	}
	var created models.CelestialObject
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created object: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created object has no ID")
	}

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/objects/", map[string]interface{}{"name": "M42"})
		if rec.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409", rec.Code)
		}
	})

	t.Run("half a coordinate pair is invalid", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/objects/", map[string]interface{}{
			"name": "M43", "ra_hours": 5.6,
		})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("get round trips", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/objects/"+strconv.Itoa(int(created.ID)), nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var got models.CelestialObject
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Name != "M42" || got.RAHours == nil || *got.RAHours != 5.588 {
			t.Errorf("unexpected object %+v", got)
		}
	})

	t.Run("missing object is not found", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/objects/9999", nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("bad id is invalid", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/objects/notanumber", nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodDelete, "/api/objects/"+strconv.Itoa(int(created.ID)), nil)
		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", rec.Code)
		}
		rec = doJSON(t, r, http.MethodDelete, "/api/objects/"+strconv.Itoa(int(created.ID)), nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("second delete status = %d, want 404", rec.Code)
		}
	})
}

func TestSessionEndpointComputesMoonData(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/sessions/", map[string]interface{}{
		"name": "Jan run", "start_date": "2026-01-15",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body)
	}
	var session models.Session
	if err := json.Unmarshal(rec.Body.Bytes(), &session); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// the fixed ephemeris puts sun and moon at opposition
	if session.MoonIllumination == nil || *session.MoonIllumination < 99.9 {
		t.Errorf("MoonIllumination = %v, want ~100", session.MoonIllumination)
	}
	if session.MoonRA == nil || *session.MoonRA != 180 {
		t.Errorf("MoonRA = %v, want 180", session.MoonRA)
	}

	t.Run("bad date is invalid", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/sessions/", map[string]interface{}{
			"name": "bad", "start_date": "15/01/2026",
		})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestObservationEndpointValidatesReferences(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/observations/", map[string]interface{}{
		"session_name":    "nope",
		"object_name":     "nope",
		"camera_name":     "nope",
		"telescope_name":  "nope",
		"filter_name":     "nope",
		"image_count":     10,
		"exposure_length": 300,
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestSettingsEndpoints(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/settings/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var cfg settings.Settings
	if err := json.Unmarshal(rec.Body.Bytes(), &cfg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.MoonIlluminationWarningPercent != settings.DefaultMoonIlluminationWarning {
		t.Errorf("default illumination warning = %v", cfg.MoonIlluminationWarningPercent)
	}

	cfg.Latitude = 42.36
	cfg.Longitude = -71.06
	rec = doJSON(t, r, http.MethodPut, "/api/settings/", cfg)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d, body %s", rec.Code, rec.Body)
	}

	t.Run("out of range values are invalid", func(t *testing.T) {
		bad := cfg
		bad.Latitude = 123
		rec := doJSON(t, r, http.MethodPut, "/api/settings/", bad)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}
