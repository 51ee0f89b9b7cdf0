package cmd

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/skyfell/obslogbackend/astro"
	"github.com/skyfell/obslogbackend/backup"
	"github.com/skyfell/obslogbackend/config"
	"github.com/skyfell/obslogbackend/database"
	"github.com/skyfell/obslogbackend/handlers"
	"github.com/skyfell/obslogbackend/repository"
	"github.com/skyfell/obslogbackend/settings"
	"github.com/skyfell/obslogbackend/workers"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	store := settings.NewStore(cfg.SettingsPath)
	appSettings, err := store.Load()
	if err != nil {
		log.Fatalf("FATAL: Failed to load settings from %s: %v", cfg.SettingsPath, err)
	}

	// weekly backup runs before the database is opened so the archive
	// captures a quiescent file
	backup.CheckAndCreate(appSettings.DatabasePath, time.Now())

	db, err := database.InitDB(appSettings.DatabasePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		if errors.Is(err, database.ErrDowngrade) {
			log.Fatalf("FATAL: %v (open this database with a newer build)", err)
		}
		log.Fatalf("FATAL: Schema migration failed: %v", err)
	}

	eph := astro.MeeusEphemeris{}
	scheduler := workers.NewTransitScheduler(eph)
	defer scheduler.Stop()

	objectRepo := repository.NewObjectRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	cameraRepo := repository.NewCameraRepository(db)
	telescopeRepo := repository.NewTelescopeRepository(db)
	filterTypeRepo := repository.NewFilterTypeRepository(db)
	filterRepo := repository.NewFilterRepository(db)
	observationRepo := repository.NewObservationRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	objectHandler := &handlers.ObjectHandler{Repo: objectRepo}
	sessionHandler := &handlers.SessionHandler{Repo: sessionRepo, Eph: eph}
	cameraHandler := &handlers.CameraHandler{Repo: cameraRepo}
	telescopeHandler := &handlers.TelescopeHandler{Repo: telescopeRepo}
	filterTypeHandler := &handlers.FilterTypeHandler{Repo: filterTypeRepo}
	filterHandler := &handlers.FilterHandler{Repo: filterRepo}
	observationHandler := &handlers.ObservationHandler{
		Repo:        observationRepo,
		SessionRepo: sessionRepo,
		ObjectRepo:  objectRepo,
		Settings:    store,
	}
	statsHandler := &handlers.StatsHandler{Repo: statsRepo}
	astroHandler := &handlers.AstroHandler{
		Resolver:   astro.NewResolver(),
		Scheduler:  scheduler,
		ObjectRepo: objectRepo,
		Settings:   store,
	}
	settingsHandler := &handlers.SettingsHandler{Store: store}

	r := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsHandler.Handler)

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
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", sessionHandler.GetSession)
				r.Put("/", sessionHandler.UpdateSession)
				r.Delete("/", sessionHandler.DeleteSession)
			})
		})

		r.Route("/cameras", func(r chi.Router) {
			r.Post("/", cameraHandler.CreateCamera)
			r.Get("/", cameraHandler.ListCameras)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", cameraHandler.GetCamera)
				r.Put("/", cameraHandler.UpdateCamera)
				r.Delete("/", cameraHandler.DeleteCamera)
			})
		})

		r.Route("/telescopes", func(r chi.Router) {
			r.Post("/", telescopeHandler.CreateTelescope)
			r.Get("/", telescopeHandler.ListTelescopes)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", telescopeHandler.GetTelescope)
				r.Put("/", telescopeHandler.UpdateTelescope)
				r.Delete("/", telescopeHandler.DeleteTelescope)
			})
		})

		r.Route("/filter-types", func(r chi.Router) {
			r.Post("/", filterTypeHandler.CreateFilterType)
			r.Get("/", filterTypeHandler.ListFilterTypes)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", filterTypeHandler.GetFilterType)
				r.Put("/", filterTypeHandler.UpdateFilterType)
				r.Delete("/", filterTypeHandler.DeleteFilterType)
			})
		})

		r.Route("/filters", func(r chi.Router) {
			r.Post("/", filterHandler.CreateFilter)
			r.Get("/", filterHandler.ListFilters)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", filterHandler.GetFilter)
				r.Put("/", filterHandler.UpdateFilter)
				r.Delete("/", filterHandler.DeleteFilter)
			})
		})

		r.Route("/observations", func(r chi.Router) {
			r.Post("/", observationHandler.CreateObservation)
			r.Get("/", observationHandler.ListObservations)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", observationHandler.GetObservation)
				r.Put("/", observationHandler.UpdateObservation)
				r.Delete("/", observationHandler.DeleteObservation)
			})
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/objects", statsHandler.GetObjectStats)
			r.Get("/monthly", statsHandler.GetMonthlyStats)
		})

		r.Get("/resolve", astroHandler.ResolveName)
		r.Route("/transits", func(r chi.Router) {
			r.Post("/", astroHandler.StartTransits)
			r.Get("/latest", astroHandler.GetTransits)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", settingsHandler.GetSettings)
			r.Put("/", settingsHandler.UpdateSettings)
		})
	})

	log.Printf("Using database: %s", appSettings.DatabasePath)
	log.Printf("Starting server on %s", cfg.ListenAddr)
	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("FATAL: Server failed: %v", err)
	}
}
