package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	handlers "github.com/de-tools/repair-atlas/pkg/handlers/photo"
	repairatlasmiddleware "github.com/de-tools/repair-atlas/pkg/server/middleware"
	"github.com/de-tools/repair-atlas/pkg/services/session"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server

	shutdownTimeout time.Duration
}

type Dependencies struct {
	Photos     *session.Registry
	Resolver   handlers.AnalysisResolver
	Categories handlers.CategoryLister
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	photoHandler := handlers.NewHandler(
		config.Dependencies.Photos,
		config.Dependencies.Resolver,
		config.Dependencies.Categories,
	)

	router := chi.NewRouter()

	router.Use(repairatlasmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/photos", photoHandler.ProcessPhoto)
		r.Get("/photos", photoHandler.ListPhotos)
		r.Get("/photos/{photo}", photoHandler.GetPhoto)
		r.Delete("/photos/{photo}", photoHandler.DeletePhoto)
		r.Get("/portfolio", photoHandler.GetPortfolio)
		r.Get("/portfolio/horizons/{year}", photoHandler.GetHorizonDrillDown)
		r.Get("/portfolio/systems/{system}", photoHandler.GetSystemDrillDown)
		r.Get("/catalog/categories", photoHandler.ListCategories)
	})

	timeout := config.ShutdownTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

// Router exposes the configured mux, mainly for tests.
func (w *WebAPI) Router() http.Handler {
	return w.router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
