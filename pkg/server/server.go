package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	analyticshandlers "github.com/de-tools/churn-atlas/pkg/handlers/analytics"
	authhandlers "github.com/de-tools/churn-atlas/pkg/handlers/auth"
	churnatlasmiddleware "github.com/de-tools/churn-atlas/pkg/server/middleware"
	authservice "github.com/de-tools/churn-atlas/pkg/services/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Dataset analyticshandlers.DatasetStore
	Auth    *authservice.Service
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	analyticsHandler := analyticshandlers.NewHandler(config.Dependencies.Dataset)
	authHandler := authhandlers.NewHandler(config.Dependencies.Auth)

	router := chi.NewRouter()

	router.Use(churnatlasmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health)

		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(churnatlasmiddleware.Auth(config.Dependencies.Auth))

			r.Get("/auth/me", authHandler.Me)

			r.Get("/dashboard/kpis", analyticsHandler.GetKPIs)
			r.Get("/dashboard/churn-trends", analyticsHandler.GetChurnTrends)
			r.Get("/dashboard/churn-reasons", analyticsHandler.GetChurnReasons)
			r.Get("/dashboard/revenue-by-segment", analyticsHandler.GetRevenueBySegment)
			r.Get("/dashboard/retention-by-offer", analyticsHandler.GetRetentionByOffer)

			r.Get("/segments", analyticsHandler.ListSegments)
			r.Post("/churn/predict", analyticsHandler.PredictChurn)

			r.Get("/analytics/overview", analyticsHandler.GetOverview)
			r.Get("/analytics/trends", analyticsHandler.GetMonthlyTrends)

			r.Get("/reports/document", analyticsHandler.GetReport)
		})
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
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
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
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
