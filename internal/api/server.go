package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewRouter(handler *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(traceMiddleware)
	r.Use(metricsMiddleware)

	r.Get("/healthcheck", wrap(handler.HealthCheck))
	r.Route("/v1", func(r chi.Router) {
		r.Get("/stats", wrap(handler.Stats))
		r.Route("/participants/{id}", func(r chi.Router) {
			r.Post("/deposit", wrap(handler.Deposit))
			r.Post("/withdraw", wrap(handler.Withdraw))
			r.Post("/claim", wrap(handler.Claim))
			r.Get("/claimable", wrap(handler.Claimable))
			r.Get("/history", wrap(handler.History))
		})
	})

	return r
}

func New(cfg *config.ServerConfig, service LedgerService) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      NewRouter(NewHandler(service)),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Start blocks until the server is shut down.
func (s *Server) Start(ctx context.Context) error {
	log.Ctx(ctx).Info().Msgf("Starting server on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server on %s failed: %w", s.httpServer.Addr, err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
