package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/certproof-io/btc-anchor-connector/config"
	"github.com/certproof-io/btc-anchor-connector/internal/types"
	"github.com/certproof-io/btc-anchor-connector/pkg/log"
	"github.com/pkg/errors"
)

// Server exposes transaction lookups over HTTP on top of a ready connector.
type Server struct {
	srv    *http.Server
	logger log.Logger
}

// New builds the lookup http service. A nil config gets the defaults.
func New(cfg *config.HTTPConfig, conn types.TxConnector, logger log.Logger) *Server {
	if cfg == nil {
		cfg = config.DefaultHTTPConfig()
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &Server{
		srv: &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           NewRouter(cfg, conn, logger),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Run serves until the context is canceled or a termination signal arrives,
// then drains in-flight requests before returning.
func (s *Server) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		s.logger.Infow("shutting down the http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Errorw("failed to shutdown http server", "err", err)
		}
	}()

	s.logger.Infow("starting http server", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
