package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/miragechat/identity/internal/logging"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves the /metrics scrape endpoint.
type Server struct {
	address string
	metrics *Metrics
	logger  logging.Logger
}

func NewServer(address string, m *Metrics, l logging.Logger) *Server {
	return &Server{
		address: address,
		metrics: m,
		logger:  l.With("module", "metrics_server"),
	}
}

func (s *Server) Run(ctx context.Context) error {

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))

	srv := &http.Server{Addr: s.address, Handler: mux}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping metrics server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting metrics server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
