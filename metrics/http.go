package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewServer returns an HTTP server exposing /metrics on addr.
func NewServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// ListenAndServe serves s until ctx is done.
func ListenAndServe(ctx context.Context, s *http.Server) {
	go func() {
		<-ctx.Done()

		if err := s.Shutdown(context.Background()); err != nil {
			logs.Warn(errors.Newf("shutting down the metrics server failed").
				WithTag("addr", s.Addr).
				Wrap(err))
		}
	}()

	logs.WithTag("addr", s.Addr).Info("starting metrics server")

	switch err := s.ListenAndServe(); err {
	case nil, http.ErrServerClosed, context.Canceled:
		logs.WithTag("addr", s.Addr).Info("stopping metrics server")

	default:
		logs.Warn(errors.Newf("metrics server stopped").
			WithTag("addr", s.Addr).
			Wrap(err))
	}
}
