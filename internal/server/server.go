// Package server wires the reference Postgrest-style backend: routes,
// middleware chain and the HTTP listener lifecycle.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/iudanet/depotsync/internal/middleware"
	"github.com/iudanet/depotsync/internal/server/handlers"
	"github.com/iudanet/depotsync/internal/server/storage"
	"github.com/iudanet/depotsync/pkg/api"
)

const shutdownTimeout = 5 * time.Second

// Config параметры HTTP сервера
type Config struct {
	Addr      string
	Version   string
	RateLimit float64 // запросов в секунду на клиента
	RateBurst int
}

// Server is the reference remote backend
type Server struct {
	httpServer *http.Server
	limiter    *middleware.RateLimiter
	logger     *slog.Logger
}

// New builds the server around rows and verifier.
func New(cfg Config, rows storage.RowStorage, verifier middleware.Verifier, logger *slog.Logger) *Server {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 20
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 40
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, 10*time.Minute, logger)

	s := &Server{
		limiter: limiter,
		logger:  logger,
	}
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.routes(cfg, rows, verifier),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the root handler, useful with httptest
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) routes(cfg Config, rows storage.RowStorage, verifier middleware.Verifier) http.Handler {
	rest := handlers.NewRESTHandler(s.logger, rows)
	health := handlers.NewHealthHandler(s.logger, rows, cfg.Version)

	// /rest/v1 требует api key
	restMux := http.NewServeMux()
	restMux.HandleFunc("GET "+api.RESTPrefix+"/{$}", rest.Root)
	restMux.HandleFunc("GET "+api.RESTPrefix+"/{table}", rest.Select)
	restMux.HandleFunc("POST "+api.RESTPrefix+"/{table}", rest.Upsert)
	restMux.HandleFunc("PATCH "+api.RESTPrefix+"/{table}", rest.Update)
	restMux.HandleFunc("DELETE "+api.RESTPrefix+"/{table}", rest.Delete)

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+api.BridgePrefix+"/health", health.Health)
	mux.Handle(api.RESTPrefix+"/", chain(restMux,
		middleware.RateLimit(s.limiter, s.logger),
		middleware.APIKey(s.logger, verifier),
	))

	return chain(mux,
		middleware.Recovery(s.logger),
		middleware.Logging(s.logger, api.BridgePrefix+"/health"),
	)
}

// chain применяет middleware так, что первый в списке выполняется первым
func chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Run listens on cfg.Addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run over an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.limiter.Stop()

	var (
		wg       conc.WaitGroup
		serveErr error
	)
	wg.Go(func() {
		s.logger.Info("Server listening", "addr", ln.Addr().String())
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr = err
		}
	})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
	case <-done:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	s.logger.Info("Server shutting down")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-done
	return serveErr
}
