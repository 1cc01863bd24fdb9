// Package server hosts the tips fragment over HTTP.
//
// Routes:
//
//	GET /                      standalone page
//	GET /fragment/tips         bare fragment for hosts that embed it
//	GET {static}tips.<hash>.css compiled stylesheet
//	GET /styles.json           logical to generated class map
//	GET /healthz               liveness probe
//	GET /metrics               Prometheus exposition (when enabled)
//	GET /mount                 websocket mount for live hosts
package server

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/tips/internal/errors"
	"github.com/vango-dev/tips/internal/site"
	"github.com/vango-dev/tips/pkg/middleware"
)

// Options configures the server.
type Options struct {
	// Addr is the listen address used by Run.
	Addr string

	// Dev disables caching.
	Dev bool

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration

	// PingInterval is how often mounted hosts are pinged (default 30s).
	PingInterval time.Duration

	Logger *slog.Logger

	// Metrics enables request metrics and /metrics when set.
	Metrics *middleware.Metrics

	// Gatherer backs /metrics (default prometheus.DefaultGatherer).
	Gatherer prometheus.Gatherer

	// Tracing enables a span per request.
	Tracing        bool
	TracerName     string
	TracerProvider trace.TracerProvider
}

// Server serves a built site.
type Server struct {
	site     *site.Site
	opts     Options
	logger   *slog.Logger
	router   chi.Router
	upgrader websocket.Upgrader

	// closing is closed when shutdown starts so mounts can unmount.
	// mountMu orders mounts.Add against that close: once closed is set
	// no mount is admitted.
	mountMu sync.Mutex
	closed  bool
	closing chan struct{}
	mounts  sync.WaitGroup
}

// New creates a server for s.
func New(s *site.Site, opts Options) *Server {
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	if opts.PingInterval == 0 {
		opts.PingInterval = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	srv := &Server{
		site:   s,
		opts:   opts,
		logger: opts.Logger.With("component", "server"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		closing: make(chan struct{}),
	}
	srv.router = srv.routes()
	return srv
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(s.opts.Logger))
	r.Use(chimw.Recoverer)
	if s.opts.Metrics != nil {
		r.Use(s.opts.Metrics.Handler)
	}
	if s.opts.Tracing {
		r.Use(middleware.OpenTelemetry(
			middleware.WithTracerName(s.opts.TracerName),
			middleware.WithTracerProvider(s.opts.TracerProvider),
			middleware.WithFilter(func(r *http.Request) bool {
				return r.URL.Path != "/healthz" && r.URL.Path != "/metrics"
			}),
		))
	}

	r.Get("/", s.handlePage)
	r.Get("/fragment/tips", s.handleFragment)
	r.Get(s.site.StaticPrefix()+"{file}", s.handleStylesheet)
	r.Get("/"+site.ClassMapName, s.handleClassMap)
	r.Get("/healthz", s.handleHealth)
	r.Get("/mount", s.handleMount)
	if s.opts.Metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on Options.Addr and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return errors.New("E130").WithDetail("listen " + s.opts.Addr).Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully:
// mounted hosts are told to go away and in-flight requests may finish
// within the shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String(), "dev", s.opts.Dev)
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.New("E130").Wrap(err)

	case <-ctx.Done():
		s.logger.Info("shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	s.beginShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("shutdown error", "error", err)
		return errors.New("E130").WithDetail("shutdown").Wrap(err)
	}

	// Hijacked websocket connections are not tracked by http.Server
	waited := make(chan struct{})
	go func() {
		s.mounts.Wait()
		close(waited)
	}()
	select {
	case <-waited:
	case <-shutdownCtx.Done():
		s.logger.Warn("mounts still open after shutdown timeout")
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// beginShutdown signals open mounts to unmount and stops admitting new ones.
func (s *Server) beginShutdown() {
	s.mountMu.Lock()
	defer s.mountMu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.closing)
	}
}

// admitMount registers a mount with the shutdown wait group. It reports
// false once shutdown has begun.
func (s *Server) admitMount() bool {
	s.mountMu.Lock()
	defer s.mountMu.Unlock()

	if s.closed {
		return false
	}
	s.mounts.Add(1)
	return true
}
