package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/autoform/pkg/middleware"
	"github.com/vango-dev/autoform/pkg/render"
	"github.com/vango-dev/autoform/pkg/schema"
	"github.com/vango-dev/autoform/pkg/source"
	"github.com/vango-dev/autoform/pkg/ui"
)

// Config configures a Server.
type Config struct {
	// Address is the listen address (default ":8080").
	Address string

	// Forms is where named schemas are loaded from. When nil, the /forms
	// routes report every schema as not found.
	Forms source.Source

	// Registry resolves components. Default: ui.Default().
	Registry *ui.Registry

	// Renderer writes HTML. Default: a compact renderer.
	Renderer *render.Renderer

	// Metrics, when set, instruments requests and should also be the
	// registry's factory.Observer.
	Metrics *middleware.Metrics

	// Gatherer serves /metrics. Default: prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	// Tracing options for the OpenTelemetry middleware.
	Tracing []middleware.OTelOption

	// CheckOrigin validates WebSocket origins. Default: SameOriginCheck.
	CheckOrigin func(r *http.Request) bool

	// MaxBodyBytes limits posted schemas (default 1 MiB).
	MaxBodyBytes int64

	// Stylesheets are linked from every full page.
	Stylesheets []string

	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration

	// Logger defaults to slog.Default().With("component", "server").
	Logger *slog.Logger
}

// DefaultConfig returns a Config with defaults filled in.
func DefaultConfig() *Config {
	return &Config{
		Address:           ":8080",
		Gatherer:          prometheus.DefaultGatherer,
		CheckOrigin:       SameOriginCheck,
		MaxBodyBytes:      1 << 20,
		ReadHeaderTimeout: 10 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// Server is the HTTP preview server.
type Server struct {
	config   *Config
	registry *ui.Registry
	builder  *schema.Builder
	renderer *render.Renderer
	upgrader websocket.Upgrader
	router   chi.Router
	logger   *slog.Logger
}

// New creates a Server. A nil config uses DefaultConfig.
func New(config *Config) *Server {
	defaults := DefaultConfig()
	if config == nil {
		config = defaults
	}
	if config.Address == "" {
		config.Address = defaults.Address
	}
	if config.Gatherer == nil {
		config.Gatherer = defaults.Gatherer
	}
	if config.CheckOrigin == nil {
		config.CheckOrigin = defaults.CheckOrigin
	}
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = defaults.MaxBodyBytes
	}
	if config.ReadHeaderTimeout == 0 {
		config.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = defaults.ShutdownTimeout
	}

	registry := config.Registry
	if registry == nil {
		registry = ui.Default()
	}
	renderer := config.Renderer
	if renderer == nil {
		renderer = render.NewRenderer(render.RendererConfig{})
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default().With("component", "server")
	}

	s := &Server{
		config:   config,
		registry: registry,
		builder:  schema.NewBuilder(registry),
		renderer: renderer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     config.CheckOrigin,
		},
		logger: logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(s.config.Metrics.Handler)
	r.Use(middleware.Tracing(s.config.Tracing...))

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))

	r.Get("/forms", s.handleListForms)
	r.Get("/forms/{name}", s.handleFormPage)
	r.Post("/forms/{name}", s.handleFormSubmit)
	r.Post("/render", s.handleRender)
	r.Get("/components", s.handleComponents)
	r.Get("/ws/preview", s.handlePreview)
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the server's router for mounting under another mux.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Registry returns the component registry the server renders with.
func (s *Server) Registry() *ui.Registry {
	return s.registry
}

// Address returns the configured listen address.
func (s *Server) Address() string {
	return s.config.Address
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

// SameOriginCheck accepts WebSocket upgrades without an Origin header or
// whose Origin host matches the request host.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return r.Host != "" && u.Host == r.Host
}
