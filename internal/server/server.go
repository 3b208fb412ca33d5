package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	adminapp "github.com/infoloom/infoloom/api/internal/admin/application"
	"github.com/infoloom/infoloom/api/internal/config"
	"github.com/infoloom/infoloom/api/internal/infrastructure/dataset"
	mongodoc "github.com/infoloom/infoloom/api/internal/infrastructure/mongo"
	adminhttp "github.com/infoloom/infoloom/api/internal/interfaces/http/admin"
	"github.com/infoloom/infoloom/api/internal/interfaces/http/common"
	publichttp "github.com/infoloom/infoloom/api/internal/interfaces/http/public"
	"github.com/infoloom/infoloom/api/internal/metrics"
	publicapp "github.com/infoloom/infoloom/api/internal/public/application"
)

// Database is the part of the Mongo connector the server needs for health and shutdown.
type Database interface {
	mongodoc.ClientProvider
	Ping(ctx context.Context) error
	Disconnect(ctx context.Context) error
}

// Server owns the HTTP lifecycle and is the composition root wiring repositories,
// application services and handlers together.
type Server struct {
	logger         *zap.Logger
	db             Database
	addr           string
	allowedOrigins []string
	registry       *prometheus.Registry
	metrics        *metrics.Metrics
	publicHandler  *publichttp.Handler
	adminHandler   *adminhttp.Handler
}

// New assembles services and handlers. The database is not contacted until the
// first request that needs it.
func New(cfg config.Config, logger *zap.Logger, db Database) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	responses := mongodoc.NewFormResponseRepository(db, cfg.MongoDatabase, cfg.FormResponseCollection)

	srv := &Server{
		logger:         logger,
		db:             db,
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
		registry:       registry,
		metrics:        m,
	}
	srv.publicHandler = publichttp.NewHandler(publichttp.Config{
		Logger:          logger.Named("public"),
		Courses:         publicapp.NewCourseQueryService(dataset.NewFileRepository(cfg.DataFile)),
		Forms:           publicapp.NewFormCommandService(responses, nil),
		HTTPClient:      &http.Client{Timeout: cfg.ChatTimeout},
		ChatUpstreamURL: cfg.ChatUpstreamURL,
		Metrics:         m,
	})
	if cfg.AdminEnabled() {
		srv.adminHandler = adminhttp.NewHandler(adminhttp.Config{
			Logger:        logger.Named("admin"),
			FormResponses: adminapp.NewFormResponseService(responses),
			JWTSecret:     cfg.AdminJWTSecret,
			JWTIssuer:     cfg.AdminJWTIssuer,
		})
	}
	return srv
}

// Router builds the chi router with middleware and every mounted route.
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(s.logger))
	router.Use(middleware.Recoverer)
	router.Use(s.metrics.Middleware)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	router.Route("/api", s.publicHandler.Register)
	if s.adminHandler != nil {
		router.Route("/admin", s.adminHandler.Register)
	} else {
		s.logger.Info("admin routes disabled: ADMIN_JWT_SECRET not set")
	}
	return router
}

// Run starts the HTTP server and blocks until it stops or a signal arrives.
func (s *Server) Run() error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", s.addr))
		errChan <- httpServer.ListenAndServe()
	}()

	return s.waitForShutdown(httpServer, errChan)
}

// withCORS adds CORS headers for allowed origins and answers preflight requests.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// requestLogger is chi's access log written through zap.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("requestId", middleware.GetReqID(r.Context())),
					zap.String("remote", r.RemoteAddr),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// healthHandler reports database reachability only.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := s.db.Ping(ctx); err != nil {
			common.WriteJSON(s.logger, w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		common.WriteJSON(s.logger, w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// waitForShutdown watches ListenAndServe and OS signals, then drains and disconnects.
func (s *Server) waitForShutdown(httpServer *http.Server, errChan <-chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var runErr error
	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	case sig := <-sigChan:
		s.logger.Info("shutdown signal received", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			s.logger.Warn("HTTP shutdown failed", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.db.Disconnect(ctx); err != nil {
		s.logger.Warn("MongoDB disconnect failed", zap.Error(err))
	}
	return runErr
}
