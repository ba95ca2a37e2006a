package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"spesegen/internal/cache"
	applog "spesegen/internal/log"
	"spesegen/internal/middleware/ratelimit"
	"spesegen/internal/middleware/security"
	"spesegen/internal/services"
)

// cacheCleanupInterval is how often expired report results are swept.
const cacheCleanupInterval = time.Minute

type Server struct {
	http.Server
	dashboard    *services.Dashboard
	limiter      *ratelimit.Limiter
	cacheManager *cache.Manager
	shutdownOnce sync.Once
}

// NewServer configures routes, returning a ready-to-run http.Server.
// reportCache may be nil.
func NewServer(addr string, d *services.Dashboard, reportCache *cache.ReportCache, logger *applog.Logger) *Server {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}

	s := &Server{
		Server: http.Server{
			Addr:              addr,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		dashboard:    d,
		limiter:      ratelimit.NewLimiter(ratelimit.DefaultConfig()),
		cacheManager: cache.NewManager(),
	}

	if reportCache != nil && reportCache.Enabled() {
		s.cacheManager.Register(reportCache)
		s.cacheManager.StartCleanup(cacheCleanupInterval)
	}

	s.Handler = s.routes(logger.WithComponent(applog.ComponentHTTP))
	return s
}

func (s *Server) routes(logger *applog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(applog.Middleware(logger))
	r.Use(applog.RequestIDMiddleware)
	r.Use(applog.AccessLog)
	r.Use(middleware.Recoverer)
	r.Use(security.NewHeadersMiddleware(security.DefaultHeadersConfig()).Middleware)

	r.Get("/healthz", handleHealth)

	onLimit := func(w http.ResponseWriter, req *http.Request) {
		NewJSONResponse().
			Status(http.StatusTooManyRequests).
			Body(ErrorBody{
				Error:     "Rate limit exceeded. Please try again later.",
				Kind:      KindRateLimited,
				RequestID: applog.RequestID(req.Context()),
			}).
			Write(w)
	}

	r.Route("/api", func(r chi.Router) {
		r.With(s.limiter.Middleware(nil, onLimit)).Post("/expenses/generate", s.handleGenerate)
		r.Get("/expenses", s.handleListExpenses)
		r.Get("/insights/categories", s.handleCategoryInsights)
		r.Post("/query", s.handleQuery)
		r.Get("/reports", s.handleListReports)
		r.Get("/reports/{name}", s.handleRunReport)
		r.Post("/reports/{name}/export", s.handleExportReport)
	})

	return r
}

// Shutdown gracefully shuts down the server and cleanup routines
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		s.limiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}
