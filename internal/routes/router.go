package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"devops-info/infoservice/internal/api"
	"devops-info/infoservice/internal/constants"
	"devops-info/infoservice/internal/logging"
	"devops-info/infoservice/internal/metrics"
	"devops-info/infoservice/internal/middleware"
)

// Options carries the transport settings that shape the middleware stack.
// None of them change response bodies of the routes themselves.
type Options struct {
	// CORSOrigins lists allowed origins. Empty disables CORS handling.
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
	TrustProxy     bool
}

type route struct {
	method  string
	pattern string
	handler http.Handler
}

// RegisterRoutes builds the router. Every (method, path) pair served is
// listed in the route table below; everything else falls through to the
// JSON 404/405 handlers.
func RegisterRoutes(deps *api.Dependencies, opts Options) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry(deps.Clock.UptimeSeconds)

	// global middleware
	if opts.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.Logging)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.Recoverer)
	r.Use(chimiddleware.GetHead)

	// cors treats an empty AllowedOrigins as "*".
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.CORSOrigins,
			AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300, // Maximum value not ignored by any of major browsers
		}))
	} else {
		logging.Info("CORS disabled, no allowed origins configured")
	}

	if opts.RateLimitRPS > 0 {
		r.Use(middleware.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst).Middleware)
		logging.Info("Rate limiting enabled", "rps", opts.RateLimitRPS, "burst", opts.RateLimitBurst)
	}

	handlers := api.NewHandlers(deps)

	table := []route{
		{http.MethodGet, constants.PathIndex, handlers.GetInfo()},
		{http.MethodGet, constants.PathHealth, handlers.HealthCheck()},
		{http.MethodGet, constants.PathMetrics, metricsReg.Handler()},
	}
	for _, rt := range table {
		r.Method(rt.method, rt.pattern, rt.handler)
	}

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	logging.Info("Router initialized", "routes", len(table))
	return r
}
