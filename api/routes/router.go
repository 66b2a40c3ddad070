package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yourbrand/tours-backend/api/controllers"
	"github.com/yourbrand/tours-backend/api/middleware"
	"github.com/yourbrand/tours-backend/internal/adminauth"
	"github.com/yourbrand/tours-backend/internal/catalog"
	"github.com/yourbrand/tours-backend/internal/enquiry"
	"github.com/yourbrand/tours-backend/pkg/auth/session"
	"github.com/yourbrand/tours-backend/pkg/config"
	"github.com/yourbrand/tours-backend/pkg/logger"
	"github.com/yourbrand/tours-backend/pkg/metrics"
)

// RateLimitStore counts requests in fixed windows. The redis client satisfies it.
type RateLimitStore interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          controllers.Pinger
	Cache       controllers.Pinger
	RateLimits  RateLimitStore
	Sessions    session.SessionChecker
	Metrics     *metrics.HTTPMetrics
	Registry    *prometheus.Registry
	Catalog     catalog.Service
	Enquiries   enquiry.Service
	AdminAuth   adminauth.Service
	CORSOrigins []string
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, deps.Metrics),
		middleware.CORS(deps.CORSOrigins...),
	)

	loginPolicy := middleware.NewRateLimitPolicy(
		"login",
		cfg.RateLimit.LoginWindow,
		cfg.RateLimit.LoginIPLimit,
		0,
	)
	enquiryPolicy := middleware.NewRateLimitPolicy(
		"enquiry",
		cfg.RateLimit.EnquiryWindow,
		cfg.RateLimit.EnquiryIPLimit,
		cfg.RateLimit.EnquiryEmailLim,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Cache))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public/v1", func(r chi.Router) {
		r.Get("/destinations", controllers.DestinationList(deps.Catalog, logg))
		r.Get("/destinations/{destinationId}", controllers.DestinationDetail(deps.Catalog, logg))
		r.Get("/activities/{activityId}", controllers.ActivityDetail(deps.Catalog, logg))
		r.With(middleware.RateLimit(enquiryPolicy, deps.RateLimits, logg)).
			Post("/enquiries", controllers.EnquiryCreate(deps.Enquiries, deps.Metrics, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.With(middleware.RateLimit(loginPolicy, deps.RateLimits, logg)).
			Post("/auth/login", controllers.AdminAuthLogin(deps.AdminAuth, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.JWT, deps.Sessions, logg))

			r.Post("/auth/logout", controllers.AdminAuthLogout(deps.AdminAuth, logg))
			r.Route("/enquiries", func(r chi.Router) {
				r.Get("/", controllers.AdminEnquiryList(deps.Enquiries, logg))
				r.Get("/{enquiryId}", controllers.AdminEnquiryDetail(deps.Enquiries, logg))
				r.Patch("/{enquiryId}/status", controllers.AdminEnquiryUpdateStatus(deps.Enquiries, logg))
			})
		})
	})

	return r
}
