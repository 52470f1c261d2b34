package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/feedbacklink-io/feedbacklink-backend/api/controllers"
	"github.com/feedbacklink-io/feedbacklink-backend/api/middleware"
	authsvc "github.com/feedbacklink-io/feedbacklink-backend/internal/auth"
	feedbacksvc "github.com/feedbacklink-io/feedbacklink-backend/internal/feedback"
	teamsvc "github.com/feedbacklink-io/feedbacklink-backend/internal/team"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/auth/session"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/config"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/enums"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/logger"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	sessionManager session.AccessSessionChecker,
	httpMetrics *metrics.HTTPMetrics,
	authService authsvc.Service,
	teamService teamsvc.Service,
	feedbackService feedbacksvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(authService, logg))
		r.Post("/logout", controllers.AuthLogout(authService, cfg.JWT, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionManager, logg))

		r.Route("/session", func(r chi.Router) {
			r.Get("/", controllers.SessionFetch(authService, logg))
			r.Put("/view", controllers.SessionSetView(authService, logg))
			r.Put("/selection", controllers.SessionSetSelection(authService, logg))
		})

		r.Route("/team", func(r chi.Router) {
			r.Get("/", controllers.TeamMembers(teamService, logg))
			r.With(middleware.RequireRole(logg, enums.RoleManager, enums.RoleAdmin)).
				Post("/employees", controllers.TeamAddEmployee(teamService, logg))
		})

		r.With(middleware.RequireRole(logg, enums.RoleAdmin)).
			Get("/users", controllers.TeamDirectory(teamService, logg))

		r.Route("/feedback", func(r chi.Router) {
			r.Get("/", controllers.FeedbackList(feedbackService, logg))
			r.With(middleware.RequireRole(logg, enums.RoleManager)).
				Post("/", controllers.FeedbackSubmit(feedbackService, logg))
			r.Post("/{feedbackId}/acknowledge", controllers.FeedbackAcknowledge(feedbackService, logg))

			r.Route("/requests", func(r chi.Router) {
				r.With(middleware.RequireRole(logg, enums.RoleEmployee)).
					Post("/", controllers.FeedbackRequestCreate(feedbackService, logg))
				r.With(middleware.RequireRole(logg, enums.RoleManager, enums.RoleAdmin)).
					Get("/", controllers.FeedbackRequestList(feedbackService, logg))
			})
		})
	})

	return r
}
