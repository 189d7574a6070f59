package handler

import (
	"net/http"
	"time"

	"github.com/attraveiculos/visitor-identity-api/internal/api/handler/router"
	"github.com/attraveiculos/visitor-identity-api/internal/config"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/converting"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/enriching"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/identifying"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/recovering"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/reporting"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/tracking"
	"github.com/attraveiculos/visitor-identity-api/pkg/middleware"
)

const rateLimitWindow = time.Minute

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

// Tracking agrupa as rotas públicas chamadas pelo script do site
func Tracking(
	cfg *config.Config,
	limiter middleware.Limiter,
	tracker tracking.Tracker,
	resolver identifying.Resolver,
	gate enriching.Gate,
	dispatcher converting.Dispatcher,
	recoverer recovering.Recoverer,
) []router.Route {
	api := []func(http.Handler) http.Handler{
		middleware.RateLimit(limiter, middleware.PresetAPI, cfg.RateLimit.APIPerMinute, rateLimitWindow),
	}
	form := []func(http.Handler) http.Handler{
		middleware.RateLimit(limiter, middleware.PresetForm, cfg.RateLimit.FormPerMinute, rateLimitWindow),
	}

	return []router.Route{
		{
			Path:        "/v1/tracking/session",
			Method:      http.MethodPost,
			Handler:     StartSession(tracker),
			Middlewares: api,
		},
		{
			Path:        "/v1/tracking/pageview",
			Method:      http.MethodPost,
			Handler:     RecordPageView(tracker),
			Middlewares: api,
		},
		{
			Path:        "/v1/tracking/page-time",
			Method:      http.MethodPost,
			Handler:     RecordPageTime(tracker),
			Middlewares: api,
		},
		{
			Path:        "/v1/tracking/interaction",
			Method:      http.MethodPost,
			Handler:     RecordInteraction(tracker),
			Middlewares: api,
		},
		{
			Path:        "/v1/tracking/identify",
			Method:      http.MethodPost,
			Handler:     Identify(resolver),
			Middlewares: form,
		},
		{
			Path:        "/v1/tracking/enrich",
			Method:      http.MethodPost,
			Handler:     CheckEnrichment(gate),
			Middlewares: api,
		},
		{
			Path:        "/v1/tracking/conversion",
			Method:      http.MethodPost,
			Handler:     RecordConversion(dispatcher),
			Middlewares: api,
		},
		{
			Path:        "/v1/tracking/abandoned",
			Method:      http.MethodPost,
			Handler:     Abandoned(recoverer),
			Middlewares: form,
		},
	}
}

func Webhooks(cfg *config.Config, ingestor enriching.Ingestor) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/webhooks/enrichment",
			Method:  http.MethodPost,
			Handler: EnrichmentWebhook(ingestor),
			Middlewares: []func(http.Handler) http.Handler{
				middleware.WebhookSecret(cfg.N8N.WebhookSecret, cfg.IsProduction()),
			},
		},
	}
}

// AdminVisitors exige token do CRM com role admin
func AdminVisitors(validator middleware.TokenValidator, reporter reporting.Reporter) []router.Route {
	admin := adminOnly(validator)

	return []router.Route{
		{
			Path:        "/v1/admin/visitors",
			Method:      http.MethodGet,
			Handler:     ListVisitors(reporter),
			Middlewares: admin,
		},
		{
			Path:        "/v1/admin/visitors/metrics",
			Method:      http.MethodGet,
			Handler:     VisitorMetrics(reporter),
			Middlewares: admin,
		},
	}
}

func CronJobs(validator middleware.TokenValidator, job RedeliveryJob) []router.Route {
	admin := adminOnly(validator)

	return []router.Route{
		{
			Path:        "/v1/admin/cron/conversion-redelivery/run",
			Method:      http.MethodPost,
			Handler:     RunRedelivery(job),
			Middlewares: admin,
		},
		{
			Path:        "/v1/admin/cron/conversion-redelivery",
			Method:      http.MethodGet,
			Handler:     RedeliveryStatus(job),
			Middlewares: admin,
		},
	}
}

func adminOnly(validator middleware.TokenValidator) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.AuthMiddleware(validator),
		middleware.AdminOnly(),
	}
}
