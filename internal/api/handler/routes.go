package handler

import (
	"net/http"

	"github.com/acis05/Pbiacis/internal/api/handler/router"
	"github.com/acis05/Pbiacis/internal/usecases/authenticating"
	"github.com/acis05/Pbiacis/internal/usecases/importing"
	"github.com/acis05/Pbiacis/internal/usecases/insighting"
	"github.com/acis05/Pbiacis/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func AccessRoutes(service authenticating.Authenticator, cookieName string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/access",
			Method:  http.MethodPost,
			Handler: Access(service, cookieName),
		},
		{
			Path:    "/v1/access",
			Method:  http.MethodDelete,
			Handler: Logout(cookieName),
		},
	}
}

func Sales(importer importing.Importer, insighter insighting.Insighter, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/upload",
			Method:  http.MethodPost,
			Handler: UploadSales(importer, maxUploadBytes),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(insighter),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/rankings/:dimension",
			Method:  http.MethodGet,
			Handler: GetRanking(service),
		},
	}
}

func AccessCodes(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/access-codes",
			Method:      http.MethodGet,
			Handler:     ListAccessCodes(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(service)},
		},
		{
			Path:        "/v1/admin/access-codes",
			Method:      http.MethodPost,
			Handler:     SaveAccessCode(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(service)},
		},
	}
}

func CronJobs(services CronJobServices, authService authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(authService)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(authService)},
		},
	}
}
