package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/creator-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/creator-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/creator-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/creator-analytics-api/internal/usecases/creator"
	"github.com/vfg2006/creator-analytics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/creator-analytics-api/internal/usecases/uploading"
	"github.com/vfg2006/creator-analytics-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/disable",
			Method:      http.MethodPatch,
			Handler:     SetUserDisabled(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Creators(service creator.CreatorService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/creators",
			Method:      http.MethodPost,
			Handler:     CreateCreator(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/creators",
			Method:      http.MethodGet,
			Handler:     ListCreators(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/creators/:id",
			Method:      http.MethodGet,
			Handler:     GetCreator(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/creators/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCreator(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/creators/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCreator(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Analytics(dashboardService dashboarding.DashboardService, analyticsService analyzing.AnalyticsService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(dashboardService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/creator/:id",
			Method:      http.MethodGet,
			Handler:     GetCreatorAnalytics(analyticsService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/refresh/:id",
			Method:      http.MethodPost,
			Handler:     RefreshAnalytics(analyticsService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Upload(service uploading.UploadService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/upload/creator-image",
			Method:      http.MethodPost,
			Handler:     UploadCreatorImage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
