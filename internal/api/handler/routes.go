package handler

import (
	"net/http"

	"github.com/vfg2006/indicators-dashboard/infrastructure/charting"
	"github.com/vfg2006/indicators-dashboard/internal/api/handler/router"
	"github.com/vfg2006/indicators-dashboard/internal/usecases/dataset"
	"github.com/vfg2006/indicators-dashboard/internal/usecases/rendering"
	"github.com/vfg2006/indicators-dashboard/pkg/middleware"
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

func Dashboard(renderer rendering.Renderer) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(renderer),
		},
	}
}

func Indicators(renderer rendering.Renderer, images charting.ImageRenderer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/indicators",
			Method:  http.MethodGet,
			Handler: ListIndicators(renderer),
		},
		{
			Path:        "/v1/render",
			Method:      http.MethodGet,
			Handler:     GetRender(renderer),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoStore()},
		},
		{
			Path:        "/v1/chart.png",
			Method:      http.MethodGet,
			Handler:     GetChartImage(renderer, images),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoStore()},
		},
	}
}

func Dataset(datasets dataset.DatasetService, refresher DatasetRefresher) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dataset",
			Method:      http.MethodGet,
			Handler:     GetDataset(datasets, refresher),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoStore()},
		},
		{
			Path:    "/v1/dataset/refresh",
			Method:  http.MethodPost,
			Handler: RefreshDataset(refresher),
		},
	}
}
