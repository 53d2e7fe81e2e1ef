package handler

import (
	"net/http"

	"github.com/vfg2006/sales-report-api/internal/api/handler/router"
	"github.com/vfg2006/sales-report-api/internal/scheduler"
	"github.com/vfg2006/sales-report-api/internal/usecases/dataset"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
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

func SalesReports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/sales",
			Method:  http.MethodGet,
			Handler: GetSalesReport(service),
		},
		{
			Path:    "/v1/reports/sales/kpis",
			Method:  http.MethodGet,
			Handler: GetProductKPIs(service),
		},
		{
			Path:    "/v1/reports/sales/revenue-series",
			Method:  http.MethodGet,
			Handler: GetRevenueSeries(service),
		},
		{
			Path:    "/v1/reports/sales/ranking",
			Method:  http.MethodGet,
			Handler: GetProductRanking(service),
		},
		{
			Path:    "/v1/reports/sales/leader-share",
			Method:  http.MethodGet,
			Handler: GetLeaderShare(service),
		},
	}
}

func Dataset(service *dataset.Service, refreshService *scheduler.DatasetRefreshService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset/meta",
			Method:  http.MethodGet,
			Handler: GetDatasetMeta(service),
		},
		{
			Path:    "/v1/dataset/refresh",
			Method:  http.MethodPost,
			Handler: RefreshDataset(refreshService),
		},
		{
			Path:    "/v1/dataset/refresh/status",
			Method:  http.MethodGet,
			Handler: GetRefreshStatus(refreshService),
		},
	}
}
