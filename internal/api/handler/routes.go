package handler

import (
	"net/http"

	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/infrastructure/repository"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/api/handler/router"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/scheduler"
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

// Runs exposes the pipeline's bookkeeping and manual controls
func Runs(
	runRepo repository.ETLRunRepository,
	carSalesRepo repository.CarSalesRepository,
	syncService *scheduler.ETLSyncService,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/runs/latest",
			Method:  http.MethodGet,
			Handler: GetLatestRun(runRepo),
		},
		{
			Path:    "/v1/runs",
			Method:  http.MethodPost,
			Handler: TriggerRun(syncService),
		},
		{
			Path:    "/v1/runs/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(syncService, carSalesRepo),
		},
	}
}
