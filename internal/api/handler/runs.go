package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/infrastructure/repository"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/scheduler"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/pkg/apiErrors"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetLatestRun returns the bookkeeping record of the most recent pipeline run
func GetLatestRun(runRepo repository.ETLRunRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run, err := runRepo.GetLatest(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Error fetching the latest run")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error fetching the latest run", nil)
			return
		}

		if run == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "no pipeline run recorded yet", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(run); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Error encoding the run response")
		}
	}
}

// TriggerRun starts a pipeline run outside the cron schedule
func TriggerRun(syncService *scheduler.ETLSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "ETL sync service not available", nil)
			return
		}

		syncService.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]string{"status": "triggered"}); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Error encoding the trigger response")
		}
	}
}

// syncStatusResponse extends the scheduler status with the destination table size
type syncStatusResponse struct {
	scheduler.ETLSyncStatus
	DestinationRows *int `json:"destination_rows,omitempty"`
}

// GetSyncStatus reports the scheduler state and how many rows the destination
// table currently holds
func GetSyncStatus(syncService *scheduler.ETLSyncService, carSalesRepo repository.CarSalesRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "ETL sync service not available", nil)
			return
		}

		response := syncStatusResponse{ETLSyncStatus: syncService.Status()}

		count, err := carSalesRepo.Count(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Error counting destination rows")
		} else {
			response.DestinationRows = &count
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Error encoding the status response")
		}
	}
}
