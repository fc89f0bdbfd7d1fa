package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/indicators-dashboard/internal/domain"
	"github.com/vfg2006/indicators-dashboard/internal/usecases/dataset"
	"github.com/vfg2006/indicators-dashboard/pkg/apiErrors"
	"github.com/vfg2006/indicators-dashboard/pkg/log"
)

// DatasetRefresher é a parte do agendador usada pelos handlers
type DatasetRefresher interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

type datasetResponse struct {
	domain.DatasetSummary
	Refresh map[string]any `json:"refresh"`
}

func GetDataset(datasets dataset.DatasetService, refresher DatasetRefresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, datasetResponse{
			DatasetSummary: datasets.Current().Summary(),
			Refresh:        refresher.GetStatus(),
		})
	})
}

// RefreshDataset dispara a reconstrução em background e responde 202
func RefreshDataset(refresher DatasetRefresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		// A reconstrução sobrevive ao fim da requisição
		if !refresher.TriggerManualSync(context.WithoutCancel(r.Context())) {
			apiErrors.WriteError(w, apiErrors.ErrRefreshRunning, "dataset refresh already running", nil)
			return
		}

		logger.Info("dataset: manual refresh triggered")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "dataset refresh started",
		})
	})
}
