package handler

import (
	"net/http"

	"github.com/vfg2006/sales-report-api/internal/scheduler"
	"github.com/vfg2006/sales-report-api/internal/usecases/dataset"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

// GetDatasetMeta retorna os metadados do snapshot corrente: limites de data e
// domínios de produto/segmento para a montagem dos widgets de filtro
func GetDatasetMeta(service *dataset.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		meta := service.Meta()
		if meta.SnapshotID == "" {
			apiErrors.WriteError(w, apiErrors.ErrDatasetNotReady, "Dataset ainda não carregado", nil)
			return
		}

		writeJSON(w, logger, meta)
	})
}

// RefreshDataset dispara uma recarga manual do dataset, fora do agendamento
func RefreshDataset(service *scheduler.DatasetRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("dataset: recarga manual solicitada")
		service.TriggerManualRefresh()

		// O cabeçalho precisa ser definido antes de WriteHeader, que envia
		// os cabeçalhos ao cliente
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		writeJSON(w, logger, service.Status())
	})
}

// GetRefreshStatus retorna o estado do agendador de recarga do dataset
func GetRefreshStatus(service *scheduler.DatasetRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		writeJSON(w, logger, service.Status())
	})
}
