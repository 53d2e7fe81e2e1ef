package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa a resposta; falha de serialização vira erro interno
func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("handler: falha ao serializar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
	}
}

// writeReportError traduz os erros do pipeline para o envelope de erro da
// API. Todos são recuperáveis pela camada de apresentação: "sem dados" não é
// um crash, e nenhum agregado parcial acompanha um erro.
func writeReportError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, reporting.ErrEmptyResult):
		apiErrors.WriteError(w, apiErrors.ErrNoReportData, "Nenhum registro corresponde aos filtros informados", nil)
	case errors.Is(err, reporting.ErrInvalidRankingConfig):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRankingConfig, "top_n deve ser maior ou igual a 1", nil)
	case errors.Is(err, reporting.ErrZeroRevenue):
		apiErrors.WriteError(w, apiErrors.ErrZeroRevenue, "Receita total é zero para os filtros informados", nil)
	default:
		logger.WithError(err).Error("handler: erro inesperado no pipeline de relatórios")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório", nil)
	}
}
