package handler

import (
	"net/http"

	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

// GetSalesReport executa o pipeline completo e retorna o relatório de vendas
func GetSalesReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		opts, err := parseReportOptions(r)
		if err != nil {
			logger.WithError(err).Warn("report: parâmetros de relatório inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		report, err := service.BuildReport(opts)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"products":      report.Summary.ProductCount,
			"total_revenue": report.Summary.TotalRevenue,
		}).Info("report: relatório de vendas gerado")

		writeJSON(w, logger, report)
	})
}

// GetProductKPIs retorna a tabela de KPIs por produto
func GetProductKPIs(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		spec, err := parseFilterSpec(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		kpis, err := service.ProductKPIs(spec)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		writeJSON(w, logger, kpis)
	})
}

// GetRevenueSeries retorna a série de receita por período
func GetRevenueSeries(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		spec, err := parseFilterSpec(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		granularity, err := parseGranularity(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		series, err := service.RevenueSeries(spec, granularity)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		writeJSON(w, logger, series)
	})
}

// GetProductRanking retorna os N melhores produtos pela métrica escolhida
func GetProductRanking(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		spec, err := parseFilterSpec(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		config, err := parseRankingConfig(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		ranking, err := service.TopProducts(spec, config)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		writeJSON(w, logger, ranking)
	})
}

// leaderShareResponse é a visão de apresentação da métrica de concentração:
// aqui, e somente aqui, a participação é arredondada para uma casa decimal
type leaderShareResponse struct {
	Product string  `json:"product"`
	Revenue float64 `json:"revenue"`
	Share   float64 `json:"share"`
}

// GetLeaderShare retorna a participação do produto líder na receita total
func GetLeaderShare(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		spec, err := parseFilterSpec(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		leader, err := service.ProductLeaderShare(spec)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		writeJSON(w, logger, leaderShareResponse{
			Product: leader.Product,
			Revenue: leader.Revenue,
			Share:   utils.RoundWithOneDecimalPlace(leader.Share),
		})
	})
}

func parseReportOptions(r *http.Request) (domain.ReportOptions, error) {
	var opts domain.ReportOptions

	spec, err := parseFilterSpec(r)
	if err != nil {
		return opts, err
	}

	granularity, err := parseGranularity(r)
	if err != nil {
		return opts, err
	}

	ranking, err := parseRankingConfig(r)
	if err != nil {
		return opts, err
	}

	opts.Filters = spec
	opts.Granularity = granularity
	opts.Ranking = ranking

	return opts, nil
}
