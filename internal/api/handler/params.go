package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

// parseFilterSpec monta o FilterSpec a partir da query string. Parâmetro de
// lista ausente vira slice nil (sem filtro); presente mas vazio vira slice
// vazio (seleção explícita vazia), a mesma convenção dos widgets de seleção.
func parseFilterSpec(r *http.Request) (domain.FilterSpec, error) {
	var spec domain.FilterSpec

	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return spec, errors.Wrap(err, "invalid start_date")
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return spec, errors.Wrap(err, "invalid end_date")
	}

	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return spec, errors.New("end_date is before start_date")
	}

	spec.StartDate = startDate
	spec.EndDate = endDate
	spec.Products = parseListParam(r, "products")
	spec.Segments = parseListParam(r, "segments")

	return spec, nil
}

// parseListParam devolve nil quando o parâmetro não veio na query e um slice
// (possivelmente vazio) quando veio
func parseListParam(r *http.Request, name string) []string {
	raw, ok := r.URL.Query()[name]
	if !ok {
		return nil
	}

	values := make([]string, 0)
	for _, chunk := range raw {
		for _, value := range strings.Split(chunk, ",") {
			if value = strings.TrimSpace(value); value != "" {
				values = append(values, value)
			}
		}
	}

	return values
}

func parseGranularity(r *http.Request) (domain.Granularity, error) {
	value := r.URL.Query().Get("granularity")
	if value == "" {
		return "", nil
	}

	return domain.ParseGranularity(value)
}

func parseRankingConfig(r *http.Request) (domain.RankingConfig, error) {
	var config domain.RankingConfig

	if value := r.URL.Query().Get("metric"); value != "" {
		metric, err := domain.ParseRankingMetric(value)
		if err != nil {
			return config, err
		}
		config.Metric = metric
	}

	// top_n ausente fica como zero e o serviço aplica o padrão configurado;
	// top_n enviado com valor menor que 1 é inválido já no parsing
	if value := r.URL.Query().Get("top_n"); value != "" {
		topN, err := strconv.Atoi(value)
		if err != nil {
			return config, errors.Wrap(err, "invalid top_n")
		}
		if topN < 1 {
			return config, errors.Errorf("top_n must be at least 1, got %d", topN)
		}
		config.TopN = topN
	}

	return config, nil
}
