package reporting

import (
	"sort"

	"github.com/vfg2006/sales-report-api/internal/domain"
)

// RankProducts ordena a tabela de KPIs pela métrica escolhida em ordem
// decrescente e trunca para os N primeiros. Empates na métrica são resolvidos
// por nome de produto ascendente, então o ranking é determinístico. TopN acima
// do número de produtos disponíveis é ajustado para o total disponível.
func RankProducts(kpis []domain.ProductKPI, config domain.RankingConfig) ([]domain.ProductKPI, error) {
	if config.TopN < 1 {
		return nil, ErrInvalidRankingConfig
	}

	ranked := make([]domain.ProductKPI, len(kpis))
	copy(ranked, kpis)

	sort.Slice(ranked, func(i, j int) bool {
		a := metricValue(ranked[i], config.Metric)
		b := metricValue(ranked[j], config.Metric)
		if a != b {
			return a > b
		}
		return ranked[i].Product < ranked[j].Product
	})

	topN := config.TopN
	if topN > len(ranked) {
		topN = len(ranked)
	}

	return ranked[:topN], nil
}

func metricValue(kpi domain.ProductKPI, metric domain.RankingMetric) float64 {
	if metric == domain.MetricQuantity {
		return float64(kpi.TotalQuantity)
	}
	return kpi.TotalRevenue
}
