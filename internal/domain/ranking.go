package domain

import "fmt"

// RankingMetric é a métrica usada para ordenar o ranking de produtos
type RankingMetric string

const (
	MetricRevenue  RankingMetric = "revenue"
	MetricQuantity RankingMetric = "quantity"
)

// ParseRankingMetric valida a métrica vinda da camada de seleção
func ParseRankingMetric(value string) (RankingMetric, error) {
	switch RankingMetric(value) {
	case MetricRevenue, MetricQuantity:
		return RankingMetric(value), nil
	}
	return "", fmt.Errorf("invalid ranking metric %q, expected revenue or quantity", value)
}

// RankingConfig configura o ranking de melhores produtos. TopN acima do
// número de produtos disponíveis é ajustado silenciosamente para o total
// disponível; TopN menor que 1 é inválido.
type RankingConfig struct {
	Metric RankingMetric `json:"metric"`
	TopN   int           `json:"top_n"`
}
