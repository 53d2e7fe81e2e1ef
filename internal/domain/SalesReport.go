package domain

import "time"

// ReportOptions reúne a configuração completa de uma execução do pipeline:
// filtros em cascata, granularidade da série temporal e ranking.
type ReportOptions struct {
	Filters     FilterSpec    `json:"filters"`
	Granularity Granularity   `json:"granularity"`
	Ranking     RankingConfig `json:"ranking"`
}

// ConcentrationResult é a métrica de concentração: o produto líder em
// receita e sua participação percentual na receita total. Share não é
// arredondado: arredondamento é responsabilidade da camada de apresentação.
type ConcentrationResult struct {
	Product string  `json:"product"`
	Revenue float64 `json:"revenue"`
	Share   float64 `json:"share"`
}

// SalesReport é a saída completa do pipeline de filtro e agregação para uma
// configuração de filtros. Leader fica nil quando a receita total do
// subconjunto filtrado é zero.
type SalesReport struct {
	Filters       FilterSpec           `json:"filters"`
	Granularity   Granularity          `json:"granularity"`
	Summary       ReportSummary        `json:"summary"`
	KPIs          []ProductKPI         `json:"kpis"`
	RevenueSeries []PeriodPoint        `json:"revenue_series"`
	TopProducts   []ProductKPI         `json:"top_products"`
	Leader        *ConcentrationResult `json:"leader,omitempty"`
	GeneratedAt   time.Time            `json:"generated_at"`
}
