package reporting

import (
	"github.com/vfg2006/sales-report-api/internal/domain"
)

// RecordProvider fornece o snapshot corrente do Record Store. O pipeline
// nunca acessa estado ambiente: cada execução lê um snapshot imutável.
type RecordProvider interface {
	Records() []domain.SaleRecord
}

// Reporter expõe o pipeline de filtro e agregação sobre o dataset corrente
type Reporter interface {
	BuildReport(opts domain.ReportOptions) (*domain.SalesReport, error)
	ProductKPIs(spec domain.FilterSpec) ([]domain.ProductKPI, error)
	RevenueSeries(spec domain.FilterSpec, granularity domain.Granularity) ([]domain.PeriodPoint, error)
	TopProducts(spec domain.FilterSpec, config domain.RankingConfig) ([]domain.ProductKPI, error)
	ProductLeaderShare(spec domain.FilterSpec) (*domain.ConcentrationResult, error)
}
