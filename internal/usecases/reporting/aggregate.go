package reporting

import (
	"sort"

	"github.com/vfg2006/sales-report-api/internal/domain"
)

// AggregateKPIs agrupa os registros por produto somando quantidade e receita.
// A entrada nunca é mutada. A saída é ordenada por nome de produto ascendente
// para que chamadas repetidas com a mesma entrada produzam sempre a mesma
// tabela.
func AggregateKPIs(records []domain.SaleRecord) []domain.ProductKPI {
	byProduct := make(map[string]*domain.ProductKPI)
	for _, r := range records {
		kpi, ok := byProduct[r.Product]
		if !ok {
			kpi = &domain.ProductKPI{Product: r.Product}
			byProduct[r.Product] = kpi
		}
		kpi.TotalQuantity += r.Quantity
		kpi.TotalRevenue += r.Revenue
	}

	kpis := make([]domain.ProductKPI, 0, len(byProduct))
	for _, kpi := range byProduct {
		kpis = append(kpis, *kpi)
	}

	sort.Slice(kpis, func(i, j int) bool {
		return kpis[i].Product < kpis[j].Product
	})

	return kpis
}

// Summarize calcula os totais do relatório a partir da tabela de KPIs
func Summarize(kpis []domain.ProductKPI) domain.ReportSummary {
	summary := domain.ReportSummary{ProductCount: len(kpis)}
	for _, kpi := range kpis {
		summary.TotalRevenue += kpi.TotalRevenue
		summary.TotalQuantity += kpi.TotalQuantity
	}
	return summary
}
