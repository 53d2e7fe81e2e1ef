package reporting

import (
	"github.com/vfg2006/sales-report-api/internal/domain"
)

// LeaderShare calcula a participação do produto líder na receita total do
// subconjunto filtrado. O líder é o produto de maior receita, com empate
// resolvido por nome ascendente, o mesmo critério do ranking. O percentual
// retornado não é arredondado; arredondamento para exibição fica a cargo da
// camada de apresentação.
func LeaderShare(kpis []domain.ProductKPI) (*domain.ConcentrationResult, error) {
	if len(kpis) == 0 {
		return nil, ErrZeroRevenue
	}

	total := 0.0
	leader := kpis[0]
	for _, kpi := range kpis[1:] {
		if kpi.TotalRevenue > leader.TotalRevenue {
			leader = kpi
		} else if kpi.TotalRevenue == leader.TotalRevenue && kpi.Product < leader.Product {
			leader = kpi
		}
	}
	for _, kpi := range kpis {
		total += kpi.TotalRevenue
	}

	if total == 0 {
		return nil, ErrZeroRevenue
	}

	return &domain.ConcentrationResult{
		Product: leader.Product,
		Revenue: leader.TotalRevenue,
		Share:   (leader.TotalRevenue / total) * 100,
	}, nil
}
